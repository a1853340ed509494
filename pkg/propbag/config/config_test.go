package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/randalmurphal/propbag/pkg/propbag/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefault verifies the default settings.
func TestDefault(t *testing.T) {
	s := config.Default()
	assert.False(t, s.Debug)
	assert.Equal(t, config.DefaultContextDepth, s.ContextDepth)
	assert.NoError(t, s.Validate())
}

// TestValidate verifies context depth bounds.
func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		depth   int
		wantErr bool
	}{
		{"positive", 1, false},
		{"default", 2, false},
		{"deep", 64, false},
		{"zero", 0, true},
		{"negative", -3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := config.Settings{ContextDepth: tt.depth}.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, config.ErrInvalidContextDepth)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestFromYAML verifies YAML parsing and default handling.
func TestFromYAML(t *testing.T) {
	t.Run("all fields", func(t *testing.T) {
		s, err := config.FromYAML([]byte("debug: true\ncontext_depth: 5\n"))
		require.NoError(t, err)
		assert.True(t, s.Debug)
		assert.Equal(t, 5, s.ContextDepth)
	})

	t.Run("missing depth keeps default", func(t *testing.T) {
		s, err := config.FromYAML([]byte("debug: true\n"))
		require.NoError(t, err)
		assert.True(t, s.Debug)
		assert.Equal(t, config.DefaultContextDepth, s.ContextDepth)
	})

	t.Run("empty document", func(t *testing.T) {
		s, err := config.FromYAML([]byte(""))
		require.NoError(t, err)
		assert.Equal(t, config.Default(), s)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := config.FromYAML([]byte("debug: [unclosed"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse yaml")
	})

	t.Run("invalid depth", func(t *testing.T) {
		_, err := config.FromYAML([]byte("context_depth: 0\n"))
		assert.ErrorIs(t, err, config.ErrInvalidContextDepth)
	})
}

// TestFromJSON verifies JSON parsing and default handling.
func TestFromJSON(t *testing.T) {
	t.Run("all fields", func(t *testing.T) {
		s, err := config.FromJSON([]byte(`{"debug": true, "context_depth": 4}`))
		require.NoError(t, err)
		assert.True(t, s.Debug)
		assert.Equal(t, 4, s.ContextDepth)
	})

	t.Run("missing fields keep defaults", func(t *testing.T) {
		s, err := config.FromJSON([]byte(`{}`))
		require.NoError(t, err)
		assert.Equal(t, config.Default(), s)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := config.FromJSON([]byte(`{"debug":`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse json")
	})

	t.Run("negative depth", func(t *testing.T) {
		_, err := config.FromJSON([]byte(`{"context_depth": -1}`))
		assert.ErrorIs(t, err, config.ErrInvalidContextDepth)
	})
}

// TestFromTOML verifies TOML parsing and default handling.
func TestFromTOML(t *testing.T) {
	t.Run("all fields", func(t *testing.T) {
		s, err := config.FromTOML([]byte("debug = true\ncontext_depth = 3\n"))
		require.NoError(t, err)
		assert.True(t, s.Debug)
		assert.Equal(t, 3, s.ContextDepth)
	})

	t.Run("missing fields keep defaults", func(t *testing.T) {
		s, err := config.FromTOML([]byte("debug = false\n"))
		require.NoError(t, err)
		assert.Equal(t, config.Default(), s)
	})

	t.Run("invalid toml", func(t *testing.T) {
		_, err := config.FromTOML([]byte("debug = "))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse toml")
	})
}

// TestFromFile verifies extension detection.
func TestFromFile(t *testing.T) {
	dir := t.TempDir()

	write := func(t *testing.T, name, content string) string {
		t.Helper()
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"yaml", "settings.yaml", "debug: true\ncontext_depth: 3\n"},
		{"yml", "settings.yml", "debug: true\ncontext_depth: 3\n"},
		{"json", "settings.json", `{"debug": true, "context_depth": 3}`},
		{"toml", "settings.toml", "debug = true\ncontext_depth = 3\n"},
		{"uppercase extension", "settings.YAML", "debug: true\ncontext_depth: 3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := config.FromFile(write(t, tt.file, tt.content))
			require.NoError(t, err)
			assert.Equal(t, config.Settings{Debug: true, ContextDepth: 3}, s)
		})
	}

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := config.FromFile(write(t, "settings.ini", "debug=true"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported settings file extension")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.FromFile(filepath.Join(dir, "nope.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
