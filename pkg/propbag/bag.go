package propbag

import (
	"maps"

	"github.com/randalmurphal/propbag/pkg/propbag/coerce"
)

// Bag is a flat property bag: string keys mapped to values of any type.
// A nil Bag behaves as an empty bag for every read.
type Bag map[string]any

// Has reports whether key is present in b, regardless of its value.
// A key holding nil, "" or an empty collection is still present.
func Has(b Bag, key string) bool {
	_, ok := b[key]
	return ok
}

// Get returns the value stored at key, or def if key is absent.
// The value is returned as stored.
func Get(b Bag, key string, def any) any {
	if v, ok := b[key]; ok {
		return v
	}
	return def
}

// GetInt returns the value at key converted with coerce.ToInt,
// or def if key is absent.
func GetInt(b Bag, key string, def int) int {
	if v, ok := b[key]; ok {
		return coerce.ToInt(v)
	}
	return def
}

// GetFloat returns the value at key converted with coerce.ToFloat,
// or def if key is absent.
func GetFloat(b Bag, key string, def float64) float64 {
	if v, ok := b[key]; ok {
		return coerce.ToFloat(v)
	}
	return def
}

// GetBool returns the value at key converted with coerce.ToBool,
// or def if key is absent.
func GetBool(b Bag, key string, def bool) bool {
	if v, ok := b[key]; ok {
		return coerce.ToBool(v)
	}
	return def
}

// GetString returns the value at key converted with coerce.ToString,
// or def if key is absent.
func GetString(b Bag, key string, def string) string {
	if v, ok := b[key]; ok {
		return coerce.ToString(v)
	}
	return def
}

// GetArray returns the value at key converted with coerce.ToSlice,
// or def if key is absent. Scalars come back as a single-element slice.
func GetArray(b Bag, key string, def []any) []any {
	if v, ok := b[key]; ok {
		return coerce.ToSlice(v)
	}
	return def
}

// GetBag returns the nested bag stored at key, or def if key is absent
// or its value is not a map keyed by strings.
//
// Only one level is read; dotted paths are not traversed.
func GetBag(b Bag, key string, def Bag) Bag {
	v, ok := b[key]
	if !ok {
		return def
	}
	if nested, ok := v.(Bag); ok {
		return nested
	}
	m, ok := coerce.ToMap(v)
	if !ok {
		return def
	}
	return Bag(m)
}

// IsEmpty reports whether the value at key is empty per coerce.IsEmpty.
// An absent key is empty.
func IsEmpty(b Bag, key string) bool {
	return coerce.IsEmpty(Get(b, key, nil))
}

// GetDefaultIfEmpty returns def if the value at key is empty or absent,
// otherwise the stored value.
func GetDefaultIfEmpty(b Bag, key string, def any) any {
	if IsEmpty(b, key) {
		return def
	}
	return Get(b, key, def)
}

// Set returns a copy of b with key set to v. b is not modified.
func Set(b Bag, key string, v any) Bag {
	out := maps.Clone(b)
	if out == nil {
		out = make(Bag, 1)
	}
	out[key] = v
	return out
}

// Remove deletes key from b in place. Removing an absent key is a no-op.
//
// Unlike Set, Remove mutates the caller's bag; callers sharing b across
// goroutines must synchronize.
func Remove(b Bag, key string) {
	delete(b, key)
}

// GetAndRemove reads key with Get semantics, then deletes it from b in place.
// Returns the stored value, or def if key was absent.
func GetAndRemove(b Bag, key string, def any) any {
	v := Get(b, key, def)
	Remove(b, key)
	return v
}
