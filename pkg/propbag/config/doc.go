/*
Package config provides bootstrap settings for propbag accessors.

# Overview

An Accessor reads two settings for its whole lifetime: whether debug
diagnostics are written on assertion failures, and how deep assertion
context is dumped into failure messages. Settings are loaded once during
startup and passed to propbag.New via propbag.WithSettings.

# Basic Usage

	settings := config.Default() // debug off, context depth 2

	acc := propbag.New(propbag.WithSettings(settings))

# File Loading

Load settings from YAML, JSON or TOML files:

	settings, err := config.FromFile("propbag.yaml")
	if err != nil {
	    log.Fatal(err)
	}

	// Or load from bytes
	settings, err = config.FromYAML(yamlBytes)
	settings, err = config.FromJSON(jsonBytes)
	settings, err = config.FromTOML(tomlBytes)

A YAML file looks like:

	debug: true
	context_depth: 3

Fields missing from the input keep their defaults. A context depth that is
zero or negative is rejected with ErrInvalidContextDepth.
*/
package config
