/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for the token build.
package config

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/tavnit/build"
)

// Config represents the token build configuration.
type Config struct {
	// Prefix is the global output variable prefix.
	Prefix string `yaml:"prefix" json:"prefix"`

	// Sources specifies token files to load (paths or globs).
	Sources []SourceSpec `yaml:"sources" json:"sources"`

	// Platforms are the configured output targets.
	Platforms []PlatformSpec `yaml:"platforms" json:"platforms"`

	// ContinueOnError collects per-platform failures instead of stopping
	// at the first one.
	ContinueOnError bool `yaml:"continueOnError" json:"continueOnError"`
}

// SourceSpec represents a token source file specification.
// It can be specified as a simple string path or as an object.
type SourceSpec struct {
	// Path is the file path (supports globs).
	Path string `yaml:"path" json:"path"`
}

// UnmarshalYAML handles both string and object forms for SourceSpec.
func (s *SourceSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		s.Path = node.Value
		return nil
	}

	type rawSourceSpec SourceSpec
	return node.Decode((*rawSourceSpec)(s))
}

// UnmarshalJSON handles both string and object forms for SourceSpec.
func (s *SourceSpec) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		s.Path = str
		return nil
	}

	type rawSourceSpec SourceSpec
	return json.Unmarshal(data, (*rawSourceSpec)(s))
}

// PlatformSpec represents one configured output target.
type PlatformSpec struct {
	// Name identifies the platform in logs and errors.
	Name string `yaml:"name" json:"name"`

	// Transforms is the ordered list of transform names to apply.
	Transforms []string `yaml:"transforms" json:"transforms"`

	// Format is the registered format name to render with.
	Format string `yaml:"format" json:"format"`

	// Destination is the output path for the rendered artifact.
	Destination string `yaml:"destination" json:"destination"`

	// Prefix overrides the global prefix for this platform.
	Prefix string `yaml:"prefix" json:"prefix"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{}
}

// BuildPlatforms converts the configured platform specs to build platforms,
// applying the global prefix where a platform has none.
func (c *Config) BuildPlatforms() []build.Platform {
	platforms := make([]build.Platform, 0, len(c.Platforms))
	for _, spec := range c.Platforms {
		prefix := spec.Prefix
		if prefix == "" {
			prefix = c.Prefix
		}
		platforms = append(platforms, build.Platform{
			Name:        spec.Name,
			Transforms:  spec.Transforms,
			Format:      spec.Format,
			Destination: spec.Destination,
			Prefix:      prefix,
		})
	}
	return platforms
}

// SourcePaths returns the list of paths from all SourceSpecs.
func (c *Config) SourcePaths() []string {
	paths := make([]string, 0, len(c.Sources))
	for _, spec := range c.Sources {
		paths = append(paths, spec.Path)
	}
	return paths
}
