/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package transform provides value transforms and the pipeline that applies
// them to token sequences.
package transform

import (
	"bennypowers.dev/tavnit/token"
)

// Transform is a named, pure value rewrite selected by a matcher predicate.
// Apply only ever sees tokens its matcher accepted.
type Transform struct {
	// Name identifies the transform in platform configuration.
	Name string

	// Matches reports whether the transform applies to a token.
	Matches func(*token.Token) bool

	// Apply computes the token's next resolved value. It must not mutate
	// the token.
	Apply func(*token.Token) (any, error)
}

// Registry maps transform names to transforms. Registries are plain values
// constructed by the caller; there is no ambient global registry.
type Registry struct {
	transforms map[string]Transform
}

// NewRegistry creates an empty transform registry.
func NewRegistry() *Registry {
	return &Registry{transforms: make(map[string]Transform)}
}

// Register adds a transform. Registering a name twice is a configuration
// error rather than an override, so a build can never silently pick up a
// redefined transform.
func (r *Registry) Register(t Transform) error {
	if t.Name == "" {
		return token.NewConfigurationError("transform name must not be empty")
	}
	if t.Matches == nil || t.Apply == nil {
		return token.NewConfigurationError("transform %q must define Matches and Apply", t.Name)
	}
	if _, exists := r.transforms[t.Name]; exists {
		return token.NewConfigurationError("transform %q registered twice", t.Name)
	}
	r.transforms[t.Name] = t
	return nil
}

// MustRegister registers a transform and panics on configuration errors.
// Intended for built-in registration at startup.
func (r *Registry) MustRegister(t Transform) {
	if err := r.Register(t); err != nil {
		panic(err)
	}
}

// Lookup returns the named transform.
func (r *Registry) Lookup(name string) (Transform, bool) {
	t, ok := r.transforms[name]
	return t, ok
}
