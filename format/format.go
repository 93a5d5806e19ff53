/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package format maintains the registry of output formats and dispatches
// token rendering to the selected formatter.
package format

import (
	"sort"

	"bennypowers.dev/tavnit/format/formatter"
	"bennypowers.dev/tavnit/format/formatter/css"
	"bennypowers.dev/tavnit/format/formatter/flatjson"
	"bennypowers.dev/tavnit/format/formatter/scss"
	"bennypowers.dev/tavnit/format/formatter/tailwind"
	"bennypowers.dev/tavnit/format/formatter/tailwindjson"
	"bennypowers.dev/tavnit/token"
)

// Registry maps format names to formatters.
type Registry struct {
	formatters map[string]formatter.Formatter
}

// NewRegistry creates an empty format registry.
func NewRegistry() *Registry {
	return &Registry{formatters: make(map[string]formatter.Formatter)}
}

// Register adds a formatter under the given name. Registering an empty
// name, a nil formatter, or a name already taken is a configuration error.
func (r *Registry) Register(name string, f formatter.Formatter) error {
	if name == "" {
		return token.NewConfigurationError("format name must not be empty")
	}
	if f == nil {
		return token.NewConfigurationError("format %q has no formatter", name)
	}
	if _, exists := r.formatters[name]; exists {
		return token.NewConfigurationError("format %q is already registered", name)
	}
	r.formatters[name] = f
	return nil
}

// MustRegister is Register but panics on error. Intended for built-in
// formatters registered at startup.
func (r *Registry) MustRegister(name string, f formatter.Formatter) {
	if err := r.Register(name, f); err != nil {
		panic(err)
	}
}

// Lookup returns the formatter registered under name.
func (r *Registry) Lookup(name string) (formatter.Formatter, error) {
	f, ok := r.formatters[name]
	if !ok {
		return nil, token.NewConfigurationError("unknown format %q", name)
	}
	return f, nil
}

// Names returns the registered format names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.formatters))
	for name := range r.formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render formats tokens with the named formatter.
func (r *Registry) Render(name string, tokens []*token.Token, opts formatter.Options) (*formatter.Artifact, error) {
	f, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	return f.Format(tokens, opts)
}

// Builtins returns a registry with every built-in formatter registered.
func Builtins() *Registry {
	r := NewRegistry()
	r.MustRegister(tailwind.Name, tailwind.New())
	r.MustRegister(tailwindjson.Name, tailwindjson.New())
	r.MustRegister(css.Name, css.New())
	r.MustRegister(scss.Name, scss.New())
	r.MustRegister(flatjson.Name, flatjson.New())
	return r
}
