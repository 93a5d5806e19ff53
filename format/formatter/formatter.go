/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package formatter provides the interface and common utilities for theme
// formatters.
package formatter

import (
	"strconv"

	"bennypowers.dev/tavnit/token"
)

// Formatter renders a resolved, flattened token set into a target-shaped
// artifact. Formatters read ResolvedValue and never write tokens.
type Formatter interface {
	// Format converts tokens to the target shape. It must be
	// deterministic: the same token set and options produce
	// byte-identical text on every call.
	Format(tokens []*token.Token, opts Options) (*Artifact, error)
}

// Options configures formatter behavior.
type Options struct {
	// Prefix is added to output variable names.
	Prefix string

	// Delimiter separates name segments in flat outputs (default "-").
	Delimiter string
}

// Artifact is one rendered output: the structured representation plus its
// serialized text. Writing Text anywhere is the caller's concern.
type Artifact struct {
	Structured *Object
	Text       []byte
}

// ApplyPrefix adds a prefix to a name with the given delimiter.
func ApplyPrefix(name, prefix, delimiter string) string {
	if prefix == "" {
		return name
	}
	return prefix + delimiter + name
}

// FormatNumber formats a float without a trailing ".0".
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ResolvedValue returns the value a formatter should render for a token.
func ResolvedValue(tok *token.Token) any {
	if tok == nil {
		return nil
	}
	if tok.ResolvedValue != nil {
		return tok.ResolvedValue
	}
	return tok.RawValue
}
