/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the design token model shared by the whole engine.
package token

import (
	"slices"
	"strings"
)

// Token is a single flattened design token. The attribute resolver derives
// one Token per tree leaf; its Path is the token's immutable identity.
type Token struct {
	// Path is the ordered key sequence from tree root to leaf.
	Path []string

	// Category is the first path segment (e.g. "color", "spacing").
	Category Category

	// Type is the second path segment for multi-level categories
	// (e.g. "primary" in color.primary.base). Empty for flat categories.
	Type string

	// Item is the third path segment, if any.
	Item string

	// Name is the kebab-joined path (e.g. "color-primary-base").
	Name string

	// RawValue is the value as loaded: string, float64, bool, or
	// []string for composites such as font stacks.
	RawValue any

	// ResolvedValue starts equal to RawValue and is rewritten only by
	// transforms. Formatters read it and never write it.
	ResolvedValue any
}

// PathString returns the dot-joined path (e.g. "color.primary.base").
func (t *Token) PathString() string {
	return strings.Join(t.Path, ".")
}

// Clone returns a deep-enough copy for copy-on-write pipelines: Path is
// copied so stages can never alias a sibling platform's token.
func (t *Token) Clone() *Token {
	clone := *t
	clone.Path = slices.Clone(t.Path)
	if vs, ok := t.RawValue.([]string); ok {
		clone.RawValue = slices.Clone(vs)
	}
	if vs, ok := t.ResolvedValue.([]string); ok {
		clone.ResolvedValue = slices.Clone(vs)
	}
	return &clone
}

// StringValue returns ResolvedValue as a string when it is one.
func (t *Token) StringValue() (string, bool) {
	s, ok := t.ResolvedValue.(string)
	return s, ok
}
