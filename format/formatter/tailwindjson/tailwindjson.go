/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package tailwindjson renders the theme config structure as plain JSON,
// for consumers that post-process the theme rather than requiring it.
package tailwindjson

import (
	"bennypowers.dev/tavnit/format/formatter"
	"bennypowers.dev/tavnit/token"
)

// Name is the registered format name.
const Name = "tailwind-json"

// Formatter outputs the theme config structure as indented JSON.
type Formatter struct{}

// New creates a new tailwind JSON formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format groups tokens by theme key and serializes the tree as JSON.
func (f *Formatter) Format(tokens []*token.Token, opts formatter.Options) (*formatter.Artifact, error) {
	theme, err := formatter.ThemeTree(Name, tokens)
	if err != nil {
		return nil, err
	}

	text, err := theme.MarshalJSONIndent()
	if err != nil {
		return nil, &token.FormatError{Format: Name, Message: "serializing theme", Err: err}
	}
	text = append(text, '\n')

	return &formatter.Artifact{Structured: theme, Text: text}, nil
}
