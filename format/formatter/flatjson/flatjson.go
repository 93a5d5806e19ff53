/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package flatjson provides flat key-value JSON formatting for design tokens.
package flatjson

import (
	"strings"

	"bennypowers.dev/tavnit/format/formatter"
	"bennypowers.dev/tavnit/token"
)

// Name is the registered format name.
const Name = "flat-json"

// Formatter outputs flat key-value JSON.
type Formatter struct{}

// New creates a new flat JSON formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format emits a shallow object with delimiter-separated keys, in token order.
func (f *Formatter) Format(tokens []*token.Token, opts formatter.Options) (*formatter.Artifact, error) {
	delimiter := opts.Delimiter
	if delimiter == "" {
		delimiter = "-"
	}

	structured := formatter.NewObject()
	for _, tok := range tokens {
		key := formatter.ApplyPrefix(strings.Join(tok.Path, delimiter), opts.Prefix, delimiter)
		structured.Set(key, formatter.ResolvedValue(tok))
	}

	text, err := structured.MarshalJSONIndent()
	if err != nil {
		return nil, &token.FormatError{Format: Name, Message: "serializing tokens", Err: err}
	}
	text = append(text, '\n')

	return &formatter.Artifact{Structured: structured, Text: text}, nil
}
