/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package css renders tokens as CSS custom properties on :root.
package css

import (
	"bytes"

	"bennypowers.dev/tavnit/format/formatter"
	"bennypowers.dev/tavnit/token"
)

// Name is the registered format name.
const Name = "css"

// Formatter outputs CSS custom property declarations.
type Formatter struct{}

// New creates a new CSS custom property formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format emits one --name: value declaration per token, in token order.
func (f *Formatter) Format(tokens []*token.Token, opts formatter.Options) (*formatter.Artifact, error) {
	delimiter := opts.Delimiter
	if delimiter == "" {
		delimiter = "-"
	}

	structured := formatter.NewObject()
	var buf bytes.Buffer
	buf.WriteString(":root {\n")

	for _, tok := range tokens {
		value, err := formatter.ScalarString(Name, tok)
		if err != nil {
			return nil, err
		}

		name := "--" + formatter.ApplyPrefix(tok.Name, opts.Prefix, delimiter)
		structured.Set(name, value)

		buf.WriteString("  ")
		buf.WriteString(name)
		buf.WriteString(": ")
		buf.WriteString(value)
		buf.WriteString(";\n")
	}

	buf.WriteString("}\n")
	return &formatter.Artifact{Structured: structured, Text: buf.Bytes()}, nil
}
