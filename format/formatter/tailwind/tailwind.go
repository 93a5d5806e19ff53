/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package tailwind renders tokens as a utility-CSS framework theme module.
package tailwind

import (
	"bytes"
	"strconv"

	"bennypowers.dev/tavnit/format/formatter"
	"bennypowers.dev/tavnit/token"
)

// Name is the registered format name.
const Name = "tailwind"

// Formatter outputs a CommonJS theme config module.
type Formatter struct{}

// New creates a new tailwind theme formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format groups tokens by theme key and emits a module.exports config.
func (f *Formatter) Format(tokens []*token.Token, opts formatter.Options) (*formatter.Artifact, error) {
	theme, err := formatter.ThemeTree(Name, tokens)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString("module.exports = {\n")
	buf.WriteString("  theme: ")
	writeValue(&buf, theme, 1)
	buf.WriteString(",\n};\n")

	return &formatter.Artifact{Structured: theme, Text: buf.Bytes()}, nil
}

// writeValue emits a JS literal for a theme value at the given indent depth.
func writeValue(buf *bytes.Buffer, value any, depth int) {
	switch v := value.(type) {
	case *formatter.Object:
		writeObject(buf, v, depth)
	case string:
		buf.WriteString(strconv.Quote(v))
	case float64:
		buf.WriteString(formatter.FormatNumber(v))
	case bool:
		buf.WriteString(strconv.FormatBool(v))
	case []string:
		buf.WriteByte('[')
		for i, item := range v {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(strconv.Quote(item))
		}
		buf.WriteByte(']')
	}
}

func writeObject(buf *bytes.Buffer, obj *formatter.Object, depth int) {
	if obj.Len() == 0 {
		buf.WriteString("{}")
		return
	}

	indent := indentFor(depth + 1)
	buf.WriteString("{\n")
	for _, key := range obj.Keys() {
		buf.WriteString(indent)
		writeKey(buf, key)
		buf.WriteString(": ")
		value, _ := obj.Get(key)
		writeValue(buf, value, depth+1)
		buf.WriteString(",\n")
	}
	buf.WriteString(indentFor(depth))
	buf.WriteByte('}')
}

// writeKey quotes keys that are not valid JS identifiers (e.g. "2xl").
func writeKey(buf *bytes.Buffer, key string) {
	if isIdentifier(key) {
		buf.WriteString(key)
		return
	}
	buf.WriteString(strconv.Quote(key))
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		letter := r == '_' || r == '$' ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		digit := r >= '0' && r <= '9'
		if !letter && !(digit && i > 0) {
			return false
		}
	}
	return true
}

func indentFor(depth int) string {
	b := make([]byte, depth*2)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
