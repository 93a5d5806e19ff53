/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package formatter

import (
	"strings"

	"bennypowers.dev/tavnit/token"
)

// ThemeTree groups a flat token sequence back into the nested shape a theme
// config expects: the category's theme key first, then the remaining path
// segments. This is the inverse of flattening, using resolved values.
//
// Group keys appear in first-token order, so the tree is deterministic for a
// given token sequence.
func ThemeTree(formatName string, tokens []*token.Token) (*Object, error) {
	root := NewObject()

	for _, tok := range tokens {
		keys := append([]string{tok.Category.ThemeKey()}, tok.Path[1:]...)

		current := root
		for _, key := range keys[:len(keys)-1] {
			child, err := current.Child(key)
			if err != nil {
				return nil, &token.FormatError{
					Format:  formatName,
					Message: "token " + tok.PathString() + " collides with a group: " + err.Error(),
				}
			}
			current = child
		}

		value, err := renderableValue(formatName, tok)
		if err != nil {
			return nil, err
		}
		current.Set(keys[len(keys)-1], value)
	}

	return root, nil
}

// renderableValue validates that a resolved value has a shape formatters
// know how to serialize.
func renderableValue(formatName string, tok *token.Token) (any, error) {
	value := ResolvedValue(tok)
	switch value.(type) {
	case string, float64, bool, []string:
		return value, nil
	default:
		return nil, &token.FormatError{
			Format: formatName,
			Message: "token " + tok.PathString() +
				" has an unrenderable value type",
		}
	}
}

// ScalarString renders a resolved value as a single CSS-ish string, joining
// composites with commas.
func ScalarString(formatName string, tok *token.Token) (string, error) {
	value, err := renderableValue(formatName, tok)
	if err != nil {
		return "", err
	}
	switch v := value.(type) {
	case string:
		return v, nil
	case []string:
		return strings.Join(v, ", "), nil
	case bool:
		if v {
			return "true", nil
		}
		return "false", nil
	case float64:
		return FormatNumber(v), nil
	}
	return "", nil
}
