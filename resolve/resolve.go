/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolve flattens token trees into attributed token sequences.
package resolve

import (
	"strings"

	"bennypowers.dev/tavnit/token"
)

// Resolve walks the tree depth-first and returns one Token per leaf, in the
// tree's insertion order. Attributes follow the positional convention:
// category is the first path segment; for paths of three or more segments
// the second is the type, the third the item, and the name is the kebab
// join of everything after category and type.
//
// Each call returns fresh Token values, so platforms resolving the same
// tree never share mutable state.
func Resolve(tree *token.Tree) ([]*token.Token, error) {
	if tree == nil || tree.Root == nil {
		return nil, nil
	}

	var tokens []*token.Token
	seen := make(map[string]bool)

	if err := walk(tree.Root, nil, seen, &tokens); err != nil {
		return nil, err
	}
	return tokens, nil
}

func walk(node *token.Node, path []string, seen map[string]bool, out *[]*token.Token) error {
	for _, child := range node.Children {
		childPath := append(append([]string{}, path...), child.Name)

		if !child.IsLeaf() {
			if err := walk(child, childPath, seen, out); err != nil {
				return err
			}
			continue
		}

		key := strings.Join(childPath, ".")
		if seen[key] {
			return &token.MalformedTokenError{
				Path:    childPath,
				Message: "token path defined twice",
				Err:     token.ErrDuplicatePath,
			}
		}
		seen[key] = true

		*out = append(*out, newToken(childPath, child.Value))
	}
	return nil
}

// newToken derives a token's flat identity from its path and raw value.
func newToken(path []string, value any) *token.Token {
	t := &token.Token{
		Path:          path,
		Category:      token.Category(path[0]),
		Name:          strings.Join(path, "-"),
		RawValue:      value,
		ResolvedValue: value,
	}

	if len(path) >= 3 {
		t.Type = path[1]
		t.Item = path[2]
	}

	return t
}
