/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tavnit/loader"
	"bennypowers.dev/tavnit/resolve"
	"bennypowers.dev/tavnit/token"
)

func parse(t *testing.T, source string) *token.Tree {
	t.Helper()
	tree, err := loader.New().Parse([]byte(source))
	require.NoError(t, err)
	return tree
}

func TestResolve_Order(t *testing.T) {
	tree := parse(t, `{
		"color": {"primary": "#00f", "secondary": "#0f0"},
		"spacing": {"sm": "4px", "md": "8px"}
	}`)

	tokens, err := resolve.Resolve(tree)
	require.NoError(t, err)

	paths := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		paths = append(paths, tok.PathString())
	}
	assert.Equal(t, []string{
		"color.primary",
		"color.secondary",
		"spacing.sm",
		"spacing.md",
	}, paths)
}

func TestResolve_Attributes(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		path     string
		category token.Category
		typ      string
		item     string
		tokName  string
	}{
		{
			name:     "three segment path",
			source:   `{"color": {"primary": {"base": "#1D4ED8"}}}`,
			path:     "color.primary.base",
			category: token.CategoryColor,
			typ:      "primary",
			item:     "base",
			tokName:  "color-primary-base",
		},
		{
			name:     "two segment path has no type or item",
			source:   `{"spacing": {"md": "8px"}}`,
			path:     "spacing.md",
			category: token.CategorySpacing,
			tokName:  "spacing-md",
		},
		{
			name:     "four segment path keeps full name",
			source:   `{"color": {"primary": {"base": {"hover": "#00a"}}}}`,
			path:     "color.primary.base.hover",
			category: token.CategoryColor,
			typ:      "primary",
			item:     "base",
			tokName:  "color-primary-base-hover",
		},
		{
			name:     "open category passes through",
			source:   `{"elevation": {"raised": "2"}}`,
			path:     "elevation.raised",
			category: token.Category("elevation"),
			tokName:  "elevation-raised",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := resolve.Resolve(parse(t, tt.source))
			require.NoError(t, err)
			require.Len(t, tokens, 1)

			tok := tokens[0]
			assert.Equal(t, tt.path, tok.PathString())
			assert.Equal(t, tt.category, tok.Category)
			assert.Equal(t, tt.typ, tok.Type)
			assert.Equal(t, tt.item, tok.Item)
			assert.Equal(t, tt.tokName, tok.Name)
			assert.Equal(t, tok.RawValue, tok.ResolvedValue)
		})
	}
}

func TestResolve_DuplicatePath(t *testing.T) {
	// the loader rejects duplicate keys, so build the ambiguous tree directly
	tree := token.NewTree()
	group := token.Group("color", token.Leaf("primary", "#00f"))
	group.Children = append(group.Children, token.Leaf("primary", "#0f0"))
	tree.Root.Children = []*token.Node{group}

	_, err := resolve.Resolve(tree)
	require.Error(t, err)
	assert.ErrorIs(t, err, token.ErrDuplicatePath)
}

func TestResolve_FreshTokensPerCall(t *testing.T) {
	tree := parse(t, `{"spacing": {"md": "8px"}}`)

	first, err := resolve.Resolve(tree)
	require.NoError(t, err)
	first[0].ResolvedValue = "mutated"

	second, err := resolve.Resolve(tree)
	require.NoError(t, err)
	assert.Equal(t, "8px", second[0].ResolvedValue)
}

func TestResolve_EmptyTree(t *testing.T) {
	tokens, err := resolve.Resolve(token.NewTree())
	require.NoError(t, err)
	assert.Empty(t, tokens)

	tokens, err = resolve.Resolve(nil)
	require.NoError(t, err)
	assert.Empty(t, tokens)
}
