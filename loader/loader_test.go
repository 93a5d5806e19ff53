/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package loader_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tavnit/internal/mapfs"
	"bennypowers.dev/tavnit/loader"
	"bennypowers.dev/tavnit/testutil"
	"bennypowers.dev/tavnit/token"
)

func TestLoader_Parse(t *testing.T) {
	tests := []struct {
		name   string
		source string
		check  func(*testing.T, *token.Tree)
	}{
		{
			name:   "json preserves key order",
			source: `{"color": {"primary": "#00f", "secondary": "#0f0", "accent": "#f0f"}}`,
			check: func(t *testing.T, tree *token.Tree) {
				color := tree.Root.Child("color")
				require.NotNil(t, color)
				names := make([]string, 0, len(color.Children))
				for _, c := range color.Children {
					names = append(names, c.Name)
				}
				assert.Equal(t, []string{"primary", "secondary", "accent"}, names)
			},
		},
		{
			name: "yaml source",
			source: `
spacing:
  sm: 4px
  md: 8px
`,
			check: func(t *testing.T, tree *token.Tree) {
				spacing := tree.Root.Child("spacing")
				require.NotNil(t, spacing)
				sm := spacing.Child("sm")
				require.NotNil(t, sm)
				assert.True(t, sm.IsLeaf())
				assert.Equal(t, "4px", sm.Value)
			},
		},
		{
			name: "jsonc comments and trailing commas",
			source: `{
				// brand palette
				"color": {
					"primary": "#1D4ED8", /* blue-700 */
				},
			}`,
			check: func(t *testing.T, tree *token.Tree) {
				color := tree.Root.Child("color")
				require.NotNil(t, color)
				assert.Equal(t, "#1D4ED8", color.Child("primary").Value)
			},
		},
		{
			name:   "explicit value marker makes a leaf",
			source: `{"spacing": {"md": {"$value": "8px"}}}`,
			check: func(t *testing.T, tree *token.Tree) {
				md := tree.Root.Child("spacing").Child("md")
				require.NotNil(t, md)
				assert.True(t, md.IsLeaf())
				assert.Equal(t, "8px", md.Value)
			},
		},
		{
			name:   "numbers decode as float64",
			source: `{"opacity": {"disabled": 0.4, "full": 1}}`,
			check: func(t *testing.T, tree *token.Tree) {
				opacity := tree.Root.Child("opacity")
				assert.Equal(t, 0.4, opacity.Child("disabled").Value)
				assert.Equal(t, 1.0, opacity.Child("full").Value)
			},
		},
		{
			name:   "booleans decode as bool",
			source: `{"feature": {"rounded": true}}`,
			check: func(t *testing.T, tree *token.Tree) {
				assert.Equal(t, true, tree.Root.Child("feature").Child("rounded").Value)
			},
		},
		{
			name:   "sequences decode as string slices",
			source: `{"font": {"sans": ["Inter", "sans-serif"]}}`,
			check: func(t *testing.T, tree *token.Tree) {
				sans := tree.Root.Child("font").Child("sans")
				require.NotNil(t, sans)
				assert.True(t, sans.IsLeaf())
				assert.Equal(t, []string{"Inter", "sans-serif"}, sans.Value)
			},
		},
		{
			name:   "empty document yields empty tree",
			source: ``,
			check: func(t *testing.T, tree *token.Tree) {
				assert.Empty(t, tree.Root.Children)
			},
		},
	}

	l := loader.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := l.Parse([]byte(tt.source))
			require.NoError(t, err)
			tt.check(t, tree)
		})
	}
}

func TestLoader_Parse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		sentinel error
	}{
		{
			name:     "value marker with named children",
			source:   `{"color": {"primary": {"$value": "#00f", "hover": "#00a"}}}`,
			sentinel: token.ErrMalformedToken,
		},
		{
			name:     "null value",
			source:   `{"color": {"primary": null}}`,
			sentinel: token.ErrMalformedToken,
		},
		{
			name:     "empty group",
			source:   `{"color": {"primary": {}}}`,
			sentinel: token.ErrMalformedToken,
		},
		{
			name:     "duplicate key",
			source:   `{"color": {"primary": "#00f", "primary": "#0f0"}}`,
			sentinel: token.ErrDuplicatePath,
		},
		{
			name:     "root is not an object",
			source:   `["#00f", "#0f0"]`,
			sentinel: token.ErrMalformedToken,
		},
		{
			name:     "structured value marker",
			source:   `{"color": {"primary": {"$value": {"hex": "#00f"}}}}`,
			sentinel: token.ErrMalformedToken,
		},
	}

	l := loader.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.Parse([]byte(tt.source))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)
		})
	}
}

func TestLoader_ParseFile_Fixtures(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/simple", "/tokens")
	l := loader.New()

	base, err := l.ParseFile(mfs, "/tokens/tokens.yaml")
	require.NoError(t, err)
	assert.Equal(t, "#1D4ED8", base.Root.Child("color").Child("primary").Child("base").Value)
	assert.Equal(t, []string{"Inter", "sans-serif"}, base.Root.Child("font").Child("sans").Value)

	brand, err := l.ParseFile(mfs, "/tokens/brand.jsonc")
	require.NoError(t, err)

	merged, err := loader.Merge(base, brand)
	require.NoError(t, err)
	assert.Equal(t, "#2563EB", merged.Root.Child("color").Child("primary").Child("base").Value)
	assert.Equal(t, "#1E40AF", merged.Root.Child("color").Child("primary").Child("hover").Value)
}

func TestLoader_ParseFile(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/tokens/base.yaml", "color:\n  primary: '#00f'\n", 0644)

	l := loader.New()
	tree, err := l.ParseFile(mfs, "/tokens/base.yaml")
	require.NoError(t, err)
	assert.Equal(t, "#00f", tree.Root.Child("color").Child("primary").Value)

	_, err = l.ParseFile(mfs, "/tokens/missing.yaml")
	assert.Error(t, err)
}
