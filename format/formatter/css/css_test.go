/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package css_test

import (
	"testing"

	"bennypowers.dev/tavnit/format/formatter"
	"bennypowers.dev/tavnit/format/formatter/css"
	"bennypowers.dev/tavnit/token"
)

func cssToken(name string, path []string, value any) *token.Token {
	return &token.Token{
		Path:          path,
		Category:      token.Category(path[0]),
		Name:          name,
		RawValue:      value,
		ResolvedValue: value,
	}
}

func TestFormatter_Format(t *testing.T) {
	tokens := []*token.Token{
		cssToken("color-primary-base", []string{"color", "primary", "base"}, "#1D4ED8"),
		cssToken("font-sans", []string{"font", "sans"}, []string{"Inter", "sans-serif"}),
		cssToken("opacity-disabled", []string{"opacity", "disabled"}, 0.4),
	}

	artifact, err := css.New().Format(tokens, formatter.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `:root {
  --color-primary-base: #1D4ED8;
  --font-sans: Inter, sans-serif;
  --opacity-disabled: 0.4;
}
`
	if string(artifact.Text) != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, artifact.Text)
	}
}

func TestFormatter_Format_Prefix(t *testing.T) {
	tokens := []*token.Token{
		cssToken("color-primary", []string{"color", "primary"}, "#00f"),
	}

	artifact, err := css.New().Format(tokens, formatter.Options{Prefix: "tw"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := ":root {\n  --tw-color-primary: #00f;\n}\n"
	if string(artifact.Text) != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, artifact.Text)
	}
}
