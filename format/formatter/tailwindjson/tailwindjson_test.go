/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tailwindjson_test

import (
	"testing"

	"bennypowers.dev/tavnit/format/formatter"
	"bennypowers.dev/tavnit/format/formatter/tailwindjson"
	"bennypowers.dev/tavnit/token"
)

func TestFormatter_Format(t *testing.T) {
	tokens := []*token.Token{
		{
			Path:          []string{"color", "primary", "base"},
			Category:      token.CategoryColor,
			ResolvedValue: "#1D4ED8",
		},
		{
			Path:          []string{"screen", "2xl"},
			Category:      token.CategoryScreen,
			ResolvedValue: "1536px",
		},
	}

	artifact, err := tailwindjson.New().Format(tokens, formatter.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `{
  "colors": {
    "primary": {
      "base": "#1D4ED8"
    }
  },
  "screens": {
    "2xl": "1536px"
  }
}
`
	if string(artifact.Text) != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, artifact.Text)
	}
}
