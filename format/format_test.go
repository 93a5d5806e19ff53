/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package format_test

import (
	"errors"
	"testing"

	"bennypowers.dev/tavnit/format"
	"bennypowers.dev/tavnit/format/formatter"
	"bennypowers.dev/tavnit/format/formatter/css"
	"bennypowers.dev/tavnit/token"
)

func TestBuiltins(t *testing.T) {
	names := format.Builtins().Names()
	want := []string{"css", "flat-json", "scss", "tailwind", "tailwind-json"}

	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("name %d: expected %s, got %s", i, want[i], names[i])
		}
	}
}

func TestRegistry_Lookup_Unknown(t *testing.T) {
	_, err := format.Builtins().Lookup("xml")
	if err == nil {
		t.Fatalf("expected error for unknown format")
	}
	if !errors.Is(err, token.ErrConfiguration) {
		t.Errorf("expected ErrConfiguration, got %v", err)
	}
}

func TestRegistry_Register_Duplicate(t *testing.T) {
	r := format.NewRegistry()
	if err := r.Register("css", css.New()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := r.Register("css", css.New())
	if err == nil {
		t.Fatalf("expected error for duplicate registration")
	}
	if !errors.Is(err, token.ErrConfiguration) {
		t.Errorf("expected ErrConfiguration, got %v", err)
	}
}

func TestRegistry_Register_Invalid(t *testing.T) {
	r := format.NewRegistry()
	if err := r.Register("", css.New()); !errors.Is(err, token.ErrConfiguration) {
		t.Errorf("expected ErrConfiguration for empty name, got %v", err)
	}
	if err := r.Register("broken", nil); !errors.Is(err, token.ErrConfiguration) {
		t.Errorf("expected ErrConfiguration for nil formatter, got %v", err)
	}
}

func TestRegistry_Render(t *testing.T) {
	tokens := []*token.Token{
		{
			Path:          []string{"color", "primary"},
			Category:      token.CategoryColor,
			Name:          "color-primary",
			ResolvedValue: "#00f",
		},
	}

	artifact, err := format.Builtins().Render("css", tokens, formatter.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := ":root {\n  --color-primary: #00f;\n}\n"
	if string(artifact.Text) != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, artifact.Text)
	}

	if _, err := format.Builtins().Render("xml", tokens, formatter.Options{}); err == nil {
		t.Errorf("expected error for unknown format")
	}
}
