/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package formatter_test

import (
	"errors"
	"testing"

	"bennypowers.dev/tavnit/format/formatter"
	"bennypowers.dev/tavnit/token"
)

func themeToken(path []string, value any) *token.Token {
	return &token.Token{
		Path:          path,
		Category:      token.Category(path[0]),
		RawValue:      value,
		ResolvedValue: value,
	}
}

func TestThemeTree(t *testing.T) {
	tokens := []*token.Token{
		themeToken([]string{"color", "primary", "base"}, "#1D4ED8"),
		themeToken([]string{"color", "primary", "hover"}, "#1E40AF"),
		themeToken([]string{"font", "sans"}, []string{"Inter", "sans-serif"}),
		themeToken([]string{"screen", "2xl"}, "1536px"),
	}

	theme, err := formatter.ThemeTree("test", tokens)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	keys := theme.Keys()
	want := []string{"colors", "fontFamily", "screens"}
	if len(keys) != len(want) {
		t.Fatalf("expected keys %v, got %v", want, keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("key %d: expected %s, got %s", i, want[i], keys[i])
		}
	}

	colors, _ := theme.Get("colors")
	primary, _ := colors.(*formatter.Object).Get("primary")
	base, _ := primary.(*formatter.Object).Get("base")
	if base != "#1D4ED8" {
		t.Errorf("expected #1D4ED8, got %v", base)
	}
}

func TestThemeTree_GroupCollision(t *testing.T) {
	tokens := []*token.Token{
		themeToken([]string{"color", "primary"}, "#00f"),
		themeToken([]string{"color", "primary", "base"}, "#1D4ED8"),
	}

	_, err := formatter.ThemeTree("test", tokens)
	if err == nil {
		t.Fatalf("expected error for leaf/group collision")
	}
	if !errors.Is(err, token.ErrFormat) {
		t.Errorf("expected ErrFormat, got %v", err)
	}
}

func TestThemeTree_UnrenderableValue(t *testing.T) {
	tokens := []*token.Token{
		themeToken([]string{"color", "primary"}, map[string]any{"hex": "#00f"}),
	}

	_, err := formatter.ThemeTree("test", tokens)
	if err == nil {
		t.Fatalf("expected error for unrenderable value")
	}
	if !errors.Is(err, token.ErrFormat) {
		t.Errorf("expected ErrFormat, got %v", err)
	}
}

func TestScalarString(t *testing.T) {
	cases := []struct {
		value any
		want  string
	}{
		{"#00f", "#00f"},
		{[]string{"Inter", "sans-serif"}, "Inter, sans-serif"},
		{0.5, "0.5"},
		{true, "true"},
		{false, "false"},
	}

	for _, tc := range cases {
		tok := themeToken([]string{"color", "x"}, tc.value)
		got, err := formatter.ScalarString("test", tok)
		if err != nil {
			t.Fatalf("unexpected error for %v: %v", tc.value, err)
		}
		if got != tc.want {
			t.Errorf("expected %q, got %q", tc.want, got)
		}
	}
}

func TestApplyPrefix(t *testing.T) {
	if got := formatter.ApplyPrefix("color-primary", "tw", "-"); got != "tw-color-primary" {
		t.Errorf("expected tw-color-primary, got %s", got)
	}
	if got := formatter.ApplyPrefix("color-primary", "", "-"); got != "color-primary" {
		t.Errorf("expected unchanged name, got %s", got)
	}
}
