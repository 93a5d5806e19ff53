/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/tavnit/token"
)

// Built-in transform names.
const (
	SizeStripUnit = "size/strip-unit"
	SizePxToRem   = "size/px-to-rem"
	ColorHex      = "color/hex"
	ColorRGB      = "color/rgb"
	ColorHSL      = "color/hsl"
	FontJoin      = "font/join"
	NameTitle     = "name/title"
)

// dimensionUnits are the CSS unit suffixes the size transforms understand.
var dimensionUnits = []string{"px", "rem", "em", "%"}

// Builtins returns a registry preloaded with the built-in transforms.
func Builtins() *Registry {
	r := NewRegistry()
	r.MustRegister(Transform{
		Name:    SizeStripUnit,
		Matches: matchesDimension,
		Apply:   applyStripUnit,
	})
	r.MustRegister(Transform{
		Name:    SizePxToRem,
		Matches: matchesPxDimension,
		Apply:   applyPxToRem,
	})
	r.MustRegister(Transform{
		Name:    ColorHex,
		Matches: matchesColor,
		Apply:   applyColorHex,
	})
	r.MustRegister(Transform{
		Name:    ColorRGB,
		Matches: matchesColor,
		Apply:   applyColorRGB,
	})
	r.MustRegister(Transform{
		Name:    ColorHSL,
		Matches: matchesColor,
		Apply:   applyColorHSL,
	})
	r.MustRegister(Transform{
		Name:    FontJoin,
		Matches: matchesFontStack,
		Apply:   applyFontJoin,
	})
	r.MustRegister(Transform{
		Name:    NameTitle,
		Matches: matchesString,
		Apply:   applyTitleCase,
	})
	return r
}

// MatchCategory returns a matcher accepting tokens in any of the categories.
func MatchCategory(categories ...token.Category) func(*token.Token) bool {
	return func(t *token.Token) bool {
		for _, c := range categories {
			if t.Category == c {
				return true
			}
		}
		return false
	}
}

func matchesDimension(t *token.Token) bool {
	s, ok := t.StringValue()
	if !ok {
		return false
	}
	_, _, ok = splitDimension(s)
	return ok && isDimensionCategory(t.Category)
}

func matchesPxDimension(t *token.Token) bool {
	s, ok := t.StringValue()
	if !ok {
		return false
	}
	_, unit, ok := splitDimension(s)
	return ok && unit == "px" && isDimensionCategory(t.Category)
}

func matchesColor(t *token.Token) bool {
	if t.Category != token.CategoryColor {
		return false
	}
	_, ok := t.StringValue()
	return ok
}

func matchesString(t *token.Token) bool {
	_, ok := t.StringValue()
	return ok
}

func matchesFontStack(t *token.Token) bool {
	if t.Category != token.CategoryFont {
		return false
	}
	_, ok := t.ResolvedValue.([]string)
	return ok
}

func isDimensionCategory(c token.Category) bool {
	switch c {
	case token.CategorySpacing, token.CategorySize, token.CategoryRadius, token.CategoryScreen:
		return true
	}
	return false
}

// splitDimension splits "8px" into ("8", "px"). The numeric part may be
// negative or fractional.
func splitDimension(s string) (number, unit string, ok bool) {
	for _, u := range dimensionUnits {
		if !strings.HasSuffix(s, u) {
			continue
		}
		number = strings.TrimSuffix(s, u)
		if _, err := strconv.ParseFloat(number, 64); err != nil {
			return "", "", false
		}
		return number, u, true
	}
	return "", "", false
}

func applyStripUnit(t *token.Token) (any, error) {
	s, _ := t.StringValue()
	number, _, ok := splitDimension(s)
	if !ok {
		return nil, fmt.Errorf("value %q has no recognized unit", s)
	}
	return number, nil
}

func applyPxToRem(t *token.Token) (any, error) {
	s, _ := t.StringValue()
	number, unit, ok := splitDimension(s)
	if !ok || unit != "px" {
		return nil, fmt.Errorf("value %q is not a px dimension", s)
	}
	px, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return nil, fmt.Errorf("value %q is not numeric", s)
	}
	return formatNumber(px/16) + "rem", nil
}

func applyColorHex(t *token.Token) (any, error) {
	c, err := parseColor(t)
	if err != nil {
		return nil, err
	}
	return c.HexString(), nil
}

func applyColorRGB(t *token.Token) (any, error) {
	c, err := parseColor(t)
	if err != nil {
		return nil, err
	}
	r := int(math.Round(c.R * 255))
	g := int(math.Round(c.G * 255))
	b := int(math.Round(c.B * 255))
	if c.A < 0.999 {
		return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, formatNumber(c.A)), nil
	}
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b), nil
}

func applyColorHSL(t *token.Token) (any, error) {
	c, err := parseColor(t)
	if err != nil {
		return nil, err
	}
	h, s, l := colorful.Color{R: c.R, G: c.G, B: c.B}.Hsl()
	return fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", h, s*100, l*100), nil
}

func applyFontJoin(t *token.Token) (any, error) {
	stack, _ := t.ResolvedValue.([]string)
	if len(stack) == 0 {
		return nil, fmt.Errorf("empty font stack")
	}
	return strings.Join(stack, ", "), nil
}

func applyTitleCase(t *token.Token) (any, error) {
	s, _ := t.StringValue()
	return cases.Title(language.English).String(s), nil
}

func parseColor(t *token.Token) (csscolorparser.Color, error) {
	s, _ := t.StringValue()
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return csscolorparser.Color{}, fmt.Errorf("parsing color %q: %w", s, err)
	}
	return c, nil
}

// formatNumber formats a float without a trailing ".0" so generated values
// read like hand-written CSS.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
