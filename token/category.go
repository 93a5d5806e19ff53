/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

// Category classifies a token by its first path segment. The categories
// below are closed: formatters may rely on their theme-key mapping. Any
// other first segment is an open category and maps to itself.
type Category string

// Closed token categories.
const (
	CategoryColor   Category = "color"
	CategorySpacing Category = "spacing"
	CategorySize    Category = "size"
	CategoryFont    Category = "font"
	CategoryRadius  Category = "radius"
	CategoryShadow  Category = "shadow"
	CategoryOpacity Category = "opacity"
	CategoryScreen  Category = "screen"
)

// themeKeys maps closed categories to the theme config keys expected by
// utility-CSS frameworks.
var themeKeys = map[Category]string{
	CategoryColor:   "colors",
	CategorySpacing: "spacing",
	CategorySize:    "sizing",
	CategoryFont:    "fontFamily",
	CategoryRadius:  "borderRadius",
	CategoryShadow:  "boxShadow",
	CategoryOpacity: "opacity",
	CategoryScreen:  "screens",
}

// Known returns true for closed categories.
func (c Category) Known() bool {
	_, ok := themeKeys[c]
	return ok
}

// ThemeKey returns the theme config key for this category. Open categories
// pass through unchanged.
func (c Category) ThemeKey() string {
	if key, ok := themeKeys[c]; ok {
		return key
	}
	return string(c)
}
