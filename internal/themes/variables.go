// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"
	"strconv"
)

// VariableMap maps CSS custom property names to values
type VariableMap map[string]string

// primaryAlphas are the translucent primary variants, keyed by name suffix.
var primaryAlphas = [...]struct {
	suffix string
	alpha  string
}{
	{"15", "0.15"},
	{"20", "0.20"},
	{"25", "0.25"},
	{"40", "0.40"},
	{"60", "0.60"},
}

// ComputeThemeVariables builds the CSS variables for theme. In dark mode the
// named fields come from DeriveDarkTheme, while list colors and the primary
// RGB/alpha variants always come from the theme as given. A nil theme yields
// an empty map. Empty fields produce no entry.
func ComputeThemeVariables(theme *ColorTheme, darkMode bool) VariableMap {
	vars := VariableMap{}
	if theme == nil {
		return vars
	}

	working := *theme
	if darkMode {
		working = DeriveDarkTheme(*theme)
	}

	for _, f := range themeFields {
		if v := f.value(&working); v != "" {
			vars[f.name] = v
		}
	}

	for i, color := range theme.ListColors {
		vars["--theme-list-color-"+strconv.Itoa(i+1)] = color
	}

	if rgb, ok := ParseHex(theme.Primary); ok {
		vars["--theme-primary-rgb"] = fmt.Sprintf("%d, %d, %d", rgb.R, rgb.G, rgb.B)
		for _, a := range primaryAlphas {
			vars["--theme-primary-"+a.suffix] = fmt.Sprintf("rgba(%d, %d, %d, %s)", rgb.R, rgb.G, rgb.B, a.alpha)
		}
	}

	return vars
}
