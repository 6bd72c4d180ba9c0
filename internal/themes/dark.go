// SPDX-License-Identifier: MIT
package themes

const (
	// darkBrightnessThreshold is the brightness below which the primary
	// color is lightened for dark backgrounds.
	darkBrightnessThreshold = 128

	darkLighten    = 80
	darkHoverShift = 20
	darkDarkShift  = 20
)

// DeriveDarkTheme returns a dark-mode copy of theme. Background, text, border
// and code colors are replaced with a fixed dark palette; a primary color
// that is too dark to read on it is lightened along with its hover and dark
// variants. The input is not modified.
func DeriveDarkTheme(theme ColorTheme) ColorTheme {
	dark := theme

	dark.BgPrimary = "#1a1a1a"
	dark.BgSecondary = "#2d2d2d"
	dark.BgTertiary = "#3a3a3a"
	dark.TextPrimary = "#e6e6e6"
	dark.TextSecondary = "#b3b3b3"
	dark.TextTertiary = "#888888"
	dark.BorderLight = "#404040"
	dark.BorderMedium = "#555555"
	dark.InlineCodeBg = "rgba(255,255,255,0.1)"
	dark.InlineCodeText = "#f8f8f2"
	dark.InlineCodeBorder = "rgba(255,255,255,0.15)"
	dark.BlockquoteBackground = "rgba(255,255,255,0.05)"
	dark.BlockquoteBorder = theme.Primary
	dark.TableHeaderBg = "#2d2d2d"
	dark.TableBorder = "#404040"
	dark.HrColor = theme.Primary

	rgb, ok := ParseHex(theme.Primary)
	if !ok || Brightness(rgb) >= darkBrightnessThreshold {
		return dark
	}

	light := RGB{
		R: min(255, rgb.R+darkLighten),
		G: min(255, rgb.G+darkLighten),
		B: min(255, rgb.B+darkLighten),
	}
	dark.Primary = light.CSS()
	dark.PrimaryHover = RGB{
		R: min(255, light.R+darkHoverShift),
		G: min(255, light.G+darkHoverShift),
		B: min(255, light.B+darkHoverShift),
	}.CSS()
	// Only the upper bound is clamped; light components are at least 80 so
	// the result never goes below 60.
	dark.PrimaryDark = RGB{
		R: min(255, light.R-darkDarkShift),
		G: min(255, light.G-darkDarkShift),
		B: min(255, light.B-darkDarkShift),
	}.CSS()

	return dark
}
