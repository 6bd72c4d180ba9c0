// SPDX-License-Identifier: MIT
package themes

// ColorTheme describes a site's color palette. Fields hold hex colors
// (#RRGGBB or #RGB) or preformatted CSS colors such as rgba(...). An empty
// field is treated as absent.
type ColorTheme struct {
	Primary      string `json:"primary,omitempty" yaml:"primary,omitempty"`
	PrimaryHover string `json:"primaryHover,omitempty" yaml:"primaryHover,omitempty"`
	PrimaryLight string `json:"primaryLight,omitempty" yaml:"primaryLight,omitempty"`
	PrimaryDark  string `json:"primaryDark,omitempty" yaml:"primaryDark,omitempty"`

	TextPrimary   string `json:"textPrimary,omitempty" yaml:"textPrimary,omitempty"`
	TextSecondary string `json:"textSecondary,omitempty" yaml:"textSecondary,omitempty"`
	TextTertiary  string `json:"textTertiary,omitempty" yaml:"textTertiary,omitempty"`

	BgPrimary   string `json:"bgPrimary,omitempty" yaml:"bgPrimary,omitempty"`
	BgSecondary string `json:"bgSecondary,omitempty" yaml:"bgSecondary,omitempty"`
	BgTertiary  string `json:"bgTertiary,omitempty" yaml:"bgTertiary,omitempty"`

	BorderLight  string `json:"borderLight,omitempty" yaml:"borderLight,omitempty"`
	BorderMedium string `json:"borderMedium,omitempty" yaml:"borderMedium,omitempty"`

	InlineCodeBg     string `json:"inlineCodeBg,omitempty" yaml:"inlineCodeBg,omitempty"`
	InlineCodeText   string `json:"inlineCodeText,omitempty" yaml:"inlineCodeText,omitempty"`
	InlineCodeBorder string `json:"inlineCodeBorder,omitempty" yaml:"inlineCodeBorder,omitempty"`

	BlockquoteBackground string `json:"blockquoteBackground,omitempty" yaml:"blockquoteBackground,omitempty"`
	BlockquoteBorder     string `json:"blockquoteBorder,omitempty" yaml:"blockquoteBorder,omitempty"`
	HrColor              string `json:"hrColor,omitempty" yaml:"hrColor,omitempty"`
	TableHeaderBg        string `json:"tableHeaderBg,omitempty" yaml:"tableHeaderBg,omitempty"`
	TableBorder          string `json:"tableBorder,omitempty" yaml:"tableBorder,omitempty"`

	// ListColors is positional: element i becomes --theme-list-color-{i+1}.
	ListColors []string `json:"listColors,omitempty" yaml:"listColors,omitempty"`
}

// themeField pairs a CSS variable name with the theme field it reads.
type themeField struct {
	name  string
	value func(t *ColorTheme) string
}

var themeFields = [...]themeField{
	{"--theme-primary", func(t *ColorTheme) string { return t.Primary }},
	{"--theme-primary-hover", func(t *ColorTheme) string { return t.PrimaryHover }},
	{"--theme-primary-light", func(t *ColorTheme) string { return t.PrimaryLight }},
	{"--theme-primary-dark", func(t *ColorTheme) string { return t.PrimaryDark }},
	{"--theme-text-primary", func(t *ColorTheme) string { return t.TextPrimary }},
	{"--theme-text-secondary", func(t *ColorTheme) string { return t.TextSecondary }},
	{"--theme-text-tertiary", func(t *ColorTheme) string { return t.TextTertiary }},
	{"--theme-bg-primary", func(t *ColorTheme) string { return t.BgPrimary }},
	{"--theme-bg-secondary", func(t *ColorTheme) string { return t.BgSecondary }},
	{"--theme-bg-tertiary", func(t *ColorTheme) string { return t.BgTertiary }},
	{"--theme-border-light", func(t *ColorTheme) string { return t.BorderLight }},
	{"--theme-border-medium", func(t *ColorTheme) string { return t.BorderMedium }},
	{"--theme-inline-code-bg", func(t *ColorTheme) string { return t.InlineCodeBg }},
	{"--theme-inline-code-text", func(t *ColorTheme) string { return t.InlineCodeText }},
	{"--theme-inline-code-border", func(t *ColorTheme) string { return t.InlineCodeBorder }},
	{"--theme-blockquote-background", func(t *ColorTheme) string { return t.BlockquoteBackground }},
	{"--theme-blockquote-border", func(t *ColorTheme) string { return t.BlockquoteBorder }},
	{"--theme-hr-color", func(t *ColorTheme) string { return t.HrColor }},
	{"--theme-table-header-bg", func(t *ColorTheme) string { return t.TableHeaderBg }},
	{"--theme-table-border", func(t *ColorTheme) string { return t.TableBorder }},
}
