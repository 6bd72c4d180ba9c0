// SPDX-License-Identifier: MIT
package themes

import (
	"errors"
	"fmt"
)

// ErrUnknownPalette is returned when a palette name is not registered
var ErrUnknownPalette = errors.New("unknown palette")

// Palette is a named, ready-to-use light theme
type Palette struct {
	Name  string // "slate", "indigo", etc.
	Theme ColorTheme
}

// paletteOrder is the display order for ListPalettes
var paletteOrder = []string{
	"slate", "indigo", "rose", "emerald", "navy",
	"purple", "teal", "amber", "neutral",
}

// GetPalette returns a palette by name, or nil if it does not exist
func GetPalette(name string) *Palette {
	palettes := map[string]*Palette{
		"slate":   newPalette("slate", "#64748b", "#475569", "#e2e8f0", "#334155", "#0f172a"),
		"indigo":  newPalette("indigo", "#4f46e5", "#4338ca", "#e0e7ff", "#3730a3", "#f97316"),
		"rose":    newPalette("rose", "#e11d48", "#be123c", "#ffe4e6", "#9f1239", "#64748b"),
		"emerald": newPalette("emerald", "#059669", "#047857", "#d1fae5", "#065f46", "#f59e0b"),
		"navy":    newPalette("navy", "#000080", "#000066", "#e0e0f5", "#00004d", "#fbbf24"),
		"purple":  newPalette("purple", "#a855f7", "#9333ea", "#f3e8ff", "#7e22ce", "#ec4899"),
		"teal":    newPalette("teal", "#14b8a6", "#0d9488", "#ccfbf1", "#0f766e", "#f87171"),
		"amber":   newPalette("amber", "#f59e0b", "#d97706", "#fef3c7", "#b45309", "#6366f1"),
		"neutral": newPalette("neutral", "#6b7280", "#4b5563", "#f3f4f6", "#374151", "#4b5563"),
	}

	return palettes[name]
}

// LookupPalette is GetPalette with an error for unknown names
func LookupPalette(name string) (*Palette, error) {
	p := GetPalette(name)
	if p == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPalette, name)
	}
	return p, nil
}

// ListPalettes returns all available palettes in order
func ListPalettes() []*Palette {
	var palettes []*Palette
	for _, name := range paletteOrder {
		if p := GetPalette(name); p != nil {
			palettes = append(palettes, p)
		}
	}
	return palettes
}

// newPalette fills the neutral light-mode slots around a primary family
func newPalette(name, primary, hover, light, dark, secondary string) *Palette {
	return &Palette{
		Name: name,
		Theme: ColorTheme{
			Primary:      primary,
			PrimaryHover: hover,
			PrimaryLight: light,
			PrimaryDark:  dark,

			TextPrimary:   "#1f2937",
			TextSecondary: "#4b5563",
			TextTertiary:  "#9ca3af",

			BgPrimary:   "#ffffff",
			BgSecondary: "#f9fafb",
			BgTertiary:  "#f3f4f6",

			BorderLight:  "#e5e7eb",
			BorderMedium: "#d1d5db",

			InlineCodeBg:     "rgba(0,0,0,0.05)",
			InlineCodeText:   "#c7254e",
			InlineCodeBorder: "rgba(0,0,0,0.1)",

			BlockquoteBackground: light,
			BlockquoteBorder:     primary,
			HrColor:              "#e5e7eb",
			TableHeaderBg:        "#f9fafb",
			TableBorder:          "#e5e7eb",

			ListColors: []string{primary, secondary, dark},
		},
	}
}
