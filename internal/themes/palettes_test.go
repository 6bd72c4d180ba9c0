package themes

import (
	"errors"
	"testing"
)

func TestPaletteExists(t *testing.T) {
	palette := GetPalette("slate")
	if palette == nil {
		t.Fatal("slate palette not found")
	}
	if palette.Name != "slate" {
		t.Errorf("expected name slate, got %s", palette.Name)
	}
}

func TestUnknownPalette(t *testing.T) {
	if GetPalette("mystery") != nil {
		t.Fatal("expected nil for unknown palette")
	}

	_, err := LookupPalette("mystery")
	if !errors.Is(err, ErrUnknownPalette) {
		t.Fatalf("expected ErrUnknownPalette, got %v", err)
	}
}

func TestListPalettes(t *testing.T) {
	palettes := ListPalettes()
	if len(palettes) != len(paletteOrder) {
		t.Errorf("expected %d palettes, got %d", len(paletteOrder), len(palettes))
	}
	for i, p := range palettes {
		if p.Name != paletteOrder[i] {
			t.Errorf("palette %d: expected %s, got %s", i, paletteOrder[i], p.Name)
		}
	}
}

func TestPaletteNamesUnique(t *testing.T) {
	palettes := ListPalettes()
	names := make(map[string]bool)
	for _, p := range palettes {
		if names[p.Name] {
			t.Errorf("duplicate palette name: %s", p.Name)
		}
		names[p.Name] = true
	}
}

func TestPalettePrimaryFamilyIsHex(t *testing.T) {
	for _, p := range ListPalettes() {
		colorMap := map[string]string{
			"Primary":      p.Theme.Primary,
			"PrimaryHover": p.Theme.PrimaryHover,
			"PrimaryLight": p.Theme.PrimaryLight,
			"PrimaryDark":  p.Theme.PrimaryDark,
			"BgPrimary":    p.Theme.BgPrimary,
			"TextPrimary":  p.Theme.TextPrimary,
		}

		for name, color := range colorMap {
			if _, ok := ParseHex(color); !ok {
				t.Errorf("%s.%s should be hex, got: %s", p.Name, name, color)
			}
		}
	}
}

func TestPaletteFillsEveryField(t *testing.T) {
	palette := GetPalette("indigo")
	vars := ComputeThemeVariables(&palette.Theme, false)

	for _, f := range themeFields {
		if vars[f.name] == "" {
			t.Errorf("palette indigo leaves %s empty", f.name)
		}
	}
	if vars["--theme-list-color-1"] != palette.Theme.Primary {
		t.Errorf("expected first list color to be primary, got %s", vars["--theme-list-color-1"])
	}
}

func TestGetPaletteReturnsFreshCopy(t *testing.T) {
	first := GetPalette("rose")
	first.Theme.Primary = "#000000"
	first.Theme.ListColors[0] = "#000000"

	second := GetPalette("rose")
	if second.Theme.Primary != "#e11d48" {
		t.Fatalf("palette was mutated through a previous lookup: %s", second.Theme.Primary)
	}
	if second.Theme.ListColors[0] != "#e11d48" {
		t.Fatalf("palette list colors were mutated: %s", second.Theme.ListColors[0])
	}
}
