// SPDX-License-Identifier: MIT
package themes

import "testing"

func TestParseHex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  RGB
		ok    bool
	}{
		{name: "hash", input: "#00A86B", want: RGB{0, 168, 107}, ok: true},
		{name: "no hash", input: "00A86B", want: RGB{0, 168, 107}, ok: true},
		{name: "lowercase", input: "#00a86b", want: RGB{0, 168, 107}, ok: true},
		{name: "shorthand", input: "#0AB", want: RGB{0, 170, 187}, ok: true},
		{name: "shorthand no hash", input: "fff", want: RGB{255, 255, 255}, ok: true},
		{name: "black", input: "#000000", want: RGB{0, 0, 0}, ok: true},
		{name: "empty", input: ""},
		{name: "hash only", input: "#"},
		{name: "word", input: "not-a-color"},
		{name: "five digits", input: "#12345"},
		{name: "seven digits", input: "#1234567"},
		{name: "four digits", input: "#1234"},
		{name: "non hex", input: "#gggggg"},
		{name: "named color", input: "red"},
		{name: "rgb function", input: "rgb(0, 0, 0)"},
		{name: "rgba function", input: "rgba(255,255,255,0.1)"},
		{name: "double hash", input: "##000000"},
		{name: "surrounding space", input: " #000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseHex(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseHex(%q) ok = %t, want %t", tt.input, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Fatalf("ParseHex(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseHexShorthandMatchesFull(t *testing.T) {
	short, ok := ParseHex("#0AB")
	if !ok {
		t.Fatal("shorthand should parse")
	}
	full, ok := ParseHex("#00AABB")
	if !ok {
		t.Fatal("full form should parse")
	}
	if short != full {
		t.Fatalf("shorthand %+v != full %+v", short, full)
	}
}

func TestParseHexRoundTrip(t *testing.T) {
	inputs := []string{"#000000", "#ffffff", "#00a86b", "#123456", "#abcdef", "#7f7f7f", "#0AB", "#FfF"}

	for _, in := range inputs {
		first, ok := ParseHex(in)
		if !ok {
			t.Fatalf("ParseHex(%q) failed", in)
		}
		for _, c := range []int{first.R, first.G, first.B} {
			if c < 0 || c > 255 {
				t.Fatalf("ParseHex(%q) component out of range: %+v", in, first)
			}
		}

		second, ok := ParseHex(first.Hex())
		if !ok || second != first {
			t.Fatalf("round trip of %q via %q gave %+v, want %+v", in, first.Hex(), second, first)
		}
	}
}

func TestBrightness(t *testing.T) {
	if got := Brightness(RGB{0, 0, 0}); got != 0 {
		t.Errorf("black brightness = %v, want 0", got)
	}
	if got := Brightness(RGB{255, 255, 255}); got != 255 {
		t.Errorf("white brightness = %v, want 255", got)
	}
	// 0.299*128 + 0.587*128 + 0.114*128
	if got := Brightness(RGB{128, 128, 128}); got != 128 {
		t.Errorf("mid gray brightness = %v, want 128", got)
	}
}

func TestRGBFormatting(t *testing.T) {
	c := RGB{R: 10, G: 200, B: 255}
	if got := c.Hex(); got != "#0ac8ff" {
		t.Errorf("Hex() = %s", got)
	}
	if got := c.CSS(); got != "rgb(10, 200, 255)" {
		t.Errorf("CSS() = %s", got)
	}
}
