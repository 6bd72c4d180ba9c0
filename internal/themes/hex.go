// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	shorthandHex = regexp.MustCompile(`(?i)^([a-f\d])([a-f\d])([a-f\d])$`)
	fullHex      = regexp.MustCompile(`(?i)^([a-f\d]{2})([a-f\d]{2})([a-f\d]{2})$`)
)

// RGB holds 8-bit color components
type RGB struct {
	R, G, B int
}

// Hex formats the color as #rrggbb
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// CSS formats the color as rgb(r, g, b)
func (c RGB) CSS() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// ParseHex parses #RRGGBB, RRGGBB, #RGB or RGB. The second return value is
// false for anything else, including rgb() strings and named colors.
func ParseHex(s string) (RGB, bool) {
	if s == "" {
		return RGB{}, false
	}
	s = strings.TrimPrefix(s, "#")

	if m := shorthandHex.FindStringSubmatch(s); m != nil {
		s = m[1] + m[1] + m[2] + m[2] + m[3] + m[3]
	}

	m := fullHex.FindStringSubmatch(s)
	if m == nil {
		return RGB{}, false
	}

	var c [3]int
	for i, part := range m[1:] {
		v, err := strconv.ParseUint(part, 16, 8)
		if err != nil {
			return RGB{}, false
		}
		c[i] = int(v)
	}
	return RGB{R: c[0], G: c[1], B: c[2]}, true
}

// Brightness returns the perceived brightness (0-255) using the
// 299/587/114 weighted luma.
func Brightness(c RGB) float64 {
	return float64(299*c.R+587*c.G+114*c.B) / 1000
}
