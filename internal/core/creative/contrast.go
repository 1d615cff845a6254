package creative

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MinContrastRatio is the WCAG AA threshold for body text.
const MinContrastRatio = 4.5

// RGB is an 8-bit per channel color.
type RGB struct {
	R, G, B uint8
}

// ParseHex parses "#RGB" or "#RRGGBB" (case-insensitive, leading # required).
func ParseHex(s string) (RGB, error) {
	h, ok := strings.CutPrefix(strings.TrimSpace(s), "#")
	if !ok {
		return RGB{}, fmt.Errorf("color %q: missing #", s)
	}
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("color %q: want #RGB or #RRGGBB", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("color %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

func linearize(c uint8) float64 {
	v := float64(c) / 255
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// Luminance is the relative luminance of c.
func Luminance(c RGB) float64 {
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

// ContrastRatio returns (L_lighter + 0.05) / (L_darker + 0.05), in [1, 21].
func ContrastRatio(a, b RGB) float64 {
	la, lb := Luminance(a), Luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// SufficientContrast reports whether ratio meets MinContrastRatio.
func SufficientContrast(ratio float64) bool {
	return ratio >= MinContrastRatio
}
