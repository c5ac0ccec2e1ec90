package formats

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/flowmable/background-color-scorer/pkg/errors"
)

// ToHex converts a color.RGBA to a hex color string in the format #RRGGBB.
// Alpha channel is ignored. All hex digits are uppercase.
func ToHex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseHex parses a background color string of the form #RRGGBB. The leading
// # is optional and hex digits are case-insensitive. Anything else yields an
// *errors.InvalidHexError.
func ParseHex(hex string) (color.RGBA, error) {
	trimmed := strings.TrimPrefix(hex, "#")

	if len(trimmed) != 6 {
		return color.RGBA{}, &errors.InvalidHexError{Input: hex, Reason: "expected 6 hex digits"}
	}

	var r, g, b uint8
	if _, err := fmt.Sscanf(strings.ToLower(trimmed), "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, &errors.InvalidHexError{Input: hex, Reason: "invalid hex digits"}
	}

	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// NormalizeHex canonicalizes a hex string to uppercase #RRGGBB form.
// Used so catalog overrides and candidate slates key consistently.
func NormalizeHex(hex string) (string, error) {
	rgba, err := ParseHex(hex)
	if err != nil {
		return "", err
	}
	return ToHex(rgba), nil
}
