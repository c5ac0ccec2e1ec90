// Package formats provides the color types and conversions used throughout
// the scorer: sRGB parsing from hex strings, CIE XYZ and CIELAB (D65)
// conversion, and relative luminance. All conversions assume sRGB primaries
// and 8-bit non-premultiplied channels.
package formats
