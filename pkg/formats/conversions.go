package formats

import (
	"image/color"
	"math"
)

// RGBAToLAB converts an sRGB color to CIELAB under the D65 illuminant.
func RGBAToLAB(c color.RGBA) LAB {
	return XYZToLAB(RGBAToXYZ(c))
}

// RGBAToXYZ converts an sRGB color to CIE XYZ scaled to the [0, 100] range.
func RGBAToXYZ(c color.RGBA) XYZ {
	r := inverseSRGBGamma(float64(c.R) / 255.0)
	g := inverseSRGBGamma(float64(c.G) / 255.0)
	b := inverseSRGBGamma(float64(c.B) / 255.0)

	x := r*0.4124564 + g*0.3575761 + b*0.1804375
	y := r*0.2126729 + g*0.7151522 + b*0.0721750
	z := r*0.0193339 + g*0.1191920 + b*0.9503041

	return XYZ{
		X: x * 100.0,
		Y: y * 100.0,
		Z: z * 100.0,
	}
}

func XYZToLAB(xyz XYZ) LAB {
	fx := labTransform(xyz.X / D65Illuminant.X)
	fy := labTransform(xyz.Y / D65Illuminant.Y)
	fz := labTransform(xyz.Z / D65Illuminant.Z)

	return LAB{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// Luminance returns the relative luminance of an sRGB color in [0, 1],
// computed on gamma-expanded channels with the BT.709 coefficients.
func Luminance(c color.RGBA) float64 {
	r := inverseSRGBGamma(float64(c.R) / 255.0)
	g := inverseSRGBGamma(float64(c.G) / 255.0)
	b := inverseSRGBGamma(float64(c.B) / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Clamp constrains a value to the range [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func inverseSRGBGamma(value float64) float64 {
	if value <= 0.04045 {
		return value / 12.92
	}
	return math.Pow((value+0.055)/1.055, 2.4)
}

func labTransform(t float64) float64 {
	if t > 0.008856 {
		return math.Pow(t, 1.0/3.0)
	}
	return (903.3*t + 16) / 116
}
