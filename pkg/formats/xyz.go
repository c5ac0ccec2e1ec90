package formats

type XYZ struct {
	X float64
	Y float64
	Z float64
}

// D65Illuminant is the reference white for all Lab conversions in this module.
var D65Illuminant = XYZ{X: 95.047, Y: 100.000, Z: 108.883}

func NewXYZ(x, y, z float64) XYZ {
	return XYZ{X: x, Y: y, Z: z}
}
