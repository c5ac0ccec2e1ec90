package formats

import (
	"fmt"
	"math"
)

type LAB struct {
	L float64
	A float64
	B float64
}

func NewLAB(l, a, b float64) LAB {
	return LAB{L: l, A: a, B: b}
}

// Chroma returns the LCh chroma component sqrt(a² + b²).
func (lab LAB) Chroma() float64 {
	return math.Sqrt(lab.A*lab.A + lab.B*lab.B)
}

// HueAngle returns the LCh hue angle in degrees, normalized to [0, 360).
// Achromatic colors (a = b = 0) report 0.
func (lab LAB) HueAngle() float64 {
	h := math.Atan2(lab.B, lab.A) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return h
}

func (lab LAB) IsValid() bool {
	return lab.L >= 0 && lab.L <= 100 &&
		lab.A >= -128 && lab.A <= 127 &&
		lab.B >= -128 && lab.B <= 127
}

func (lab LAB) String() string {
	return fmt.Sprintf("LAB(%.2f, %.2f, %.2f)", lab.L, lab.A, lab.B)
}
