package chromatic

import (
	"math"

	"github.com/flowmable/background-color-scorer/pkg/formats"
)

const (
	pow25To7 = 6103515625.0 // 25^7, constant in the chroma rotation terms
	degToRad = math.Pi / 180.0
)

// DeltaE00 computes the CIEDE2000 color difference between two CIELAB colors
// following Sharma, Wu & Dalal (2005), including the hue rotation term.
// The result is symmetric in its arguments, never negative, and exactly zero
// for identical inputs. Hue angles are handled in degrees with wrap at 360.
func DeltaE00(lab1, lab2 formats.LAB) float64 {
	c1 := math.Sqrt(lab1.A*lab1.A + lab1.B*lab1.B)
	c2 := math.Sqrt(lab2.A*lab2.A + lab2.B*lab2.B)
	cBar := (c1 + c2) / 2.0

	cBar7 := math.Pow(cBar, 7)
	g := 0.5 * (1.0 - math.Sqrt(cBar7/(cBar7+pow25To7)))

	a1p := (1.0 + g) * lab1.A
	a2p := (1.0 + g) * lab2.A

	c1p := math.Sqrt(a1p*a1p + lab1.B*lab1.B)
	c2p := math.Sqrt(a2p*a2p + lab2.B*lab2.B)

	h1p := hueAngle(lab1.B, a1p)
	h2p := hueAngle(lab2.B, a2p)

	dLp := lab2.L - lab1.L
	dCp := c2p - c1p

	// Division-by-zero guard at C1'·C2' = 0 per Sharma 2005: hue difference
	// is undefined for achromatic colors and contributes nothing.
	var dhp float64
	if c1p*c2p != 0 {
		dhp = h2p - h1p
		if dhp > 180 {
			dhp -= 360
		} else if dhp < -180 {
			dhp += 360
		}
	}
	dHp := 2.0 * math.Sqrt(c1p*c2p) * math.Sin(dhp/2.0*degToRad)

	lBarP := (lab1.L + lab2.L) / 2.0
	cBarP := (c1p + c2p) / 2.0

	var hBarP float64
	if c1p*c2p == 0 {
		hBarP = h1p + h2p
	} else {
		sum := h1p + h2p
		switch {
		case math.Abs(h1p-h2p) <= 180:
			hBarP = sum / 2.0
		case sum < 360:
			hBarP = (sum + 360) / 2.0
		default:
			hBarP = (sum - 360) / 2.0
		}
	}

	t := 1.0 -
		0.17*math.Cos((hBarP-30)*degToRad) +
		0.24*math.Cos(2*hBarP*degToRad) +
		0.32*math.Cos((3*hBarP+6)*degToRad) -
		0.20*math.Cos((4*hBarP-63)*degToRad)

	dTheta := 30.0 * math.Exp(-math.Pow((hBarP-275)/25.0, 2))

	cBarP7 := math.Pow(cBarP, 7)
	rc := 2.0 * math.Sqrt(cBarP7/(cBarP7+pow25To7))
	rt := -math.Sin(2*dTheta*degToRad) * rc

	lDev := (lBarP - 50) * (lBarP - 50)
	sl := 1.0 + 0.015*lDev/math.Sqrt(20.0+lDev)
	sc := 1.0 + 0.045*cBarP
	sh := 1.0 + 0.015*cBarP*t

	vL := dLp / sl
	vC := dCp / sc
	vH := dHp / sh

	return math.Sqrt(vL*vL + vC*vC + vH*vH + rt*vC*vH)
}

// HueDistance returns the shortest angular distance between two hue angles in
// degrees, accounting for the circular wrap at 360. Result is in [0, 180].
func HueDistance(h1, h2 float64) float64 {
	diff := math.Abs(h1 - h2)
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

// hueAngle returns atan2(b, a') in degrees normalized to [0, 360).
func hueAngle(b, aPrime float64) float64 {
	if b == 0 && aPrime == 0 {
		return 0
	}
	h := math.Atan2(b, aPrime) / degToRad
	if h < 0 {
		h += 360
	}
	return h
}
