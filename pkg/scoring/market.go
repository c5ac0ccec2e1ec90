package scoring

import (
	"math"

	"github.com/flowmable/background-color-scorer/pkg/formats"
)

// marketBias estimates background-intrinsic commercial appeal on a [-2, 2]
// scale. Muted mid-tone garments sell across seasons; highly saturated
// backgrounds narrow the audience except in the red band, which carries its
// own demand. The engine scales the result before mixing it into the final
// score, and catalog overrides replace it entirely.
func marketBias(lab formats.LAB) float64 {
	c := lab.Chroma()
	l := lab.L
	h := lab.HueAngle()

	neutral := 0.5 * math.Exp(-sq((c-8)/20))
	midL := 0.5 * math.Exp(-sq((l-45)/25))

	var vibrancy float64
	if c > 60 {
		vibrancy = -0.3 * math.Min(1, (c-60)/40)
		if h <= 25 || h >= 345 {
			vibrancy *= 0.3
		}
	}

	var band float64
	switch {
	case h >= 200 && h <= 260:
		band = 0.3
	case h >= 30 && h <= 70:
		band = 0.2
	case h >= 300 && h <= 340:
		band = -0.2
	}

	versatility := 0.4 * math.Exp(-sq((l-50)/40)) * math.Exp(-sq(c/50))

	bias := neutral + midL + vibrancy + band + versatility - 0.35
	return formats.Clamp(bias, -2, 2)
}

func sq(v float64) float64 {
	return v * v
}
