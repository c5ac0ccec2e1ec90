package analysis

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/flowmable/background-color-scorer/pkg/formats"
)

// legibility runs the high-frequency text detector on a separately resized
// copy of the image, bounded to the configured dimension on its longest
// side. Alpha is ignored during gradient computation and only filters which
// pixels contribute luminance percentiles. When too few pixels clear the
// adaptive threshold the percentiles stay at their sentinel values.
func (a *Analyzer) legibility(img image.Image, f *DesignFeatures) {
	cfg := a.settings.Analysis

	grid := resampleNRGBA(img, cfg.LegibilityMaxDim)
	w := grid.Rect.Dx()
	h := grid.Rect.Dy()
	total := w * h

	if w < 3 || h < 3 {
		return
	}

	lum := make([]float64, total)
	alpha := make([]uint8, total)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			off := grid.PixOffset(x, y)
			lum[i] = formats.Luminance(color.RGBA{
				R: grid.Pix[off],
				G: grid.Pix[off+1],
				B: grid.Pix[off+2],
				A: 255,
			})
			alpha[i] = grid.Pix[off+3]
		}
	}

	var magSum, magSqSum float64
	var interior int
	mags := make([]float64, total)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			m := sobelMagnitude(lum, w, x, y)
			mags[y*w+x] = m
			magSum += m
			magSqSum += m * m
			interior++
		}
	}

	mean := magSum / float64(interior)
	variance := magSqSum/float64(interior) - mean*mean
	var stddev float64
	if variance > 0 {
		stddev = math.Sqrt(variance)
	}

	threshold := mean + 2*stddev
	if threshold < cfg.LegibilityFloor {
		threshold = cfg.LegibilityFloor
	}

	alphaMin := uint8(cfg.AlphaThreshold)
	collected := make([]float64, 0, interior/16)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			i := y*w + x
			if mags[i] > threshold && alpha[i] > alphaMin {
				collected = append(collected, lum[i])
			}
		}
	}

	floor := cfg.LegibilityMinCollected
	if areaFloor := int(cfg.LegibilityMinAreaShare * float64(total)); areaFloor > floor {
		floor = areaFloor
	}
	if len(collected) < floor {
		return
	}

	sort.Float64s(collected)
	f.LegibilityP25 = percentile(collected, 0.25)
	f.LegibilityP50 = percentile(collected, 0.50)
	f.LegibilityP75 = percentile(collected, 0.75)
	f.LegibilityAreaRatio = float64(len(collected)) / float64(total)
}

// percentile indexes a sorted slice at floor(q*n), clamped to the last entry.
func percentile(sorted []float64, q float64) float64 {
	idx := int(q * float64(len(sorted)))
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
