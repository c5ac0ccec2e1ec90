package analysis

import "math"

// sobelMagnitude applies the standard 3x3 Sobel operator to a luminance
// field at (x, y). The caller guarantees 1 <= x < w-1 and 1 <= y < h-1.
func sobelMagnitude(lum []float64, w, x, y int) float64 {
	i := y*w + x

	tl := lum[i-w-1]
	tc := lum[i-w]
	tr := lum[i-w+1]
	ml := lum[i-1]
	mr := lum[i+1]
	bl := lum[i+w-1]
	bc := lum[i+w]
	br := lum[i+w+1]

	gx := -tl + tr - 2*ml + 2*mr - bl + br
	gy := -tl - 2*tc - tr + bl + 2*bc + br

	return math.Sqrt(gx*gx + gy*gy)
}

// gaussianKernel is the classic binomial 5-tap, whose outer product gives a
// 5x5 low-pass kernel summing to 256.
var gaussianKernel = [5]float64{1, 4, 6, 4, 1}

// gaussianSmooth applies the separable 5x5 binomial low-pass to a luminance
// field. The 2-pixel border keeps its raw values.
func gaussianSmooth(lum []float64, w, h int) []float64 {
	out := make([]float64, len(lum))
	copy(out, lum)

	if w < 5 || h < 5 {
		return out
	}

	// Horizontal pass into a scratch field, vertical pass into the output.
	scratch := make([]float64, len(lum))
	copy(scratch, lum)

	for y := 0; y < h; y++ {
		for x := 2; x < w-2; x++ {
			var sum float64
			for k := -2; k <= 2; k++ {
				sum += gaussianKernel[k+2] * lum[y*w+x+k]
			}
			scratch[y*w+x] = sum / 16.0
		}
	}

	for y := 2; y < h-2; y++ {
		for x := 2; x < w-2; x++ {
			var sum float64
			for k := -2; k <= 2; k++ {
				sum += gaussianKernel[k+2] * scratch[(y+k)*w+x]
			}
			out[y*w+x] = sum / 16.0
		}
	}

	return out
}
