package analysis

import (
	"github.com/flowmable/background-color-scorer/pkg/formats"
	"github.com/flowmable/background-color-scorer/pkg/quantize"
)

// LuminanceBins is the fixed resolution of the foreground luminance histogram.
const LuminanceBins = 16

// LegibilitySentinel marks legibility percentiles when the detector declines
// to report (too few high-frequency pixels to be meaningful).
const LegibilitySentinel = -1.0

// DesignFeatures is the immutable feature record produced by Analyze.
// All foreground-derived fields are zero (or sentinel, for legibility) when
// the design has no foreground; Degenerate reports that state.
type DesignFeatures struct {
	// DominantColors holds up to K quantized clusters, weight-descending.
	DominantColors []quantize.DominantColor `json:"dominant_colors"`

	// LuminanceHistogram is the normalized 16-bin histogram of foreground
	// relative luminance; it sums to 1 when the foreground is nonempty.
	LuminanceHistogram [LuminanceBins]float64 `json:"luminance_histogram"`

	MeanLuminance   float64 `json:"mean_luminance"`
	LuminanceSpread float64 `json:"luminance_spread"`

	// EdgeDensity is the fraction of interior foreground pixels whose Sobel
	// magnitude on the raw luminance field exceeds the edge threshold.
	EdgeDensity float64 `json:"edge_density"`

	// WhiteBlackEdgeRatio is the fraction of edge pixels whose 3x3
	// neighborhood touches both a near-white and a near-black pixel.
	WhiteBlackEdgeRatio float64 `json:"white_black_edge_ratio"`

	TransparencyRatio float64 `json:"transparency_ratio"`

	// ForegroundPixels is the deterministic Lab sample used for tail
	// statistics, at most MaxSamples entries.
	ForegroundPixels []formats.LAB `json:"-"`

	ForegroundMeanL     float64 `json:"foreground_mean_l"`
	ForegroundP75Chroma float64 `json:"foreground_p75_chroma"`

	NearWhiteRatio float64 `json:"near_white_ratio"`
	NearBlackRatio float64 `json:"near_black_ratio"`

	ForegroundPixelCount int `json:"foreground_pixel_count"`
	TotalPixelCount      int `json:"total_pixel_count"`

	// Legibility percentiles over probable-text pixels, or LegibilitySentinel
	// when the detector declined. Not consumed by scoring; surfaced for
	// drivers that display legibility diagnostics.
	LegibilityP25       float64 `json:"legibility_p25"`
	LegibilityP50       float64 `json:"legibility_p50"`
	LegibilityP75       float64 `json:"legibility_p75"`
	LegibilityAreaRatio float64 `json:"legibility_area_ratio"`
}

// Degenerate reports whether the design has no foreground at all.
func (f *DesignFeatures) Degenerate() bool {
	return f.ForegroundPixelCount == 0
}
