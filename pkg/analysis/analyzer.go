package analysis

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/flowmable/background-color-scorer/pkg/formats"
	"github.com/flowmable/background-color-scorer/pkg/quantize"
	"github.com/flowmable/background-color-scorer/pkg/settings"
)

// Analyzer performs the one-shot feature extraction over a design image.
type Analyzer struct {
	settings *settings.Settings
}

func New(s *settings.Settings) *Analyzer {
	if s == nil {
		s = settings.DefaultSettings()
	}
	return &Analyzer{settings: s}
}

// Analyze produces a fully populated DesignFeatures record. It never fails:
// a fully transparent image yields a well-formed degenerate record.
func Analyze(img image.Image, s *settings.Settings) *DesignFeatures {
	return New(s).Analyze(img)
}

func (a *Analyzer) Analyze(img image.Image) *DesignFeatures {
	cfg := a.settings.Analysis

	grid := resampleNRGBA(img, cfg.MaxAnalysisDim)
	w := grid.Rect.Dx()
	h := grid.Rect.Dy()
	total := w * h

	alphaMin := uint8(cfg.AlphaThreshold)

	foreground := make([]bool, total)
	lum := make([]float64, total)
	labs := make([]formats.LAB, total)
	nearWhite := make([]bool, total)
	nearBlack := make([]bool, total)
	fgRGBA := make([]color.RGBA, 0, total)

	features := &DesignFeatures{
		TotalPixelCount: total,
		LegibilityP25:   LegibilitySentinel,
		LegibilityP50:   LegibilitySentinel,
		LegibilityP75:   LegibilitySentinel,
	}

	var (
		fgCount     int
		transparent int
		lumSum      float64
		lumSqSum    float64
		meanLSum    float64
		nwCount     int
		nbCount     int
	)
	chromas := make([]float64, 0, total)
	var hist [LuminanceBins]int

	// Single pass: segmentation plus every per-pixel accumulator.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			off := grid.PixOffset(x, y)
			rgba := color.RGBA{
				R: grid.Pix[off],
				G: grid.Pix[off+1],
				B: grid.Pix[off+2],
				A: 255,
			}

			if grid.Pix[off+3] < alphaMin {
				transparent++
				continue
			}

			foreground[i] = true
			fgCount++
			fgRGBA = append(fgRGBA, rgba)

			l := formats.Luminance(rgba)
			lum[i] = l
			lumSum += l
			lumSqSum += l * l

			bin := int(l * LuminanceBins)
			if bin >= LuminanceBins {
				bin = LuminanceBins - 1
			}
			hist[bin]++

			lab := formats.RGBAToLAB(rgba)
			labs[i] = lab
			meanLSum += lab.L

			chroma := lab.Chroma()
			chromas = append(chromas, chroma)

			if lab.L > cfg.NearWhiteLightnessMin && chroma < cfg.NeutralChromaMax {
				nearWhite[i] = true
				nwCount++
			}
			if lab.L < cfg.NearBlackLightnessMax && chroma < cfg.NeutralChromaMax {
				nearBlack[i] = true
				nbCount++
			}
		}
	}

	features.ForegroundPixelCount = fgCount
	features.TransparencyRatio = float64(transparent) / float64(total)

	if fgCount == 0 {
		return features
	}

	n := float64(fgCount)
	features.MeanLuminance = lumSum / n
	variance := lumSqSum/n - features.MeanLuminance*features.MeanLuminance
	if variance > 0 {
		features.LuminanceSpread = math.Sqrt(variance)
	}
	for i, c := range hist {
		features.LuminanceHistogram[i] = float64(c) / n
	}
	features.ForegroundMeanL = meanLSum / n
	features.NearWhiteRatio = float64(nwCount) / n
	features.NearBlackRatio = float64(nbCount) / n

	sort.Float64s(chromas)
	p75 := int(0.75 * float64(len(chromas)))
	if p75 >= len(chromas) {
		p75 = len(chromas) - 1
	}
	features.ForegroundP75Chroma = chromas[p75]

	features.EdgeDensity, features.WhiteBlackEdgeRatio = a.edgeMetrics(lum, foreground, nearWhite, nearBlack, w, h)

	features.DominantColors = quantize.MedianCut(fgRGBA, cfg.DominantColorCount, fgCount)

	features.ForegroundPixels = a.samplePixels(lum, labs, foreground, w, h, fgCount)

	a.legibility(img, features)

	return features
}

// edgeMetrics computes the structural edge density over interior foreground
// pixels (those fully surrounded by foreground in the 8-neighborhood) and
// the share of edge pixels whose neighborhood spans near-white to near-black.
func (a *Analyzer) edgeMetrics(lum []float64, foreground, nearWhite, nearBlack []bool, w, h int) (float64, float64) {
	threshold := a.settings.Analysis.EdgeMagnitudeThreshold

	var interior, edges, wbEdges int

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			if !surroundedByForeground(foreground, w, x, y) {
				continue
			}
			interior++

			if sobelMagnitude(lum, w, x, y) <= threshold {
				continue
			}
			edges++

			if touchesWhiteAndBlack(nearWhite, nearBlack, w, x, y) {
				wbEdges++
			}
		}
	}

	if interior == 0 {
		return 0, 0
	}

	density := float64(edges) / float64(interior)
	if edges == 0 {
		return density, 0
	}
	return density, float64(wbEdges) / float64(edges)
}

func surroundedByForeground(foreground []bool, w, x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if !foreground[(y+dy)*w+x+dx] {
				return false
			}
		}
	}
	return true
}

func touchesWhiteAndBlack(nearWhite, nearBlack []bool, w, x, y int) bool {
	var hasWhite, hasBlack bool
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			i := (y+dy)*w + x + dx
			if nearWhite[i] {
				hasWhite = true
			}
			if nearBlack[i] {
				hasBlack = true
			}
		}
	}
	return hasWhite && hasBlack
}
