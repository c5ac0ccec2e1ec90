package analysis

import (
	"sort"

	"github.com/flowmable/background-color-scorer/pkg/formats"
)

// samplePixels builds the deterministic Lab sample used for tail contrast
// statistics. Small foregrounds are taken whole in row-major order. Larger
// ones are sampled in two tiers: the strongest edges on a low-passed
// luminance field first (contrast failure hurts most where detail lives),
// then a stratified round-robin over a coarse spatial grid so flat regions
// still count.
func (a *Analyzer) samplePixels(lum []float64, labs []formats.LAB, foreground []bool, w, h, fgCount int) []formats.LAB {
	cfg := a.settings.Analysis

	if fgCount <= cfg.MaxSamples {
		out := make([]formats.LAB, 0, fgCount)
		for i, fg := range foreground {
			if fg {
				out = append(out, labs[i])
			}
		}
		return out
	}

	smoothed := gaussianSmooth(lum, w, h)

	type edgeCandidate struct {
		idx int
		mag float64
	}

	candidates := make([]edgeCandidate, 0, fgCount)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			i := y*w + x
			if foreground[i] {
				candidates = append(candidates, edgeCandidate{idx: i, mag: sobelMagnitude(smoothed, w, x, y)})
			}
		}
	}

	// Stable sort on descending magnitude; candidates were appended in pixel
	// index order, so ties keep that order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].mag > candidates[j].mag
	})

	kEdge := int(cfg.EdgeSampleShare * float64(fgCount))
	if kEdge < cfg.EdgeSampleMin {
		kEdge = cfg.EdgeSampleMin
	}
	if kEdge > cfg.EdgeSampleMax {
		kEdge = cfg.EdgeSampleMax
	}
	if kEdge > len(candidates) {
		kEdge = len(candidates)
	}

	out := make([]formats.LAB, 0, cfg.MaxSamples)
	picked := make([]bool, len(foreground))
	for i := 0; i < kEdge; i++ {
		picked[candidates[i].idx] = true
		out = append(out, labs[candidates[i].idx])
	}

	// Stratified fill: each grid cell queues its unpicked foreground pixels
	// in index order; cells are visited round-robin in row-major order.
	gf := cfg.SampleGridFactor
	cells := make([][]int, gf*gf)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			if foreground[i] && !picked[i] {
				cell := (y*gf/h)*gf + x*gf/w
				cells[cell] = append(cells[cell], i)
			}
		}
	}

	budget := cfg.MaxSamples - kEdge
	heads := make([]int, len(cells))
	for budget > 0 {
		advanced := false
		for c := range cells {
			if budget == 0 {
				break
			}
			if heads[c] < len(cells[c]) {
				out = append(out, labs[cells[c][heads[c]]])
				heads[c]++
				budget--
				advanced = true
			}
		}
		if !advanced {
			break
		}
	}

	return out
}
