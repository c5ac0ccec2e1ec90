package scoring

import (
	"math"

	"github.com/flowmable/background-color-scorer/pkg/analysis"
	"github.com/flowmable/background-color-scorer/pkg/chromatic"
	"github.com/flowmable/background-color-scorer/pkg/formats"
	"github.com/flowmable/background-color-scorer/pkg/settings"
)

// Weights of the composite raw contrast. The weighted-mean term tracks the
// typical cluster, the tail term tracks the worst-visible region (amplified
// for fragile designs), the minimum term punishes any cluster sinking into
// the background.
const (
	weightMeanShare = 0.45
	tailShare       = 0.30
	minClusterShare = 0.20
)

// Evaluator produces physics-only raw scores for one background at a time.
type Evaluator struct {
	settings *settings.Settings
}

func NewEvaluator(s *settings.Settings) *Evaluator {
	if s == nil {
		s = settings.DefaultSettings()
	}
	return &Evaluator{settings: s}
}

// Evaluate parses the background hex and computes the RawScore against the
// design features. Degenerate designs yield a zeroed score with the
// background Lab still cached.
func (e *Evaluator) Evaluate(f *analysis.DesignFeatures, hex string) (RawScore, error) {
	rgba, err := formats.ParseHex(hex)
	if err != nil {
		return RawScore{}, err
	}

	bgLab := formats.RGBAToLAB(rgba)
	r := RawScore{
		Hex:      hex,
		BgLab:    bgLab,
		BgChroma: bgLab.Chroma(),
		BgHue:    bgLab.HueAngle(),
	}

	if f.Degenerate() {
		return r, nil
	}

	cfg := e.settings.Scoring

	// Cluster deltas
	r.MinHueDist = 180
	var weightedSum, weightTotal float64
	for i, c := range f.DominantColors {
		delta := chromatic.DeltaE00(c.Lab, bgLab)
		if i == 0 || delta < r.MinClusterDeltaE {
			r.MinClusterDeltaE = delta
		}
		weightedSum += c.Weight * delta
		weightTotal += c.Weight

		if hd := chromatic.HueDistance(c.Lab.HueAngle(), r.BgHue); hd < r.MinHueDist {
			r.MinHueDist = hd
		}
	}
	if weightTotal > 0 {
		r.WeightedMeanDeltaE = weightedSum / weightTotal
	}

	r.P10DeltaE = e.p10Delta(f, bgLab, r.MinClusterDeltaE)

	// Design resistance and fragility
	rDarkness := 1 - f.NearWhiteRatio
	rStructure := f.EdgeDensity
	rSolidity := 1 - f.TransparencyRatio
	resistance := formats.Clamp(0.55*rDarkness+0.15*rStructure+0.30*rSolidity, 0, 1)
	r.Fragility = math.Pow(1-resistance, 2.2)

	fragilityBoost := 1 + 0.6*r.Fragility
	if fragilityBoost > 1.6 {
		fragilityBoost = 1.6
	}

	r.RawContrast = weightMeanShare*r.WeightedMeanDeltaE +
		tailShare*r.P10DeltaE*fragilityBoost +
		minClusterShare*r.MinClusterDeltaE

	coverage := float64(f.ForegroundPixelCount) / float64(f.TotalPixelCount)
	if coverage < cfg.CoverageDampenFloor {
		r.RawContrast *= cfg.CoverageDampenFactor
	}

	// Tonal penalty: the background sits in the same hue family as a design
	// cluster and neither the closest cluster nor the tail separates.
	tonalTail := cfg.TailVetoFloor * cfg.TonalTriggerRatio
	if r.MinHueDist < 15 && r.MinClusterDeltaE < 25 && r.P10DeltaE < tonalTail {
		r.TonalPenalty = -8
	}

	// Vibration penalty: near-complementary saturated background at similar
	// lightness shimmers against a chromatic design.
	if r.MinHueDist >= 160 && r.MinHueDist <= 200 &&
		math.Abs(bgLab.L-f.ForegroundMeanL) < 30 &&
		r.BgChroma > cfg.VibrationChromaRatio*f.ForegroundP75Chroma &&
		f.ForegroundP75Chroma > 15 {
		r.VibrationPenalty = -5
	}

	return r, nil
}

// p10Delta computes the 10th-percentile pixel delta against the sampled
// foreground. Small samples blend toward the cluster minimum so a thin tail
// cannot destabilize the statistic.
func (e *Evaluator) p10Delta(f *analysis.DesignFeatures, bgLab formats.LAB, minCluster float64) float64 {
	m := len(f.ForegroundPixels)
	if m == 0 {
		return minCluster
	}

	deltas := make([]float64, m)
	for i, p := range f.ForegroundPixels {
		deltas[i] = chromatic.DeltaE00(p, bgLab)
	}

	k := m / 10
	p10 := selectKth(deltas, k)

	if m < 200 {
		blend := float64(m) / 200.0
		return blend*p10 + (1-blend)*minCluster
	}

	return p10
}
