package scoring

import (
	"image"
	"math"

	"github.com/flowmable/background-color-scorer/pkg/analysis"
	"github.com/flowmable/background-color-scorer/pkg/formats"
	"github.com/flowmable/background-color-scorer/pkg/settings"
)

// OverrideDegenerate is surfaced verbatim on results for designs with no
// foreground. Overrides only ever lower suitability, never raise it.
const OverrideDegenerate = "DEGENERATE"

// Engine orchestrates a scoring call: one analysis, a raw evaluation per
// candidate, distribution statistics over the slate, and the budgeted
// aesthetic pass with its stability guards.
type Engine struct {
	settings  *settings.Settings
	analyzer  *analysis.Analyzer
	evaluator *Evaluator
	overrides map[string]float64
}

func NewEngine(s *settings.Settings) *Engine {
	if s == nil {
		s = settings.DefaultSettings()
	}
	return &Engine{
		settings:  s,
		analyzer:  analysis.New(s),
		evaluator: NewEvaluator(s),
	}
}

// SetOverrides installs per-hex market bonuses that replace the formula for
// those backgrounds. Keys are normalized, so any accepted hex form matches.
func (e *Engine) SetOverrides(overrides map[string]float64) error {
	normalized := make(map[string]float64, len(overrides))
	for hex, bonus := range overrides {
		key, err := formats.NormalizeHex(hex)
		if err != nil {
			return err
		}
		normalized[key] = bonus
	}
	e.overrides = normalized
	return nil
}

// ScoreImage analyzes the image and scores the candidate slate against it.
func (e *Engine) ScoreImage(img image.Image, hexes []string) ([]EvaluationResult, error) {
	return e.Score(e.analyzer.Analyze(img), hexes)
}

// Score evaluates every candidate background against the design features.
// Results come back in input order, one per candidate. An empty slate yields
// an empty slice; a malformed hex fails the whole call with no partial
// results.
func (e *Engine) Score(f *analysis.DesignFeatures, hexes []string) ([]EvaluationResult, error) {
	if len(hexes) == 0 {
		return []EvaluationResult{}, nil
	}

	cfg := e.settings.Scoring

	// Pass 1: physics.
	raws := make([]RawScore, len(hexes))
	for i, hex := range hexes {
		raw, err := e.evaluator.Evaluate(f, hex)
		if err != nil {
			return nil, err
		}
		raws[i] = raw
	}

	nets := make([]float64, len(raws))
	for i, r := range raws {
		nets[i] = r.NetRaw()
	}
	_, stdRaw := meanStd(nets)
	rawRate := promotionRate(nets, cfg.GoodFloor)

	// Budget derivation: low-variance slates would let aesthetics dominate,
	// so the influence ratio is clamped against a baseline spread.
	effectiveStd := stdRaw
	if floor := cfg.RawBaselineStd * 0.7; effectiveStd < floor {
		effectiveStd = floor
	}
	targetStd := cfg.RawBaselineStd * 1.20
	influence := formats.Clamp(targetStd/effectiveStd, cfg.AestheticInfluenceMin, cfg.AestheticInfluenceMax)
	budget := stdRaw * influence

	// Pass 2: aesthetics under the stability guards.
	scale := 1.0
	var results []EvaluationResult
	for attempt := 0; ; attempt++ {
		results = make([]EvaluationResult, len(raws))
		finals := make([]float64, len(raws))
		for i, r := range raws {
			results[i] = e.finalize(f, r, budget, scale)
			finals[i] = results[i].FinalScore
		}

		if attempt >= cfg.MaxRetries {
			break
		}

		_, finalStd := meanStd(finals)
		guard := stdRaw * cfg.VarianceGuard
		if finalStd > guard {
			correction := guard / finalStd
			if correction > 0.9 {
				correction = 0.9
			}
			scale *= correction
			continue
		}

		if math.Abs(promotionRate(finals, cfg.GoodFloor)-rawRate) > cfg.PromotionDriftGuard {
			scale *= 0.9
			continue
		}

		break
	}

	return results, nil
}

// EvaluateOne scores a single background with no slate distribution to
// calibrate against: the aesthetic scale stays at 1.0 and a fixed default
// reward budget applies.
func (e *Engine) EvaluateOne(f *analysis.DesignFeatures, hex string) (EvaluationResult, error) {
	raw, err := e.evaluator.Evaluate(f, hex)
	if err != nil {
		return EvaluationResult{}, err
	}
	return e.finalize(f, raw, e.settings.Scoring.DefaultRewardBudget, 1.0), nil
}

// ModelVersion returns the opaque scoring model tag surfaced in reports.
func (e *Engine) ModelVersion() string {
	return e.settings.Scoring.ModelVersion
}

// finalize applies the aesthetic and commercial layers to one raw score
// under the current budget and scale, then classifies.
func (e *Engine) finalize(f *analysis.DesignFeatures, r RawScore, budget, scale float64) EvaluationResult {
	res := EvaluationResult{
		Hex:              r.Hex,
		P10DeltaE:        r.P10DeltaE,
		MinClusterDeltaE: r.MinClusterDeltaE,
		RawScore:         r.NetRaw(),
	}

	if f.Degenerate() {
		res.Suitability = Rejected
		res.OverrideReason = OverrideDegenerate
		return res
	}

	cfg := e.settings.Scoring

	// Harmony reward only applies to physically clean pairings: any fired
	// penalty disqualifies it.
	var harmony float64
	if r.TonalPenalty == 0 && r.VibrationPenalty == 0 {
		hueFactor := math.Exp(-sq(r.MinHueDist / cfg.HarmonySigma))
		confidence := math.Min(1, r.RawContrast/60)
		harmony = 4 * hueFactor * confidence
	}

	var outline float64
	if r.BgLab.L < e.settings.Analysis.NearBlackLightnessMax {
		outline = math.Min(3.5, 10*f.WhiteBlackEdgeRatio)
	}

	chromaRisk := math.Exp(-sq(r.BgChroma / 12))
	lRisk := math.Exp(-sq((r.BgLab.L - 60) / 30))
	normP10 := math.Min(1, r.P10DeltaE/50)
	flatness := -cfg.FlatnessPenaltyScale * chromaRisk * lRisk * (1 - normP10)

	market := e.marketBonus(r)

	// Double-counting guard: a strong harmony reward already encodes most of
	// what a hue-band market bonus would add.
	if harmony > 2 {
		market *= 0.5
	}

	// Positive cap: positive aesthetic energy shares the reward budget
	// uniformly; dampeners and negative bias are not scaled.
	positives := harmony + outline + math.Max(0, market)
	if positives > budget {
		ratio := budget / positives
		harmony *= ratio
		outline *= ratio
		if market > 0 {
			market *= ratio
		}
	}

	res.AestheticTotal = (harmony + outline + flatness) * scale
	res.MarketBonus = market
	res.FinalScore = formats.Clamp(r.NetRaw()+res.AestheticTotal+res.MarketBonus, 0, 100)
	res.Suitability = e.classify(res.FinalScore, r.P10DeltaE)

	return res
}

func (e *Engine) marketBonus(r RawScore) float64 {
	cfg := e.settings.Scoring

	if bonus, ok := e.overrides[normalizedKey(r.Hex)]; ok {
		return bonus * cfg.MarketBonusScale
	}

	return marketBias(r.BgLab) * cfg.MarketBonusScale
}

func normalizedKey(hex string) string {
	key, err := formats.NormalizeHex(hex)
	if err != nil {
		return hex
	}
	return key
}

func (e *Engine) classify(final, p10 float64) Suitability {
	cfg := e.settings.Scoring
	tailStrong := p10 >= cfg.TailVetoFloor

	switch {
	case final >= cfg.GoodFloor:
		if tailStrong {
			return Promoted
		}
		return Passed
	case final >= cfg.BorderlineFloor:
		if tailStrong {
			return Passed
		}
		return Rejected
	default:
		return Rejected
	}
}

// meanStd returns the mean and population standard deviation, summing in a
// fixed left-to-right order so repeated calls are bit-identical.
func meanStd(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var sqSum float64
	for _, v := range values {
		d := v - mean
		sqSum += d * d
	}

	return mean, math.Sqrt(sqSum / float64(len(values)))
}

func promotionRate(scores []float64, floor float64) float64 {
	var promoted int
	for _, s := range scores {
		if s >= floor {
			promoted++
		}
	}
	return float64(promoted) / float64(len(scores))
}
