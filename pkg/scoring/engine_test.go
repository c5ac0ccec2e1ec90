package scoring_test

import (
	"image/color"
	"math"
	"reflect"
	"testing"

	"github.com/flowmable/background-color-scorer/pkg/analysis"
	"github.com/flowmable/background-color-scorer/pkg/scoring"
	"github.com/flowmable/background-color-scorer/pkg/settings"
)

func TestEvaluateOneScenarios(t *testing.T) {
	white := whiteFeatures(t)
	black := blackFeatures(t)
	striped := analysis.Analyze(stripedImage(200, 200, 32), settings.DefaultSettings())
	transparent := analysis.Analyze(transparentImage(200, 200), settings.DefaultSettings())
	red := analysis.Analyze(solidImage(200, 200, color.NRGBA{R: 255, A: 255}), settings.DefaultSettings())

	testCases := []struct {
		name        string
		features    *analysis.DesignFeatures
		hex         string
		suitability scoring.Suitability
		minScore    float64
		maxScore    float64
		override    string
	}{
		{
			name:        "White design on white",
			features:    white,
			hex:         "#FFFFFF",
			suitability: scoring.Rejected,
			minScore:    0,
			maxScore:    15,
		},
		{
			name:        "White design on black",
			features:    white,
			hex:         "#000000",
			suitability: scoring.Promoted,
			minScore:    85,
			maxScore:    100,
		},
		{
			name:        "Black design on white",
			features:    black,
			hex:         "#FFFFFF",
			suitability: scoring.Promoted,
			minScore:    85,
			maxScore:    100,
		},
		{
			name:        "Black design on black",
			features:    black,
			hex:         "#000000",
			suitability: scoring.Rejected,
			minScore:    0,
			maxScore:    15,
		},
		{
			name:        "Red design on near red",
			features:    red,
			hex:         "#E74C3C",
			suitability: scoring.Rejected,
			minScore:    0,
			maxScore:    25,
		},
		{
			name:        "Text-like design on black",
			features:    striped,
			hex:         "#000000",
			suitability: scoring.Promoted,
			minScore:    90,
			maxScore:    100,
		},
		{
			name:        "Transparent design",
			features:    transparent,
			hex:         "#123456",
			suitability: scoring.Rejected,
			minScore:    0,
			maxScore:    5,
			override:    "DEGENERATE",
		},
	}

	engine := scoring.NewEngine(settings.DefaultSettings())

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := engine.EvaluateOne(tc.features, tc.hex)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			t.Logf("final=%.2f raw=%.2f aesthetic=%.2f market=%.2f p10=%.2f -> %s",
				result.FinalScore, result.RawScore, result.AestheticTotal,
				result.MarketBonus, result.P10DeltaE, result.Suitability)

			if result.Suitability != tc.suitability {
				t.Errorf("expected %s, got %s", tc.suitability, result.Suitability)
			}
			if result.FinalScore < tc.minScore || result.FinalScore > tc.maxScore {
				t.Errorf("final score %.2f outside [%.0f, %.0f]", result.FinalScore, tc.minScore, tc.maxScore)
			}
			if result.OverrideReason != tc.override {
				t.Errorf("expected override %q, got %q", tc.override, result.OverrideReason)
			}
		})
	}
}

func TestScoreEmptySlate(t *testing.T) {
	engine := scoring.NewEngine(settings.DefaultSettings())

	results, err := engine.Score(whiteFeatures(t), nil)
	if err != nil {
		t.Fatalf("empty slate is not an error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected empty results, got %d", len(results))
	}
}

func TestScoreInvalidHexFailsWhole(t *testing.T) {
	engine := scoring.NewEngine(settings.DefaultSettings())

	results, err := engine.Score(whiteFeatures(t), []string{"#000000", "bogus", "#FFFFFF"})
	if err == nil {
		t.Fatal("expected error for malformed hex in slate")
	}
	if results != nil {
		t.Errorf("no partial results on parse failure, got %d", len(results))
	}
}

func TestScorePreservesInputOrder(t *testing.T) {
	engine := scoring.NewEngine(settings.DefaultSettings())
	slate := []string{"#224D8F", "#000000", "#FFFFFF", "#C8102E"}

	results, err := engine.Score(whiteFeatures(t), slate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != len(slate) {
		t.Fatalf("expected %d results, got %d", len(slate), len(results))
	}
	for i, r := range results {
		if r.Hex != slate[i] {
			t.Errorf("result %d: expected hex %s, got %s", i, slate[i], r.Hex)
		}
	}
}

func TestScoreBoundsAndDeterminism(t *testing.T) {
	engine := scoring.NewEngine(settings.DefaultSettings())
	slate := []string{
		"#FFFFFF", "#000000", "#1F2A44", "#C8102E", "#224D8F",
		"#00A651", "#582C83", "#C9BDA6", "#5B2B38", "#F96302",
	}

	designs := map[string]*analysis.DesignFeatures{
		"white":   whiteFeatures(t),
		"black":   blackFeatures(t),
		"striped": analysis.Analyze(stripedImage(200, 200, 8), settings.DefaultSettings()),
	}

	for name, f := range designs {
		first, err := engine.Score(f, slate)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}

		for _, r := range first {
			if r.FinalScore < 0 || r.FinalScore > 100 {
				t.Errorf("%s vs %s: final score %f out of [0, 100]", name, r.Hex, r.FinalScore)
			}
			if r.P10DeltaE < 0 || r.MinClusterDeltaE < 0 {
				t.Errorf("%s vs %s: deltas must be non-negative", name, r.Hex)
			}
		}

		second, err := engine.Score(f, slate)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("%s: scoring must be bit-identical across runs", name)
		}
	}
}

func TestScoreVarianceGuard(t *testing.T) {
	engine := scoring.NewEngine(settings.DefaultSettings())
	slate := []string{
		"#FFFFFF", "#000000", "#1F2A44", "#C8102E", "#224D8F",
		"#00A651", "#582C83", "#C9BDA6", "#5B2B38", "#F96302",
	}

	results, err := engine.Score(whiteFeatures(t), slate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw := make([]float64, len(results))
	final := make([]float64, len(results))
	for i, r := range results {
		raw[i] = r.RawScore
		final[i] = r.FinalScore
	}

	stdRaw := populationStd(raw)
	stdFinal := populationStd(final)
	t.Logf("stdRaw=%.3f stdFinal=%.3f", stdRaw, stdFinal)

	// The clamp to [0, 100] can only shrink spread, and the retry loop keeps
	// aesthetic energy from inflating it past the guard on this wide slate.
	if stdFinal > stdRaw*1.4+1e-6 {
		t.Errorf("final spread %.3f exceeds raw spread %.3f x 1.4", stdFinal, stdRaw)
	}
}

func TestScoreDegenerateSlate(t *testing.T) {
	engine := scoring.NewEngine(settings.DefaultSettings())
	f := analysis.Analyze(transparentImage(100, 100), settings.DefaultSettings())

	results, err := engine.Score(f, []string{"#FFFFFF", "#000000", "#336699"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, r := range results {
		if r.Suitability != scoring.Rejected {
			t.Errorf("%s: degenerate design must reject, got %s", r.Hex, r.Suitability)
		}
		if r.OverrideReason != "DEGENERATE" {
			t.Errorf("%s: expected DEGENERATE override, got %q", r.Hex, r.OverrideReason)
		}
		if r.FinalScore != 0 {
			t.Errorf("%s: degenerate final score must be 0, got %f", r.Hex, r.FinalScore)
		}
	}
}

func TestSetOverridesReplacesMarketBonus(t *testing.T) {
	s := settings.DefaultSettings()
	f := whiteFeatures(t)

	plain := scoring.NewEngine(s)
	overridden := scoring.NewEngine(s)
	if err := overridden.SetOverrides(map[string]float64{"1f2a44": 1.5}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	base, err := plain.EvaluateOne(f, "#1F2A44")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	boosted, err := overridden.EvaluateOne(f, "#1F2A44")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Override is pre-scale on the [-2, 2] range; the engine scales by 2.
	if math.Abs(boosted.MarketBonus-3.0) > 1e-9 {
		t.Errorf("expected market bonus 3.0 from override 1.5, got %f", boosted.MarketBonus)
	}
	if base.MarketBonus == boosted.MarketBonus {
		t.Error("override should change the market bonus")
	}

	if err := overridden.SetOverrides(map[string]float64{"oops": 1}); err == nil {
		t.Error("invalid override key must error")
	}
}

func populationStd(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(values)))
}
