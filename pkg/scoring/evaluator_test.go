package scoring_test

import (
	stderrors "errors"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/flowmable/background-color-scorer/pkg/analysis"
	"github.com/flowmable/background-color-scorer/pkg/errors"
	"github.com/flowmable/background-color-scorer/pkg/scoring"
	"github.com/flowmable/background-color-scorer/pkg/settings"
)

func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func transparentImage(w, h int) *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, w, h))
}

// stripedImage draws 2-row white stripes every period rows on transparency.
func stripedImage(w, h, period int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		if y%period > 1 {
			continue
		}
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	return img
}

func whiteFeatures(t *testing.T) *analysis.DesignFeatures {
	t.Helper()
	return analysis.Analyze(solidImage(200, 200, color.NRGBA{R: 255, G: 255, B: 255, A: 255}), settings.DefaultSettings())
}

func blackFeatures(t *testing.T) *analysis.DesignFeatures {
	t.Helper()
	return analysis.Analyze(solidImage(200, 200, color.NRGBA{A: 255}), settings.DefaultSettings())
}

func TestEvaluateInvalidHex(t *testing.T) {
	ev := scoring.NewEvaluator(settings.DefaultSettings())

	for _, hex := range []string{"", "#12345", "#GGGGGG", "red"} {
		if _, err := ev.Evaluate(whiteFeatures(t), hex); !stderrors.Is(err, errors.ErrInvalidHex) {
			t.Errorf("hex %q: expected ErrInvalidHex, got %v", hex, err)
		}
	}
}

func TestEvaluateDegenerate(t *testing.T) {
	ev := scoring.NewEvaluator(settings.DefaultSettings())
	f := analysis.Analyze(transparentImage(64, 64), settings.DefaultSettings())

	raw, err := ev.Evaluate(f, "#336699")
	if err != nil {
		t.Fatalf("degenerate design is not an error: %v", err)
	}

	if raw.RawContrast != 0 || raw.MinClusterDeltaE != 0 || raw.WeightedMeanDeltaE != 0 || raw.P10DeltaE != 0 {
		t.Errorf("degenerate raw score should be all zeros, got %+v", raw)
	}
	if raw.BgLab.L == 0 && raw.BgLab.A == 0 && raw.BgLab.B == 0 {
		t.Error("background Lab should still be cached for degenerate designs")
	}
}

func TestEvaluateWhiteOnBlack(t *testing.T) {
	ev := scoring.NewEvaluator(settings.DefaultSettings())
	raw, err := ev.Evaluate(whiteFeatures(t), "#000000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(raw.MinClusterDeltaE-100) > 0.5 {
		t.Errorf("white cluster vs black should be dE ~100, got %f", raw.MinClusterDeltaE)
	}
	if math.Abs(raw.WeightedMeanDeltaE-raw.MinClusterDeltaE) > 1e-9 {
		t.Errorf("single cluster: weighted mean %f should equal min %f", raw.WeightedMeanDeltaE, raw.MinClusterDeltaE)
	}
	if math.Abs(raw.P10DeltaE-100) > 0.5 {
		t.Errorf("every pixel is white, P10 should be ~100, got %f", raw.P10DeltaE)
	}

	// White design: r_darkness=0, r_structure=0, r_solidity=1.
	wantFragility := math.Pow(1-0.30, 2.2)
	if math.Abs(raw.Fragility-wantFragility) > 1e-6 {
		t.Errorf("expected fragility %f, got %f", wantFragility, raw.Fragility)
	}

	if raw.TonalPenalty != 0 || raw.VibrationPenalty != 0 {
		t.Errorf("no penalties expected, got tonal=%f vibration=%f", raw.TonalPenalty, raw.VibrationPenalty)
	}
	if raw.NetRaw() <= 85 {
		t.Errorf("white-on-black physics should be strong, got %f", raw.NetRaw())
	}
}

func TestEvaluateSameColorIsZero(t *testing.T) {
	ev := scoring.NewEvaluator(settings.DefaultSettings())
	raw, err := ev.Evaluate(whiteFeatures(t), "#FFFFFF")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if raw.MinClusterDeltaE > 1e-6 || raw.P10DeltaE > 1e-6 {
		t.Errorf("identical colors should have zero deltas, got min=%f p10=%f", raw.MinClusterDeltaE, raw.P10DeltaE)
	}
	if raw.NetRaw() > 1e-6 {
		t.Errorf("net raw should not be positive (zero contrast plus the tonal penalty), got %f", raw.NetRaw())
	}
}

func TestEvaluateTonalPenalty(t *testing.T) {
	ev := scoring.NewEvaluator(settings.DefaultSettings())
	f := analysis.Analyze(solidImage(200, 200, color.NRGBA{R: 255, A: 255}), settings.DefaultSettings())

	// A nearby red: same hue family, weak separation everywhere.
	raw, err := ev.Evaluate(f, "#E74C3C")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Logf("minHue=%.1f minCluster=%.2f p10=%.2f", raw.MinHueDist, raw.MinClusterDeltaE, raw.P10DeltaE)

	if raw.TonalPenalty != -8 {
		t.Errorf("near-hue low-contrast background should take the tonal penalty, got %f", raw.TonalPenalty)
	}
}

func TestEvaluateCoverageDampening(t *testing.T) {
	ev := scoring.NewEvaluator(settings.DefaultSettings())

	// 2-row stripes every 8: coverage 0.25 is above the dampening floor.
	dense := analysis.Analyze(stripedImage(200, 200, 8), settings.DefaultSettings())
	// Every 32: coverage 0.07 (14 of 200 rows) triggers dampening.
	sparse := analysis.Analyze(stripedImage(200, 200, 32), settings.DefaultSettings())

	rawDense, err := ev.Evaluate(dense, "#000000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rawSparse, err := ev.Evaluate(sparse, "#000000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Both are pure white on black (dE 100 everywhere); only coverage and the
	// solidity share of fragility differ, so the sparse design must not
	// outscore the dense one.
	if rawSparse.RawContrast >= rawDense.RawContrast {
		t.Errorf("sparse coverage should dampen contrast: sparse=%f dense=%f",
			rawSparse.RawContrast, rawDense.RawContrast)
	}
}

func TestEvaluateP10SmallSampleBlend(t *testing.T) {
	ev := scoring.NewEvaluator(settings.DefaultSettings())

	// 10x10 opaque white: 100 foreground pixels, well under the 200 floor.
	f := analysis.Analyze(solidImage(10, 10, color.NRGBA{R: 255, G: 255, B: 255, A: 255}), settings.DefaultSettings())

	raw, err := ev.Evaluate(f, "#000000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// All pixels identical: the blend of p10 and cluster minimum is still 100.
	if math.Abs(raw.P10DeltaE-100) > 0.5 {
		t.Errorf("blend of identical terms should stay ~100, got %f", raw.P10DeltaE)
	}
}
