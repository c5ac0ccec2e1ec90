package settings_test

import (
	"testing"

	"github.com/flowmable/background-color-scorer/pkg/settings"
)

func TestDefaultSettings(t *testing.T) {
	s := settings.DefaultSettings()

	scoring := []struct {
		name string
		got  float64
		want float64
	}{
		{"good_floor", s.Scoring.GoodFloor, 34},
		{"borderline_floor", s.Scoring.BorderlineFloor, 26},
		{"tail_veto_floor", s.Scoring.TailVetoFloor, 8.0},
		{"tonal_trigger_ratio", s.Scoring.TonalTriggerRatio, 1.8},
		{"vibration_chroma_ratio", s.Scoring.VibrationChromaRatio, 1.2},
		{"flatness_penalty_scale", s.Scoring.FlatnessPenaltyScale, 1.5},
		{"harmony_sigma", s.Scoring.HarmonySigma, 25},
		{"raw_baseline_std", s.Scoring.RawBaselineStd, 7.42},
		{"aesthetic_influence_min", s.Scoring.AestheticInfluenceMin, 1.15},
		{"aesthetic_influence_max", s.Scoring.AestheticInfluenceMax, 1.30},
		{"variance_guard", s.Scoring.VarianceGuard, 1.4},
		{"promotion_drift_guard", s.Scoring.PromotionDriftGuard, 0.05},
		{"default_reward_budget", s.Scoring.DefaultRewardBudget, 6.0},
	}

	for _, tc := range scoring {
		if tc.got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, tc.got)
		}
	}

	if s.Analysis.MaxAnalysisDim != 256 {
		t.Errorf("max_analysis_dim: expected 256, got %d", s.Analysis.MaxAnalysisDim)
	}
	if s.Analysis.MaxSamples != 10000 {
		t.Errorf("max_samples: expected 10000, got %d", s.Analysis.MaxSamples)
	}
	if s.Analysis.DominantColorCount != 8 {
		t.Errorf("dominant_color_count: expected 8, got %d", s.Analysis.DominantColorCount)
	}
	if s.Analysis.AlphaThreshold != 128 {
		t.Errorf("alpha_threshold: expected 128, got %d", s.Analysis.AlphaThreshold)
	}
	if s.Scoring.MaxRetries != 3 {
		t.Errorf("max_retries: expected 3, got %d", s.Scoring.MaxRetries)
	}
	if s.Scoring.ModelVersion != "3.0" {
		t.Errorf("model_version: expected 3.0, got %s", s.Scoring.ModelVersion)
	}
	if len(s.Loader.AllowedFormats) == 0 {
		t.Error("loader should allow at least one format")
	}
}
