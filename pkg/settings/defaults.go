package settings

import (
	"fmt"

	"github.com/spf13/viper"
)

func setDefaults(v *viper.Viper) {
	// Loader settings
	v.SetDefault("loader.max_width", 8192)
	v.SetDefault("loader.max_height", 8192)
	v.SetDefault("loader.allowed_formats", []string{
		"jpeg",
		"jpg",
		"png",
		"webp",
	})

	// Analysis settings
	v.SetDefault("analysis.max_analysis_dim", 256)   // analysis grid fits within 256x256
	v.SetDefault("analysis.alpha_threshold", 128)    // alpha >= 128 is foreground
	v.SetDefault("analysis.dominant_color_count", 8) // median-cut bucket target

	v.SetDefault("analysis.edge_magnitude_threshold", 0.1) // Sobel magnitude for edge classification
	v.SetDefault("analysis.near_white_lightness_min", 70.0)
	v.SetDefault("analysis.near_black_lightness_max", 15.0)
	v.SetDefault("analysis.neutral_chroma_max", 30.0)

	v.SetDefault("analysis.max_samples", 10000)      // cap on sampled Lab pixels
	v.SetDefault("analysis.edge_sample_share", 0.02) // share of foreground reserved for edge picks
	v.SetDefault("analysis.edge_sample_min", 100)
	v.SetDefault("analysis.edge_sample_max", 500)
	v.SetDefault("analysis.sample_grid_factor", 10) // 10x10 stratification grid

	v.SetDefault("analysis.legibility_max_dim", 1024)
	v.SetDefault("analysis.legibility_floor", 0.08)        // minimum high-frequency threshold
	v.SetDefault("analysis.legibility_min_collected", 100) // absolute floor on collected pixels
	v.SetDefault("analysis.legibility_min_area_share", 0.0001)

	// Scoring settings
	v.SetDefault("scoring.good_floor", 34.0)       // final score threshold for PROMOTED
	v.SetDefault("scoring.borderline_floor", 26.0) // final score threshold for PASSED
	v.SetDefault("scoring.tail_veto_floor", 8.0)   // minimum p10 delta-E to be tail-strong

	v.SetDefault("scoring.tonal_trigger_ratio", 1.8)
	v.SetDefault("scoring.vibration_chroma_ratio", 1.2)
	v.SetDefault("scoring.coverage_dampen_floor", 0.15)
	v.SetDefault("scoring.coverage_dampen_factor", 0.85)

	v.SetDefault("scoring.flatness_penalty_scale", 1.5)
	v.SetDefault("scoring.harmony_sigma", 25.0) // width of hue-harmony gaussian in degrees
	v.SetDefault("scoring.market_bonus_scale", 2.0)

	v.SetDefault("scoring.raw_baseline_std", 7.42) // reference raw-score stddev for budgeting
	v.SetDefault("scoring.aesthetic_influence_min", 1.15)
	v.SetDefault("scoring.aesthetic_influence_max", 1.30)
	v.SetDefault("scoring.variance_guard", 1.4)
	v.SetDefault("scoring.promotion_drift_guard", 0.05)
	v.SetDefault("scoring.max_retries", 3)
	v.SetDefault("scoring.default_reward_budget", 6.0) // single-candidate fallback budget

	v.SetDefault("scoring.model_version", "3.0")
}

func DefaultSettings() *Settings {
	v := viper.New()
	setDefaults(v)

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		panic(fmt.Sprintf("failed to unmarshal default settings: %v", err))
	}

	return &settings
}
