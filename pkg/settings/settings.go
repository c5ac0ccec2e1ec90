package settings

type Settings struct {
	Loader   LoaderSettings   `mapstructure:"loader"`
	Analysis AnalysisSettings `mapstructure:"analysis"`
	Scoring  ScoringSettings  `mapstructure:"scoring"`
}

type LoaderSettings struct {
	MaxWidth       int      `mapstructure:"max_width"`
	MaxHeight      int      `mapstructure:"max_height"`
	AllowedFormats []string `mapstructure:"allowed_formats"`
}

type AnalysisSettings struct {
	// Downsampling and masking
	MaxAnalysisDim int `mapstructure:"max_analysis_dim"`
	AlphaThreshold int `mapstructure:"alpha_threshold"`

	// Dominant color quantization
	DominantColorCount int `mapstructure:"dominant_color_count"`

	// Structural metrics
	EdgeMagnitudeThreshold float64 `mapstructure:"edge_magnitude_threshold"`
	NearWhiteLightnessMin  float64 `mapstructure:"near_white_lightness_min"`
	NearBlackLightnessMax  float64 `mapstructure:"near_black_lightness_max"`
	NeutralChromaMax       float64 `mapstructure:"neutral_chroma_max"`

	// Pixel sampling for tail statistics
	MaxSamples       int     `mapstructure:"max_samples"`
	EdgeSampleShare  float64 `mapstructure:"edge_sample_share"`
	EdgeSampleMin    int     `mapstructure:"edge_sample_min"`
	EdgeSampleMax    int     `mapstructure:"edge_sample_max"`
	SampleGridFactor int     `mapstructure:"sample_grid_factor"`

	// Legibility pass
	LegibilityMaxDim       int     `mapstructure:"legibility_max_dim"`
	LegibilityFloor        float64 `mapstructure:"legibility_floor"`
	LegibilityMinCollected int     `mapstructure:"legibility_min_collected"`
	LegibilityMinAreaShare float64 `mapstructure:"legibility_min_area_share"`
}

type ScoringSettings struct {
	// Classification floors
	GoodFloor       float64 `mapstructure:"good_floor"`
	BorderlineFloor float64 `mapstructure:"borderline_floor"`
	TailVetoFloor   float64 `mapstructure:"tail_veto_floor"`

	// Physics penalties
	TonalTriggerRatio    float64 `mapstructure:"tonal_trigger_ratio"`
	VibrationChromaRatio float64 `mapstructure:"vibration_chroma_ratio"`
	CoverageDampenFloor  float64 `mapstructure:"coverage_dampen_floor"`
	CoverageDampenFactor float64 `mapstructure:"coverage_dampen_factor"`

	// Aesthetic layers
	FlatnessPenaltyScale float64 `mapstructure:"flatness_penalty_scale"`
	HarmonySigma         float64 `mapstructure:"harmony_sigma"`
	MarketBonusScale     float64 `mapstructure:"market_bonus_scale"`

	// Distribution-aware budgeting
	RawBaselineStd        float64 `mapstructure:"raw_baseline_std"`
	AestheticInfluenceMin float64 `mapstructure:"aesthetic_influence_min"`
	AestheticInfluenceMax float64 `mapstructure:"aesthetic_influence_max"`
	VarianceGuard         float64 `mapstructure:"variance_guard"`
	PromotionDriftGuard   float64 `mapstructure:"promotion_drift_guard"`
	MaxRetries            int     `mapstructure:"max_retries"`
	DefaultRewardBudget   float64 `mapstructure:"default_reward_budget"`

	ModelVersion string `mapstructure:"model_version"`
}
