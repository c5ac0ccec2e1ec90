package scoring

import (
	"github.com/flowmable/background-color-scorer/pkg/formats"
)

// Suitability is the three-level verdict for a background candidate.
type Suitability int

const (
	Rejected Suitability = iota
	Passed
	Promoted
)

func (s Suitability) String() string {
	switch s {
	case Promoted:
		return "PROMOTED"
	case Passed:
		return "PASSED"
	default:
		return "REJECTED"
	}
}

// MarshalJSON renders the suitability as its display string.
func (s Suitability) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// RawScore is the physics-only intermediate record for one background.
type RawScore struct {
	Hex string

	BgLab    formats.LAB
	BgChroma float64
	BgHue    float64

	RawContrast        float64
	P10DeltaE          float64
	MinClusterDeltaE   float64
	WeightedMeanDeltaE float64

	Fragility  float64
	MinHueDist float64

	TonalPenalty     float64
	VibrationPenalty float64
}

// NetRaw is the physics score: contrast energy plus the signed penalties.
func (r RawScore) NetRaw() float64 {
	return r.RawContrast + r.TonalPenalty + r.VibrationPenalty
}

// EvaluationResult is the final per-background record returned to callers.
type EvaluationResult struct {
	Hex string `json:"hex"`

	P10DeltaE        float64 `json:"p10_delta_e"`
	MinClusterDeltaE float64 `json:"min_cluster_delta_e"`

	RawScore       float64 `json:"raw_score"`
	AestheticTotal float64 `json:"aesthetic_total"`
	MarketBonus    float64 `json:"market_bonus"`
	FinalScore     float64 `json:"final_score"`

	Suitability    Suitability `json:"suitability"`
	OverrideReason string      `json:"override_reason,omitempty"`
}
