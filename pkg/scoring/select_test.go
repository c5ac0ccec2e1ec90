package scoring

import (
	"sort"
	"testing"
)

func TestSelectKth(t *testing.T) {
	testCases := []struct {
		name   string
		values []float64
	}{
		{"Single", []float64{5}},
		{"Sorted", []float64{1, 2, 3, 4, 5, 6, 7, 8}},
		{"Reversed", []float64{8, 7, 6, 5, 4, 3, 2, 1}},
		{"Duplicates", []float64{3, 1, 3, 1, 3, 1, 2, 2}},
		{"Mixed", []float64{12.5, 0.1, 99.9, 45.2, 3.3, 3.3, 71.8, 0.2, 18.4}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			expected := append([]float64(nil), tc.values...)
			sort.Float64s(expected)

			for k := range tc.values {
				scratch := append([]float64(nil), tc.values...)
				if got := selectKth(scratch, k); got != expected[k] {
					t.Errorf("k=%d: expected %v, got %v", k, expected[k], got)
				}
			}
		})
	}
}

func TestMeanStd(t *testing.T) {
	mean, std := meanStd([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if mean != 5 {
		t.Errorf("expected mean 5, got %v", mean)
	}
	if std != 2 {
		t.Errorf("expected population stddev 2, got %v", std)
	}

	if m, s := meanStd(nil); m != 0 || s != 0 {
		t.Errorf("empty input should yield zeros, got %v, %v", m, s)
	}
}

func TestClassify(t *testing.T) {
	e := NewEngine(nil)

	testCases := []struct {
		name     string
		final    float64
		p10      float64
		expected Suitability
	}{
		{"High score strong tail", 50, 20, Promoted},
		{"High score weak tail", 50, 3, Passed},
		{"Borderline strong tail", 30, 20, Passed},
		{"Borderline weak tail", 30, 3, Rejected},
		{"Low score strong tail", 10, 20, Rejected},
		{"Exactly good floor", 34, 8, Promoted},
		{"Exactly borderline floor", 26, 7.99, Rejected},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := e.classify(tc.final, tc.p10); got != tc.expected {
				t.Errorf("classify(%v, %v): expected %s, got %s", tc.final, tc.p10, tc.expected, got)
			}
		})
	}
}

func TestPromotionRate(t *testing.T) {
	rate := promotionRate([]float64{40, 33, 34, 10, 90}, 34)
	if rate != 0.6 {
		t.Errorf("expected 0.6, got %v", rate)
	}
}
