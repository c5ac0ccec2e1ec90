package quantize

import (
	"image/color"
	"math"
	"sort"

	"github.com/flowmable/background-color-scorer/pkg/formats"
)

// DominantColor is one quantized cluster: the rounded channel means, the
// cached Lab conversion, and the cluster's share of the total foreground.
type DominantColor struct {
	RGBA   color.RGBA  `json:"rgba"`
	Lab    formats.LAB `json:"-"`
	Weight float64     `json:"weight"`
}

// MedianCut quantizes pixels into at most k clusters. k should be a power of
// two; other values are accepted but the cut may stop short of k buckets.
// total is the foreground pixel count used as the weight denominator, which
// may exceed len(pixels) when the caller pre-sampled.
//
// Splitting is deterministic: buckets are visited in creation order, the
// widest channel wins with ties broken R over G over B, and the in-bucket
// sort is stable on the split channel. Identical input sequences therefore
// produce identical output.
func MedianCut(pixels []color.RGBA, k, total int) []DominantColor {
	if len(pixels) == 0 || total <= 0 || k < 1 {
		return nil
	}

	buckets := [][]color.RGBA{append([]color.RGBA(nil), pixels...)}

	for len(buckets) < k {
		next := make([][]color.RGBA, 0, len(buckets)*2)
		split := false

		for i, b := range buckets {
			// Count of buckets if everything still pending stays unsplit.
			if len(next)+(len(buckets)-i) >= k {
				next = append(next, b)
				continue
			}

			lo, hi := splitBucket(b)
			if hi == nil {
				next = append(next, b)
				continue
			}

			next = append(next, lo, hi)
			split = true
		}

		buckets = next
		if !split {
			break
		}
	}

	result := make([]DominantColor, 0, len(buckets))
	for _, b := range buckets {
		if len(b) == 0 {
			continue
		}
		result = append(result, summarize(b, total))
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Weight > result[j].Weight
	})

	return result
}

// splitBucket cuts a bucket at the median of its widest channel. Returns a
// nil second half when the bucket is terminal (zero range on all channels or
// a single pixel).
func splitBucket(b []color.RGBA) ([]color.RGBA, []color.RGBA) {
	if len(b) < 2 {
		return b, nil
	}

	rRange, gRange, bRange := channelRanges(b)
	if rRange == 0 && gRange == 0 && bRange == 0 {
		return b, nil
	}

	// Widest channel wins; ties break R over G over B.
	switch {
	case rRange >= gRange && rRange >= bRange:
		sort.SliceStable(b, func(i, j int) bool { return b[i].R < b[j].R })
	case gRange >= bRange:
		sort.SliceStable(b, func(i, j int) bool { return b[i].G < b[j].G })
	default:
		sort.SliceStable(b, func(i, j int) bool { return b[i].B < b[j].B })
	}

	mid := len(b) / 2
	return b[:mid], b[mid:]
}

func channelRanges(b []color.RGBA) (int, int, int) {
	minR, maxR := int(b[0].R), int(b[0].R)
	minG, maxG := int(b[0].G), int(b[0].G)
	minB, maxB := int(b[0].B), int(b[0].B)

	for _, p := range b[1:] {
		if int(p.R) < minR {
			minR = int(p.R)
		}
		if int(p.R) > maxR {
			maxR = int(p.R)
		}
		if int(p.G) < minG {
			minG = int(p.G)
		}
		if int(p.G) > maxG {
			maxG = int(p.G)
		}
		if int(p.B) < minB {
			minB = int(p.B)
		}
		if int(p.B) > maxB {
			maxB = int(p.B)
		}
	}

	return maxR - minR, maxG - minG, maxB - minB
}

func summarize(b []color.RGBA, total int) DominantColor {
	var sumR, sumG, sumB float64
	for _, p := range b {
		sumR += float64(p.R)
		sumG += float64(p.G)
		sumB += float64(p.B)
	}

	n := float64(len(b))
	mean := color.RGBA{
		R: uint8(formats.Clamp(math.Round(sumR/n), 0, 255)),
		G: uint8(formats.Clamp(math.Round(sumG/n), 0, 255)),
		B: uint8(formats.Clamp(math.Round(sumB/n), 0, 255)),
		A: 255,
	}

	return DominantColor{
		RGBA:   mean,
		Lab:    formats.RGBAToLAB(mean),
		Weight: n / float64(total),
	}
}
