// Package scoring turns a design's feature record into per-background
// verdicts. Evaluation is layered: a physics pass derives a raw contrast
// score from CIEDE2000 deltas between the design and the background, then
// the engine measures the raw-score distribution across the whole candidate
// slate, derives a reward budget from its variance, and applies the
// aesthetic and commercial layers inside a bounded retry loop that keeps
// final-score variance and promotion rate anchored to the physics.
package scoring
