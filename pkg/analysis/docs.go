// Package analysis extracts the per-design feature record the scoring engine
// consumes. One call to Analyze performs the full one-shot pipeline:
// deterministic bilinear downsampling, alpha segmentation, CIELAB conversion,
// median-cut dominant colors, luminance statistics, Sobel edge metrics, a
// high-resolution legibility pass, and edge-weighted stratified sampling of
// foreground pixels for tail contrast statistics.
//
// Analyze is a pure function of its inputs: the same image and settings
// always produce the same DesignFeatures, bit for bit.
package analysis
