// Package quantize reduces a bag of foreground pixels to a small set of
// dominant color clusters via deterministic median cut. Cluster weights are
// coverage shares of the full foreground, so downstream scoring can weight
// color-distance terms by how much of the design each cluster covers.
package quantize
