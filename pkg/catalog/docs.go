// Package catalog provides the slate of garment background colors a design
// is scored against: a built-in solid-color palette modeled on common
// print-on-demand blanks, optionally replaced by a YAML file.
// Entries may carry a market bonus that overrides the engine's commercial
// bias formula for that hex.
package catalog
