// Package loader reads design files from disk into decoded images. It
// validates format and dimensions before decoding so oversized or
// unsupported inputs fail with typed errors instead of burning memory.
package loader
