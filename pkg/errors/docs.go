// Package errors defines the error taxonomy for the scorer. Sentinel errors
// support errors.Is checks while the typed errors carry the context needed
// for user-facing messages. Degenerate inputs (fully transparent designs,
// empty candidate slates) are not errors; they produce documented result
// values instead.
package errors
