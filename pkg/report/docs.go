// Package report renders scored candidate slates for humans and machines:
// a colorized terminal table sorted by final score, or JSON for pipelines.
// Display tiering here is presentational; suitability always comes verbatim
// from the engine.
package report
