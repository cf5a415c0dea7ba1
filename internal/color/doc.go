// Package color implements the conversion and derivation engine behind swatchy.
//
// Every function in this package is pure: it allocates only local values and
// returns new results, so callers may use it from any goroutine without
// coordination. Malformed input never produces an error; values are clamped
// or normalized instead.
package color
