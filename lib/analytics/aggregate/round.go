// Package aggregate holds the pure dashboard aggregation functions.
// Every function here is stateless and side-effect free: it consumes an
// already-fetched row collection and returns a view model. Degenerate
// inputs (empty collections, zero denominators, all-null scores) resolve
// to zero or placeholder values, never to a panic.
package aggregate

import "math"

func roundInt(v float64) int {
	return int(math.Round(v))
}

// round1 rounds to one decimal for display stability.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
