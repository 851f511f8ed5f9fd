// Package trim provides the truncation strategies used by seqpack to fit
// multiple token segments into a shared length budget.
//
// The strategies operate on plain segment lengths, independent of any
// container representation:
//
//	trim.RoundRobin([]int{5, 5, 5}, 6) // [2, 2, 2]
//	trim.Waterfall([]int{5, 5, 5}, 6)  // [5, 1, 0]
package trim

import (
	"github.com/seqpack-ml/seqpack/internal/trim"
)

// Strategy selects a truncation algorithm.
type Strategy = trim.Strategy

// Supported strategies.
const (
	// RoundRobin assigns budget one token at a time in a round-robin
	// fashion to the segments that still need some.
	RoundRobin = trim.RoundRobinStrategy

	// Waterfall allocates budget left to right, filling each segment
	// before moving to the next.
	Waterfall = trim.WaterfallStrategy
)

// ParseStrategy validates a strategy name.
func ParseStrategy(name string) (Strategy, error) {
	return trim.ParseStrategy(name)
}
