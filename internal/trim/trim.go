// Package trim implements truncation strategies for fitting multiple
// token segments into a shared length budget.
//
// Strategies operate on plain segment lengths, independent of any
// container representation, so they can be tested in isolation.
package trim

import "fmt"

// Strategy selects a truncation algorithm.
type Strategy string

const (
	// RoundRobinStrategy assigns budget one token at a time in a
	// round-robin fashion to the segments that still need some.
	RoundRobinStrategy Strategy = "round_robin"

	// WaterfallStrategy allocates budget left to right, filling each
	// segment before moving to the next.
	WaterfallStrategy Strategy = "waterfall"
)

// ParseStrategy validates a strategy name.
func ParseStrategy(name string) (Strategy, error) {
	switch Strategy(name) {
	case RoundRobinStrategy:
		return RoundRobinStrategy, nil
	case WaterfallStrategy:
		return WaterfallStrategy, nil
	default:
		return "", fmt.Errorf("unknown truncation strategy %q (supported: %q, %q)",
			name, RoundRobinStrategy, WaterfallStrategy)
	}
}

// Trim applies the strategy to one example's segment lengths.
// It returns the trimmed length of each segment; lengths never grow and
// never go negative. Budget must be non-negative.
func (s Strategy) Trim(lens []int, budget int) []int {
	switch s {
	case RoundRobinStrategy:
		return RoundRobin(lens, budget)
	case WaterfallStrategy:
		return Waterfall(lens, budget)
	default:
		panic(fmt.Sprintf("trim: unsupported strategy %q", s))
	}
}

// RoundRobin distributes budget one token at a time across segments in a
// strict left-to-right cycle, skipping segments that are already fully
// included, until the budget is exhausted or every segment fits.
//
// The result is as balanced as possible; when the budget does not divide
// evenly, earlier segments receive the extra token.
//
// Example:
//
//	RoundRobin([]int{5, 5, 5}, 6) // [2, 2, 2]
//	RoundRobin([]int{5, 1, 5}, 6) // [3, 1, 2]
func RoundRobin(lens []int, budget int) []int {
	if budget < 0 {
		panic(fmt.Sprintf("trim: negative budget %d", budget))
	}

	out := make([]int, len(lens))
	remaining := budget
	for remaining > 0 {
		progressed := false
		for i, want := range lens {
			if out[i] >= want {
				continue
			}
			out[i]++
			remaining--
			progressed = true
			if remaining == 0 {
				break
			}
		}
		if !progressed {
			// Every segment fits within the budget.
			break
		}
	}
	return out
}

// Waterfall allocates budget in left-to-right priority order: each segment
// is filled to min(its length, remaining budget) before the next segment
// receives anything. Segments after the budget runs out get zero tokens.
// Supports an arbitrary number of segments.
//
// Example:
//
//	Waterfall([]int{5, 5, 5}, 6) // [5, 1, 0]
func Waterfall(lens []int, budget int) []int {
	if budget < 0 {
		panic(fmt.Sprintf("trim: negative budget %d", budget))
	}

	out := make([]int, len(lens))
	remaining := budget
	for i, want := range lens {
		take := want
		if take > remaining {
			take = remaining
		}
		out[i] = take
		remaining -= take
		if remaining == 0 {
			break
		}
	}
	return out
}
