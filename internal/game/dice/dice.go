// Package dice provides the core randomness abstraction and roll-result types
// shared by every gmkit simulator.
package dice

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is returned when a count or side number is out of range.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrFormat is returned when text input cannot be parsed.
	ErrFormat = errors.New("invalid format")
)

// RollResult holds the outcome of rolling N dice of D sides.
//
// Invariant: Sum == sum(Dice); Max and Min are the extremes of Dice, or 0 when Dice is empty.
type RollResult struct {
	Sides int   // faces per die
	Dice  []int // individual die results in roll order
	Sum   int
	Max   int
	Min   int
}

// newRollResult derives Sum, Max and Min from dice.
func newRollResult(sides int, dice []int) RollResult {
	r := RollResult{Sides: sides, Dice: dice}
	for i, d := range dice {
		r.Sum += d
		if i == 0 || d > r.Max {
			r.Max = d
		}
		if i == 0 || d < r.Min {
			r.Min = d
		}
	}
	return r
}

// Expression returns the dice notation the result was rolled from, e.g. "4d6".
func (r RollResult) Expression() string {
	return fmt.Sprintf("%dd%d", len(r.Dice), r.Sides)
}

// String returns a human-readable audit string in the format:
//
//	"4d6 → [3 5 1 6] = 15 (max 6, min 1)"
func (r RollResult) String() string {
	return fmt.Sprintf("%s → %v = %d (max %d, min %d)", r.Expression(), r.Dice, r.Sum, r.Max, r.Min)
}

// Source is the randomness provider for every roll, shuffle and draw.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// Shuffle applies a Fisher–Yates permutation of n elements using src.
//
// Precondition: n >= 0; swap exchanges the elements at i and j.
// Postcondition: every one of the n! orderings is equally likely for a uniform src.
func Shuffle(n int, swap func(i, j int), src Source) {
	for i := n - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		swap(i, j)
	}
}
