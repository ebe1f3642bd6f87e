// Package chance simulates coin flips and the loaded-revolver chance game.
package chance

import (
	"fmt"

	"github.com/cory-johannsen/gmkit/internal/game/dice"
)

// Side is the face a coin lands on.
type Side string

const (
	Heads Side = "Heads"
	Tails Side = "Tails"
)

// Flip flips a fair coin n times.
//
// Precondition: src must be non-nil.
// Postcondition: len(result) == n; returns ErrInvalidParameter when n < 0.
func Flip(n int, src dice.Source) ([]Side, error) {
	if n < 0 {
		return nil, fmt.Errorf("chance: flip count must be >= 0, got %d: %w", n, dice.ErrInvalidParameter)
	}
	out := make([]Side, n)
	for i := range out {
		if src.Intn(2) == 0 {
			out[i] = Heads
		} else {
			out[i] = Tails
		}
	}
	return out, nil
}
