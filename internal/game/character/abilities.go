package character

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/cory-johannsen/gmkit/internal/game/dice"
)

// AbilityCount is the number of ability scores a character has.
const AbilityCount = 6

// Modifier returns the ability modifier for score, (score - 10) / 2 truncated
// toward zero, and its signed display form: "+N" when positive, " 0" when
// zero, "-N" when negative.
func Modifier(score int) (int, string) {
	mod := (score - 10) / 2
	switch {
	case mod > 0:
		return mod, fmt.Sprintf("+%d", mod)
	case mod == 0:
		return mod, " 0"
	default:
		return mod, fmt.Sprintf("%d", mod)
	}
}

// Scores is a set of rolled ability scores, highest first.
type Scores []int

// RollAbilities rolls six ability scores. Each score is the sum of the three
// highest of four six-sided dice.
//
// Precondition: src must be non-nil.
// Postcondition: len(result) == 6; result is sorted descending; every score is in [3, 18].
func RollAbilities(src dice.Source) Scores {
	scores := make(Scores, 0, AbilityCount)
	for i := 0; i < AbilityCount; i++ {
		r := dice.MustRoll(4, 6, src)
		scores = append(scores, r.Sum-r.Min)
	}
	slices.Sort(scores)
	slices.Reverse(scores)
	return scores
}

// Table renders one "score modifier" row per score with both columns
// right-justified to width 2, e.g. "15 +2".
func (s Scores) Table() string {
	var b strings.Builder
	for i, score := range s {
		_, text := Modifier(score)
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%2d %2s", score, text)
	}
	return b.String()
}

// Build assigns scores to abilities in priority order: the highest score goes
// to priority[0], the next to priority[1], and so on.
//
// Precondition: name must be non-empty; priority must name each of the six
// abilities exactly once; len(scores) == 6.
// Postcondition: Returns a Character or a non-nil error.
func Build(name string, scores Scores, priority []string) (*Character, error) {
	if name == "" {
		return nil, errors.New("character name must not be empty")
	}
	if len(scores) != AbilityCount {
		return nil, fmt.Errorf("expected %d scores, got %d: %w", AbilityCount, len(scores), dice.ErrInvalidParameter)
	}
	if len(priority) != AbilityCount {
		return nil, fmt.Errorf("expected %d abilities in priority, got %d: %w", AbilityCount, len(priority), dice.ErrInvalidParameter)
	}
	sorted := slices.Clone(scores)
	slices.Sort(sorted)
	slices.Reverse(sorted)

	seen := make(map[string]bool, AbilityCount)
	var a AbilityScores
	for i, ability := range priority {
		if seen[ability] {
			return nil, fmt.Errorf("ability %q listed twice: %w", ability, dice.ErrInvalidParameter)
		}
		seen[ability] = true
		if err := a.set(ability, sorted[i]); err != nil {
			return nil, fmt.Errorf("%w: %w", err, dice.ErrInvalidParameter)
		}
	}
	return &Character{Name: name, Abilities: a}, nil
}
