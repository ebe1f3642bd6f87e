// Package deck builds shuffled card decks and draws from them without replacement.
package deck

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cory-johannsen/gmkit/internal/game/dice"
)

// ErrEmptyDeck is returned when a draw asks for more cards than remain.
var ErrEmptyDeck = errors.New("deck is empty")

// Card is an opaque card label. Two cards with the same label are still
// distinct elements of a Deck.
type Card string

// Deck is an ordered, mutable sequence of cards.
//
// Invariant: Kind never changes after construction; Cards only shrinks.
// A Deck is not safe for concurrent use.
type Deck struct {
	ID    string
	Kind  string
	Cards []Card
}

// newShuffled wraps cards in a Deck with a fresh ID and shuffles it with src.
func newShuffled(kind string, cards []Card, src dice.Source) *Deck {
	d := &Deck{ID: uuid.New().String(), Kind: kind, Cards: cards}
	d.Shuffle(src)
	return d
}

// Len returns the number of cards remaining.
func (d *Deck) Len() int {
	return len(d.Cards)
}

// Shuffle permutes the remaining cards uniformly at random.
func (d *Deck) Shuffle(src dice.Source) {
	dice.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}, src)
}

// Draw removes n cards chosen uniformly at random from the remaining cards
// and returns them in draw order. Each draw removes the card at the chosen
// position only, so duplicate labels are consumed one at a time.
//
// Precondition: src must be non-nil.
// Postcondition: On success len(result) == n and d.Len() shrank by n.
// Returns ErrInvalidParameter when n < 0 and ErrEmptyDeck when n > d.Len();
// on error the deck is unchanged.
func (d *Deck) Draw(n int, src dice.Source) ([]Card, error) {
	if n < 0 {
		return nil, fmt.Errorf("deck: draw count must be >= 0, got %d: %w", n, dice.ErrInvalidParameter)
	}
	if n > len(d.Cards) {
		return nil, fmt.Errorf("deck: cannot draw %d from %d remaining: %w", n, len(d.Cards), ErrEmptyDeck)
	}
	drawn := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		idx := src.Intn(len(d.Cards))
		drawn = append(drawn, d.Cards[idx])
		d.Cards = append(d.Cards[:idx], d.Cards[idx+1:]...)
	}
	return drawn, nil
}

// Count returns how many remaining cards carry the given label.
func (d *Deck) Count(label Card) int {
	n := 0
	for _, c := range d.Cards {
		if c == label {
			n++
		}
	}
	return n
}
