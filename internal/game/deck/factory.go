package deck

import (
	"fmt"

	"github.com/cory-johannsen/gmkit/internal/game/dice"
)

// Deck kinds.
const (
	KindStandard   = "standard"
	KindTarot      = "tarot"
	KindManyThings = "many_things"
	KindIllusions  = "illusions"
)

// Joker is the label of both jokers in a standard deck.
const Joker Card = "Joker"

var (
	standardRanks = []string{"Ace", "2", "3", "4", "5", "6", "7", "8", "9", "10", "Jack", "Queen", "King"}
	standardSuits = []string{"Hearts", "Diamonds", "Clubs", "Spades"}

	tarotRanks = []string{"Ace", "2", "3", "4", "5", "6", "7", "8", "9", "10", "Page", "Knight", "Queen", "King"}
	tarotSuits = []string{"Cups", "Pentacles", "Swords", "Wands"}
)

// MajorArcana lists the 22 major arcana in traditional order.
var MajorArcana = []Card{
	"The Fool", "The Magician", "The High Priestess", "The Empress", "The Emperor",
	"The Hierophant", "The Lovers", "The Chariot", "Strength", "The Hermit", "Wheel Of Fortune",
	"Justice", "The Hanged Man", "Death", "Temperance", "Devil", "The Tower", "The Star",
	"The Moon", "The Sun", "Judgment", "The World",
}

// ManyThingsBase is the 14-card Deck of Many Things.
var ManyThingsBase = []Card{
	"Balance", "Euryale", "Flames", "Jester", "Key", "Knight", "Moon",
	"Rogue", "Ruin", "Skull", "Star", "Sun", "The Void", "Throne",
}

// ManyThingsExtended holds the 8 cards added to make the full 22-card deck.
var ManyThingsExtended = []Card{
	"Comet", "Donjon", "Fates", "Fool", "Gem", "Idiot", "Talons", "Vizier",
}

// Illusions is the full 33-card Deck of Illusions. Each card names the
// illusory creature it conjures.
var Illusions = []Card{
	"Ace of Hearts: Red dragon", "King of Hearts: Knight and four guards",
	"Queen of Hearts: Succubus or incubus", "Jack of Hearts: Druid",
	"Ten of Hearts: Cloud giant", "Nine of Hearts: Ettin",
	"Eight of Hearts: Bugbear", "Two of Hearts: Goblin",
	"Ace of Diamonds: Beholder", "King of Diamonds: Archmage and mage apprentice",
	"Queen of Diamonds: Night hag", "Jack of Diamonds: Assassin",
	"Ten of Diamonds: Fire giant", "Nine of Diamonds: Ogre mage",
	"Eight of Diamonds: Gnoll", "Two of Diamonds: Kobold",
	"Ace of Spades: Lich", "King of Spades: Priest and two acolytes",
	"Queen of Spades: Medusa", "Jack of Spades: Veteran",
	"Ten of Spades: Frost giant", "Nine of Spades: Troll",
	"Eight of Spades: Hobgoblin", "Two of Spades: Goblin",
	"Ace of Clubs: Iron golem", "King of Clubs: Bandit captain and three bandits",
	"Queen of Clubs: Erinyes", "Jack of Clubs: Berserker",
	"Ten of Clubs: Hill giant", "Nine of Clubs: Ogre",
	"Eight of Clubs: Orc", "Two of Clubs: Kobold",
	"Joker: You (the deck's owner)",
}

// suited returns "{rank} of {suit}" for every rank, suit pair, rank-major.
func suited(ranks, suits []string) []Card {
	cards := make([]Card, 0, len(ranks)*len(suits))
	for _, rank := range ranks {
		for _, suit := range suits {
			cards = append(cards, Card(fmt.Sprintf("%s of %s", rank, suit)))
		}
	}
	return cards
}

// NewStandard builds a shuffled 52-card deck, plus two jokers when includeJoker is set.
//
// Postcondition: Len() == 52, or 54 with exactly two Joker cards.
func NewStandard(includeJoker bool, src dice.Source) *Deck {
	cards := make([]Card, 0, 54)
	if includeJoker {
		cards = append(cards, Joker, Joker)
	}
	cards = append(cards, suited(standardRanks, standardSuits)...)
	return newShuffled(KindStandard, cards, src)
}

// NewTarot builds a shuffled tarot deck from the selected arcana. Selecting
// neither yields an empty deck.
//
// Postcondition: Len() == 22*major + 56*minor.
func NewTarot(includeMajor, includeMinor bool, src dice.Source) *Deck {
	cards := make([]Card, 0, 78)
	if includeMajor {
		cards = append(cards, MajorArcana...)
	}
	if includeMinor {
		cards = append(cards, suited(tarotRanks, tarotSuits)...)
	}
	return newShuffled(KindTarot, cards, src)
}

// NewManyThings builds a shuffled Deck of Many Things: 14 cards, or 22 when extended.
func NewManyThings(extended bool, src dice.Source) *Deck {
	cards := append([]Card(nil), ManyThingsBase...)
	if extended {
		cards = append(cards, ManyThingsExtended...)
	}
	return newShuffled(KindManyThings, cards, src)
}

// NewIllusions builds a shuffled Deck of Illusions with missing cards removed.
// When missing is negative or not smaller than the full deck, 1d20-1 cards
// are missing instead.
//
// Postcondition: 0 <= Len() <= len(Illusions); Len() >= 14 on the 1d20-1 branch.
func NewIllusions(missing int, src dice.Source) *Deck {
	if missing < 0 || missing >= len(Illusions) {
		missing = dice.MustRoll(1, 20, src).Sum - 1
	}
	// The head of a uniform permutation is a uniform sample in uniform order.
	d := newShuffled(KindIllusions, append([]Card(nil), Illusions...), src)
	d.Cards = d.Cards[:len(d.Cards)-missing]
	return d
}
