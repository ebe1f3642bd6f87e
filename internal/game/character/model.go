// Package character rolls ability scores and derives their modifiers.
package character

import "fmt"

// Ability names in sheet order.
const (
	Strength     = "strength"
	Dexterity    = "dexterity"
	Constitution = "constitution"
	Intelligence = "intelligence"
	Wisdom       = "wisdom"
	Charisma     = "charisma"
)

// SheetOrder lists the six abilities as they appear on a character sheet.
var SheetOrder = []string{Strength, Dexterity, Constitution, Intelligence, Wisdom, Charisma}

// AbilityScores holds the six ability score values for a character.
type AbilityScores struct {
	Strength     int
	Dexterity    int
	Constitution int
	Intelligence int
	Wisdom       int
	Charisma     int
}

// Get returns the score for the named ability.
//
// Precondition: ability must be one of the SheetOrder names.
func (a AbilityScores) Get(ability string) (int, error) {
	switch ability {
	case Strength:
		return a.Strength, nil
	case Dexterity:
		return a.Dexterity, nil
	case Constitution:
		return a.Constitution, nil
	case Intelligence:
		return a.Intelligence, nil
	case Wisdom:
		return a.Wisdom, nil
	case Charisma:
		return a.Charisma, nil
	}
	return 0, fmt.Errorf("unknown ability %q", ability)
}

func (a *AbilityScores) set(ability string, score int) error {
	switch ability {
	case Strength:
		a.Strength = score
	case Dexterity:
		a.Dexterity = score
	case Constitution:
		a.Constitution = score
	case Intelligence:
		a.Intelligence = score
	case Wisdom:
		a.Wisdom = score
	case Charisma:
		a.Charisma = score
	default:
		return fmt.Errorf("unknown ability %q", ability)
	}
	return nil
}

// AbilityName returns the short display label for an ability score field.
func AbilityName(field string) string {
	names := map[string]string{
		Strength:     "STR",
		Dexterity:    "DEX",
		Constitution: "CON",
		Intelligence: "INT",
		Wisdom:       "WIS",
		Charisma:     "CHA",
	}
	if n, ok := names[field]; ok {
		return n
	}
	return fmt.Sprintf("<%s>", field)
}

// Character is a freshly rolled character.
type Character struct {
	Name      string
	Abilities AbilityScores
}
