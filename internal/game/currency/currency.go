// Package currency converts between coin denominations and copper pieces.
package currency

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cory-johannsen/gmkit/internal/game/dice"
)

// Copper-piece value of each denomination.
const (
	CopperPerPlatinum = 1000
	CopperPerGold     = 100
	CopperPerElectrum = 50
	CopperPerSilver   = 10
)

// ErrDivision is returned when a purse is split zero (or fewer) ways.
var ErrDivision = errors.New("split must be positive")

// Purse holds a count of each coin denomination.
type Purse struct {
	Platinum int
	Gold     int
	Electrum int
	Silver   int
	Copper   int
}

// Split is the outcome of dividing a purse's copper value between shares.
//
// Invariant: Share*ways + Remainder == Total.
type Split struct {
	Total     int
	Share     int
	Remainder int
}

// Total returns the purse's value in copper pieces.
func (p Purse) Total() int {
	return p.Copper +
		p.Silver*CopperPerSilver +
		p.Electrum*CopperPerElectrum +
		p.Gold*CopperPerGold +
		p.Platinum*CopperPerPlatinum
}

// ToCopper converts p to copper pieces and divides the total split ways.
//
// Precondition: every count in p is >= 0.
// Postcondition: Returns ErrDivision when split <= 0 and ErrInvalidParameter
// for negative counts.
func ToCopper(p Purse, split int) (Split, error) {
	if split <= 0 {
		return Split{}, fmt.Errorf("currency: cannot split %d ways: %w", split, ErrDivision)
	}
	if p.Platinum < 0 || p.Gold < 0 || p.Electrum < 0 || p.Silver < 0 || p.Copper < 0 {
		return Split{}, fmt.Errorf("currency: negative coin count in %+v: %w", p, dice.ErrInvalidParameter)
	}
	total := p.Total()
	return Split{Total: total, Share: total / split, Remainder: total % split}, nil
}

// FromCopper reduces cp greedily into the largest denominations first:
// platinum, gold, electrum, silver, then copper.
//
// Precondition: cp >= 0.
// Postcondition: result.Total() == cp; Gold < 10, Electrum < 2, Silver < 5, Copper < 10.
func FromCopper(cp int) Purse {
	var p Purse
	p.Platinum, cp = cp/CopperPerPlatinum, cp%CopperPerPlatinum
	p.Gold, cp = cp/CopperPerGold, cp%CopperPerGold
	p.Electrum, cp = cp/CopperPerElectrum, cp%CopperPerElectrum
	p.Silver, cp = cp/CopperPerSilver, cp%CopperPerSilver
	p.Copper = cp
	return p
}

// String returns the purse as "1 pp, 2 gp, 3 sp, 4 cp", omitting empty
// denominations. An empty purse renders as "0 cp".
func (p Purse) String() string {
	var parts []string
	for _, c := range []struct {
		n    int
		abbr string
	}{
		{p.Platinum, "pp"},
		{p.Gold, "gp"},
		{p.Electrum, "ep"},
		{p.Silver, "sp"},
		{p.Copper, "cp"},
	} {
		if c.n != 0 {
			parts = append(parts, fmt.Sprintf("%d %s", c.n, c.abbr))
		}
	}
	if len(parts) == 0 {
		return "0 cp"
	}
	return strings.Join(parts, ", ")
}
