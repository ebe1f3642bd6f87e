package dice

import "fmt"

// Roll rolls n dice with d sides each using src.
//
// Precondition: src must be non-nil.
// Postcondition: Returns ErrInvalidParameter when d < 1 or n < 0; otherwise
// len(result.Dice) == n and every die is in [1, d].
func Roll(n, d int, src Source) (RollResult, error) {
	if d < 1 {
		return RollResult{}, fmt.Errorf("dice: sides must be >= 1, got %d: %w", d, ErrInvalidParameter)
	}
	if n < 0 {
		return RollResult{}, fmt.Errorf("dice: count must be >= 0, got %d: %w", n, ErrInvalidParameter)
	}
	rolled := make([]int, n)
	for i := range rolled {
		rolled[i] = src.Intn(d) + 1
	}
	return newRollResult(d, rolled), nil
}

// RollText converts text with ParseText and rolls the result.
//
// Postcondition: Returns an error wrapping ErrFormat when text is not valid
// dice notation, or ErrInvalidParameter when the parsed sides are zero.
func RollText(text string, src Source) (RollResult, error) {
	c := ParseText(text)
	if err := c.Err(); err != nil {
		return RollResult{}, err
	}
	return Roll(c.Count, c.Sides, src)
}

// MustRoll rolls n dice with d sides and panics on error. Useful where the
// parameters are constants.
//
// Precondition: d >= 1 and n >= 0.
func MustRoll(n, d int, src Source) RollResult {
	r, err := Roll(n, d, src)
	if err != nil {
		panic("dice: MustRoll failed: " + err.Error())
	}
	return r
}
