package dice

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// InvalidSyntaxMessage is the fixed message ParseText reports for malformed input.
const InvalidSyntaxMessage = "Error: Invalid Syntax - Please rewrite in the form [number of dice]d[number of sides]"

// Conversion is the outcome of ParseText: either OK with Count and Sides set,
// or not OK with Message holding InvalidSyntaxMessage.
type Conversion struct {
	OK      bool
	Count   int    // number of dice
	Sides   int    // faces per die
	Message string // set only when OK is false
}

// Err returns nil for a successful conversion, otherwise an error carrying
// Message and wrapping ErrFormat.
func (c Conversion) Err() error {
	if c.OK {
		return nil
	}
	return fmt.Errorf("%s: %w", c.Message, ErrFormat)
}

// ParseText converts free-form "<n>d<d>" text into a dice count and side number.
// Matching is case-insensitive and all whitespace is ignored. The text is
// split on the first 'd'; both sides must be non-negative integer literals.
//
// Postcondition: Never panics; malformed text yields OK == false and
// Message == InvalidSyntaxMessage.
func ParseText(text string) Conversion {
	s := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, text)

	countStr, sidesStr, found := strings.Cut(s, "d")
	if !found {
		return invalidSyntax()
	}
	count, ok := parseLiteral(countStr)
	if !ok {
		return invalidSyntax()
	}
	sides, ok := parseLiteral(sidesStr)
	if !ok {
		return invalidSyntax()
	}
	return Conversion{OK: true, Count: count, Sides: sides}
}

// parseLiteral accepts only unsigned decimal digits.
func parseLiteral(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func invalidSyntax() Conversion {
	return Conversion{Message: InvalidSyntaxMessage}
}
