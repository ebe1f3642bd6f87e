package chance

import "github.com/cory-johannsen/gmkit/internal/game/dice"

// Default cylinder used when more bullets are requested than chambers exist.
const (
	DefaultBullets  = 1
	DefaultChambers = 6
)

// Shot is the outcome of a single trigger pull.
type Shot int

const (
	// Click is a pull on an empty chamber.
	Click Shot = iota
	// Bang is a pull on a loaded chamber.
	Bang
	// DryClick is a pull once every chamber has been spent.
	DryClick
)

// String renders the shot the way it is announced at the table.
func (s Shot) String() string {
	switch s {
	case Bang:
		return "* BANG! *"
	case DryClick:
		return "* click * "
	default:
		return "* click *"
	}
}

// Cylinder is a revolver cylinder; each chamber is loaded or empty.
//
// Invariant: chambers are consumed front to back and never refilled.
// A Cylinder is not safe for concurrent use.
type Cylinder struct {
	chambers []bool
}

// NewCylinder loads bullets into a cylinder of chambers and spins it once.
// When bullets > chambers the request is silently replaced with
// DefaultBullets in DefaultChambers. Negative counts are treated as zero.
//
// Postcondition: Len() == chambers and Loaded() == bullets, after substitution.
func NewCylinder(bullets, chambers int, src dice.Source) *Cylinder {
	bullets, chambers = max(bullets, 0), max(chambers, 0)
	if bullets > chambers {
		bullets, chambers = DefaultBullets, DefaultChambers
	}
	c := &Cylinder{chambers: make([]bool, chambers)}
	for i := 0; i < bullets; i++ {
		c.chambers[i] = true
	}
	dice.Shuffle(len(c.chambers), func(i, j int) {
		c.chambers[i], c.chambers[j] = c.chambers[j], c.chambers[i]
	}, src)
	return c
}

// Len returns the number of unspent chambers.
func (c *Cylinder) Len() int {
	return len(c.chambers)
}

// Loaded returns the number of unspent loaded chambers.
func (c *Cylinder) Loaded() int {
	n := 0
	for _, loaded := range c.chambers {
		if loaded {
			n++
		}
	}
	return n
}

// Chambers returns a copy of the unspent chambers, front first.
func (c *Cylinder) Chambers() []bool {
	return append([]bool(nil), c.chambers...)
}

// Pull pulls the trigger n times. Each pull spends the front chamber; once
// the cylinder is spent every further pull is a DryClick.
//
// Postcondition: len(result) == max(n, 0); no randomness is consumed.
func (c *Cylinder) Pull(n int) []Shot {
	out := make([]Shot, 0, max(n, 0))
	for i := 0; i < n; i++ {
		if len(c.chambers) == 0 {
			out = append(out, DryClick)
			continue
		}
		loaded := c.chambers[0]
		c.chambers = c.chambers[1:]
		if loaded {
			out = append(out, Bang)
		} else {
			out = append(out, Click)
		}
	}
	return out
}
