package chance_test

import (
	"testing"

	"github.com/cory-johannsen/gmkit/internal/game/chance"
	"github.com/cory-johannsen/gmkit/internal/game/dice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// fixedSource returns val clamped to n-1 on every call.
type fixedSource struct{ val int }

func (f *fixedSource) Intn(n int) int {
	if f.val >= n {
		return n - 1
	}
	return f.val
}

func TestFlip(t *testing.T) {
	heads, err := chance.Flip(3, &fixedSource{val: 0})
	require.NoError(t, err)
	assert.Equal(t, []chance.Side{chance.Heads, chance.Heads, chance.Heads}, heads)

	tails, err := chance.Flip(2, &fixedSource{val: 1})
	require.NoError(t, err)
	assert.Equal(t, []chance.Side{chance.Tails, chance.Tails}, tails)

	none, err := chance.Flip(0, &fixedSource{})
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = chance.Flip(-1, &fixedSource{})
	assert.ErrorIs(t, err, dice.ErrInvalidParameter)
}

func TestFlip_Property(t *testing.T) {
	src := dice.NewSeededSource(1)
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 200).Draw(rt, "n")
		sides, err := chance.Flip(n, src)
		require.NoError(rt, err)
		assert.Len(rt, sides, n)
		for _, s := range sides {
			assert.Contains(rt, []chance.Side{chance.Heads, chance.Tails}, s)
		}
	})
}

// TestNewCylinder_Property verifies composition for every bullets <= chambers.
func TestNewCylinder_Property(t *testing.T) {
	src := dice.NewSeededSource(2)
	rapid.Check(t, func(rt *rapid.T) {
		chambers := rapid.IntRange(0, 64).Draw(rt, "chambers")
		bullets := rapid.IntRange(0, chambers).Draw(rt, "bullets")
		c := chance.NewCylinder(bullets, chambers, src)
		assert.Equal(rt, chambers, c.Len())
		assert.Equal(rt, bullets, c.Loaded())
	})
}

func TestNewCylinder_TooManyBulletsFallsBack(t *testing.T) {
	c := chance.NewCylinder(7, 6, dice.NewSeededSource(3))
	assert.Equal(t, 6, c.Len())
	assert.Equal(t, 1, c.Loaded())

	c = chance.NewCylinder(3, 2, dice.NewSeededSource(3))
	assert.Equal(t, chance.DefaultChambers, c.Len())
	assert.Equal(t, chance.DefaultBullets, c.Loaded())
}

func TestNewCylinder_NegativeCountsClampToZero(t *testing.T) {
	c := chance.NewCylinder(-2, -5, dice.NewSeededSource(3))
	assert.Equal(t, 0, c.Len())

	c = chance.NewCylinder(-1, 4, dice.NewSeededSource(3))
	assert.Equal(t, 4, c.Len())
	assert.Equal(t, 0, c.Loaded())
}

// TestPull_ConsumesFrontToBack verifies pulls replay the spun order.
func TestPull_ConsumesFrontToBack(t *testing.T) {
	c := chance.NewCylinder(2, 5, dice.NewSeededSource(4))
	order := c.Chambers()

	shots := c.Pull(7)
	require.Len(t, shots, 7)
	for i, loaded := range order {
		if loaded {
			assert.Equal(t, chance.Bang, shots[i])
		} else {
			assert.Equal(t, chance.Click, shots[i])
		}
	}
	assert.Equal(t, []chance.Shot{chance.DryClick, chance.DryClick}, shots[5:])
	assert.Equal(t, 0, c.Len())
}

func TestPull_EmptyCylinderDryClicks(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 50).Draw(rt, "n")
		c := chance.NewCylinder(0, 0, &fixedSource{})
		shots := c.Pull(n)
		assert.Len(rt, shots, n)
		for _, s := range shots {
			assert.Equal(rt, chance.DryClick, s)
		}
	})
}

func TestPull_CountsBullets(t *testing.T) {
	c := chance.NewCylinder(3, 6, dice.NewSeededSource(5))
	bangs := 0
	for _, s := range c.Pull(6) {
		if s == chance.Bang {
			bangs++
		}
	}
	assert.Equal(t, 3, bangs)
}

func TestShot_String(t *testing.T) {
	assert.Equal(t, "* BANG! *", chance.Bang.String())
	assert.Equal(t, "* click *", chance.Click.String())
	assert.Equal(t, "* click * ", chance.DryClick.String())
}
