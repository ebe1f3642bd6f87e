package currency

import (
	"errors"
	"testing"

	"github.com/cory-johannsen/gmkit/internal/game/dice"
	"pgregory.net/rapid"
)

func TestToCopper_Example(t *testing.T) {
	got, err := ToCopper(Purse{Platinum: 1, Gold: 2, Silver: 3, Copper: 4}, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Split{Total: 1234, Share: 246, Remainder: 4}
	if got != want {
		t.Fatalf("expected %+v got %+v", want, got)
	}
}

func TestToCopper_Electrum(t *testing.T) {
	got, err := ToCopper(Purse{Electrum: 3}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Total != 150 || got.Share != 150 || got.Remainder != 0 {
		t.Fatalf("expected 150/150/0 got %+v", got)
	}
}

func TestToCopper_ZeroSplit(t *testing.T) {
	_, err := ToCopper(Purse{Gold: 1}, 0)
	if !errors.Is(err, ErrDivision) {
		t.Fatalf("expected ErrDivision got %v", err)
	}
}

func TestToCopper_NegativeSplit(t *testing.T) {
	_, err := ToCopper(Purse{Gold: 1}, -3)
	if !errors.Is(err, ErrDivision) {
		t.Fatalf("expected ErrDivision got %v", err)
	}
}

func TestToCopper_NegativeCoins(t *testing.T) {
	_, err := ToCopper(Purse{Silver: -1}, 1)
	if !errors.Is(err, dice.ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter got %v", err)
	}
}

func TestFromCopper_Example(t *testing.T) {
	got := FromCopper(1234)
	want := Purse{Platinum: 1, Gold: 2, Electrum: 0, Silver: 3, Copper: 4}
	if got != want {
		t.Fatalf("expected %+v got %+v", want, got)
	}
}

func TestFromCopper_UsesElectrum(t *testing.T) {
	got := FromCopper(175)
	want := Purse{Gold: 1, Electrum: 1, Silver: 2, Copper: 5}
	if got != want {
		t.Fatalf("expected %+v got %+v", want, got)
	}
}

func TestFromCopper_Zero(t *testing.T) {
	if got := FromCopper(0); got != (Purse{}) {
		t.Fatalf("expected empty purse got %+v", got)
	}
}

func TestPurse_String(t *testing.T) {
	cases := map[string]Purse{
		"0 cp":                         {},
		"1 pp, 2 gp, 3 sp, 4 cp":       {Platinum: 1, Gold: 2, Silver: 3, Copper: 4},
		"1 ep":                         {Electrum: 1},
		"5 pp, 1 gp, 1 ep, 4 sp, 9 cp": {Platinum: 5, Gold: 1, Electrum: 1, Silver: 4, Copper: 9},
	}
	for want, p := range cases {
		if got := p.String(); got != want {
			t.Fatalf("expected %q got %q", want, got)
		}
	}
}

func TestProperty_FromCopper_Roundtrips(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		total := rapid.IntRange(0, 10_000_000).Draw(t, "total")
		p := FromCopper(total)
		if p.Total() != total {
			t.Fatalf("FromCopper(%d).Total() = %d", total, p.Total())
		}
		if p.Gold >= 10 || p.Electrum >= 2 || p.Silver >= 5 || p.Copper >= 10 {
			t.Fatalf("FromCopper(%d) not greedy: %+v", total, p)
		}
	})
}

// Property: converting any purse to copper and back preserves the copper total.
func TestProperty_ToCopper_Roundtrips(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := Purse{
			Platinum: rapid.IntRange(0, 1000).Draw(t, "pp"),
			Gold:     rapid.IntRange(0, 1000).Draw(t, "gp"),
			Electrum: rapid.IntRange(0, 1000).Draw(t, "ep"),
			Silver:   rapid.IntRange(0, 1000).Draw(t, "sp"),
			Copper:   rapid.IntRange(0, 1000).Draw(t, "cp"),
		}
		split := rapid.IntRange(1, 12).Draw(t, "split")
		s, err := ToCopper(p, split)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Share*split+s.Remainder != s.Total {
			t.Fatalf("share*split+remainder != total: %+v split=%d", s, split)
		}
		if FromCopper(s.Total).Total() != s.Total {
			t.Fatalf("round trip changed total for %+v", p)
		}
	})
}
