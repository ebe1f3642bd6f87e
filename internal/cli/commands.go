package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cory-johannsen/gmkit/internal/game/chance"
	"github.com/cory-johannsen/gmkit/internal/game/character"
	"github.com/cory-johannsen/gmkit/internal/game/currency"
	"github.com/cory-johannsen/gmkit/internal/game/deck"
	"github.com/cory-johannsen/gmkit/internal/game/dice"
	"github.com/cory-johannsen/gmkit/internal/game/names"
	"github.com/cory-johannsen/gmkit/internal/storage/postgres"
)

func atoi(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer: %w", name, s, ErrUsage)
	}
	return n, nil
}

func (a *App) runRoll(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("roll: missing dice notation: %w", ErrUsage)
	}
	for _, text := range args {
		c := dice.ParseText(text)
		if !c.OK {
			fmt.Fprintln(a.out, c.Message)
			return c.Err()
		}
		r, err := a.roller.Roll(c.Count, c.Sides)
		if err != nil {
			return err
		}
		if err := a.emit(ctx, postgres.KindRoll, text, r.String()); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) runFlip(ctx context.Context, args []string) error {
	n := 1
	if len(args) > 0 {
		var err error
		if n, err = atoi("flip", args[0]); err != nil {
			return err
		}
	}
	sides, err := chance.Flip(n, a.roller.Source())
	if err != nil {
		return err
	}
	parts := make([]string, len(sides))
	for i, s := range sides {
		parts[i] = string(s)
	}
	return a.emit(ctx, postgres.KindFlip, strconv.Itoa(n), strings.Join(parts, ", "))
}

func (a *App) runDeck(ctx context.Context, args []string) error {
	fs := a.newFlagSet("deck")
	draw := fs.Int("draw", 1, "cards to draw")
	jokers := fs.Bool("jokers", false, "standard: add two jokers")
	major := fs.Bool("major", true, "tarot: include major arcana")
	minor := fs.Bool("minor", true, "tarot: include minor arcana")
	extended := fs.Bool("extended", false, "many: use the 22-card deck")
	missing := fs.Int("missing", -1, "illusions: cards missing; negative rolls 1d20-1")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("deck: expected one deck kind: %w", ErrUsage)
	}

	src := a.roller.Source()
	var d *deck.Deck
	switch fs.Arg(0) {
	case deck.KindStandard, "cards":
		d = deck.NewStandard(*jokers, src)
	case deck.KindTarot:
		d = deck.NewTarot(*major, *minor, src)
	case deck.KindManyThings, "many":
		d = deck.NewManyThings(*extended, src)
	case deck.KindIllusions, "illusion":
		d = deck.NewIllusions(*missing, src)
	default:
		return fmt.Errorf("deck: unknown kind %q: %w", fs.Arg(0), ErrUsage)
	}

	cards, err := d.Draw(*draw, src)
	if err != nil {
		return err
	}
	labels := make([]string, len(cards))
	for i, c := range cards {
		labels[i] = string(c)
	}
	input := fmt.Sprintf("%s draw=%d of %d", d.Kind, *draw, d.Len()+len(cards))
	return a.emit(ctx, postgres.KindDraw, input, strings.Join(labels, "\n"))
}

func (a *App) runRoulette(ctx context.Context, args []string) error {
	fs := a.newFlagSet("roulette")
	bullets := fs.Int("bullets", chance.DefaultBullets, "loaded chambers")
	chambers := fs.Int("chambers", chance.DefaultChambers, "chambers in the cylinder")
	pulls := fs.Int("pulls", 1, "trigger pulls")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	c := chance.NewCylinder(*bullets, *chambers, a.roller.Source())
	shots := c.Pull(*pulls)
	parts := make([]string, len(shots))
	for i, s := range shots {
		parts[i] = s.String()
	}
	input := fmt.Sprintf("bullets=%d chambers=%d pulls=%d", *bullets, *chambers, *pulls)
	return a.emit(ctx, postgres.KindRoulette, input, strings.Join(parts, "\n"))
}

func (a *App) runAbilities(ctx context.Context, args []string) error {
	fs := a.newFlagSet("abilities")
	name := fs.String("name", "", "assign the scores to a named character")
	priority := fs.String("priority", strings.Join(character.SheetOrder, ","), "abilities, best first, for -name")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		return fmt.Errorf("abilities: unexpected arguments %v: %w", fs.Args(), ErrUsage)
	}
	scores := character.RollAbilities(a.roller.Source())
	if *name == "" {
		return a.emit(ctx, postgres.KindAbilities, "", scores.Table())
	}

	c, err := character.Build(*name, scores, strings.Split(*priority, ","))
	if err != nil {
		return err
	}
	rows := make([]string, 0, len(character.SheetOrder)+1)
	rows = append(rows, c.Name)
	for _, ability := range character.SheetOrder {
		score, err := c.Abilities.Get(ability)
		if err != nil {
			return err
		}
		_, text := character.Modifier(score)
		rows = append(rows, fmt.Sprintf("%s %2d %2s", character.AbilityName(ability), score, text))
	}
	return a.emit(ctx, postgres.KindAbilities, *name, strings.Join(rows, "\n"))
}

func (a *App) runModifier(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("modifier: missing score: %w", ErrUsage)
	}
	for _, arg := range args {
		score, err := atoi("modifier", arg)
		if err != nil {
			return err
		}
		_, text := character.Modifier(score)
		if err := a.emit(ctx, postgres.KindModifier, arg, fmt.Sprintf("%2d %2s", score, text)); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) runCoins(ctx context.Context, args []string) error {
	fs := a.newFlagSet("coins")
	var p currency.Purse
	fs.IntVar(&p.Platinum, "pp", 0, "platinum pieces")
	fs.IntVar(&p.Gold, "gp", 0, "gold pieces")
	fs.IntVar(&p.Electrum, "ep", 0, "electrum pieces")
	fs.IntVar(&p.Silver, "sp", 0, "silver pieces")
	fs.IntVar(&p.Copper, "cp", 0, "copper pieces")
	split := fs.Int("split", 1, "ways to split the purse")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	s, err := currency.ToCopper(p, *split)
	if err != nil {
		return err
	}
	result := fmt.Sprintf("total %d cp; %d shares of %d cp (%s), %d cp left over",
		s.Total, *split, s.Share, currency.FromCopper(s.Share), s.Remainder)
	return a.emit(ctx, postgres.KindCoins, fmt.Sprintf("%s split=%d", p, *split), result)
}

func (a *App) runChange(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("change: expected one copper amount: %w", ErrUsage)
	}
	cp, err := atoi("change", args[0])
	if err != nil {
		return err
	}
	if cp < 0 {
		return fmt.Errorf("change: amount must be >= 0, got %d: %w", cp, dice.ErrInvalidParameter)
	}
	return a.emit(ctx, postgres.KindChange, args[0], currency.FromCopper(cp).String())
}

func (a *App) runNPC(ctx context.Context, args []string) error {
	fs := a.newFlagSet("npc")
	n := fs.Int("n", 1, "names to pick")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if a.namesPath == "" {
		return fmt.Errorf("npc: no name list configured (names.path): %w", ErrUsage)
	}
	records, err := names.Load(a.namesPath)
	if err != nil {
		return err
	}
	picked, err := names.Pick(records, *n, a.roller.Source())
	if err != nil {
		return err
	}
	return a.emit(ctx, postgres.KindNPC, strconv.Itoa(*n), strings.Join(picked, "\n"))
}

// errNoRecorder is returned by history when the session log is disabled.
var errNoRecorder = errors.New("session log is disabled (database.enabled)")

func (a *App) runHistory(ctx context.Context, args []string) error {
	fs := a.newFlagSet("history")
	n := fs.Int("n", 10, "events to show")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if a.recorder == nil {
		return errNoRecorder
	}
	events, err := a.recorder.Recent(ctx, *n)
	if err != nil {
		return err
	}
	for _, e := range events {
		fmt.Fprintf(a.out, "%s %-9s %s\n", e.CreatedAt.Format("2006-01-02 15:04:05"), e.Kind, strings.ReplaceAll(e.Result, "\n", " | "))
	}
	return nil
}
