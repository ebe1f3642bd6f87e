// Package cli implements the gmkit subcommands on top of the game packages.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/gmkit/internal/game/dice"
	"github.com/cory-johannsen/gmkit/internal/storage/postgres"
)

// ErrUsage is returned for unknown subcommands and malformed arguments.
var ErrUsage = errors.New("usage error")

// Recorder persists operation outcomes. EventRepository satisfies it.
type Recorder interface {
	Record(ctx context.Context, e postgres.Event) (postgres.Event, error)
	Recent(ctx context.Context, limit int) ([]postgres.Event, error)
}

// App runs subcommands against a shared randomness source.
type App struct {
	roller    *dice.Roller
	logger    *zap.Logger
	out       io.Writer
	recorder  Recorder
	namesPath string
}

// Option customises an App.
type Option func(*App)

// WithRecorder records every successful operation to r.
func WithRecorder(r Recorder) Option {
	return func(a *App) { a.recorder = r }
}

// WithNamesPath sets the name list used by the npc subcommand.
func WithNamesPath(path string) Option {
	return func(a *App) { a.namesPath = path }
}

// New creates an App that draws from src, logs to logger and prints results to out.
//
// Precondition: src, logger and out must be non-nil.
func New(src dice.Source, logger *zap.Logger, out io.Writer, opts ...Option) *App {
	a := &App{
		roller: dice.NewLoggedRoller(src, logger),
		logger: logger,
		out:    out,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

type command struct {
	usage string
	run   func(a *App, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"roll":      {"roll <NdM>...", (*App).runRoll},
	"flip":      {"flip [n]", (*App).runFlip},
	"deck":      {"deck [-draw n] [-jokers] [-major] [-minor] [-extended] [-missing n] <standard|tarot|many|illusions>", (*App).runDeck},
	"roulette":  {"roulette [-bullets b] [-chambers c] [-pulls n]", (*App).runRoulette},
	"abilities": {"abilities [-name n] [-priority a,b,...]", (*App).runAbilities},
	"modifier":  {"modifier <score>...", (*App).runModifier},
	"coins":     {"coins [-pp n] [-gp n] [-ep n] [-sp n] [-cp n] [-split n]", (*App).runCoins},
	"change":    {"change <cp>", (*App).runChange},
	"npc":       {"npc [-n k]", (*App).runNPC},
	"history":   {"history [-n k]", (*App).runHistory},
}

// Usage returns the list of subcommands, one per line.
func Usage() string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	var b strings.Builder
	b.WriteString("usage: gmkit [-config path] [-seed n] <command> [args]\n\ncommands:\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  %s\n", commands[name].usage)
	}
	return b.String()
}

// Run dispatches args[0] to its subcommand.
//
// Postcondition: Returns an error wrapping ErrUsage for unknown commands or
// bad arguments, or the operation's own error.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no command given: %w", ErrUsage)
	}
	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("unknown command %q: %w", args[0], ErrUsage)
	}
	a.logger.Debug("running command", zap.String("command", args[0]), zap.Strings("args", args[1:]))
	if err := cmd.run(a, ctx, args[1:]); err != nil {
		a.logger.Warn("command failed", zap.String("command", args[0]), zap.Error(err))
		return err
	}
	return nil
}

// emit prints result and records it when a Recorder is configured.
func (a *App) emit(ctx context.Context, kind, input, result string) error {
	fmt.Fprintln(a.out, result)
	if a.recorder == nil {
		return nil
	}
	e, err := a.recorder.Record(ctx, postgres.Event{Kind: kind, Input: input, Result: result})
	if err != nil {
		return fmt.Errorf("recording %s: %w", kind, err)
	}
	a.logger.Debug("recorded session event", zap.String("id", e.ID), zap.String("kind", kind))
	return nil
}

// newFlagSet builds a FlagSet that reports errors instead of exiting.
func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%s: %v: %w", fs.Name(), err, ErrUsage)
	}
	return nil
}
