// Package main provides the gmkit command-line tool.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/gmkit/internal/cli"
	"github.com/cory-johannsen/gmkit/internal/config"
	"github.com/cory-johannsen/gmkit/internal/game/dice"
	"github.com/cory-johannsen/gmkit/internal/observability"
	"github.com/cory-johannsen/gmkit/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file (optional)")
	seed := flag.Uint64("seed", 0, "random seed; overrides random.seed (0 keeps the configured source)")
	namesPath := flag.String("names", "", "name list for npc; overrides names.path")
	flag.Usage = func() { fmt.Fprint(os.Stderr, cli.Usage()) }
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *seed != 0 {
		cfg.Random.Seed = *seed
	}
	if *namesPath != "" {
		cfg.Names.Path = *namesPath
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	var src dice.Source
	if cfg.Random.Seed != 0 {
		src = dice.NewSeededSource(cfg.Random.Seed)
		logger.Debug("using seeded source", zap.Uint64("seed", cfg.Random.Seed))
	} else {
		src = dice.NewCryptoSource()
	}

	opts := []cli.Option{cli.WithNamesPath(cfg.Names.Path)}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if cfg.Database.Enabled {
		dbStart := time.Now()
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			logger.Fatal("connecting to database", zap.Error(err))
		}
		defer pool.Close()
		logger.Debug("database connected",
			zap.String("host", cfg.Database.Host),
			zap.Int("port", cfg.Database.Port),
			zap.Duration("elapsed", time.Since(dbStart)),
		)
		opts = append(opts, cli.WithRecorder(postgres.NewEventRepository(pool.DB())))
	}

	app := cli.New(src, logger, os.Stdout, opts...)
	if err := app.Run(ctx, flag.Args()); err != nil {
		if errors.Is(err, cli.ErrUsage) {
			fmt.Fprintf(os.Stderr, "%v\n\n%s", err, cli.Usage())
		} else {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		logger.Sync()
		os.Exit(1)
	}
}
