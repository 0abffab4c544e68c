// Package main runs a free-for-all between the entities of a roster file and
// prints the outcome.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/duel/internal/config"
	"github.com/cory-johannsen/duel/internal/game/dice"
	"github.com/cory-johannsen/duel/internal/game/roster"
	"github.com/cory-johannsen/duel/internal/game/session"
	"github.com/cory-johannsen/duel/internal/observability"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "", "path to configuration file (defaults when empty)")
	rosterPath := flag.String("roster", "", "path to roster YAML file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	if *rosterPath == "" {
		logger.Fatal("a roster file is required (-roster)")
	}
	r, err := roster.Load(*rosterPath)
	if err != nil {
		logger.Fatal("loading roster", zap.Error(err))
	}

	sess := session.New(cfg.Rules.Rules(), logger)
	if err := r.Seed(sess); err != nil {
		logger.Fatal("seeding session", zap.Error(err))
	}
	logger.Info("skirmish started",
		zap.String("roster", r.Name),
		zap.Int("entities", len(r.Members)),
		zap.Int("turn_cap", cfg.Rules.TurnCap),
	)

	results, err := sess.Autoplay(dice.NewCryptoSource(), cfg.Rules.TurnCap)
	if err != nil {
		logger.Fatal("running skirmish", zap.Error(err))
	}
	for _, res := range results {
		fmt.Printf("[%d] %s\n", res.Turn, res.Message)
	}

	fmt.Println()
	fmt.Println("Ranking:")
	for i, e := range sess.Ranking() {
		fmt.Printf("%d. %s\n", i+1, e)
	}
	fmt.Println()

	if w := sess.Winner(); w != nil {
		fmt.Printf("%s wins the %s skirmish!\n", w.Name, r.Name)
	} else {
		fmt.Println("No winner.")
	}

	out, err := yaml.Marshal(sess.Snapshot())
	if err != nil {
		logger.Fatal("encoding snapshot", zap.Error(err))
	}
	fmt.Println()
	if _, err := os.Stdout.Write(out); err != nil {
		logger.Warn("writing snapshot", zap.Error(err))
	}

	logger.Info("skirmish finished",
		zap.Int("turns", sess.Turn()),
		zap.Bool("game_over", sess.IsOver()),
		zap.Duration("elapsed", time.Since(start)),
	)
}
