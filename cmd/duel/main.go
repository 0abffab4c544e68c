// Package main runs a scripted duel between two entities and prints each turn.
package main

import (
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/cory-johannsen/duel/internal/config"
	"github.com/cory-johannsen/duel/internal/game/combat"
	"github.com/cory-johannsen/duel/internal/observability"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	maxHealth := cfg.Rules.MaxHealth
	hero, err := combat.NewEntityWithHealth("Hero", maxHealth, maxHealth)
	if err != nil {
		logger.Fatal("creating hero", zap.Error(err))
	}
	villain, err := combat.NewEntityWithHealth("Villain", maxHealth, maxHealth)
	if err != nil {
		logger.Fatal("creating villain", zap.Error(err))
	}

	fmt.Println("Welcome to the duel!")
	fmt.Println()
	fmt.Println("Combatants:")
	fmt.Printf("- %s\n", hero)
	fmt.Printf("- %s\n", villain)
	fmt.Println()

	match := combat.NewMatch(hero, villain)
	match.TurnCap = cfg.Rules.TurnCap
	logger.Info("duel started",
		zap.String("hero", hero.ID),
		zap.String("villain", villain.ID),
		zap.Int("max_health", maxHealth),
	)

	fmt.Println("Fight!")
	fmt.Println()
	round := 0
	for !match.IsOver() && match.Turns() < match.TurnCap {
		round++
		fmt.Printf("--- Round %d ---\n", round)
		playTurn(match, hero, villain)
		playTurn(match, villain, hero)
		fmt.Println()
	}

	fmt.Println("The duel is over!")
	if w := match.Winner(); w != nil {
		fmt.Printf("%s wins!\n", w.Name)
	} else {
		fmt.Println("It's a draw!")
	}
	logger.Info("duel finished",
		zap.Int("turns", match.Turns()),
		zap.Bool("draw", match.Winner() == nil),
	)
}

// playTurn has attacker strike defender if both can still fight.
func playTurn(match *combat.Match, attacker, defender *combat.Entity) {
	if attacker.IsDead() || match.IsOver() {
		return
	}
	fmt.Printf("%s attacks %s!\n", attacker.Name, defender.Name)
	r := match.ExecuteTurn(attacker, defender)
	if !r.Success {
		fmt.Printf("-> %s\n", r.Message)
		return
	}
	fmt.Printf("-> %s loses %d HP (remaining: %d/%d)\n",
		defender.Name, r.DamageDealt, r.DefenderStatus.Health, r.DefenderStatus.MaxHealth)
}
