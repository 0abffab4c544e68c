package session

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/duel/internal/game/combat"
	"github.com/cory-johannsen/duel/internal/game/dice"
)

// Autoplay runs a free-for-all: in roster order, every living entity attacks
// another living entity chosen with src. Rounds repeat until the game is over
// or maxTurns actions have been dispatched.
//
// Precondition: src must be non-nil; maxTurns >= 0.
// Postcondition: Returns the results of every dispatched action in order.
func (s *Session) Autoplay(src dice.Source, maxTurns int) ([]ActionResult, error) {
	var results []ActionResult
	for !s.IsOver() && len(results) < maxTurns {
		for _, actor := range s.AliveEntities() {
			if s.IsOver() || len(results) >= maxTurns {
				break
			}
			// Killed earlier in this round.
			if actor.IsDead() {
				continue
			}
			targets := s.opponents(actor)
			target := targets[dice.Pick(src, len(targets))]
			res, err := s.Dispatch(ActionRequest{
				Actor:  actor.Name,
				Action: ActionAttack.String(),
				Target: target.Name,
			})
			if err != nil {
				return results, fmt.Errorf("autoplay turn %d: %w", s.turn+1, err)
			}
			results = append(results, res)
		}
	}
	if !s.IsOver() {
		s.logger.Warn("autoplay stopped at turn cap",
			zap.Int("max_turns", maxTurns),
			zap.Int("alive", len(s.AliveEntities())),
		)
	}
	return results, nil
}

// opponents returns every living entity other than actor.
func (s *Session) opponents(actor *combat.Entity) []*combat.Entity {
	var out []*combat.Entity
	for _, e := range s.entities {
		if e != actor && e.IsAlive() {
			out = append(out, e)
		}
	}
	return out
}
