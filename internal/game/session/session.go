// Package session manages a roster of entities across a longer game: adding
// combatants, dispatching named actions to them, and tracking history and the
// eventual winner.
package session

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/cory-johannsen/duel/internal/game/combat"
)

// ErrDuplicateName is returned when an entity name is already on the roster.
var ErrDuplicateName = errors.New("duplicate entity name")

// Session owns a roster of entities for one game.
// It is not safe for concurrent use; callers serialize access.
//
// Invariant: entity names are unique; the game is over exactly when at most one
// entity is alive.
type Session struct {
	rules    combat.Rules
	logger   *zap.Logger
	entities []*combat.Entity
	turn     int
	over     bool
	winner   *combat.Entity
	history  []HistoryEntry
}

// Snapshot is a point-in-time view of a session.
type Snapshot struct {
	Turn          int             `yaml:"turn"`
	TotalEntities int             `yaml:"total_entities"`
	AliveEntities int             `yaml:"alive_entities"`
	DeadEntities  int             `yaml:"dead_entities"`
	Entities      []combat.Status `yaml:"entities"`
	GameOver      bool            `yaml:"game_over"`
	Winner        string          `yaml:"winner,omitempty"`
	HistoryLength int             `yaml:"history_length"`
}

// New creates an empty session. Non-positive MaxHealth or TurnCap fall back to
// the defaults; a nil logger is replaced with a no-op logger.
//
// Postcondition: Returns a session with an empty roster at turn 0.
func New(rules combat.Rules, logger *zap.Logger) *Session {
	defaults := combat.DefaultRules()
	if rules.MaxHealth <= 0 {
		rules.MaxHealth = defaults.MaxHealth
	}
	if rules.TurnCap <= 0 {
		rules.TurnCap = defaults.TurnCap
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{rules: rules, logger: logger}
}

// Rules returns the rules this session was created with.
func (s *Session) Rules() combat.Rules { return s.rules }

// Turn returns the number of successful actions dispatched so far.
func (s *Session) Turn() int { return s.turn }

// AddEntity adds an entity at full health.
//
// Postcondition: Returns the new entity, or an error wrapping ErrDuplicateName
// or combat.ErrInvalidArgument.
func (s *Session) AddEntity(name string) (*combat.Entity, error) {
	return s.AddEntityWithHealth(name, s.rules.MaxHealth)
}

// AddEntityWithHealth adds an entity with a custom starting health.
//
// Precondition: 0 <= health <= Rules().MaxHealth.
// Postcondition: Returns the new entity, or an error wrapping ErrDuplicateName
// or combat.ErrInvalidArgument. On success an entity_added entry is appended to history.
func (s *Session) AddEntityWithHealth(name string, health int) (*combat.Entity, error) {
	e, err := combat.NewEntityWithHealth(name, s.rules.MaxHealth, health)
	if err != nil {
		return nil, fmt.Errorf("adding entity: %w", err)
	}
	if s.FindEntity(name) != nil {
		return nil, fmt.Errorf("%w: %q is already in the session", ErrDuplicateName, name)
	}

	s.entities = append(s.entities, e)
	s.history = append(s.history, HistoryEntry{
		Turn:   s.turn,
		Kind:   HistoryEntityAdded,
		Actor:  name,
		Detail: fmt.Sprintf("%s joins the game with %d HP", name, e.Health()),
	})
	s.logger.Debug("entity added",
		zap.String("name", name),
		zap.String("id", e.ID),
		zap.Int("health", e.Health()),
	)
	return e, nil
}

// FindEntity returns the entity with the given name, or nil.
func (s *Session) FindEntity(name string) *combat.Entity {
	for _, e := range s.entities {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// Entities returns the roster in insertion order.
func (s *Session) Entities() []*combat.Entity {
	return slices.Clone(s.entities)
}

// AliveEntities returns the living entities in insertion order.
func (s *Session) AliveEntities() []*combat.Entity {
	var alive []*combat.Entity
	for _, e := range s.entities {
		if e.IsAlive() {
			alive = append(alive, e)
		}
	}
	return alive
}

// DeadEntities returns the dead entities in insertion order.
func (s *Session) DeadEntities() []*combat.Entity {
	var dead []*combat.Entity
	for _, e := range s.entities {
		if e.IsDead() {
			dead = append(dead, e)
		}
	}
	return dead
}

// IsOver reports whether at most one entity is alive.
func (s *Session) IsOver() bool {
	return len(s.AliveEntities()) <= 1
}

// Winner returns the sole survivor once the game is over.
//
// Postcondition: Returns nil while the game is running or when nobody is alive.
func (s *Session) Winner() *combat.Entity {
	if !s.IsOver() {
		return nil
	}
	alive := s.AliveEntities()
	if len(alive) == 0 {
		return nil
	}
	return alive[0]
}

// History returns a copy of the audit log.
func (s *Session) History() []HistoryEntry {
	return slices.Clone(s.history)
}

// Dispatch performs one action for the requesting entity.
//
// Refusals (game over, missing or dead actor, bad attack target, unknown action)
// are reported through ActionResult.Success == false and leave the session
// unchanged. A negative heal amount is returned as an error wrapping
// combat.ErrInvalidArgument, also leaving the session unchanged.
//
// Postcondition: On success the turn counter is incremented, the result is
// appended to history, and if the game just ended the winner is resolved.
func (s *Session) Dispatch(req ActionRequest) (ActionResult, error) {
	if s.over || s.IsOver() {
		return s.refuse(req, "the game is over"), nil
	}

	actor := s.FindEntity(req.Actor)
	if actor == nil || actor.IsDead() {
		return s.refuse(req, fmt.Sprintf("%s cannot act (dead or missing)", req.Actor)), nil
	}

	action := ParseActionType(req.Action)
	res := ActionResult{
		Success: true,
		Turn:    s.turn + 1,
		Actor:   actor.Name,
		Action:  action,
	}

	switch action {
	case ActionAttack:
		if req.Target == "" {
			return s.refuse(req, "a target is required to attack"), nil
		}
		target := s.FindEntity(req.Target)
		if target == nil {
			return s.refuse(req, fmt.Sprintf("target %s not found", req.Target)), nil
		}
		if target.IsDead() {
			return s.refuse(req, fmt.Sprintf("%s is already dead", req.Target)), nil
		}
		if target == actor {
			return s.refuse(req, fmt.Sprintf("%s cannot attack itself", actor.Name)), nil
		}
		before := target.Health()
		actor.Attack(target)
		res.Attack = &AttackOutcome{
			Target:       target.Name,
			DamageDealt:  before - target.Health(),
			TargetHealth: target.Health(),
			TargetDied:   target.IsDead(),
		}
		res.Message = fmt.Sprintf("%s attacks %s for %d damage", actor.Name, target.Name, res.Attack.DamageDealt)

	case ActionDefend:
		actor.Defend()
		res.Message = fmt.Sprintf("%s takes a defensive stance", actor.Name)

	case ActionHeal:
		amount := s.rules.HealAmount
		if req.Amount != nil {
			amount = *req.Amount
		}
		before := actor.Health()
		restored, err := actor.Heal(amount)
		if err != nil {
			return ActionResult{}, fmt.Errorf("healing %s: %w", actor.Name, err)
		}
		res.Heal = &HealOutcome{
			Restored:        restored,
			CurrentHealth:   actor.Health(),
			WasAtFullHealth: before == actor.MaxHealth,
		}
		res.Message = fmt.Sprintf("%s heals %d HP", actor.Name, restored)

	default:
		return s.refuse(req, fmt.Sprintf("unknown action: %q", req.Action)), nil
	}

	s.turn++
	if s.IsOver() {
		s.over = true
		s.winner = s.Winner()
		res.GameOver = true
		if s.winner != nil {
			res.Winner = s.winner.Name
		}
	}
	recorded := res
	s.history = append(s.history, HistoryEntry{
		Turn:   res.Turn,
		Kind:   HistoryAction,
		Actor:  actor.Name,
		Detail: res.Message,
		Result: &recorded,
	})

	s.logger.Debug("action dispatched",
		zap.Int("turn", res.Turn),
		zap.String("actor", actor.Name),
		zap.Stringer("action", action),
		zap.String("message", res.Message),
	)
	if res.GameOver {
		s.logger.Info("game over",
			zap.Int("turn", s.turn),
			zap.String("winner", res.Winner),
		)
	}
	return res, nil
}

func (s *Session) refuse(req ActionRequest, msg string) ActionResult {
	s.logger.Debug("action refused",
		zap.String("actor", req.Actor),
		zap.String("action", req.Action),
		zap.String("reason", msg),
	)
	res := ActionResult{
		Success:  false,
		Message:  msg,
		Actor:    req.Actor,
		Action:   ParseActionType(req.Action),
		GameOver: s.over || s.IsOver(),
	}
	if w := s.Winner(); w != nil {
		res.Winner = w.Name
	}
	return res
}

// Snapshot returns the current state of the session.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Turn:          s.turn,
		TotalEntities: len(s.entities),
		AliveEntities: len(s.AliveEntities()),
		DeadEntities:  len(s.DeadEntities()),
		Entities:      make([]combat.Status, 0, len(s.entities)),
		GameOver:      s.IsOver(),
		HistoryLength: len(s.history),
	}
	for _, e := range s.entities {
		snap.Entities = append(snap.Entities, e.Status())
	}
	if w := s.Winner(); w != nil {
		snap.Winner = w.Name
	}
	return snap
}

// Ranking returns the roster ordered by current health, highest first.
// Entities with equal health keep their insertion order.
func (s *Session) Ranking() []*combat.Entity {
	ranked := slices.Clone(s.entities)
	slices.SortStableFunc(ranked, func(a, b *combat.Entity) int {
		return cmp.Compare(b.Health(), a.Health())
	})
	return ranked
}
