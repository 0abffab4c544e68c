package combat

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Entity is a named combatant with health.
//
// Invariant: 0 <= Health() <= MaxHealth.
type Entity struct {
	// ID uniquely identifies this entity across sessions.
	ID string
	// Name is the display name; unique within a session.
	Name string
	// MaxHealth is fixed at creation.
	MaxHealth int

	health    int
	defending bool
}

// Status is a point-in-time snapshot of an entity.
type Status struct {
	Name          string  `yaml:"name"`
	Health        int     `yaml:"health"`
	MaxHealth     int     `yaml:"max_health"`
	Alive         bool    `yaml:"alive"`
	Defending     bool    `yaml:"defending"`
	HealthPercent float64 `yaml:"health_percent"`
}

// NewEntity creates an entity at full default health.
//
// Precondition: name must contain a non-whitespace character.
// Postcondition: Returns an entity with Health() == MaxHealth == DefaultMaxHealth,
// or an error wrapping ErrInvalidArgument.
func NewEntity(name string) (*Entity, error) {
	return NewEntityWithHealth(name, DefaultMaxHealth, DefaultMaxHealth)
}

// NewEntityWithHealth creates an entity with a custom maximum and starting health.
//
// Precondition: name must contain a non-whitespace character; maxHealth >= 1;
// 0 <= health <= maxHealth.
// Postcondition: Returns the entity or an error wrapping ErrInvalidArgument.
func NewEntityWithHealth(name string, maxHealth, health int) (*Entity, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name must be a non-empty string", ErrInvalidArgument)
	}
	if maxHealth < 1 {
		return nil, fmt.Errorf("%w: max health must be >= 1, got %d", ErrInvalidArgument, maxHealth)
	}
	if health < 0 || health > maxHealth {
		return nil, fmt.Errorf("%w: starting health must be in [0, %d], got %d", ErrInvalidArgument, maxHealth, health)
	}
	return &Entity{
		ID:        uuid.NewString(),
		Name:      name,
		MaxHealth: maxHealth,
		health:    health,
	}, nil
}

// Health returns the current health.
func (e *Entity) Health() int { return e.health }

// IsDefending reports whether the entity will halve the next damage it takes.
func (e *Entity) IsDefending() bool { return e.defending }

// IsAlive reports whether health is positive.
func (e *Entity) IsAlive() bool { return e.health > 0 }

// IsDead reports whether health is zero.
func (e *Entity) IsDead() bool { return e.health <= 0 }

// SetHealth overwrites the current health.
//
// Precondition: 0 <= h <= MaxHealth.
// Postcondition: Health() == h, or an error wrapping ErrInvalidArgument and no change.
func (e *Entity) SetHealth(h int) error {
	if h < 0 || h > e.MaxHealth {
		return fmt.Errorf("%w: health must be in [0, %d], got %d", ErrInvalidArgument, e.MaxHealth, h)
	}
	e.health = h
	return nil
}

// TakeDamage reduces health by amount, floored at zero. A defending entity
// takes max(1, amount/2) instead and stops defending. Dead entities are unaffected.
//
// Precondition: amount >= 0.
// Postcondition: Health() >= 0; IsDefending() is false if the entity was alive.
func (e *Entity) TakeDamage(amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: damage must not be negative, got %d", ErrInvalidArgument, amount)
	}
	if e.IsDead() {
		return nil
	}
	actual := amount
	if e.defending {
		actual = max(1, amount/2)
	}
	e.health = max(0, e.health-actual)
	e.defending = false
	return nil
}

// Attack deals AttackDamage to target.
//
// Postcondition: Returns false with no side effects if e is dead, target is nil,
// or target is dead. Otherwise damages target, clears e's defending stance and
// returns true.
func (e *Entity) Attack(target *Entity) bool {
	if e.IsDead() || target == nil || target.IsDead() {
		return false
	}
	// AttackDamage is a non-negative constant.
	_ = target.TakeDamage(AttackDamage)
	e.defending = false
	return true
}

// Heal restores up to amount health, capped at MaxHealth.
//
// Precondition: amount >= 0.
// Postcondition: Returns the health actually restored (0 when dead), or an
// error wrapping ErrInvalidArgument.
func (e *Entity) Heal(amount int) (int, error) {
	if amount < 0 {
		return 0, fmt.Errorf("%w: heal amount must not be negative, got %d", ErrInvalidArgument, amount)
	}
	if e.IsDead() {
		return 0, nil
	}
	before := e.health
	e.health = min(e.MaxHealth, e.health+amount)
	return e.health - before, nil
}

// Defend raises a one-shot stance halving the next incoming damage. No-op when dead.
func (e *Entity) Defend() {
	if e.IsAlive() {
		e.defending = true
	}
}

// Status returns a snapshot of the entity.
func (e *Entity) Status() Status {
	return Status{
		Name:          e.Name,
		Health:        e.health,
		MaxHealth:     e.MaxHealth,
		Alive:         e.IsAlive(),
		Defending:     e.defending,
		HealthPercent: float64(e.health) / float64(e.MaxHealth) * 100,
	}
}

// String returns a one-line summary such as "Hero: 10/10 HP - alive (defending)".
func (e *Entity) String() string {
	state := "alive"
	if e.IsDead() {
		state = "dead"
	}
	s := fmt.Sprintf("%s: %d/%d HP - %s", e.Name, e.health, e.MaxHealth, state)
	if e.defending {
		s += " (defending)"
	}
	return s
}
