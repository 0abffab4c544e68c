// Package combat implements the entity model and two-party match resolution
// for the duel simulator.
package combat

import "errors"

// ErrInvalidArgument is returned when a caller passes a value that violates a
// precondition: a blank name, a negative damage or heal amount, or a health
// value outside [0, MaxHealth].
var ErrInvalidArgument = errors.New("invalid argument")

const (
	// AttackDamage is the fixed damage dealt by a single attack.
	AttackDamage = 1
	// DefaultMaxHealth is the maximum health of an entity when none is configured.
	DefaultMaxHealth = 10
	// DefaultHealAmount is restored by a heal that names no amount.
	DefaultHealAmount = 2
	// DefaultTurnCap bounds SimulateToCompletion.
	DefaultTurnCap = 100
)

// Rules holds the tunable combat constants.
type Rules struct {
	MaxHealth  int
	HealAmount int
	TurnCap    int
}

// DefaultRules returns the canonical rule set.
//
// Postcondition: MaxHealth == 10, HealAmount == 2, TurnCap == 100.
func DefaultRules() Rules {
	return Rules{
		MaxHealth:  DefaultMaxHealth,
		HealAmount: DefaultHealAmount,
		TurnCap:    DefaultTurnCap,
	}
}
