package session

import "strings"

// ActionType identifies what an entity does on its turn.
// The zero value (ActionUnknown) is intentionally invalid.
type ActionType int

const (
	ActionUnknown ActionType = iota // zero value; intentionally invalid
	ActionAttack
	ActionDefend
	ActionHeal
)

// String returns the tag used to request the action.
// Postcondition: returns "attack", "defend", "heal", or "unknown".
func (a ActionType) String() string {
	switch a {
	case ActionAttack:
		return "attack"
	case ActionDefend:
		return "defend"
	case ActionHeal:
		return "heal"
	default:
		return "unknown"
	}
}

// MarshalYAML encodes the action as its tag.
func (a ActionType) MarshalYAML() (any, error) {
	return a.String(), nil
}

// ParseActionType maps a request tag to an ActionType. Matching ignores case
// and surrounding whitespace.
// Postcondition: returns ActionUnknown for unrecognised tags.
func ParseActionType(tag string) ActionType {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "attack":
		return ActionAttack
	case "defend":
		return ActionDefend
	case "heal":
		return ActionHeal
	default:
		return ActionUnknown
	}
}

// ActionRequest asks the session to perform one action on behalf of an entity.
type ActionRequest struct {
	// Actor is the name of the acting entity.
	Actor string
	// Action is the raw action tag: "attack", "defend" or "heal".
	Action string
	// Target names the entity to attack; ignored by other actions.
	Target string
	// Amount overrides the default heal amount; nil uses the session rules.
	Amount *int
}

// AttackOutcome details a successful attack.
type AttackOutcome struct {
	Target       string `yaml:"target"`
	DamageDealt  int    `yaml:"damage_dealt"`
	TargetHealth int    `yaml:"target_health"`
	TargetDied   bool   `yaml:"target_died"`
}

// HealOutcome details a successful heal.
type HealOutcome struct {
	Restored        int  `yaml:"restored"`
	CurrentHealth   int  `yaml:"current_health"`
	WasAtFullHealth bool `yaml:"was_at_full_health"`
}

// ActionResult reports the outcome of Dispatch. Exactly one of Attack and Heal
// is set for successful attack and heal actions; both are nil otherwise.
type ActionResult struct {
	Success bool       `yaml:"success"`
	Message string     `yaml:"message"`
	Turn    int        `yaml:"turn"`
	Actor   string     `yaml:"actor,omitempty"`
	Action  ActionType `yaml:"action"`

	Attack *AttackOutcome `yaml:"attack,omitempty"`
	Heal   *HealOutcome   `yaml:"heal,omitempty"`

	// GameOver is set when the session is over after (or before) this action.
	GameOver bool `yaml:"game_over"`
	// Winner is the winner's name once the session is over; empty when nobody survived.
	Winner string `yaml:"winner,omitempty"`
}

// HistoryKind distinguishes history entries.
type HistoryKind string

const (
	HistoryEntityAdded HistoryKind = "entity_added"
	HistoryAction      HistoryKind = "action"
)

// HistoryEntry is one audit record in a session's history.
type HistoryEntry struct {
	Turn   int         `yaml:"turn"`
	Kind   HistoryKind `yaml:"kind"`
	Actor  string      `yaml:"actor"`
	Detail string      `yaml:"detail"`
	// Result is set for HistoryAction entries.
	Result *ActionResult `yaml:"result,omitempty"`
}
