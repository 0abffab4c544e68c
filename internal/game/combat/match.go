package combat

import "fmt"

// NoWinner is reported as the winner name when a match ends without one.
const NoWinner = "none"

// TurnResult records what happened when one turn was resolved.
type TurnResult struct {
	// Success is false when the turn was refused; Message explains why.
	Success bool
	Message string
	// Turn is the match turn number this result was recorded as; 0 when refused.
	Turn        int
	Attacker    string
	Defender    string
	DamageDealt int
	// DefenderStatus is the defender's state after the turn.
	DefenderStatus Status
	DefenderDied   bool
	// MatchOver is true when this turn ended the match.
	MatchOver bool
	// Winner is the winner's name when MatchOver is set; empty on a draw.
	Winner string
}

// FinalResult summarises a simulated match.
type FinalResult struct {
	// Winner is the winning entity's name, or NoWinner.
	Winner string
	Turns  int
	Log    []TurnResult
	First  Status
	Second Status
	// CapReached is true when the turn cap stopped the simulation before a winner emerged.
	CapReached bool
}

// Match is a two-party encounter. It does not own its participants.
//
// Invariant: once a winner has been recorded no further turns are executed.
type Match struct {
	first  *Entity
	second *Entity
	turns  int
	log    []TurnResult
	winner *Entity
	// TurnCap bounds the number of turns SimulateToCompletion executes per call.
	TurnCap int
}

// NewMatch creates a match between a and b.
//
// Postcondition: Turns() == 0, Log() is empty, TurnCap == DefaultTurnCap.
func NewMatch(a, b *Entity) *Match {
	return &Match{first: a, second: b, TurnCap: DefaultTurnCap}
}

// Valid reports whether the match can be fought: two distinct, living participants.
func (m *Match) Valid() bool {
	return m.first != nil && m.second != nil &&
		m.first != m.second &&
		m.first.IsAlive() && m.second.IsAlive()
}

// Turns returns the number of turns executed.
func (m *Match) Turns() int { return m.turns }

// Log returns a copy of the turn log.
func (m *Match) Log() []TurnResult {
	cp := make([]TurnResult, len(m.log))
	copy(cp, m.log)
	return cp
}

// IsOver reports whether either participant is dead.
func (m *Match) IsOver() bool {
	return isDown(m.first) || isDown(m.second)
}

func isDown(e *Entity) bool { return e == nil || e.IsDead() }

// Winner returns the surviving participant once the match is over.
//
// Postcondition: Returns nil while the match is running or when both participants are dead.
func (m *Match) Winner() *Entity {
	if m.winner != nil {
		return m.winner
	}
	if !m.IsOver() {
		return nil
	}
	switch {
	case !isDown(m.first):
		return m.first
	case !isDown(m.second):
		return m.second
	default:
		return nil
	}
}

func (m *Match) participant(e *Entity) bool {
	return e != nil && (e == m.first || e == m.second)
}

// ExecuteTurn has attacker attack defender once.
//
// Precondition: attacker and defender are the two distinct participants.
// Postcondition: A refused turn returns Success == false and changes nothing;
// otherwise the turn counter is incremented and the result is appended to the log.
func (m *Match) ExecuteTurn(attacker, defender *Entity) TurnResult {
	if m.winner != nil || m.IsOver() {
		return TurnResult{Success: false, Message: "match is already over"}
	}
	if !m.participant(attacker) || !m.participant(defender) {
		return TurnResult{Success: false, Message: "attacker and defender must both be match participants"}
	}
	if attacker == defender {
		return TurnResult{Success: false, Message: fmt.Sprintf("%s cannot attack itself", attacker.Name)}
	}

	before := defender.Health()
	attacker.Attack(defender)
	m.turns++

	r := TurnResult{
		Success:        true,
		Message:        fmt.Sprintf("%s attacks %s.", attacker.Name, defender.Name),
		Turn:           m.turns,
		Attacker:       attacker.Name,
		Defender:       defender.Name,
		DamageDealt:    before - defender.Health(),
		DefenderStatus: defender.Status(),
		DefenderDied:   before > 0 && defender.IsDead(),
	}
	if m.IsOver() {
		m.winner = m.Winner()
		r.MatchOver = true
		if m.winner != nil {
			r.Winner = m.winner.Name
		}
	}
	m.log = append(m.log, r)
	return r
}

// SimulateToCompletion alternates attacker and defender, starting with first
// attacking second, until the match is over or TurnCap turns have run.
//
// Precondition: first and second are the two participants.
// Postcondition: Returns the final result; at most TurnCap turns were executed by this call.
func (m *Match) SimulateToCompletion(first, second *Entity) FinalResult {
	limit := m.TurnCap
	if limit <= 0 {
		limit = DefaultTurnCap
	}
	attacker, defender := first, second
	executed := 0
	for !m.IsOver() && executed < limit {
		if r := m.ExecuteTurn(attacker, defender); !r.Success {
			break
		}
		executed++
		attacker, defender = defender, attacker
	}

	res := FinalResult{
		Winner:     NoWinner,
		Turns:      m.turns,
		Log:        m.Log(),
		CapReached: !m.IsOver() && executed >= limit,
	}
	if w := m.Winner(); w != nil {
		res.Winner = w.Name
	}
	if m.first != nil {
		res.First = m.first.Status()
	}
	if m.second != nil {
		res.Second = m.second.Status()
	}
	return res
}
