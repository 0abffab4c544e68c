package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/duel/internal/game/combat"
	"github.com/cory-johannsen/duel/internal/game/dice"
)

// firstSource always picks index 0.
type firstSource struct{}

func (firstSource) Intn(int) int { return 0 }

func TestAutoplay_TwoEntities(t *testing.T) {
	s := newSession(t, "Alice", "Bob")
	results, err := s.Autoplay(firstSource{}, 100)
	require.NoError(t, err)

	// Alice acts first each round and lands the tenth blow on action 19.
	require.Len(t, results, 19)
	assert.True(t, s.IsOver())
	assert.Equal(t, "Alice", s.Winner().Name)
	last := results[len(results)-1]
	assert.True(t, last.GameOver)
	assert.Equal(t, "Alice", last.Winner)
	for _, r := range results {
		assert.True(t, r.Success)
		assert.Equal(t, ActionAttack, r.Action)
	}
}

func TestAutoplay_RespectsMaxTurns(t *testing.T) {
	s := newSession(t, "Alice", "Bob", "Carol")
	results, err := s.Autoplay(firstSource{}, 5)
	require.NoError(t, err)
	assert.Len(t, results, 5)
	assert.Equal(t, 5, s.Turn())
	assert.False(t, s.IsOver())
}

func TestAutoplay_ZeroTurns(t *testing.T) {
	s := newSession(t, "Alice", "Bob")
	results, err := s.Autoplay(firstSource{}, 0)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Equal(t, 0, s.Turn())
}

func TestAutoplay_Property_FreeForAllEndsWithOneSurvivor(t *testing.T) {
	src := dice.NewCryptoSource()
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(2, 6).Draw(rt, "entities")
		s := New(combat.DefaultRules(), zap.NewNop())
		for i := 0; i < n; i++ {
			_, err := s.AddEntity(string(rune('A' + i)))
			require.NoError(rt, err)
		}

		// Each action removes one health point from the pool, so n*10 actions
		// always suffice.
		results, err := s.Autoplay(src, n*10)
		require.NoError(rt, err)
		assert.True(rt, s.IsOver())
		assert.Len(rt, s.AliveEntities(), 1)
		assert.LessOrEqual(rt, len(results), n*10)
	})
}
