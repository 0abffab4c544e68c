package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/duel/internal/game/dice"
)

type fixedSource struct{ v int }

func (f fixedSource) Intn(n int) int { return f.v % n }

// TestCryptoSource_Intn_InRange verifies every value returned by Intn(6) is in [0, 6).
func TestCryptoSource_Intn_InRange(t *testing.T) {
	src := dice.NewCryptoSource()
	for i := 0; i < 1000; i++ {
		v := src.Intn(6)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 6)
	}
}

func TestCryptoSource_Intn_PanicsOnZero(t *testing.T) {
	src := dice.NewCryptoSource()
	assert.Panics(t, func() { src.Intn(0) })
}

func TestPick_SingleSkipsSource(t *testing.T) {
	// A nil source would panic if Pick consulted it.
	assert.Equal(t, 0, dice.Pick(nil, 1))
}

func TestPick_UsesSource(t *testing.T) {
	assert.Equal(t, 2, dice.Pick(fixedSource{v: 5}, 3))
}

func TestPick_Property_InRange(t *testing.T) {
	src := dice.NewCryptoSource()
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 100).Draw(rt, "n")
		v := dice.Pick(src, n)
		assert.GreaterOrEqual(rt, v, 0)
		assert.Less(rt, v, n)
	})
}
