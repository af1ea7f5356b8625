package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindevis/stitch-cafe/models"
)

// alwaysSource makes every Float64 roll succeed (returns values close to 0)
type alwaysSource struct{}

func (alwaysSource) Int63() int64 { return 0 }
func (alwaysSource) Seed(int64)   {}

// neverSource makes every Float64 roll fail: a constant 1<<62 maps to
// Float64() == 0.5, above every event probability. The maximum int63 would
// map to exactly 1.0, which Float64 resamples forever.
type neverSource struct{}

func (neverSource) Int63() int64 { return 1 << 62 }
func (neverSource) Seed(int64)   {}

func TestRollSpecialOutsideWindow(t *testing.T) {
	gen := NewGeneratorWithSource(alwaysSource{})

	// Before any window opens
	assert.Nil(t, gen.RollSpecial(1, models.SpecialFlags{}))
	assert.Nil(t, gen.RollSpecial(2, models.SpecialFlags{}))

	// After every window closed
	assert.Nil(t, gen.RollSpecial(41, models.SpecialFlags{}))
}

func TestRollSpecialOrderOfChecks(t *testing.T) {
	gen := NewGeneratorWithSource(alwaysSource{})

	// At order 3 only dirty_plate and student are in window; dirty_plate is
	// checked first
	event := gen.RollSpecial(3, models.SpecialFlags{})
	require.NotNil(t, event)
	assert.Equal(t, models.TagDirtyPlate, event.Tag)
	assert.Equal(t, EventDoublePrevious, event.Kind)

	// With dirty_plate done, student is next
	event = gen.RollSpecial(3, models.SpecialFlags{DirtyPlate: true})
	require.NotNil(t, event)
	assert.Equal(t, models.TagStudent, event.Tag)
	assert.Equal(t, studentDish, event.Dish)

	// At order 20 with early events done, critic comes before second chef
	event = gen.RollSpecial(20, models.SpecialFlags{DirtyPlate: true, Student: true})
	require.NotNil(t, event)
	assert.Equal(t, models.TagCritic, event.Tag)
	assert.Equal(t, criticDish, event.Dish)

	event = gen.RollSpecial(20, models.SpecialFlags{DirtyPlate: true, Student: true, Critic: true})
	require.NotNil(t, event)
	assert.Equal(t, models.TagSecondChef, event.Tag)
	assert.Equal(t, EventHalfNewOrder, event.Kind)
}

func TestRollSpecialAllDone(t *testing.T) {
	gen := NewGeneratorWithSource(alwaysSource{})

	flags := models.SpecialFlags{Student: true, DirtyPlate: true, Critic: true, SecondChef: true}
	assert.Nil(t, gen.RollSpecial(25, flags))
}

func TestRollSpecialProbabilityFails(t *testing.T) {
	gen := NewGeneratorWithSource(neverSource{})
	assert.Nil(t, gen.RollSpecial(25, models.SpecialFlags{}))
}

// Float64 resamples a draw that maps to exactly 1.0, so the constant sources
// must stay strictly inside the half-open range
func TestConstantSourcesStayBelowOne(t *testing.T) {
	assert.Less(t, rand.New(neverSource{}).Float64(), 1.0)
	assert.GreaterOrEqual(t, rand.New(neverSource{}).Float64(), 0.5)
	assert.Less(t, rand.New(alwaysSource{}).Float64(), 0.1)
}

// Over many seeded rolls the trigger rate should sit near the configured
// probability, not at 0 or 1
func TestRollSpecialProbabilityIsApplied(t *testing.T) {
	gen := NewGeneratorWithSource(rand.NewSource(5))
	flags := models.SpecialFlags{Student: true, Critic: true, SecondChef: true}

	triggered := 0
	const rolls = 10000
	for i := 0; i < rolls; i++ {
		if gen.RollSpecial(10, flags) != nil {
			triggered++
		}
	}

	rate := float64(triggered) / rolls
	assert.InDelta(t, 0.15, rate, 0.02, "dirty plate trigger rate %f", rate)
}
