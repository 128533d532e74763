package engine_test

import (
	"testing"

	"github.com/plus3/gridfall/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectStackAndActive(t *testing.T) {
	s := newSession(fastRules(), engine.KindO, engine.KindT)
	s.Field().Fill(0, bottomRow, engine.KindJ)
	s.Tick()

	// Walk the O down into the visible area so the projection can see it.
	for i := 0; i < 6; i++ {
		s.Apply(engine.InputSoftDrop)
	}

	var vm engine.ViewModel
	engine.Project(s, &vm)

	assert.Equal(t, engine.PhaseFalling, vm.Phase)
	assert.Len(t, vm.Cells, 1+4, "one stack cell plus the active piece")

	// The stack cell is reported in visible coordinates with its kind color.
	assert.Contains(t, vm.Cells, engine.ViewCell{
		Col:   0,
		Row:   engine.FieldVisible - 1,
		Color: engine.KindJ.Color(),
	})

	// Ghost cells sit at the hard-drop landing rows, same columns.
	require.Len(t, vm.Ghost, 4)
	for _, g := range vm.Ghost {
		assert.Contains(t, []int{engine.FieldVisible - 1, engine.FieldVisible - 2}, g.Row)
	}

	assert.Equal(t, s.Score(), vm.Score)
	assert.Equal(t, s.Level(), vm.Level)
	assert.False(t, vm.GameOver)
}

func TestProjectHidesBufferRows(t *testing.T) {
	s := newSession(fastRules(), engine.KindT)
	s.Tick() // piece is entirely inside the hidden buffer

	var vm engine.ViewModel
	engine.Project(s, &vm)

	assert.Empty(t, vm.Cells, "cells in the hidden buffer are not projected")
	for _, g := range vm.Ghost {
		assert.GreaterOrEqual(t, g.Row, 0)
		assert.Less(t, g.Row, engine.FieldVisible)
	}
}

func TestProjectPreviewAndHold(t *testing.T) {
	s := newSession(fastRules(), engine.KindT, engine.KindI, engine.KindO, engine.KindS, engine.KindZ)
	s.Tick()
	s.Apply(engine.InputHold)

	var vm engine.ViewModel
	engine.Project(s, &vm)

	require.True(t, vm.HasHeld)
	assert.Equal(t, engine.KindT, vm.Held)
	assert.Equal(t, []engine.Kind{engine.KindO, engine.KindS, engine.KindZ}, vm.Next)
}

func TestProjectClearingRows(t *testing.T) {
	s := newSession(fastRules(), engine.KindI, engine.KindT)
	fillRow(s.Field(), bottomRow, 0)
	s.Tick()
	s.Apply(engine.InputRotateCW)
	for i := 0; i < 5; i++ {
		s.Apply(engine.InputMoveLeft)
	}
	s.Apply(engine.InputHardDrop)
	require.Equal(t, engine.PhaseLineClearPending, s.Phase())

	var vm engine.ViewModel
	engine.Project(s, &vm)
	assert.Equal(t, []int{engine.FieldVisible - 1}, vm.Clearing)
}

func TestProjectDoesNotMutateSession(t *testing.T) {
	s := newSession(fastRules(), engine.KindT)
	s.Tick()

	before, _ := s.Active()
	score, lines, ticks := s.Score(), s.Lines(), s.Ticks()

	var vm engine.ViewModel
	for i := 0; i < 5; i++ {
		engine.Project(s, &vm)
	}

	after, _ := s.Active()
	assert.Equal(t, before, after)
	assert.Equal(t, score, s.Score())
	assert.Equal(t, lines, s.Lines())
	assert.Equal(t, ticks, s.Ticks())
}

func TestProjectReusesSlices(t *testing.T) {
	s := newSession(fastRules(), engine.KindO, engine.KindT)
	s.Tick()

	var vm engine.ViewModel
	engine.Project(s, &vm)
	c1 := cap(vm.Cells)
	engine.Project(s, &vm)
	assert.Equal(t, c1, cap(vm.Cells), "steady-state projection must not regrow")
}
