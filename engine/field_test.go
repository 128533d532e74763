package engine_test

import (
	"testing"

	"github.com/plus3/gridfall/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldOccupiedBounds(t *testing.T) {
	var f engine.Field

	assert.False(t, f.Occupied(0, 0))
	assert.False(t, f.Occupied(engine.FieldWidth-1, engine.FieldRows-1))

	// Out of bounds counts as occupied: walls and floor collide like cells.
	assert.True(t, f.Occupied(-1, 0))
	assert.True(t, f.Occupied(engine.FieldWidth, 0))
	assert.True(t, f.Occupied(0, -1))
	assert.True(t, f.Occupied(0, engine.FieldRows))
}

func TestFieldCommit(t *testing.T) {
	t.Run("writes all four cells with the kind tag", func(t *testing.T) {
		var f engine.Field
		cells := [4]engine.Cell{{Col: 0, Row: 23}, {Col: 1, Row: 23}, {Col: 0, Row: 22}, {Col: 1, Row: 22}}
		require.True(t, f.Commit(cells, engine.KindO))

		for _, c := range cells {
			k, ok := f.KindAt(c.Col, c.Row)
			require.True(t, ok)
			assert.Equal(t, engine.KindO, k)
		}
		assert.Equal(t, 4, occupiedCount(&f))
	})

	t.Run("conflict leaves the grid untouched", func(t *testing.T) {
		var f engine.Field
		f.Fill(1, 23, engine.KindT)

		cells := [4]engine.Cell{{Col: 0, Row: 23}, {Col: 1, Row: 23}, {Col: 2, Row: 23}, {Col: 3, Row: 23}}
		require.False(t, f.Commit(cells, engine.KindI))

		// No partial write.
		assert.Equal(t, 1, occupiedCount(&f))
		assert.False(t, f.Occupied(0, 23))
	})

	t.Run("out of bounds target rejects the commit", func(t *testing.T) {
		var f engine.Field
		cells := [4]engine.Cell{{Col: 8, Row: 23}, {Col: 9, Row: 23}, {Col: 10, Row: 23}, {Col: 9, Row: 22}}
		require.False(t, f.Commit(cells, engine.KindL))
		assert.Equal(t, 0, occupiedCount(&f))
	})
}

func fillRow(f *engine.Field, row int, except ...int) {
	skip := map[int]bool{}
	for _, col := range except {
		skip[col] = true
	}
	for col := 0; col < engine.FieldWidth; col++ {
		if !skip[col] {
			f.Fill(col, row, engine.KindJ)
		}
	}
}

func TestFieldFullRows(t *testing.T) {
	var f engine.Field
	fillRow(&f, 23)
	fillRow(&f, 21)
	fillRow(&f, 22, 4) // one hole, not full

	var buf [4]int
	assert.Equal(t, []int{21, 23}, f.FullRows(buf[:0]))
}

func TestFieldClearFullRows(t *testing.T) {
	t.Run("no full rows is a no-op", func(t *testing.T) {
		var f engine.Field
		fillRow(&f, 23, 0)
		assert.Equal(t, 0, f.ClearFullRows())
		assert.Equal(t, engine.FieldWidth-1, occupiedCount(&f))
	})

	t.Run("clears and shifts preserving row order", func(t *testing.T) {
		var f engine.Field
		// Bottom-up: full, partial A, full, partial B.
		fillRow(&f, 23)
		f.Fill(0, 22, engine.KindS) // A
		fillRow(&f, 21)
		f.Fill(9, 20, engine.KindZ) // B

		before := occupiedCount(&f)
		cleared := f.ClearFullRows()
		require.Equal(t, 2, cleared)

		// Occupancy drops by exactly cleared rows x width.
		assert.Equal(t, before-cleared*engine.FieldWidth, occupiedCount(&f))

		// Survivors shifted down by the number of cleared rows below them,
		// relative order preserved: A lands on the floor, B right above it.
		kA, ok := f.KindAt(0, 23)
		require.True(t, ok)
		assert.Equal(t, engine.KindS, kA)
		kB, ok := f.KindAt(9, 22)
		require.True(t, ok)
		assert.Equal(t, engine.KindZ, kB)
		assert.Equal(t, 2, occupiedCount(&f))

		// Nothing left full.
		var buf [4]int
		assert.Empty(t, f.FullRows(buf[:0]))
	})

	t.Run("four at once", func(t *testing.T) {
		var f engine.Field
		for row := 20; row <= 23; row++ {
			fillRow(&f, row)
		}
		assert.Equal(t, 4, f.ClearFullRows())
		assert.Equal(t, 0, occupiedCount(&f))
	})
}

func TestFieldReset(t *testing.T) {
	var f engine.Field
	fillRow(&f, 23)
	f.Reset()
	assert.Equal(t, 0, occupiedCount(&f))
}
