package engine

// Playfield dimensions. The buffer rows sit above the visible area so pieces
// can spawn and rotate near the top; row 0 is the topmost buffer row.
const (
	FieldWidth      = 10
	FieldVisible    = 20
	FieldBufferRows = 4
	FieldRows       = FieldVisible + FieldBufferRows
)

type fieldCell struct {
	occupied bool
	kind     Kind
}

// Field is the grid of settled cells. Cells carry only a kind tag; once a
// piece locks, the grid keeps no reference to the piece that produced it.
// Fixed size, no allocation in any operation.
type Field struct {
	cells [FieldRows][FieldWidth]fieldCell
}

// Occupied reports whether the cell is filled. Out-of-bounds positions count
// as occupied, which makes the walls and floor collide like settled cells.
func (f *Field) Occupied(col, row int) bool {
	if col < 0 || col >= FieldWidth || row < 0 || row >= FieldRows {
		return true
	}
	return f.cells[row][col].occupied
}

// KindAt returns the kind tag of an occupied in-bounds cell.
func (f *Field) KindAt(col, row int) (Kind, bool) {
	if col < 0 || col >= FieldWidth || row < 0 || row >= FieldRows {
		return 0, false
	}
	c := f.cells[row][col]
	return c.kind, c.occupied
}

// Commit writes four locked cells with the given kind tag. If any target is
// out of bounds or already occupied nothing is written and Commit reports
// false; the state machine treats that as an invariant violation.
func (f *Field) Commit(cells [4]Cell, k Kind) bool {
	for _, c := range cells {
		if f.Occupied(c.Col, c.Row) {
			return false
		}
	}
	for _, c := range cells {
		f.cells[c.Row][c.Col] = fieldCell{occupied: true, kind: k}
	}
	return true
}

// Fill occupies a single in-bounds cell. Intended for board setup in tests
// and scenario tooling; gameplay mutations go through Commit.
func (f *Field) Fill(col, row int, k Kind) {
	if col < 0 || col >= FieldWidth || row < 0 || row >= FieldRows {
		return
	}
	f.cells[row][col] = fieldCell{occupied: true, kind: k}
}

// FullRows appends the indices of fully occupied rows to dst, top to bottom.
func (f *Field) FullRows(dst []int) []int {
	for row := range FieldRows {
		full := true
		for col := range FieldWidth {
			if !f.cells[row][col].occupied {
				full = false
				break
			}
		}
		if full {
			dst = append(dst, row)
		}
	}
	return dst
}

// ClearFullRows removes every fully occupied row, shifts the rows above down
// to fill the gaps and returns how many rows were cleared. The relative order
// of surviving rows is preserved.
func (f *Field) ClearFullRows() int {
	cleared := 0
	dst := FieldRows - 1
	for src := FieldRows - 1; src >= 0; src-- {
		full := true
		for col := range FieldWidth {
			if !f.cells[src][col].occupied {
				full = false
				break
			}
		}
		if full {
			cleared++
			continue
		}
		if dst != src {
			f.cells[dst] = f.cells[src]
		}
		dst--
	}
	for ; dst >= 0; dst-- {
		f.cells[dst] = [FieldWidth]fieldCell{}
	}
	return cleared
}

// Reset empties the grid.
func (f *Field) Reset() {
	f.cells = [FieldRows][FieldWidth]fieldCell{}
}

func (f *Field) fits(cells [4]Cell) bool {
	for _, c := range cells {
		if f.Occupied(c.Col, c.Row) {
			return false
		}
	}
	return true
}
