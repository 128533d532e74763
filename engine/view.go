package engine

// ViewCell is one display cell in visible-field coordinates: row 0 is the top
// visible row, the hidden buffer is never projected.
type ViewCell struct {
	Col, Row int
	Color    RGB
}

// ViewModel is the read-only snapshot handed to the display collaborator once
// per tick. Slices are reused across projections so a steady-state frame
// allocates nothing; consumers must not retain them past the tick.
type ViewModel struct {
	Tick  uint64
	Phase Phase

	// Cells holds the settled stack plus the active piece.
	Cells []ViewCell
	// Ghost holds the hard-drop projection of the active piece.
	Ghost []ViewCell
	// Clearing lists visible rows flagged for removal this tick.
	Clearing []int

	Next    []Kind
	Held    Kind
	HasHeld bool

	Score, Level, Lines int
	GameOver            bool

	previewBuf [bagPreview]Kind
}

// Project fills vm from the session. It never mutates the session and runs
// after the state update, before the handoff to the display collaborator.
func Project(s *Session, vm *ViewModel) {
	vm.Tick = s.Ticks()
	vm.Phase = s.Phase()
	vm.Cells = vm.Cells[:0]
	vm.Ghost = vm.Ghost[:0]
	vm.Clearing = vm.Clearing[:0]

	f := s.Field()
	for row := FieldBufferRows; row < FieldRows; row++ {
		for col := range FieldWidth {
			if k, ok := f.KindAt(col, row); ok {
				vm.Cells = append(vm.Cells, ViewCell{
					Col:   col,
					Row:   row - FieldBufferRows,
					Color: k.Color(),
				})
			}
		}
	}

	if a, ok := s.Active(); ok {
		ghostRow := s.GhostRow()
		ghost := a
		ghost.Row = ghostRow
		if ghostRow != a.Row {
			for _, c := range ghost.Cells() {
				if c.Row >= FieldBufferRows {
					vm.Ghost = append(vm.Ghost, ViewCell{
						Col:   c.Col,
						Row:   c.Row - FieldBufferRows,
						Color: a.Kind.Color(),
					})
				}
			}
		}
		for _, c := range a.Cells() {
			if c.Row >= FieldBufferRows {
				vm.Cells = append(vm.Cells, ViewCell{
					Col:   c.Col,
					Row:   c.Row - FieldBufferRows,
					Color: a.Kind.Color(),
				})
			}
		}
	}

	for _, row := range s.ClearingRows() {
		if row >= FieldBufferRows {
			vm.Clearing = append(vm.Clearing, row-FieldBufferRows)
		}
	}

	vm.Next = s.Preview(vm.previewBuf[:])
	vm.Held, vm.HasHeld = s.Held()
	vm.Score = s.Score()
	vm.Level = s.Level()
	vm.Lines = s.Lines()
	vm.GameOver = s.Phase() == PhaseGameOver
}
