package engine

// Kind identifies one of the seven tetromino shapes.
type Kind uint8

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL

	kindCount = 7
)

func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	}
	return "?"
}

// RGB is the color tag carried by a kind. The display collaborator decides
// how (and whether) to map it onto actual pixels.
type RGB struct {
	R, G, B uint8
}

// Rot is one of the four discrete rotation states of a piece.
type Rot uint8

const (
	RotSpawn Rot = iota
	RotRight
	RotHalf
	RotLeft

	rotCount = 4
)

// CW returns the state one quarter turn clockwise.
func (r Rot) CW() Rot { return (r + 1) % rotCount }

// CCW returns the state one quarter turn counterclockwise.
func (r Rot) CCW() Rot { return (r + rotCount - 1) % rotCount }

// Cell is a grid position. Col grows rightward, Row grows downward.
type Cell struct {
	Col, Row int
}

type shapeData struct {
	box      int
	spawnCol int
	color    RGB
	cells    [rotCount][4]Cell
}

// spawnRow places every piece fully inside the hidden buffer, one gravity
// step above the visible area.
const spawnRow = 2

var shapes [kindCount]shapeData

func init() {
	type def struct {
		kind     Kind
		box      int
		spawnCol int
		color    RGB
		mask     [4]Cell
	}
	defs := []def{
		{KindI, 4, 3, RGB{0, 255, 255}, [4]Cell{{0, 1}, {1, 1}, {2, 1}, {3, 1}}},
		{KindO, 2, 4, RGB{255, 255, 0}, [4]Cell{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
		{KindT, 3, 3, RGB{255, 0, 255}, [4]Cell{{1, 0}, {0, 1}, {1, 1}, {2, 1}}},
		{KindS, 3, 3, RGB{0, 255, 0}, [4]Cell{{1, 0}, {2, 0}, {0, 1}, {1, 1}}},
		{KindZ, 3, 3, RGB{255, 0, 0}, [4]Cell{{0, 0}, {1, 0}, {1, 1}, {2, 1}}},
		{KindJ, 3, 3, RGB{0, 0, 255}, [4]Cell{{0, 0}, {0, 1}, {1, 1}, {2, 1}}},
		{KindL, 3, 3, RGB{255, 127, 0}, [4]Cell{{2, 0}, {0, 1}, {1, 1}, {2, 1}}},
	}

	for _, d := range defs {
		s := shapeData{box: d.box, spawnCol: d.spawnCol, color: d.color}
		cells := d.mask
		for r := range rotCount {
			s.cells[r] = cells
			cells = rotateMask(cells, d.box)
		}
		shapes[d.kind] = s
	}
}

// rotateMask turns a mask one quarter turn clockwise inside its bounding box.
func rotateMask(mask [4]Cell, box int) [4]Cell {
	var out [4]Cell
	for i, c := range mask {
		out[i] = Cell{Col: box - 1 - c.Row, Row: c.Col}
	}
	return out
}

// Color returns the RGB tag of the kind.
func (k Kind) Color() RGB { return shapes[k].color }

// Box returns the side length of the kind's rotation bounding box.
func (k Kind) Box() int { return shapes[k].box }

// Cells returns the four cell offsets occupied in the given rotation state,
// relative to the bounding box origin.
func (k Kind) Cells(r Rot) [4]Cell { return shapes[k].cells[r] }

// Active is the falling piece: its kind, rotation state and the grid position
// of its bounding box origin.
type Active struct {
	Kind     Kind
	Rot      Rot
	Col, Row int
}

func spawnPiece(k Kind) Active {
	return Active{Kind: k, Rot: RotSpawn, Col: shapes[k].spawnCol, Row: spawnRow}
}

// Cells returns the four absolute grid cells the piece occupies.
func (a Active) Cells() [4]Cell {
	cells := a.Kind.Cells(a.Rot)
	for i := range cells {
		cells[i].Col += a.Col
		cells[i].Row += a.Row
	}
	return cells
}

func (a Active) shifted(dCol, dRow int) Active {
	a.Col += dCol
	a.Row += dRow
	return a
}
