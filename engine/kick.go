package engine

// Wall-kick tables from the Super Rotation System. For every quarter turn the
// candidates are tried in order; the first collision-free placement wins and
// the first candidate is always the unkicked position. Offsets are stored with
// Row positive downward, so the published tables appear here with their
// vertical component flipped.
//
// The I piece has its own table, the O piece never needs to kick, and the
// remaining five share one table. There are no 180-degree entries: the engine
// only rotates in quarter turns.

type kickSet [rotCount][2][5]Cell

const (
	kickCW  = 0
	kickCCW = 1
)

// Indexed by the state rotated from.
var jlstzKicks = kickSet{
	RotSpawn: {
		kickCW:  {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},  // 0->R
		kickCCW: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},     // 0->L
	},
	RotRight: {
		kickCW:  {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},    // R->2
		kickCCW: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},    // R->0
	},
	RotHalf: {
		kickCW:  {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},     // 2->L
		kickCCW: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},  // 2->R
	},
	RotLeft: {
		kickCW:  {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}}, // L->0
		kickCCW: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}}, // L->2
	},
}

var iKicks = kickSet{
	RotSpawn: {
		kickCW:  {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},   // 0->R
		kickCCW: {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},   // 0->L
	},
	RotRight: {
		kickCW:  {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},   // R->2
		kickCCW: {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},   // R->0
	},
	RotHalf: {
		kickCW:  {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},   // 2->L
		kickCCW: {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},   // 2->R
	},
	RotLeft: {
		kickCW:  {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},   // L->0
		kickCCW: {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},   // L->2
	},
}

var oKicks = [1]Cell{{0, 0}}

// kicks returns the ordered kick candidates for rotating the kind out of the
// given state, clockwise or counterclockwise.
func kicks(k Kind, from Rot, cw bool) []Cell {
	dir := kickCCW
	if cw {
		dir = kickCW
	}
	switch k {
	case KindO:
		return oKicks[:]
	case KindI:
		return iKicks[from][dir][:]
	default:
		return jlstzKicks[from][dir][:]
	}
}
