package engine_test

import (
	"github.com/plus3/gridfall/engine"
)

// scripted dispenses a fixed repeating sequence of kinds so tests control
// exactly which piece spawns.
type scripted struct {
	seq []engine.Kind
	i   int
}

func (s *scripted) Next() engine.Kind {
	k := s.seq[s.i%len(s.seq)]
	s.i++
	return k
}

func (s *scripted) Peek(dst []engine.Kind) []engine.Kind {
	for j := range dst {
		dst[j] = s.seq[(s.i+j)%len(s.seq)]
	}
	return dst
}

func (s *scripted) Reset(seed uint64) { s.i = 0 }

// fastRules keeps the timing constants tiny so tests drive few ticks.
func fastRules() engine.Rules {
	r := engine.DefaultRules()
	r.Gravity = []int{2}
	r.GravityFloor = 2
	r.LockDelay = 3
	r.MaxLockResets = 2
	r.ClearDelay = 2
	return r
}

func newSession(rules engine.Rules, kinds ...engine.Kind) *engine.Session {
	return engine.NewSession(rules, &scripted{seq: kinds}, nil)
}

func occupiedCount(f *engine.Field) int {
	n := 0
	for row := 0; row < engine.FieldRows; row++ {
		for col := 0; col < engine.FieldWidth; col++ {
			if f.Occupied(col, row) {
				n++
			}
		}
	}
	return n
}

// bottomRow is the lowest grid row index.
const bottomRow = engine.FieldRows - 1
