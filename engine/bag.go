package engine

import "math/rand/v2"

// PieceSource dispenses the sequence of piece kinds. It never blocks and
// never fails; Reset restarts the sequence from a seed.
type PieceSource interface {
	// Next dispenses the next kind.
	Next() Kind
	// Peek fills dst with upcoming kinds without consuming them and returns
	// the filled prefix.
	Peek(dst []Kind) []Kind
	// Reset restarts the source from the given seed.
	Reset(seed uint64)
}

// bagPreview is how far ahead a Bag can be peeked. Keeping a full second fill
// queued means previews never have to shuffle on demand.
const bagPreview = 7

// Bag is the 7-bag randomizer: kinds are drawn from a shuffled batch holding
// each of the seven kinds exactly once, and a fresh batch is shuffled in
// whenever the current one runs out. The generator is owned by the bag, so
// two bags built from the same seed dispense identical sequences.
type Bag struct {
	rng   *rand.Rand
	queue [2 * bagPreview]Kind
	n     int
}

// NewBag returns a bag seeded once for the session.
func NewBag(seed uint64) *Bag {
	b := &Bag{}
	b.Reset(seed)
	return b
}

// Reset discards any queued kinds and restarts the sequence from seed.
func (b *Bag) Reset(seed uint64) {
	b.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	b.n = 0
	b.topUp()
}

// Next dispenses the next kind.
func (b *Bag) Next() Kind {
	k := b.queue[0]
	copy(b.queue[:b.n-1], b.queue[1:b.n])
	b.n--
	b.topUp()
	return k
}

// Peek fills dst with upcoming kinds, at most bagPreview of them.
func (b *Bag) Peek(dst []Kind) []Kind {
	n := min(len(dst), bagPreview)
	copy(dst, b.queue[:n])
	return dst[:n]
}

// topUp appends shuffled fills until a full preview window is queued. Every
// fill contains each kind exactly once.
func (b *Bag) topUp() {
	for b.n <= bagPreview {
		fill := b.queue[b.n : b.n+kindCount]
		for i := range fill {
			fill[i] = Kind(i)
		}
		// Fisher-Yates
		for i := kindCount - 1; i > 0; i-- {
			j := b.rng.IntN(i + 1)
			fill[i], fill[j] = fill[j], fill[i]
		}
		b.n += kindCount
	}
}
