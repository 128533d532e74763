package engine

import "log/slog"

// Phase is the state of the spawn -> fall -> lock -> clear cycle.
type Phase uint8

const (
	PhaseSpawning Phase = iota
	PhaseFalling
	PhaseLockDelay
	PhaseLineClearPending
	PhaseLineClearAnimating
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseSpawning:
		return "spawning"
	case PhaseFalling:
		return "falling"
	case PhaseLockDelay:
		return "lock-delay"
	case PhaseLineClearPending:
		return "line-clear-pending"
	case PhaseLineClearAnimating:
		return "line-clear-animating"
	case PhaseGameOver:
		return "game-over"
	}
	return "?"
}

// Session is the aggregate root of one game: the playfield, the falling
// piece, hold and preview state, score and phase. It is exclusively owned by
// the tick thread; nothing in it is safe for concurrent use.
type Session struct {
	rules Rules
	log   *slog.Logger
	src   PieceSource

	field  Field
	phase  Phase
	active Active

	hold     Kind
	hasHold  bool
	holdUsed bool

	score int
	lines int
	level int

	gravityTick int
	lockTick    int
	lockResets  int
	clearTick   int

	clearBuf  [FieldRows]int
	clearRows []int

	ticks uint64
}

// NewSession creates a session drawing pieces from src. The first Tick
// dispenses the first piece. A nil logger falls back to slog.Default.
func NewSession(rules Rules, src PieceSource, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	s := &Session{rules: rules, log: log, src: src, level: 1}
	s.clearRows = s.clearBuf[:0]
	return s
}

// Reset discards the current game and starts a fresh one from seed. Valid in
// any phase, including GameOver.
func (s *Session) Reset(seed uint64) {
	s.src.Reset(seed)
	s.field.Reset()
	s.phase = PhaseSpawning
	s.active = Active{}
	s.hasHold = false
	s.holdUsed = false
	s.score = 0
	s.lines = 0
	s.level = 1
	s.gravityTick = 0
	s.lockTick = 0
	s.lockResets = 0
	s.clearTick = 0
	s.clearRows = s.clearBuf[:0]
	s.ticks = 0
}

// Apply processes one intent. Rejected actions are silent no-ops: the piece
// state is left untouched and no error is surfaced. InputReset is ignored
// here because the seed choice belongs to the driver; see Session.Reset.
func (s *Session) Apply(in Intent) {
	if s.phase != PhaseFalling && s.phase != PhaseLockDelay {
		return
	}
	switch in {
	case InputMoveLeft:
		s.tryMove(-1, 0)
	case InputMoveRight:
		s.tryMove(1, 0)
	case InputRotateCW:
		s.tryRotate(true)
	case InputRotateCCW:
		s.tryRotate(false)
	case InputSoftDrop:
		s.softDrop()
	case InputHardDrop:
		s.hardDrop()
	case InputHold:
		s.holdPiece()
	}
}

// Tick advances the timers and the phase machine by one frame. All work
// completes synchronously; there are no wall-clock waits anywhere.
func (s *Session) Tick() {
	s.ticks++
	switch s.phase {
	case PhaseSpawning:
		s.spawn(s.src.Next())

	case PhaseFalling:
		if s.grounded() {
			s.phase = PhaseLockDelay
			s.lockTick = 0
			return
		}
		s.gravityTick++
		if s.gravityTick >= s.rules.GravityTicks(s.level) {
			s.gravityTick = 0
			s.active.Row++
			if s.grounded() {
				s.phase = PhaseLockDelay
				s.lockTick = 0
			}
		}

	case PhaseLockDelay:
		if !s.grounded() {
			s.phase = PhaseFalling
			return
		}
		if s.lockResets >= s.rules.MaxLockResets {
			s.lockPiece()
			return
		}
		s.lockTick++
		if s.lockTick >= s.rules.LockDelay {
			s.lockPiece()
		}

	case PhaseLineClearPending:
		n := s.field.ClearFullRows()
		s.score += s.rules.LineScores[min(n, 4)] * s.level
		s.lines += n
		s.level = s.rules.LevelFor(s.lines)
		s.clearRows = s.clearRows[:0]
		s.clearTick = 0
		s.phase = PhaseLineClearAnimating

	case PhaseLineClearAnimating:
		s.clearTick++
		if s.clearTick >= s.rules.ClearDelay {
			s.phase = PhaseSpawning
		}

	case PhaseGameOver:
		// Terminal until Reset.
	}
}

// spawn places a new active piece at its canonical spawn pose. Overlap with
// the settled stack is the top-out condition: the playfield is left untouched
// and the session goes terminal.
func (s *Session) spawn(k Kind) {
	s.active = spawnPiece(k)
	s.gravityTick = 0
	s.lockTick = 0
	s.lockResets = 0
	if !s.field.fits(s.active.Cells()) {
		s.phase = PhaseGameOver
		s.log.Warn("top-out", "kind", k.String(), "score", s.score, "lines", s.lines)
		return
	}
	s.phase = PhaseFalling
}

func (s *Session) grounded() bool {
	return !s.field.fits(s.active.shifted(0, 1).Cells())
}

func (s *Session) tryMove(dCol, dRow int) bool {
	cand := s.active.shifted(dCol, dRow)
	if !s.field.fits(cand.Cells()) {
		return false
	}
	s.active = cand
	s.noteMoved()
	return true
}

// tryRotate runs the SRS kick search: the base rotation plus each candidate
// offset in table order, first collision-free placement wins. Total failure
// leaves the piece exactly as it was.
func (s *Session) tryRotate(cw bool) bool {
	to := s.active.Rot.CW()
	if !cw {
		to = s.active.Rot.CCW()
	}
	for _, k := range kicks(s.active.Kind, s.active.Rot, cw) {
		cand := s.active.shifted(k.Col, k.Row)
		cand.Rot = to
		if s.field.fits(cand.Cells()) {
			s.active = cand
			s.noteMoved()
			return true
		}
	}
	return false
}

// noteMoved applies the lock-delay consequences of a successful lateral move
// or rotation: stepping off a ledge resumes falling, while a still-grounded
// piece restarts the lock timer as long as the reset budget lasts.
func (s *Session) noteMoved() {
	if s.phase != PhaseLockDelay {
		return
	}
	if !s.grounded() {
		s.phase = PhaseFalling
		return
	}
	if s.lockResets < s.rules.MaxLockResets {
		s.lockResets++
		s.lockTick = 0
	}
}

func (s *Session) softDrop() {
	if s.grounded() {
		return
	}
	s.active.Row++
	s.score += s.rules.SoftDropPerCell
	s.gravityTick = 0
	if s.grounded() {
		s.phase = PhaseLockDelay
		s.lockTick = 0
	}
}

func (s *Session) hardDrop() {
	d := s.dropDistance()
	s.active.Row += d
	s.score += d * s.rules.HardDropPerCell
	s.lockPiece()
}

func (s *Session) dropDistance() int {
	d := 0
	for s.field.fits(s.active.shifted(0, d+1).Cells()) {
		d++
	}
	return d
}

// holdPiece swaps the active kind with the held one, or banks it and pulls
// the next piece when nothing is held yet. One hold per piece life; the
// lock-reset budget already spent carries over to the swapped-in piece.
func (s *Session) holdPiece() {
	if s.holdUsed {
		return
	}
	s.holdUsed = true
	prev := s.active.Kind
	var next Kind
	if s.hasHold {
		next = s.hold
	} else {
		next = s.src.Next()
	}
	s.hold = prev
	s.hasHold = true
	spent := s.lockResets
	s.spawn(next)
	s.lockResets = spent
}

// lockPiece settles the active piece into the playfield. A commit conflict
// should be impossible when the movement logic is correct, so it is treated
// as an invariant violation: logged and fatal to the session.
func (s *Session) lockPiece() {
	if !s.field.Commit(s.active.Cells(), s.active.Kind) {
		s.log.Error("lock into occupied cells",
			"kind", s.active.Kind.String(),
			"col", s.active.Col,
			"row", s.active.Row,
			"rot", int(s.active.Rot))
		s.phase = PhaseGameOver
		return
	}
	s.holdUsed = false
	s.clearRows = s.field.FullRows(s.clearBuf[:0])
	if len(s.clearRows) > 0 {
		s.phase = PhaseLineClearPending
	} else {
		s.phase = PhaseSpawning
	}
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Level returns the current level, starting at 1.
func (s *Session) Level() int { return s.level }

// Lines returns the total number of cleared rows.
func (s *Session) Lines() int { return s.lines }

// Ticks returns how many ticks the session has processed.
func (s *Session) Ticks() uint64 { return s.ticks }

// Active returns the falling piece. The second result is false while no
// piece is in play (spawning, clearing, game over).
func (s *Session) Active() (Active, bool) {
	if s.phase != PhaseFalling && s.phase != PhaseLockDelay {
		return Active{}, false
	}
	return s.active, true
}

// GhostRow returns the row the active piece would land on if hard-dropped.
func (s *Session) GhostRow() int {
	return s.active.Row + s.dropDistance()
}

// Held returns the banked kind, if any.
func (s *Session) Held() (Kind, bool) { return s.hold, s.hasHold }

// Preview fills dst with the upcoming kinds, bounded by the policy's preview
// count, and returns the filled prefix.
func (s *Session) Preview(dst []Kind) []Kind {
	n := min(len(dst), s.rules.PreviewCount)
	return s.src.Peek(dst[:n])
}

// ClearingRows returns the rows flagged for removal while a line clear is
// pending. Empty outside PhaseLineClearPending.
func (s *Session) ClearingRows() []int { return s.clearRows }

// Field exposes the playfield for collision queries, projection and board
// setup. Outside of setup it must be treated as read-only; gameplay mutation
// belongs to the session alone.
func (s *Session) Field() *Field { return &s.field }

// Rules returns the policy table the session was built with.
func (s *Session) Rules() Rules { return s.rules }
