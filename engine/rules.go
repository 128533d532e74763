package engine

// Rules is the policy table for scoring, speed and timing. The published
// guideline leaves the exact constants open, so they are injected rather than
// hard-coded; tests pin their expectations against DefaultRules. All timing
// values are tick counts, never wall-clock durations.
type Rules struct {
	// Gravity holds ticks-per-row by level, Gravity[0] applying to level 1.
	// Levels past the end of the table use GravityFloor.
	Gravity      []int
	GravityFloor int

	// LockDelay is the grace period once a piece is grounded. Each successful
	// move or rotation while grounded restarts it, at most MaxLockResets
	// times; with the budget exhausted the piece locks on the next grounded
	// tick.
	LockDelay     int
	MaxLockResets int

	// ClearDelay is the animation pause between removing full rows and the
	// next spawn.
	ClearDelay int

	// LinesPerLevel cleared advance the level by one.
	LinesPerLevel int

	// LineScores[n] is the base award for clearing n rows at once, multiplied
	// by the current level.
	LineScores [5]int
	// SoftDropPerCell and HardDropPerCell are flat per-cell drop bonuses.
	SoftDropPerCell int
	HardDropPerCell int

	// DASDelay is the hold time before a lateral direction starts repeating,
	// DASRepeat the interval between repeats. SoftDropRepeat is the repeat
	// interval of a held soft drop.
	DASDelay       int
	DASRepeat      int
	SoftDropRepeat int

	// PreviewCount is how many upcoming kinds the view model exposes.
	PreviewCount int
}

// DefaultRules returns the policy used by the shipped game: guideline-style
// line scores, a gravity curve that tightens by five ticks per level down to
// a three-tick floor, and half a second of lock delay at 60 ticks per second.
func DefaultRules() Rules {
	return Rules{
		Gravity:         []int{48, 43, 38, 33, 28, 23, 18, 13, 10, 8, 6, 5, 4},
		GravityFloor:    3,
		LockDelay:       30,
		MaxLockResets:   15,
		ClearDelay:      18,
		LinesPerLevel:   10,
		LineScores:      [5]int{0, 100, 300, 500, 800},
		SoftDropPerCell: 1,
		HardDropPerCell: 2,
		DASDelay:        10,
		DASRepeat:       2,
		SoftDropRepeat:  2,
		PreviewCount:    3,
	}
}

// GravityTicks returns the gravity interval for a level. The interval is
// monotonically non-increasing in the level and never drops below the floor.
func (r Rules) GravityTicks(level int) int {
	if level < 1 {
		level = 1
	}
	if level-1 < len(r.Gravity) {
		t := r.Gravity[level-1]
		if t < r.GravityFloor {
			return r.GravityFloor
		}
		return t
	}
	return r.GravityFloor
}

// LevelFor returns the level reached after clearing the given line count.
func (r Rules) LevelFor(lines int) int {
	if r.LinesPerLevel <= 0 {
		return 1
	}
	return lines/r.LinesPerLevel + 1
}
