package engine

// Input is a logical control as seen at the input collaborator boundary.
// Debouncing and raw transport (GPIO, ADC thresholds, key codes) are the
// collaborator's problem; the engine only sees clean press/release edges.
type Input uint8

const (
	InputMoveLeft Input = iota
	InputMoveRight
	InputRotateCW
	InputRotateCCW
	InputSoftDrop
	InputHardDrop
	InputHold
	InputReset

	inputCount
)

func (in Input) String() string {
	switch in {
	case InputMoveLeft:
		return "move-left"
	case InputMoveRight:
		return "move-right"
	case InputRotateCW:
		return "rotate-cw"
	case InputRotateCCW:
		return "rotate-ccw"
	case InputSoftDrop:
		return "soft-drop"
	case InputHardDrop:
		return "hard-drop"
	case InputHold:
		return "hold"
	case InputReset:
		return "reset"
	}
	return "?"
}

// Event is one edge on a logical input.
type Event struct {
	Input   Input
	Pressed bool
}

// Intent is a game action for the state machine to apply this tick. Intents
// reuse the Input namespace; the mapper's job is purely turning edges and
// hold durations into a per-tick intent stream.
type Intent = Input

// Mapper translates input edges into intents, applying delayed auto-shift to
// the lateral directions and a fixed repeat to a held soft drop. Rotation,
// hold, hard drop and reset fire once per press. The mapper owns nothing but
// its own repeat counters.
type Mapper struct {
	rules   Rules
	down    [inputCount]bool
	held    [inputCount]int
	pending [inputCount]uint8
}

// NewMapper returns a mapper using the policy's DAS timings.
func NewMapper(rules Rules) *Mapper {
	return &Mapper{rules: rules}
}

// Handle records one edge. Presses of the single-shot inputs are latched so
// a press and release inside the same tick still produces its intent.
func (m *Mapper) Handle(ev Event) {
	m.down[ev.Input] = ev.Pressed
	if ev.Pressed {
		m.held[ev.Input] = 0
		if m.pending[ev.Input] < 255 {
			m.pending[ev.Input]++
		}
	}
}

// Tick appends this tick's intents to dst in a fixed order and advances the
// repeat timers.
func (m *Mapper) Tick(dst []Intent) []Intent {
	for in := InputMoveLeft; in < inputCount; in++ {
		for ; m.pending[in] > 0; m.pending[in]-- {
			dst = append(dst, in)
		}
		if !m.down[in] {
			continue
		}
		switch in {
		case InputMoveLeft, InputMoveRight:
			m.held[in]++
			if m.held[in] > m.rules.DASDelay {
				m.held[in] -= m.rules.DASRepeat
				dst = append(dst, in)
			}
		case InputSoftDrop:
			m.held[in]++
			if m.held[in] >= m.rules.SoftDropRepeat {
				m.held[in] = 0
				dst = append(dst, in)
			}
		}
	}
	return dst
}

// Reset clears all edges and timers, for use when a session restarts.
func (m *Mapper) Reset() {
	m.down = [inputCount]bool{}
	m.held = [inputCount]int{}
	m.pending = [inputCount]uint8{}
}
