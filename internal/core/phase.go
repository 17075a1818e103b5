package core

// Phase is the state of a game run.
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseReady
	PhaseRunning
	PhasePaused
	PhaseGameOver
	PhaseWon
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseReady:
		return "ready"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether the run has ended.
func (p Phase) Terminal() bool {
	return p == PhaseGameOver || p == PhaseWon
}

// Machine enforces the allowed phase transitions. Every transition method
// returns false and leaves the phase unchanged when it does not apply.
type Machine struct {
	phase Phase
}

// NewMachine creates a machine in the Ready phase.
func NewMachine() *Machine {
	return &Machine{phase: PhaseReady}
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// Running reports whether the simulation should advance.
func (m *Machine) Running() bool {
	return m.phase == PhaseRunning
}

// Select moves Menu -> Ready.
func (m *Machine) Select() bool {
	return m.move(PhaseMenu, PhaseReady)
}

// Start moves Ready -> Running.
func (m *Machine) Start() bool {
	return m.move(PhaseReady, PhaseRunning)
}

// Pause moves Running -> Paused.
func (m *Machine) Pause() bool {
	return m.move(PhaseRunning, PhasePaused)
}

// Resume moves Paused -> Running.
func (m *Machine) Resume() bool {
	return m.move(PhasePaused, PhaseRunning)
}

// TogglePause flips between Running and Paused; other phases are unaffected.
func (m *Machine) TogglePause() bool {
	switch m.phase {
	case PhaseRunning:
		m.phase = PhasePaused
		return true
	case PhasePaused:
		m.phase = PhaseRunning
		return true
	}
	return false
}

// Finish ends a running game as GameOver or Won.
func (m *Machine) Finish(won bool) bool {
	if m.phase != PhaseRunning {
		return false
	}
	if won {
		m.phase = PhaseWon
	} else {
		m.phase = PhaseGameOver
	}
	return true
}

// Reset returns to Ready from any phase except Menu.
func (m *Machine) Reset() bool {
	if m.phase == PhaseMenu {
		return false
	}
	m.phase = PhaseReady
	return true
}

// Back returns to the Menu from any phase.
func (m *Machine) Back() bool {
	if m.phase == PhaseMenu {
		return false
	}
	m.phase = PhaseMenu
	return true
}

func (m *Machine) move(from, to Phase) bool {
	if m.phase != from {
		return false
	}
	m.phase = to
	return true
}
