package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the platform
	Seed     int64 // RNG seed for deterministic gameplay

	// OnScore receives the final score once per completed run.
	OnScore func(final int)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the status a game reports to the platform.
type GameState struct {
	Score int
	Lives int
	Level int
	Phase Phase

	GameOver bool // Run ended (lost or won)
	Won      bool
	Paused   bool
}

// StateFrom builds a GameState from a session and phase.
func StateFrom(s *Session, p Phase) GameState {
	return GameState{
		Score:    s.Score(),
		Lives:    s.Lives(),
		Level:    s.Level(),
		Phase:    p,
		GameOver: p.Terminal(),
		Won:      p == PhaseWon,
		Paused:   p == PhasePaused,
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
