package core

// Session tracks score, lives and level for one run and reports the final
// score exactly once.
type Session struct {
	score        int
	lives        int
	level        int
	initialLives int
	reported     bool
	gen          uint64
	onScore      func(int)
}

// NewSession creates a session with the given starting lives.
// onScore may be nil.
func NewSession(lives int, onScore func(int)) *Session {
	s := &Session{onScore: onScore}
	s.Reset(lives)
	return s
}

// Reset starts a new run: score 0, level 1, lives restored.
// Each call bumps the generation.
func (s *Session) Reset(lives int) {
	s.gen++
	s.score = 0
	s.lives = max(lives, 0)
	s.initialLives = s.lives
	s.level = 1
	s.reported = false
}

// Generation counts the runs started on this session. Work captured in
// one run can compare it to tell whether the run is still live.
func (s *Session) Generation() uint64 {
	return s.gen
}

// SetOnScore replaces the final score callback.
func (s *Session) SetOnScore(fn func(int)) {
	s.onScore = fn
}

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.lives }

// Level returns the current level (1-based).
func (s *Session) Level() int { return s.level }

// AddScore adds n points. Negative amounts are ignored.
func (s *Session) AddScore(n int) {
	if n > 0 {
		s.score += n
	}
}

// LoseLife removes one life and returns how many remain.
func (s *Session) LoseLife() int {
	if s.lives > 0 {
		s.lives--
	}
	return s.lives
}

// SetLevel raises the level; lower values are ignored.
func (s *Session) SetLevel(level int) {
	if level > s.level {
		s.level = level
	}
}

// Reported reports whether the final score was already delivered.
func (s *Session) Reported() bool {
	return s.reported
}

// Report delivers final to the callback once per run.
// Returns false if the run was already reported.
func (s *Session) Report(final int) bool {
	if s.reported {
		return false
	}
	s.reported = true
	if s.onScore != nil {
		s.onScore(final)
	}
	return true
}
