package core

import "testing"

func TestSessionScoreMonotonic(t *testing.T) {
	s := NewSession(3, nil)

	s.AddScore(10)
	s.AddScore(-50)
	s.AddScore(0)
	s.AddScore(100)

	if s.Score() != 110 {
		t.Errorf("Score() = %d, expected 110", s.Score())
	}

	s.Reset(3)
	if s.Score() != 0 {
		t.Errorf("Score() after reset = %d, expected 0", s.Score())
	}
}

func TestSessionLivesAndLevel(t *testing.T) {
	s := NewSession(2, nil)

	if s.LoseLife() != 1 || s.LoseLife() != 0 || s.LoseLife() != 0 {
		t.Error("LoseLife() should count down to zero and stop")
	}

	s.SetLevel(3)
	s.SetLevel(2)
	if s.Level() != 3 {
		t.Errorf("Level() = %d, expected 3 (non-decreasing)", s.Level())
	}

	s.Reset(5)
	if s.Lives() != 5 || s.Level() != 1 {
		t.Errorf("after Reset(5) lives=%d level=%d, expected 5 and 1", s.Lives(), s.Level())
	}
}

func TestSessionReportsOnce(t *testing.T) {
	var calls []int
	s := NewSession(3, func(final int) { calls = append(calls, final) })

	s.AddScore(40)
	if !s.Report(s.Score()) {
		t.Error("first Report() should deliver")
	}
	if s.Report(999) {
		t.Error("second Report() should be a no-op")
	}
	if len(calls) != 1 || calls[0] != 40 {
		t.Fatalf("callback calls = %v, expected [40]", calls)
	}

	// A new run re-arms the report
	s.Reset(3)
	s.Report(0)
	if len(calls) != 2 {
		t.Errorf("callback calls after reset = %v, expected two", calls)
	}
}

func TestSessionGeneration(t *testing.T) {
	s := NewSession(3, nil)
	gen := s.Generation()

	s.AddScore(10)
	s.LoseLife()
	s.Report(10)
	if s.Generation() != gen {
		t.Errorf("Generation() = %d mid-run, expected %d", s.Generation(), gen)
	}

	s.Reset(3)
	if s.Generation() != gen+1 {
		t.Errorf("Generation() after Reset() = %d, expected %d", s.Generation(), gen+1)
	}
}
