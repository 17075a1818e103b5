package config

import (
	"fmt"
	"strings"
	"time"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets returns the presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParsePreset parses a preset name, case-insensitively.
// An empty name selects normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return DifficultyNormal, fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// Title returns the display name.
func (p DifficultyPreset) Title() string {
	switch p {
	case DifficultyEasy:
		return "Easy"
	case DifficultyHard:
		return "Hard"
	default:
		return "Normal"
	}
}

// AI returns the AI row for the selected difficulty, falling back to normal.
func (c PongConfig) AI() PongAI {
	if ai, ok := c.Presets[c.Difficulty]; ok {
		return ai
	}
	if ai, ok := c.Presets[DifficultyNormal]; ok {
		return ai
	}
	return DefaultPongPresets()[DifficultyNormal]
}

// Interval returns the gravity period at level (1-based).
func (g TetrisGravity) Interval(level int) time.Duration {
	level = max(level, 1)
	ms := max(g.BaseMs-(level-1)*g.StepMs, g.MinMs)
	return time.Duration(ms) * time.Millisecond
}

// LevelFor returns the level reached after lines cleared lines.
func (s TetrisScoring) LevelFor(lines int) int {
	if s.LinesPerLevel <= 0 {
		return 1
	}
	return lines/s.LinesPerLevel + 1
}

// StepInterval returns the snake move period.
func (t SnakeTiming) StepInterval() time.Duration {
	return time.Duration(t.StepMs) * time.Millisecond
}
