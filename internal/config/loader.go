package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSnake loads Snake configuration.
func LoadSnake(customPath string) (SnakeConfig, error) {
	return load("snake", customPath, DefaultSnakeConfig())
}

// LoadPong loads Pong configuration.
func LoadPong(customPath string) (PongConfig, error) {
	cfg, err := load("pong", customPath, DefaultPongConfig())
	if err != nil {
		return cfg, err
	}
	// A file may override only some presets
	for preset, ai := range DefaultPongPresets() {
		if _, ok := cfg.Presets[preset]; !ok {
			if cfg.Presets == nil {
				cfg.Presets = make(map[DifficultyPreset]PongAI)
			}
			cfg.Presets[preset] = ai
		}
	}
	return cfg, nil
}

// LoadTetris loads Tetris configuration.
func LoadTetris(customPath string) (TetrisConfig, error) {
	return load("tetris", customPath, DefaultTetrisConfig())
}

// LoadBreakout loads Breakout configuration.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	return load("breakout", customPath, DefaultBreakoutConfig())
}

// load resolves a game's configuration.
// Search order: customPath -> ~/.arcade/configs/<game>.yaml ->
// ./configs/<game>.yaml -> embedded default -> fallback.
// Every YAML layer is decoded over fallback, so keys a file omits keep their
// default values. Only an explicit customPath can produce an error.
func load[T any](gameID, customPath string, fallback T) (T, error) {
	if customPath != "" {
		cfg := fallback
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fallback, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fallback, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := gameID + ".yaml"
	candidates := []string{
		userConfigPath(filename),
		filepath.Join("configs", filename),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			cfg := fallback
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	if data := GetDefaultYAML(gameID); len(data) > 0 {
		cfg := fallback
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}
	return fallback, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyPongPreset selects the AI row for preset.
func ApplyPongPreset(cfg *PongConfig, preset DifficultyPreset) {
	if _, ok := cfg.Presets[preset]; ok {
		cfg.Difficulty = preset
	}
}

// ApplyBreakoutPreset adjusts lives and paddle width for preset.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 100
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 64
	}
}
