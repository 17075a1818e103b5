package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid:   SnakeGrid{Width: 20, Height: 20},
		Timing: SnakeTiming{StepMs: 150},
		Gameplay: SnakeGameplay{
			StartX:     10,
			StartY:     10,
			FoodX:      5,
			FoodY:      5,
			FoodPoints: 10,
		},
	}
}

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		World: PongWorld{Width: 600, Height: 400},
		Paddles: PongPaddles{
			Width:   12,
			Height:  120,
			KeyStep: 25,
		},
		Ball: PongBall{
			Size:     14,
			SpeedUp:  1.05,
			Spin:     0.12,
			DeadZone: 5,
		},
		Gameplay:   PongGameplay{WinScore: 3},
		Difficulty: DifficultyNormal,
		Presets:    DefaultPongPresets(),
	}
}

// DefaultPongPresets returns the AI table for every difficulty.
func DefaultPongPresets() map[DifficultyPreset]PongAI {
	return map[DifficultyPreset]PongAI{
		DifficultyEasy:   {AISpeed: 200, BallSpeed: 250, Accuracy: 0.70},
		DifficultyNormal: {AISpeed: 350, BallSpeed: 350, Accuracy: 0.85},
		DifficultyHard:   {AISpeed: 500, BallSpeed: 450, Accuracy: 0.98},
	}
}

// DefaultTetrisConfig returns the default Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: TetrisBoard{Width: 10, Height: 20},
		Gravity: TetrisGravity{
			BaseMs: 500,
			StepMs: 50,
			MinMs:  50,
		},
		Scoring: TetrisScoring{
			LinePoints:    100,
			LockBonus:     10,
			HardDropRow:   2,
			LinesPerLevel: 10,
		},
	}
}

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		World: BreakoutWorld{Width: 1000, Height: 400},
		Paddle: BreakoutPaddle{
			Width:   80,
			Height:  12,
			Bottom:  10,
			KeyStep: 20,
		},
		Ball: BreakoutBall{
			Size:    8,
			Speed:   240,
			MaxVX:   360,
			English: 60,
		},
		Bricks: BreakoutBricks{
			Rows:       9,
			Cols:       15,
			Height:     20,
			Top:        30,
			Points:     10,
			ClearBonus: 100,
		},
		PowerUps: BreakoutPowerUps{
			DropChance:    0.2,
			Size:          20,
			FallSpeed:     120,
			BiggerFactor:  1.5,
			BiggerSeconds: 10,
			SlowFactor:    0.8,
			SlowSeconds:   5,
		},
		Gameplay: BreakoutGameplay{Lives: 3},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "snake":
		return defaultSnakeYAML
	case "pong":
		return defaultPongYAML
	case "tetris":
		return defaultTetrisYAML
	case "breakout":
		return defaultBreakoutYAML
	default:
		return nil
	}
}
