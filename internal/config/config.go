// Package config provides YAML-based tuning for the arcade games and the
// difficulty presets that adjust them.
package config

// SnakeConfig contains all configuration for Snake.
type SnakeConfig struct {
	Grid     SnakeGrid     `yaml:"grid"`
	Timing   SnakeTiming   `yaml:"timing"`
	Gameplay SnakeGameplay `yaml:"gameplay"`
}

// SnakeGrid defines the board size in cells.
type SnakeGrid struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeTiming defines how often the snake moves.
type SnakeTiming struct {
	StepMs int `yaml:"step_ms"`
}

// SnakeGameplay defines start positions and scoring.
type SnakeGameplay struct {
	StartX     int `yaml:"start_x"`
	StartY     int `yaml:"start_y"`
	FoodX      int `yaml:"food_x"`
	FoodY      int `yaml:"food_y"`
	FoodPoints int `yaml:"food_points"`
}

// PongConfig contains all configuration for Pong.
type PongConfig struct {
	World      PongWorld                  `yaml:"world"`
	Paddles    PongPaddles                `yaml:"paddles"`
	Ball       PongBall                   `yaml:"ball"`
	Gameplay   PongGameplay               `yaml:"gameplay"`
	Difficulty DifficultyPreset           `yaml:"difficulty"`
	Presets    map[DifficultyPreset]PongAI `yaml:"presets"`
}

// PongWorld defines the playfield size in world pixels.
type PongWorld struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PongPaddles defines paddle geometry and keyboard movement.
type PongPaddles struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	KeyStep float64 `yaml:"key_step"` // pixels per Up/Down press
}

// PongBall defines ball size and hit response.
type PongBall struct {
	Size     float64 `yaml:"size"`
	SpeedUp  float64 `yaml:"speed_up"`  // |vx| multiplier on each paddle hit
	Spin     float64 `yaml:"spin"`      // vy gain from the hit offset
	DeadZone float64 `yaml:"dead_zone"` // AI ignores smaller offsets
}

// PongGameplay defines match rules.
type PongGameplay struct {
	WinScore int `yaml:"win_score"`
}

// PongAI is one row of the difficulty table.
type PongAI struct {
	AISpeed   float64 `yaml:"ai_speed"`
	BallSpeed float64 `yaml:"ball_speed"`
	Accuracy  float64 `yaml:"accuracy"`
}

// TetrisConfig contains all configuration for Tetris.
type TetrisConfig struct {
	Board   TetrisBoard   `yaml:"board"`
	Gravity TetrisGravity `yaml:"gravity"`
	Scoring TetrisScoring `yaml:"scoring"`
}

// TetrisBoard defines the well size in cells.
type TetrisBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TetrisGravity defines the gravity curve: base - (level-1)*step, floored at min.
type TetrisGravity struct {
	BaseMs int `yaml:"base_ms"`
	StepMs int `yaml:"step_ms"`
	MinMs  int `yaml:"min_ms"`
}

// TetrisScoring defines points and level progression.
type TetrisScoring struct {
	LinePoints    int `yaml:"line_points"`
	LockBonus     int `yaml:"lock_bonus"`
	HardDropRow   int `yaml:"hard_drop_row"`
	LinesPerLevel int `yaml:"lines_per_level"`
}

// BreakoutConfig contains all configuration for Breakout.
type BreakoutConfig struct {
	World    BreakoutWorld    `yaml:"world"`
	Paddle   BreakoutPaddle   `yaml:"paddle"`
	Ball     BreakoutBall     `yaml:"ball"`
	Bricks   BreakoutBricks   `yaml:"bricks"`
	PowerUps BreakoutPowerUps `yaml:"powerups"`
	Gameplay BreakoutGameplay `yaml:"gameplay"`
}

// BreakoutWorld defines the playfield size in world pixels.
type BreakoutWorld struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BreakoutPaddle defines paddle geometry and keyboard movement.
type BreakoutPaddle struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Bottom  float64 `yaml:"bottom"` // gap between paddle and the bottom edge
	KeyStep float64 `yaml:"key_step"`
}

// BreakoutBall defines ball size and speed.
type BreakoutBall struct {
	Size    float64 `yaml:"size"`
	Speed   float64 `yaml:"speed"`
	MaxVX   float64 `yaml:"max_vx"`
	English float64 `yaml:"english"` // vx added at the paddle edge
}

// BreakoutBricks defines the brick wall.
type BreakoutBricks struct {
	Rows       int     `yaml:"rows"`
	Cols       int     `yaml:"cols"`
	Height     float64 `yaml:"height"`
	Top        float64 `yaml:"top"`
	Points     int     `yaml:"points"`
	ClearBonus int     `yaml:"clear_bonus"`
}

// BreakoutPowerUps defines drop chance and effect tuning.
type BreakoutPowerUps struct {
	DropChance    float64 `yaml:"drop_chance"`
	Size          float64 `yaml:"size"`
	FallSpeed     float64 `yaml:"fall_speed"`
	BiggerFactor  float64 `yaml:"bigger_factor"`
	BiggerSeconds float64 `yaml:"bigger_seconds"`
	SlowFactor    float64 `yaml:"slow_factor"`
	SlowSeconds   float64 `yaml:"slow_seconds"`
}

// BreakoutGameplay defines lives.
type BreakoutGameplay struct {
	Lives int `yaml:"lives"`
}
