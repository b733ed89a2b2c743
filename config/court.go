package config

// PaddleConfig contains paddle dimensions and movement values
type PaddleConfig struct {
	Width  float64
	Height float64
	Speed  float64 // pixels per tick for human players
	LeftX  float64
	RightX float64
}

// BallConfig contains ball dimensions and speed limits
type BallConfig struct {
	Size         float64
	InitialSpeed float64 // per-axis speed on serve
	MaxSpeed     float64 // cap on velocity magnitude, not per-axis
}

// AIConfig contains the AI paddle speed presets
type AIConfig struct {
	// Speeds maps difficulty level (1..3) to paddle speed per tick
	Speeds            map[int]float64
	DefaultDifficulty int
}

// PowerUpConfig contains power-up spawn, motion and effect values
type PowerUpConfig struct {
	SpawnChance float64 // Bernoulli trial probability per tick
	Size        float64
	Duration    int     // effect lifetime in ticks
	FallSpeed   float64 // pixels per tick

	// Paddle-size effect caps. Boost caps at base+BoostHeightBonus or
	// base*BoostHeightScale, whichever is smaller; big-paddle is a flat scale.
	BoostHeightBonus float64
	BoostHeightScale float64
	BigPaddleScale   float64

	FastBallScale float64 // applied to ball velocity immediately on collection
}

// MatchRulesConfig contains win-target bounds and defaults
type MatchRulesConfig struct {
	DefaultWinTarget int
	MinWinTarget     int
	MaxWinTarget     int
}

// Global gameplay configuration instances
var Paddle PaddleConfig
var Ball BallConfig
var AI AIConfig
var PowerUps PowerUpConfig
var Match MatchRulesConfig

func init() {
	Paddle = PaddleConfig{
		Width:  10,
		Height: 80,
		Speed:  10,
		LeftX:  30,
		RightX: float64(C.Width) - 40,
	}

	Ball = BallConfig{
		Size:         15,
		InitialSpeed: 8,
		MaxSpeed:     15,
	}

	AI = AIConfig{
		Speeds: map[int]float64{
			1: 3, // easy
			2: 4, // medium
			3: 6, // hard
		},
		DefaultDifficulty: 2,
	}

	PowerUps = PowerUpConfig{
		SpawnChance:      0.02,
		Size:             15,
		Duration:         180,
		FallSpeed:        2,
		BoostHeightBonus: 30,
		BoostHeightScale: 1.5,
		BigPaddleScale:   1.3,
		FastBallScale:    1.3,
	}

	Match = MatchRulesConfig{
		DefaultWinTarget: 5,
		MinWinTarget:     1,
		MaxWinTarget:     20,
	}
}

// ClampWinTarget clamps a requested win target into the allowed range.
func ClampWinTarget(target int) int {
	if target < Match.MinWinTarget {
		return Match.MinWinTarget
	}
	if target > Match.MaxWinTarget {
		return Match.MaxWinTarget
	}
	return target
}

// AISpeed returns the paddle speed for a difficulty level, falling back to the
// default preset for out-of-range levels.
func AISpeed(difficulty int) float64 {
	if s, ok := AI.Speeds[difficulty]; ok {
		return s
	}
	return AI.Speeds[AI.DefaultDifficulty]
}
