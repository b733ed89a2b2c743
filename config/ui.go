package config

import "image/color"

// HUDConfig contains in-game info bar configuration values
type HUDConfig struct {
	BarHeight    float64
	BarColor     color.RGBA
	ScoreMargin  float64
	ScoreColor   color.RGBA
	RallyColor   color.RGBA
	EffectMargin float64
}

// CourtConfig contains playfield drawing configuration values
type CourtConfig struct {
	// Vertical gradient endpoints for the background
	GradientTop    color.RGBA
	GradientBottom color.RGBA

	CenterLineColor color.RGBA
	DashHeight      float64
	GapHeight       float64

	PaddleColor       color.RGBA
	PaddleBorderColor color.RGBA
	GlowColor         color.RGBA
	SlowGlowColor     color.RGBA

	BallColor     color.RGBA
	BallRingColor color.RGBA
}

// MenuConfig contains start screen configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TitleY          float64
	PromptColor     color.RGBA
	PromptY         float64
	HintColor       color.RGBA
}

// PauseConfig contains pause overlay configuration values
type PauseConfig struct {
	OverlayColor color.RGBA
	TitleColor   color.RGBA
	TitleY       float64
	TextColor    color.RGBA
	TextY        float64
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TitleY          float64
	StatsColor      color.RGBA
	StatsStartY     float64
	StatsLineGap    float64
	PromptColor     color.RGBA
	PromptY         float64
	HintColor       color.RGBA
}

// Global presentation configuration instances
var HUD HUDConfig
var Court CourtConfig
var Menu MenuConfig
var Pause PauseConfig
var GameOver GameOverConfig

// PowerUpColors maps power-up type index to its draw color.
// Indexed by components.PowerUpType; kept here with the other palette values.
var PowerUpColors []color.RGBA

func init() {
	HUD = HUDConfig{
		BarHeight:    55,
		BarColor:     color.RGBA{R: 75, G: 0, B: 130, A: 180},
		ScoreMargin:  30,
		ScoreColor:   Gold,
		RallyColor:   Gold,
		EffectMargin: 6,
	}

	Court = CourtConfig{
		GradientTop:       color.RGBA{R: 75, G: 0, B: 130, A: 255},
		GradientBottom:    color.RGBA{R: 30, G: 50, B: 150, A: 255},
		CenterLineColor:   Gold,
		DashHeight:        10,
		GapHeight:         5,
		PaddleColor:       White,
		PaddleBorderColor: Cyan,
		GlowColor:         Green,
		SlowGlowColor:     Cyan,
		BallColor:         White,
		BallRingColor:     Gold,
	}

	Menu = MenuConfig{
		BackgroundColor: DeepPurple,
		TitleColor:      Gold,
		TitleY:          60,
		PromptColor:     Gold,
		PromptY:         460,
		HintColor:       LightGray,
	}

	Pause = PauseConfig{
		OverlayColor: color.RGBA{R: 48, G: 25, B: 52, A: 120},
		TitleColor:   Gold,
		TitleY:       200,
		TextColor:    White,
		TextY:        290,
	}

	GameOver = GameOverConfig{
		BackgroundColor: DeepPurple,
		TitleColor:      Gold,
		TitleY:          90,
		StatsColor:      White,
		StatsStartY:     190,
		StatsLineGap:    45,
		PromptColor:     Gold,
		PromptY:         430,
		HintColor:       LightGray,
	}

	// Order follows the PowerUpType enumeration:
	// speed boost, slow AI, big paddle, fast ball.
	PowerUpColors = []color.RGBA{Green, Cyan, Blue, Yellow}
}
