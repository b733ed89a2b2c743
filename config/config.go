package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Default is the renderer layer all draw systems register on.
const Default = ecs.LayerDefault

// C is the global window configuration
var C *Config

func init() {
	C = &Config{
		Width:  800,
		Height: 500,
		Title:  "snap pong",
	}
}

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Gold       = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	Yellow     = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Green      = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Cyan       = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Blue       = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	LightGray  = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	DeepPurple = color.RGBA{R: 48, G: 25, B: 52, A: 255}
	DarkPurple = color.RGBA{R: 75, G: 0, B: 130, A: 255}
	RoyalBlue  = color.RGBA{R: 65, G: 105, B: 225, A: 255}
)
