package systems

import (
	"testing"

	"github.com/automoto/snap-pong/components"
	cfg "github.com/automoto/snap-pong/config"
)

// TestPaddleGlowColorSelection verifies the slow-AI effect gets its own
// glow color while other effects share the default.
func TestPaddleGlowColorSelection(t *testing.T) {
	var effects components.EffectsData

	effects.Activate(components.SideRight, components.PowerUpSlowAI, 60)
	if got := paddleGlowColor(&effects, components.SideRight); got != cfg.Court.SlowGlowColor {
		t.Fatalf("slow-AI glow = %v, want %v", got, cfg.Court.SlowGlowColor)
	}

	effects.Clear()
	effects.Activate(components.SideLeft, components.PowerUpBigPaddle, 60)
	if got := paddleGlowColor(&effects, components.SideLeft); got != cfg.Court.GlowColor {
		t.Fatalf("default glow = %v, want %v", got, cfg.Court.GlowColor)
	}

	// Slow AI wins over a concurrent effect on the same side.
	effects.Activate(components.SideLeft, components.PowerUpSlowAI, 60)
	if got := paddleGlowColor(&effects, components.SideLeft); got != cfg.Court.SlowGlowColor {
		t.Fatalf("mixed-effect glow = %v, want %v", got, cfg.Court.SlowGlowColor)
	}
}
