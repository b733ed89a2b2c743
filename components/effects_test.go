package components

import "testing"

// TestEffectsActivateAndHas verifies the per-side countdown table keeps
// sides and types independent.
func TestEffectsActivateAndHas(t *testing.T) {
	var e EffectsData

	e.Activate(SideLeft, PowerUpBigPaddle, 180)

	if !e.Has(SideLeft, PowerUpBigPaddle) {
		t.Fatalf("activated effect not reported")
	}
	if e.Has(SideRight, PowerUpBigPaddle) {
		t.Fatalf("effect leaked to the other side")
	}
	if e.Has(SideLeft, PowerUpSpeedBoost) {
		t.Fatalf("effect leaked to another type")
	}
}

// TestEffectsClear verifies Clear drops every countdown.
func TestEffectsClear(t *testing.T) {
	var e EffectsData
	e.Activate(SideLeft, PowerUpSlowAI, 60)
	e.Activate(SideRight, PowerUpFastBall, 60)

	e.Clear()

	for side := Side(0); side < SideCount; side++ {
		for typ := PowerUpType(0); typ < PowerUpTypeCount; typ++ {
			if e.Has(side, typ) {
				t.Fatalf("effect %v/%v survived Clear", side, typ)
			}
		}
	}
}
