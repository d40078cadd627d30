package gameplay

import (
	"math"
	"time"

	"rebind/pkg/game/controls"
	"rebind/pkg/game/state"
)

// Speeds in field units per second at full axis deflection.
const (
	ShipSpeed = 20.0
	ShotSpeed = 30.0
)

// SlowFactor scales the ship speed while Slow is held.
const SlowFactor = 0.5

// Step advances the game by elapsed using the current logical control state.
// It must run before the controls are ticked so that button edges raised
// since the last frame are still visible.
func Step(g *state.Game, m *controls.Manager, elapsed time.Duration) {
	g.Frames++

	if m.ButtonPressed(controls.ButtonQuit) {
		g.Quit = true
		return
	}
	if m.ButtonPressed(controls.ButtonFire) {
		g.Fire()
	}

	dt := elapsed.Seconds()
	h, _ := m.Axis(controls.AxisHorizontal)
	v, _ := m.Axis(controls.AxisVertical)

	speed := ShipSpeed
	// Slow acts on the level, not the edge
	if slow, _ := m.Button(controls.ButtonSlow); slow.Pressed {
		speed *= SlowFactor
	}

	g.X = clamp(g.X+h.Position*speed*dt, 0, state.FieldWidth-1)
	// axis up is screen up
	g.Y = clamp(g.Y-v.Position*speed*dt, 0, state.FieldHeight-1)

	moveShots(g, dt)
}

// moveShots moves shots up the field and drops the ones that left it.
func moveShots(g *state.Game, dt float64) {
	kept := g.Shots[:0]
	for _, s := range g.Shots {
		s.Y -= ShotSpeed * dt
		if s.Y >= 0 {
			kept = append(kept, s)
		}
	}
	g.Shots = kept
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
