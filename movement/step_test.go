package movement

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/jumpwiz/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunOrdersStages(t *testing.T) {
	s := &Step{
		Config:   component.NewMovementConfig(400, 100, math.Pi/4),
		Tuning:   DefaultTuning(),
		Input:    component.Input{MoveX: 1},
		Hits:     []component.ShapeHit{hitAt(0)},
		Contacts: []cp.Vector{up},
		Dt:       1.0 / 60,
		Velocity: cp.Vector{Y: -200},
		State:    component.NewControllerState(),
	}
	Run(s)

	// grounding ran before movement, so the walk applied
	assert.True(t, s.State.Grounded)
	assert.True(t, s.Supported)
	assert.Equal(t, 400.0, s.Velocity.X)
	assert.Equal(t, 0.0, s.Velocity.Y)
	// elasticity saw the grounded, clamped velocity
	assert.Equal(t, 0.0, s.Elasticity)
}

func TestRunClampThenImpulse(t *testing.T) {
	// A jump launched in the same tick as the ground clamp keeps its full
	// vertical impulse: the clamp runs first and the impulse overwrites it.
	s := &Step{
		Config:   component.NewMovementConfig(400, 100, math.Pi/4),
		Tuning:   DefaultTuning(),
		Input:    release,
		Hits:     []component.ShapeHit{hitAt(0)},
		Contacts: []cp.Vector{up},
		Dt:       0.25,
		Velocity: cp.Vector{X: 3, Y: -80},
		State:    component.ControllerState{Facing: 1, Charge: component.Charging(0.25)},
	}
	Run(s)

	require.True(t, s.Launched)
	assert.InDelta(t, 30, s.Velocity.X, 1e-9)
	assert.InDelta(t, 60, s.Velocity.Y, 1e-9)
	assert.Equal(t, 0.0, s.Elasticity)
}

func TestRunHoveringBodyKeepsFalling(t *testing.T) {
	// The probe reaches a few units below the body. Until the solver reports
	// a contact the body must keep its fall, or it would freeze above the floor.
	s := &Step{
		Config:   component.NewMovementConfig(400, 100, math.Pi/4),
		Tuning:   DefaultTuning(),
		Hits:     []component.ShapeHit{hitAt(0)},
		Dt:       1.0 / 60,
		Velocity: cp.Vector{Y: -34},
		State:    component.NewControllerState(),
	}
	Run(s)

	assert.True(t, s.State.Grounded)
	assert.False(t, s.Supported)
	assert.Equal(t, -34.0, s.Velocity.Y)
	assert.Equal(t, 0.0, s.Elasticity)
}

func TestRunAirborneFastFallTurnsBouncy(t *testing.T) {
	s := &Step{
		Config:   component.NewMovementConfig(400, 100, math.Pi/4),
		Tuning:   DefaultTuning(),
		Input:    component.Input{MoveX: -1},
		Velocity: cp.Vector{X: 90, Y: -500},
		State:    component.ControllerState{Grounded: true, Facing: 1, Charge: component.Idle()},
	}
	Run(s)

	assert.False(t, s.State.Grounded)
	assert.Equal(t, cp.Vector{X: 90, Y: -500}, s.Velocity)
	assert.Equal(t, 1.0, s.State.Facing)
	assert.Equal(t, 1.0, s.Elasticity)
}

func TestRunResetsLaunched(t *testing.T) {
	s := &Step{Tuning: DefaultTuning(), Launched: true, State: component.NewControllerState()}
	Run(s)
	assert.False(t, s.Launched)
	Run(nil)
}
