package movement

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/jumpwiz/ecs/component"
	"github.com/stretchr/testify/assert"
)

func TestResolveHorizontal(t *testing.T) {
	cfg := component.NewMovementConfig(400, 1000, 1)

	tests := []struct {
		name       string
		axis       float64
		grounded   bool
		supported  bool
		charge     component.JumpCharge
		velocity   cp.Vector
		facing     float64
		wantVel    cp.Vector
		wantFacing float64
	}{
		{name: "walk_right", axis: 0.5, grounded: true, charge: component.Idle(), facing: -1, wantVel: cp.Vector{X: 400}, wantFacing: 1},
		{name: "walk_left", axis: -1, grounded: true, charge: component.Idle(), facing: 1, wantVel: cp.Vector{X: -400}, wantFacing: -1},
		{name: "charging_locks_in_place", axis: 0.5, grounded: true, charge: component.Charging(0.3), velocity: cp.Vector{X: 50}, facing: -1, wantVel: cp.Vector{}, wantFacing: -1},
		{name: "deadzone_positive_edge", axis: 0.2, grounded: true, charge: component.Idle(), velocity: cp.Vector{X: 400}, facing: -1, wantVel: cp.Vector{}, wantFacing: -1},
		{name: "deadzone_negative_edge", axis: -0.2, grounded: true, charge: component.Idle(), facing: 1, wantVel: cp.Vector{}, wantFacing: 1},
		{name: "exhausted_can_walk", axis: 0.9, grounded: true, charge: component.Exhausted(), facing: -1, wantVel: cp.Vector{X: 400}, wantFacing: 1},
		{name: "grounded_clamps_fall", axis: 0, grounded: true, supported: true, charge: component.Idle(), velocity: cp.Vector{Y: -35}, facing: 1, wantVel: cp.Vector{}, wantFacing: 1},
		{name: "grounded_keeps_rise", axis: 0, grounded: true, supported: true, charge: component.Idle(), velocity: cp.Vector{Y: 35}, facing: 1, wantVel: cp.Vector{Y: 35}, wantFacing: 1},
		{name: "hovering_keeps_falling", axis: 0, grounded: true, charge: component.Idle(), velocity: cp.Vector{Y: -35}, facing: 1, wantVel: cp.Vector{Y: -35}, wantFacing: 1},
		{name: "airborne_untouched", axis: 1, grounded: false, charge: component.Idle(), velocity: cp.Vector{X: -12, Y: -300}, facing: -1, wantVel: cp.Vector{X: -12, Y: -300}, wantFacing: -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := &Step{
				Config:    cfg,
				Tuning:    DefaultTuning(),
				Input:     component.Input{MoveX: tc.axis},
				Velocity:  tc.velocity,
				State:     component.ControllerState{Grounded: tc.grounded, Facing: tc.facing, Charge: tc.charge},
				Supported: tc.supported,
			}
			ResolveHorizontal(s)
			assert.Equal(t, tc.wantVel, s.Velocity)
			assert.Equal(t, tc.wantFacing, s.State.Facing)
			assert.Equal(t, tc.charge, s.State.Charge, "movement must not touch the charge")
		})
	}
}
