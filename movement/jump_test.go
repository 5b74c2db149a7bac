package movement

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/jumpwiz/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	press   = component.Input{JumpPressed: true, JumpHeld: true}
	hold    = component.Input{JumpHeld: true}
	release = component.Input{JumpReleased: true}
	none    = component.Input{}
)

func TestNextCharge(t *testing.T) {
	tun := DefaultTuning()

	tests := []struct {
		name      string
		charge    component.JumpCharge
		grounded  bool
		in        component.Input
		want      component.JumpCharge
		wantEnded bool
	}{
		{name: "idle_press_grounded", charge: component.Idle(), grounded: true, in: press, want: component.Charging(0)},
		{name: "idle_press_airborne", charge: component.Idle(), grounded: false, in: press, want: component.Idle()},
		{name: "idle_hold_without_press", charge: component.Idle(), grounded: true, in: hold, want: component.Idle()},
		{name: "charging_hold", charge: component.Charging(0.25), grounded: true, in: hold, want: component.Charging(0.5)},
		{name: "charging_release", charge: component.Charging(0.25), grounded: true, in: release, want: component.Idle(), wantEnded: true},
		{name: "charging_lost_release_edge", charge: component.Charging(0.25), grounded: true, in: none, want: component.Idle(), wantEnded: true},
		{name: "charging_reaches_cap", charge: component.Charging(0.75), grounded: true, in: hold, want: component.Exhausted(), wantEnded: true},
		{name: "release_beats_cap", charge: component.Charging(0.75), grounded: true, in: release, want: component.Idle(), wantEnded: true},
		{name: "charging_continues_airborne", charge: component.Charging(0.25), grounded: false, in: hold, want: component.Charging(0.5)},
		{name: "exhausted_hold", charge: component.Exhausted(), grounded: true, in: hold, want: component.Exhausted()},
		{name: "exhausted_press_while_held", charge: component.Exhausted(), grounded: true, in: press, want: component.Exhausted()},
		{name: "exhausted_release", charge: component.Exhausted(), grounded: true, in: release, want: component.Idle()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ended, _ := NextCharge(tc.charge, tc.grounded, tc.in, 0.25, tun)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantEnded, ended)
		})
	}
}

func TestChargeIsMonotonicAndCapped(t *testing.T) {
	tun := DefaultTuning()
	const dt = 1.0 / 60.0

	charge, _, _ := NextCharge(component.Idle(), true, press, dt, tun)
	require.Equal(t, component.Charging(0), charge)

	prev := charge.Elapsed
	for i := 0; i < 200; i++ {
		next, ended, _ := NextCharge(charge, true, hold, dt, tun)
		if ended {
			assert.Equal(t, component.Exhausted(), next)
			assert.GreaterOrEqual(t, prev+dt, tun.ChargeCap)
			return
		}
		require.True(t, next.IsCharging())
		assert.Greater(t, next.Elapsed, prev)
		assert.Less(t, next.Elapsed, tun.ChargeCap)
		prev = next.Elapsed
		charge = next
	}
	t.Fatalf("charge never reached the cap")
}

func jumpStep(charge component.JumpCharge, in component.Input, grounded bool, dt float64) *Step {
	return &Step{
		Config:   component.NewMovementConfig(400, 100, 1),
		Tuning:   DefaultTuning(),
		Input:    in,
		Dt:       dt,
		Position: cp.Vector{X: 5, Y: 50},
		Velocity: cp.Vector{X: 7, Y: 3},
		State:    component.ControllerState{Grounded: grounded, Facing: 1, Charge: charge},
	}
}

func TestUpdateJumpChargeReleaseLaunches(t *testing.T) {
	// held 0.25s, one more 0.25s tick, then released: 0.5s total
	s := jumpStep(component.Charging(0.25), release, true, 0.25)
	UpdateJumpCharge(s)

	require.True(t, s.Launched)
	assert.Equal(t, component.Idle(), s.State.Charge)
	assert.InDelta(t, 30, s.Velocity.X, 1e-9)
	assert.InDelta(t, 60, s.Velocity.Y, 1e-9)
	assert.InDelta(t, 50+DefaultTuning().JumpNudge, s.Position.Y, 1e-9)
	assert.Equal(t, 5.0, s.Position.X)
}

func TestUpdateJumpChargeFacingLeft(t *testing.T) {
	s := jumpStep(component.Charging(0.25), release, true, 0.25)
	s.State.Facing = -1
	UpdateJumpCharge(s)

	require.True(t, s.Launched)
	assert.InDelta(t, -30, s.Velocity.X, 1e-9)
	assert.InDelta(t, 60, s.Velocity.Y, 1e-9)
}

func TestUpdateJumpChargeOverchargeLaunchesAtCap(t *testing.T) {
	s := jumpStep(component.Charging(0.75), hold, true, 0.25)
	UpdateJumpCharge(s)

	require.True(t, s.Launched)
	assert.Equal(t, component.Exhausted(), s.State.Charge)
	assert.InDelta(t, 100*0.5*1.1, s.Velocity.X, 1e-9)
	assert.InDelta(t, 100*1.1, s.Velocity.Y, 1e-9)
}

func TestUpdateJumpChargeNoImpulse(t *testing.T) {
	tests := []struct {
		name     string
		charge   component.JumpCharge
		in       component.Input
		grounded bool
		dt       float64
	}{
		{name: "tap_below_threshold", charge: component.Charging(0.05), in: release, grounded: true, dt: 0.05},
		{name: "release_while_airborne", charge: component.Charging(0.5), in: release, grounded: false, dt: 0.05},
		{name: "still_holding", charge: component.Charging(0.5), in: hold, grounded: true, dt: 0.05},
		{name: "press_starts_charge_only", charge: component.Idle(), in: press, grounded: true, dt: 0.05},
		{name: "exhausted_release", charge: component.Exhausted(), in: release, grounded: true, dt: 0.05},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := jumpStep(tc.charge, tc.in, tc.grounded, tc.dt)
			UpdateJumpCharge(s)
			assert.False(t, s.Launched)
			assert.Equal(t, cp.Vector{X: 7, Y: 3}, s.Velocity)
			assert.Equal(t, cp.Vector{X: 5, Y: 50}, s.Position)
		})
	}
}

func TestJumpVelocity(t *testing.T) {
	v := JumpVelocity(100, 1, 0.5, DefaultTuning())
	assert.InDelta(t, 30, v.X, 1e-9)
	assert.InDelta(t, 60, v.Y, 1e-9)
}
