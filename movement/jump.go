package movement

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/jumpwiz/common"
	"github.com/milk9111/jumpwiz/ecs/component"
)

// NextCharge advances the juice meter by one tick and reports whether the
// charge ended this tick (released or over the cap) together with the held
// time it ended at.
func NextCharge(charge component.JumpCharge, grounded bool, in component.Input, dt float64, t Tuning) (next component.JumpCharge, ended bool, held float64) {
	released := in.JumpReleased || !in.JumpHeld

	switch charge.Phase {
	case component.ChargeIdle:
		if grounded && in.JumpPressed {
			return component.Charging(0), false, 0
		}
		return charge, false, 0

	case component.ChargeCharging:
		held = charge.Elapsed + dt
		overcharged := held >= t.ChargeCap
		switch {
		case released:
			return component.Idle(), true, held
		case overcharged:
			return component.Exhausted(), true, held
		default:
			return component.Charging(held), false, held
		}

	case component.ChargeExhausted:
		if released {
			return component.Idle(), false, 0
		}
		return charge, false, 0
	}

	return component.Idle(), false, 0
}

// JumpVelocity returns the launch velocity for a charge held for the given
// number of seconds.
func JumpVelocity(impulse, facing, held float64, t Tuning) cp.Vector {
	power := t.ChargeBase + held
	return cp.Vector{
		X: impulse * facing * t.HorizontalFactor * power,
		Y: impulse * power,
	}
}

// UpdateJumpCharge runs the juice meter and launches the body when a charge
// of at least MinCharge ends while grounded. Shorter taps never launch.
func UpdateJumpCharge(s *Step) {
	next, ended, held := NextCharge(s.State.Charge, s.State.Grounded, s.Input, s.Dt, s.Tuning)
	s.State.Charge = next

	if !ended || held < s.Tuning.MinCharge || !s.State.Grounded {
		return
	}

	s.Velocity = JumpVelocity(s.Config.JumpImpulse, common.Sign(s.State.Facing), held, s.Tuning)
	s.Position.Y += s.Tuning.JumpNudge
	s.Launched = true
}
