package movement

import "math"

// ResolveHorizontal converts the movement axis into walking velocity. It only
// acts on the ground; airborne bodies keep whatever velocity they have.
func ResolveHorizontal(s *Step) {
	if !s.State.Grounded {
		return
	}

	axis := s.Input.MoveX
	switch {
	case s.State.Charge.IsCharging():
		s.Velocity.X = 0
	case axis > s.Tuning.Deadzone:
		s.Velocity.X = s.Config.Acceleration
		s.State.Facing = 1
	case axis < -s.Tuning.Deadzone:
		s.Velocity.X = -s.Config.Acceleration
		s.State.Facing = -1
	default:
		s.Velocity.X = 0
	}

	// Drop residual downward velocity left by last tick's contact resolution.
	// A body the probe sees but that hovers above the floor keeps falling.
	if s.Supported {
		s.Velocity.Y = math.Max(s.Velocity.Y, 0)
	}
}
