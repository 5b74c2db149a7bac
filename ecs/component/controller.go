package component

// MovementConfig is the immutable tuning of a character controller.
type MovementConfig struct {
	// Acceleration is the horizontal speed applied while walking.
	Acceleration float64
	// JumpImpulse scales the velocity of a charged jump.
	JumpImpulse float64
	// MaxSlopeAngle in radians; only honoured when SlopeLimited is set.
	MaxSlopeAngle float64
	SlopeLimited  bool
}

// NewMovementConfig returns a config with a slope limit.
func NewMovementConfig(acceleration, jumpImpulse, maxSlopeAngle float64) MovementConfig {
	return MovementConfig{
		Acceleration:  acceleration,
		JumpImpulse:   jumpImpulse,
		MaxSlopeAngle: maxSlopeAngle,
		SlopeLimited:  true,
	}
}

// ProbeConfig describes the ground probe: a copy of the collider shrunk by
// Scale and swept MaxDistance world units straight down in Samples steps.
type ProbeConfig struct {
	Scale       float64
	MaxDistance float64
	Samples     int
}

// CharacterController marks a dynamic body driven by player input.
type CharacterController struct {
	Movement MovementConfig
	Probe    ProbeConfig
}

var CharacterControllerComponent = NewComponent[CharacterController]()

// ControllerState is the mutable per-tick state of a character controller.
// Grounded is recomputed every tick; Facing and Charge persist.
type ControllerState struct {
	Grounded bool
	Facing   float64
	Charge   JumpCharge
}

// NewControllerState returns the spawn state: airborne, facing right, idle.
func NewControllerState() ControllerState {
	return ControllerState{Facing: 1, Charge: Idle()}
}

var ControllerStateComponent = NewComponent[ControllerState]()
