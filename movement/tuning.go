package movement

// Tuning holds the controller constants shared by every character.
type Tuning struct {
	// Deadzone is the axis magnitude below which input is ignored.
	Deadzone float64
	// ChargeCap is the longest a jump can be held before the meter is exhausted.
	ChargeCap float64
	// MinCharge is the shortest hold that launches a jump.
	MinCharge float64
	// ChargeBase is added to the held time when scaling the jump.
	ChargeBase float64
	// HorizontalFactor scales the horizontal share of the jump.
	HorizontalFactor float64
	// JumpNudge lifts the body off the ground on the launch tick.
	JumpNudge float64
	// FastFallSpeed is the downward speed at which an airborne body turns bouncy.
	FastFallSpeed float64
	// Elastic and Inelastic are the two restitution values the body switches between.
	Elastic   float64
	Inelastic float64
}

func DefaultTuning() Tuning {
	return Tuning{
		Deadzone:         0.2,
		ChargeCap:        1.0,
		MinCharge:        0.15,
		ChargeBase:       0.1,
		HorizontalFactor: 0.5,
		JumpNudge:        20,
		FastFallSpeed:    100,
		Elastic:          1,
		Inelastic:        0,
	}
}
