package movement

// Bounciness returns the restitution for an airborne or grounded body moving
// at vy. Falling at exactly FastFallSpeed already counts as a hard fall.
func Bounciness(grounded bool, vy float64, t Tuning) float64 {
	if !grounded && -vy >= t.FastFallSpeed {
		return t.Elastic
	}
	return t.Inelastic
}

// UpdateElasticity sets the restitution from the final velocity of the tick.
func UpdateElasticity(s *Step) {
	s.Elasticity = Bounciness(s.State.Grounded, s.Velocity.Y, s.Tuning)
}
