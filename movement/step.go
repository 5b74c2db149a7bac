package movement

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/jumpwiz/ecs/component"
)

// Step is everything one controlled body exposes to the pipeline for a
// single tick. Stages read the inputs and rewrite Position, Velocity,
// Elasticity and State in place.
type Step struct {
	Config component.MovementConfig
	Tuning Tuning
	Input  component.Input
	Hits   []component.ShapeHit

	// Contacts holds the world-space normals of the surfaces touching the
	// body after the last solver step, pointing away from each surface.
	Contacts []cp.Vector

	// Rotation of the body in radians.
	Rotation float64
	Dt       float64

	Position   cp.Vector
	Velocity   cp.Vector
	Elasticity float64
	State      component.ControllerState

	// Supported is set when a walkable surface is in contact with the body,
	// not merely within probe reach.
	Supported bool

	// Launched is set on the tick a jump impulse was applied.
	Launched bool
}

// Stage is one ordered step of the controller pipeline.
type Stage func(s *Step)

// Pipeline is the fixed stage order. Each stage consumes what the previous
// one wrote: the ground fact, then velocity and charge, then final velocity.
var Pipeline = []Stage{
	UpdateGrounded,
	ResolveHorizontal,
	UpdateJumpCharge,
	UpdateElasticity,
}

// Run executes every stage of the pipeline in order.
func Run(s *Step) {
	if s == nil {
		return
	}
	s.Launched = false
	for _, stage := range Pipeline {
		stage(s)
	}
}
