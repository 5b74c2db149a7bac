package system

import (
	"log"

	"github.com/milk9111/jumpwiz/ecs"
	"github.com/milk9111/jumpwiz/ecs/component"
	"github.com/milk9111/jumpwiz/movement"
	"github.com/milk9111/jumpwiz/physics"
)

// ControllerSystem drives the single character-controlled body. Each tick it
// casts the ground probe, runs the movement pipeline and writes velocity,
// position and restitution back to the chipmunk body.
type ControllerSystem struct {
	physics *PhysicsSystem
	tuning  movement.Tuning
	casters map[ecs.Entity]*physics.Caster

	// matches from the previous tick, so a missing body is logged once
	lastMatches int
}

func NewControllerSystem(ps *PhysicsSystem, tuning movement.Tuning) *ControllerSystem {
	return &ControllerSystem{
		physics:     ps,
		tuning:      tuning,
		casters:     make(map[ecs.Entity]*physics.Caster),
		lastMatches: 1,
	}
}

func (cs *ControllerSystem) Update(w *ecs.World) {
	if cs == nil || w == nil || cs.physics == nil {
		return
	}

	e, n := w.Single(component.CharacterControllerComponent.Kind(), component.PhysicsBodyComponent.Kind())
	cs.reportMatches(n)
	cs.pruneCasters(w)
	if n != 1 {
		return
	}

	controller, _ := ecs.Get(w, e, component.CharacterControllerComponent)
	bodyComp, _ := ecs.Get(w, e, component.PhysicsBodyComponent)
	if bodyComp.Body == nil || bodyComp.Shape == nil {
		// physics has not built the body yet
		return
	}
	body := bodyComp.Body

	state, ok := ecs.Get(w, e, component.ControllerStateComponent)
	if !ok {
		state = component.NewControllerState()
	}
	input, _ := ecs.Get(w, e, component.InputComponent)

	caster := cs.casters[e]
	if caster == nil {
		caster = physics.NewCasterFor(bodyComp, controller.Probe)
		cs.casters[e] = caster
	}
	hits := caster.Cast(cs.physics.Space(), body.Position(), body.Angle(), body)

	step := movement.Step{
		Config:     controller.Movement,
		Tuning:     cs.tuning,
		Input:      input,
		Hits:       hits,
		Contacts:   physics.ContactNormals(body),
		Rotation:   body.Angle(),
		Dt:         cs.physics.Dt(),
		Position:   body.Position(),
		Velocity:   body.Velocity(),
		Elasticity: bodyComp.Shape.Elasticity(),
		State:      state,
	}
	movement.Run(&step)

	if step.Launched {
		body.SetPosition(step.Position)
	}
	body.SetVelocityVector(step.Velocity)
	bodyComp.Shape.SetElasticity(step.Elasticity)
	bodyComp.Elasticity = step.Elasticity

	if err := ecs.Add(w, e, component.ControllerStateComponent, step.State); err != nil {
		log.Printf("ControllerSystem: update state of %v: %v", e, err)
		return
	}
	if err := ecs.Add(w, e, component.ShapeHitsComponent, component.ShapeHits{Hits: hits}); err != nil {
		log.Printf("ControllerSystem: update hits of %v: %v", e, err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent, bodyComp); err != nil {
		log.Printf("ControllerSystem: update body of %v: %v", e, err)
	}
}

// reportMatches logs when the controlled body goes missing or ambiguous and
// again when it recovers, rather than on every tick.
func (cs *ControllerSystem) reportMatches(n int) {
	if n == cs.lastMatches {
		return
	}
	switch {
	case n == 0:
		log.Printf("ControllerSystem: no controlled body, skipping movement")
	case n > 1:
		log.Printf("ControllerSystem: %d controlled bodies, expected one, skipping movement", n)
	case cs.lastMatches != 1:
		log.Printf("ControllerSystem: controlled body found, resuming movement")
	}
	cs.lastMatches = n
}

func (cs *ControllerSystem) pruneCasters(w *ecs.World) {
	for e := range cs.casters {
		if !w.IsAlive(e) {
			delete(cs.casters, e)
		}
	}
}
