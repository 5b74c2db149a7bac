package system

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/jumpwiz/ecs"
	"github.com/milk9111/jumpwiz/ecs/component"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeCharacter
)

const defaultIterations = 20

// PhysicsSystem owns the chipmunk space. Sync and Step are separate stages
// so the character controller can run between body creation and the solver.
type PhysicsSystem struct {
	space    *cp.Space
	gravity  float64
	dt       float64
	entities map[ecs.Entity]*bodyInfo
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	static bool
}

// NewPhysicsSystem creates a space with gravity pulling along -Y and a fixed
// step of dt seconds.
func NewPhysicsSystem(gravity, dt float64) *PhysicsSystem {
	ps := &PhysicsSystem{
		gravity:  gravity,
		dt:       dt,
		entities: make(map[ecs.Entity]*bodyInfo),
	}
	ps.space = newSpace(gravity)
	return ps
}

func newSpace(gravity float64) *cp.Space {
	space := cp.NewSpace()
	space.Iterations = defaultIterations
	space.SetGravity(cp.Vector{X: 0, Y: gravity})
	return space
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// Dt is the fixed step length in seconds.
func (ps *PhysicsSystem) Dt() float64 {
	if ps == nil {
		return 0
	}
	return ps.dt
}

// Update syncs and steps in one call.
func (ps *PhysicsSystem) Update(w *ecs.World) {
	ps.Sync(w)
	ps.Step(w)
}

// SyncStage and StepStage expose the two halves to a scheduler.
func (ps *PhysicsSystem) SyncStage() ecs.System { return ecs.SystemFunc(ps.Sync) }
func (ps *PhysicsSystem) StepStage() ecs.System { return ecs.SystemFunc(ps.Step) }

// Sync creates bodies for new PhysicsBody components and removes bodies of
// entities that are gone.
func (ps *PhysicsSystem) Sync(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	if ps.space == nil {
		ps.space = newSpace(ps.gravity)
	}

	ps.cleanupEntities(w)

	entities := w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind())
	for _, e := range entities {
		if _, ok := ps.entities[e]; ok {
			continue
		}
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
		if !ok {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}

		info := ps.createBodyInfo(transform, bodyComp, ecs.Has(w, e, component.CharacterControllerComponent))
		if info == nil {
			continue
		}
		ps.entities[e] = info

		bodyComp.Body = info.body
		bodyComp.Shape = info.shape
		if err := ecs.Add(w, e, component.PhysicsBodyComponent, bodyComp); err != nil {
			log.Printf("PhysicsSystem: update body of %v: %v", e, err)
		}
	}
}

// Step advances the space by one fixed step and copies body poses back into
// transforms.
func (ps *PhysicsSystem) Step(w *ecs.World) {
	if ps == nil || ps.space == nil || w == nil {
		return
	}
	ps.space.Step(ps.dt)
	ps.syncTransforms(w)
}

func (ps *PhysicsSystem) createBodyInfo(transform component.Transform, bodyComp component.PhysicsBody, isCharacter bool) *bodyInfo {
	if ps.space == nil {
		return nil
	}

	width := bodyComp.Width
	height := bodyComp.Height
	radius := bodyComp.Radius
	if radius <= 0 && (width <= 0 || height <= 0) {
		log.Printf("PhysicsSystem: skipping collider with no size (w=%v h=%v r=%v)", width, height, radius)
		return nil
	}

	center := cp.Vector{X: transform.X, Y: transform.Y}

	if bodyComp.Static {
		var shape *cp.Shape
		if radius > 0 {
			shape = cp.NewCircle(ps.space.StaticBody, radius, center)
		} else {
			bb := cp.BB{L: center.X - width/2, B: center.Y - height/2, R: center.X + width/2, T: center.Y + height/2}
			shape = cp.NewBox2(ps.space.StaticBody, bb, 0)
		}
		shape.SetFriction(bodyComp.Friction)
		shape.SetElasticity(bodyComp.Elasticity)
		shape.SetCollisionType(collisionTypeSolid)
		ps.space.AddShape(shape)
		return &bodyInfo{body: ps.space.StaticBody, shape: shape, static: true}
	}

	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}

	moment := math.Inf(1)
	if !bodyComp.FixedRotation {
		if radius > 0 {
			moment = cp.MomentForCircle(mass, 0, radius, cp.Vector{})
		} else {
			moment = cp.MomentForBox(mass, width, height)
		}
	}

	body := cp.NewBody(mass, moment)
	body.SetPosition(center)
	body.SetAngle(transform.Rotation)
	body.SetAngularVelocity(0)

	var shape *cp.Shape
	if radius > 0 {
		shape = cp.NewCircle(body, radius, cp.Vector{})
	} else {
		shape = cp.NewBox(body, width, height, 0)
	}
	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(bodyComp.Elasticity)
	shape.SetCollisionType(collisionTypeSolid)
	if isCharacter {
		shape.SetCollisionType(collisionTypeCharacter)
	}

	ps.space.AddBody(body)
	ps.space.AddShape(shape)
	return &bodyInfo{body: body, shape: shape}
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	entities := w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind())
	for _, e := range entities {
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
		if !ok || bodyComp.Body == nil || bodyComp.Static {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}
		pos := bodyComp.Body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
		transform.Rotation = bodyComp.Body.Angle()
		_ = ecs.Add(w, e, component.TransformComponent, transform)
	}
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent) {
			continue
		}
		if info.shape != nil {
			ps.space.RemoveShape(info.shape)
		}
		if info.body != nil && !info.static {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
	}
}
