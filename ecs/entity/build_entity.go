package entity

import (
	"fmt"
	"math"
	"sort"

	"github.com/milk9111/jumpwiz/ecs"
	"github.com/milk9111/jumpwiz/ecs/component"
	"github.com/milk9111/jumpwiz/prefabs"
)

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":           addPlayerTag,
	"input":                addInput,
	"transform":            addTransform,
	"physics_body":         addPhysicsBody,
	"character_controller": addCharacterController,
	"controller_state":     addControllerState,
}

var componentBuildOrder = []string{
	"player_tag",
	"input",
	"transform",
	"physics_body",
	"character_controller",
	"controller_state",
}

// BuildEntity creates an entity from a prefab's component map. On any error
// the half-built entity is destroyed.
func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	return BuildEntityFromSpec(w, prefabPath, spec)
}

func BuildEntityFromSpec(w *ecs.World, prefabPath string, spec prefabs.EntityBuildSpec) (ecs.Entity, error) {
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := w.CreateEntity()

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	build := func(name string) error {
		builder, ok := componentRegistry[name]
		if !ok {
			return fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, name)
		}
		if err := builder(w, e, remaining[name]); err != nil {
			return fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
		return nil
	}

	for _, name := range componentBuildOrder {
		if _, ok := remaining[name]; !ok {
			continue
		}
		if err := build(name); err != nil {
			w.DestroyEntity(e)
			return 0, err
		}
	}

	names := make([]string, 0, len(remaining))
	for name := range remaining {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := build(name); err != nil {
			w.DestroyEntity(e)
			return 0, err
		}
	}

	return e, nil
}

func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y, rotation float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		t = component.Transform{ScaleX: 1, ScaleY: 1}
	}
	t.X = x
	t.Y = y
	t.Rotation = rotation
	return ecs.Add(w, e, component.TransformComponent, t)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any) error {
	return ecs.Add(w, e, component.PlayerTagComponent, component.PlayerTag{})
}

func addInput(w *ecs.World, e ecs.Entity, _ any) error {
	return ecs.Add(w, e, component.InputComponent, component.Input{})
}

func addTransform(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.TransformComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent, component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		ScaleX:   spec.ScaleX,
		ScaleY:   spec.ScaleY,
		Rotation: spec.Rotation,
	})
}

func addPhysicsBody(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.PhysicsBodyComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode physics_body spec: %w", err)
	}
	if spec.Radius <= 0 && (spec.Width <= 0 || spec.Height <= 0) {
		return fmt.Errorf("physics_body needs a radius or a width and height")
	}
	return ecs.Add(w, e, component.PhysicsBodyComponent, component.PhysicsBody{
		Width:         spec.Width,
		Height:        spec.Height,
		Radius:        spec.Radius,
		Mass:          spec.Mass,
		Friction:      spec.Friction,
		Elasticity:    spec.Elasticity,
		Static:        spec.Static,
		FixedRotation: spec.FixedRotation,
	})
}

func addCharacterController(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.CharacterControllerComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode character_controller spec: %w", err)
	}
	if spec.Acceleration < 0 || spec.JumpImpulse < 0 {
		return fmt.Errorf("character_controller: negative acceleration or jump impulse")
	}

	movement := component.MovementConfig{
		Acceleration: spec.Acceleration,
		JumpImpulse:  spec.JumpImpulse,
	}
	if spec.MaxSlopeAngle != nil {
		if *spec.MaxSlopeAngle < 0 || *spec.MaxSlopeAngle > math.Pi {
			return fmt.Errorf("character_controller: max_slope_angle %v out of [0, pi]", *spec.MaxSlopeAngle)
		}
		movement = component.NewMovementConfig(spec.Acceleration, spec.JumpImpulse, *spec.MaxSlopeAngle)
	}

	return ecs.Add(w, e, component.CharacterControllerComponent, component.CharacterController{
		Movement: movement,
		Probe: component.ProbeConfig{
			Scale:       spec.Probe.Scale,
			MaxDistance: spec.Probe.MaxDistance,
			Samples:     spec.Probe.Samples,
		},
	})
}

func addControllerState(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.ControllerStateComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode controller_state spec: %w", err)
	}
	state := component.NewControllerState()
	if spec.Facing < 0 {
		state.Facing = -1
	}
	return ecs.Add(w, e, component.ControllerStateComponent, state)
}
