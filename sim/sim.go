// Package sim assembles a world, its systems and a level into one fixed-step
// simulation. It has no window; the game and headless runner both drive it.
package sim

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/jumpwiz/ecs"
	"github.com/milk9111/jumpwiz/ecs/component"
	"github.com/milk9111/jumpwiz/ecs/entity"
	"github.com/milk9111/jumpwiz/ecs/system"
	"github.com/milk9111/jumpwiz/levels"
	"github.com/milk9111/jumpwiz/movement"
	"github.com/milk9111/jumpwiz/prefabs"
)

const defaultTPS = 60

type Sim struct {
	world     *ecs.World
	physics   *system.PhysicsSystem
	scheduler *ecs.Scheduler
	spec      prefabs.WorldSpec
	level     string
	ticks     int
}

// New builds a simulation for the given level reference (index or name).
func New(spec prefabs.WorldSpec, levelRef string, input system.InputSource) (*Sim, error) {
	name, err := levels.Resolve(levelRef)
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	lvl, err := levels.LoadLevelFromFS(name)
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}

	w := ecs.NewWorld()
	physics := system.NewPhysicsSystem(spec.Gravity, 1/float64(TickRate(spec)))
	tiles := system.NewTileColliderSystem()

	geo := component.GeometryFromWindow(spec.Tiles.Size, spec.Tiles.MapCells, float64(spec.Window.Width))
	if err := entity.LoadLevelToWorld(w, lvl, geo, tiles); err != nil {
		return nil, fmt.Errorf("sim: %s: %w", name, err)
	}
	if spec.Floor != nil {
		if _, err := entity.AddFloor(w, *spec.Floor); err != nil {
			return nil, fmt.Errorf("sim: %w", err)
		}
	}

	s := &Sim{
		world:   w,
		physics: physics,
		spec:    spec,
		level:   name,
	}
	s.scheduler = ecs.NewScheduler(
		system.NewInputSystem(input),
		tiles,
		physics.SyncStage(),
		system.NewControllerSystem(physics, TuningFromSpec(spec)),
		physics.StepStage(),
		system.NewFacingSystem(),
	)
	return s, nil
}

// TuningFromSpec fills the controller tuning from world.yaml, keeping the
// defaults for keys that are absent. Negative values are rejected.
func TuningFromSpec(spec prefabs.WorldSpec) movement.Tuning {
	t := movement.DefaultTuning()
	setIf := func(dst *float64, v *float64) {
		if v != nil && *v >= 0 {
			*dst = *v
		}
	}
	setIf(&t.Deadzone, spec.Deadzone)
	setIf(&t.ChargeCap, spec.Jump.ChargeCap)
	setIf(&t.MinCharge, spec.Jump.MinCharge)
	setIf(&t.ChargeBase, spec.Jump.ChargeBase)
	setIf(&t.HorizontalFactor, spec.Jump.HorizontalFactor)
	setIf(&t.JumpNudge, spec.Jump.Nudge)
	setIf(&t.FastFallSpeed, spec.Bounce.FastFallSpeed)
	setIf(&t.Elastic, spec.Bounce.Elastic)
	setIf(&t.Inelastic, spec.Bounce.Inelastic)
	return t
}

// TickRate is the fixed steps per second, falling back to 60 when world.yaml
// leaves it unset.
func TickRate(spec prefabs.WorldSpec) int {
	if spec.TPS <= 0 {
		return defaultTPS
	}
	return spec.TPS
}

// Tick runs one fixed step.
func (s *Sim) Tick() {
	s.scheduler.Update(s.world)
	s.ticks++
}

func (s *Sim) Ticks() int { return s.ticks }

func (s *Sim) Level() string { return s.level }

func (s *Sim) World() *ecs.World { return s.world }

func (s *Sim) Space() *cp.Space { return s.physics.Space() }

func (s *Sim) Spec() prefabs.WorldSpec { return s.spec }

// View returns the controlled body snapshot after the last tick.
func (s *Sim) View() (system.PlayerView, bool) {
	return system.ViewPlayer(s.world)
}
