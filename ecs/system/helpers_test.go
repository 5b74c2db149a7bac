package system

import (
	"math"
	"testing"

	"github.com/milk9111/jumpwiz/ecs"
	"github.com/milk9111/jumpwiz/ecs/component"
	"github.com/milk9111/jumpwiz/movement"
	"github.com/stretchr/testify/require"
)

const (
	testGravity = -2048.0
	testDt      = 1.0 / 60.0
	testRadius  = 28.0
)

// testSim is a minimal tick pipeline over a 16 cell map in a 1000 unit
// window, so each tile is 62.5 units and the grid spans -500..500.
type testSim struct {
	w         *ecs.World
	tiles     *TileColliderSystem
	physics   *PhysicsSystem
	control   *ControllerSystem
	input     *ScriptedInput
	scheduler *ecs.Scheduler
}

func newTestSim(t *testing.T) *testSim {
	t.Helper()
	s := &testSim{
		w:       ecs.NewWorld(),
		tiles:   NewTileColliderSystem(),
		physics: NewPhysicsSystem(testGravity, testDt),
		input:   &ScriptedInput{},
	}
	s.control = NewControllerSystem(s.physics, movement.DefaultTuning())
	s.scheduler = ecs.NewScheduler(
		NewInputSystem(s.input),
		s.tiles,
		s.physics.SyncStage(),
		s.control,
		s.physics.StepStage(),
		NewFacingSystem(),
	)

	geo := s.w.CreateEntity()
	require.NoError(t, ecs.Add(s.w, geo, component.LevelGeometryComponent, component.GeometryFromWindow(512, 16, 1000)))
	return s
}

func (s *testSim) addMarker(t *testing.T, col, row int) ecs.Entity {
	t.Helper()
	e := s.w.CreateEntity()
	tile := component.TileMarker{Col: col, Row: row}
	require.NoError(t, ecs.Add(s.w, e, component.TileMarkerComponent, tile))
	s.tiles.Observe(e, tile)
	return e
}

// addFloor lays row 0 across the whole map. Its top edge sits at y=-437.5.
func (s *testSim) addFloor(t *testing.T) {
	for col := 0; col < 16; col++ {
		s.addMarker(t, col, 0)
	}
}

func (s *testSim) addPlayer(t *testing.T, x, y float64) ecs.Entity {
	t.Helper()
	g := math.Abs(testGravity)
	e := s.w.CreateEntity()
	require.NoError(t, ecs.Add(s.w, e, component.PlayerTagComponent, component.PlayerTag{}))
	require.NoError(t, ecs.Add(s.w, e, component.TransformComponent, component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}))
	require.NoError(t, ecs.Add(s.w, e, component.PhysicsBodyComponent, component.PhysicsBody{
		Radius:        testRadius,
		Mass:          1,
		FixedRotation: true,
	}))
	require.NoError(t, ecs.Add(s.w, e, component.CharacterControllerComponent, component.CharacterController{
		Movement: component.NewMovementConfig(0.2*g, 0.65*g, 0.45*math.Pi),
		Probe:    component.ProbeConfig{Scale: 0.96, MaxDistance: 10, Samples: 4},
	}))
	require.NoError(t, ecs.Add(s.w, e, component.ControllerStateComponent, component.NewControllerState()))
	require.NoError(t, ecs.Add(s.w, e, component.InputComponent, component.Input{}))
	return e
}

func (s *testSim) run(ticks int) {
	for i := 0; i < ticks; i++ {
		s.scheduler.Update(s.w)
	}
}

func (s *testSim) view(t *testing.T) PlayerView {
	t.Helper()
	v, ok := ViewPlayer(s.w)
	require.True(t, ok)
	return v
}
