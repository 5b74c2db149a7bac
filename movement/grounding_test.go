package movement

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/jumpwiz/ecs/component"
	"github.com/stretchr/testify/assert"
)

// hitAt builds a probe hit on a surface tilted by angle radians from flat.
// Probe normals point into the surface, so a flat floor yields (0, -1).
func hitAt(angle float64) component.ShapeHit {
	return component.ShapeHit{Normal: cp.ForAngle(math.Pi/2 + angle).Neg()}
}

func TestIsGrounded(t *testing.T) {
	cfg := component.NewMovementConfig(100, 100, math.Pi/4)

	tests := []struct {
		name     string
		hits     []component.ShapeHit
		rotation float64
		cfg      component.MovementConfig
		want     bool
	}{
		{name: "no_hits", hits: nil, cfg: cfg, want: false},
		{name: "flat_floor", hits: []component.ShapeHit{hitAt(0)}, cfg: cfg, want: true},
		{name: "gentle_slope", hits: []component.ShapeHit{hitAt(0.3)}, cfg: cfg, want: true},
		{name: "slope_at_limit", hits: []component.ShapeHit{hitAt(math.Pi/4 - 1e-9)}, cfg: cfg, want: true},
		{name: "negative_slope", hits: []component.ShapeHit{hitAt(-0.6)}, cfg: cfg, want: true},
		{name: "wall_only", hits: []component.ShapeHit{hitAt(math.Pi / 2)}, cfg: cfg, want: false},
		{name: "all_too_steep", hits: []component.ShapeHit{hitAt(1.0), hitAt(-1.2)}, cfg: cfg, want: false},
		{name: "any_walkable_wins", hits: []component.ShapeHit{hitAt(1.2), hitAt(0.1)}, cfg: cfg, want: true},
		{name: "ceiling", hits: []component.ShapeHit{hitAt(math.Pi)}, cfg: cfg, want: false},
		{
			name: "no_slope_limit_accepts_walls",
			hits: []component.ShapeHit{hitAt(math.Pi / 2)},
			cfg:  component.MovementConfig{Acceleration: 1, JumpImpulse: 1},
			want: true,
		},
		{
			name: "no_slope_limit_still_needs_a_hit",
			cfg:  component.MovementConfig{Acceleration: 1, JumpImpulse: 1},
			want: false,
		},
		{
			name:     "rotated_body_sees_wall_as_floor",
			hits:     []component.ShapeHit{{Normal: cp.Vector{X: 1, Y: 0}}},
			rotation: -math.Pi / 2,
			cfg:      cfg,
			want:     true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsGrounded(tc.hits, tc.rotation, tc.cfg))
		})
	}
}

func TestUpdateGroundedIsRecomputedEveryTick(t *testing.T) {
	s := &Step{
		Config: component.NewMovementConfig(100, 100, math.Pi/4),
		State:  component.ControllerState{Grounded: true, Facing: 1},
	}
	UpdateGrounded(s)
	assert.False(t, s.State.Grounded, "stale ground fact must not survive a tick with no hits")

	s.Hits = []component.ShapeHit{hitAt(0)}
	UpdateGrounded(s)
	assert.True(t, s.State.Grounded)
}

func TestIsSupported(t *testing.T) {
	cfg := component.NewMovementConfig(100, 100, math.Pi/4)
	free := component.MovementConfig{Acceleration: 1, JumpImpulse: 1}

	tests := []struct {
		name     string
		contacts []cp.Vector
		cfg      component.MovementConfig
		want     bool
	}{
		{name: "no_contacts", cfg: cfg, want: false},
		{name: "flat_floor", contacts: []cp.Vector{up}, cfg: cfg, want: true},
		{name: "wall", contacts: []cp.Vector{{X: 1}}, cfg: cfg, want: false},
		{name: "ceiling", contacts: []cp.Vector{{Y: -1}}, cfg: cfg, want: false},
		{name: "wall_and_floor", contacts: []cp.Vector{{X: -1}, up}, cfg: cfg, want: true},
		{name: "steep_slope", contacts: []cp.Vector{cp.ForAngle(math.Pi/2 + 1.0)}, cfg: cfg, want: false},
		{name: "no_limit_any_upward", contacts: []cp.Vector{cp.ForAngle(math.Pi/2 + 1.0)}, cfg: free, want: true},
		{name: "no_limit_rejects_ceiling", contacts: []cp.Vector{{Y: -1}}, cfg: free, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsSupported(tc.contacts, tc.cfg))
		})
	}
}

func TestUpdateGroundedNeedsProbeForSupport(t *testing.T) {
	s := &Step{
		Config:   component.NewMovementConfig(100, 100, math.Pi/4),
		Contacts: []cp.Vector{up},
		State:    component.NewControllerState(),
	}
	UpdateGrounded(s)
	assert.False(t, s.State.Grounded)
	assert.False(t, s.Supported)

	s.Hits = []component.ShapeHit{hitAt(0)}
	UpdateGrounded(s)
	assert.True(t, s.State.Grounded)
	assert.True(t, s.Supported)
}

func TestAngleBetween(t *testing.T) {
	assert.InDelta(t, 0, AngleBetween(up, up), 1e-12)
	assert.InDelta(t, math.Pi/2, AngleBetween(cp.Vector{X: 1}, up), 1e-12)
	assert.InDelta(t, -math.Pi/2, AngleBetween(cp.Vector{X: -1}, up), 1e-12)
	assert.InDelta(t, math.Pi, math.Abs(AngleBetween(cp.Vector{Y: -1}, up)), 1e-12)
}
