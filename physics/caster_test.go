package physics

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/jumpwiz/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// groundSpace returns a space with a 200 wide static slab whose top is y=0.
func groundSpace(t *testing.T) (*cp.Space, *cp.Shape) {
	t.Helper()
	space := cp.NewSpace()
	ground := cp.NewBox2(space.StaticBody, cp.BB{L: -100, B: -20, R: 100, T: 0}, 0)
	space.AddShape(ground)
	return space, ground
}

func TestCasterCircle(t *testing.T) {
	probe := component.ProbeConfig{Scale: 0.9, MaxDistance: 4, Samples: 4}

	tests := []struct {
		name    string
		originY float64
		want    int
	}{
		{name: "resting_on_ground", originY: 10, want: 1},
		{name: "just_above_ground", originY: 12, want: 1},
		{name: "out_of_reach", originY: 100, want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			space, ground := groundSpace(t)
			caster := NewCircleCaster(10, probe)

			hits := caster.Cast(space, cp.Vector{X: 0, Y: tc.originY}, 0, nil)
			require.Len(t, hits, tc.want)
			if tc.want == 0 {
				return
			}
			assert.Same(t, ground, hits[0].Shape)
			assert.Less(t, hits[0].Normal.Y, 0.0, "normal should point from probe into the ground")
			assert.LessOrEqual(t, hits[0].TimeOfImpact, probe.MaxDistance)
		})
	}
}

func TestCasterTimeOfImpactGrowsWithGap(t *testing.T) {
	probe := component.ProbeConfig{Scale: 1, MaxDistance: 8, Samples: 8}
	space, _ := groundSpace(t)
	caster := NewBoxCaster(10, 10, probe)

	near := caster.Cast(space, cp.Vector{X: 0, Y: 4}, 0, nil)
	far := caster.Cast(space, cp.Vector{X: 0, Y: 9}, 0, nil)
	require.Len(t, near, 1)
	require.Len(t, far, 1)
	assert.Less(t, near[0].TimeOfImpact, far[0].TimeOfImpact)
}

func TestCasterIgnoresExcludedBody(t *testing.T) {
	probe := component.ProbeConfig{Scale: 0.9, MaxDistance: 4, Samples: 4}
	space, ground := groundSpace(t)

	body := space.AddBody(cp.NewBody(1, math.Inf(1)))
	body.SetPosition(cp.Vector{X: 0, Y: 10})
	space.AddShape(cp.NewCircle(body, 10, cp.Vector{}))

	caster := NewCircleCaster(10, probe)
	hits := caster.Cast(space, body.Position(), 0, body)
	require.Len(t, hits, 1)
	assert.Same(t, ground, hits[0].Shape)
}

func TestCasterNilSafe(t *testing.T) {
	var c *Caster
	assert.Nil(t, c.Cast(cp.NewSpace(), cp.Vector{}, 0, nil))
}
