package physics

import (
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/jumpwiz/ecs/component"
)

const defaultCastSamples = 4

var castDown = cp.Vector{X: 0, Y: -1}

// Caster sweeps a probe shape through a space. Chipmunk has no native shape
// cast, so the sweep is sampled: the probe is placed at evenly spaced offsets
// along the cast direction and overlap-tested with Space.ShapeQuery. The
// first offset at which a shape overlaps is its time of impact.
type Caster struct {
	body        *cp.Body
	shape       *cp.Shape
	direction   cp.Vector
	maxDistance float64
	samples     int
}

// NewCircleCaster builds a caster for a circle collider of the given radius.
func NewCircleCaster(radius float64, probe component.ProbeConfig) *Caster {
	body := cp.NewKinematicBody()
	shape := cp.NewCircle(body, radius*probeScale(probe), cp.Vector{})
	return newCaster(body, shape, probe)
}

// NewBoxCaster builds a caster for a width x height box collider.
func NewBoxCaster(width, height float64, probe component.ProbeConfig) *Caster {
	body := cp.NewKinematicBody()
	scale := probeScale(probe)
	shape := cp.NewBox(body, width*scale, height*scale, 0)
	return newCaster(body, shape, probe)
}

// NewCasterFor builds a caster matching a PhysicsBody collider.
func NewCasterFor(pb component.PhysicsBody, probe component.ProbeConfig) *Caster {
	if pb.Radius > 0 {
		return NewCircleCaster(pb.Radius, probe)
	}
	return NewBoxCaster(pb.Width, pb.Height, probe)
}

func newCaster(body *cp.Body, shape *cp.Shape, probe component.ProbeConfig) *Caster {
	samples := probe.Samples
	if samples <= 0 {
		samples = defaultCastSamples
	}
	return &Caster{
		body:        body,
		shape:       shape,
		direction:   castDown,
		maxDistance: probe.MaxDistance,
		samples:     samples,
	}
}

func probeScale(probe component.ProbeConfig) float64 {
	if probe.Scale <= 0 {
		return 1
	}
	return probe.Scale
}

// Cast sweeps the probe from origin and returns one hit per touched shape,
// nearest first. Shapes attached to exclude are ignored.
func (c *Caster) Cast(space *cp.Space, origin cp.Vector, rotation float64, exclude *cp.Body) []component.ShapeHit {
	if c == nil || space == nil {
		return nil
	}

	seen := make(map[*cp.Shape]struct{})
	var hits []component.ShapeHit

	for i := 0; i <= c.samples; i++ {
		distance := c.maxDistance * float64(i) / float64(c.samples)
		c.body.SetPosition(origin.Add(c.direction.Mult(distance)))
		c.body.SetAngle(rotation)
		c.shape.CacheBB()

		space.ShapeQuery(c.shape, func(shape *cp.Shape, points *cp.ContactPointSet) {
			if shape == nil || points == nil || points.Count == 0 {
				return
			}
			if exclude != nil && shape.Body() == exclude {
				return
			}
			if _, ok := seen[shape]; ok {
				return
			}
			seen[shape] = struct{}{}
			hits = append(hits, component.ShapeHit{
				Shape:        shape,
				Normal:       points.Normal,
				Point:        points.Points[0].PointB,
				TimeOfImpact: distance,
			})
		})

		if c.maxDistance <= 0 {
			break
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].TimeOfImpact < hits[j].TimeOfImpact })
	return hits
}
