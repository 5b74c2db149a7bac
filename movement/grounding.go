package movement

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/jumpwiz/ecs/component"
)

var up = cp.Vector{X: 0, Y: 1}

// IsGrounded reports whether any hit is walkable. A hit counts when no slope
// limit is configured, or when its surface normal (pointing away from the
// surface, rotated into world space) is within MaxSlopeAngle of up.
func IsGrounded(hits []component.ShapeHit, rotation float64, cfg component.MovementConfig) bool {
	for _, hit := range hits {
		if !cfg.SlopeLimited {
			return true
		}
		if walkable(cp.ForAngle(rotation).Rotate(hit.Normal.Neg()), cfg) {
			return true
		}
	}
	return false
}

// IsSupported reports whether any contact normal belongs to a walkable
// surface. Without a slope limit any upward-facing contact counts.
func IsSupported(contacts []cp.Vector, cfg component.MovementConfig) bool {
	for _, n := range contacts {
		if !cfg.SlopeLimited {
			if n.Y > 0 {
				return true
			}
			continue
		}
		if walkable(n, cfg) {
			return true
		}
	}
	return false
}

func walkable(surface cp.Vector, cfg component.MovementConfig) bool {
	return math.Abs(AngleBetween(surface, up)) <= cfg.MaxSlopeAngle
}

// AngleBetween returns the signed angle from a to b in (-pi, pi].
func AngleBetween(a, b cp.Vector) float64 {
	return math.Atan2(a.Cross(b), a.Dot(b))
}

// UpdateGrounded recomputes the ground fact from this tick's probe hits and
// whether the body is actually touching that ground.
func UpdateGrounded(s *Step) {
	s.State.Grounded = IsGrounded(s.Hits, s.Rotation, s.Config)
	s.Supported = s.State.Grounded && IsSupported(s.Contacts, s.Config)
}
