package component

import "github.com/jakecoffman/cp"

// ShapeHit is one contact found by the ground probe.
type ShapeHit struct {
	Shape *cp.Shape
	// Normal points from the probe toward the surface, in world space.
	Normal       cp.Vector
	Point        cp.Vector
	TimeOfImpact float64
}

// ShapeHits holds the probe hits of the current tick.
type ShapeHits struct {
	Hits []ShapeHit
}

var ShapeHitsComponent = NewComponent[ShapeHits]()
