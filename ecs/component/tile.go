package component

// TileMarker is a solid level cell emitted by the level loader. Row grows
// upward. The tile collider system converts it and destroys the entity.
type TileMarker struct {
	Col int
	Row int
}

var TileMarkerComponent = NewComponent[TileMarker]()

// StaticCollider records the tile a static collider was built from.
type StaticCollider struct {
	Col    int
	Row    int
	Width  float64
	Height float64
}

var StaticColliderComponent = NewComponent[StaticCollider]()

// Surface of every static collider. Chipmunk multiplies the elasticity of the
// two shapes in contact, so a bouncing body keeps at most StaticElasticity of
// its landing speed and settles after a few rebounds.
const (
	StaticFriction   = 1.0
	StaticElasticity = 0.5
)
