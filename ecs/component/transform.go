package component

// Transform is the world-space pose of an entity. Y points up. ScaleX mirrors
// the sprite: -1 draws it facing left.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
