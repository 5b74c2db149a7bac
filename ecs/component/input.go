package component

// Input stores the per-tick movement intent of an entity: a horizontal axis
// in roughly [-1, 1] plus the jump button level and its edges.
type Input struct {
	MoveX        float64
	JumpPressed  bool
	JumpHeld     bool
	JumpReleased bool
}

var InputComponent = NewComponent[Input]()
