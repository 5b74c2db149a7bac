package system

import (
	"fmt"

	"github.com/milk9111/jumpwiz/ecs"
	"github.com/milk9111/jumpwiz/ecs/component"
)

// PlayerView is a read-only snapshot of the controlled body after a tick.
type PlayerView struct {
	X, Y     float64
	VX, VY   float64
	Facing   float64
	Grounded bool
	Charge   component.JumpCharge
}

func (v PlayerView) String() string {
	return fmt.Sprintf("pos=(%.1f,%.1f) vel=(%.1f,%.1f) facing=%+.0f grounded=%v charge=%v",
		v.X, v.Y, v.VX, v.VY, v.Facing, v.Grounded, v.Charge)
}

// ViewPlayer reads the snapshot of the single controlled body.
func ViewPlayer(w *ecs.World) (PlayerView, bool) {
	if w == nil {
		return PlayerView{}, false
	}
	e, n := w.Single(component.CharacterControllerComponent.Kind(), component.PhysicsBodyComponent.Kind())
	if n != 1 {
		return PlayerView{}, false
	}

	var view PlayerView
	if transform, ok := ecs.Get(w, e, component.TransformComponent); ok {
		view.X = transform.X
		view.Y = transform.Y
	}
	if bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent); ok && bodyComp.Body != nil {
		pos := bodyComp.Body.Position()
		vel := bodyComp.Body.Velocity()
		view.X, view.Y = pos.X, pos.Y
		view.VX, view.VY = vel.X, vel.Y
	}
	state, ok := ecs.Get(w, e, component.ControllerStateComponent)
	if !ok {
		state = component.NewControllerState()
	}
	view.Facing = state.Facing
	view.Grounded = state.Grounded
	view.Charge = state.Charge
	return view, true
}
