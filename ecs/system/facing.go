package system

import (
	"github.com/milk9111/jumpwiz/common"
	"github.com/milk9111/jumpwiz/ecs"
	"github.com/milk9111/jumpwiz/ecs/component"
)

// FacingSystem mirrors the sprite of every controlled entity to its facing.
type FacingSystem struct{}

func NewFacingSystem() *FacingSystem {
	return &FacingSystem{}
}

func (f *FacingSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, e := range w.Query(component.ControllerStateComponent.Kind(), component.TransformComponent.Kind()) {
		state, _ := ecs.Get(w, e, component.ControllerStateComponent)
		transform, _ := ecs.Get(w, e, component.TransformComponent)
		scale := common.Sign(state.Facing)
		if transform.ScaleX == scale {
			continue
		}
		transform.ScaleX = scale
		_ = ecs.Add(w, e, component.TransformComponent, transform)
	}
}
