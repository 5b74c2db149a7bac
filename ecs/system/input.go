package system

import (
	"github.com/milk9111/jumpwiz/ecs"
	"github.com/milk9111/jumpwiz/ecs/component"
)

// InputSource produces one tick of player intent.
type InputSource interface {
	Sample() component.Input
}

// InputSystem copies the sampled intent into every Input component. Without
// a source every tick carries an empty intent.
type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	if source == nil {
		source = &ScriptedInput{}
	}
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil {
		return
	}
	sample := i.source.Sample()
	ecs.ForEach(w, component.InputComponent, func(_ ecs.Entity, input *component.Input) {
		*input = sample
	})
}

// ScriptedInput replays a fixed intent per tick, for headless runs and tests.
// Past the end of the script it returns an empty input.
type ScriptedInput struct {
	Frames []component.Input
	tick   int
}

func (s *ScriptedInput) Sample() component.Input {
	if s == nil || s.tick >= len(s.Frames) {
		return component.Input{}
	}
	in := s.Frames[s.tick]
	s.tick++
	return in
}

// HoldJump builds a script that walks for walk ticks, holds jump for hold
// ticks and then releases it.
func HoldJump(moveX float64, walk, hold int) []component.Input {
	frames := make([]component.Input, 0, walk+hold+1)
	for i := 0; i < walk; i++ {
		frames = append(frames, component.Input{MoveX: moveX})
	}
	for i := 0; i < hold; i++ {
		frames = append(frames, component.Input{JumpPressed: i == 0, JumpHeld: true})
	}
	return append(frames, component.Input{JumpReleased: true})
}
