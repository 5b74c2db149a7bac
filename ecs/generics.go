package ecs

import "github.com/milk9111/jumpwiz/ecs/component"

// Add attaches value to e, replacing any previous value of the same kind.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value T) error {
	if w == nil {
		return component.ErrEntityNotAlive
	}
	v := value
	return w.AddComponent(e, handle.Kind().ID(), &v)
}

func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if w == nil {
		return false
	}
	return w.RemoveComponent(e, handle.Kind().ID())
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if w == nil {
		return false
	}
	return w.HasComponent(e, handle.Kind().ID())
}

// Get returns a copy of the component. Use Add to write it back.
func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (T, bool) {
	var zero T
	ptr, ok := getPtr(w, e, handle)
	if !ok {
		return zero, false
	}
	return *ptr, true
}

// ForEach calls fn for every entity holding the component. fn may mutate the
// value in place but must not add or remove components of the same kind.
func ForEach[T any](w *World, handle component.ComponentHandle[T], fn func(e Entity, v *T)) {
	if w == nil || fn == nil {
		return
	}
	store, ok := w.stores[handle.Kind().ID()]
	if !ok {
		return
	}
	ids := append([]int(nil), store.Entities()...)
	for _, id := range ids {
		e, alive := w.entities.handle(id)
		if !alive {
			continue
		}
		if ptr, ok := store.Get(id).(*T); ok {
			fn(e, ptr)
		}
	}
}

func getPtr[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	if w == nil {
		return nil, false
	}
	value, ok := w.GetComponent(e, handle.Kind().ID())
	if !ok {
		return nil, false
	}
	ptr, ok := value.(*T)
	return ptr, ok && ptr != nil
}
