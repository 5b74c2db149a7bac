package ecs

import (
	"sort"

	"github.com/milk9111/jumpwiz/ecs/component"
)

// Query returns live entities holding every listed kind, ordered by slot id.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		store, ok := w.stores[k.ID()]
		if !ok || store.Len() == 0 {
			return nil
		}
		sets = append(sets, store)
	}
	// iterate smallest set
	sort.Slice(sets, func(i, j int) bool { return sets[i].Len() < sets[j].Len() })

	ids := make([]int, 0, sets[0].Len())
outer:
	for _, id := range sets[0].Entities() {
		for _, other := range sets[1:] {
			if !other.Has(id) {
				continue outer
			}
		}
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]Entity, 0, len(ids))
	for _, id := range ids {
		if e, ok := w.entities.handle(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// First returns the lowest-id entity holding every listed kind.
func (w *World) First(kinds ...component.Kind) (Entity, bool) {
	ents := w.Query(kinds...)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

// Single returns the only entity holding every listed kind. It reports the
// number of matches so callers can tell a missing entity from an ambiguous one.
func (w *World) Single(kinds ...component.Kind) (Entity, int) {
	ents := w.Query(kinds...)
	if len(ents) != 1 {
		return 0, len(ents)
	}
	return ents[0], 1
}
