package system

import (
	"log"

	"github.com/milk9111/jumpwiz/ecs"
	"github.com/milk9111/jumpwiz/ecs/component"
)

type pendingTile struct {
	marker ecs.Entity
	tile   component.TileMarker
}

// TileColliderSystem turns TileMarker entities into static colliders. Markers
// are queued when they are observed; each one is converted exactly once and
// its entity destroyed.
type TileColliderSystem struct {
	pending   ecs.Queue[pendingTile]
	queued    map[ecs.Entity]struct{}
	processed map[ecs.Entity]struct{}
}

func NewTileColliderSystem() *TileColliderSystem {
	return &TileColliderSystem{
		queued:    make(map[ecs.Entity]struct{}),
		processed: make(map[ecs.Entity]struct{}),
	}
}

// Observe queues a freshly created marker. The tile coordinates are captured
// now, so the collider is still built if the marker is removed before the
// next tick.
func (ts *TileColliderSystem) Observe(e ecs.Entity, tile component.TileMarker) {
	if ts == nil {
		return
	}
	if _, ok := ts.processed[e]; ok {
		return
	}
	if _, ok := ts.queued[e]; ok {
		return
	}
	ts.queued[e] = struct{}{}
	ts.pending.Push(pendingTile{marker: e, tile: tile})
}

// Pending returns the number of markers waiting for conversion.
func (ts *TileColliderSystem) Pending() int {
	if ts == nil {
		return 0
	}
	return ts.pending.Len()
}

func (ts *TileColliderSystem) Update(w *ecs.World) {
	if ts == nil || w == nil {
		return
	}

	// pick up markers that were added without going through Observe
	ecs.ForEach(w, component.TileMarkerComponent, func(e ecs.Entity, tile *component.TileMarker) {
		ts.Observe(e, *tile)
	})
	if ts.pending.Len() == 0 {
		return
	}

	geoEntity, ok := w.First(component.LevelGeometryComponent.Kind())
	if !ok {
		log.Printf("TileColliderSystem: no level geometry, %d tiles left pending", ts.pending.Len())
		return
	}
	geo, _ := ecs.Get(w, geoEntity, component.LevelGeometryComponent)
	size := geo.EffectiveTileSize()

	for _, p := range ts.pending.Drain() {
		delete(ts.queued, p.marker)
		if _, ok := ts.processed[p.marker]; ok {
			continue
		}
		ts.processed[p.marker] = struct{}{}

		if err := spawnTileCollider(w, geo, size, p.tile); err != nil {
			log.Printf("TileColliderSystem: tile (%d,%d): %v", p.tile.Col, p.tile.Row, err)
		}
		w.DestroyEntity(p.marker)
	}
}

func spawnTileCollider(w *ecs.World, geo component.LevelGeometry, size float64, tile component.TileMarker) error {
	center := geo.TileCenter(tile.Col, tile.Row)

	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.TransformComponent, component.Transform{X: center.X, Y: center.Y, ScaleX: 1, ScaleY: 1}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent, component.PhysicsBody{
		Width:      size,
		Height:     size,
		Friction:   component.StaticFriction,
		Elasticity: component.StaticElasticity,
		Static:     true,
	}); err != nil {
		return err
	}
	return ecs.Add(w, e, component.StaticColliderComponent, component.StaticCollider{
		Col:    tile.Col,
		Row:    tile.Row,
		Width:  size,
		Height: size,
	})
}
