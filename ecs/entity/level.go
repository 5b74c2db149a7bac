package entity

import (
	"fmt"
	"log"

	"github.com/milk9111/jumpwiz/ecs"
	"github.com/milk9111/jumpwiz/ecs/component"
	"github.com/milk9111/jumpwiz/levels"
	"github.com/milk9111/jumpwiz/prefabs"
)

const playerEntityType = "player"

// TileSink is told about every tile marker the loader creates.
type TileSink interface {
	Observe(e ecs.Entity, tile component.TileMarker)
}

// LoadLevelToWorld adds the level geometry resource, one TileMarker entity
// per solid collision cell, and the level's point entities. Colliders are
// built later by the tile collider system.
func LoadLevelToWorld(world *ecs.World, lvl *levels.Level, geo component.LevelGeometry, sink TileSink) error {
	if world == nil || lvl == nil {
		return fmt.Errorf("load level: nil world or level")
	}

	geoEntity := world.CreateEntity()
	if err := ecs.Add(world, geoEntity, component.LevelGeometryComponent, geo); err != nil {
		return fmt.Errorf("load level: geometry: %w", err)
	}

	for _, cell := range lvl.SolidCells() {
		tile := component.TileMarker{Col: cell.Col, Row: cell.Row}
		e := world.CreateEntity()
		if err := ecs.Add(world, e, component.TileMarkerComponent, tile); err != nil {
			return fmt.Errorf("load level: tile (%d,%d): %w", cell.Col, cell.Row, err)
		}
		if sink != nil {
			sink.Observe(e, tile)
		}
	}

	if spawn, ok := lvl.FindEntity(playerEntityType); ok {
		pos := geo.TileCenter(spawn.X, spawn.Y)
		if _, err := NewPlayerAt(world, pos.X, pos.Y); err != nil {
			return fmt.Errorf("load level: player: %w", err)
		}
	}
	for _, ent := range lvl.Entities {
		if ent.Type != playerEntityType {
			log.Printf("LoadLevelToWorld: ignoring entity type %q", ent.Type)
		}
	}

	return nil
}

// AddFloor adds a static strip collider outside the tile grid.
func AddFloor(world *ecs.World, floor prefabs.FloorSpec) (ecs.Entity, error) {
	if floor.Width <= 0 || floor.Height <= 0 {
		return 0, fmt.Errorf("floor: invalid size %vx%v", floor.Width, floor.Height)
	}
	e := world.CreateEntity()
	if err := ecs.Add(world, e, component.TransformComponent, component.Transform{X: floor.X, Y: floor.Y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, err
	}
	if err := ecs.Add(world, e, component.PhysicsBodyComponent, component.PhysicsBody{
		Width:      floor.Width,
		Height:     floor.Height,
		Friction:   component.StaticFriction,
		Elasticity: component.StaticElasticity,
		Static:     true,
	}); err != nil {
		return 0, err
	}
	return e, nil
}
