package entity

import (
	"fmt"

	"github.com/milk9111/jumpwiz/ecs"
)

const playerPrefab = "player.yaml"

// NewPlayerAt builds the player prefab and moves it to (x, y).
func NewPlayerAt(w *ecs.World, x, y float64) (ecs.Entity, error) {
	entity, err := BuildEntity(w, playerPrefab)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, entity, x, y, 0); err != nil {
		return 0, fmt.Errorf("player: override transform: %w", err)
	}
	return entity, nil
}
