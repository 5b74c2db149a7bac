package levels

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// NewBordered returns a single collision layer level with a solid floor and
// side walls, and the player spawn just above the floor on the left.
func NewBordered(width, height int) (*Level, error) {
	if width < 3 || height < 3 {
		return nil, fmt.Errorf("levels: %dx%d is too small", width, height)
	}
	layer := make([]int, width*height)
	for y := 0; y < height; y++ {
		layer[y*width] = solidCell
		layer[y*width+width-1] = solidCell
	}
	for x := 0; x < width; x++ {
		layer[(height-1)*width+x] = solidCell
	}
	return &Level{
		Width:     width,
		Height:    height,
		Layers:    [][]int{layer},
		LayerMeta: []LayerMeta{{Name: CollisionLayer, Physics: true}},
		Entities:  []Entity{{Type: "player", X: 1, Y: height - 2}},
	}, nil
}

// Save writes the level as indented JSON, creating the directory if needed.
func Save(path string, lvl *Level) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("levels: save %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("levels: save %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(lvl); err != nil {
		return fmt.Errorf("levels: save %s: %w", path, err)
	}
	return nil
}

// Issues lists problems that would leave the level unplayable.
func (l *Level) Issues() []string {
	var issues []string
	hasCollision := false
	for i := range l.Layers {
		if l.isCollisionLayer(i) {
			hasCollision = true
		}
	}
	if !hasCollision {
		issues = append(issues, "no collision layer")
	}

	players := 0
	for _, e := range l.Entities {
		if !strings.EqualFold(e.Type, "player") {
			continue
		}
		players++
		if e.X < 0 || e.X >= l.Width || e.Y < 0 || e.Y >= l.Height {
			issues = append(issues, fmt.Sprintf("player spawn (%d,%d) outside the grid", e.X, e.Y))
			continue
		}
		if l.solidAt(e.X, e.Y) {
			issues = append(issues, fmt.Sprintf("player spawn (%d,%d) inside a solid tile", e.X, e.Y))
		}
	}
	switch {
	case players == 0:
		issues = append(issues, "no player spawn")
	case players > 1:
		issues = append(issues, fmt.Sprintf("%d player spawns, only the first is used", players))
	}
	return issues
}

// solidAt reports whether the cell at (x, y), row 0 at the top, is solid in
// any collision layer.
func (l *Level) solidAt(x, y int) bool {
	idx := y*l.Width + x
	for i, layer := range l.Layers {
		if l.isCollisionLayer(i) && idx < len(layer) && layer[idx] == solidCell {
			return true
		}
	}
	return false
}

// Overview renders the collision grid as text: '#' solid, 'P' player, '.' empty.
func (l *Level) Overview() string {
	var b strings.Builder
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			ch := byte('.')
			if l.solidAt(x, y) {
				ch = '#'
			}
			for _, e := range l.Entities {
				if strings.EqualFold(e.Type, "player") && e.X == x && e.Y == y {
					ch = 'P'
				}
			}
			b.WriteByte(ch)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
