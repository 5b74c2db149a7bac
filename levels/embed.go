package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

// CollisionLayer is the layer name whose solid cells become tile colliders.
const CollisionLayer = "Collision"

// solidCell is the cell value that marks a solid tile.
const solidCell = 1

var ErrUnknownLevel = errors.New("levels: unknown level")

// Level is a grid of Width x Height cells per layer, stored row-major with
// row 0 at the top, plus point entities in cell coordinates.
type Level struct {
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	Layers    [][]int     `json:"layers"`
	LayerMeta []LayerMeta `json:"layer_meta,omitempty"`
	Entities  []Entity    `json:"entities,omitempty"`
}

type LayerMeta struct {
	Name    string `json:"name"`
	Physics bool   `json:"physics"`
}

type Entity struct {
	Type  string                 `json:"type"`
	X     int                    `json:"x"`
	Y     int                    `json:"y"`
	Props map[string]interface{} `json:"props,omitempty"`
}

// Cell is a grid coordinate with the row counted upward from the bottom.
type Cell struct {
	Col int
	Row int
}

// LoadLevelFromFS reads a level, preferring levels/<name> on disk.
func LoadLevelFromFS(name string) (*Level, error) {
	data, err := os.ReadFile(filepath.Join("levels", name))
	if err != nil {
		data, err = fs.ReadFile(LevelsFS, name)
	}
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	return Parse(data)
}

// LoadFile reads a level from an arbitrary path.
func LoadFile(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal: %w", err)
	}
	if err := lvl.validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

func (l *Level) validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("levels: invalid size %dx%d", l.Width, l.Height)
	}
	for i, layer := range l.Layers {
		if len(layer) != l.Width*l.Height {
			return fmt.Errorf("levels: layer %d has %d cells, want %d", i, len(layer), l.Width*l.Height)
		}
	}
	return nil
}

// List returns the embedded level file names in order.
func List() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

// Resolve maps a level index ("0") or name ("level_0", "level_0.json") to an
// embedded file name.
func Resolve(ref string) (string, error) {
	names := List()
	if idx, err := strconv.Atoi(ref); err == nil {
		if idx < 0 || idx >= len(names) {
			return "", fmt.Errorf("%w: index %d of %d", ErrUnknownLevel, idx, len(names))
		}
		return names[idx], nil
	}
	name := ref
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	for _, n := range names {
		if n == name {
			return n, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLevel, ref)
}

// SolidCells returns the solid cells of every collision layer. A layer counts
// when it is named CollisionLayer or flagged as physics.
func (l *Level) SolidCells() []Cell {
	var cells []Cell
	for i, layer := range l.Layers {
		if !l.isCollisionLayer(i) {
			continue
		}
		for idx, v := range layer {
			if v != solidCell {
				continue
			}
			col := idx % l.Width
			row := idx / l.Width
			cells = append(cells, Cell{Col: col, Row: l.Height - 1 - row})
		}
	}
	return cells
}

func (l *Level) isCollisionLayer(i int) bool {
	if i >= len(l.LayerMeta) {
		return false
	}
	meta := l.LayerMeta[i]
	return meta.Physics || meta.Name == CollisionLayer
}

// FindEntity returns the first entity of the given type with its Y flipped
// so rows count upward.
func (l *Level) FindEntity(typ string) (Entity, bool) {
	for _, e := range l.Entities {
		if e.Type == typ {
			e.Y = l.Height - 1 - e.Y
			return e, true
		}
	}
	return Entity{}, false
}
