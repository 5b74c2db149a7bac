package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// WorldSpec is the simulation-wide tuning in world.yaml.
type WorldSpec struct {
	Gravity float64 `yaml:"gravity"`
	TPS     int     `yaml:"tps"`

	Window   WindowSpec `yaml:"window"`
	Tiles    TileSpec   `yaml:"tiles"`
	Jump     JumpSpec   `yaml:"jump"`
	Bounce   BounceSpec `yaml:"bounce"`
	Deadzone *float64   `yaml:"deadzone"`
	Floor    *FloorSpec `yaml:"floor"`
	Debug    DebugSpec  `yaml:"debug"`
}

type WindowSpec struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// TileSpec describes the level grid. MapCells is the number of cells along
// one side of the map; the grid is centred on the world origin.
type TileSpec struct {
	Size     float64 `yaml:"size"`
	MapCells float64 `yaml:"map_cells"`
}

// JumpSpec and BounceSpec fields are pointers so an explicit zero in
// world.yaml is kept apart from a missing key, which falls back to the
// controller default.
type JumpSpec struct {
	ChargeCap        *float64 `yaml:"charge_cap"`
	MinCharge        *float64 `yaml:"min_charge"`
	ChargeBase       *float64 `yaml:"charge_base"`
	HorizontalFactor *float64 `yaml:"horizontal_factor"`
	Nudge            *float64 `yaml:"nudge"`
}

type BounceSpec struct {
	FastFallSpeed *float64 `yaml:"fast_fall_speed"`
	Elastic       *float64 `yaml:"elastic"`
	Inelastic     *float64 `yaml:"inelastic"`
}

// FloorSpec is an optional static strip added beside the level tiles.
type FloorSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type DebugSpec struct {
	Zoom float64 `yaml:"zoom"`
}

func LoadWorldSpec() (WorldSpec, error) {
	return LoadSpec[WorldSpec]("world.yaml")
}
