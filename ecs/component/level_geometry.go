package component

import "github.com/jakecoffman/cp"

// LevelGeometry maps grid cells to world space.
type LevelGeometry struct {
	TileSize float64
	// GridExtent is the number of cells between the grid origin and the
	// world origin on each axis.
	GridExtent float64
	// Scale is the global display scale folded into the effective tile size.
	Scale float64
}

// EffectiveTileSize is the world-space edge length of one cell.
func (g LevelGeometry) EffectiveTileSize() float64 {
	scale := g.Scale
	if scale == 0 {
		scale = 1
	}
	return g.TileSize * scale
}

// TileCenter returns the world-space center of cell (col, row).
func (g LevelGeometry) TileCenter(col, row int) cp.Vector {
	size := g.EffectiveTileSize()
	return cp.Vector{
		X: (float64(col)-g.GridExtent)*size + size/2,
		Y: (float64(row)-g.GridExtent)*size + size/2,
	}
}

// GeometryFromWindow fits a mapCells-wide grid of tileSize pixel tiles into
// a window of the given size, with the grid centred on the world origin.
func GeometryFromWindow(tileSize, mapCells, window float64) LevelGeometry {
	scale := 1.0
	if tileSize > 0 && mapCells > 0 {
		scale = window / (tileSize * mapCells / 2) / 2
	}
	return LevelGeometry{
		TileSize:   tileSize,
		GridExtent: mapCells / 2,
		Scale:      scale,
	}
}

var LevelGeometryComponent = NewComponent[LevelGeometry]()
