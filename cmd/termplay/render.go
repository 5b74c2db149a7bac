package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/jumpwiz/ecs"
	"github.com/milk9111/jumpwiz/ecs/component"
	"github.com/milk9111/jumpwiz/sim"
)

// cellWidth is the number of terminal columns per tile; terminal cells are
// roughly twice as tall as they are wide.
const cellWidth = 2

var (
	styleTile   = tcell.StyleDefault.Foreground(tcell.ColorForestGreen)
	stylePlayer = tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

// draw renders the static colliders, the player and a status line.
func draw(screen tcell.Screen, s *sim.Sim) {
	screen.Clear()
	w := s.World()

	geoEntity, ok := w.First(component.LevelGeometryComponent.Kind())
	if !ok {
		putString(screen, 0, 0, "no level geometry", styleStatus)
		screen.Show()
		return
	}
	geo, _ := ecs.Get(w, geoEntity, component.LevelGeometryComponent)
	rows := int(2 * geo.GridExtent)

	ecs.ForEach(w, component.StaticColliderComponent, func(_ ecs.Entity, c *component.StaticCollider) {
		putString(screen, c.Col*cellWidth, rows-1-c.Row, "##", styleTile)
	})

	view, ok := s.View()
	if !ok {
		putString(screen, 0, rows, "no controlled body", styleStatus)
		screen.Show()
		return
	}
	col, row := worldToCell(geo, view.X, view.Y)
	glyph := "@>"
	if view.Facing < 0 {
		glyph = "<@"
	}
	putString(screen, col*cellWidth, rows-1-row, glyph, stylePlayer)

	status := fmt.Sprintf("%s  tick %d  grounded=%v charge=%v", s.Level(), s.Ticks(), view.Grounded, view.Charge)
	putString(screen, 0, rows, status, styleStatus)
	putString(screen, 0, rows+1, "a/d move, space charge, esc quit", styleStatus)
	screen.Show()
}

// worldToCell returns the grid cell containing the world point.
func worldToCell(geo component.LevelGeometry, x, y float64) (int, int) {
	size := geo.EffectiveTileSize()
	col := int(math.Floor(x/size + geo.GridExtent))
	row := int(math.Floor(y/size + geo.GridExtent))
	return col, row
}

func putString(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
