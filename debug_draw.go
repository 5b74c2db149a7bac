package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/jumpwiz/ecs"
	"github.com/milk9111/jumpwiz/ecs/component"
	"github.com/milk9111/jumpwiz/ecs/system"
	"golang.org/x/image/colornames"
)

const (
	debugCircleSegments = 24
	debugDotSize        = 4
	debugStrokeWidth    = 1
)

// drawPhysicsDebug draws every shape in the space with the world origin at
// the centre of the screen. World Y points up, so it is flipped here.
func drawPhysicsDebug(space *cp.Space, w *ecs.World, screen *ebiten.Image, zoom float64) {
	if space == nil || screen == nil {
		return
	}
	if zoom <= 0 {
		zoom = 1
	}
	bounds := screen.Bounds()
	drawer := &physicsDebugDrawer{
		screen: screen,
		halfW:  float64(bounds.Dx()) / 2,
		halfH:  float64(bounds.Dy()) / 2,
		zoom:   zoom,
	}
	cp.DrawSpace(space, drawer)
	drawer.drawHits(w)
}

// drawPlayerStateDebug prints the controller state in the top-left corner.
func drawPlayerStateDebug(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	view, ok := system.ViewPlayer(w)
	if !ok {
		ebitenutil.DebugPrintAt(screen, "no controlled body", 10, 10)
		return
	}
	text := fmt.Sprintf("Grounded: %v\nFacing: %+.0f\nCharge: %v\nPos: %.1f, %.1f\nVel: %.1f, %.1f",
		view.Grounded, view.Facing, view.Charge, view.X, view.Y, view.VX, view.VY)
	ebitenutil.DebugPrintAt(screen, text, 10, 10)
}

type physicsDebugDrawer struct {
	screen *ebiten.Image
	halfW  float64
	halfH  float64
	zoom   float64
}

func (d *physicsDebugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	if radius <= 0 {
		return
	}
	d.drawCircle(pos, radius, toNRGBA(outline))
	end := cp.Vector{X: pos.X + math.Cos(angle)*radius, Y: pos.Y + math.Sin(angle)*radius}
	d.drawLine(pos, end, toNRGBA(outline))
}

func (d *physicsDebugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, toNRGBA(fill))
}

func (d *physicsDebugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, toNRGBA(outline))
	if radius > 0 {
		d.drawCircle(a, radius, toNRGBA(outline))
		d.drawCircle(b, radius, toNRGBA(outline))
	}
}

func (d *physicsDebugDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	d.drawPolygon(verts[:count], toNRGBA(outline))
}

func (d *physicsDebugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	if size <= 0 {
		size = debugDotSize
	}
	half := size / 2
	c := toNRGBA(fill)
	d.drawLine(cp.Vector{X: pos.X - half, Y: pos.Y}, cp.Vector{X: pos.X + half, Y: pos.Y}, c)
	d.drawLine(cp.Vector{X: pos.X, Y: pos.Y - half}, cp.Vector{X: pos.X, Y: pos.Y + half}, c)
}

func (d *physicsDebugDrawer) Flags() uint {
	return cp.DRAW_SHAPES | cp.DRAW_COLLISION_POINTS
}

func (d *physicsDebugDrawer) OutlineColor() cp.FColor {
	return toFColor(colornames.Limegreen)
}

func (d *physicsDebugDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	if shape != nil && shape.Body() != nil && shape.Body().GetType() == cp.BODY_DYNAMIC {
		return toFColor(colornames.Gold)
	}
	return toFColor(colornames.Forestgreen)
}

func (d *physicsDebugDrawer) ConstraintColor() cp.FColor {
	return toFColor(colornames.Orange)
}

func (d *physicsDebugDrawer) CollisionPointColor() cp.FColor {
	return toFColor(colornames.Red)
}

func (d *physicsDebugDrawer) Data() interface{} {
	return nil
}

// drawHits marks the probe contacts of the last tick.
func (d *physicsDebugDrawer) drawHits(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.ShapeHitsComponent, func(_ ecs.Entity, hits *component.ShapeHits) {
		for _, hit := range hits.Hits {
			d.drawCircle(hit.Point, debugDotSize/d.zoom, colornames.Cyan)
			d.drawLine(hit.Point, hit.Point.Sub(hit.Normal.Mult(16/d.zoom)), colornames.Cyan)
		}
	})
}

func (d *physicsDebugDrawer) drawLine(a, b cp.Vector, c color.Color) {
	x1, y1 := d.toScreen(a)
	x2, y2 := d.toScreen(b)
	vector.StrokeLine(d.screen, float32(x1), float32(y1), float32(x2), float32(y2), debugStrokeWidth, c, false)
}

func (d *physicsDebugDrawer) drawPolygon(verts []cp.Vector, c color.Color) {
	for i := 0; i < len(verts); i++ {
		d.drawLine(verts[i], verts[(i+1)%len(verts)], c)
	}
}

func (d *physicsDebugDrawer) drawCircle(center cp.Vector, radius float64, c color.Color) {
	if radius <= 0 {
		return
	}
	points := make([]cp.Vector, 0, debugCircleSegments)
	for i := 0; i < debugCircleSegments; i++ {
		t := (2 * math.Pi) * (float64(i) / float64(debugCircleSegments))
		points = append(points, cp.Vector{X: center.X + math.Cos(t)*radius, Y: center.Y + math.Sin(t)*radius})
	}
	d.drawPolygon(points, c)
}

func (d *physicsDebugDrawer) toScreen(v cp.Vector) (float64, float64) {
	return d.halfW + v.X*d.zoom, d.halfH - v.Y*d.zoom
}

func toFColor(c color.RGBA) cp.FColor {
	return cp.FColor{R: float32(c.R) / 255, G: float32(c.G) / 255, B: float32(c.B) / 255, A: float32(c.A) / 255}
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
