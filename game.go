package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/jumpwiz/prefabs"
	"github.com/milk9111/jumpwiz/sim"
	"golang.org/x/image/colornames"
)

type Game struct {
	sim     *sim.Sim
	spec    prefabs.WorldSpec
	level   string
	debug   bool
	watcher *prefabs.Watcher
}

func NewGame(spec prefabs.WorldSpec, levelName string, debug, watch bool) (*Game, error) {
	s, err := sim.New(spec, levelName, EbitenInput{})
	if err != nil {
		return nil, err
	}
	g := &Game{
		sim:   s,
		spec:  spec,
		level: levelName,
		debug: debug,
	}
	if watch {
		w, err := prefabs.NewWatcher("prefabs", "levels")
		if err != nil {
			log.Printf("Game: hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug = !g.debug
	}
	g.pollReload()
	g.sim.Tick()
	return nil
}

// pollReload rebuilds the whole simulation when a prefab or level changes on
// disk. A broken file keeps the current simulation running.
func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	changed := ""
drain:
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				break drain
			}
			changed = path
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				break drain
			}
			log.Printf("Game: watcher: %v", err)
		default:
			break drain
		}
	}
	if changed == "" {
		return
	}

	spec, err := prefabs.LoadWorldSpec()
	if err != nil {
		log.Printf("Game: reload after %s: %v", changed, err)
		return
	}
	s, err := sim.New(spec, g.level, EbitenInput{})
	if err != nil {
		log.Printf("Game: reload after %s: %v", changed, err)
		return
	}
	log.Printf("Game: reloaded %s after change to %s", s.Level(), changed)
	g.sim = s
	g.spec = spec
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)
	drawPhysicsDebug(g.sim.Space(), g.sim.World(), screen, g.spec.Debug.Zoom)
	if g.debug {
		drawPlayerStateDebug(g.sim.World(), screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.spec.Window.Width, g.spec.Window.Height
}
