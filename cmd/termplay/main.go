// Command termplay drives the controller in a terminal. Tiles and the player
// are drawn as text, so the simulation can be played over ssh.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/jumpwiz/prefabs"
	"github.com/milk9111/jumpwiz/sim"
)

func main() {
	levelName := flag.String("level", "0", "level index or name in levels/ (.json optional)")
	flag.Parse()

	spec, err := prefabs.LoadWorldSpec()
	if err != nil {
		log.Fatal(err)
	}

	input := NewKeyInput(time.Now)
	s, err := sim.New(spec, *levelName, input)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorDefault).Foreground(tcell.ColorWhite))

	run(screen, s, input, sim.TickRate(spec))
}

func run(screen tcell.Screen, s *sim.Sim, input *KeyInput, tps int) {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return
				}
				input.HandleKey(ev)
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			s.Tick()
			draw(screen, s)
		}
	}
}
