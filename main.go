package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/jumpwiz/ecs/component"
	"github.com/milk9111/jumpwiz/ecs/system"
	"github.com/milk9111/jumpwiz/prefabs"
	"github.com/milk9111/jumpwiz/sim"
)

func main() {
	debug := flag.Bool("debug", false, "show the controller state overlay (toggle with F1)")
	levelName := flag.String("level", "0", "level index or name in levels/ (.json optional)")
	watch := flag.Bool("watch", false, "reload prefabs and levels from disk when they change")
	headless := flag.Bool("headless", false, "run without a window and print the player each tick")
	ticks := flag.Int("ticks", 240, "number of ticks to run in headless mode")
	flag.Parse()

	spec, err := prefabs.LoadWorldSpec()
	if err != nil {
		log.Fatal(err)
	}

	if *headless {
		if err := runHeadless(spec, *levelName, *ticks); err != nil {
			log.Fatal(err)
		}
		return
	}

	game, err := NewGame(spec, *levelName, *debug, *watch)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowSize(spec.Window.Width, spec.Window.Height)
	ebiten.SetWindowTitle(spec.Window.Title)
	ebiten.SetTPS(sim.TickRate(spec))

	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}

// runHeadless settles the player, walks right, then holds a half second jump.
func runHeadless(spec prefabs.WorldSpec, levelName string, ticks int) error {
	const settle, walk, hold = 60, 30, 30

	input := &system.ScriptedInput{}
	input.Frames = append(input.Frames, make([]component.Input, settle)...)
	input.Frames = append(input.Frames, system.HoldJump(1, walk, hold)...)

	s, err := sim.New(spec, levelName, input)
	if err != nil {
		return err
	}
	for i := 0; i < ticks; i++ {
		s.Tick()
		view, ok := s.View()
		if !ok {
			fmt.Printf("%4d no controlled body\n", s.Ticks())
			continue
		}
		fmt.Printf("%4d %v\n", s.Ticks(), view)
	}
	return nil
}
