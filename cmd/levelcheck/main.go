// Command levelcheck validates level files and scaffolds new ones.
//
//	levelcheck                      check every embedded level
//	levelcheck -file levels/x.json  check one file on disk
//	levelcheck -new level_2 -size 16
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/milk9111/jumpwiz/levels"
)

func main() {
	file := flag.String("file", "", "level file on disk to check")
	newName := flag.String("new", "", "write a new bordered level to levels/<name>.json")
	size := flag.Int("size", 16, "cells per side for -new")
	quiet := flag.Bool("q", false, "only print issues")
	flag.Parse()

	if *newName != "" {
		if err := scaffold(*newName, *size); err != nil {
			log.Fatal(err)
		}
		return
	}

	failed := false
	check := func(name string, lvl *levels.Level) {
		issues := lvl.Issues()
		if !*quiet {
			fmt.Printf("%s (%dx%d, %d solid cells)\n%s", name, lvl.Width, lvl.Height, len(lvl.SolidCells()), lvl.Overview())
		}
		for _, issue := range issues {
			fmt.Printf("%s: %s\n", name, issue)
			failed = true
		}
	}

	if *file != "" {
		lvl, err := levels.LoadFile(*file)
		if err != nil {
			log.Fatal(err)
		}
		check(*file, lvl)
	} else {
		for _, name := range levels.List() {
			lvl, err := levels.LoadLevelFromFS(name)
			if err != nil {
				log.Printf("levelcheck: %v", err)
				failed = true
				continue
			}
			check(name, lvl)
		}
	}

	if failed {
		os.Exit(1)
	}
}

func scaffold(name string, size int) error {
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	path := filepath.Join("levels", name)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("levelcheck: %s already exists", path)
	}
	lvl, err := levels.NewBordered(size, size)
	if err != nil {
		return err
	}
	if err := levels.Save(path, lvl); err != nil {
		return err
	}
	log.Printf("levelcheck: wrote %s", path)
	return nil
}
