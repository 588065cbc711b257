package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/chrono/common"
	"github.com/milk9111/chrono/progress"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode (hot-reload prefabs from ./prefabs)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	level := flag.Int("level", -1, "start this level index directly, skipping the menu")
	progressPath := flag.String("progress", "", "progress file (default: <user config dir>/chrono/progress.yaml)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	path := *progressPath
	if path == "" {
		p, err := progress.DefaultPath()
		if err != nil {
			log.Printf("progress disabled: %v", err)
		}
		path = p
	}
	var store *progress.FileStore
	if path != "" {
		store = progress.Open(path)
		if *debug {
			log.Printf("progress: %s (unlocked %d)", store.Path(), store.MaxUnlocked())
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("chrono")
	ebiten.SetTPS(common.TPS)

	game := NewGame(store, *debug, *level)
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
