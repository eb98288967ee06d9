package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/shapeshift/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	shapeName := flag.String("shape", "", "initial shape (overrides layout.yaml)")
	script := flag.String("script", "", "sequence script in prefabs/scripts (overrides layout.yaml)")
	dir := flag.String("prefabs", prefabs.Dir, "directory checked for layout and script overrides")
	watch := flag.Bool("watch", true, "reload layout and scripts when they change on disk")
	flag.Parse()

	prefabs.Dir = *dir

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	game, err := NewGame(GameOptions{
		Shape:  *shapeName,
		Script: *script,
		Watch:  *watch,
		Debug:  *debug,
	})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(game.spec.Canvas.Width, game.spec.Canvas.Height)
	ebiten.SetWindowTitle("shapeshift")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
