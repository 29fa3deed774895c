//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"driftfield/internal/app"
	"driftfield/internal/core"
	"driftfield/internal/stage"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	log.SetPrefix("driftfield: ")
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	settings, err := cfg.Settings()
	if err != nil {
		log.Fatalf("settings: %v", err)
	}

	st := stage.New(settings, core.Size{W: cfg.Width, H: cfg.Height})
	game := app.New(st, cfg.Debug)

	ebiten.SetWindowTitle("driftfield - " + settings.Preset)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
