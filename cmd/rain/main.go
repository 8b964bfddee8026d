//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"neon-rain/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.CommandLine.Usage = app.Usage(flag.CommandLine)
	flag.Parse()

	logger := log.New(os.Stderr, "rain: ", log.LstdFlags)
	game, err := app.New(cfg, logger)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("neon-rain")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
