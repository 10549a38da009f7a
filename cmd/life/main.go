//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lifeboard/internal/app"
	"lifeboard/internal/audio"
	"lifeboard/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	var sound session.Audio
	loop, err := audio.NewLoop(cfg.Volume)
	if err != nil {
		log.Printf("audio disabled: %v", err)
	} else {
		defer loop.Close()
		sound = loop
	}

	sess, err := cfg.NewSession(sound)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sess, cfg)

	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
