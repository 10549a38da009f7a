package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"lifeboard/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := term.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("terminal: %v", err)
	}
	screen.EnableMouse()

	w, h := screen.Size()
	sess, err := cfg.NewSession(w, h)
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = term.New(screen, sess).Run(ctx)
	stop()
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}
