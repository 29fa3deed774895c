package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"driftfield/internal/app"
	"driftfield/internal/stage"
	"driftfield/internal/term"

	"github.com/gdamore/tcell/v2"
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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("screen init: %v", err)
	}

	cols, rows := screen.Size()
	st := stage.New(settings, term.PixelSize(cols, rows))
	sess := term.NewSession(screen, st)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = sess.Run(ctx)
	stop()
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
	log.Printf("stopped after %d ticks", st.Field.Ticks())
}
