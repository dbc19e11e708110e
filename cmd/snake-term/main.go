package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"snake/internal/app"
	"snake/internal/core"
	"snake/internal/snake"
	"snake/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	// The screen owns the terminal until Fini, so session logs are held back
	// and written out afterwards.
	var logs bytes.Buffer
	game := snake.New(snake.DefaultConfig(), cfg.RNG(), core.SystemClock{})
	session := app.NewSession(game, log.New(&logs, "", log.LstdFlags))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = term.New(screen, session).Run(ctx, cfg.TPS)
	stop()
	screen.Fini()
	os.Stderr.Write(logs.Bytes())
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
