//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"snake/internal/app"
	"snake/internal/core"
	"snake/internal/snake"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	game := snake.New(snake.DefaultConfig(), cfg.RNG(), core.SystemClock{})
	session := app.NewSession(game, log.Default())
	side := game.Config().FrameSize()

	ebiten.SetWindowTitle("Snake")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(side, side)

	if err := ebiten.RunGame(app.New(session, cfg.Mute)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
