package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"emojidj/internal/config"
	"emojidj/internal/game"
)

func main() {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Emoji DJ")

	g, err := game.New()
	if err == nil {
		err = ebiten.RunGame(g)
	}
	if err != nil && !errors.Is(err, ebiten.Termination) {
		_ = zenity.Error(err.Error(), zenity.Title("Emoji DJ"))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
