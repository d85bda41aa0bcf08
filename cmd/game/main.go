package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/overkillgames/pacsnake/internal/game"
)

func main() {
	ebiten.SetWindowTitle("PacSnake - No Return")
	ebiten.SetWindowSize(784, 672)
	if err := ebiten.RunGame(game.New()); err != nil {
		log.Fatal(err)
	}
}
