package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"gridfall/config"
)

func main() {
	game := NewGame()

	windowWidth, windowHeight := config.GetWindowSize()
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Gridfall")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
