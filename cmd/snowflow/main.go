package main

import "snowflow/internal/game"

func main() {
	game.RunDesktop()
}
