package main

import (
	"fmt"

	"janggi/internal/janggi"
)

func main() {
	g := janggi.NewGame()
	fmt.Println(g.EncodeBoard())
	fmt.Println("turn:", g.Turn())

	total := 0
	for _, c := range janggi.AllCoords() {
		total += len(g.MovesFrom(c))
	}
	fmt.Println("pseudo destinations:", total)
	fmt.Printf("hash: %016x\n", g.Hash())
}
