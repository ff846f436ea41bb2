package main

import (
	"flag"
	"log"
	"math/rand"

	"github.com/Y02WK/JanggiGame/internal/janggi"
)

// Random self-play smoke driver: plays uniformly random legal moves until a
// win or the move cap, logging the result.
func main() {
	seed := flag.Int64("seed", 1, "rng seed")
	maxMoves := flag.Int("maxmoves", 200, "max moves to play")
	verbose := flag.Bool("v", false, "log every move")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	g := janggi.NewGame()

	for i := 0; i < *maxMoves && g.State() == janggi.Unfinished; i++ {
		moves := g.Position().GenerateLegalMoves()
		if len(moves) == 0 {
			log.Printf("move %d: %s has no legal move, passing", i+1, g.Turn())
			from := janggi.LabelOf(0)
			if !g.MakeMove(from, from) {
				log.Printf("move %d: %s cannot even pass, stopping", i+1, g.Turn())
				break
			}
			continue
		}

		mv := moves[rng.Intn(len(moves))]
		from, to := janggi.LabelOf(mv.From), janggi.LabelOf(mv.To)
		if !g.MakeMove(from, to) {
			log.Fatalf("move %d: legal move %s %s rejected", i+1, from, to)
		}
		if *verbose {
			log.Printf("move %d: %s %s", i+1, from, to)
		}
	}

	log.Printf("selfplay finished: %s", g.State())
	log.Printf("captured red: %d, captured blue: %d",
		len(g.Captured(janggi.Red)), len(g.Captured(janggi.Blue)))
}
