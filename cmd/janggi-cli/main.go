package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/Y02WK/JanggiGame/internal/janggi"
)

// Interactive text front end. Moves are entered as two labels ("a4 a5"),
// "pass" passes the turn, "quit" exits.
func main() {
	g := janggi.NewGame()
	in := bufio.NewScanner(os.Stdin)

	for g.State() == janggi.Unfinished {
		fmt.Println(g.Position().Render())
		if g.InCheck(g.Turn()) {
			fmt.Printf("%s is in check\n", g.Turn())
		}
		fmt.Printf("%s to move> ", g.Turn())
		if !in.Scan() {
			fmt.Println()
			return
		}

		fields := strings.Fields(strings.ToLower(in.Text()))
		var from, to string
		switch {
		case len(fields) == 1 && fields[0] == "quit":
			return
		case len(fields) == 1 && fields[0] == "pass":
			from = janggi.LabelOf(0)
			to = from
		case len(fields) == 2:
			from, to = fields[0], fields[1]
		default:
			fmt.Println("enter a move like: a4 a5")
			continue
		}

		if !g.MakeMove(from, to) {
			fmt.Println("illegal move")
		}
	}

	fmt.Println(g.Position().Render())
	fmt.Println("game over:", g.State())
}
