package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/rs/zerolog"

	"baghchal/engine"
	"baghchal/game"
)

type config struct {
	tigersAI  bool
	goatsAI   bool
	timeLimit int
	verbose   bool
}

func main() {
	cfg := parseFlags()
	if cfg.verbose {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}

	g := engine.NewGame()
	g.SetTimeLimit(cfg.timeLimit)

	printInstructions()
	fmt.Println("Current board:")
	printBoard(g.Board())

	in := bufio.NewScanner(os.Stdin)
	tigersTurn := false // Goats open the game
	for !g.IsGameOver() {
		if tigersTurn {
			fmt.Println("\nTiger's turn")
			if cfg.tigersAI {
				if !g.AIMoveTiger() {
					break
				}
				fmt.Printf("Tiger moved! Captured goats: %d\n", g.Board().CapturedGoats)
			} else {
				quit, moved := tigerTurn(g, in)
				if quit {
					break
				}
				if !moved {
					continue
				}
			}
		} else {
			fmt.Println("\nGoat's turn")
			if cfg.goatsAI {
				if !g.AIMoveGoat() {
					break
				}
				fmt.Printf("Goats remaining to place: %d\n", g.Board().GoatsInHand)
			} else {
				quit, moved := goatTurn(g, in)
				if quit {
					break
				}
				if !moved {
					continue
				}
			}
		}

		fmt.Println("\nCurrent board:")
		printBoard(g.Board())
		tigersTurn = !tigersTurn
	}

	fmt.Println("\nGame ended!")
	fmt.Println("Final board state:")
	printBoard(g.Board())
	fmt.Printf("Captured goats: %d\n", g.Board().CapturedGoats)
	if w := g.Winner(); w != game.NoWinner {
		fmt.Printf("Winner: %s\n", w)
	}
}

func parseFlags() config {
	cfg := config{}
	flag.BoolVar(&cfg.tigersAI, "ai-tigers", false, "let the computer play the tigers")
	flag.BoolVar(&cfg.goatsAI, "ai-goats", false, "let the computer play the goats")
	flag.IntVar(&cfg.timeLimit, "time-limit", engine.DefaultTimeLimit, "AI thinking time in seconds (1-10)")
	flag.BoolVar(&cfg.verbose, "v", false, "log AI move decisions")
	flag.Parse()
	return cfg
}

// tigerTurn reads and applies one human tiger move. It returns whether the
// player quit, and whether a move was applied (false means ask again).
func tigerTurn(g *engine.Game, in *bufio.Scanner) (quit, moved bool) {
	from, ok := readPosition(g, in, "Enter tiger position to move from (0-24): ")
	if !ok {
		return true, false
	}
	g.SelectPosition(from)

	to, ok := readPosition(g, in, "Enter position to move to (0-24): ")
	g.ClearSelection()
	if !ok {
		return true, false
	}

	if !g.MoveTiger(from, to) {
		fmt.Println("Invalid tiger move! Try again.")
		return false, false
	}
	fmt.Printf("Tiger moved! Captured goats: %d\n", g.Board().CapturedGoats)
	return false, true
}

func goatTurn(g *engine.Game, in *bufio.Scanner) (quit, moved bool) {
	if g.Board().GoatsInHand > 0 {
		pos, ok := readPosition(g, in, "Enter position to place goat (0-24): ")
		if !ok {
			return true, false
		}
		if !g.PlaceGoat(pos) {
			fmt.Println("Invalid move! Try again.")
			return false, false
		}
		fmt.Printf("Goats remaining to place: %d\n", g.Board().GoatsInHand)
		return false, true
	}

	from, ok := readPosition(g, in, "Enter goat position to move from (0-24): ")
	if !ok {
		return true, false
	}
	g.SelectPosition(from)

	to, ok := readPosition(g, in, "Enter position to move to (0-24): ")
	g.ClearSelection()
	if !ok {
		return true, false
	}

	if !g.MoveGoat(from, to) {
		fmt.Println("Invalid goat move! Try again.")
		return false, false
	}
	return false, true
}

// readPosition prompts until it gets a board position, a quit command or an
// undo command. Undo is handled here and re-prompts.
func readPosition(g *engine.Game, in *bufio.Scanner, prompt string) (int, bool) {
	for {
		fmt.Print(prompt)
		if !in.Scan() {
			return 0, false
		}
		input := strings.TrimSpace(in.Text())

		switch strings.ToLower(input) {
		case "q", "quit":
			return 0, false
		case "u", "undo":
			if g.Undo() {
				fmt.Println("Move undone. Current board:")
				printBoard(g.Board())
			} else {
				fmt.Println("Nothing to undo.")
			}
			continue
		}

		pos, err := strconv.Atoi(input)
		if err != nil || pos < 0 || pos >= game.Cells {
			fmt.Println("Please enter a valid position (0-24), 'u' to undo or 'q' to quit")
			continue
		}
		return pos, true
	}
}

func printInstructions() {
	fmt.Println("\n=== BAGHCHAL ===")
	fmt.Println("A traditional board game from Nepal")
	fmt.Println("\nBoard positions are numbered 0-24, left to right, top to bottom:")
	fmt.Println("  0  1  2  3  4")
	fmt.Println("  5  6  7  8  9")
	fmt.Println(" 10 11 12 13 14")
	fmt.Println(" 15 16 17 18 19")
	fmt.Println(" 20 21 22 23 24")
	fmt.Println("\nT = Tiger, G = Goat, · = Empty")
	fmt.Println("Enter 'u' to undo the last move, 'q' or 'quit' to exit")
	fmt.Println("===============")
	fmt.Println()
}

func printBoard(b *game.Board) {
	for i, cell := range b.Cells {
		if i%game.Size == 0 {
			fmt.Print("   ")
		}

		switch cell {
		case game.Tiger:
			fmt.Print(aurora.Bold(aurora.Red("T")))
		case game.Goat:
			fmt.Print(aurora.Bold(aurora.Yellow("G")))
		default:
			fmt.Print("·")
		}

		if (i+1)%game.Size == 0 {
			fmt.Println()
		} else {
			fmt.Print(" ")
		}
	}
}
