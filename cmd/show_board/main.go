package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lk16/stacker/internal/tetris"
)

func readBoard(boardString string) (*tetris.Board, error) {
	if boardString == "-" {
		input, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		boardString = string(input)
	}

	// Rows can be separated by slashes to fit on the command line.
	return tetris.ParseBoard(strings.ReplaceAll(boardString, "/", "\n"))
}

func main() {
	boardString := flag.String("board", "", "the board to show, top row first, rows separated by '/' or newlines, '-' reads stdin")
	kindString := flag.String("kind", "", "check if a tetromino of this kind can be issued, for example T")
	flag.Parse()

	board, err := readBoard(*boardString)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	fmt.Print(board.String())
	fmt.Printf("size: %dx%d\n", board.Width(), board.Height())
	fmt.Printf("placed cells: %d\n", board.PlacedCount())
	fmt.Printf("full rows: %v\n", board.FullRows())

	if *kindString == "" {
		return
	}

	kind, err := tetris.ParseKind((*kindString)[0])
	if err != nil || kind.IsEmpty() || len(*kindString) != 1 {
		fmt.Printf("invalid kind %q\n", *kindString)
		os.Exit(1)
	}

	spawn := tetris.NewActiveTetromino(board.Width()/2, board.Height()-2, tetris.NewTetromino(kind))
	fmt.Printf("%s can be issued: %t\n", spawn, board.CanPlace(spawn))
}
