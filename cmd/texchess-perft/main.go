package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/acherm/agentic-chessengine-latex-TeXCCChess/internal/board"
	"github.com/acherm/agentic-chessengine-latex-TeXCCChess/internal/perft"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	workers := flag.Int("workers", runtime.NumCPU(), "Root subtrees counted in parallel")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	pos, err := board.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	start := time.Now()
	entries, err := perft.Divide(context.Background(), pos, *depth, *workers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "perft: %v\n", err)
		os.Exit(1)
	}
	elapsed := time.Since(start)

	if *divide {
		for _, e := range entries {
			fmt.Printf("%s: %d\n", e.Move, e.Nodes)
		}
	}
	nodes := perft.Total(entries)
	fmt.Printf("Total: %d\n", nodes)

	secs := elapsed.Seconds()
	if secs > 0 {
		nps := uint64(float64(nodes) / secs)
		fmt.Printf("Time: %v  NPS: %s\n", elapsed.Round(time.Millisecond), humanize.Comma(int64(nps)))
	}
}
