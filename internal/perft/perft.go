// Package perft counts move-generation leaf nodes, the standard check on a
// move generator.
package perft

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/acherm/agentic-chessengine-latex-TeXCCChess/internal/board"
)

// Count returns the number of leaf nodes depth plies below pos.
// pos is restored before it returns.
func Count(pos *board.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	moves := pos.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		undo := pos.MakeMove(m)
		nodes += Count(pos, depth-1)
		pos.UnmakeMove(m, undo)
	}
	return nodes
}

// Entry is one root move and the leaves below it.
type Entry struct {
	Move  board.Move
	Nodes uint64
}

// Divide counts each root move's subtree on its own copy of the position,
// up to workers subtrees at a time (workers <= 0 means no limit). Entries are
// sorted by move text.
func Divide(ctx context.Context, pos *board.Position, depth, workers int) ([]Entry, error) {
	if depth < 1 {
		return nil, nil
	}
	moves := pos.GenerateLegalMoves()
	entries := make([]Entry, len(moves))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, m := range moves {
		i, m := i, m
		child := pos.Copy()
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			child.MakeMove(m)
			entries[i] = Entry{Move: m, Nodes: Count(child, depth-1)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(entries, func(a, b int) bool {
		return entries[a].Move.String() < entries[b].Move.String()
	})
	return entries, nil
}

// Total sums the entries of a Divide.
func Total(entries []Entry) uint64 {
	var n uint64
	for _, e := range entries {
		n += e.Nodes
	}
	return n
}
