package perft

import (
	"context"
	"testing"

	"github.com/dylhunn/dragontoothmg"

	"github.com/acherm/agentic-chessengine-latex-TeXCCChess/internal/board"
)

const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

// referenceCount runs perft with an independent move generator.
func referenceCount(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var n uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		n += referenceCount(b, depth-1)
		unapply()
	}
	return n
}

func TestCount(t *testing.T) {
	tests := []struct {
		fen      string
		depth    int
		expected uint64
	}{
		{board.StartFEN, 1, 20},
		{board.StartFEN, 3, 8902},
		{kiwipete, 2, 2039},
		{"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 3, 2812},
	}
	for _, tc := range tests {
		pos, err := board.ParseFEN(tc.fen)
		if err != nil {
			t.Fatal(err)
		}
		if got := Count(pos, tc.depth); got != tc.expected {
			t.Errorf("Count(%s, %d) = %d, want %d", tc.fen, tc.depth, got, tc.expected)
		}
	}
}

func TestCountMatchesReference(t *testing.T) {
	depth := 3
	if testing.Short() {
		depth = 2
	}
	for _, fen := range []string{board.StartFEN, kiwipete} {
		pos, err := board.ParseFEN(fen)
		if err != nil {
			t.Fatal(err)
		}
		ref := dragontoothmg.ParseFen(fen)
		if got, want := Count(pos, depth), referenceCount(&ref, depth); got != want {
			t.Errorf("%s depth %d: %d nodes, reference %d", fen, depth, got, want)
		}
	}
}

func TestDivide(t *testing.T) {
	pos, err := board.ParseFEN(kiwipete)
	if err != nil {
		t.Fatal(err)
	}
	before := pos.Copy()

	entries, err := Divide(context.Background(), pos, 3, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 48 {
		t.Errorf("%d root moves, want 48", len(entries))
	}
	if got := Total(entries); got != 97862 {
		t.Errorf("Total = %d, want 97862", got)
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Move.String() > entries[i].Move.String() {
			t.Fatalf("entries not sorted at %d", i)
		}
	}
	if !pos.Equal(before) {
		t.Error("Divide modified the position")
	}
}

func TestDivideCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Divide(ctx, board.NewPosition(), 2, 1); err == nil {
		t.Error("cancelled Divide returned no error")
	}
}
