package board

import (
	"sort"
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

func moveStrings(moves []Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	sort.Strings(out)
	return out
}

func referenceMoves(fen string) []string {
	b := dragontoothmg.ParseFen(fen)
	moves := b.GenerateLegalMoves()
	out := make([]string, len(moves))
	for i := range moves {
		out[i] = moves[i].String()
	}
	sort.Strings(out)
	return out
}

// TestLegalMovesMatchReference walks two plies from a few positions and checks
// that every node yields the same legal move set as an independent generator.
func TestLegalMovesMatchReference(t *testing.T) {
	roots := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}

	var walk func(p *Position, depth int)
	walk = func(p *Position, depth int) {
		fen := p.ToFEN()
		got, want := moveStrings(p.GenerateLegalMoves()), referenceMoves(fen)
		if len(got) != len(want) {
			t.Fatalf("%s: %d moves, reference has %d\n got: %v\nwant: %v", fen, len(got), len(want), got, want)
		}
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("%s: move sets differ\n got: %v\nwant: %v", fen, got, want)
			}
		}
		if depth == 0 {
			return
		}
		for _, m := range p.GenerateLegalMoves() {
			undo := p.MakeMove(m)
			walk(p, depth-1)
			p.UnmakeMove(m, undo)
		}
	}

	for _, fen := range roots {
		walk(mustFEN(t, fen), 2)
	}
}
