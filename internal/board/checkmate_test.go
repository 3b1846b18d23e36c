package board

import (
	"testing"
)

func TestCheckmate(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		checkmate bool
		stalemate bool
	}{
		// Ra8 mates, g7/h7 block the escape.
		{"back rank mate", "R6k/6pp/8/8/8/8/8/K7 b - - 0 1", true, false},
		// The king can take the undefended rook.
		{"king takes checker", "6Rk/8/8/8/8/8/8/K7 b - - 0 1", false, false},
		{"fool's mate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", true, false},
		{"queen stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", false, true},
		{"pawn stalemate", "k7/P7/1K6/8/8/8/8/8 b - - 0 1", false, true},
		{"start", StartFEN, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos, err := ParseFEN(tc.fen)
			if err != nil {
				t.Fatal("Error parsing FEN:", err)
			}
			if got := pos.IsCheckmate(); got != tc.checkmate {
				t.Errorf("IsCheckmate() = %v, want %v\n%s", got, tc.checkmate, pos)
			}
			if got := pos.IsStalemate(); got != tc.stalemate {
				t.Errorf("IsStalemate() = %v, want %v\n%s", got, tc.stalemate, pos)
			}
			if got := pos.HasLegalMoves(); got == (tc.checkmate || tc.stalemate) {
				t.Errorf("HasLegalMoves() = %v", got)
			}
		})
	}
}

func TestSANSuffixes(t *testing.T) {
	pos := NewPosition()
	var moves []Move
	for _, text := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		from, to, promo, err := ParseMoveText(text)
		if err != nil {
			t.Fatal(err)
		}
		m, ok := pos.Copy().FindLegalMove(from, to, promo)
		if !ok {
			t.Fatalf("%s not legal", text)
		}
		moves = append(moves, m)
		pos.MakeMove(m)
	}

	got := MovesToSAN(NewPosition(), moves)
	want := []string{"f3", "e5", "g4", "Qh4#"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("move %d: SAN = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSANDisambiguation(t *testing.T) {
	tests := []struct {
		fen  string
		move Move
		want string
	}{
		{"4k3/8/8/8/8/8/4K3/R6R w - - 0 1", NewMove(A1, D1, 0), "Rad1"},
		{"4k3/8/8/8/8/8/4K3/R6R w - - 0 1", NewMove(H1, F1, 0), "Rhf1"},
		{"4k3/8/8/8/8/R7/4K3/R7 w - - 0 1", NewMove(A1, A2, 0), "R1a2"},
		{"4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1", NewMove(E1, G1, FlagCastle), "O-O"},
		{"4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1", NewMove(E1, C1, FlagCastle), "O-O-O"},
		{"4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1", NewMove(A1, A8, 0), "Ra8+"},
		{"4k3/1P6/8/8/8/8/8/4K3 w - - 0 1", NewPromotion(B7, B8, Queen, 0), "b8=Q+"},
	}
	for _, tc := range tests {
		pos, err := ParseFEN(tc.fen)
		if err != nil {
			t.Fatal(err)
		}
		if got := tc.move.SAN(pos); got != tc.want {
			t.Errorf("%v: SAN = %q, want %q", tc.move, got, tc.want)
		}
	}
}
