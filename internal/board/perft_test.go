package board

import "testing"

// perft counts leaf nodes at the given depth.
func perft(p *Position, depth int) int64 {
	if depth == 0 {
		return 1
	}

	moves := p.GenerateLegalMoves()
	if depth == 1 {
		return int64(len(moves))
	}

	var nodes int64
	for _, m := range moves {
		undo := p.MakeMove(m)
		nodes += perft(p, depth-1)
		p.UnmakeMove(m, undo)
	}
	return nodes
}

func TestPerft(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		expected []int64 // indexed by depth-1
	}{
		{
			name:     "start",
			fen:      StartFEN,
			expected: []int64{20, 400, 8902, 197281},
		},
		{
			// castling, en passant and promotions all appear early
			name:     "kiwipete",
			fen:      "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -",
			expected: []int64{48, 2039, 97862},
		},
		{
			name:     "position3",
			fen:      "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -",
			expected: []int64{14, 191, 2812, 43238},
		},
		{
			name:     "position4",
			fen:      "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
			expected: []int64{6, 264, 9467},
		},
		{
			name:     "position5",
			fen:      "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
			expected: []int64{44, 1486, 62379},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos, err := ParseFEN(tc.fen)
			if err != nil {
				t.Fatalf("ParseFEN: %v", err)
			}
			before := pos.Copy()
			for i, want := range tc.expected {
				if testing.Short() && want > 100000 {
					continue
				}
				if got := perft(pos, i+1); got != want {
					t.Errorf("perft(%d) = %d, want %d", i+1, got, want)
				}
			}
			if !pos.Equal(before) {
				t.Errorf("position changed after perft:\n%s\nwant:\n%s", pos, before)
			}
		})
	}
}

// The black pawn on e4 may not take en passant on d3: doing so exposes the
// king on a4 to the rook on h4.
func TestPerftEnPassantPin(t *testing.T) {
	pos, err := ParseFEN("8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	for _, m := range pos.GenerateLegalMoves() {
		if m.IsEnPassant() {
			t.Errorf("en passant move %v should be illegal (horizontal pin)", m)
		}
	}

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 6},
		{2, 94},
	}
	for _, tc := range tests {
		if got := perft(pos, tc.depth); got != tc.expected {
			t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
		}
	}
}
