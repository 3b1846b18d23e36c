package engine

import (
	"testing"

	"github.com/acherm/agentic-chessengine-latex-TeXCCChess/internal/board"
)

func TestOrderMovesMVVLVA(t *testing.T) {
	// White can take the queen with the pawn or the rook, and the knight
	// with the queen.
	pos := mustFEN(t, "4k3/8/8/2q1n3/1P6/8/8/2R1QK2 w - - 0 1")
	moves := pos.GenerateLegalMoves()
	OrderMoves(pos, moves)

	want := []string{"b4c5", "c1c5", "e1e5"}
	for i, w := range want {
		if got := moves[i].String(); got != w {
			t.Errorf("moves[%d] = %s, want %s (order %v)", i, got, w, moves)
		}
	}
	for _, m := range moves[len(want):] {
		if m.IsCapture() {
			t.Errorf("capture %s ordered after quiet moves", m)
		}
	}
}

func TestOrderMovesStable(t *testing.T) {
	pos := board.NewPosition()
	moves := pos.GenerateLegalMoves()
	orig := append([]board.Move(nil), moves...)
	OrderMoves(pos, moves)
	for i := range moves {
		if moves[i] != orig[i] {
			t.Fatalf("quiet moves reordered: %v, want %v", moves, orig)
		}
	}
}

func TestScoreMoveEnPassant(t *testing.T) {
	pos := mustFEN(t, "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	m, ok := pos.FindLegalMove(board.E5, board.D6, board.NoPieceType)
	if !ok {
		t.Fatal("e5d6 not legal")
	}
	if got := ScoreMove(pos, m); got != captureBase {
		t.Errorf("ScoreMove(e.p.) = %d, want %d", got, captureBase)
	}
}
