package engine

import (
	"golang.org/x/exp/slices"

	"github.com/acherm/agentic-chessengine-latex-TeXCCChess/internal/board"
)

// captureBase lifts every capture above every quiet move.
const captureBase = 10000

// scoredMove pairs a move with its ordering score.
type scoredMove struct {
	move  board.Move
	score int
}

// ScoreMove returns the ordering score of m in pos. Quiet moves score 0.
// Captures score captureBase plus victim value minus attacker value (MVV-LVA).
func ScoreMove(pos *board.Position, m board.Move) int {
	if !m.IsCapture() {
		return 0
	}
	victim := board.Pawn
	if !m.IsEnPassant() {
		victim = pos.PieceAt(m.To()).Type()
	}
	attacker := pos.PieceAt(m.From()).Type()
	return captureBase + PieceValue(victim) - PieceValue(attacker)
}

// OrderMoves sorts moves in place, best first. The sort is stable, so moves
// with equal scores keep generation order.
func OrderMoves(pos *board.Position, moves []board.Move) {
	if len(moves) < 2 {
		return
	}
	scored := make([]scoredMove, len(moves))
	for i, m := range moves {
		scored[i] = scoredMove{move: m, score: ScoreMove(pos, m)}
	}
	slices.SortStableFunc(scored, func(a, b scoredMove) int {
		return b.score - a.score
	})
	for i := range scored {
		moves[i] = scored[i].move
	}
}
