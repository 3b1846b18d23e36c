// Package engine implements position evaluation and the move search.
package engine

import (
	"github.com/acherm/agentic-chessengine-latex-TeXCCChess/internal/board"
)

// Material values in centipawns.
const (
	PawnValue   = 100
	KnightValue = 300
	BishopValue = 300
	RookValue   = 500
	QueenValue  = 900
	KingValue   = 0
)

// Piece values array for quick lookup, indexed by board.PieceType.
var pieceValues = [7]int{PawnValue, KnightValue, BishopValue, RookValue, QueenValue, KingValue, 0}

// PieceValue returns the material value of a piece kind.
func PieceValue(pt board.PieceType) int {
	if pt > board.NoPieceType {
		return 0
	}
	return pieceValues[pt]
}

// Piece-Square Tables (PST) for positional evaluation.
// Tables read as a diagram from White's side: the first row is rank 8.
// White looks squares up through Mirror, Black uses the square directly,
// which makes Black's table the vertical mirror of White's.

// Pawn PST - encourages central control and advancement
var pawnPST = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

// Knight PST - encourages central positioning
var knightPST = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

// Bishop PST - encourages central diagonals
var bishopPST = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

// Rook PST - encourages 7th rank and open files
var rookPST = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

// Queen PST - slight central preference
var queenPST = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

// King PST - encourages castling and staying behind the pawns
var kingPST = [64]int{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

// All PSTs combined for easy lookup
var psts = [6]*[64]int{
	board.Pawn:   &pawnPST,
	board.Knight: &knightPST,
	board.Bishop: &bishopPST,
	board.Rook:   &rookPST,
	board.Queen:  &queenPST,
	board.King:   &kingPST,
}

// PSTValue returns the piece-square adjustment for a piece on sq.
func PSTValue(p board.Piece, sq board.Square) int {
	if p.IsEmpty() {
		return 0
	}
	if p.Color() == board.White {
		sq = sq.Mirror()
	}
	return psts[p.Type()][sq]
}

// Evaluate returns the static evaluation of the position from White's
// perspective: positive favors White.
func Evaluate(pos *board.Position) int {
	score := 0
	for sq, p := range pos.Squares {
		if p.IsEmpty() {
			continue
		}
		v := pieceValues[p.Type()] + PSTValue(p, board.Square(sq))
		if p.Color() == board.White {
			score += v
		} else {
			score -= v
		}
	}
	return score
}

// EvaluateRelative returns Evaluate from the side to move's point of view.
func EvaluateRelative(pos *board.Position) int {
	if pos.SideToMove == board.Black {
		return -Evaluate(pos)
	}
	return Evaluate(pos)
}

// EvaluateMaterial returns just the material balance, White positive.
func EvaluateMaterial(pos *board.Position) int {
	score := 0
	for _, p := range pos.Squares {
		switch {
		case p.IsEmpty():
		case p.Color() == board.White:
			score += pieceValues[p.Type()]
		default:
			score -= pieceValues[p.Type()]
		}
	}
	return score
}
