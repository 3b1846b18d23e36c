package engine

import (
	"github.com/acherm/agentic-chessengine-latex-TeXCCChess/internal/board"
)

// Search constants
const (
	Infinity  = 30000
	MateScore = 29000
	MaxPly    = 64
)

// Searcher performs the alpha-beta search on a single position. It is not
// safe for concurrent use.
type Searcher struct {
	nodes     uint64
	unordered bool // leave moves in generation order
	quiesce   bool // extend leaves with a capture ply
}

// NewSearcher creates a new searcher with move ordering enabled.
func NewSearcher() *Searcher {
	return &Searcher{}
}

// Reset clears the node counter.
func (s *Searcher) Reset() {
	s.nodes = 0
}

// Nodes returns the number of nodes searched since the last Reset.
func (s *Searcher) Nodes() uint64 {
	return s.nodes
}

// SetOrdering toggles MVV-LVA ordering.
func (s *Searcher) SetOrdering(on bool) {
	s.unordered = !on
}

// SetQuiescence toggles the capture extension at the horizon.
func (s *Searcher) SetQuiescence(on bool) {
	s.quiesce = on
}

func (s *Searcher) order(pos *board.Position, moves []board.Move) {
	if !s.unordered {
		OrderMoves(pos, moves)
	}
}

// Search runs negamax to depth plies and returns the best root move and its
// score for the side to move. Ties go to the move searched first. It returns
// NoMove when the side to move has no legal move.
func (s *Searcher) Search(pos *board.Position, depth int) (board.Move, int) {
	moves := pos.GenerateLegalMoves()
	if len(moves) == 0 {
		return board.NoMove, terminalScore(pos, 0)
	}
	if depth < 1 {
		depth = 1
	}
	s.order(pos, moves)

	bestMove, bestScore := board.NoMove, -Infinity
	alpha, beta := -Infinity, Infinity
	for _, m := range moves {
		undo := pos.MakeMove(m)
		score := -s.negamax(pos, depth-1, 1, -beta, -alpha)
		pos.UnmakeMove(m, undo)

		if bestMove == board.NoMove || score > bestScore {
			bestMove, bestScore = m, score
		}
		if score > alpha {
			alpha = score
		}
	}
	return bestMove, bestScore
}

// negamax returns the score of pos for the side to move, clamped to
// [alpha, beta].
func (s *Searcher) negamax(pos *board.Position, depth, ply, alpha, beta int) int {
	s.nodes++

	if depth <= 0 || ply >= MaxPly {
		if s.quiesce {
			return s.quiescence(pos, alpha, beta)
		}
		return EvaluateRelative(pos)
	}

	moves := pos.GenerateLegalMoves()
	if len(moves) == 0 {
		return terminalScore(pos, ply)
	}
	s.order(pos, moves)

	for _, m := range moves {
		undo := pos.MakeMove(m)
		score := -s.negamax(pos, depth-1, ply+1, -beta, -alpha)
		pos.UnmakeMove(m, undo)

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

// quiescence searches one extra ply of captures. The side to move may also
// stand pat on the static evaluation.
func (s *Searcher) quiescence(pos *board.Position, alpha, beta int) int {
	standPat := EvaluateRelative(pos)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	captures := pos.GenerateCaptures()
	s.order(pos, captures)

	for _, m := range captures {
		s.nodes++
		undo := pos.MakeMove(m)
		score := -EvaluateRelative(pos)
		pos.UnmakeMove(m, undo)

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

// Greedy scores every legal move by the static evaluation of the position it
// leads to and returns the best one. Ties go to the first move generated.
func (s *Searcher) Greedy(pos *board.Position) (board.Move, int) {
	moves := pos.GenerateLegalMoves()
	if len(moves) == 0 {
		return board.NoMove, terminalScore(pos, 0)
	}

	bestMove, bestScore := board.NoMove, -Infinity
	for _, m := range moves {
		s.nodes++
		undo := pos.MakeMove(m)
		score := -EvaluateRelative(pos)
		pos.UnmakeMove(m, undo)

		if bestMove == board.NoMove || score > bestScore {
			bestMove, bestScore = m, score
		}
	}
	return bestMove, bestScore
}

// terminalScore scores a position with no legal moves: mated, or stalemate.
// Nearer mates score further from zero.
func terminalScore(pos *board.Position, ply int) int {
	if pos.InCheck() {
		return -MateScore + ply
	}
	return 0
}
