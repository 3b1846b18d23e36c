package board

// castlingLoss maps a square to the rights lost when a piece leaves or is
// captured on it.
var castlingLoss [64]CastlingRights

func init() {
	castlingLoss[E1] = WhiteKingSideCastle | WhiteQueenSideCastle
	castlingLoss[H1] = WhiteKingSideCastle
	castlingLoss[A1] = WhiteQueenSideCastle
	castlingLoss[E8] = BlackKingSideCastle | BlackQueenSideCastle
	castlingLoss[H8] = BlackKingSideCastle
	castlingLoss[A8] = BlackQueenSideCastle
}

// rookCastleSquares returns where the rook starts and lands for a castling
// king move to kingTo.
func rookCastleSquares(kingTo Square) (from, to Square) {
	rank := kingTo.Rank()
	if kingTo.File() == 6 {
		return NewSquare(7, rank), NewSquare(5, rank)
	}
	return NewSquare(0, rank), NewSquare(3, rank)
}

// MakeMove applies a pseudo-legal move and returns what UnmakeMove needs to
// reverse it. The whole update happens before it returns.
func (p *Position) MakeMove(m Move) UndoInfo {
	undo := UndoInfo{
		Captured:       NoPiece,
		CastlingRights: p.CastlingRights,
		EnPassant:      p.EnPassant,
		HalfMoveClock:  p.HalfMoveClock,
	}

	us := p.SideToMove
	from, to := m.From(), m.To()
	moving := p.Squares[from]

	switch {
	case m.IsEnPassant():
		captureSq := NewSquare(to.File(), from.Rank())
		undo.Captured = p.removePiece(captureSq)
	case p.Squares[to] != NoPiece:
		undo.Captured = p.removePiece(to)
	}

	p.movePiece(from, to)

	if m.IsPromotion() {
		p.setPiece(NewPiece(m.Promotion(), us), to)
	}

	if m.IsCastle() {
		rookFrom, rookTo := rookCastleSquares(to)
		p.movePiece(rookFrom, rookTo)
	}

	p.CastlingRights &^= castlingLoss[from] | castlingLoss[to]

	p.EnPassant = NoSquare
	if m.IsDoublePush() {
		p.EnPassant = Square((int(from) + int(to)) / 2)
	}

	if moving.Type() == Pawn || undo.Captured != NoPiece {
		p.HalfMoveClock = 0
	} else {
		p.HalfMoveClock++
	}

	if us == Black {
		p.FullMoveNumber++
	}
	p.SideToMove = us.Other()

	return undo
}

// UnmakeMove reverses m, which must be the last move made on p.
func (p *Position) UnmakeMove(m Move, undo UndoInfo) {
	us := p.SideToMove.Other()
	p.SideToMove = us
	if us == Black {
		p.FullMoveNumber--
	}

	from, to := m.From(), m.To()

	if m.IsCastle() {
		rookFrom, rookTo := rookCastleSquares(to)
		p.movePiece(rookTo, rookFrom)
	}

	p.movePiece(to, from)
	if m.IsPromotion() {
		p.setPiece(NewPiece(Pawn, us), from)
	}

	if undo.Captured != NoPiece {
		captureSq := to
		if m.IsEnPassant() {
			captureSq = NewSquare(to.File(), from.Rank())
		}
		p.setPiece(undo.Captured, captureSq)
	}

	p.CastlingRights = undo.CastlingRights
	p.EnPassant = undo.EnPassant
	p.HalfMoveClock = undo.HalfMoveClock
}
