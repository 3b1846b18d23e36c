package board

// GenerateLegalMoves returns every legal move for the side to move.
func (p *Position) GenerateLegalMoves() []Move {
	return p.filterLegalMoves(p.generate(false))
}

// GeneratePseudoLegalMoves returns moves that obey piece movement but may
// leave the mover's king in check. Castling through attacked squares is
// already excluded here.
func (p *Position) GeneratePseudoLegalMoves() []Move {
	return p.generate(false)
}

// GenerateCaptures returns the legal captures, en passant and capture
// promotions included.
func (p *Position) GenerateCaptures() []Move {
	return p.filterLegalMoves(p.generate(true))
}

func (p *Position) filterLegalMoves(ml []Move) []Move {
	legal := ml[:0]
	for _, m := range ml {
		if p.IsLegal(m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// generate produces pseudo-legal moves, or only captures when capturesOnly is set.
func (p *Position) generate(capturesOnly bool) []Move {
	ml := make([]Move, 0, 48)
	us := p.SideToMove

	for sq := A1; sq <= H8; sq++ {
		piece := p.Squares[sq]
		if piece == NoPiece || piece.Color() != us {
			continue
		}
		switch piece.Type() {
		case Pawn:
			ml = p.generatePawnMoves(ml, sq, capturesOnly)
		case Knight:
			ml = p.generateStepMoves(ml, sq, knightTargets[sq], capturesOnly)
		case Bishop:
			ml = p.generateSlidingMoves(ml, sq, bishopDirections, capturesOnly)
		case Rook:
			ml = p.generateSlidingMoves(ml, sq, rookDirections, capturesOnly)
		case Queen:
			ml = p.generateSlidingMoves(ml, sq, queenDirections, capturesOnly)
		case King:
			ml = p.generateStepMoves(ml, sq, kingTargets[sq], capturesOnly)
			if !capturesOnly {
				ml = p.generateCastlingMoves(ml, us)
			}
		}
	}
	return ml
}

// generatePawnMoves adds pushes, double pushes, captures, en passant and promotions.
func (p *Position) generatePawnMoves(ml []Move, from Square, capturesOnly bool) []Move {
	us := p.SideToMove
	push, startRank, promoRank := 8, 1, 7
	if us == Black {
		push, startRank, promoRank = -8, 6, 0
	}

	if !capturesOnly {
		to := Square(int(from) + push)
		if p.Squares[to] == NoPiece {
			if to.Rank() == promoRank {
				ml = addPromotions(ml, from, to, 0)
			} else {
				ml = append(ml, NewMove(from, to, 0))
				double := Square(int(to) + push)
				if from.Rank() == startRank && p.Squares[double] == NoPiece {
					ml = append(ml, NewMove(from, double, FlagDoublePush))
				}
			}
		}
	}

	for _, to := range pawnAttacks[us][from] {
		target := p.Squares[to]
		switch {
		case target != NoPiece && target.Color() != us:
			if to.Rank() == promoRank {
				ml = addPromotions(ml, from, to, FlagCapture)
			} else {
				ml = append(ml, NewMove(from, to, FlagCapture))
			}
		case target == NoPiece && to == p.EnPassant:
			ml = append(ml, NewMove(from, to, FlagCapture|FlagEnPassant))
		}
	}
	return ml
}

// addPromotions adds the four promotion choices, queen first.
func addPromotions(ml []Move, from, to Square, flags Move) []Move {
	return append(ml,
		NewPromotion(from, to, Queen, flags),
		NewPromotion(from, to, Rook, flags),
		NewPromotion(from, to, Bishop, flags),
		NewPromotion(from, to, Knight, flags),
	)
}

// generateStepMoves handles knights and the king's one-square moves.
func (p *Position) generateStepMoves(ml []Move, from Square, targets []Square, capturesOnly bool) []Move {
	us := p.SideToMove
	for _, to := range targets {
		target := p.Squares[to]
		if target == NoPiece {
			if !capturesOnly {
				ml = append(ml, NewMove(from, to, 0))
			}
		} else if target.Color() != us {
			ml = append(ml, NewMove(from, to, FlagCapture))
		}
	}
	return ml
}

// generateSlidingMoves walks rays until the board edge or the first occupied square.
func (p *Position) generateSlidingMoves(ml []Move, from Square, dirs []int, capturesOnly bool) []Move {
	us := p.SideToMove
	for _, dir := range dirs {
		for _, to := range rays[dir][from] {
			target := p.Squares[to]
			if target == NoPiece {
				if !capturesOnly {
					ml = append(ml, NewMove(from, to, 0))
				}
				continue
			}
			if target.Color() != us {
				ml = append(ml, NewMove(from, to, FlagCapture))
			}
			break
		}
	}
	return ml
}

// castlingPath describes one castling option for one side.
type castlingPath struct {
	right     CastlingRights
	king      Square
	kingTo    Square
	rook      Square
	empty     []Square // must be vacant
	unchecked []Square // must not be attacked: origin, transit, destination
}

var castlingPaths = [2][2]castlingPath{
	White: {
		{WhiteKingSideCastle, E1, G1, H1, []Square{F1, G1}, []Square{E1, F1, G1}},
		{WhiteQueenSideCastle, E1, C1, A1, []Square{B1, C1, D1}, []Square{E1, D1, C1}},
	},
	Black: {
		{BlackKingSideCastle, E8, G8, H8, []Square{F8, G8}, []Square{E8, F8, G8}},
		{BlackQueenSideCastle, E8, C8, A8, []Square{B8, C8, D8}, []Square{E8, D8, C8}},
	},
}

// generateCastlingMoves adds castling king moves whose preconditions all hold.
func (p *Position) generateCastlingMoves(ml []Move, us Color) []Move {
	them := us.Other()
	king, rook := NewPiece(King, us), NewPiece(Rook, us)

next:
	for _, cp := range castlingPaths[us] {
		if p.CastlingRights&cp.right == 0 || p.Squares[cp.king] != king || p.Squares[cp.rook] != rook {
			continue
		}
		for _, sq := range cp.empty {
			if p.Squares[sq] != NoPiece {
				continue next
			}
		}
		for _, sq := range cp.unchecked {
			if p.IsSquareAttacked(sq, them) {
				continue next
			}
		}
		ml = append(ml, NewMove(cp.king, cp.kingTo, FlagCastle))
	}
	return ml
}

// FindLegalMove resolves coordinates to a legal move. When promo is
// NoPieceType and the move promotes, the queen promotion is chosen.
func (p *Position) FindLegalMove(from, to Square, promo PieceType) (Move, bool) {
	for _, m := range p.GenerateLegalMoves() {
		if m.From() != from || m.To() != to {
			continue
		}
		if m.Promotion() == promo || (promo == NoPieceType && m.Promotion() == Queen) {
			return m, true
		}
	}
	return NoMove, false
}

// HasLegalMoves reports whether the side to move has at least one legal move.
func (p *Position) HasLegalMoves() bool {
	for _, m := range p.generate(false) {
		if p.IsLegal(m) {
			return true
		}
	}
	return false
}

// IsCheckmate reports whether the side to move is mated.
func (p *Position) IsCheckmate() bool {
	return p.InCheck() && !p.HasLegalMoves()
}

// IsStalemate reports whether the side to move has no move but is not in check.
func (p *Position) IsStalemate() bool {
	return !p.InCheck() && !p.HasLegalMoves()
}
