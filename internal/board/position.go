package board

import (
	"fmt"
	"strings"
)

// CastlingRights holds the four independent castling permissions.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// String returns the FEN castling field.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	var sb strings.Builder
	for i, c := range "KQkq" {
		if cr&(1<<i) != 0 {
			sb.WriteRune(c)
		}
	}
	return sb.String()
}

// CanCastle reports whether c still holds the right on the given wing.
func (cr CastlingRights) CanCastle(c Color, kingSide bool) bool {
	return cr&castleRight(c, kingSide) != 0
}

func castleRight(c Color, kingSide bool) CastlingRights {
	switch {
	case c == White && kingSide:
		return WhiteKingSideCastle
	case c == White:
		return WhiteQueenSideCastle
	case kingSide:
		return BlackKingSideCastle
	default:
		return BlackQueenSideCastle
	}
}

// Position is a complete chess position: a 64-square mailbox plus the
// metadata that the rules depend on.
type Position struct {
	Squares [64]Piece

	SideToMove     Color
	CastlingRights CastlingRights
	EnPassant      Square // square skipped by the last double push, NoSquare if none
	HalfMoveClock  int    // plies since the last pawn move or capture
	FullMoveNumber int    // starts at 1, incremented after black moves

	// KingSquare caches each side's king for check detection.
	KingSquare [2]Square
}

// NewPosition returns the standard initial position.
func NewPosition() *Position {
	pos, err := ParseFEN(StartFEN)
	if err != nil {
		panic("board: start position: " + err.Error())
	}
	return pos
}

// Copy returns an independent copy of the position.
func (p *Position) Copy() *Position {
	cp := *p
	return &cp
}

// Equal reports whether two positions agree on placement and every piece of metadata.
func (p *Position) Equal(o *Position) bool {
	return *p == *o
}

// PieceAt returns the piece on sq, or NoPiece.
func (p *Position) PieceAt(sq Square) Piece {
	return p.Squares[sq]
}

// IsEmpty reports whether sq holds no piece.
func (p *Position) IsEmpty(sq Square) bool {
	return p.Squares[sq] == NoPiece
}

func (p *Position) setPiece(piece Piece, sq Square) {
	p.Squares[sq] = piece
	if piece.Type() == King {
		p.KingSquare[piece.Color()] = sq
	}
}

func (p *Position) removePiece(sq Square) Piece {
	piece := p.Squares[sq]
	p.Squares[sq] = NoPiece
	return piece
}

func (p *Position) movePiece(from, to Square) {
	p.setPiece(p.removePiece(from), to)
}

// String draws the board as an ASCII grid, rank 8 on top, followed by the metadata.
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteString(p.Grid())
	fmt.Fprintf(&sb, "Side to move: %s\n", p.SideToMove)
	fmt.Fprintf(&sb, "Castling: %s\n", p.CastlingRights)
	fmt.Fprintf(&sb, "En passant: %s\n", p.EnPassant)
	fmt.Fprintf(&sb, "Half-move clock: %d\n", p.HalfMoveClock)
	fmt.Fprintf(&sb, "Full move: %d\n", p.FullMoveNumber)
	return sb.String()
}

// Grid draws only the pieces, one rank per line.
func (p *Position) Grid() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d ", rank+1)
		for file := 0; file < 8; file++ {
			sb.WriteByte(' ')
			sb.WriteString(p.Squares[NewSquare(file, rank)].String())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a b c d e f g h\n")
	return sb.String()
}

// Clear empties the board.
func (p *Position) Clear() {
	*p = Position{
		EnPassant:      NoSquare,
		FullMoveNumber: 1,
		KingSquare:     [2]Square{NoSquare, NoSquare},
	}
	for sq := range p.Squares {
		p.Squares[sq] = NoPiece
	}
}

// Validate checks the structural invariants of a position.
func (p *Position) Validate() error {
	var kings [2]int
	for sq, piece := range p.Squares {
		if piece == NoPiece {
			continue
		}
		if piece > NoPiece {
			return fmt.Errorf("square %s holds an invalid piece code %d", Square(sq), piece)
		}
		switch piece.Type() {
		case King:
			kings[piece.Color()]++
			if p.KingSquare[piece.Color()] != Square(sq) {
				return fmt.Errorf("%s king cache says %s, board says %s", piece.Color(), p.KingSquare[piece.Color()], Square(sq))
			}
		case Pawn:
			if r := Square(sq).Rank(); r == 0 || r == 7 {
				return fmt.Errorf("pawn on back rank at %s", Square(sq))
			}
		}
	}
	if kings[White] != 1 {
		return fmt.Errorf("white must have exactly one king, has %d", kings[White])
	}
	if kings[Black] != 1 {
		return fmt.Errorf("black must have exactly one king, has %d", kings[Black])
	}
	if err := p.validateEnPassant(); err != nil {
		return err
	}
	if p.IsInCheck(p.SideToMove.Other()) {
		return fmt.Errorf("%s is in check but not to move", p.SideToMove.Other())
	}
	return nil
}

// validateEnPassant checks that the en passant square is one the opponent's
// last move could have skipped: empty, on the third or sixth rank, with the
// pushed pawn in front of it and its origin square vacated.
func (p *Position) validateEnPassant() error {
	ep := p.EnPassant
	if ep == NoSquare {
		return nil
	}
	if ep > NoSquare {
		return fmt.Errorf("invalid en passant square %d", ep)
	}
	them := p.SideToMove.Other()
	rank, pawnSq, originSq := 5, ep-8, ep+8
	if them == White {
		rank, pawnSq, originSq = 2, ep+8, ep-8
	}
	switch {
	case ep.Rank() != rank:
		return fmt.Errorf("en passant square %s on the wrong rank for %s to move", ep, p.SideToMove)
	case p.Squares[ep] != NoPiece || p.Squares[originSq] != NoPiece:
		return fmt.Errorf("en passant square %s does not follow a double push", ep)
	case p.Squares[pawnSq] != NewPiece(Pawn, them):
		return fmt.Errorf("en passant square %s has no %s pawn in front of it", ep, them)
	}
	return nil
}
