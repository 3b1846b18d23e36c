package board

import (
	"fmt"
	"strings"
)

// Move packs a move into 32 bits:
// bits 0-5:   from square
// bits 6-11:  to square
// bits 12-14: promotion piece type (0 when the move is not a promotion)
// bits 16-19: flags
type Move uint32

// Move flags.
const (
	FlagCapture    Move = 1 << 16
	FlagEnPassant  Move = 1 << 17
	FlagCastle     Move = 1 << 18
	FlagDoublePush Move = 1 << 19

	flagMask Move = FlagCapture | FlagEnPassant | FlagCastle | FlagDoublePush
)

// NoMove is the zero move; a1a1 can never be generated.
const NoMove Move = 0

// NewMove builds a move with the given flags.
func NewMove(from, to Square, flags Move) Move {
	return Move(from) | Move(to)<<6 | flags&flagMask
}

// NewPromotion builds a promotion to pt. Pass FlagCapture for capture promotions.
func NewPromotion(from, to Square, pt PieceType, flags Move) Move {
	return NewMove(from, to, flags) | Move(pt)<<12
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & 0x3F)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> 6) & 0x3F)
}

// Promotion returns the promotion kind, or NoPieceType.
func (m Move) Promotion() PieceType {
	pt := PieceType((m >> 12) & 7)
	if pt == Pawn {
		return NoPieceType
	}
	return pt
}

func (m Move) IsPromotion() bool { return (m>>12)&7 != 0 }
func (m Move) IsCapture() bool   { return m&FlagCapture != 0 }
func (m Move) IsEnPassant() bool { return m&FlagEnPassant != 0 }
func (m Move) IsCastle() bool    { return m&FlagCastle != 0 }
func (m Move) IsDoublePush() bool {
	return m&FlagDoublePush != 0
}

// Flags returns only the flag bits.
func (m Move) Flags() Move {
	return m & flagMask
}

// Matches reports whether m has the given coordinates and promotion kind.
func (m Move) Matches(from, to Square, promo PieceType) bool {
	return m.From() == from && m.To() == to && m.Promotion() == promo
}

// String returns coordinate syntax, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += string(m.Promotion().Char())
	}
	return s
}

// ParseMoveText splits coordinate move syntax into its parts without looking
// at a position. A missing promotion letter yields NoPieceType.
func ParseMoveText(s string) (from, to Square, promo PieceType, err error) {
	s = strings.TrimSpace(s)
	if len(s) != 4 && len(s) != 5 {
		return NoSquare, NoSquare, NoPieceType, fmt.Errorf("move %q: want 4 or 5 characters", s)
	}
	if from, err = ParseSquare(s[0:2]); err != nil {
		return NoSquare, NoSquare, NoPieceType, fmt.Errorf("move %q: %v", s, err)
	}
	if to, err = ParseSquare(s[2:4]); err != nil {
		return NoSquare, NoSquare, NoPieceType, fmt.Errorf("move %q: %v", s, err)
	}
	promo = NoPieceType
	if len(s) == 5 {
		if promo = PromotionFromChar(s[4]); promo == NoPieceType {
			return NoSquare, NoSquare, NoPieceType, fmt.Errorf("move %q: invalid promotion piece %q", s, s[4])
		}
	}
	return from, to, promo, nil
}

// UndoInfo is what MakeMove hands back so UnmakeMove can restore the position.
type UndoInfo struct {
	Captured       Piece
	CastlingRights CastlingRights
	EnPassant      Square
	HalfMoveClock  int
}
