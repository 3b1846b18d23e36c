package board

// Ray directions. The first four are rook lines, the last four bishop diagonals.
const (
	North = iota
	South
	East
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest
)

var directionDelta = [8][2]int{ // {file, rank}
	{0, 1}, {0, -1}, {1, 0}, {-1, 0},
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
}

var (
	rookDirections   = []int{North, South, East, West}
	bishopDirections = []int{NorthEast, NorthWest, SouthEast, SouthWest}
	queenDirections  = []int{North, South, East, West, NorthEast, NorthWest, SouthEast, SouthWest}
)

// Pre-computed target lists, built once in init.
var (
	knightTargets [64][]Square
	kingTargets   [64][]Square
	pawnAttacks   [2][64][]Square // squares a pawn of [Color] on [Square] attacks
	rays          [8][64][]Square // squares from [Square] outward in [direction], nearest first
)

func init() {
	knightJumps := [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}

	for sq := A1; sq <= H8; sq++ {
		f, r := sq.File(), sq.Rank()

		for _, j := range knightJumps {
			if onBoard(f+j[0], r+j[1]) {
				knightTargets[sq] = append(knightTargets[sq], NewSquare(f+j[0], r+j[1]))
			}
		}

		for dir, d := range directionDelta {
			if onBoard(f+d[0], r+d[1]) {
				kingTargets[sq] = append(kingTargets[sq], NewSquare(f+d[0], r+d[1]))
			}
			for tf, tr := f+d[0], r+d[1]; onBoard(tf, tr); tf, tr = tf+d[0], tr+d[1] {
				rays[dir][sq] = append(rays[dir][sq], NewSquare(tf, tr))
			}
		}

		for _, df := range []int{-1, 1} {
			if onBoard(f+df, r+1) {
				pawnAttacks[White][sq] = append(pawnAttacks[White][sq], NewSquare(f+df, r+1))
			}
			if onBoard(f+df, r-1) {
				pawnAttacks[Black][sq] = append(pawnAttacks[Black][sq], NewSquare(f+df, r-1))
			}
		}
	}
}

// IsSquareAttacked reports whether any piece of byColor could capture on sq.
// It ignores whose turn it is, so it serves both check and castling tests.
func (p *Position) IsSquareAttacked(sq Square, byColor Color) bool {
	// A pawn of byColor attacks sq exactly when a pawn of the other color on
	// sq would attack the pawn's square.
	pawn := NewPiece(Pawn, byColor)
	for _, from := range pawnAttacks[byColor.Other()][sq] {
		if p.Squares[from] == pawn {
			return true
		}
	}

	knight := NewPiece(Knight, byColor)
	for _, from := range knightTargets[sq] {
		if p.Squares[from] == knight {
			return true
		}
	}

	king := NewPiece(King, byColor)
	for _, from := range kingTargets[sq] {
		if p.Squares[from] == king {
			return true
		}
	}

	queen := NewPiece(Queen, byColor)
	if p.sliderAttacks(sq, rookDirections, NewPiece(Rook, byColor), queen) {
		return true
	}
	return p.sliderAttacks(sq, bishopDirections, NewPiece(Bishop, byColor), queen)
}

// sliderAttacks walks each ray from sq and checks the first piece it meets.
func (p *Position) sliderAttacks(sq Square, dirs []int, slider, queen Piece) bool {
	for _, dir := range dirs {
		for _, s := range rays[dir][sq] {
			piece := p.Squares[s]
			if piece == NoPiece {
				continue
			}
			if piece == slider || piece == queen {
				return true
			}
			break
		}
	}
	return false
}

// IsInCheck reports whether c's king is attacked.
func (p *Position) IsInCheck(c Color) bool {
	ksq := p.KingSquare[c]
	if ksq >= NoSquare {
		return false
	}
	return p.IsSquareAttacked(ksq, c.Other())
}

// InCheck reports whether the side to move is in check.
func (p *Position) InCheck() bool {
	return p.IsInCheck(p.SideToMove)
}

// IsLegal simulates m and reports whether the mover's king is left unattacked.
// m must be pseudo-legal for this position.
func (p *Position) IsLegal(m Move) bool {
	us := p.SideToMove
	undo := p.MakeMove(m)
	legal := !p.IsInCheck(us)
	p.UnmakeMove(m, undo)
	return legal
}
