package board

import "strings"

// SAN returns the move in Standard Algebraic Notation for pos, which must be
// the position the move is played from.
func (m Move) SAN(pos *Position) string {
	if m == NoMove {
		return "-"
	}
	if m.IsCastle() {
		if m.To().File() == 6 {
			return "O-O"
		}
		return "O-O-O"
	}

	from, to := m.From(), m.To()
	pt := pos.PieceAt(from).Type()

	var sb strings.Builder
	if pt != Pawn {
		sb.WriteByte("PNBRQK"[pt])
		sb.WriteString(disambiguation(pos, m, pt))
	}
	if m.IsCapture() {
		if pt == Pawn {
			sb.WriteByte(byte('a' + from.File()))
		}
		sb.WriteByte('x')
	}
	sb.WriteString(to.String())
	if m.IsPromotion() {
		sb.WriteByte('=')
		sb.WriteByte("PNBRQK"[m.Promotion()])
	}

	undo := pos.MakeMove(m)
	switch {
	case pos.IsCheckmate():
		sb.WriteByte('#')
	case pos.InCheck():
		sb.WriteByte('+')
	}
	pos.UnmakeMove(m, undo)

	return sb.String()
}

// disambiguation returns the file, rank or square needed to tell m apart from
// other legal moves of the same kind to the same square.
func disambiguation(pos *Position, m Move, pt PieceType) string {
	from, to := m.From(), m.To()
	ambiguous, sameFile, sameRank := false, false, false

	for _, other := range pos.GenerateLegalMoves() {
		of := other.From()
		if other.To() != to || of == from || pos.PieceAt(of).Type() != pt {
			continue
		}
		ambiguous = true
		sameFile = sameFile || of.File() == from.File()
		sameRank = sameRank || of.Rank() == from.Rank()
	}

	switch {
	case !ambiguous:
		return ""
	case !sameFile:
		return string(rune('a' + from.File()))
	case !sameRank:
		return string(rune('1' + from.Rank()))
	default:
		return from.String()
	}
}

// MovesToSAN converts a move sequence played from pos. pos is left untouched.
func MovesToSAN(pos *Position, moves []Move) []string {
	p := pos.Copy()
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.SAN(p)
		p.MakeMove(m)
	}
	return out
}
