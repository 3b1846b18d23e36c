package game

import (
	"fmt"

	"github.com/acherm/agentic-chessengine-latex-TeXCCChess/internal/board"
)

// Status is the game result as seen after the last applied move.
type Status int

const (
	InProgress Status = iota
	WhiteWins
	BlackWins
	Draw
)

var statusNames = [...]string{"in_progress", "white_wins", "black_wins", "draw"}

func (s Status) String() string {
	if s < InProgress || s > Draw {
		return fmt.Sprintf("status(%d)", int(s))
	}
	return statusNames[s]
}

// IsOver reports whether no further moves are accepted.
func (s Status) IsOver() bool {
	return s != InProgress
}

// MarshalText encodes the status name for JSON.
func (s Status) MarshalText() ([]byte, error) {
	if s < InProgress || s > Draw {
		return nil, fmt.Errorf("invalid status %d", int(s))
	}
	return []byte(statusNames[s]), nil
}

// UnmarshalText parses a status name.
func (s *Status) UnmarshalText(text []byte) error {
	for i, name := range statusNames {
		if name == string(text) {
			*s = Status(i)
			return nil
		}
	}
	return fmt.Errorf("unknown status %q", text)
}

// Classify inspects the side to move. With no legal move it has been mated
// (the other side wins) or stalemated (draw). Otherwise play continues.
func Classify(pos *board.Position) Status {
	if pos.HasLegalMoves() {
		return InProgress
	}
	if !pos.InCheck() {
		return Draw
	}
	if pos.SideToMove == board.White {
		return BlackWins
	}
	return WhiteWins
}
