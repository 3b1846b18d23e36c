package game

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedMove = errors.New("malformed move syntax")
	ErrIllegalMove   = errors.New("illegal move")
	ErrGameOver      = errors.New("game already over")
	ErrInvalidLevel  = errors.New("invalid level")
	ErrInvalidDepth  = errors.New("invalid depth")
)

// MoveError reports a rejected move. Err is one of the move sentinels.
type MoveError struct {
	Index  int    // position of the move in the submitted list, from 0
	Move   string // the text as submitted
	Err    error
	Detail string // optional parser detail
}

func (e *MoveError) Error() string {
	msg := fmt.Sprintf("%v: %q (move %d)", e.Err, e.Move, e.Index+1)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *MoveError) Unwrap() error { return e.Err }

// ErrorKind names the class of err for machine-readable reports:
// "malformed_move", "illegal_move", "game_over", "invalid_level",
// "invalid_depth", or ""
// when err is nil or of another kind.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMalformedMove):
		return "malformed_move"
	case errors.Is(err, ErrIllegalMove):
		return "illegal_move"
	case errors.Is(err, ErrGameOver):
		return "game_over"
	case errors.Is(err, ErrInvalidLevel):
		return "invalid_level"
	case errors.Is(err, ErrInvalidDepth):
		return "invalid_depth"
	default:
		return ""
	}
}
