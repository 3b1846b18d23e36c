// Package game drives the engine from a move history: it replays the moves,
// classifies the result, asks the engine for a reply and builds the report.
package game

import (
	"github.com/acherm/agentic-chessengine-latex-TeXCCChess/internal/board"
)

// GameState is a position together with the moves that produced it.
// It is owned by a single caller.
type GameState struct {
	Position *board.Position
	Moves    []board.Move
	Status   Status
}

// New returns a game at the standard initial position.
func New() *GameState {
	return &GameState{Position: board.NewPosition()}
}

// Apply validates one move in coordinate syntax and plays it. A rejected move
// leaves the game untouched and returns a *MoveError.
func (g *GameState) Apply(text string) error {
	reject := func(err error, detail string) error {
		return &MoveError{Index: len(g.Moves), Move: text, Err: err, Detail: detail}
	}

	if g.Status.IsOver() {
		return reject(ErrGameOver, g.Status.String())
	}
	from, to, promo, err := board.ParseMoveText(text)
	if err != nil {
		return reject(ErrMalformedMove, err.Error())
	}
	m, ok := g.Position.FindLegalMove(from, to, promo)
	if !ok {
		return reject(ErrIllegalMove, "")
	}
	g.play(m)
	return nil
}

// ApplyMove plays a move already known to be legal, such as one returned by
// the engine.
func (g *GameState) ApplyMove(m board.Move) error {
	if g.Status.IsOver() {
		return &MoveError{Index: len(g.Moves), Move: m.String(), Err: ErrGameOver, Detail: g.Status.String()}
	}
	if _, ok := g.Position.FindLegalMove(m.From(), m.To(), m.Promotion()); !ok {
		return &MoveError{Index: len(g.Moves), Move: m.String(), Err: ErrIllegalMove}
	}
	g.play(m)
	return nil
}

func (g *GameState) play(m board.Move) {
	g.Position.MakeMove(m)
	g.Moves = append(g.Moves, m)
	g.Status = Classify(g.Position)
}

// MoveStrings returns the history in coordinate syntax.
func (g *GameState) MoveStrings() []string {
	out := make([]string, len(g.Moves))
	for i, m := range g.Moves {
		out[i] = m.String()
	}
	return out
}

// Replay builds a game from the initial position. It stops at the first
// rejected move and returns the game as it stood before that move.
func Replay(moves []string) (*GameState, error) {
	g := New()
	for _, text := range moves {
		if err := g.Apply(text); err != nil {
			return g, err
		}
	}
	return g, nil
}
