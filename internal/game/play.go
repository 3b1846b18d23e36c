package game

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/acherm/agentic-chessengine-latex-TeXCCChess/internal/board"
	"github.com/acherm/agentic-chessengine-latex-TeXCCChess/internal/engine"
)

// NoMove is what reports show when the engine did not move.
const NoMove = "none"

// Request is one batch invocation: the whole history plus engine settings.
type Request struct {
	Moves []string `json:"moves"`
	Level int      `json:"level"`
	Reply bool     `json:"reply"`           // ask the engine to move for the side to move
	Seed  int64    `json:"seed,omitempty"`  // level 0 random source
	Depth int      `json:"depth,omitempty"` // 0 = level default, at most engine.MaxDepth
}

// Report is the outcome of a Request.
type Report struct {
	Board      [64]string `json:"board"` // a1..h8, FEN letters, "." for empty
	FEN        string     `json:"fen"`
	Status     Status     `json:"status"`
	EngineMove string     `json:"engine_move"`
	Score      int        `json:"score,omitempty"` // engine's view, side to move before its reply
	Nodes      uint64     `json:"nodes,omitempty"`
	Moves      []string   `json:"moves"`
	SAN        []string   `json:"san"`
	Error      string     `json:"error,omitempty"`
	ErrorKind  string     `json:"error_kind,omitempty"`

	Err error `json:"-"`
}

type config struct {
	snapshots SnapshotStore
	engine    *engine.Engine
	log       zerolog.Logger
}

// Option configures Play.
type Option func(*config)

// WithSnapshots resumes replay from cached positions.
func WithSnapshots(s SnapshotStore) Option {
	return func(c *config) { c.snapshots = s }
}

// WithEngine supplies the engine; by default each call creates its own.
func WithEngine(e *engine.Engine) Option {
	return func(c *config) { c.engine = e }
}

// WithLogger sets the logger for replay and search diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.log = l }
}

// Play replays req.Moves from the initial position and, when asked and the
// game is still running, lets the engine reply. A rejected move stops the
// replay; the report then shows the position before it and no engine move.
func Play(req Request, opts ...Option) Report {
	cfg := config{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	level := engine.Level(req.Level)
	g, err := replayCached(req.Moves, cfg.snapshots, cfg.log)
	if err == nil && req.Reply {
		switch {
		case !level.Valid():
			err = fmt.Errorf("%w: %d (want 0-%d)", ErrInvalidLevel, req.Level, engine.MaxLevel)
		case req.Depth < 0 || req.Depth > engine.MaxDepth:
			err = fmt.Errorf("%w: %d (want 0-%d)", ErrInvalidDepth, req.Depth, engine.MaxDepth)
		}
	}
	rep := newReport(g, err)
	if err != nil || !req.Reply || g.Status.IsOver() {
		return rep
	}

	eng := cfg.engine
	if eng == nil {
		eng = engine.NewEngine()
		eng.SetLogger(cfg.log)
	}
	res := eng.SearchWithLimits(g.Position, engine.SearchLimits{
		Level: level,
		Depth: req.Depth,
		Seed:  req.Seed,
	})
	if res.Move == board.NoMove {
		return rep
	}
	if err := g.ApplyMove(res.Move); err != nil {
		return newReport(g, err)
	}

	rep = newReport(g, nil)
	rep.EngineMove = res.Move.String()
	rep.Score = res.Score
	rep.Nodes = res.Nodes
	return rep
}

func newReport(g *GameState, err error) Report {
	rep := Report{
		FEN:        g.Position.ToFEN(),
		Status:     g.Status,
		EngineMove: NoMove,
		Moves:      g.MoveStrings(),
		SAN:        board.MovesToSAN(board.NewPosition(), g.Moves),
		Err:        err,
	}
	for sq, p := range g.Position.Squares {
		rep.Board[sq] = p.String()
	}
	if err != nil {
		rep.Error = err.Error()
		rep.ErrorKind = ErrorKind(err)
	}
	return rep
}

// Grid draws the board with rank 8 on top.
func (r *Report) Grid() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d ", rank+1)
		for file := 0; file < 8; file++ {
			sb.WriteByte(' ')
			sb.WriteString(r.Board[rank*8+file])
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a b c d e f g h\n")
	return sb.String()
}

// WriteText writes the line-oriented report: the board, then STATUS,
// ENGINEMOVE and, for a rejected move, ERROR.
func (r *Report) WriteText(w io.Writer) error {
	var sb strings.Builder
	sb.WriteString(r.Grid())
	fmt.Fprintf(&sb, "STATUS:%s\n", r.Status)
	fmt.Fprintf(&sb, "ENGINEMOVE:%s\n", r.EngineMove)
	if r.Error != "" {
		fmt.Fprintf(&sb, "ERROR:%s\n", r.Error)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
