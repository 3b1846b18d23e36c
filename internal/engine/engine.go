package engine

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/acherm/agentic-chessengine-latex-TeXCCChess/internal/board"
)

// Level is the playing strength.
type Level int

const (
	LevelRandom     Level = iota // uniform pick among legal moves
	LevelGreedy                  // best static evaluation one ply ahead
	LevelAlphaBeta               // negamax with alpha-beta, depth 2
	LevelQuiescence              // negamax with alpha-beta, depth 3, plus a capture ply
)

// MaxLevel is the strongest level.
const MaxLevel = LevelQuiescence

// MaxDepth bounds the search depth of levels 2 and 3.
const MaxDepth = 8

var levelNames = [...]string{"random", "greedy", "alphabeta", "quiescence"}

func (l Level) String() string {
	if !l.Valid() {
		return "level(" + strconv.Itoa(int(l)) + ")"
	}
	return levelNames[l]
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	return l >= LevelRandom && l <= MaxLevel
}

// DefaultDepth is the search depth used when SearchLimits.Depth is zero.
func (l Level) DefaultDepth() int {
	switch l {
	case LevelAlphaBeta:
		return 2
	case LevelQuiescence:
		return 3
	default:
		return 1
	}
}

// ParseLevel converts "0".."3" to a Level.
func ParseLevel(s string) (Level, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid level %q: %w", s, err)
	}
	l := Level(n)
	if !l.Valid() {
		return 0, fmt.Errorf("level %d out of range 0-%d", n, MaxLevel)
	}
	return l, nil
}

// SearchLimits specifies how a move is chosen.
type SearchLimits struct {
	Level     Level
	Depth     int   // plies for levels 2 and 3; 0 = level default, capped at MaxDepth
	Seed      int64 // random source for level 0
	Unordered bool  // disable MVV-LVA ordering
}

// depth returns the effective search depth.
func (l SearchLimits) depth() int {
	switch {
	case l.Depth > MaxDepth:
		return MaxDepth
	case l.Depth > 0:
		return l.Depth
	}
	return l.Level.DefaultDepth()
}

// SearchInfo is reported through OnInfo once a search finishes.
type SearchInfo struct {
	Level Level
	Depth int
	Score int
	Nodes uint64
	Time  time.Duration
	Move  board.Move
}

// Result is the outcome of a search.
type Result struct {
	Move  board.Move // NoMove when the side to move has no legal move
	Score int        // from the side to move's point of view
	Nodes uint64
	Depth int
	Level Level
}

// Engine is the chess AI engine.
type Engine struct {
	searcher *Searcher
	limits   SearchLimits
	log      zerolog.Logger

	// Callbacks
	OnInfo func(SearchInfo)
}

// NewEngine creates an engine playing at LevelQuiescence.
func NewEngine() *Engine {
	return &Engine{
		searcher: NewSearcher(),
		limits:   SearchLimits{Level: LevelQuiescence},
		log:      zerolog.Nop(),
	}
}

// SetLevel sets the default playing level.
func (e *Engine) SetLevel(l Level) {
	e.limits.Level = l
}

// SetSeed sets the random seed used at level 0.
func (e *Engine) SetSeed(seed int64) {
	e.limits.Seed = seed
}

// SetDepth overrides the default depth; 0 restores the level default.
func (e *Engine) SetDepth(depth int) {
	e.limits.Depth = depth
}

// SetLogger sets the logger used for search summaries.
func (e *Engine) SetLogger(l zerolog.Logger) {
	e.log = l
}

// Limits returns the engine's default limits.
func (e *Engine) Limits() SearchLimits {
	return e.limits
}

// Search finds the best move for the given position with the default limits.
func (e *Engine) Search(pos *board.Position) board.Move {
	return e.SearchWithLimits(pos, e.limits).Move
}

// SearchWithLimits finds the best move with specific limits. pos is not
// modified.
func (e *Engine) SearchWithLimits(pos *board.Position, limits SearchLimits) Result {
	start := time.Now()
	pos = pos.Copy()

	s := e.searcher
	s.Reset()
	s.SetOrdering(!limits.Unordered)
	s.SetQuiescence(limits.Level == LevelQuiescence)

	res := Result{Level: limits.Level, Depth: limits.depth()}

	switch limits.Level {
	case LevelRandom:
		moves := pos.GenerateLegalMoves()
		if len(moves) > 0 {
			r := rand.New(rand.NewSource(limits.Seed))
			res.Move = moves[r.Intn(len(moves))]
			res.Nodes = 1
		}
	case LevelGreedy:
		res.Move, res.Score = s.Greedy(pos)
	default:
		res.Move, res.Score = s.Search(pos, res.Depth)
	}
	if res.Nodes == 0 {
		res.Nodes = s.Nodes()
	}

	elapsed := time.Since(start)
	e.log.Debug().
		Str("level", limits.Level.String()).
		Int("depth", res.Depth).
		Str("move", res.Move.String()).
		Int("score", res.Score).
		Uint64("nodes", res.Nodes).
		Dur("elapsed", elapsed).
		Msg("search finished")

	if e.OnInfo != nil {
		e.OnInfo(SearchInfo{
			Level: res.Level,
			Depth: res.Depth,
			Score: res.Score,
			Nodes: res.Nodes,
			Time:  elapsed,
			Move:  res.Move,
		})
	}
	return res
}

// Evaluate returns the static evaluation of a position, White positive.
func (e *Engine) Evaluate(pos *board.Position) int {
	return Evaluate(pos)
}

// IsMateScore reports whether score encodes a forced mate.
func IsMateScore(score int) bool {
	return score > MateScore-MaxPly || score < -MateScore+MaxPly
}

// UCIScore formats a score for a UCI info line: "cp N" or "mate N", where N
// counts full moves and is negative when the side to move is mated.
func UCIScore(score int) string {
	switch {
	case score > MateScore-MaxPly:
		return "mate " + strconv.Itoa((MateScore-score+1)/2)
	case score < -MateScore+MaxPly:
		return "mate " + strconv.Itoa(-(MateScore+score+1)/2)
	default:
		return "cp " + strconv.Itoa(score)
	}
}
