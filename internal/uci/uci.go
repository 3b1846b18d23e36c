// Package uci speaks the Universal Chess Interface so GUIs and match runners
// can drive the engine.
package uci

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"github.com/acherm/agentic-chessengine-latex-TeXCCChess/internal/board"
	"github.com/acherm/agentic-chessengine-latex-TeXCCChess/internal/engine"
	"github.com/acherm/agentic-chessengine-latex-TeXCCChess/internal/game"
	"github.com/acherm/agentic-chessengine-latex-TeXCCChess/internal/perft"
)

// UCI implements the Universal Chess Interface protocol.
type UCI struct {
	engine *engine.Engine
	game   *game.GameState
	out    io.Writer
	log    zerolog.Logger
}

// New creates a protocol handler that writes its responses to out.
func New(eng *engine.Engine, out io.Writer) *UCI {
	return &UCI{
		engine: eng,
		game:   game.New(),
		out:    out,
		log:    zerolog.Nop(),
	}
}

// SetLogger sets where diagnostics go. Protocol output is unaffected.
func (u *UCI) SetLogger(l zerolog.Logger) {
	u.log = l
}

// Run reads commands from in until "quit" or end of input.
func (u *UCI) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "uci":
			u.handleUCI()
		case "isready":
			u.println("readyok")
		case "ucinewgame":
			u.handleNewGame()
		case "position":
			u.handlePosition(args)
		case "go":
			u.handleGo(args)
		case "stop":
			// Searches run to completion before the next command is read.
		case "quit":
			return nil
		case "setoption":
			u.handleSetOption(args)
		// Debug commands
		case "d":
			u.println(u.game.Position.String())
			u.printf("Fen: %s\n", u.game.Position.ToFEN())
			u.printf("Status: %s\n", u.game.Status)
		case "eval":
			u.printf("Eval: %d (white)\n", engine.Evaluate(u.game.Position))
		case "perft":
			u.handlePerft(args)
		default:
			u.log.Debug().Str("command", cmd).Msg("unknown command")
		}
	}
	return scanner.Err()
}

func (u *UCI) println(s string) {
	fmt.Fprintln(u.out, s)
}

func (u *UCI) printf(format string, args ...any) {
	fmt.Fprintf(u.out, format, args...)
}

// handleUCI responds to the "uci" command.
func (u *UCI) handleUCI() {
	limits := u.engine.Limits()
	u.println("id name TeXChess")
	u.println("id author TeXChess developers")
	u.println("")
	u.printf("option name Level type spin default %d min 0 max %d\n", limits.Level, engine.MaxLevel)
	u.printf("option name Depth type spin default 0 min 0 max %d\n", engine.MaxDepth)
	u.printf("option name Seed type spin default %d min 0 max 2147483647\n", limits.Seed)
	u.println("uciok")
}

// handleNewGame resets the game to the initial position.
func (u *UCI) handleNewGame() {
	u.game = game.New()
}

// handlePosition parses and sets up a position.
// Formats:
//   - position startpos
//   - position startpos moves e2e4 e7e5
//   - position fen <fen>
//   - position fen <fen> moves e2e4
func (u *UCI) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}

	movesAt := len(args)
	for i, arg := range args {
		if arg == "moves" {
			movesAt = i
			break
		}
	}

	var g *game.GameState
	switch args[0] {
	case "startpos":
		g = game.New()
	case "fen":
		pos, err := board.ParseFEN(strings.Join(args[1:movesAt], " "))
		if err != nil {
			u.printf("info string %v\n", err)
			return
		}
		g = &game.GameState{Position: pos, Status: game.Classify(pos)}
	default:
		return
	}

	if movesAt < len(args) {
		for _, text := range args[movesAt+1:] {
			if err := g.Apply(text); err != nil {
				u.printf("info string %v\n", err)
				u.log.Warn().Err(err).Str("kind", game.ErrorKind(err)).Msg("position rejected")
				return
			}
		}
	}
	u.game = g
}

// goOptions holds the parameters of a "go" command that the engine honours.
// Clock parameters are accepted and ignored; depth is capped at engine.MaxDepth.
type goOptions struct {
	depth int
}

func parseGoOptions(args []string) goOptions {
	var opts goOptions
	for i := 0; i < len(args); i++ {
		if args[i] == "depth" && i+1 < len(args) {
			opts.depth, _ = strconv.Atoi(args[i+1])
			opts.depth = min(opts.depth, engine.MaxDepth)
			i++
		}
	}
	return opts
}

// handleGo runs a search and reports the best move. Mated or stalemated
// positions answer with the null move.
func (u *UCI) handleGo(args []string) {
	opts := parseGoOptions(args)

	if u.game.Status.IsOver() {
		u.println("bestmove 0000")
		return
	}

	limits := u.engine.Limits()
	if opts.depth > 0 {
		limits.Depth = opts.depth
	}

	start := time.Now()
	result := u.engine.SearchWithLimits(u.game.Position, limits)
	u.sendInfo(engine.SearchInfo{
		Level: result.Level,
		Depth: result.Depth,
		Score: result.Score,
		Nodes: result.Nodes,
		Time:  time.Since(start),
		Move:  result.Move,
	})

	if result.Move == board.NoMove {
		u.println("bestmove 0000")
		return
	}
	u.printf("bestmove %s\n", result.Move)
}

// sendInfo prints an info line for a finished search.
func (u *UCI) sendInfo(info engine.SearchInfo) {
	parts := []string{
		fmt.Sprintf("depth %d", info.Depth),
		"score " + engine.UCIScore(info.Score),
		fmt.Sprintf("nodes %d", info.Nodes),
		fmt.Sprintf("time %d", info.Time.Milliseconds()),
	}
	if info.Time > 0 {
		nps := uint64(float64(info.Nodes) / info.Time.Seconds())
		parts = append(parts, fmt.Sprintf("nps %d", nps))
	}
	if info.Move != board.NoMove {
		parts = append(parts, "pv "+info.Move.String())
	}
	u.printf("info %s\n", strings.Join(parts, " "))
}

// handleSetOption handles "setoption name <name> value <value>".
func (u *UCI) handleSetOption(args []string) {
	var name, value []string
	var target *[]string
	for _, arg := range args {
		switch arg {
		case "name":
			target = &name
		case "value":
			target = &value
		default:
			if target != nil {
				*target = append(*target, arg)
			}
		}
	}

	n, v := strings.ToLower(strings.Join(name, " ")), strings.Join(value, " ")
	switch n {
	case "level":
		level, err := engine.ParseLevel(v)
		if err != nil {
			u.printf("info string %v\n", err)
			return
		}
		u.engine.SetLevel(level)
	case "depth":
		depth, err := strconv.Atoi(v)
		if err != nil || depth < 0 || depth > engine.MaxDepth {
			u.printf("info string invalid depth %q\n", v)
			return
		}
		u.engine.SetDepth(depth)
	case "seed":
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			u.printf("info string invalid seed %q\n", v)
			return
		}
		u.engine.SetSeed(seed)
	default:
		u.log.Debug().Str("option", n).Msg("unknown option")
	}
}

// handlePerft prints per-move leaf counts for the current position.
func (u *UCI) handlePerft(args []string) {
	depth := 4
	if len(args) > 0 {
		if d, err := strconv.Atoi(args[0]); err == nil && d > 0 {
			depth = d
		}
	}

	start := time.Now()
	entries, err := perft.Divide(context.Background(), u.game.Position, depth, runtime.NumCPU())
	if err != nil {
		u.printf("info string %v\n", err)
		return
	}
	elapsed := time.Since(start)

	for _, e := range entries {
		u.printf("%s: %d\n", e.Move, e.Nodes)
	}
	nodes := perft.Total(entries)
	u.println("")
	u.printf("Nodes: %d\n", nodes)
	u.printf("Time: %v\n", elapsed)
	if elapsed > 0 {
		nps := uint64(float64(nodes) / elapsed.Seconds())
		u.printf("NPS: %s\n", humanize.Comma(int64(nps)))
	}
}
