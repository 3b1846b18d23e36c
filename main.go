// TeXChess batch command: replays a move list, lets the engine reply and
// prints the resulting board and status.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/acherm/agentic-chessengine-latex-TeXCCChess/internal/engine"
	"github.com/acherm/agentic-chessengine-latex-TeXCCChess/internal/game"
	"github.com/acherm/agentic-chessengine-latex-TeXCCChess/internal/storage"
)

var (
	level   = flag.Int("level", envInt("TEXCHESS_LEVEL", int(engine.LevelQuiescence)), "engine level 0-3 (env TEXCHESS_LEVEL)")
	reply   = flag.Bool("reply", true, "let the engine move for the side to move")
	seed    = flag.Int64("seed", 0, "random seed for level 0")
	depth   = flag.Int("depth", 0, "search depth override for levels 2 and 3")
	cache   = flag.Bool("cache", false, "cache replayed positions in the data directory")
	dataDir = flag.String("data", os.Getenv(storage.DataDirEnv), "data directory (env "+storage.DataDirEnv+")")
	record  = flag.Bool("record", false, "add finished games to the stored tallies")
	asJSON  = flag.Bool("json", false, "print the report as JSON")
	verbose = flag.Bool("v", false, "log diagnostics to stderr")
)

func envInt(name string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(name)); err == nil {
		return v
	}
	return def
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: texchess [flags] [move ...]\n\nMoves use coordinate syntax such as e2e4 or e7e8q.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := zerolog.Nop()
	if *verbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).With().Timestamp().Logger()
	}

	var moves []string
	for _, arg := range flag.Args() {
		moves = append(moves, strings.Fields(arg)...)
	}

	opts := []game.Option{game.WithLogger(logger)}
	var store *storage.Cache
	if *cache || *record {
		var err error
		store, err = storage.OpenCache(*dataDir, 32<<20)
		if err != nil {
			log.Fatal("could not open data directory: ", err)
		}
		defer store.Close()
		store.Log = logger
		if *cache {
			opts = append(opts, game.WithSnapshots(store))
		}
	}

	rep := game.Play(game.Request{
		Moves: moves,
		Level: *level,
		Reply: *reply,
		Seed:  *seed,
		Depth: *depth,
	}, opts...)

	if *record && rep.Status.IsOver() {
		err := store.Disk.RecordGame(storage.GameResult{
			Status: rep.Status.String(),
			Level:  engine.Level(*level).String(),
			Plies:  len(rep.Moves),
		})
		if err != nil {
			logger.Error().Err(err).Msg("record game")
		}
	}

	var err error
	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		err = enc.Encode(rep)
	} else {
		err = rep.WriteText(os.Stdout)
	}
	if err != nil {
		log.Fatal(err)
	}
	if rep.Err != nil {
		if store != nil {
			store.Close()
		}
		os.Exit(1)
	}
}
