package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/acherm/agentic-chessengine-latex-TeXCCChess/internal/engine"
	"github.com/acherm/agentic-chessengine-latex-TeXCCChess/internal/uci"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	level      = flag.Int("level", int(engine.LevelQuiescence), "initial engine level 0-3 (env TEXCHESS_LEVEL)")
	debug      = flag.Bool("debug", false, "log diagnostics to stderr")
)

func main() {
	flag.Parse()

	// Start CPU profiling if requested (via flag or environment variable)
	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	lvl := engine.Level(*level)
	if v, ok := os.LookupEnv("TEXCHESS_LEVEL"); ok && !isFlagSet("level") {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("TEXCHESS_LEVEL: %v", err)
		}
		lvl = engine.Level(n)
	}
	if !lvl.Valid() {
		log.Fatalf("level %d out of range 0-%d", lvl, engine.MaxLevel)
	}

	logger := zerolog.Nop()
	if *debug {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	eng := engine.NewEngine()
	eng.SetLevel(lvl)
	eng.SetLogger(logger)

	protocol := uci.New(eng, os.Stdout)
	protocol.SetLogger(logger)
	if err := protocol.Run(os.Stdin); err != nil {
		log.Fatal(err)
	}
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
