package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/acherm/agentic-chessengine-latex-TeXCCChess/internal/game"
	"github.com/acherm/agentic-chessengine-latex-TeXCCChess/internal/httpapi"
	"github.com/acherm/agentic-chessengine-latex-TeXCCChess/internal/storage"
)

func getenv(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

func main() {
	addr := flag.String("addr", getenv("TEXCHESS_ADDR", ":8080"), "listen address (env TEXCHESS_ADDR)")
	cache := flag.Bool("cache", true, "cache replayed positions")
	dataDir := flag.String("data", os.Getenv(storage.DataDirEnv), "data directory for the snapshot cache (env "+storage.DataDirEnv+")")
	ttl := flag.Duration("snapshot-ttl", 24*time.Hour, "expiry of stored snapshots, 0 to keep them")
	accessLog := flag.Bool("access-log", true, "write an access log to stdout")
	flag.Parse()

	logger := zerolog.New(os.Stderr).With().Timestamp().Str("service", "texchess").Logger()

	var snapshots game.SnapshotStore
	if *cache {
		store, err := storage.OpenCache(*dataDir, 64<<20)
		if err != nil {
			log.Fatal("could not open snapshot cache: ", err)
		}
		defer store.Close()
		store.Disk.SnapshotTTL = *ttl
		store.Log = logger
		snapshots = store
	}

	var access io.Writer
	if *accessLog {
		access = os.Stdout
	}
	handler := httpapi.NewServer(snapshots, logger, access)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdown)
	}()

	logger.Info().Str("addr", *addr).Bool("cache", *cache).Msg("listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
