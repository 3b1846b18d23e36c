package game

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog"

	"github.com/acherm/agentic-chessengine-latex-TeXCCChess/internal/board"
)

// SnapshotStore caches replayed games by move-list key. Implementations must
// be safe for concurrent use.
type SnapshotStore interface {
	Load(key uint64) (data []byte, ok bool, err error)
	Save(key uint64, data []byte) error
}

// SnapshotKey hashes a move list. Appending a move yields a different key,
// so a stored snapshot never goes stale.
func SnapshotKey(moves []string) uint64 {
	return xxhash.Sum64String(strings.Join(moves, " "))
}

// prefixKeys returns SnapshotKey(moves[:i+1]) for every i in one pass.
func prefixKeys(moves []string) []uint64 {
	keys := make([]uint64, len(moves))
	d := xxhash.New()
	for i, m := range moves {
		if i > 0 {
			d.WriteString(" ")
		}
		d.WriteString(m)
		keys[i] = d.Sum64()
	}
	return keys
}

// snapshot is the stored form of a GameState.
type snapshot struct {
	FEN   string       `json:"fen"`
	Moves []board.Move `json:"moves"`
}

func encodeSnapshot(g *GameState) ([]byte, error) {
	return json.Marshal(snapshot{FEN: g.Position.ToFEN(), Moves: g.Moves})
}

func decodeSnapshot(data []byte) (*GameState, error) {
	var s snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	pos, err := board.ParseFEN(s.FEN)
	if err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &GameState{Position: pos, Moves: s.Moves, Status: Classify(pos)}, nil
}

// replayCached is Replay that resumes from the longest cached prefix and
// stores the full history once it has been accepted. Store failures only
// cost speed, so they are logged and replay continues from scratch.
func replayCached(moves []string, store SnapshotStore, log zerolog.Logger) (*GameState, error) {
	if store == nil || len(moves) == 0 {
		return Replay(moves)
	}

	keys := prefixKeys(moves)
	g, start := New(), 0
	for i := len(keys) - 1; i >= 0; i-- {
		data, ok, err := store.Load(keys[i])
		if err != nil {
			log.Warn().Err(err).Msg("snapshot load failed")
			break
		}
		if !ok {
			continue
		}
		cached, err := decodeSnapshot(data)
		if err != nil || len(cached.Moves) != i+1 {
			log.Warn().Err(err).Uint64("key", keys[i]).Msg("discarding bad snapshot")
			continue
		}
		g, start = cached, i+1
		break
	}
	log.Debug().Int("cached", start).Int("moves", len(moves)).Msg("replay")

	for _, text := range moves[start:] {
		if err := g.Apply(text); err != nil {
			return g, err
		}
	}

	if start < len(moves) {
		data, err := encodeSnapshot(g)
		if err == nil {
			err = store.Save(keys[len(keys)-1], data)
		}
		if err != nil {
			log.Warn().Err(err).Msg("snapshot save failed")
		}
	}
	return g, nil
}
