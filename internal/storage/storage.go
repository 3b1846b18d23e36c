package storage

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys
const (
	keyStats       = "stats"
	snapshotPrefix = "snap/"
)

// GameStats stores tallies of finished games.
type GameStats struct {
	GamesPlayed int            `json:"games_played"`
	WhiteWins   int            `json:"white_wins"`
	BlackWins   int            `json:"black_wins"`
	Draws       int            `json:"draws"`
	ByLevel     map[string]int `json:"by_level"`
	TotalPlies  int            `json:"total_plies"`
	LastPlayed  time.Time      `json:"last_played"`
}

// NewGameStats returns empty game statistics
func NewGameStats() *GameStats {
	return &GameStats{
		ByLevel: make(map[string]int),
	}
}

// GameResult represents the result of a completed game
type GameResult struct {
	Status string // "white_wins", "black_wins" or "draw"
	Level  string
	Plies  int
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB

	// SnapshotTTL expires stored snapshots; zero keeps them forever.
	SnapshotTTL time.Duration
}

// NewStorage opens the database in the platform data directory.
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Open opens or creates a database in dir.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging
	return open(opts)
}

// OpenInMemory opens a database that lives only as long as the process.
func OpenInMemory() (*Storage, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts)
}

func open(opts badger.Options) (*Storage, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func snapshotKey(key uint64) []byte {
	k := make([]byte, len(snapshotPrefix)+8)
	copy(k, snapshotPrefix)
	binary.BigEndian.PutUint64(k[len(snapshotPrefix):], key)
	return k
}

// Load returns the snapshot stored under key.
func (s *Storage) Load(key uint64) ([]byte, bool, error) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(snapshotKey(key))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Save stores a snapshot under key.
func (s *Storage) Save(key uint64, data []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry(snapshotKey(key), data)
		if s.SnapshotTTL > 0 {
			e = e.WithTTL(s.SnapshotTTL)
		}
		return txn.SetEntry(e)
	})
}

// SaveStats saves game statistics
func (s *Storage) SaveStats(stats *GameStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}

// LoadStats loads game statistics, returns empty stats if not found
func (s *Storage) LoadStats() (*GameStats, error) {
	stats := NewGameStats()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil // Use empty stats
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})
	if stats.ByLevel == nil {
		stats.ByLevel = make(map[string]int)
	}

	return stats, err
}

// RecordGame records a completed game and updates statistics
func (s *Storage) RecordGame(result GameResult) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	switch result.Status {
	case "white_wins":
		stats.WhiteWins++
	case "black_wins":
		stats.BlackWins++
	case "draw":
		stats.Draws++
	default:
		return errors.New("storage: game not finished: " + result.Status)
	}

	stats.GamesPlayed++
	stats.TotalPlies += result.Plies
	if result.Level != "" {
		stats.ByLevel[result.Level]++
	}
	stats.LastPlayed = time.Now()

	return s.SaveStats(stats)
}

// WhiteScore returns white's score as a percentage (0-100), draws counting half.
func (s *GameStats) WhiteScore() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return (float64(s.WhiteWins) + float64(s.Draws)/2) / float64(s.GamesPlayed) * 100
}
