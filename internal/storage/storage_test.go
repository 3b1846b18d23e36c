package storage

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func openTest(t *testing.T) *Storage {
	t.Helper()
	s, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestDiskSnapshots(t *testing.T) {
	s := openTest(t)

	if _, ok, err := s.Load(42); err != nil || ok {
		t.Fatalf("Load on empty db = %v, %v", ok, err)
	}
	if err := s.Save(42, []byte(`{"fen":"x"}`)); err != nil {
		t.Fatal(err)
	}
	data, ok, err := s.Load(42)
	if err != nil || !ok || string(data) != `{"fen":"x"}` {
		t.Errorf("Load = %q, %v, %v", data, ok, err)
	}
	if _, ok, _ := s.Load(43); ok {
		t.Error("neighbouring key should miss")
	}
}

func TestOpenDir(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Save(7, []byte("seven")); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s, err = Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	if data, ok, err := s.Load(7); err != nil || !ok || string(data) != "seven" {
		t.Errorf("after reopen Load = %q, %v, %v", data, ok, err)
	}
}

func TestStats(t *testing.T) {
	s := openTest(t)

	t.Run("NewGameStats", func(t *testing.T) {
		stats, err := s.LoadStats()
		if err != nil {
			t.Fatal(err)
		}
		if stats.GamesPlayed != 0 {
			t.Errorf("Expected 0 games played")
		}
		if stats.WhiteScore() != 0 {
			t.Errorf("Expected 0 score")
		}
	})

	t.Run("RecordGame", func(t *testing.T) {
		results := []GameResult{
			{Status: "white_wins", Level: "alphabeta", Plies: 30},
			{Status: "black_wins", Level: "alphabeta", Plies: 4},
			{Status: "draw", Level: "quiescence", Plies: 80},
			{Status: "white_wins", Level: "quiescence", Plies: 50},
		}
		for _, r := range results {
			if err := s.RecordGame(r); err != nil {
				t.Fatal(err)
			}
		}
		if err := s.RecordGame(GameResult{Status: "in_progress"}); err == nil {
			t.Error("recording an unfinished game should fail")
		}

		stats, err := s.LoadStats()
		if err != nil {
			t.Fatal(err)
		}
		if stats.GamesPlayed != 4 || stats.WhiteWins != 2 || stats.BlackWins != 1 || stats.Draws != 1 {
			t.Errorf("stats = %+v", stats)
		}
		if stats.ByLevel["alphabeta"] != 2 || stats.TotalPlies != 164 {
			t.Errorf("stats = %+v", stats)
		}
		if got := stats.WhiteScore(); got != 62.5 {
			t.Errorf("WhiteScore = %.2f, want 62.5", got)
		}
	})
}

func TestMemorySnapshots(t *testing.T) {
	m, err := NewMemorySnapshots(1 << 20)
	if err != nil {
		t.Fatal(err)
	}
	defer m.Close()

	if err := m.Save(1, []byte("one")); err != nil {
		t.Fatal(err)
	}
	m.Wait()
	data, ok, err := m.Load(1)
	if err != nil || !ok || !bytes.Equal(data, []byte("one")) {
		t.Errorf("Load = %q, %v, %v", data, ok, err)
	}
	if _, ok, _ := m.Load(2); ok {
		t.Error("unexpected hit")
	}
}

func TestTiered(t *testing.T) {
	fast, err := NewMemorySnapshots(1 << 20)
	if err != nil {
		t.Fatal(err)
	}
	defer fast.Close()
	slow := openTest(t)
	tiered := Tiered{Fast: fast, Slow: slow}

	if err := slow.Save(9, []byte("nine")); err != nil {
		t.Fatal(err)
	}
	data, ok, err := tiered.Load(9)
	if err != nil || !ok || string(data) != "nine" {
		t.Fatalf("Load = %q, %v, %v", data, ok, err)
	}
	fast.Wait()
	if _, ok, _ := fast.Load(9); !ok {
		t.Error("slow hit should fill the fast tier")
	}

	if err := tiered.Save(10, []byte("ten")); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := slow.Load(10); !ok {
		t.Error("save should reach the slow tier")
	}
}

func TestDataPaths(t *testing.T) {
	t.Setenv(DataDirEnv, t.TempDir())

	// Test that GetDataDir returns a valid path
	dataDir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir failed: %v", err)
	}
	if dataDir != os.Getenv(DataDirEnv) {
		t.Errorf("GetDataDir = %s, want override", dataDir)
	}

	dbDir, err := GetDatabaseDir()
	if err != nil {
		t.Fatalf("GetDatabaseDir failed: %v", err)
	}
	// Verify directory exists
	if _, err := os.Stat(dbDir); os.IsNotExist(err) {
		t.Errorf("Database directory was not created: %s", dbDir)
	}
}

func TestOpenCache(t *testing.T) {
	c, err := OpenCache(t.TempDir(), 1<<20)
	if err != nil {
		t.Fatalf("OpenCache: %v", err)
	}
	defer c.Close()

	if err := c.Save(3, []byte("three")); err != nil {
		t.Fatal(err)
	}
	if data, ok, err := c.Disk.Load(3); err != nil || !ok || string(data) != "three" {
		t.Errorf("disk Load = %q, %v, %v", data, ok, err)
	}
	if err := c.Disk.RecordGame(GameResult{Status: "draw", Level: "greedy", Plies: 10}); err != nil {
		t.Fatal(err)
	}
}

// brokenStore fails every call.
type brokenStore struct{}

func (brokenStore) Load(uint64) ([]byte, bool, error) { return nil, false, errors.New("broken") }
func (brokenStore) Save(uint64, []byte) error         { return errors.New("broken") }

func TestTieredFillFailureLogged(t *testing.T) {
	slow := openTest(t)
	if err := slow.Save(5, []byte("five")); err != nil {
		t.Fatal(err)
	}
	var logs bytes.Buffer
	tiered := Tiered{Fast: brokenStore{}, Slow: slow, Log: zerolog.New(&logs)}

	data, ok, err := tiered.Load(5)
	if err != nil || !ok || string(data) != "five" {
		t.Fatalf("Load = %q, %v, %v", data, ok, err)
	}
	if !strings.Contains(logs.String(), "snapshot fill failed") {
		t.Errorf("fill failure not logged: %q", logs.String())
	}
}
