package game

import (
	"errors"
	"sync"
	"testing"
)

// mapStore is an in-memory SnapshotStore that counts calls.
type mapStore struct {
	mu     sync.Mutex
	data   map[uint64][]byte
	loads  int
	saves  int
	broken bool
}

func newMapStore() *mapStore {
	return &mapStore{data: make(map[uint64][]byte)}
}

func (s *mapStore) Load(key uint64) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loads++
	if s.broken {
		return nil, false, errors.New("disk on fire")
	}
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *mapStore) Save(key uint64, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves++
	s.data[key] = data
	return nil
}

func TestSnapshotKeyPrefixes(t *testing.T) {
	moves := []string{"e2e4", "e7e5", "g1f3"}
	keys := prefixKeys(moves)
	seen := make(map[uint64]bool)
	for i := range moves {
		if want := SnapshotKey(moves[:i+1]); keys[i] != want {
			t.Errorf("prefixKeys[%d] = %x, want %x", i, keys[i], want)
		}
		if seen[keys[i]] {
			t.Errorf("duplicate key at %d", i)
		}
		seen[keys[i]] = true
	}
}

func TestReplayCachedResumes(t *testing.T) {
	store := newMapStore()
	first := Play(Request{Moves: []string{"e2e4", "e7e5"}}, WithSnapshots(store))
	if first.Err != nil {
		t.Fatal(first.Err)
	}
	if store.saves != 1 {
		t.Fatalf("saves = %d, want 1", store.saves)
	}

	// Extending the history resumes from the stored prefix.
	longer := []string{"e2e4", "e7e5", "g1f3", "b8c6"}
	cached := Play(Request{Moves: longer}, WithSnapshots(store))
	plain := Play(Request{Moves: longer})
	if cached.FEN != plain.FEN || len(cached.Moves) != 4 {
		t.Errorf("cached replay = %s (%v), want %s", cached.FEN, cached.Moves, plain.FEN)
	}
	if len(cached.SAN) != 4 || cached.SAN[2] != "Nf3" {
		t.Errorf("SAN = %v", cached.SAN)
	}

	// Identical history is served entirely from the store.
	saves := store.saves
	again := Play(Request{Moves: longer}, WithSnapshots(store))
	if again.FEN != plain.FEN {
		t.Errorf("FEN = %s, want %s", again.FEN, plain.FEN)
	}
	if store.saves != saves {
		t.Error("full hit should not save again")
	}
}

func TestReplayCachedErrorIndex(t *testing.T) {
	store := newMapStore()
	Play(Request{Moves: []string{"e2e4", "e7e5"}}, WithSnapshots(store))

	rep := Play(Request{Moves: []string{"e2e4", "e7e5", "e4e5"}}, WithSnapshots(store))
	var me *MoveError
	if !errors.As(rep.Err, &me) || me.Index != 2 || !errors.Is(rep.Err, ErrIllegalMove) {
		t.Fatalf("err = %v", rep.Err)
	}
	if len(store.data) != 1 {
		t.Errorf("rejected history was stored")
	}
}

func TestReplayCachedStoreFailure(t *testing.T) {
	store := newMapStore()
	store.broken = true
	rep := Play(Request{Moves: []string{"e2e4", "e7e5"}}, WithSnapshots(store))
	if rep.Err != nil {
		t.Fatalf("store failure leaked into report: %v", rep.Err)
	}
	if len(rep.Moves) != 2 {
		t.Errorf("moves = %v", rep.Moves)
	}
}

func TestReplayCachedBadSnapshot(t *testing.T) {
	store := newMapStore()
	moves := []string{"e2e4"}
	store.data[SnapshotKey(moves)] = []byte("{not json")
	rep := Play(Request{Moves: moves}, WithSnapshots(store))
	if rep.Err != nil || rep.Board[28] != "P" {
		t.Errorf("report = %+v", rep)
	}
}
