package storage

import (
	"github.com/dgraph-io/ristretto/v2"
)

// MemorySnapshots is a bounded in-process snapshot cache. Entries may be
// evicted at any time; a miss only means a longer replay.
type MemorySnapshots struct {
	cache *ristretto.Cache[uint64, []byte]
}

// NewMemorySnapshots creates a cache holding about maxBytes of snapshots.
func NewMemorySnapshots(maxBytes int64) (*MemorySnapshots, error) {
	cache, err := ristretto.NewCache(&ristretto.Config[uint64, []byte]{
		NumCounters: 1e5,
		MaxCost:     maxBytes,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &MemorySnapshots{cache: cache}, nil
}

// Load returns the cached snapshot for key.
func (m *MemorySnapshots) Load(key uint64) ([]byte, bool, error) {
	data, ok := m.cache.Get(key)
	return data, ok, nil
}

// Save caches data under key. The write becomes visible asynchronously.
func (m *MemorySnapshots) Save(key uint64, data []byte) error {
	m.cache.Set(key, data, int64(len(data)))
	return nil
}

// Wait blocks until pending writes are visible.
func (m *MemorySnapshots) Wait() {
	m.cache.Wait()
}

// Close stops the cache's background goroutines.
func (m *MemorySnapshots) Close() {
	m.cache.Close()
}
