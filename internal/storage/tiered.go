package storage

import "github.com/rs/zerolog"

// SnapshotStore is the method set shared by the snapshot caches.
type SnapshotStore interface {
	Load(key uint64) ([]byte, bool, error)
	Save(key uint64, data []byte) error
}

// Tiered checks a fast cache before a slow one and fills the fast one on a
// slow hit. Saves go to both.
type Tiered struct {
	Fast SnapshotStore
	Slow SnapshotStore
	Log  zerolog.Logger // the zero value discards
}

// Load implements SnapshotStore.
func (t Tiered) Load(key uint64) ([]byte, bool, error) {
	if data, ok, err := t.Fast.Load(key); err == nil && ok {
		return data, true, nil
	}
	data, ok, err := t.Slow.Load(key)
	if err != nil || !ok {
		return nil, false, err
	}
	// A failed fill only means the next load goes to the slow tier again.
	if err := t.Fast.Save(key, data); err != nil {
		t.Log.Warn().Err(err).Uint64("key", key).Msg("snapshot fill failed")
	}
	return data, true, nil
}

// Save implements SnapshotStore.
func (t Tiered) Save(key uint64, data []byte) error {
	if err := t.Fast.Save(key, data); err != nil {
		return err
	}
	return t.Slow.Save(key, data)
}

// Cache is a memory tier in front of a badger database.
type Cache struct {
	Tiered
	Memory *MemorySnapshots
	Disk   *Storage
}

// OpenCache opens the database in dir, or in the platform data directory when
// dir is empty, behind a memory tier of about memBytes.
func OpenCache(dir string, memBytes int64) (*Cache, error) {
	var disk *Storage
	var err error
	if dir == "" {
		disk, err = NewStorage()
	} else {
		disk, err = Open(dir)
	}
	if err != nil {
		return nil, err
	}
	mem, err := NewMemorySnapshots(memBytes)
	if err != nil {
		disk.Close()
		return nil, err
	}
	return &Cache{
		Tiered: Tiered{Fast: mem, Slow: disk},
		Memory: mem,
		Disk:   disk,
	}, nil
}

// Close releases both tiers.
func (c *Cache) Close() error {
	c.Memory.Close()
	return c.Disk.Close()
}
