// Package cache persists the last successfully fetched dataset collections
// in Badger. When the remote spreadsheet is unreachable on startup, the
// loader falls back to this cache before resorting to the bundled seed data.
package cache

import (
	"encoding/json/v2"
	"fmt"
	"log/slog"
	"time"

	badger "github.com/dgraph-io/badger/v4"
)

// Collection keys under which dataset payloads are stored.
const (
	CollectionBusinesses = "businesses"
	CollectionCategories = "categories"
	CollectionSuburbs    = "suburbs"
	CollectionReviews    = "reviews"
)

const (
	keyPrefix     = "dataset:"
	fetchedAtKey  = "meta:fetched_at"
	fetchedAtForm = time.RFC3339
)

// Cache is a Badger-backed store for dataset collections.
type Cache struct {
	db     *badger.DB
	logger *slog.Logger
}

// Open opens (or creates) a cache at the given directory.
func Open(path string, logger *slog.Logger) (*Cache, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	opts := badger.DefaultOptions(path).
		WithLogger(nil).
		WithNumVersionsToKeep(1)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}

	return &Cache{db: db, logger: logger}, nil
}

// OpenInMemory opens an in-memory cache. Used in tests.
func OpenInMemory(logger *slog.Logger) (*Cache, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}

	return &Cache{db: db, logger: logger}, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Put stores a collection payload, replacing any previous value.
func (c *Cache) Put(collection string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", collection, err)
	}

	err = c.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(keyPrefix+collection), data); err != nil {
			return err
		}
		return txn.Set([]byte(fetchedAtKey), []byte(time.Now().UTC().Format(fetchedAtForm)))
	})
	if err != nil {
		return fmt.Errorf("store %s: %w", collection, err)
	}
	return nil
}

// Get loads a collection payload into out. Returns false when the
// collection has never been cached.
func (c *Cache) Get(collection string, out any) (bool, error) {
	var data []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + collection))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return false, nil
		}
		return false, fmt.Errorf("load %s: %w", collection, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("unmarshal %s: %w", collection, err)
	}
	return true, nil
}

// FetchedAt returns when the cache was last written, or the zero time if
// nothing has been cached yet.
func (c *Cache) FetchedAt() time.Time {
	var data []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(fetchedAtKey))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return time.Time{}
	}

	t, err := time.Parse(fetchedAtForm, string(data))
	if err != nil {
		return time.Time{}
	}
	return t
}
