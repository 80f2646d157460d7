package cache

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/klauspost/compress/zstd"
)

// Store is a byte-oriented cache with per-entry TTL.
//
// Get reports (value, found, error); a missing or expired key is (nil, false,
// nil), not an error. Put with ttl <= 0 stores the entry without expiry.
// Badger records expiry at one-second Unix granularity, so sub-second TTLs
// truncate to an already-passed deadline and the entry is never readable.
type Store interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte, ttl time.Duration) error
	Ping() error
	Close() error
}

// badgerStore implements Store on an embedded BadgerDB. Values are
// zstd-compressed before hitting the value log; series payloads are JSON and
// compress well.
type badgerStore struct {
	db      *badger.DB
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// NewBadgerStore opens (or creates) a badger database rooted at dir.
func NewBadgerStore(dir string) (Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache store: %w", err)
	}

	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}

	return &badgerStore{db: db, encoder: encoder, decoder: decoder}, nil
}

func (s *badgerStore) Get(key string) ([]byte, bool, error) {
	var out []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			decoded, err := s.decoder.DecodeAll(val, nil)
			if err != nil {
				return fmt.Errorf("failed to decompress cache entry: %w", err)
			}
			out = decoded
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return out, true, nil
}

func (s *badgerStore) Put(key string, value []byte, ttl time.Duration) error {
	compressed := s.encoder.EncodeAll(value, make([]byte, 0, len(value)))
	return s.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(key), compressed)
		if ttl > 0 {
			entry = entry.WithTTL(ttl)
		}
		return txn.SetEntry(entry)
	})
}

// Ping reports whether the store is usable; wired into the readiness probe.
func (s *badgerStore) Ping() error {
	if s.db.IsClosed() {
		return errors.New("cache store is closed")
	}
	return nil
}

func (s *badgerStore) Close() error {
	s.encoder.Close()
	s.decoder.Close()
	return s.db.Close()
}
