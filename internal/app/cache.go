package app

import (
	"fmt"
	"os"

	"github.com/Ahacad/financemonitor/config"
	"github.com/Ahacad/financemonitor/internal/cache"
)

// InitCacheStore opens the embedded BadgerDB cache using the provided
// configuration.
//
// Behavior:
//   - Creates the cache directory if it does not exist.
//   - Opens the badger database and wraps it in the Store interface.
//
// Returns:
//   - cache.Store: an open store (safe for concurrent use).
//   - error: if the directory cannot be created or the database opened.
func InitCacheStore(cfg config.Config) (cache.Store, error) {
	if err := os.MkdirAll(cfg.Cache.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache dir %s: %w", cfg.Cache.Dir, err)
	}
	store, err := cache.NewBadgerStore(cfg.Cache.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache at %s: %w", cfg.Cache.Dir, err)
	}
	return store, nil
}
