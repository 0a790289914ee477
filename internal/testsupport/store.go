package testsupport

import (
	"testing"

	"assparse/internal/config"
	"assparse/internal/logging"
	"assparse/internal/partcache"
)

// MustOpenCache opens a partcache.Cache for tests and registers cleanup.
func MustOpenCache(t testing.TB, cfg *config.Config) *partcache.Cache {
	t.Helper()

	cache, err := partcache.Open(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("partcache.Open: %v", err)
	}
	t.Cleanup(func() {
		_ = cache.Close()
	})
	return cache
}
