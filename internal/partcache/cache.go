package partcache

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	gocache "github.com/patrickmn/go-cache"

	"assparse/internal/logging"
	"assparse/internal/parser"
)

// Cacheable reports whether results for input can be stored. JSON rewrites
// invalid UTF-8 as U+FFFD, so such inputs would not read back as parsed;
// Get always misses and Put is a no-op for them.
func Cacheable(input string) bool {
	return utf8.ValidString(input)
}

// Stats summarizes cache contents.
type Stats struct {
	Path          string `json:"path" yaml:"path"`
	Entries       int64  `json:"entries" yaml:"entries"`
	StoredHits    int64  `json:"stored_hits" yaml:"stored_hits"`
	MemoryEntries int    `json:"memory_entries" yaml:"memory_entries"`
	MemoryHits    int64  `json:"memory_hits" yaml:"memory_hits"`
}

// Key returns the hex SHA-256 of rule and input separated by a NUL byte.
func Key(rule parser.Rule, input string) string {
	sum := sha256.Sum256([]byte(string(rule) + "\x00" + input))
	return hex.EncodeToString(sum[:])
}

// Get returns the stored encoding for rule and input.
func (c *Cache) Get(ctx context.Context, rule parser.Rule, input string) (json.RawMessage, bool, error) {
	ctx = ensureContext(ctx)
	if !Cacheable(input) {
		return nil, false, nil
	}
	key := Key(rule, input)

	if c.memory != nil {
		if v, ok := c.memory.Get(key); ok {
			c.memoryHits.Add(1)
			return v.(json.RawMessage), true, nil
		}
	}

	var value string
	err := c.db.QueryRowContext(ctx, "SELECT value FROM parse_results WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("query parse result: %w", err)
	}

	if _, err := c.execWithRetry(ctx,
		"UPDATE parse_results SET hits = hits + 1, last_hit_at = ? WHERE key = ?",
		time.Now().UTC().Format(time.RFC3339Nano), key,
	); err != nil {
		c.logger.Warn("parse cache hit not recorded",
			logging.String(logging.FieldEventType, "cache_hit_update_failed"),
			logging.String(logging.FieldImpact, "cache statistics undercount hits"),
			logging.Error(err),
		)
	}

	raw := json.RawMessage(value)
	if c.memory != nil {
		c.memory.Set(key, raw, gocache.DefaultExpiration)
	}
	return raw, true, nil
}

// Put stores value for rule and input, replacing any previous encoding.
func (c *Cache) Put(ctx context.Context, rule parser.Rule, input string, value json.RawMessage) error {
	if !Cacheable(input) {
		return nil
	}
	if !json.Valid(value) {
		return fmt.Errorf("put %s: value is not valid JSON", rule)
	}
	key := Key(rule, input)
	_, err := c.execWithRetry(ctx,
		`INSERT INTO parse_results (key, rule, input, value, created_at) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(rule), input, string(value), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("store parse result: %w", err)
	}
	if c.memory != nil {
		c.memory.Set(key, append(json.RawMessage(nil), value...), gocache.DefaultExpiration)
	}
	return nil
}

// Stats reports row counts and hit totals.
func (c *Cache) Stats(ctx context.Context) (Stats, error) {
	ctx = ensureContext(ctx)
	stats := Stats{Path: c.path, MemoryHits: c.memoryHits.Load()}
	if c.memory != nil {
		stats.MemoryEntries = c.memory.ItemCount()
	}
	err := c.db.QueryRowContext(ctx,
		"SELECT COUNT(1), COALESCE(SUM(hits), 0) FROM parse_results",
	).Scan(&stats.Entries, &stats.StoredHits)
	if err != nil {
		return Stats{}, fmt.Errorf("query cache stats: %w", err)
	}
	return stats, nil
}

// Clear removes every stored result and empties the memory front. It returns
// the number of rows deleted.
func (c *Cache) Clear(ctx context.Context) (int64, error) {
	res, err := c.execWithRetry(ctx, "DELETE FROM parse_results")
	if err != nil {
		return 0, fmt.Errorf("clear parse results: %w", err)
	}
	if c.memory != nil {
		c.memory.Flush()
	}
	c.memoryHits.Store(0)
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count cleared rows: %w", err)
	}
	c.logger.Info("parse cache cleared", logging.Int64("removed", removed))
	return removed, nil
}
