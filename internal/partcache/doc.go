// Package partcache persists encoded parse results keyed by rule and input.
//
// Results live in a SQLite database under the configured cache directory
// (WAL journal, busy retries with backoff) and are fronted by an in-process
// TTL cache so repeated lines in a script or repeated API calls avoid the
// database round trip. Values are stored exactly as the parts encoder emits
// them; the cache never re-encodes.
package partcache
