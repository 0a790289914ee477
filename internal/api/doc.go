// Package api serves the parser over HTTP.
//
// # Endpoints
//
// POST /api/parse: parse one input with a named rule. The body is a
// ParseRequest; the reply is a ParseResponse whose value carries the same
// tagged JSON encoding the CLI prints. Unknown rules are rejected with 400,
// oversized inputs with 413, and inputs the rule cannot consume with 422.
//
// GET /api/rules: every registered rule name, sorted.
//
// GET /api/status: process and parse cache statistics.
//
// # Design Notes
//
// DTOs use camelCase JSON tags. Every request is assigned a UUID that is
// echoed in the X-Request-ID header and attached to log records as the
// correlation ID. When a token is configured all endpoints require
// "Authorization: Bearer <token>". A file lock in the cache directory keeps a
// single server per cache.
package api
