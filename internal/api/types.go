package api

import (
	"encoding/json"

	"assparse/internal/partcache"
	"assparse/internal/timing"
)

// ParseRequest is the body of POST /api/parse.
type ParseRequest struct {
	// Rule defaults to dialogueParts when empty.
	Rule  string `json:"rule"`
	Input string `json:"input"`
	// Duration, when set on a dialogueParts request, fills unset move and
	// transform times with the line duration in seconds.
	Duration *float64 `json:"duration,omitempty"`
	// Karaoke adds per-syllable timing to a dialogueParts reply.
	Karaoke bool `json:"karaoke,omitempty"`
}

// ParseResponse is the reply to a successful parse.
type ParseResponse struct {
	Rule      string            `json:"rule"`
	Value     json.RawMessage   `json:"value"`
	Syllables []timing.Syllable `json:"syllables,omitempty"`
	Cached    bool              `json:"cached"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
	// Offset is where the rule stopped on a 422 reply.
	Offset int `json:"offset,omitempty"`
}

// RulesResponse lists registered rule names.
type RulesResponse struct {
	Rules []string `json:"rules"`
}

// RequestStats counts parse requests since the server started.
type RequestStats struct {
	Parsed int64 `json:"parsed"`
	Failed int64 `json:"failed"`
	Cached int64 `json:"cached"`
}

// StatusResponse is the reply to GET /api/status.
type StatusResponse struct {
	Running       bool             `json:"running"`
	PID           int              `json:"pid"`
	StartedAt     string           `json:"startedAt"`
	UptimeSeconds float64          `json:"uptimeSeconds"`
	LockFilePath  string           `json:"lockFilePath"`
	Requests      RequestStats     `json:"requests"`
	Cache         *partcache.Stats `json:"cache,omitempty"`
}
