package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"

	"assparse/internal/logging"
	"assparse/internal/parser"
	"assparse/internal/parts"
	"assparse/internal/timing"
)

// requestBodySlack covers JSON framing and escapes around the input field.
const requestBodySlack = 4096

func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(logging.WithRequestID(r.Context(), id)))
	})
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	logger := logging.WithContext(r.Context(), s.logger)

	limit := s.cfg.Parser.MaxInputBytes
	r.Body = http.MaxBytesReader(w, r.Body, int64(2*limit+requestBodySlack))
	var req ParseRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: "request body too large"}, logger)
			return
		}
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()}, logger)
		return
	}
	if len(req.Input) > limit {
		writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{
			Error: fmt.Sprintf("input is %d bytes, limit is %d", len(req.Input), limit),
		}, logger)
		return
	}

	if req.Rule == "" {
		req.Rule = string(parser.RuleDialogueParts)
	}
	rule, ok := parser.LookupRule(req.Rule)
	if !ok {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("unknown rule %q", req.Rule)}, logger)
		return
	}
	timed := req.Duration != nil || req.Karaoke
	if timed && rule != parser.RuleDialogueParts {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "duration and karaoke apply to dialogueParts only"}, logger)
		return
	}
	logger = logger.With(logging.String(logging.FieldRule, string(rule)))

	resp := ParseResponse{Rule: string(rule)}
	value, err := s.lookup(r, rule, req.Input, &resp, logger)
	if err != nil {
		s.failed.Add(1)
		var perr *parser.ParseError
		if errors.As(err, &perr) {
			logger.Debug("parse rejected", logging.Int("offset", perr.Offset), logging.Int("input_bytes", len(req.Input)))
			writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: perr.Error(), Offset: perr.Offset}, logger)
			return
		}
		logger.Error("parse request failed", logging.Error(err))
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()}, logger)
		return
	}
	s.parsed.Add(1)

	if timed {
		ps, err := parts.Decode(value)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()}, logger)
			return
		}
		if req.Duration != nil {
			ps = timing.Resolve(ps, *req.Duration)
			if value, err = json.Marshal(parts.Wrap(ps)); err != nil {
				writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()}, logger)
				return
			}
		}
		if req.Karaoke {
			resp.Syllables = timing.Karaoke(ps)
		}
	}
	resp.Value = value
	writeJSON(w, http.StatusOK, resp, logger)
}

// lookup returns the encoded result for rule and input, consulting the cache
// first and storing fresh results in it.
func (s *Server) lookup(r *http.Request, rule parser.Rule, input string, resp *ParseResponse, logger *slog.Logger) (json.RawMessage, error) {
	ctx := r.Context()
	if s.cache != nil {
		raw, ok, err := s.cache.Get(ctx, rule, input)
		if err != nil {
			logger.Warn("parse cache read failed", logging.Error(err), logging.String(logging.FieldImpact, "request parsed without cache"))
		} else if ok {
			s.cached.Add(1)
			resp.Cached = true
			return raw, nil
		}
	}

	value, err := parser.Parse(input, rule)
	if err != nil {
		return nil, err
	}
	encoded, err := json.Marshal(parts.Tagged(value))
	if err != nil {
		return nil, fmt.Errorf("encode %s result: %w", rule, err)
	}
	if s.cache != nil {
		if err := s.cache.Put(ctx, rule, input, encoded); err != nil {
			logger.Warn("parse cache write failed", logging.Error(err))
		}
	}
	return encoded, nil
}

func (s *Server) handleRules(w http.ResponseWriter, r *http.Request) {
	rules := parser.Rules()
	names := make([]string, len(rules))
	for i, rule := range rules {
		names[i] = string(rule)
	}
	writeJSON(w, http.StatusOK, RulesResponse{Rules: names}, logging.WithContext(r.Context(), s.logger))
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	logger := logging.WithContext(r.Context(), s.logger)
	resp := StatusResponse{
		Running:       true,
		PID:           os.Getpid(),
		StartedAt:     s.started.UTC().Format(time.RFC3339),
		UptimeSeconds: time.Since(s.started).Seconds(),
		LockFilePath:  s.lockPath,
		Requests: RequestStats{
			Parsed: s.parsed.Load(),
			Failed: s.failed.Load(),
			Cached: s.cached.Load(),
		},
	}
	if s.cache != nil {
		stats, err := s.cache.Stats(r.Context())
		if err != nil {
			logger.Warn("parse cache stats unavailable", logging.Error(err))
		} else {
			resp.Cache = &stats
		}
	}
	writeJSON(w, http.StatusOK, resp, logger)
}

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", logging.Error(err))
	}
}
