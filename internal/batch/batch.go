package batch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"assparse/internal/logging"
	"assparse/internal/parser"
	"assparse/internal/partcache"
	"assparse/internal/parts"
	"assparse/internal/script"
	"assparse/internal/timing"
)

// Options configures a batch run.
type Options struct {
	// Workers bounds concurrent parses. Values below 1 mean one worker.
	Workers int
	// Cache is consulted before parsing and filled afterwards. Nil disables caching.
	Cache *partcache.Cache
	// Resolve fills unset move and transform times from each line's duration.
	Resolve bool
	// Karaoke computes per-syllable timing for each line.
	Karaoke bool
	Logger  *slog.Logger
}

// Result is the outcome for one dialogue line.
type Result struct {
	Dialogue  script.Dialogue
	Parts     []parts.Part
	Syllables []timing.Syllable
	Cached    bool
	Err       error
}

// Run summarizes a completed batch.
type Run struct {
	ID        string
	Results   []Result
	Failed    int
	CacheHits int
	Elapsed   time.Duration
}

// Parse parses every dialogue and returns results in input order. The
// returned error is non-nil only when ctx is cancelled.
func Parse(ctx context.Context, dialogues []script.Dialogue, opts Options) (*Run, error) {
	run := &Run{ID: uuid.NewString(), Results: make([]Result, len(dialogues))}
	ctx = logging.WithRequestID(ctx, run.ID)
	logger := logging.WithContext(ctx, logging.NewComponentLogger(opts.Logger, "batch"))
	started := time.Now()

	logger.Debug("batch started",
		logging.Int("dialogues", len(dialogues)),
		logging.Int("workers", max(opts.Workers, 1)),
		logging.Bool("cache", opts.Cache != nil),
	)

	var hits atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Workers, 1))
	for i, d := range dialogues {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res := parseOne(gctx, d, opts, logger)
			if res.Cached {
				hits.Add(1)
			}
			run.Results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch %s: %w", run.ID, err)
	}

	for _, res := range run.Results {
		if res.Err != nil {
			run.Failed++
		}
	}
	run.CacheHits = int(hits.Load())
	run.Elapsed = time.Since(started)

	logger.Info("batch finished",
		logging.Int("dialogues", len(dialogues)),
		logging.Int("failed", run.Failed),
		logging.Int("cache_hits", run.CacheHits),
		logging.Duration("elapsed", run.Elapsed),
	)
	return run, nil
}

func parseOne(ctx context.Context, d script.Dialogue, opts Options, logger *slog.Logger) Result {
	res := Result{Dialogue: d}
	ps, cached, err := lookup(ctx, d.Text, opts.Cache, logger)
	if err != nil {
		res.Err = err
		var perr *parser.ParseError
		if errors.As(err, &perr) {
			logging.WarnWithContext(logger, "dialogue not parsed", "dialogue_parse_failed",
				logging.Int("line", d.Line),
				logging.Int("offset", perr.Offset),
				logging.String(logging.FieldErrorHint, "check for an unterminated { block"),
				logging.String(logging.FieldImpact, "line omitted from output"),
			)
		}
		return res
	}
	res.Cached = cached

	if opts.Resolve {
		ps = timing.Resolve(ps, d.Duration())
	}
	if opts.Karaoke {
		res.Syllables = timing.Karaoke(ps)
	}
	res.Parts = ps
	return res
}

// lookup returns the parts for text, reading through the cache when present.
// Cache failures are logged and fall back to parsing.
func lookup(ctx context.Context, text string, cache *partcache.Cache, logger *slog.Logger) ([]parts.Part, bool, error) {
	if cache != nil {
		raw, ok, err := cache.Get(ctx, parser.RuleDialogueParts, text)
		switch {
		case err != nil:
			logger.Warn("parse cache read failed", logging.Error(err), logging.String(logging.FieldImpact, "line parsed without cache"))
		case ok:
			ps, decodeErr := parts.Decode(raw)
			if decodeErr == nil {
				return ps, true, nil
			}
			logger.Warn("cached parts unreadable", logging.Error(decodeErr), logging.String(logging.FieldErrorHint, "run assparse cache clear"))
		}
	}

	ps, err := parser.ParseDialogueParts(text)
	if err != nil {
		return nil, false, err
	}
	// Cached parts come back saturated; fresh ones must match them.
	ps = parts.Saturate(ps)

	if cache != nil {
		encoded, err := json.Marshal(parts.Wrap(ps))
		if err == nil {
			err = cache.Put(ctx, parser.RuleDialogueParts, text, encoded)
		}
		if err != nil {
			logger.Warn("parse cache write failed", logging.Error(err), logging.String(logging.FieldImpact, "line will be parsed again next time"))
		}
	}
	return ps, false, nil
}
