package batch_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"testing"

	"assparse/internal/batch"
	"assparse/internal/logging"
	"assparse/internal/parser"
	"assparse/internal/parts"
	"assparse/internal/script"
	"assparse/internal/testsupport"
	"assparse/internal/timing"
)

func dialogues(texts ...string) []script.Dialogue {
	out := make([]script.Dialogue, len(texts))
	for i, text := range texts {
		out[i] = script.Dialogue{Line: i + 1, Start: float64(i), End: float64(i) + 2, Text: text}
	}
	return out
}

func TestParsePreservesOrder(t *testing.T) {
	texts := make([]string, 50)
	for i := range texts {
		texts[i] = fmt.Sprintf("line %d", i)
	}

	run, err := batch.Parse(context.Background(), dialogues(texts...), batch.Options{Workers: 8, Logger: logging.NewNop()})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if run.ID == "" {
		t.Fatal("expected run id")
	}
	if len(run.Results) != len(texts) {
		t.Fatalf("got %d results", len(run.Results))
	}
	for i, res := range run.Results {
		if res.Err != nil {
			t.Fatalf("result %d: %v", i, res.Err)
		}
		want := []parts.Part{parts.Text{Value: texts[i]}}
		if len(res.Parts) != 1 || res.Parts[0] != want[0] {
			t.Fatalf("result %d = %#v, want %#v", i, res.Parts, want)
		}
		if res.Dialogue.Line != i+1 {
			t.Fatalf("result %d carries dialogue line %d", i, res.Dialogue.Line)
		}
	}
}

func TestParseReportsFailuresWithoutAborting(t *testing.T) {
	run, err := batch.Parse(context.Background(), dialogues("ok", "{\\b1", "also ok"), batch.Options{Workers: 2})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if run.Failed != 1 {
		t.Fatalf("failed = %d, want 1", run.Failed)
	}
	if !errors.Is(run.Results[1].Err, parser.ErrParseFailed) {
		t.Fatalf("expected parse failure, got %v", run.Results[1].Err)
	}
	if run.Results[0].Err != nil || run.Results[2].Err != nil {
		t.Fatal("neighbouring lines should still parse")
	}
}

func TestParseAppliesTimingOptions(t *testing.T) {
	run, err := batch.Parse(context.Background(),
		dialogues(`{\move(0,0,10,10)\k50}ka{\k25}ra`),
		batch.Options{Resolve: true, Karaoke: true},
	)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	res := run.Results[0]
	mv, ok := res.Parts[0].(parts.Move)
	if !ok {
		t.Fatalf("first part = %#v", res.Parts[0])
	}
	if mv.T1 == nil || *mv.T1 != 0 || mv.T2 == nil || *mv.T2 != 2 {
		t.Fatalf("move times not resolved: %#v", mv)
	}
	want := []timing.Syllable{
		{Kind: "colorKaraoke", Start: 0, Duration: 0.5, Text: "ka"},
		{Kind: "colorKaraoke", Start: 0.5, Duration: 0.25, Text: "ra"},
	}
	if len(res.Syllables) != len(want) {
		t.Fatalf("syllables = %#v", res.Syllables)
	}
	for i := range want {
		if res.Syllables[i] != want[i] {
			t.Errorf("syllable %d = %#v, want %#v", i, res.Syllables[i], want[i])
		}
	}
}

func TestParseUsesCache(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cache := testsupport.MustOpenCache(t, cfg)
	ds := dialogues(`{\b1}bold`, `{\i1}italic`)
	opts := batch.Options{Workers: 2, Cache: cache}

	first, err := batch.Parse(context.Background(), ds, opts)
	if err != nil {
		t.Fatalf("first Parse: %v", err)
	}
	if first.CacheHits != 0 {
		t.Fatalf("cold run hits = %d", first.CacheHits)
	}

	second, err := batch.Parse(context.Background(), ds, opts)
	if err != nil {
		t.Fatalf("second Parse: %v", err)
	}
	if second.CacheHits != 2 {
		t.Fatalf("warm run hits = %d, want 2", second.CacheHits)
	}
	if first.ID == second.ID {
		t.Fatal("each run needs its own id")
	}
	for i := range ds {
		if !second.Results[i].Cached {
			t.Errorf("result %d not served from cache", i)
		}
		if !reflect.DeepEqual(first.Results[i].Parts, second.Results[i].Parts) {
			t.Errorf("cached parts differ:\n%#v\n%#v", first.Results[i].Parts, second.Results[i].Parts)
		}
	}
}

func TestParseCachesOverlongNumbers(t *testing.T) {
	cache := testsupport.MustOpenCache(t, testsupport.NewConfig(t))
	ds := dialogues(`{\bord` + strings.Repeat("9", 400) + `}x`)
	opts := batch.Options{Cache: cache}

	first, err := batch.Parse(context.Background(), ds, opts)
	if err != nil {
		t.Fatalf("first Parse: %v", err)
	}
	second, err := batch.Parse(context.Background(), ds, opts)
	if err != nil {
		t.Fatalf("second Parse: %v", err)
	}
	if second.CacheHits != 1 {
		t.Fatalf("warm run hits = %d, want 1", second.CacheHits)
	}
	border, ok := first.Results[0].Parts[0].(parts.Border)
	if !ok || border.Value == nil || *border.Value != math.MaxFloat64 {
		t.Fatalf("first part = %#v", first.Results[0].Parts[0])
	}
	if !reflect.DeepEqual(first.Results[0].Parts, second.Results[0].Parts) {
		t.Errorf("cached parts differ:\n%#v\n%#v", first.Results[0].Parts, second.Results[0].Parts)
	}
}

func TestParseKeepsInvalidUTF8Text(t *testing.T) {
	cache := testsupport.MustOpenCache(t, testsupport.NewConfig(t))
	ds := dialogues("a\xffb")
	opts := batch.Options{Cache: cache}

	for i := range 2 {
		run, err := batch.Parse(context.Background(), ds, opts)
		if err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		res := run.Results[0]
		if res.Cached {
			t.Fatalf("run %d served invalid UTF-8 from cache", i)
		}
		want := []parts.Part{parts.Text{Value: "a\xffb"}}
		if !reflect.DeepEqual(res.Parts, want) {
			t.Fatalf("run %d parts = %#v, want %#v", i, res.Parts, want)
		}
	}
}

func TestParseStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := batch.Parse(ctx, dialogues("a", "b"), batch.Options{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestParseEmpty(t *testing.T) {
	run, err := batch.Parse(context.Background(), nil, batch.Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(run.Results) != 0 || run.Failed != 0 {
		t.Fatalf("unexpected run %#v", run)
	}
}
