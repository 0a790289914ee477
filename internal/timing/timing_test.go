package timing

import (
	"math"
	"reflect"
	"testing"

	"assparse/internal/parts"
)

func f64(v float64) *float64 { return &v }

func TestResolveFillsMissingTimes(t *testing.T) {
	ps := []parts.Part{
		parts.Move{X1: 0, Y1: 0, X2: 10, Y2: 10},
		parts.Move{X2: 1, T1: f64(0.5), T2: f64(1)},
		parts.Transform{Tags: []parts.Part{parts.Transform{}}},
		parts.Transform{Start: f64(0.2), End: f64(0.4), Accel: f64(2)},
		parts.Text{Value: "hi"},
	}

	got := Resolve(ps, 3)
	want := []parts.Part{
		parts.Move{X1: 0, Y1: 0, X2: 10, Y2: 10, T1: f64(0), T2: f64(3)},
		parts.Move{X2: 1, T1: f64(0.5), T2: f64(1)},
		parts.Transform{Start: f64(0), End: f64(3), Accel: f64(1), Tags: []parts.Part{parts.Transform{}}},
		parts.Transform{Start: f64(0.2), End: f64(0.4), Accel: f64(2)},
		parts.Text{Value: "hi"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve =\n%#v\nwant\n%#v", got, want)
	}
}

func TestResolveLeavesInputUntouched(t *testing.T) {
	ps := []parts.Part{parts.Move{}}
	_ = Resolve(ps, 5)
	if ps[0].(parts.Move).T1 != nil {
		t.Error("Resolve modified its input")
	}
}

func TestKaraokeClock(t *testing.T) {
	ps := []parts.Part{
		parts.Text{Value: "lead "},
		parts.ColorKaraoke{Duration: 0.5},
		parts.Text{Value: "ka"},
		parts.SweepingColorKaraoke{Duration: 1},
		parts.Text{Value: "ra"},
		parts.Italic{},
		parts.Text{Value: "o"},
		parts.OutlineKaraoke{Duration: 0.25},
		parts.NewLine{},
		parts.Text{Value: "ke"},
	}

	got := Karaoke(ps)
	want := []Syllable{
		{Kind: "colorKaraoke", Start: 0, Duration: 0.5, Text: "ka"},
		{Kind: "sweepingColorKaraoke", Start: 0.5, Duration: 1, Text: "rao"},
		{Kind: "outlineKaraoke", Start: 1.5, Duration: 0.25, Text: "\nke"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Karaoke =\n%#v\nwant\n%#v", got, want)
	}
	if end := got[2].End(); end != 1.75 {
		t.Errorf("End() = %v, want 1.75", end)
	}
}

func TestKaraokeWithoutTags(t *testing.T) {
	if got := Karaoke([]parts.Part{parts.Text{Value: "plain"}}); len(got) != 0 {
		t.Errorf("Karaoke = %#v, want none", got)
	}
}

func TestKaraokeClockSaturates(t *testing.T) {
	got := Karaoke([]parts.Part{
		parts.ColorKaraoke{Duration: math.Inf(1)},
		parts.Text{Value: "a"},
		parts.ColorKaraoke{Duration: math.MaxFloat64},
		parts.Text{Value: "b"},
	})
	want := []Syllable{
		{Kind: "colorKaraoke", Start: 0, Duration: math.MaxFloat64, Text: "a"},
		{Kind: "colorKaraoke", Start: math.MaxFloat64, Duration: math.MaxFloat64, Text: "b"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Karaoke =\n%#v\nwant\n%#v", got, want)
	}
}
