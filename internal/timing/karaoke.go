package timing

import (
	"strings"

	"assparse/internal/parts"
)

// Syllable is the span of text highlighted by one karaoke tag.
type Syllable struct {
	Kind     string  `json:"kind" yaml:"kind"`
	Start    float64 `json:"start" yaml:"start"`
	Duration float64 `json:"duration" yaml:"duration"`
	Text     string  `json:"text" yaml:"text"`
}

// End returns the time the syllable finishes highlighting.
func (s Syllable) End() float64 {
	return s.Start + s.Duration
}

// Karaoke runs the karaoke clock over ps. Each karaoke tag starts where the
// previous one ended and owns the text up to the next karaoke tag. Text
// before the first karaoke tag is not part of any syllable. Times saturate
// at ±math.MaxFloat64 instead of overflowing.
func Karaoke(ps []parts.Part) []Syllable {
	var (
		syllables []Syllable
		clock     float64
		text      strings.Builder
	)

	flush := func() {
		if len(syllables) > 0 {
			syllables[len(syllables)-1].Text = text.String()
		}
		text.Reset()
	}
	begin := func(kind string, duration float64) {
		flush()
		duration = parts.Finite(duration)
		syllables = append(syllables, Syllable{Kind: kind, Start: clock, Duration: duration})
		clock = parts.Finite(clock + duration)
	}

	for _, p := range ps {
		switch v := p.(type) {
		case parts.ColorKaraoke:
			begin(v.Kind(), v.Duration)
		case parts.SweepingColorKaraoke:
			begin(v.Kind(), v.Duration)
		case parts.OutlineKaraoke:
			begin(v.Kind(), v.Duration)
		case parts.Text:
			text.WriteString(v.Value)
		case parts.NewLine:
			text.WriteString("\n")
		}
	}
	flush()
	return syllables
}
