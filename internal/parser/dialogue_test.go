package parser

import (
	"errors"
	"reflect"
	"testing"

	"assparse/internal/drawing"
	"assparse/internal/parts"
)

func f64(v float64) *float64 { return &v }
func boolp(v bool) *bool     { return &v }
func strp(v string) *string  { return &v }
func intp(v int) *int        { return &v }

func colorp(r, g, b uint8) *parts.Color {
	c := parts.NewColor(r, g, b)
	return &c
}

func TestParseDialogueParts(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []parts.Part
	}{
		{"border literal", `{\bord3.5}`, []parts.Part{parts.Border{Value: f64(3.5)}}},
		{"border reset", `{\bord}`, []parts.Part{parts.Border{}}},
		{"italic on", `{\i1}`, []parts.Part{parts.Italic{Value: boolp(true)}}},
		{"italic off", `{\i0}`, []parts.Part{parts.Italic{Value: boolp(false)}}},
		{"plain text", "hello, world", []parts.Part{parts.Text{Value: "hello, world"}}},
		{"empty", "", []parts.Part{}},
		{"comments merge across blocks", `{;a}{;b}`, []parts.Part{parts.Comment{Value: ";a;b"}}},
		{"legacy alignment", `{\a5}`, []parts.Part{parts.Alignment{Value: 7}}},
		{"numpad alignment", `{\an7}`, []parts.Part{parts.Alignment{Value: 7}}},
		{"two digit legacy alignment", `{\a10}`, []parts.Part{parts.Alignment{Value: 5}}},
		{"legacy alignment out of range", `{\a4}`, []parts.Part{parts.Comment{Value: `\a4`}}},
		{
			"rectangular clip", `{\clip(10,20,30,40)}`,
			[]parts.Part{parts.RectangularClip{X1: 10, Y1: 20, X2: 30, Y2: 40, Inside: true}},
		},
		{
			"vector clip with scale", `{\clip(2,m 0 0 l 10 10)}`,
			[]parts.Part{parts.VectorClip{
				Scale:        2,
				Instructions: []drawing.Instruction{drawing.Move{X: 0, Y: 0}, drawing.Line{X: 10, Y: 10}},
				Inside:       true,
			}},
		},
		{
			"inverse vector clip", `{\iclip(m 0 0 l 5 5)}`,
			[]parts.Part{parts.VectorClip{
				Scale:        1,
				Instructions: []drawing.Instruction{drawing.Move{X: 0, Y: 0}, drawing.Line{X: 5, Y: 5}},
				Inside:       false,
			}},
		},
		{"move without times", `{\move(0,0,10,10)}`, []parts.Part{parts.Move{X1: 0, Y1: 0, X2: 10, Y2: 10}}},
		{
			"move with times", `{\move(0,0,10,10,500,1500)}`,
			[]parts.Part{parts.Move{X1: 0, Y1: 0, X2: 10, Y2: 10, T1: f64(0.5), T2: f64(1.5)}},
		},
		{"move with half a time pair", `{\move(0,0,10,10,500)}`, []parts.Part{parts.Comment{Value: `\move(0,0,10,10,500)`}}},
		{"position with spaces", `{\pos(1.5, 2)}`, []parts.Part{parts.Position{X: 1.5, Y: 2}}},
		{"origin", `{\org(-5,6)}`, []parts.Part{parts.RotationOrigin{X: -5, Y: 6}}},
		{"simple fade", `{\fad(100,200)}`, []parts.Part{parts.Fade{Start: 0.1, End: 0.2}}},
		{
			"complex fade", `{\fade(255,0,255,0,500,1000,1500)}`,
			[]parts.Part{parts.ComplexFade{A1: 0, A2: 1, A3: 0, T1: 0, T2: 0.5, T3: 1, T4: 1.5}},
		},
		{
			"transform without times", `{\t(\bord5)}`,
			[]parts.Part{parts.Transform{Tags: []parts.Part{parts.Border{Value: f64(5)}}}},
		},
		{
			"transform with times", `{\t(100,200,\fs20)}`,
			[]parts.Part{parts.Transform{Start: f64(0.1), End: f64(0.2), Tags: []parts.Part{parts.FontSize{Value: f64(20)}}}},
		},
		{
			"transform with times and accel", `{\t(0,1000,2,\1c&HFF&\alpha&HFF&)}`,
			[]parts.Part{parts.Transform{
				Start: f64(0), End: f64(1), Accel: f64(2),
				Tags: []parts.Part{
					parts.PrimaryColor{Value: colorp(255, 0, 0)},
					parts.Alpha{Value: f64(0)},
				},
			}},
		},
		{
			"transform with accel only", `{\t(0.5,\fscx150)}`,
			[]parts.Part{parts.Transform{Accel: f64(0.5), Tags: []parts.Part{parts.FontScaleX{Value: f64(1.5)}}}},
		},
		{
			"transform without close paren", `{\t(\bord5}`,
			[]parts.Part{parts.Transform{Tags: []parts.Part{parts.Border{Value: f64(5)}}}},
		},
		{
			"transform ignores positional tags", `{\t(\pos(1,2))}`,
			[]parts.Part{
				parts.Transform{Tags: []parts.Part{parts.Comment{Value: `\pos(1,2`}}},
				parts.Comment{Value: ")"},
			},
		},
		{
			"karaoke", `{\k50}ka{\kf100}ra{\ko25}{\K10}`,
			[]parts.Part{
				parts.ColorKaraoke{Duration: 0.5},
				parts.Text{Value: "ka"},
				parts.SweepingColorKaraoke{Duration: 1},
				parts.Text{Value: "ra"},
				parts.OutlineKaraoke{Duration: 0.25},
				parts.SweepingColorKaraoke{Duration: 0.1},
			},
		},
		{"karaoke requires a duration", `{\k}`, []parts.Part{parts.Comment{Value: `\k`}}},
		{"drawing mode requires a scale", `{\p}`, []parts.Part{parts.Comment{Value: `\p`}}},
		{
			"drawing mode text", `{\p1}m 0 0 l 10 0 10 10{\p0}`,
			[]parts.Part{
				parts.DrawingMode{Scale: 1},
				parts.DrawingInstructions{Instructions: []drawing.Instruction{
					drawing.Move{X: 0, Y: 0},
					drawing.Line{X: 10, Y: 0},
					drawing.Line{X: 10, Y: 10},
				}},
				parts.DrawingMode{Scale: 0},
			},
		},
		{
			"drawing mode keeps text that is not a path", `{\p1}not a path`,
			[]parts.Part{parts.DrawingMode{Scale: 1}, parts.Text{Value: "not a path"}},
		},
		{
			"text after drawing mode off", `{\p0}m 0 0`,
			[]parts.Part{parts.DrawingMode{Scale: 0}, parts.Text{Value: "m 0 0"}},
		},
		{"baseline offset", `{\pbo-2}`, []parts.Part{parts.DrawingBaselineOffset{Value: -2}}},
		{
			"hard newline", `Line one\NLine two`,
			[]parts.Part{parts.Text{Value: "Line one"}, parts.NewLine{}, parts.Text{Value: "Line two"}},
		},
		{"hard space merges", `a\hb`, []parts.Part{parts.Text{Value: "a\u00a0b"}}},
		{"stray backslash is text", `a\b`, []parts.Part{parts.Text{Value: `a\b`}}},
		{
			"font name runs to next tag", `{\fnArial Bold\b1}`,
			[]parts.Part{parts.FontName{Value: strp("Arial Bold")}, parts.Bold{Enabled: boolp(true)}},
		},
		{"reset to line style", `{\r}`, []parts.Part{parts.Reset{}}},
		{"reset to named style", `{\rAlt}`, []parts.Part{parts.Reset{Value: strp("Alt")}}},
		{"bold weight", `{\b700}`, []parts.Part{parts.Bold{Weight: intp(700)}}},
		{"bold reset", `{\b}`, []parts.Part{parts.Bold{}}},
		{"color alias", `{\c&H0000FF&}`, []parts.Part{parts.PrimaryColor{Value: colorp(255, 0, 0)}}},
		{
			"numbered colors", `{\2c&HFF0000&\3c&H00FF00&\4c}`,
			[]parts.Part{
				parts.SecondaryColor{Value: colorp(0, 0, 255)},
				parts.OutlineColor{Value: colorp(0, 255, 0)},
				parts.ShadowColor{},
			},
		},
		{
			"numbered alphas", `{\1a&H00&\3a&HFF&}`,
			[]parts.Part{parts.PrimaryAlpha{Value: f64(1)}, parts.OutlineAlpha{Value: f64(0)}},
		},
		{
			"rotation prefixes", `{\frx10\fry-5\frz3\fr20}`,
			[]parts.Part{
				parts.RotateX{Value: f64(10)},
				parts.RotateY{Value: f64(-5)},
				parts.RotateZ{Value: f64(3)},
				parts.RotateZ{Value: f64(20)},
			},
		},
		{
			"font size family", `{\fs40\fscx150\fscy50\fsp2.5}`,
			[]parts.Part{
				parts.FontSize{Value: f64(40)},
				parts.FontScaleX{Value: f64(1.5)},
				parts.FontScaleY{Value: f64(0.5)},
				parts.LetterSpacing{Value: f64(2.5)},
			},
		},
		{
			"font size is unsigned", `{\fs-5}`,
			[]parts.Part{parts.FontSize{}, parts.Comment{Value: "-5"}},
		},
		{
			"blurs", `{\be1\blur2.5}`,
			[]parts.Part{parts.Blur{Value: f64(1)}, parts.GaussianBlur{Value: f64(2.5)}},
		},
		{
			"borders and shadows", `{\xbord1\ybord2\shad3\xshad4\yshad5}`,
			[]parts.Part{
				parts.BorderX{Value: f64(1)},
				parts.BorderY{Value: f64(2)},
				parts.Shadow{Value: f64(3)},
				parts.ShadowX{Value: f64(4)},
				parts.ShadowY{Value: f64(5)},
			},
		},
		{
			"skew", `{\fax0.5\fay-0.25}`,
			[]parts.Part{parts.SkewX{Value: f64(0.5)}, parts.SkewY{Value: f64(-0.25)}},
		},
		{
			"toggles", `{\u1\s0}`,
			[]parts.Part{parts.Underline{Value: boolp(true)}, parts.StrikeThrough{Value: boolp(false)}},
		},
		{
			"wrapping style then alignment", `{\q2\an5}`,
			[]parts.Part{parts.WrappingStyle{Value: 2}, parts.Alignment{Value: 5}},
		},
		{"unknown tag degrades to comment", `{\xyz}`, []parts.Part{parts.Comment{Value: `\xyz`}}},
		{
			"tags and text interleave", `{\i1}Hello {\i0}there`,
			[]parts.Part{
				parts.Italic{Value: boolp(true)},
				parts.Text{Value: "Hello "},
				parts.Italic{Value: boolp(false)},
				parts.Text{Value: "there"},
			},
		},
		{
			"multibyte text", `{\b1}日本語`,
			[]parts.Part{parts.Bold{Enabled: boolp(true)}, parts.Text{Value: "日本語"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDialogueParts(tt.input)
			if err != nil {
				t.Fatalf("ParseDialogueParts(%q) error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseDialogueParts(%q)\n got: %#v\nwant: %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDialoguePartsRejectsUnterminatedBlock(t *testing.T) {
	for _, input := range []string{`{\bord3`, `text {`, `{`} {
		parsed, err := ParseDialogueParts(input)
		if !errors.Is(err, ErrParseFailed) {
			t.Errorf("ParseDialogueParts(%q) error = %v, want ErrParseFailed", input, err)
		}
		if parsed != nil {
			t.Errorf("ParseDialogueParts(%q) returned partial result %#v", input, parsed)
		}
	}
}

func TestTextIsASingleMergedPart(t *testing.T) {
	inputs := []string{"a", "plain words only", "symbols !@#$%^&*() and } braces", "ünïcödé"}
	for _, input := range inputs {
		got, err := ParseDialogueParts(input)
		if err != nil {
			t.Fatalf("ParseDialogueParts(%q) error: %v", input, err)
		}
		want := []parts.Part{parts.Text{Value: input}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("ParseDialogueParts(%q) = %#v, want one Text part", input, got)
		}
	}
}
