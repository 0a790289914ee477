package parts

import (
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"assparse/internal/drawing"
)

func TestWrapJSON(t *testing.T) {
	three := 3.0
	ps := []Part{
		Text{Value: "hi"},
		NewLine{},
		Border{Value: &three},
		Border{},
	}

	data, err := json.Marshal(Wrap(ps))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `[{"kind":"text","data":{"value":"hi"}},` +
		`{"kind":"newLine","data":{}},` +
		`{"kind":"border","data":{"value":3}},` +
		`{"kind":"border","data":{"value":null}}]`
	if string(data) != want {
		t.Errorf("JSON = %s\nwant %s", data, want)
	}
}

func TestNestedPartsCarryKinds(t *testing.T) {
	five := 5.0
	ps := []Part{
		Transform{Tags: []Part{Border{Value: &five}}},
		VectorClip{Scale: 1, Instructions: []drawing.Instruction{drawing.Move{X: 1, Y: 2}}, Inside: true},
		DrawingInstructions{Instructions: []drawing.Instruction{drawing.Line{X: 3, Y: 4}}},
	}

	data, err := json.Marshal(Wrap(ps))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `[{"kind":"transform","data":{"start":null,"end":null,"accel":null,"tags":[{"kind":"border","data":{"value":5}}]}},` +
		`{"kind":"vectorClip","data":{"scale":1,"instructions":[{"kind":"move","data":{"x":1,"y":2}}],"inside":true}},` +
		`{"kind":"drawingInstructions","data":{"instructions":[{"kind":"line","data":{"x":3,"y":4}}]}}]`
	if string(data) != want {
		t.Errorf("JSON = %s\nwant %s", data, want)
	}
}

func TestNestedPartsYAML(t *testing.T) {
	five := 5.0
	data, err := yaml.Marshal(Wrap([]Part{Transform{Tags: []Part{Border{Value: &five}}}}))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	out := string(data)
	for _, want := range []string{"kind: transform", "kind: border", "value: 5"} {
		if !strings.Contains(out, want) {
			t.Errorf("YAML missing %q:\n%s", want, out)
		}
	}
}

func TestTagged(t *testing.T) {
	if _, ok := Tagged([]Part{Text{Value: "x"}}).([]Envelope); !ok {
		t.Error("Tagged([]Part) did not produce envelopes")
	}
	if _, ok := Tagged([]drawing.Instruction{drawing.Move{}}).([]drawing.Envelope); !ok {
		t.Error("Tagged([]Instruction) did not produce envelopes")
	}
	if env, ok := Tagged(Position{X: 1}).(Envelope); !ok || env.Kind != "position" {
		t.Errorf("Tagged(Position) = %#v", Tagged(Position{X: 1}))
	}
	if got := Tagged(42.0); got != 42.0 {
		t.Errorf("Tagged(42) = %v", got)
	}
}
