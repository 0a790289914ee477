package parts

import (
	"encoding/json"

	"assparse/internal/drawing"
)

// Envelope is the tagged encoding of a Part.
type Envelope struct {
	Kind string `json:"kind" yaml:"kind"`
	Data Part   `json:"data" yaml:"data"`
}

// Wrap converts parts into their tagged encoding, preserving order.
// Non-finite numbers are saturated as Saturate does.
func Wrap(ps []Part) []Envelope {
	out := make([]Envelope, 0, len(ps))
	for _, p := range ps {
		out = append(out, Envelope{Kind: p.Kind(), Data: saturatePart(p)})
	}
	return out
}

type transformEncoding struct {
	Start *float64   `json:"start" yaml:"start"`
	End   *float64   `json:"end" yaml:"end"`
	Accel *float64   `json:"accel" yaml:"accel"`
	Tags  []Envelope `json:"tags" yaml:"tags"`
}

type vectorClipEncoding struct {
	Scale        float64            `json:"scale" yaml:"scale"`
	Instructions []drawing.Envelope `json:"instructions" yaml:"instructions"`
	Inside       bool               `json:"inside" yaml:"inside"`
}

type drawingInstructionsEncoding struct {
	Instructions []drawing.Envelope `json:"instructions" yaml:"instructions"`
}

func (t Transform) encoding() transformEncoding {
	return transformEncoding{Start: t.Start, End: t.End, Accel: t.Accel, Tags: Wrap(t.Tags)}
}

// MarshalJSON tags the nested parts with their kinds.
func (t Transform) MarshalJSON() ([]byte, error) { return json.Marshal(t.encoding()) }

// MarshalYAML tags the nested parts with their kinds.
func (t Transform) MarshalYAML() (any, error) { return t.encoding(), nil }

func (c VectorClip) encoding() vectorClipEncoding {
	return vectorClipEncoding{Scale: c.Scale, Instructions: drawing.Wrap(c.Instructions), Inside: c.Inside}
}

// MarshalJSON tags the path instructions with their kinds.
func (c VectorClip) MarshalJSON() ([]byte, error) { return json.Marshal(c.encoding()) }

// MarshalYAML tags the path instructions with their kinds.
func (c VectorClip) MarshalYAML() (any, error) { return c.encoding(), nil }

func (d DrawingInstructions) encoding() drawingInstructionsEncoding {
	return drawingInstructionsEncoding{Instructions: drawing.Wrap(d.Instructions)}
}

// MarshalJSON tags the path instructions with their kinds.
func (d DrawingInstructions) MarshalJSON() ([]byte, error) { return json.Marshal(d.encoding()) }

// MarshalYAML tags the path instructions with their kinds.
func (d DrawingInstructions) MarshalYAML() (any, error) { return d.encoding(), nil }

// Tagged converts a parse result into the form that carries kind tags:
// part and instruction slices become envelope slices, a single part becomes
// one envelope. Other values are returned as is apart from non-finite
// numbers, which are saturated as Saturate does.
func Tagged(value any) any {
	switch v := saturateAny(value).(type) {
	case []Part:
		return Wrap(v)
	case []drawing.Instruction:
		return drawing.Wrap(v)
	case Part:
		return Envelope{Kind: v.Kind(), Data: v}
	default:
		return v
	}
}
