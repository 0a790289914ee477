package parts

import (
	"encoding/json"
	"fmt"

	"assparse/internal/drawing"
)

type partDecoder func(json.RawMessage) (Part, error)

func decodeAs[T Part](raw json.RawMessage) (Part, error) {
	var v T
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
	}
	return v, nil
}

var partDecoders = map[string]partDecoder{
	"text":                  decodeAs[Text],
	"comment":               decodeAs[Comment],
	"newLine":               decodeAs[NewLine],
	"italic":                decodeAs[Italic],
	"bold":                  decodeAs[Bold],
	"underline":             decodeAs[Underline],
	"strikeThrough":         decodeAs[StrikeThrough],
	"border":                decodeAs[Border],
	"borderX":               decodeAs[BorderX],
	"borderY":               decodeAs[BorderY],
	"shadow":                decodeAs[Shadow],
	"shadowX":               decodeAs[ShadowX],
	"shadowY":               decodeAs[ShadowY],
	"blur":                  decodeAs[Blur],
	"gaussianBlur":          decodeAs[GaussianBlur],
	"fontName":              decodeAs[FontName],
	"fontSize":              decodeAs[FontSize],
	"fontScaleX":            decodeAs[FontScaleX],
	"fontScaleY":            decodeAs[FontScaleY],
	"letterSpacing":         decodeAs[LetterSpacing],
	"rotateX":               decodeAs[RotateX],
	"rotateY":               decodeAs[RotateY],
	"rotateZ":               decodeAs[RotateZ],
	"skewX":                 decodeAs[SkewX],
	"skewY":                 decodeAs[SkewY],
	"primaryColor":          decodeAs[PrimaryColor],
	"secondaryColor":        decodeAs[SecondaryColor],
	"outlineColor":          decodeAs[OutlineColor],
	"shadowColor":           decodeAs[ShadowColor],
	"alpha":                 decodeAs[Alpha],
	"primaryAlpha":          decodeAs[PrimaryAlpha],
	"secondaryAlpha":        decodeAs[SecondaryAlpha],
	"outlineAlpha":          decodeAs[OutlineAlpha],
	"shadowAlpha":           decodeAs[ShadowAlpha],
	"alignment":             decodeAs[Alignment],
	"colorKaraoke":          decodeAs[ColorKaraoke],
	"sweepingColorKaraoke":  decodeAs[SweepingColorKaraoke],
	"outlineKaraoke":        decodeAs[OutlineKaraoke],
	"wrappingStyle":         decodeAs[WrappingStyle],
	"reset":                 decodeAs[Reset],
	"position":              decodeAs[Position],
	"move":                  decodeAs[Move],
	"rotationOrigin":        decodeAs[RotationOrigin],
	"fade":                  decodeAs[Fade],
	"complexFade":           decodeAs[ComplexFade],
	"transform":             decodeAs[Transform],
	"rectangularClip":       decodeAs[RectangularClip],
	"vectorClip":            decodeAs[VectorClip],
	"drawingMode":           decodeAs[DrawingMode],
	"drawingBaselineOffset": decodeAs[DrawingBaselineOffset],
	"drawingInstructions":   decodeAs[DrawingInstructions],
}

// Decode reads a JSON array of part envelopes back into parts. Numbers that
// were saturated on encoding stay saturated.
func Decode(data []byte) ([]Part, error) {
	var envs []Envelope
	if err := json.Unmarshal(data, &envs); err != nil {
		return nil, fmt.Errorf("decode parts: %w", err)
	}
	return Unwrap(envs), nil
}

// Unwrap is the inverse of Wrap.
func Unwrap(envs []Envelope) []Part {
	out := make([]Part, 0, len(envs))
	for _, env := range envs {
		out = append(out, env.Data)
	}
	return out
}

type rawEnvelope struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

// UnmarshalJSON selects the concrete part type from the kind tag.
func (e *Envelope) UnmarshalJSON(data []byte) error {
	var raw rawEnvelope
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	decode, ok := partDecoders[raw.Kind]
	if !ok {
		return fmt.Errorf("unknown part kind %q", raw.Kind)
	}
	p, err := decode(raw.Data)
	if err != nil {
		return fmt.Errorf("part %s: %w", raw.Kind, err)
	}
	e.Kind, e.Data = raw.Kind, p
	return nil
}

// UnmarshalJSON reads the tagged nested parts written by MarshalJSON.
func (t *Transform) UnmarshalJSON(data []byte) error {
	var enc transformEncoding
	if err := json.Unmarshal(data, &enc); err != nil {
		return err
	}
	*t = Transform{Start: enc.Start, End: enc.End, Accel: enc.Accel, Tags: Unwrap(enc.Tags)}
	return nil
}

// UnmarshalJSON reads the tagged path instructions written by MarshalJSON.
func (c *VectorClip) UnmarshalJSON(data []byte) error {
	var enc vectorClipEncoding
	if err := json.Unmarshal(data, &enc); err != nil {
		return err
	}
	*c = VectorClip{Scale: enc.Scale, Instructions: drawing.Unwrap(enc.Instructions), Inside: enc.Inside}
	return nil
}

// UnmarshalJSON reads the tagged path instructions written by MarshalJSON.
func (d *DrawingInstructions) UnmarshalJSON(data []byte) error {
	var enc drawingInstructionsEncoding
	if err := json.Unmarshal(data, &enc); err != nil {
		return err
	}
	*d = DrawingInstructions{Instructions: drawing.Unwrap(enc.Instructions)}
	return nil
}
