package parts

import "assparse/internal/drawing"

// Alignment positions the line using numpad numbering (1..9).
type Alignment struct {
	Value int `json:"value" yaml:"value"`
}

// ColorKaraoke highlights the following syllable instantly after Duration
// seconds (\k).
type ColorKaraoke struct {
	Duration float64 `json:"duration" yaml:"duration"`
}

// SweepingColorKaraoke sweeps the highlight across the following syllable
// over Duration seconds (\K, \kf).
type SweepingColorKaraoke struct {
	Duration float64 `json:"duration" yaml:"duration"`
}

// OutlineKaraoke highlights only the outline of the following syllable (\ko).
type OutlineKaraoke struct {
	Duration float64 `json:"duration" yaml:"duration"`
}

// WrappingStyle selects the line wrapping mode (0..3).
type WrappingStyle struct {
	Value int `json:"value" yaml:"value"`
}

// Reset restores the named style, or the line's own style when Value is nil.
type Reset struct {
	Value *string `json:"value" yaml:"value"`
}

// Position anchors the line at (X, Y).
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Move animates the anchor from (X1, Y1) to (X2, Y2). T1 and T2 are seconds
// relative to the line start; nil means the whole line duration.
type Move struct {
	X1 float64  `json:"x1" yaml:"x1"`
	Y1 float64  `json:"y1" yaml:"y1"`
	X2 float64  `json:"x2" yaml:"x2"`
	Y2 float64  `json:"y2" yaml:"y2"`
	T1 *float64 `json:"t1" yaml:"t1"`
	T2 *float64 `json:"t2" yaml:"t2"`
}

// RotationOrigin sets the pivot for rotations.
type RotationOrigin struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Fade fades in over Start seconds and out over End seconds.
type Fade struct {
	Start float64 `json:"start" yaml:"start"`
	End   float64 `json:"end" yaml:"end"`
}

// ComplexFade is the seven-argument \fade. A1..A3 are opacities, T1..T4 are
// seconds.
type ComplexFade struct {
	A1 float64 `json:"a1" yaml:"a1"`
	A2 float64 `json:"a2" yaml:"a2"`
	A3 float64 `json:"a3" yaml:"a3"`
	T1 float64 `json:"t1" yaml:"t1"`
	T2 float64 `json:"t2" yaml:"t2"`
	T3 float64 `json:"t3" yaml:"t3"`
	T4 float64 `json:"t4" yaml:"t4"`
}

// Transform animates Tags between Start and End seconds with the given
// acceleration. Nil times mean the whole line duration; nil Accel means 1.
type Transform struct {
	Start *float64
	End   *float64
	Accel *float64
	Tags  []Part
}

// RectangularClip restricts drawing to (Inside) or outside of a rectangle.
type RectangularClip struct {
	X1     float64 `json:"x1" yaml:"x1"`
	Y1     float64 `json:"y1" yaml:"y1"`
	X2     float64 `json:"x2" yaml:"x2"`
	Y2     float64 `json:"y2" yaml:"y2"`
	Inside bool    `json:"inside" yaml:"inside"`
}

// VectorClip restricts drawing to (Inside) or outside of a drawn path.
type VectorClip struct {
	Scale        float64
	Instructions []drawing.Instruction
	Inside       bool
}

// DrawingMode enables drawing mode with the given scale; zero disables it.
type DrawingMode struct {
	Scale float64 `json:"scale" yaml:"scale"`
}

// DrawingBaselineOffset shifts drawings vertically (\pbo).
type DrawingBaselineOffset struct {
	Value float64 `json:"value" yaml:"value"`
}

// DrawingInstructions is dialogue text interpreted as a drawing path.
type DrawingInstructions struct {
	Instructions []drawing.Instruction
}

func (Alignment) Kind() string             { return "alignment" }
func (ColorKaraoke) Kind() string          { return "colorKaraoke" }
func (SweepingColorKaraoke) Kind() string  { return "sweepingColorKaraoke" }
func (OutlineKaraoke) Kind() string        { return "outlineKaraoke" }
func (WrappingStyle) Kind() string         { return "wrappingStyle" }
func (Reset) Kind() string                 { return "reset" }
func (Position) Kind() string              { return "position" }
func (Move) Kind() string                  { return "move" }
func (RotationOrigin) Kind() string        { return "rotationOrigin" }
func (Fade) Kind() string                  { return "fade" }
func (ComplexFade) Kind() string           { return "complexFade" }
func (Transform) Kind() string             { return "transform" }
func (RectangularClip) Kind() string       { return "rectangularClip" }
func (VectorClip) Kind() string            { return "vectorClip" }
func (DrawingMode) Kind() string           { return "drawingMode" }
func (DrawingBaselineOffset) Kind() string { return "drawingBaselineOffset" }
func (DrawingInstructions) Kind() string   { return "drawingInstructions" }

func (Alignment) part()             {}
func (ColorKaraoke) part()          {}
func (SweepingColorKaraoke) part()  {}
func (OutlineKaraoke) part()        {}
func (WrappingStyle) part()         {}
func (Reset) part()                 {}
func (Position) part()              {}
func (Move) part()                  {}
func (RotationOrigin) part()        {}
func (Fade) part()                  {}
func (ComplexFade) part()           {}
func (Transform) part()             {}
func (RectangularClip) part()       {}
func (VectorClip) part()            {}
func (DrawingMode) part()           {}
func (DrawingBaselineOffset) part() {}
func (DrawingInstructions) part()   {}
