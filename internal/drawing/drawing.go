package drawing

import (
	"encoding/json"
	"fmt"
)

// Instruction is one command of a drawing path. The set of implementations is
// closed: Move, Line and CubicBezier.
type Instruction interface {
	// Kind returns the stable name used when encoding the instruction.
	Kind() string
	instruction()
}

// Move starts a new subpath at (X, Y).
type Move struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Line draws a straight segment to (X, Y).
type Line struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// CubicBezier draws a cubic curve through two control points to (X3, Y3).
type CubicBezier struct {
	X1 float64 `json:"x1" yaml:"x1"`
	Y1 float64 `json:"y1" yaml:"y1"`
	X2 float64 `json:"x2" yaml:"x2"`
	Y2 float64 `json:"y2" yaml:"y2"`
	X3 float64 `json:"x3" yaml:"x3"`
	Y3 float64 `json:"y3" yaml:"y3"`
}

func (Move) Kind() string        { return "move" }
func (Line) Kind() string        { return "line" }
func (CubicBezier) Kind() string { return "cubicBezier" }

func (Move) instruction()        {}
func (Line) instruction()        {}
func (CubicBezier) instruction() {}

// Envelope is the tagged encoding of an Instruction.
type Envelope struct {
	Kind string      `json:"kind" yaml:"kind"`
	Data Instruction `json:"data" yaml:"data"`
}

// Wrap converts instructions into their tagged encoding.
func Wrap(instructions []Instruction) []Envelope {
	out := make([]Envelope, 0, len(instructions))
	for _, in := range instructions {
		out = append(out, Envelope{Kind: in.Kind(), Data: in})
	}
	return out
}

// Unwrap is the inverse of Wrap.
func Unwrap(envs []Envelope) []Instruction {
	out := make([]Instruction, 0, len(envs))
	for _, env := range envs {
		out = append(out, env.Data)
	}
	return out
}

// UnmarshalJSON selects the concrete instruction type from the kind tag.
func (e *Envelope) UnmarshalJSON(data []byte) error {
	var raw struct {
		Kind string          `json:"kind"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var (
		in  Instruction
		err error
	)
	switch raw.Kind {
	case "move":
		var m Move
		err = json.Unmarshal(raw.Data, &m)
		in = m
	case "line":
		var l Line
		err = json.Unmarshal(raw.Data, &l)
		in = l
	case "cubicBezier":
		var c CubicBezier
		err = json.Unmarshal(raw.Data, &c)
		in = c
	default:
		return fmt.Errorf("unknown drawing instruction kind %q", raw.Kind)
	}
	if err != nil {
		return fmt.Errorf("drawing instruction %s: %w", raw.Kind, err)
	}
	e.Kind, e.Data = raw.Kind, in
	return nil
}
