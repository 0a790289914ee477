package parser

import (
	"assparse/internal/drawing"
	"assparse/internal/parts"
)

// ruleFunc is the shape of every grammar rule: extend parent, or pop the
// attempt and return nil.
type ruleFunc func(r *run, parent *node) *node

// optional builds a tag whose value may be omitted. A missing or malformed
// value yields the part with a nil payload.
func optional[T any](name string, value ruleFunc, build func(*T) parts.Part) ruleFunc {
	return func(r *run, parent *node) *node {
		current := newNode(parent)
		if r.read(current, name) == nil {
			parent.pop()
			return nil
		}

		var payload *T
		if valueNode := value(r, current); valueNode != nil {
			v := valueNode.value.(T)
			payload = &v
		}
		current.value = build(payload)
		return current
	}
}

// required builds a tag whose value must parse for the tag to match.
func required[T any](name string, value ruleFunc, build func(T) parts.Part) ruleFunc {
	return func(r *run, parent *node) *node {
		current := newNode(parent)
		if r.read(current, name) == nil {
			parent.pop()
			return nil
		}

		valueNode := value(r, current)
		if valueNode == nil {
			parent.pop()
			return nil
		}
		current.value = build(valueNode.value.(T))
		return current
	}
}

// parenthesized builds a tag of the form name(a,b,...) with a fixed number of
// decimal arguments.
func parenthesized(name string, count int, build func([]float64) parts.Part) ruleFunc {
	return func(r *run, parent *node) *node {
		current := newNode(parent)
		if r.read(current, name) == nil || r.read(current, "(") == nil {
			parent.pop()
			return nil
		}

		values, ok := r.arguments(current, count)
		if !ok || r.read(current, ")") == nil {
			parent.pop()
			return nil
		}
		current.value = build(values)
		return current
	}
}

// argument parses one decimal of a parenthesized argument list, allowing
// spaces on either side.
func (r *run) argument(parent *node) *node {
	current := newNode(parent)
	r.skipSpaces(current)
	valueNode := r.parseDecimal(current)
	if valueNode == nil {
		parent.pop()
		return nil
	}
	r.skipSpaces(current)
	current.value = valueNode.value
	return current
}

// arguments parses count comma-separated arguments into parent. On failure
// the caller owns the rollback.
func (r *run) arguments(parent *node, count int) ([]float64, bool) {
	values := make([]float64, 0, count)
	for i := range count {
		if i > 0 && r.read(parent, ",") == nil {
			return nil, false
		}
		valueNode := r.argument(parent)
		if valueNode == nil {
			return nil, false
		}
		values = append(values, valueNode.value.(float64))
	}
	return values, true
}

func seconds(milliseconds float64) float64 {
	return milliseconds / 1000
}

func scaled(v *float64, divisor float64) *float64 {
	if v == nil {
		return nil
	}
	s := *v / divisor
	return &s
}

// legacyAlignment maps SSA \a values onto numpad numbering.
var legacyAlignment = map[string]int{
	"1": 1, "2": 2, "3": 3,
	"5": 7, "6": 8, "7": 9,
	"9": 4, "10": 5, "11": 6,
}

func parseTagA(r *run, parent *node) *node {
	current := newNode(parent)
	if r.read(current, "a") == nil {
		parent.pop()
		return nil
	}

	digits := r.peek(current, 2)
	if _, ok := legacyAlignment[digits]; !ok || len(digits) < 2 {
		digits = r.peek(current, 1)
	}
	value, ok := legacyAlignment[digits]
	if !ok {
		parent.pop()
		return nil
	}

	newLeaf(current, digits)
	current.value = parts.Alignment{Value: value}
	return current
}

func parseTagAn(r *run, parent *node) *node {
	current := newNode(parent)
	if r.read(current, "an") == nil {
		parent.pop()
		return nil
	}

	next := r.peek(current, 1)
	if next == "" || next[0] < '1' || next[0] > '9' {
		parent.pop()
		return nil
	}

	newLeaf(current, next)
	current.value = parts.Alignment{Value: int(next[0] - '0')}
	return current
}

func parseTagB(r *run, parent *node) *node {
	current := newNode(parent)
	if r.read(current, "b") == nil {
		parent.pop()
		return nil
	}

	var bold parts.Bold
	if next := r.peek(current, 3); len(next) == 3 && next[0] >= '1' && next[0] <= '9' && next[1:] == "00" {
		newLeaf(current, next)
		weight := int(next[0]-'0') * 100
		bold.Weight = &weight
	} else if toggle := r.parseEnableDisable(current); toggle != nil {
		enabled := toggle.value.(bool)
		bold.Enabled = &enabled
	}

	current.value = bold
	return current
}

func parseTagQ(r *run, parent *node) *node {
	current := newNode(parent)
	if r.read(current, "q") == nil {
		parent.pop()
		return nil
	}

	next := r.peek(current, 1)
	if next == "" || next[0] < '0' || next[0] > '3' {
		parent.pop()
		return nil
	}

	newLeaf(current, next)
	current.value = parts.WrappingStyle{Value: int(next[0] - '0')}
	return current
}

// nameTag builds \fn and \r: everything up to the next tag or the end of the
// block is the name.
func nameTag(name string, build func(*string) parts.Part) ruleFunc {
	return func(r *run, parent *node) *node {
		current := newNode(parent)
		if r.read(current, name) == nil {
			parent.pop()
			return nil
		}

		valueNode := r.takeWhile(current, func(c byte) bool { return c != '\\' && c != '}' })
		var value *string
		if v := valueNode.text(); v != "" {
			value = &v
		}
		current.value = build(value)
		return current
	}
}

func parseTagMove(r *run, parent *node) *node {
	current := newNode(parent)
	if r.read(current, "move") == nil || r.read(current, "(") == nil {
		parent.pop()
		return nil
	}

	coords, ok := r.arguments(current, 4)
	if !ok {
		parent.pop()
		return nil
	}

	move := parts.Move{X1: coords[0], Y1: coords[1], X2: coords[2], Y2: coords[3]}
	if r.read(current, ",") != nil {
		times, ok := r.arguments(current, 2)
		if !ok {
			parent.pop()
			return nil
		}
		t1, t2 := seconds(times[0]), seconds(times[1])
		move.T1, move.T2 = &t1, &t2
	}

	if r.read(current, ")") == nil {
		parent.pop()
		return nil
	}
	current.value = move
	return current
}

// clipTag builds \clip and \iclip. The argument list is either four
// rectangle coordinates, or an optional scale followed by drawing commands.
func clipTag(name string, inside bool) ruleFunc {
	return func(r *run, parent *node) *node {
		current := newNode(parent)
		if r.read(current, name) == nil || r.read(current, "(") == nil {
			parent.pop()
			return nil
		}

		scale := 1.0
		if first := r.argument(current); first != nil {
			if r.read(current, ",") == nil {
				parent.pop()
				return nil
			}
			if second := r.argument(current); second != nil {
				rest, ok := r.rectangleTail(current)
				if !ok || r.read(current, ")") == nil {
					parent.pop()
					return nil
				}
				current.value = parts.RectangularClip{
					X1:     first.value.(float64),
					Y1:     second.value.(float64),
					X2:     rest[0],
					Y2:     rest[1],
					Inside: inside,
				}
				return current
			}
			scale = first.value.(float64)
		}

		body := r.takeWhile(current, func(c byte) bool { return c != ')' && c != '}' })
		instructions, ok := parseDrawing(body.text())
		if !ok || r.read(current, ")") == nil {
			parent.pop()
			return nil
		}
		current.value = parts.VectorClip{Scale: scale, Instructions: instructions, Inside: inside}
		return current
	}
}

// rectangleTail parses ",x2,y2" after the first two rectangle coordinates.
func (r *run) rectangleTail(parent *node) ([]float64, bool) {
	if r.read(parent, ",") == nil {
		return nil, false
	}
	return r.arguments(parent, 2)
}

func parseTagT(r *run, parent *node) *node {
	current := newNode(parent)
	if r.read(current, "t") == nil || r.read(current, "(") == nil {
		parent.pop()
		return nil
	}

	var transform parts.Transform
	if first := r.argument(current); first != nil {
		if r.read(current, ",") == nil {
			parent.pop()
			return nil
		}
		if second := r.argument(current); second != nil {
			start, end := seconds(first.value.(float64)), seconds(second.value.(float64))
			transform.Start, transform.End = &start, &end
			if r.read(current, ",") == nil {
				parent.pop()
				return nil
			}
			if third := r.argument(current); third != nil {
				accel := third.value.(float64)
				transform.Accel = &accel
				if r.read(current, ",") == nil {
					parent.pop()
					return nil
				}
			}
		} else {
			accel := first.value.(float64)
			transform.Accel = &accel
		}
	}

	transform.Tags = make([]parts.Part, 0)
	for r.haveMore(current) {
		if next := r.peek(current, 1); next == ")" || next == "}" {
			break
		}
		child := r.parseTagOrComment(current, transformTagTable)
		if child == nil {
			parent.pop()
			return nil
		}
		transform.Tags = appendMerged(transform.Tags, child.value.(parts.Part))
	}

	// A missing close paren is tolerated.
	r.read(current, ")")

	current.value = transform
	return current
}

// parseDrawing runs the drawing grammar over a standalone string, as used by
// vector clips and drawing-mode text.
func parseDrawing(input string) ([]drawing.Instruction, bool) {
	result := execute(input, (*run).parseDrawingInstructions)
	if result == nil || result.end != len(input) {
		return nil, false
	}
	return result.value.([]drawing.Instruction), true
}
