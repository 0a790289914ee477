package parser

import "assparse/internal/drawing"

// operandCounts maps each drawing command to the number of decimals one
// repetition of it consumes.
var operandCounts = map[string]int{
	"m": 2,
	"l": 2,
	"b": 6,
}

// parseDrawingInstructions parses space-separated drawing commands. A command
// letter sets the type that every following group of numbers repeats until
// the next letter.
func (r *run) parseDrawingInstructions(parent *node) *node {
	current := newNode(parent)
	instructions := make([]drawing.Instruction, 0)
	lastType := ""

	for r.haveMore(current) {
		r.skipSpaces(current)
		if !r.haveMore(current) {
			break
		}

		next := r.peek(current, 1)
		if _, ok := operandCounts[next]; ok {
			newLeaf(current, next)
			lastType = next
			continue
		}

		if lastType == "" {
			parent.pop()
			return nil
		}
		instructionNode := r.parseDrawingInstruction(current, lastType)
		if instructionNode == nil {
			parent.pop()
			return nil
		}
		instructions = append(instructions, instructionNode.value.(drawing.Instruction))
	}

	current.value = instructions
	return current
}

func (r *run) parseDrawingInstruction(parent *node, kind string) *node {
	current := newNode(parent)

	operands := make([]float64, 0, operandCounts[kind])
	for range operandCounts[kind] {
		r.skipSpaces(current)
		valueNode := r.parseDecimal(current)
		if valueNode == nil {
			parent.pop()
			return nil
		}
		operands = append(operands, valueNode.value.(float64))
	}

	switch kind {
	case "m":
		current.value = drawing.Move{X: operands[0], Y: operands[1]}
	case "l":
		current.value = drawing.Line{X: operands[0], Y: operands[1]}
	default:
		current.value = drawing.CubicBezier{
			X1: operands[0], Y1: operands[1],
			X2: operands[2], Y2: operands[3],
			X3: operands[4], Y3: operands[5],
		}
	}
	return current
}
