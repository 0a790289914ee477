package parser

import (
	"strconv"

	"assparse/internal/parts"
)

// int32Saturation caps integer magnitudes. Scripts use it as an "unbounded"
// sentinel, so larger literals clamp instead of failing.
const int32Saturation = 0xFFFFFFFF

func (r *run) parseUnsignedDecimal(parent *node) *node {
	current := newNode(parent)

	characteristic := r.takeWhile(current, isDigit)
	if characteristic.text() == "" {
		parent.pop()
		return nil
	}
	literal := characteristic.text()

	if r.read(current, ".") != nil {
		mantissa := r.takeWhile(current, isDigit)
		if mantissa.text() == "" {
			parent.pop()
			return nil
		}
		literal += "." + mantissa.text()
	}

	// The literal is digits only; overlong values come back as +Inf.
	value, _ := strconv.ParseFloat(literal, 64)
	current.value = value
	return current
}

func (r *run) parseDecimal(parent *node) *node {
	current := newNode(parent)
	negative := r.read(current, "-") != nil

	magnitude := r.parseUnsignedDecimal(current)
	if magnitude == nil {
		parent.pop()
		return nil
	}

	value := magnitude.value.(float64)
	if negative {
		value = -value
	}
	current.value = value
	return current
}

func (r *run) parseDecimalInt32(parent *node) *node {
	return r.parseInt32(parent, isDigit, 10)
}

func (r *run) parseHexInt32(parent *node) *node {
	return r.parseInt32(parent, isHexDigit, 16)
}

func (r *run) parseInt32(parent *node, accept func(byte) bool, base int) *node {
	current := newNode(parent)
	negative := r.read(current, "-") != nil

	digits := r.takeWhile(current, accept)
	if digits.text() == "" {
		parent.pop()
		return nil
	}

	magnitude, err := strconv.ParseUint(digits.text(), base, 64)
	if err != nil || magnitude > int32Saturation {
		magnitude = int32Saturation
	}
	value := int64(magnitude)
	if negative {
		value = -value
	}
	current.value = value
	return current
}

func (r *run) parseDecimalOrHexInt32(parent *node) *node {
	current := newNode(parent)

	var valueNode *node
	if r.read(current, "&H") != nil || r.read(current, "&h") != nil {
		valueNode = r.parseHexInt32(current)
	} else {
		valueNode = r.parseDecimalInt32(current)
	}
	if valueNode == nil {
		parent.pop()
		return nil
	}

	current.value = valueNode.value
	return current
}

// skipColorMarkers consumes any run of the & and H decorations that wrap hex
// colors and alphas (&H...&).
func (r *run) skipColorMarkers(parent *node) {
	for r.read(parent, "&") != nil || r.read(parent, "H") != nil || r.read(parent, "h") != nil {
	}
}

func (r *run) parseColor(parent *node) *node {
	current := newNode(parent)
	r.skipColorMarkers(current)

	valueNode := r.parseHexInt32(current)
	if valueNode == nil {
		parent.pop()
		return nil
	}
	r.skipColorMarkers(current)

	value := uint32(valueNode.value.(int64))
	current.value = parts.NewColor(uint8(value), uint8(value>>8), uint8(value>>16))
	return current
}

func (r *run) parseAlpha(parent *node) *node {
	current := newNode(parent)
	r.skipColorMarkers(current)

	valueNode := r.parseHexInt32(current)
	if valueNode == nil {
		parent.pop()
		return nil
	}
	r.skipColorMarkers(current)

	current.value = opacity(uint32(valueNode.value.(int64)))
	return current
}

func (r *run) parseColorWithAlpha(parent *node) *node {
	current := newNode(parent)

	valueNode := r.parseDecimalOrHexInt32(current)
	if valueNode == nil {
		parent.pop()
		return nil
	}

	value := uint32(valueNode.value.(int64))
	current.value = parts.Color{
		Red:   uint8(value),
		Green: uint8(value >> 8),
		Blue:  uint8(value >> 16),
		Alpha: opacity(value >> 24),
	}
	return current
}

func (r *run) parseEnableDisable(parent *node) *node {
	next := r.peek(parent, 1)
	if next != "0" && next != "1" {
		return nil
	}
	current := newLeaf(parent, next)
	current.value = next == "1"
	return current
}

// opacity converts an ASS alpha byte, which measures transparency, into an
// opacity in [0, 1].
func opacity(value uint32) float64 {
	return 1 - float64(value&0xFF)/0xFF
}
