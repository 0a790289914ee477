package parser

import "assparse/internal/parts"

type tagRule struct {
	name  string
	parse ruleFunc
}

// tagTable is tried in order at every backslash inside a tag block and the
// first match wins. A tag whose name extends another tag's name must come
// before it (frx before fr, fade before fad, an before a, and so on), since a
// literal read matches on prefix alone.
var tagTable = []tagRule{
	{"alpha", tagAlpha},
	{"iclip", tagIClip},
	{"xbord", tagXBord},
	{"ybord", tagYBord},
	{"xshad", tagXShad},
	{"yshad", tagYShad},

	{"blur", tagBlur},
	{"bord", tagBord},
	{"clip", tagClip},
	{"fade", tagFade},
	{"fscx", tagFscx},
	{"fscy", tagFscy},
	{"move", parseTagMove},
	{"shad", tagShad},

	{"fad", tagFad},
	{"fax", tagFax},
	{"fay", tagFay},
	{"frx", tagFrx},
	{"fry", tagFry},
	{"frz", tagFrz},
	{"fsp", tagFsp},
	{"org", tagOrg},
	{"pbo", tagPbo},
	{"pos", tagPos},

	{"an", parseTagAn},
	{"be", tagBe},
	{"fn", tagFn},
	{"fr", tagFr},
	{"fs", tagFs},
	{"kf", tagKf},
	{"ko", tagKo},
	{"1a", tag1a},
	{"1c", tag1c},
	{"2a", tag2a},
	{"2c", tag2c},
	{"3a", tag3a},
	{"3c", tag3c},
	{"4a", tag4a},
	{"4c", tag4c},

	{"a", parseTagA},
	{"b", parseTagB},
	{"c", tagC},
	{"i", tagI},
	{"k", tagK},
	{"K", tagSweepingK},
	{"p", tagP},
	{"q", parseTagQ},
	{"r", tagR},
	{"s", tagS},
	{"t", parseTagT},
	{"u", tagU},
}

// transformTagTable is the subset of tags that \t can animate, in the same
// precedence order as tagTable.
var transformTagTable = []tagRule{
	{"alpha", tagAlpha},
	{"iclip", tagIClip},
	{"xbord", tagXBord},
	{"ybord", tagYBord},
	{"xshad", tagXShad},
	{"yshad", tagYShad},

	{"blur", tagBlur},
	{"bord", tagBord},
	{"clip", tagClip},
	{"fscx", tagFscx},
	{"fscy", tagFscy},
	{"shad", tagShad},

	{"fax", tagFax},
	{"fay", tagFay},
	{"frx", tagFrx},
	{"fry", tagFry},
	{"frz", tagFrz},
	{"fsp", tagFsp},

	{"be", tagBe},
	{"fr", tagFr},
	{"fs", tagFs},
	{"1a", tag1a},
	{"1c", tag1c},
	{"2a", tag2a},
	{"2c", tag2c},
	{"3a", tag3a},
	{"3c", tag3c},
	{"4a", tag4a},
	{"4c", tag4c},

	{"c", tagC},
}

// parseTagOrComment offers a backslash to each rule of table and falls back
// to a one-character comment. It only returns nil at end of input.
func (r *run) parseTagOrComment(parent *node, table []tagRule) *node {
	if r.read(parent, `\`) != nil {
		for _, tag := range table {
			if child := tag.parse(r, parent); child != nil {
				return child
			}
		}
		// Unread the backslash.
		parent.pop()
	}
	return r.parseComment(parent)
}

func (r *run) parseDialogueParts(parent *node) *node {
	current := newNode(parent)
	collected := make([]parts.Part, 0)

	for r.haveMore(current) {
		if enclosed := r.parseEnclosedTags(current); enclosed != nil {
			for _, p := range enclosed.value.([]parts.Part) {
				collected = appendMerged(collected, p)
			}
			continue
		}

		child := r.parseNewline(current)
		if child == nil {
			child = r.parseHardspace(current)
		}
		if child == nil {
			child = r.parseText(current)
		}
		if child == nil {
			parent.pop()
			return nil
		}
		collected = appendMerged(collected, child.value.(parts.Part))
	}

	current.value = applyDrawingMode(collected)
	return current
}

func (r *run) parseEnclosedTags(parent *node) *node {
	current := newNode(parent)
	if r.read(current, "{") == nil {
		parent.pop()
		return nil
	}

	collected := make([]parts.Part, 0)
	for r.haveMore(current) && r.peek(current, 1) != "}" {
		child := r.parseTagOrComment(current, tagTable)
		if child == nil {
			parent.pop()
			return nil
		}
		collected = appendMerged(collected, child.value.(parts.Part))
	}

	if r.read(current, "}") == nil {
		parent.pop()
		return nil
	}
	current.value = collected
	return current
}

func (r *run) parseNewline(parent *node) *node {
	current := newNode(parent)
	if r.read(current, `\N`) == nil {
		parent.pop()
		return nil
	}
	current.value = parts.NewLine{}
	return current
}

func (r *run) parseHardspace(parent *node) *node {
	current := newNode(parent)
	if r.read(current, `\h`) == nil {
		parent.pop()
		return nil
	}
	current.value = parts.Text{Value: "\u00a0"}
	return current
}

// parseText consumes one character of dialogue text. An opening brace is
// never text: a block that does not close fails the line.
func (r *run) parseText(parent *node) *node {
	next := r.peekRune(parent)
	if next == "" || next == "{" {
		return nil
	}
	current := newNode(parent)
	newLeaf(current, next)
	current.value = parts.Text{Value: next}
	return current
}

func (r *run) parseComment(parent *node) *node {
	next := r.peekRune(parent)
	if next == "" {
		return nil
	}
	current := newNode(parent)
	newLeaf(current, next)
	current.value = parts.Comment{Value: next}
	return current
}

// appendMerged appends p, folding it into the previous part when both are
// Text or both are Comment.
func appendMerged(ps []parts.Part, p parts.Part) []parts.Part {
	if len(ps) == 0 {
		return append(ps, p)
	}
	last := len(ps) - 1
	switch next := p.(type) {
	case parts.Text:
		if prev, ok := ps[last].(parts.Text); ok {
			ps[last] = parts.Text{Value: prev.Value + next.Value}
			return ps
		}
	case parts.Comment:
		if prev, ok := ps[last].(parts.Comment); ok {
			ps[last] = parts.Comment{Value: prev.Value + next.Value}
			return ps
		}
	}
	return append(ps, p)
}

// applyDrawingMode replaces text that follows an enabled \p with the drawing
// path it spells. Text that is not a valid path is kept as text.
func applyDrawingMode(ps []parts.Part) []parts.Part {
	drawingMode := false
	for i, p := range ps {
		switch p := p.(type) {
		case parts.DrawingMode:
			drawingMode = p.Scale != 0
		case parts.Text:
			if !drawingMode {
				continue
			}
			if instructions, ok := parseDrawing(p.Value); ok {
				ps[i] = parts.DrawingInstructions{Instructions: instructions}
			}
		}
	}
	return ps
}
