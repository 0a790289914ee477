package parser

import "unicode/utf8"

// node is one unit of the backtracking tree. end always equals the end of the
// last child, or start when there are none.
type node struct {
	start    int
	end      int
	parent   *node
	children []*node
	value    any
}

func newNode(parent *node) *node {
	n := &node{parent: parent}
	if parent != nil {
		n.start = parent.end
		n.end = n.start
		parent.children = append(parent.children, n)
	}
	return n
}

// newLeaf creates a child that records a consumed literal.
func newLeaf(parent *node, literal string) *node {
	n := newNode(parent)
	n.setString(literal)
	return n
}

func (n *node) setEnd(end int) {
	n.end = end
	if n.parent != nil && n.parent.end != end {
		n.parent.setEnd(end)
	}
}

// setString stores a string value. A childless node advances its end past
// the string, which is how literal consumption is recorded.
func (n *node) setString(s string) {
	n.value = s
	if len(n.children) == 0 {
		n.setEnd(n.start + len(s))
	}
}

func (n *node) text() string {
	s, _ := n.value.(string)
	return s
}

// pop detaches the last child and rewinds end to the new last child.
func (n *node) pop() {
	last := len(n.children) - 1
	if last < 0 {
		return
	}
	n.children[last].parent = nil
	n.children[last] = nil
	n.children = n.children[:last]
	if last > 0 {
		n.setEnd(n.children[last-1].end)
	} else {
		n.setEnd(n.start)
	}
}

// run holds the input of a single parse. The cursor is always the end of the
// node a rule was handed.
type run struct {
	input string
}

func (r *run) haveMore(n *node) bool {
	return n.end < len(r.input)
}

// peek returns up to count bytes at the cursor without consuming them.
func (r *run) peek(n *node, count int) string {
	start := n.end
	if start >= len(r.input) {
		return ""
	}
	end := start + count
	if end > len(r.input) {
		end = len(r.input)
	}
	return r.input[start:end]
}

// peekRune returns the next whole character at the cursor.
func (r *run) peekRune(n *node) string {
	if !r.haveMore(n) {
		return ""
	}
	_, size := utf8.DecodeRuneInString(r.input[n.end:])
	return r.input[n.end : n.end+size]
}

// read consumes literal if it is next in the input. It returns nil and leaves
// parent untouched otherwise.
func (r *run) read(parent *node, literal string) *node {
	if r.peek(parent, len(literal)) != literal {
		return nil
	}
	return newLeaf(parent, literal)
}

// takeWhile consumes the longest run of bytes satisfying accept into a new
// child of parent. The run may be empty.
func (r *run) takeWhile(parent *node, accept func(byte) bool) *node {
	end := parent.end
	for end < len(r.input) && accept(r.input[end]) {
		end++
	}
	return newLeaf(parent, r.input[parent.end:end])
}

func (r *run) skipSpaces(parent *node) {
	for r.read(parent, " ") != nil {
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
