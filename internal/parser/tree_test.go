package parser

import "testing"

func TestReadAdvancesAndPopRewinds(t *testing.T) {
	r := &run{input: "abcdef"}
	root := newNode(nil)

	if r.read(root, "ab") == nil {
		t.Fatal("read(ab) = nil, want match")
	}
	if root.end != 2 {
		t.Fatalf("root.end = %d, want 2", root.end)
	}

	attempt := newNode(root)
	if r.read(attempt, "cd") == nil {
		t.Fatal("read(cd) = nil, want match")
	}
	if root.end != 4 {
		t.Fatalf("root.end after nested read = %d, want 4", root.end)
	}

	root.pop()
	if root.end != 2 {
		t.Errorf("root.end after pop = %d, want 2", root.end)
	}
	if len(root.children) != 1 {
		t.Errorf("children after pop = %d, want 1", len(root.children))
	}

	root.pop()
	if root.end != 0 {
		t.Errorf("root.end after second pop = %d, want 0", root.end)
	}
}

func TestReadMismatchDoesNotMutate(t *testing.T) {
	r := &run{input: "abc"}
	root := newNode(nil)

	if r.read(root, "abd") != nil {
		t.Fatal("read(abd) matched, want nil")
	}
	if r.read(root, "abcd") != nil {
		t.Fatal("read past end matched, want nil")
	}
	if root.end != 0 || len(root.children) != 0 {
		t.Errorf("root mutated: end=%d children=%d", root.end, len(root.children))
	}
}

func TestPeekAndHaveMore(t *testing.T) {
	r := &run{input: "héllo"}
	root := newNode(nil)

	if got := r.peek(root, 10); got != "héllo" {
		t.Errorf("peek(10) = %q", got)
	}
	r.read(root, "h")
	if got := r.peekRune(root); got != "é" {
		t.Errorf("peekRune = %q, want é", got)
	}
	newLeaf(root, r.peekRune(root))
	if root.end != 3 {
		t.Errorf("end after rune = %d, want 3", root.end)
	}
	r.read(root, "llo")
	if r.haveMore(root) {
		t.Error("haveMore at end of input = true")
	}
	if got := r.peek(root, 1); got != "" {
		t.Errorf("peek at end = %q, want empty", got)
	}
}

func TestTakeWhileAllowsEmptyRun(t *testing.T) {
	r := &run{input: "123abc"}
	root := newNode(nil)

	digits := r.takeWhile(root, isDigit)
	if digits.text() != "123" || root.end != 3 {
		t.Fatalf("takeWhile digits = %q end=%d", digits.text(), root.end)
	}
	empty := r.takeWhile(root, isDigit)
	if empty.text() != "" || root.end != 3 {
		t.Errorf("empty takeWhile = %q end=%d", empty.text(), root.end)
	}
}
