package boxtree

import (
	"bytes"
	"strings"
	"testing"
)

func TestDumpEmptyTree(t *testing.T) {
	var buf bytes.Buffer
	newTestTree().Dump(&buf)
	if buf.Len() != 0 {
		t.Errorf("expected empty dump for empty tree, got %q", buf.String())
	}
}

func TestDumpTree(t *testing.T) {
	tree := newTestTree()
	tree.Insert(cube(0, 1), "a")
	tree.Insert(cube(10, 1), "b")
	var buf bytes.Buffer
	tree.Dump(&buf)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 dump lines, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "O ") {
		t.Errorf("expected root line to start with 'O ', got %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "  L ") || !strings.HasSuffix(lines[1], ": a") {
		t.Errorf("unexpected leaf line %q", lines[1])
	}
	if !strings.HasSuffix(lines[2], ": b") {
		t.Errorf("unexpected leaf line %q", lines[2])
	}
}

func TestTree2Dot(t *testing.T) {
	tree := newTestTree()
	tree.Insert(cube(0, 1), "a")
	tree.Insert(cube(10, 1), "b")
	tree.Insert(cube(0.5, 1), "c")
	var buf bytes.Buffer
	Tree2Dot(tree, &buf)
	out := buf.String()
	if !strings.HasPrefix(out, "strict digraph {") {
		t.Fatalf("expected DOT prologue, got %q", out)
	}
	if got := strings.Count(out, "->"); got != 4 {
		t.Errorf("expected 4 edges for a 3-leaf tree, got %d", got)
	}
	if !strings.HasSuffix(out, "}\n") {
		t.Errorf("expected DOT output to be terminated")
	}
}
