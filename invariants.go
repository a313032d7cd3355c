package boxtree

import "fmt"

// Check validates structural tree invariants.
//
// It verifies, for every node of the tree:
//   - cached heights equal the recomputed subtree heights,
//   - sibling subtree heights differ by at most 1,
//   - inner node bounds equal the merge of their children's bounds,
//     tested through mutual containment since the box capability has no
//     equality operation.
//
// This checker is intentionally strict and meant for tests; a violation
// indicates a bug in insertion, removal or rebalancing, not an input error.
func (t *Tree[S, B, P]) Check() error {
	if t == nil || t.root == nil {
		return nil
	}
	_, err := t.checkNode(t.root)
	return err
}

func (t *Tree[S, B, P]) checkNode(n treeNode[S, B, P]) (height int, err error) {
	if n == nil {
		return 0, fmt.Errorf("%w: nil node", ErrInvariantViolation)
	}
	if n.isLeaf() {
		return 1, nil
	}
	inner := n.(*innerNode[S, B, P])
	if inner.left == nil || inner.right == nil {
		return 0, fmt.Errorf("%w: inner node lacks a child", ErrInvariantViolation)
	}
	lh, lerr := t.checkNode(inner.left)
	if lerr != nil {
		return 0, lerr
	}
	rh, rerr := t.checkNode(inner.right)
	if rerr != nil {
		return 0, rerr
	}
	if abs(lh-rh) > 1 {
		return 0, fmt.Errorf("%w: sibling heights %d and %d differ by more than 1",
			ErrInvariantViolation, lh, rh)
	}
	height = max(lh, rh) + 1
	if inner.h != height {
		return 0, fmt.Errorf("%w: cached height %d, recomputed %d",
			ErrInvariantViolation, inner.h, height)
	}
	merged := inner.left.Bounds().MergedWith(inner.right.Bounds())
	if !inner.box.Contains(merged) || !merged.Contains(inner.box) {
		return 0, fmt.Errorf("%w: inner bounds %v differ from children's merge %v",
			ErrInvariantViolation, inner.box, merged)
	}
	return height, nil
}
