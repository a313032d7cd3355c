package boxtree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"github.com/npillmayer/boxtree/box"
)

// Tree is a dynamic, height-balanced AABB tree (bounding-volume hierarchy).
//
// S is the scalar coordinate type, B the box type (tied to S via the Box
// capability), P the payload type stored in leaves. A tree created by New
// or NewComparable is empty; Insert and Remove mutate it in place.
//
// Entries are not unique: inserting the same (bounds, payload) pair twice
// produces two distinct leaves. Removal matches one leaf by payload
// equality, with box containment as a descent filter.
//
// The tree is single-threaded; concurrent mutation must be serialized by
// the caller.
type Tree[S box.Scalar, B Box[S, B], P any] struct {
	cfg  Config[P]
	root treeNode[S, B, P]
}

// Config configures payload handling of a tree.
type Config[P any] struct {
	// Equals decides payload identity during removal.
	Equals func(a, b P) bool
}

func (cfg Config[P]) validate() error {
	if cfg.Equals == nil {
		return ErrNoEqualityPredicate
	}
	return nil
}

// New creates an empty tree with validated configuration.
func New[S box.Scalar, B Box[S, B], P any](cfg Config[P]) (*Tree[S, B, P], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[S, B, P]{cfg: cfg}, nil
}

// NewComparable creates an empty tree for comparable payloads, deciding
// payload identity by value equality.
func NewComparable[S box.Scalar, B Box[S, B], P comparable]() *Tree[S, B, P] {
	return &Tree[S, B, P]{cfg: Config[P]{
		Equals: func(a, b P) bool { return a == b },
	}}
}

// IsEmpty reports whether the tree has no entries.
func (t *Tree[S, B, P]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Height returns the length of the longest path from the root to a leaf,
// where 0 means empty and 1 means a single-leaf tree.
func (t *Tree[S, B, P]) Height() int {
	if t.IsEmpty() {
		return 0
	}
	return t.root.Height()
}

// Len returns the number of entries in the tree.
func (t *Tree[S, B, P]) Len() int {
	if t.IsEmpty() {
		return 0
	}
	return countLeaves[S, B, P](t.root)
}

// Bounds returns the bounds of all entries in the tree.
//
// Calling Bounds on an empty tree is a contract violation and panics.
// Callers needing a sentinel for the empty case should use box.NaN2 or
// box.NaN3 themselves.
func (t *Tree[S, B, P]) Bounds() B {
	assert(!t.IsEmpty(), "Bounds called on an empty tree")
	return t.root.Bounds()
}

// Insert inserts a new entry with the given bounds and payload.
//
// The new leaf descends into whichever subtree grows the least in volume,
// splitting a leaf into an inner node at the insertion point. Ancestors on
// the unwind path recompute bounds and height and rebalance if necessary.
func (t *Tree[S, B, P]) Insert(bounds B, data P) {
	if t.IsEmpty() {
		t.root = newLeaf[S, B, P](bounds, data)
	} else {
		t.root = t.insertInto(t.root, bounds, data)
	}
	assert(abs(t.root.Balance()) < 2, "tree out of balance after insertion")
}

// Remove removes one entry whose payload equals data, descending only into
// subtrees whose bounds contain the given bounds.
//
// Remove returns false without touching the tree when the tree is empty or
// the given bounds lie outside the root bounds. It returns true otherwise,
// even when no payload matched inside the root bounds; in that case the
// tree is left unchanged. Callers relying on strict membership reporting
// must track membership themselves.
func (t *Tree[S, B, P]) Remove(bounds B, data P) bool {
	if t.IsEmpty() {
		return false
	}
	if !t.root.Bounds().Contains(bounds) {
		T().Debugf("remove: bounds %v outside of tree bounds, rejecting", bounds)
		return false
	}
	newRoot, removed := t.removeFrom(t.root, bounds, data)
	if removed {
		// newRoot is nil when the root leaf itself matched
		t.root = newRoot
	}
	assert(t.IsEmpty() || abs(t.root.Balance()) < 2, "tree out of balance after removal")
	return true
}

// insertInto inserts (bounds, data) into the subtree rooted at n and
// returns the new root of that subtree.
//
// Leaves cannot hold a second payload and split into an inner node over the
// old and the new leaf; this is the only way inner nodes come into
// existence. Inner nodes never replace themselves during insertion.
func (t *Tree[S, B, P]) insertInto(n treeNode[S, B, P], bounds B, data P) treeNode[S, B, P] {
	switch node := n.(type) {
	case *leafNode[S, B, P]:
		return newInner[S, B, P](node, newLeaf[S, B, P](bounds, data))
	case *innerNode[S, B, P]:
		child := selectLeastIncreaser[S, B, treeNode[S, B, P]](&node.left, &node.right, bounds)
		*child = t.insertInto(*child, bounds, data)
		node.update()
		t.rebalance(node)
		return node
	}
	assert(false, "insertInto: unknown node variant")
	return nil
}

// removeFrom removes one entry matching (bounds, data) from the subtree
// rooted at n.
//
// It returns the replacement root for the subtree and whether a removal
// happened. A nil replacement with removed=true means n is a leaf matching
// the payload and the caller must drop it, promoting its sibling.
func (t *Tree[S, B, P]) removeFrom(n treeNode[S, B, P], bounds B, data P) (treeNode[S, B, P], bool) {
	switch node := n.(type) {
	case *leafNode[S, B, P]:
		if t.cfg.Equals(data, node.data) {
			return nil, true
		}
		return node, false
	case *innerNode[S, B, P]:
		if newNode, ok := t.removeThrough(node, bounds, data, &node.left, &node.right); ok {
			return newNode, true
		}
		if newNode, ok := t.removeThrough(node, bounds, data, &node.right, &node.left); ok {
			return newNode, true
		}
		return node, false
	}
	assert(false, "removeFrom: unknown node variant")
	return nil, false
}

// removeThrough attempts the removal through one child slot of parent.
//
// Containment gates the descent: a child whose bounds do not contain the
// target bounds cannot hold the entry, since leaf bounds are subsets of all
// ancestor bounds. When the child itself is the matching leaf, the parent
// dissolves and the sibling subtree takes its place.
func (t *Tree[S, B, P]) removeThrough(parent *innerNode[S, B, P], bounds B, data P,
	child, sibling *treeNode[S, B, P]) (treeNode[S, B, P], bool) {
	//
	if !(*child).Bounds().Contains(bounds) {
		return nil, false
	}
	newChild, removed := t.removeFrom(*child, bounds, data)
	if !removed {
		return nil, false
	}
	if newChild == nil {
		return *sibling, true
	}
	if newChild != *child {
		*child = newChild
	}
	parent.update()
	t.rebalance(parent)
	return parent, true
}

// rebalance restores the height balance of n while its children's heights
// differ by more than 1. The higher subtree donates one leaf to the lower
// subtree per round, selected so that it grows the lower subtree's bounds
// the least.
//
// This is a heuristic leaf transplant, not an AVL rotation. A single
// transplant need not shrink the higher subtree nor grow the lower one, so
// the transplant repeats until the height difference is at most 1. Each
// round moves one leaf out of the higher subtree, which bounds the number
// of rounds by that subtree's leaf count.
func (t *Tree[S, B, P]) rebalance(n *innerNode[S, B, P]) {
	for {
		lh, rh := n.left.Height(), n.right.Height()
		switch {
		case lh > rh && lh-rh > 1:
			t.shiftLeaf(&n.left, &n.right)
			n.update()
		case rh > lh && rh-lh > 1:
			t.shiftLeaf(&n.right, &n.left)
			n.update()
		default:
			return
		}
	}
}

// shiftLeaf moves the best-fitting leaf from the higher subtree into the
// lower one. The nested removal and insertion may cascade further
// rebalancing inside the subtrees, which operates on strictly smaller trees
// and terminates.
func (t *Tree[S, B, P]) shiftLeaf(higher, lower *treeNode[S, B, P]) {
	candidate := t.rebalanceCandidate(*higher, (*lower).Bounds())
	bounds, data := candidate.box, candidate.data
	T().Debugf("rebalance: moving leaf %v between subtrees", bounds)
	newHigher, removed := t.removeFrom(*higher, bounds, data)
	assert(removed, "rebalance candidate not found in its own subtree")
	*higher = newHigher
	*lower = t.insertInto(*lower, bounds, data)
}

// rebalanceCandidate finds the leaf under n whose relocation would grow the
// given target bounds the least. Ties prefer the left subtree's candidate.
func (t *Tree[S, B, P]) rebalanceCandidate(n treeNode[S, B, P], bounds B) *leafNode[S, B, P] {
	switch node := n.(type) {
	case *leafNode[S, B, P]:
		return node
	case *innerNode[S, B, P]:
		left := t.rebalanceCandidate(node.left, bounds)
		right := t.rebalanceCandidate(node.right, bounds)
		return *selectLeastIncreaser[S, B, *leafNode[S, B, P]](&left, &right, bounds)
	}
	assert(false, "rebalanceCandidate: unknown node variant")
	return nil
}

func countLeaves[S box.Scalar, B Box[S, B], P any](n treeNode[S, B, P]) int {
	if n.isLeaf() {
		return 1
	}
	inner := n.(*innerNode[S, B, P])
	return countLeaves[S, B, P](inner.left) + countLeaves[S, B, P](inner.right)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
