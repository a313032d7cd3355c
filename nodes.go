package boxtree

import "github.com/npillmayer/boxtree/box"

// Box is the capability a bounding volume must provide to be indexed.
//
// B is the box type itself, tied to its scalar type S at compile time.
// Implementations are expected to treat boxes as immutable values:
// MergedWith returns the smallest box containing both operands, Volume
// returns the measure used for growth comparisons, and Contains tests
// (inclusive) box containment.
type Box[S box.Scalar, B any] interface {
	MergedWith(B) B
	Volume() S
	Contains(B) bool
}

// treeNode is the closed contract over the two node variants of the tree.
//
// Bounds of an inner node always equal the merge of its children's bounds;
// bounds of a leaf equal exactly the box supplied at insertion and never
// change in place.
type treeNode[S box.Scalar, B Box[S, B], P any] interface {
	isLeaf() bool
	Bounds() B
	Height() int
	Balance() int
}

// leafNode is a terminal node carrying one payload value.
type leafNode[S box.Scalar, B Box[S, B], P any] struct {
	box  B
	data P
}

func (l *leafNode[S, B, P]) isLeaf() bool { return true }
func (l *leafNode[S, B, P]) Bounds() B    { return l.box }
func (l *leafNode[S, B, P]) Height() int  { return 1 }
func (l *leafNode[S, B, P]) Balance() int { return 0 }

// innerNode is a structural node owning exactly two children. It carries no
// payload; its bounds derive from its children and its height is cached.
type innerNode[S box.Scalar, B Box[S, B], P any] struct {
	box   B
	left  treeNode[S, B, P]
	right treeNode[S, B, P]
	h     int
}

func (n *innerNode[S, B, P]) isLeaf() bool { return false }
func (n *innerNode[S, B, P]) Bounds() B    { return n.box }
func (n *innerNode[S, B, P]) Height() int  { return n.h }

// Balance returns the right subtree height minus the left subtree height.
func (n *innerNode[S, B, P]) Balance() int {
	return n.right.Height() - n.left.Height()
}

func newLeaf[S box.Scalar, B Box[S, B], P any](bounds B, data P) *leafNode[S, B, P] {
	return &leafNode[S, B, P]{box: bounds, data: data}
}

func newInner[S box.Scalar, B Box[S, B], P any](left, right treeNode[S, B, P]) *innerNode[S, B, P] {
	assert(left != nil, "inner node requires a left child")
	assert(right != nil, "inner node requires a right child")
	n := &innerNode[S, B, P]{left: left, right: right}
	n.update()
	return n
}

// update recomputes the cached bounds and height from the children.
func (n *innerNode[S, B, P]) update() {
	n.box = n.left.Bounds().MergedWith(n.right.Bounds())
	n.h = max(n.left.Height(), n.right.Height()) + 1
}

// bounded is anything carrying box bounds; it lets the least-increaser
// selection work on child slots and on leaf candidates alike.
type bounded[B any] interface {
	Bounds() B
}

// volumeGrowth returns by how much the volume of b would increase if bounds
// were merged into it.
func volumeGrowth[S box.Scalar, B Box[S, B]](b, bounds B) S {
	return b.MergedWith(bounds).Volume() - b.Volume()
}

// selectLeastIncreaser returns a pointer to whichever of the two slots
// would grow the least in volume by merging in the given bounds. A tie
// selects the first slot.
func selectLeastIncreaser[S box.Scalar, B Box[S, B], N bounded[B]](first, second *N, bounds B) *N {
	if volumeGrowth[S, B]((*first).Bounds(), bounds) <= volumeGrowth[S, B]((*second).Bounds(), bounds) {
		return first
	}
	return second
}
