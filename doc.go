/*
Package boxtree implements a dynamic bounding-volume hierarchy over
axis-aligned bounding boxes.

AABB trees

An AABB tree is a balanced binary tree in which every leaf carries one
payload value together with the bounding box supplied at insertion, and
every inner node covers the union of its two children's boxes. Spatial
subsystems (scenes, pickers, collision broadphases) keep such an index over
geometry that moves and changes over time, which makes incremental insertion
and removal the primary operations.

The tree inserts a box by descending into whichever child subtree would grow
the least in volume, and it keeps itself height-balanced with a heuristic:
whenever the heights of two sibling subtrees drift more than one level
apart, the higher subtree donates the leaf that fits the lower subtree best.
This is not a strict AVL rotation; it trades worst-case guarantees for cheap
restructuring under the interleaved insert/remove workloads a spatial index
typically sees.

The tree is generic over three types: the scalar coordinate type, the box
type, and the payload type. Any box value type providing MergedWith, Volume
and Contains plugs into the tree; package box ships ready-made 2D and 3D
boxes. Payload identity during removal is decided by an equality predicate
configured at construction time.

The tree is not safe for concurrent mutation. Callers embedding it into a
multi-threaded host must serialize access themselves.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package boxtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// TreeError is an error type for the boxtree module
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrNoEqualityPredicate is flagged when a tree is configured without a
// payload equality predicate.
const ErrNoEqualityPredicate = TreeError("configuration lacks a payload equality predicate")

// ErrInvariantViolation is flagged by Check whenever a structural tree
// invariant does not hold.
const ErrInvariantViolation = TreeError("tree invariant violated")

// assert panics with msg when an internal invariant does not hold.
func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
