// Copyright 2024 The flatbush (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package flatbush

import "fmt"

// recordSize is the number of numeric slots per record: (ref, minX,
// minY, maxX, maxY).
const recordSize = 5

// normalizeNodeSize applies spec.md's default-then-clamp rule: an
// unspecified (zero) node size becomes the default of 16, and any
// other value is clamped to a minimum of 2.
func normalizeNodeSize(nodeSize uint16) int {
	if nodeSize == 0 {
		return 16
	}
	ns := int(nodeSize)
	if ns < 2 {
		return 2
	}
	return ns
}

// computeLevels returns the cumulative per-level record counts,
// expressed in slot units (record count x recordSize) as spec.md §3
// describes, plus the total record count across every level.
//
// Level 0 is the leaf level; the last entry is the root, a single
// record. This mirrors the teacher's levelify, generalized from
// record-unit bounds to the slot-unit bounds this package exposes via
// LevelBounds.
func computeLevels(numItems, nodeSize int) (levelBounds []int, totalNodes int) {
	n := numItems
	counts := make([]int, 1, 8)
	counts[0] = n
	for n > 1 {
		n = (n + nodeSize - 1) / nodeSize
		counts = append(counts, n)
	}
	levelBounds = make([]int, len(counts))
	cum := 0
	for i, c := range counts {
		cum += c
		levelBounds[i] = cum * recordSize
	}
	totalNodes = cum
	return levelBounds, totalNodes
}

// A Tree is a packed Hilbert R-tree over a fixed number of
// two-dimensional axis-aligned boxes, backed by a single flat buffer
// of element type T.
//
// Build one by calling New, inserting every item with Add, and
// finally calling Finish. Query it with Search. No insertion,
// deletion, or rebalancing is possible after Finish; a Tree is owned
// by one goroutine until finished, and is safe for any number of
// concurrent readers afterward.
type Tree[T Float] struct {
	nodeSize    int
	numItems    int
	levelBounds []int
	buf         []T
	inserted    int
	finished    bool
	bounds      Box[T]
}

// New constructs an empty Tree with room for exactly numItems leaf
// boxes and the given node size (child fan-out). A nodeSize of 0
// selects the default of 16; any other value less than 2 is clamped
// up to 2. New returns an error if numItems is not a positive
// integer.
func New[T Float](numItems int, nodeSize uint16) (*Tree[T], error) {
	if numItems <= 0 {
		return nil, textErr(KindConfig, "numItems must be a positive integer")
	}
	ns := normalizeNodeSize(nodeSize)
	levelBounds, totalNodes := computeLevels(numItems, ns)
	return &Tree[T]{
		nodeSize:    ns,
		numItems:    numItems,
		levelBounds: levelBounds,
		buf:         make([]T, recordSize*totalNodes),
		bounds:      EmptyBox[T](),
	}, nil
}

// Restore wraps an existing, already-finalized buffer as a Tree,
// recovering the global extrema from the root record at the end of
// the buffer. The caller must supply the exact numItems and nodeSize
// the buffer was originally built with; there is no self-describing
// header to check this against, so a mismatched numItems/nodeSize
// that happens to produce the same buffer length will be accepted
// silently, exactly as spec.md §6 describes.
func Restore[T Float](buf []T, numItems int, nodeSize uint16) (*Tree[T], error) {
	if numItems <= 0 {
		return nil, textErr(KindConfig, "numItems must be a positive integer")
	}
	ns := normalizeNodeSize(nodeSize)
	levelBounds, totalNodes := computeLevels(numItems, ns)
	want := recordSize * totalNodes
	if len(buf) != want {
		return nil, fmtErr(KindBuffer, "existing buffer has %d elements, want %d for numItems=%d nodeSize=%d", len(buf), want, numItems, ns)
	}
	root := buf[want-recordSize : want]
	bounds := Box[T]{MinX: root[1], MinY: root[2], MaxX: root[3], MaxY: root[4]}
	return &Tree[T]{
		nodeSize:    ns,
		numItems:    numItems,
		levelBounds: levelBounds,
		buf:         buf,
		inserted:    numItems,
		finished:    true,
		bounds:      bounds,
	}, nil
}

// Add appends one leaf box and returns its reference — the zero-based
// insertion index, stable for the lifetime of the Tree. Boxes with
// minX > maxX or minY > maxY are accepted without complaint, as are
// point boxes where min equals max; spec.md leaves that validation to
// the caller. Add fails if Finish has already been called, or if
// numItems boxes have already been inserted.
func (t *Tree[T]) Add(minX, minY, maxX, maxY T) (int, error) {
	if t.finished {
		return 0, textErr(KindProtocol, "cannot add to a finished tree")
	}
	if t.inserted >= t.numItems {
		return 0, fmtErr(KindProtocol, "insertion count would exceed numItems (%d)", t.numItems)
	}
	ref := t.inserted
	off := ref * recordSize
	t.buf[off] = T(ref)
	t.buf[off+1] = minX
	t.buf[off+2] = minY
	t.buf[off+3] = maxX
	t.buf[off+4] = maxY
	t.bounds.Expand(Box[T]{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY})
	t.inserted++
	return ref, nil
}

// Finish is the one-way transition from write-only to queryable: it
// Hilbert-sorts the leaves according to the boxes' centers within the
// accumulated global extrema, then packs parent records bottom-up.
// Finish fails if the number of insertions so far does not exactly
// equal numItems.
func (t *Tree[T]) Finish() error {
	if t.finished {
		return textErr(KindProtocol, "tree already finished")
	}
	if t.inserted != t.numItems {
		return fmtErr(KindProtocol, "finish requires exactly %d insertions, got %d", t.numItems, t.inserted)
	}
	build(t)
	t.finished = true
	return nil
}

// Finished reports whether Finish has been called.
func (t *Tree[T]) Finished() bool {
	return t.finished
}

// NumItems returns the number of leaf boxes the tree holds.
func (t *Tree[T]) NumItems() int {
	return t.numItems
}

// NodeSize returns the tree's child fan-out.
func (t *Tree[T]) NodeSize() uint16 {
	return uint16(t.nodeSize)
}

// Bounds returns the axis-aligned union of every inserted box. Before
// Finish, this reflects whatever has been inserted so far; after
// Finish, it equals the root record's box exactly.
func (t *Tree[T]) Bounds() Box[T] {
	return t.bounds
}

// Buffer returns the tree's backing flat buffer directly, without
// copying. Each record occupies recordSize consecutive elements:
// (ref, minX, minY, maxX, maxY). Callers must not mutate the returned
// slice.
func (t *Tree[T]) Buffer() []T {
	return t.buf
}

// LevelBounds returns the cumulative record count through each tree
// level, expressed in slot units (record count x recordSize), leaf
// level first and root level last.
func (t *Tree[T]) LevelBounds() []int {
	return t.levelBounds
}

// String returns a summary description of the tree.
func (t *Tree[T]) String() string {
	return fmt.Sprintf("Tree{Bounds:%s,NumItems:%d,NodeSize:%d}", t.bounds, t.numItems, t.nodeSize)
}
