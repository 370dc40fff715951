// Copyright 2024 The flatbush (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package flatbush

// build implements spec.md §4.3: Hilbert-order the leaves already
// written into t.buf, then pack parent records bottom-up into the
// remainder of the buffer.
func build[T Float](t *Tree[T]) {
	n := t.numItems
	width := t.bounds.Width()
	height := t.bounds.Height()
	minX, minY := t.bounds.MinX, t.bounds.MinY

	hvals := make([]uint32, n)
	for i := 0; i < n; i++ {
		off := i * recordSize
		b := Box[T]{MinX: t.buf[off+1], MinY: t.buf[off+2], MaxX: t.buf[off+3], MaxY: t.buf[off+4]}
		hvals[i] = hilbertValue(b, minX, minY, width, height)
	}

	if n > 1 {
		hilbertQuicksort(t.buf, hvals, 0, n-1)
	}

	packParents(t)
}

// packParents scans each level in groups of at most nodeSize
// consecutive records and writes one parent record per group at the
// next free slot, per spec.md §4.3 point 3. A parent's ref is the
// slot offset (count of numeric slots from the buffer start) of its
// group's first child; its box is the componentwise union of the
// group's child boxes. The final level written is always the
// single-record root.
func packParents[T Float](t *Tree[T]) {
	levelBounds := t.levelBounds
	nodeSize := t.nodeSize

	levelStart := 0
	for lvl := 0; lvl < len(levelBounds)-1; lvl++ {
		levelEnd := levelBounds[lvl]
		writeAt := levelEnd // next level begins immediately after this one

		for pos := levelStart; pos < levelEnd; {
			first := pos
			box := EmptyBox[T]()
			for n := 0; n < nodeSize && pos < levelEnd; n++ {
				box.Expand(Box[T]{MinX: t.buf[pos+1], MinY: t.buf[pos+2], MaxX: t.buf[pos+3], MaxY: t.buf[pos+4]})
				pos += recordSize
			}
			t.buf[writeAt] = T(first)
			t.buf[writeAt+1] = box.MinX
			t.buf[writeAt+2] = box.MinY
			t.buf[writeAt+3] = box.MaxX
			t.buf[writeAt+4] = box.MaxY
			writeAt += recordSize
		}

		levelStart = levelEnd
	}
}
