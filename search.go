// Copyright 2024 The flatbush (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package flatbush

// A Filter is a pure total predicate on a leaf reference, consulted
// once per candidate leaf during Search. A nil Filter accepts every
// candidate.
type Filter func(ref int) bool

// A ticket is a pending work item in a Search traversal: the slot
// offset of the first sibling in a run of at most nodeSize records,
// and the tree level that offset belongs to. This mirrors the
// teacher's ticket/ticketBag, narrowed to the static, in-memory,
// stack-ordered case — there is no streaming variant here.
type ticket struct {
	slot  int
	level int
}

func levelStart(levelBounds []int, lvl int) int {
	if lvl <= 0 {
		return 0
	}
	return levelBounds[lvl-1]
}

// Search returns the references of every leaf box whose stored box
// overlaps the query box (minX, minY, maxX, maxY), inclusive on all
// four edges, and — if filter is non-nil — for which filter returns
// true. Results are returned in the deterministic depth-first order
// induced by the packed layout; sort the result explicitly if a
// different order is required.
//
// Search fails if Finish has not yet been called.
func (t *Tree[T]) Search(minX, minY, maxX, maxY T, filter Filter) ([]int, error) {
	if !t.finished {
		return nil, textErr(KindProtocol, "search before finish: tree is not yet indexed")
	}

	q := Box[T]{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
	levelBounds := t.levelBounds
	rootLevel := len(levelBounds) - 1

	var results []int
	stack := []ticket{{slot: levelStart(levelBounds, rootLevel), level: rootLevel}}

	for len(stack) > 0 {
		tk := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		end := tk.slot + t.nodeSize*recordSize
		if levelBounds[tk.level] < end {
			end = levelBounds[tk.level]
		}
		isLeafLevel := tk.slot < levelBounds[0]

		for pos := tk.slot; pos < end; pos += recordSize {
			rec := Box[T]{MinX: t.buf[pos+1], MinY: t.buf[pos+2], MaxX: t.buf[pos+3], MaxY: t.buf[pos+4]}
			if !q.Intersects(rec) {
				continue
			}
			if isLeafLevel {
				ref := int(t.buf[pos])
				if filter == nil || filter(ref) {
					results = append(results, ref)
				}
			} else {
				childSlot := int(t.buf[pos])
				stack = append(stack, ticket{slot: childSlot, level: tk.level - 1})
			}
		}
	}

	return results, nil
}
