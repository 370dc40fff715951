// Copyright 2024 The flatbush (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package flatbush implements a static, packed Hilbert R-tree index
// over two-dimensional axis-aligned bounding boxes.
//
// A Tree is built once from a fixed, known-in-advance number of
// rectangles: construct it with New, stream in every rectangle with
// Add, then call Finish. Finish Hilbert-sorts the leaves and packs
// parent nodes bottom-up directly into a single flat numeric buffer —
// there are no heap-allocated node objects, and the buffer can be
// copied, memory-mapped, or persisted as-is. Once finished, the tree
// is immutable and safe for concurrent readers; query it with Search
// any number of times.
//
// There is no dynamic insertion, deletion, or rebalancing after
// Finish, no indexing beyond two dimensions, and no concurrency
// primitives — a Tree under construction is meant to be owned by a
// single goroutine.
package flatbush
