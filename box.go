// Copyright 2024 The flatbush (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package flatbush

import (
	"fmt"
	"math"
)

// A Box is an axis-aligned bounding rectangle used to describe both
// the items inserted into a Tree and the query region passed to
// Search.
type Box[T Float] struct {
	MinX, MinY, MaxX, MaxY T
}

// EmptyBox returns the inverted box used to seed bounds accumulation:
// expanding it with any real box yields that box back. Unlike the
// zero Box, EmptyBox is never itself a valid bounding region.
func EmptyBox[T Float]() Box[T] {
	return Box[T]{
		MinX: T(math.Inf(1)),
		MinY: T(math.Inf(1)),
		MaxX: T(math.Inf(-1)),
		MaxY: T(math.Inf(-1)),
	}
}

// Width returns MaxX - MinX.
func (b Box[T]) Width() T {
	return b.MaxX - b.MinX
}

// Height returns MaxY - MinY.
func (b Box[T]) Height() T {
	return b.MaxY - b.MinY
}

func (b Box[T]) midX() T {
	return (b.MinX + b.MaxX) / 2
}

func (b Box[T]) midY() T {
	return (b.MinY + b.MaxY) / 2
}

// Expand grows b, in place, to be the union of b and c.
func (b *Box[T]) Expand(c Box[T]) {
	if c.MinX < b.MinX {
		b.MinX = c.MinX
	}
	if c.MinY < b.MinY {
		b.MinY = c.MinY
	}
	if c.MaxX > b.MaxX {
		b.MaxX = c.MaxX
	}
	if c.MaxY > b.MaxY {
		b.MaxY = c.MaxY
	}
}

// Intersects reports whether b and o overlap, with touching edges
// counting as overlap.
func (b Box[T]) Intersects(o Box[T]) bool {
	if o.MaxX < b.MinX || o.MaxY < b.MinY || o.MinX > b.MaxX || o.MinY > b.MaxY {
		return false
	}
	return true
}

// String returns a summary description of the box.
func (b Box[T]) String() string {
	return fmt.Sprintf("[%v,%v,%v,%v]", b.MinX, b.MinY, b.MaxX, b.MaxY)
}
