// Copyright 2024 The flatbush (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package flatbush

import "math"

const (
	// hilbertOrder is the order of the Hilbert curve used to sort
	// leaves: a 65536x65536 grid.
	hilbertOrder = 16
	// hilbertMax is the maximum grid coordinate accepted by hilbert.
	hilbertMax = (1 << hilbertOrder) - 1
)

// hilbert calculates the distance along a Hilbert curve of order 16
// for the grid cell (x, y), x and y each in [0, hilbertMax].
//
// This is a straight port of the public-domain technique at
// https://github.com/rawrunprotected/hilbert_curves, and is the same
// construction used by the reference FlatGeobuf/flatbush
// implementations: four parallel bitwise recurrences with shift
// amounts 1, 2, 4, 8, followed by a Morton (bit-interleave) spread.
// The bit-mixing sequence below is part of this package's contract —
// changing it changes the packed layout Finish produces.
func hilbert(x, y uint32) uint32 {
	a := x ^ y
	b := 0xFFFF ^ a
	c := 0xFFFF ^ (x | y)
	d := x & (y ^ 0xFFFF)

	A := a | (b >> 1)
	B := (a >> 1) ^ a
	C := ((c >> 1) ^ (b & (d >> 1))) ^ c
	D := ((a & (c >> 1)) ^ (d >> 1)) ^ d

	a, b, c, d = A, B, C, D
	A = (a & (a >> 2)) ^ (b & (b >> 2))
	B = (a & (b >> 2)) ^ (b & ((a ^ b) >> 2))
	C ^= (a & (c >> 2)) ^ (b & (d >> 2))
	D ^= (b & (c >> 2)) ^ ((a ^ b) & (d >> 2))

	a, b, c, d = A, B, C, D
	A = (a & (a >> 4)) ^ (b & (b >> 4))
	B = (a & (b >> 4)) ^ (b & ((a ^ b) >> 4))
	C ^= (a & (c >> 4)) ^ (b & (d >> 4))
	D ^= (b & (c >> 4)) ^ ((a ^ b) & (d >> 4))

	a, b, c, d = A, B, C, D
	C ^= (a & (c >> 8)) ^ (b & (d >> 8))
	D ^= (b & (c >> 8)) ^ ((a ^ b) & (d >> 8))

	a = C ^ (C >> 1)
	b = D ^ (D >> 1)

	i0 := x ^ y
	i1 := b | (0xFFFF ^ (i0 | a))

	i0 = (i0 | (i0 << 8)) & 0x00FF00FF
	i0 = (i0 | (i0 << 4)) & 0x0F0F0F0F
	i0 = (i0 | (i0 << 2)) & 0x33333333
	i0 = (i0 | (i0 << 1)) & 0x55555555

	i1 = (i1 | (i1 << 8)) & 0x00FF00FF
	i1 = (i1 | (i1 << 4)) & 0x0F0F0F0F
	i1 = (i1 | (i1 << 2)) & 0x33333333
	i1 = (i1 | (i1 << 1)) & 0x55555555

	return (i1 << 1) | i0
}

// hilbertValue computes the Hilbert curve index of a leaf box's
// center, relative to an extent (ex, ey, ew, eh) given as the
// extent's min corner and width/height. When ew or eh is zero, the
// corresponding grid coordinate collapses to 0 rather than dividing by
// zero, matching spec behavior for zero-width/zero-height extents.
func hilbertValue[T Float](b Box[T], ex, ey, ew, eh T) uint32 {
	var hx uint32
	if ew != 0 {
		rx := float64((b.midX() - ex) / ew)
		hx = uint32(math.Floor(hilbertMax * rx))
	}
	var hy uint32
	if eh != 0 {
		ry := float64((b.midY() - ey) / eh)
		hy = uint32(math.Floor(hilbertMax * ry))
	}
	return hilbert(hx, hy)
}
