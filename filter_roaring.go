// Copyright 2024 The flatbush (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package flatbush

import "github.com/RoaringBitmap/roaring"

// RoaringFilter adapts a compressed roaring bitmap of admissible leaf
// references into a Filter, so Search can be restricted to a large,
// sparse set of references — "still live," "owned by tenant X," and
// similar membership tests — without the caller writing a map- or
// slice-backed closure by hand.
func RoaringFilter(bm *roaring.Bitmap) Filter {
	return func(ref int) bool {
		if bm == nil || ref < 0 {
			return false
		}
		return bm.Contains(uint32(ref))
	}
}
