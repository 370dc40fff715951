// Copyright 2024 The flatbush (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package flatbush

// hilbertQuicksort co-sorts the leaf records in buf (record indices
// [left, right], inclusive) and their parallel Hilbert keys by
// ascending key, using an in-place Hoare partition with a midpoint
// pivot and recursive partitions, per spec.md §4.3. The sort is not
// stable: leaves sharing a Hilbert value may end up in either
// relative order.
func hilbertQuicksort[T Float](buf []T, keys []uint32, left, right int) {
	if left >= right {
		return
	}
	pivot := keys[(left+right)/2]
	i, j := left-1, right+1
	for {
		for {
			i++
			if keys[i] >= pivot {
				break
			}
		}
		for {
			j--
			if keys[j] <= pivot {
				break
			}
		}
		if i >= j {
			break
		}
		swapRecords(buf, keys, i, j)
	}
	hilbertQuicksort(buf, keys, left, j)
	hilbertQuicksort(buf, keys, j+1, right)
}

// swapRecords exchanges leaf record i with leaf record j, along with
// their Hilbert keys. The whole 5-slot record — including its ref
// slot — moves as one unit, so each leaf's stored reference always
// stays attached to its own box.
func swapRecords[T Float](buf []T, keys []uint32, i, j int) {
	if i == j {
		return
	}
	keys[i], keys[j] = keys[j], keys[i]
	oi, oj := i*recordSize, j*recordSize
	for k := 0; k < recordSize; k++ {
		buf[oi+k], buf[oj+k] = buf[oj+k], buf[oi+k]
	}
}
