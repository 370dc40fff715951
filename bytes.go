// Copyright 2024 The flatbush (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package flatbush

import "unsafe"

// Bytes returns the tree's buffer reinterpreted as raw bytes, in the
// host CPU's native byte order, without copying. This mirrors the
// technique behind the teacher's Marshal/Unmarshal — an unsafe.Pointer
// to the first element, sliced out to the byte length — narrowed to
// host-endian only, since spec.md §6 leaves endianness to caller
// choice and defines no self-describing header to negotiate it with.
func (t *Tree[T]) Bytes() []byte {
	if len(t.buf) == 0 {
		return nil
	}
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	ptr := unsafe.Pointer(&t.buf[0])
	return unsafe.Slice((*byte)(ptr), elemSize*len(t.buf))
}

// FromBytes reinterprets a raw byte buffer, in host-native byte
// order, as a Tree[T] previously finalized with the given numItems
// and nodeSize, via Restore. It fails if the byte slice's length is
// not an exact multiple of sizeof(T), or if the resulting element
// count does not match what numItems and nodeSize require.
func FromBytes[T Float](b []byte, numItems int, nodeSize uint16) (*Tree[T], error) {
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	if len(b) == 0 || elemSize == 0 || len(b)%elemSize != 0 {
		return nil, fmtErr(KindBuffer, "byte buffer length %d is not a positive multiple of element size %d", len(b), elemSize)
	}
	n := len(b) / elemSize
	ptr := unsafe.Pointer(&b[0])
	buf := unsafe.Slice((*T)(ptr), n)
	return Restore[T](buf, numItems, nodeSize)
}
