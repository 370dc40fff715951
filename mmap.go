// Copyright 2024 The flatbush (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package flatbush

import (
	"os"

	"github.com/edsrzf/mmap-go"
)

// A MappedBuffer is a read-only memory mapping of a file, suitable
// for use as the buf argument to Restore (after reinterpreting it as
// []T, e.g. via FromBytes's approach) or for reading its bytes
// directly. It exists to give the purpose section's "transferred,
// memory-mapped, or persisted without any pointer fix-up" claim a
// concrete implementation: a previously finalized buffer written to a
// file can be queried straight out of the page cache, with no copy.
type MappedBuffer struct {
	data mmap.MMap
	file *os.File
}

// MapFile opens path and memory-maps its full contents read-only.
func MapFile(path string) (*MappedBuffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, wrapErr(KindIO, "failed to open file to map", err)
	}
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		_ = f.Close()
		return nil, wrapErr(KindIO, "failed to memory-map file", err)
	}
	return &MappedBuffer{data: m, file: f}, nil
}

// Bytes returns the mapped region as a byte slice. It is valid only
// until Close is called.
func (m *MappedBuffer) Bytes() []byte {
	return m.data
}

// Close unmaps the region and closes the underlying file.
func (m *MappedBuffer) Close() error {
	err := m.data.Unmap()
	if cerr := m.file.Close(); err == nil {
		err = cerr
	}
	return err
}
