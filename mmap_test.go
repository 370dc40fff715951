// Copyright 2024 The flatbush (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package flatbush

import (
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapFile_RoundTripsThroughDisk(t *testing.T) {
	tr := buildTree(t, [][4]float64{
		{0, 0, 1, 1},
		{2, 2, 3, 3},
		{4, 4, 5, 5},
		{6, 6, 7, 7},
	}, 16)

	f, err := os.CreateTemp(t.TempDir(), "flatbush-*.bin")
	require.NoError(t, err)
	_, err = f.Write(tr.Bytes())
	require.NoError(t, err)
	require.NoError(t, f.Close())

	mapped, err := MapFile(f.Name())
	require.NoError(t, err)
	defer func() { require.NoError(t, mapped.Close()) }()

	restored, err := FromBytes[float64](mapped.Bytes(), 4, 16)
	require.NoError(t, err)

	want, err := tr.Search(math.Inf(-1), math.Inf(-1), math.Inf(1), math.Inf(1), nil)
	require.NoError(t, err)
	got, err := restored.Search(math.Inf(-1), math.Inf(-1), math.Inf(1), math.Inf(1), nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, want, got)
	assert.Equal(t, tr.Bounds(), restored.Bounds())
}

func TestMapFile_RejectsMissingFile(t *testing.T) {
	_, err := MapFile("/nonexistent/path/to/flatbush.bin")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open file to map")
}
