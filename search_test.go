// Copyright 2024 The flatbush (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package flatbush

import (
	"math"
	"math/rand"
	"testing"

	"github.com/RoaringBitmap/roaring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_BeforeFinishFails(t *testing.T) {
	tr, err := New[float64](1, 16)
	require.NoError(t, err)
	_, err = tr.Add(0, 0, 1, 1)
	require.NoError(t, err)

	_, err = tr.Search(0, 0, 1, 1, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not yet indexed")
}

func TestSearch_EmptyQueryOnFourItems(t *testing.T) {
	tr := buildTree(t, [][4]float64{
		{0, 0, 1, 1},
		{2, 2, 3, 3},
		{4, 4, 5, 5},
		{6, 6, 7, 7},
	}, 16)

	results, err := tr.Search(10, 10, 20, 20, nil)

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearch_OverlapOnFourItems(t *testing.T) {
	tr := buildTree(t, [][4]float64{
		{0, 0, 1, 1},
		{2, 2, 3, 3},
		{4, 4, 5, 5},
		{6, 6, 7, 7},
	}, 16)

	results, err := tr.Search(0.5, 0.5, 4.5, 4.5, nil)

	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1, 2}, results)
}

func TestSearch_FilterKeepsOnlyEvenReferences(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	boxes := make([][4]float64, 0, 100)
	for i := 0; i < 100; i++ {
		x := rng.Float64() * 1000
		y := rng.Float64() * 1000
		boxes = append(boxes, [4]float64{x, y, x + 1, y + 1})
	}
	tr := buildTree(t, boxes, 16)

	evenFilter := func(ref int) bool { return ref%2 == 0 }
	results, err := tr.Search(math.Inf(-1), math.Inf(-1), math.Inf(1), math.Inf(1), evenFilter)

	require.NoError(t, err)
	assert.Len(t, results, 50)
	for _, ref := range results {
		assert.Equal(t, 0, ref%2)
	}
}

func TestSearch_GridOriginLookup(t *testing.T) {
	// 1024 leaves on a 32x32 grid: N=1024, B=16 -> levels [1024,64,4,1].
	boxes := make([][4]float64, 0, 1024)
	var originRef = -1
	for gy := 0; gy < 32; gy++ {
		for gx := 0; gx < 32; gx++ {
			x, y := float64(gx), float64(gy)
			if gx == 0 && gy == 0 {
				originRef = len(boxes)
			}
			boxes = append(boxes, [4]float64{x, y, x + 1, y + 1})
		}
	}
	tr := buildTree(t, boxes, 16)

	assert.Equal(t, []int{1024 * recordSize, 1088 * recordSize, 1092 * recordSize, 1093 * recordSize}, tr.LevelBounds())

	results, err := tr.Search(0, 0, 0, 0, nil)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, originRef, results[0])
}

func TestSearch_EdgeInclusiveOverlap(t *testing.T) {
	tr := buildTree(t, [][4]float64{{1, 1, 2, 2}}, 16)

	results, err := tr.Search(2, 2, 3, 3, nil)

	require.NoError(t, err)
	assert.Equal(t, []int{0}, results)
}

func TestSearch_FullExtentReturnsEveryLeafExactlyOnce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	boxes := make([][4]float64, 0, 237)
	for i := 0; i < 237; i++ {
		x := rng.Float64() * 500
		y := rng.Float64() * 500
		w := rng.Float64()*10 + 0.01
		h := rng.Float64()*10 + 0.01
		boxes = append(boxes, [4]float64{x, y, x + w, y + h})
	}
	tr := buildTree(t, boxes, 16)

	results, err := tr.Search(math.Inf(-1), math.Inf(-1), math.Inf(1), math.Inf(1), nil)

	require.NoError(t, err)
	require.Len(t, results, 237)

	seen := make(map[int]bool, 237)
	for _, ref := range results {
		assert.False(t, seen[ref], "reference %d returned more than once", ref)
		seen[ref] = true
	}
}

func TestSearch_ParentBoxIsUnionOfChildren(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	boxes := make([][4]float64, 0, 300)
	for i := 0; i < 300; i++ {
		x := rng.Float64() * 200
		y := rng.Float64() * 200
		boxes = append(boxes, [4]float64{x, y, x + 2, y + 2})
	}
	tr := buildTree(t, boxes, 16)

	buf := tr.Buffer()
	levelBounds := tr.LevelBounds()
	for lvl := 0; lvl < len(levelBounds)-1; lvl++ {
		levelEnd := levelBounds[lvl]
		parentLevelStart := levelEnd
		parentLevelEnd := levelBounds[lvl+1]

		for p := parentLevelStart; p < parentLevelEnd; p += recordSize {
			first := int(buf[p])
			want := EmptyBox[float64]()
			end := first + tr.nodeSize*recordSize
			if end > levelEnd {
				end = levelEnd
			}
			for c := first; c < end; c += recordSize {
				want.Expand(Box[float64]{MinX: buf[c+1], MinY: buf[c+2], MaxX: buf[c+3], MaxY: buf[c+4]})
			}
			got := Box[float64]{MinX: buf[p+1], MinY: buf[p+2], MaxX: buf[p+3], MaxY: buf[p+4]}
			assert.Equal(t, want, got)
		}
	}
}

func TestRoaringFilter(t *testing.T) {
	tr := buildTree(t, [][4]float64{
		{0, 0, 1, 1},
		{1, 1, 2, 2},
		{2, 2, 3, 3},
	}, 16)

	bm := roaring.New()
	bm.Add(0)
	bm.Add(2)

	results, err := tr.Search(math.Inf(-1), math.Inf(-1), math.Inf(1), math.Inf(1), RoaringFilter(bm))

	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 2}, results)
}

func TestRoaringFilter_NilBitmapAcceptsNothing(t *testing.T) {
	f := RoaringFilter(nil)

	assert.False(t, f(0))
}
