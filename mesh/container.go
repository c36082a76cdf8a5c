// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh implements the point-container topology types (Mesh, Web,
// Wire) and the algorithms that operate on them: merge-close, strip,
// outline/frontier extraction, connectivity maps, island and orientation
// propagation, group splitting, normals and point-to-primitive distance.
package mesh

import (
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/madcore/vec"
)

// Point is a 3D double-precision coordinate.
type Point = vec.Vec

// NumPrec is the default floating-point unit roundoff used by Precision
// and by MergeClose when no explicit limit is given.
const NumPrec = 1e-13

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max Point
}

// boxOf returns the bounding box of points, or the zero Box when points
// is empty (Box itself has no empty marker).
func boxOf(points []Point) Box {
	if len(points) == 0 {
		return Box{}
	}
	b := Box{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b.Min = vec.ElemMin(b.Min, p)
		b.Max = vec.ElemMax(b.Max, p)
	}
	return b
}

// Width returns Max-Min.
func (b Box) Width() Point { return vec.Sub(b.Max, b.Min) }

// Center returns the box's center point.
func (b Box) Center() Point { return vec.Scale(vec.Add(b.Min, b.Max), 0.5) }

// maxAbsCoord returns the largest absolute coordinate value among points.
func maxAbsCoord(points []Point) float64 {
	m := 0.0
	for _, p := range points {
		m = utl.Max(m, vec.MaxAbsComponent(p))
	}
	return m
}

// precisionOf returns the numeric coordinate precision allowed by
// floating point roundoff for a container with the given points, at
// propagation factor propag (ε * maxabs * 2^propag).
func precisionOf(points []Point, propag uint) float64 {
	factor := float64(uint64(1) << propag)
	return maxAbsCoord(points) * NumPrec * factor
}

// pointAt returns the index of the first point within neigh of loc, or -1.
func pointAt(points []Point, loc Point, neigh float64) int {
	for i, p := range points {
		if vec.Distance(p, loc) <= neigh {
			return i
		}
	}
	return -1
}

// pointNear returns the index of the point nearest to loc (points must be
// non-empty).
func pointNear(points []Point, loc Point) int {
	best := 0
	bestD := vec.Distance2(points[0], loc)
	for i := 1; i < len(points); i++ {
		if d := vec.Distance2(points[i], loc); d < bestD {
			best, bestD = i, d
		}
	}
	return best
}

// stripIndex numbers the entries where used[i] is true consecutively from
// 0 and returns the old-index -> new-index reindex table (-1 for unused
// entries) together with the number n of used entries. It does not touch
// the items themselves; compactPoints and compactGroups apply the table.
func stripIndex(used []bool) (reindex []int, n int) {
	reindex = make([]int, len(used))
	n = 0
	for i, u := range used {
		if u {
			reindex[i] = n
			n++
		} else {
			reindex[i] = -1
		}
	}
	return reindex, n
}

func compactPoints(points []Point, used []bool, reindex []int, n int) []Point {
	out := make([]Point, n)
	for i, u := range used {
		if u {
			out[reindex[i]] = points[i]
		}
	}
	return out
}

func compactGroups(groups []interface{}, used []bool, reindex []int, n int) []interface{} {
	out := make([]interface{}, n)
	for i, u := range used {
		if u {
			out[reindex[i]] = groups[i]
		}
	}
	return out
}
