// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package triangulate

import (
	"testing"

	"github.com/cpmech/madcore/mesh"
	"github.com/cpmech/madcore/vec"
)

func squareWireForSkeleton() *mesh.Wire {
	points := []mesh.Point{
		{X: 0, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}, {X: 2, Y: 2, Z: 0}, {X: 0, Y: 2, Z: 0},
	}
	return mesh.NewWire(points, []int{0, 1, 2, 3, 0}, nil, nil)
}

func TestSkeletonOfSquareKeepsOutlinePointsAndAddsBones(t *testing.T) {
	w := squareWireForSkeleton()
	z := vec.Vec{X: 0, Y: 0, Z: 1}
	web, err := Skeleton(w, &z)
	if err != nil {
		t.Fatalf("Skeleton returned an error: %v", err)
	}
	if len(web.Points) <= len(w.Points) {
		t.Fatalf("expected the skeleton to add interior points beyond the outline's %d, got %d", len(w.Points), len(web.Points))
	}
	for i, p := range w.Points {
		if web.Points[i] != p {
			t.Fatalf("expected the skeleton web to keep the outline's points as a prefix, point %d changed", i)
		}
	}
	if len(web.Edges) == 0 {
		t.Fatal("expected the skeleton to produce at least one bisector edge")
	}
}

func TestTriangulationSkeletonCoversSquareArea(t *testing.T) {
	w := squareWireForSkeleton()
	z := vec.Vec{X: 0, Y: 0, Z: 1}
	m, err := TriangulationSkeleton(w, &z)
	if err != nil {
		t.Fatalf("TriangulationSkeleton returned an error: %v", err)
	}
	if got, want := m.Surface(), 4.0; diffAbs(got, want) > 1e-6 {
		t.Fatalf("surface = %v, want %v", got, want)
	}
}

func diffAbs(a, b float64) float64 {
	if a < b {
		return b - a
	}
	return a - b
}
