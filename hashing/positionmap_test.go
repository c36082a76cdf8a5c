// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hashing

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sortedCells(keys []Cell) []Cell {
	out := append([]Cell(nil), keys...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].Z < out[j].Z
	})
	return out
}

func uniqueCells(keys []Cell) []Cell {
	seen := make(map[Cell]bool)
	var out []Cell
	for _, k := range keys {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}

// scenario 5: segment rasterization
func TestKeysForSegment(t *testing.T) {
	m := NewPositionMap(1)
	keys := m.KeysForSegment(Point{X: 0, Y: 0, Z: 0}, Point{X: 2.5, Y: 0, Z: 0})
	got := sortedCells(uniqueCells(keys))
	want := sortedCells([]Cell{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("segment rasterization mismatch (-want +got):\n%s", diff)
	}
}

// scenario 6: triangle rasterization
func TestKeysForTriangleCoversDiagonal(t *testing.T) {
	m := NewPositionMap(1)
	keys := m.KeysForTriangle(Point{X: 0, Y: 0, Z: 0}, Point{X: 3, Y: 0, Z: 0}, Point{X: 0, Y: 3, Z: 0})
	set := make(map[Cell]bool)
	for _, k := range keys {
		set[k] = true
		if k.X < 0 || k.Y < 0 || k.Z != 0 || k.X > 2 || k.Y > 2 {
			t.Errorf("cell %v falls outside the triangle's bounding box", k)
		}
	}
	for i := 0; i <= 2; i++ {
		for j := 0; i+j <= 2 && j <= 2; j++ {
			if !set[Cell{X: i, Y: j, Z: 0}] {
				t.Errorf("expected cell (%d,%d,0) to be covered", i, j)
			}
		}
	}
}

// P7 (partial, deterministic probe): every cell whose center lies inside a
// triangle is reported.
func TestKeysForTriangleCenterCoverage(t *testing.T) {
	m := NewPositionMap(0.5)
	a := Point{X: 0, Y: 0, Z: 0}
	b := Point{X: 4, Y: 0, Z: 0}
	c := Point{X: 0, Y: 4, Z: 0}
	keys := m.KeysForTriangle(a, b, c)
	set := make(map[Cell]bool)
	for _, k := range keys {
		set[k] = true
	}
	cell := m.Cellsize()
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			cx := (float64(i)+0.5)*cell
			cy := (float64(j)+0.5)*cell
			if cx+cy < 4 { // strictly inside the right-triangle hypotenuse
				if !set[Cell{X: i, Y: j, Z: 0}] {
					t.Errorf("cell center (%v,%v) lies inside the triangle but was not reported", cx, cy)
				}
			}
		}
	}
}

func TestAddGetDeduplicatesWithinPrimitive(t *testing.T) {
	m := NewPositionMap(1)
	m.Add(Point{X: 0.1, Y: 0.1, Z: 0.1}, "a")
	got := m.Get(Point{X: 0.2, Y: 0.2, Z: 0.2})
	if len(got) != 1 || got[0] != "a" {
		t.Fatalf("expected single hit 'a', got %v", got)
	}
}

func TestUpdateRequiresMatchingCellsize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on cellsize mismatch")
		}
	}()
	a := NewPositionMap(1)
	b := NewPositionMap(2)
	a.Update(b)
}

// P8: PointSet coalescence.
func TestPointSetCoalescence(t *testing.T) {
	s := NewPointSet(1)
	i1 := s.Add(Point{X: 0, Y: 0, Z: 0})
	i2 := s.Add(Point{X: 0.1, Y: 0.2, Z: 0.3})
	if i1 != i2 {
		t.Fatalf("expected both points to coalesce to the same index, got %d and %d", i1, i2)
	}
	if s.Len() != 1 {
		t.Fatalf("expected a single stored point, got %d", s.Len())
	}
}

func TestPointSetDiscard(t *testing.T) {
	s := NewPointSet(1)
	p := Point{X: 5, Y: 5, Z: 5}
	s.Add(p)
	if !s.Contains(p) {
		t.Fatal("expected point to be present")
	}
	s.Discard(p)
	if s.Contains(p) {
		t.Fatal("expected point to be gone after Discard")
	}
}
