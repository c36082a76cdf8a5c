// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package triangulate

import (
	"math"
	"testing"

	"github.com/cpmech/madcore/mesh"
	"github.com/cpmech/madcore/vec"
)

func squareWireXY() *mesh.Wire {
	points := []mesh.Point{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
	}
	return mesh.NewWire(points, []int{0, 1, 2, 3, 0}, nil, nil)
}

// lShapeWire is a concave L-shaped outline (a 2x2 square with its
// top-right unit quadrant removed), requiring the reflex corner to be
// skipped as a valid ear.
func lShapeWire() *mesh.Wire {
	points := []mesh.Point{
		{X: 0, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}, {X: 2, Y: 1, Z: 0},
		{X: 1, Y: 1, Z: 0}, {X: 1, Y: 2, Z: 0}, {X: 0, Y: 2, Z: 0},
	}
	return mesh.NewWire(points, []int{0, 1, 2, 3, 4, 5, 0}, nil, nil)
}

func TestOutlineSquareProducesTwoTriangles(t *testing.T) {
	w := squareWireXY()
	z := vec.Vec{X: 0, Y: 0, Z: 1}
	m, warnings, err := Outline(w, &z)
	if err != nil {
		t.Fatalf("Outline returned an error: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings on a well-formed square: %v", warnings)
	}
	if got, want := len(m.Faces), 2; got != want {
		t.Fatalf("faces = %d, want %d", got, want)
	}
	if got, want := m.Surface(), 1.0; got != want {
		t.Fatalf("surface = %v, want %v", got, want)
	}
}

// scenario 4: a concave L-shaped outline triangulates into 4 triangles
// covering the full L-shaped area, none of which cross the reflex
// corner.
func TestOutlineConcaveLShape(t *testing.T) {
	w := lShapeWire()
	z := vec.Vec{X: 0, Y: 0, Z: 1}
	m, _, err := Outline(w, &z)
	if err != nil {
		t.Fatalf("Outline returned an error: %v", err)
	}
	if got, want := len(m.Faces), 4; got != want {
		t.Fatalf("faces = %d, want %d", got, want)
	}
	if got, want := m.Surface(), 3.0; got != want {
		t.Fatalf("surface = %v, want %v", got, want)
	}
}

func TestOutlineRejectsTooFewPoints(t *testing.T) {
	points := []mesh.Point{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}}
	w := mesh.NewWire(points, []int{0, 1, 0}, nil, nil)
	if _, _, err := Outline(w, nil); err == nil {
		t.Fatal("expected an error for a degenerate 2-point outline")
	}
}

// aesthetic must score a zero-perimeter degenerate triangle as -Inf
// rather than dividing by zero.
func TestAestheticRejectsZeroPerimeter(t *testing.T) {
	if got := aesthetic(Vec2{}, Vec2{}); !math.IsInf(got, -1) {
		t.Fatalf("aesthetic(0,0) = %v, want -Inf", got)
	}
}

// Any warning Outline does surface must describe a finite score beyond
// the numeric tolerance: within tolerance is not a warning at all, and
// a non-finite score means clipping got stuck rather than merely
// emitting a diagnostic.
func TestOutlineWarningsStayWithinNumericPolicy(t *testing.T) {
	w := lShapeWire()
	z := vec.Vec{X: 0, Y: 0, Z: 1}
	m, warnings, err := Outline(w, &z)
	if err != nil {
		t.Fatalf("Outline returned an error: %v", err)
	}
	if got, want := m.Surface(), 3.0; got != want {
		t.Fatalf("surface = %v, want %v", got, want)
	}
	for _, warn := range warnings {
		if math.IsInf(warn.Score, -1) {
			t.Fatalf("warning score must be finite, got %v", warn)
		}
		if warn.Score >= -numPrec {
			t.Fatalf("warning score %v is within tolerance, should not have warned", warn)
		}
	}
}
