// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package triangulate

import (
	"errors"
	"testing"

	"github.com/cpmech/madcore/mesh"
	"github.com/cpmech/madcore/vec"
)

// pinchedQuadWire has a point coincident with its neighbor (P2 sits
// exactly on top of P1), so every one of its four ears either spans a
// zero-length edge or contains another outline point on its boundary:
// ear clipping can make no progress at all and every initial score is
// -Inf.
func pinchedQuadWire() *mesh.Wire {
	points := []mesh.Point{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0},
	}
	return mesh.NewWire(points, []int{0, 1, 2, 3, 0}, nil, nil)
}

func TestOutlineReportsStuckOnPinchedQuad(t *testing.T) {
	w := pinchedQuadWire()
	z := vec.Vec{X: 0, Y: 0, Z: 1}
	if _, _, err := Outline(w, &z); !errors.Is(err, mesh.ErrTopology) {
		t.Fatalf("expected an error wrapping mesh.ErrTopology, got %v", err)
	}
}

// When ear clipping cannot progress, Triangulate must fall back to the
// straight-skeleton method instead of surfacing the failure.
func TestTriangulateFallsBackWhenEarClipIsStuck(t *testing.T) {
	w := pinchedQuadWire()
	z := vec.Vec{X: 0, Y: 0, Z: 1}
	m, warnings, err := Triangulate(w, &z)
	if err != nil {
		t.Fatalf("Triangulate returned an error: %v", err)
	}
	if warnings != nil {
		t.Fatalf("expected no warnings from the skeleton fallback, got %v", warnings)
	}
	if m == nil || len(m.Faces) == 0 {
		t.Fatal("expected the skeleton fallback to produce a non-empty mesh")
	}
}

func TestTriangulatePrefersOutlineOnSimplePolygon(t *testing.T) {
	w := squareWireXY()
	z := vec.Vec{X: 0, Y: 0, Z: 1}
	m, _, err := Triangulate(w, &z)
	if err != nil {
		t.Fatalf("Triangulate returned an error: %v", err)
	}
	if got, want := m.Surface(), 1.0; got != want {
		t.Fatalf("surface = %v, want %v", got, want)
	}
}

func TestTriangulateOnLShape(t *testing.T) {
	w := lShapeWire()
	z := vec.Vec{X: 0, Y: 0, Z: 1}
	m, _, err := Triangulate(w, &z)
	if err != nil {
		t.Fatalf("Triangulate returned an error: %v", err)
	}
	if got, want := m.Surface(), 3.0; diffAbs(got, want) > 1e-9 {
		t.Fatalf("surface = %v, want %v", got, want)
	}
}
