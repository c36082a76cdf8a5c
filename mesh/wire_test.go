// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "testing"

func squareWire() *Wire {
	points := []Point{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
	}
	return NewWire(points, []int{0, 1, 2, 3, 0}, nil, nil)
}

func TestWireIsClosedAndLength(t *testing.T) {
	w := squareWire()
	if !w.IsClosed() {
		t.Fatal("expected the square wire to be closed")
	}
	if got, want := w.Length(), 4.0; got != want {
		t.Fatalf("length = %v, want %v", got, want)
	}
}

func TestWireNormalPointsAlongZ(t *testing.T) {
	w := squareWire()
	n := w.Normal()
	if n.Z < 0.99 {
		t.Fatalf("expected a square wound counterclockwise in XY to have +Z normal, got %v", n)
	}
}

func TestWireFlipReversesWalkOrder(t *testing.T) {
	w := squareWire()
	flipped := w.Flip()
	if flipped.Indices[0] != w.Indices[len(w.Indices)-1] {
		t.Fatalf("expected flipped wire to start where the original ended")
	}
	if flipped.Normal().Z > -0.99 {
		t.Fatalf("expected flipping to reverse the wire's normal, got %v", flipped.Normal())
	}
}

func TestWireVertexNormalsConsistentWithLoopNormal(t *testing.T) {
	w := squareWire()
	ref := w.Normal()
	normals := w.VertexNormals(true)
	for i, n := range normals {
		if d := n.X*ref.X + n.Y*ref.Y + n.Z*ref.Z; d < 0 {
			t.Errorf("vertex %d normal %v disagrees with loop normal %v", i, n, ref)
		}
	}
}

func TestWireMergeCloseCollapsesSegments(t *testing.T) {
	w := squareWire()
	w.Points = append(w.Points, Point{X: 1e-9, Y: 1e-9, Z: 0})
	w.Indices = append(w.Indices, 4)
	w.Tracks = append(w.Tracks, 0)
	merges := w.MergeClose(1e-6)
	if _, ok := merges[4]; !ok {
		t.Fatal("expected the near-duplicate point to merge")
	}
}
