// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package triangulate

import (
	"testing"

	"github.com/cpmech/madcore/mesh"
	"github.com/cpmech/madcore/vec"
)

func squareEdgeSoup() *mesh.Web {
	points := []mesh.Point{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
	}
	// edges given out of order and with mixed direction, as an unoriented
	// soup, the way a boundary extraction would hand them over.
	edges := []mesh.Edge{{2, 3}, {0, 1}, {3, 0}, {1, 2}}
	return mesh.NewWeb(points, edges, nil, nil)
}

func TestSweepLineLoopsRecoversSquareLoop(t *testing.T) {
	w := squareEdgeSoup()
	z := vec.Vec{X: 0, Y: 0, Z: 1}
	loops, err := SweepLineLoops(w, &z)
	if err != nil {
		t.Fatalf("SweepLineLoops returned an error: %v", err)
	}
	if len(loops) != 1 {
		t.Fatalf("expected a single loop, got %d", len(loops))
	}
	if got, want := len(loops[0]), 4; got != want {
		t.Fatalf("loop length = %d, want %d", got, want)
	}
}

func TestTriangulationSweeplineCoversSquareArea(t *testing.T) {
	w := squareEdgeSoup()
	z := vec.Vec{X: 0, Y: 0, Z: 1}
	m, err := TriangulationSweepline(w, &z)
	if err != nil {
		t.Fatalf("TriangulationSweepline returned an error: %v", err)
	}
	if got, want := m.Surface(), 1.0; diffAbs(got, want) > 1e-9 {
		t.Fatalf("surface = %v, want %v", got, want)
	}
}

func TestSweepLineLoopsRejectsTooFewEdges(t *testing.T) {
	points := []mesh.Point{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}}
	w := mesh.NewWeb(points, []mesh.Edge{{0, 1}}, nil, nil)
	if _, err := SweepLineLoops(w, nil); err == nil {
		t.Fatal("expected an error for fewer than 3 edges")
	}
}
