// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"github.com/cpmech/madcore/vec"
)

func unitCube() *Mesh {
	p := func(x, y, z float64) Point { return Point{X: x, Y: y, Z: z} }
	points := []Point{
		p(0, 0, 0), p(1, 0, 0), p(1, 1, 0), p(0, 1, 0),
		p(0, 0, 1), p(1, 0, 1), p(1, 1, 1), p(0, 1, 1),
	}
	quads := [6][4]int{
		{0, 1, 2, 3}, {4, 7, 6, 5}, {0, 4, 5, 1},
		{1, 5, 6, 2}, {2, 6, 7, 3}, {3, 7, 4, 0},
	}
	m := NewMesh(points, nil, nil, nil)
	for _, q := range quads {
		MkQuad(m, q, 0)
	}
	return m
}

// scenario 1: a consistently wound unit cube (its face normals point
// inward) is a closed envelope.
func TestUnitCubeIsEnvelope(t *testing.T) {
	m := unitCube()
	if err := m.Check(); err != nil {
		t.Fatalf("unexpected invalid mesh: %v", err)
	}
	if !m.IsEnvelope() {
		t.Fatal("expected the unit cube to be a closed envelope")
	}
	if !m.IsSurface() {
		t.Fatal("expected the unit cube to be manifold")
	}
	if got, want := m.Surface(), 6.0; got != want {
		t.Fatalf("surface area = %v, want %v", got, want)
	}
}

// scenario 2: flipping every face keeps the mesh closed but reverses
// every normal.
func TestFlipReversesNormals(t *testing.T) {
	m := unitCube()
	flipped := m.Flip()
	if !flipped.IsEnvelope() {
		t.Fatal("expected flipped cube to remain a closed envelope")
	}
	normals := m.FaceNormals()
	flippedNormals := flipped.FaceNormals()
	for i := range normals {
		d := normals[i].X*flippedNormals[i].X + normals[i].Y*flippedNormals[i].Y + normals[i].Z*flippedNormals[i].Z
		if d > -0.99 {
			t.Fatalf("face %d: normal not reversed (dot=%v)", i, d)
		}
	}
}

// scenario 3: two disjoint tetrahedra form two islands.
func TestTwoTetrahedraAreTwoIslands(t *testing.T) {
	p := func(x, y, z float64) Point { return Point{X: x, Y: y, Z: z} }
	points := []Point{
		p(0, 0, 0), p(1, 0, 0), p(0, 1, 0), p(0, 0, 1),
		p(10, 0, 0), p(11, 0, 0), p(10, 1, 0), p(10, 0, 1),
	}
	faces := []Face{
		{0, 2, 1}, {0, 1, 3}, {1, 2, 3}, {2, 0, 3},
		{4, 6, 5}, {4, 5, 7}, {5, 6, 7}, {6, 4, 7},
	}
	m := NewMesh(points, faces, nil, nil)
	islands := m.Islands()
	if len(islands) != 2 {
		t.Fatalf("expected 2 islands, got %d", len(islands))
	}
	for _, isl := range islands {
		if len(isl.Faces) != 4 {
			t.Errorf("expected each island to keep its 4 faces, got %d", len(isl.Faces))
		}
	}
}

func TestMergeCloseCoalescesNearbyPoints(t *testing.T) {
	m := unitCube()
	extra := m.Clone()
	extra.Points = append(extra.Points, Point{X: 1e-9, Y: 1e-9, Z: 1e-9})
	merges := extra.MergeClose(1e-6)
	if _, ok := merges[8]; !ok {
		t.Fatalf("expected the near-duplicate point to merge into an existing one")
	}
}

func TestGroupNearPicksNearestFace(t *testing.T) {
	p := func(x, y, z float64) Point { return Point{X: x, Y: y, Z: z} }
	points := []Point{p(0, 0, 0), p(1, 0, 0), p(0, 1, 0), p(10, 0, 0), p(11, 0, 0), p(10, 1, 0)}
	faces := []Face{{0, 1, 2}, {3, 4, 5}}
	m := NewMesh(points, faces, []int{0, 1}, []interface{}{"near", "far"})
	track := m.GroupNear(Point{X: 0.1, Y: 0.1, Z: 0})
	if track != 0 {
		t.Fatalf("expected the nearer group (track 0), got %d", track)
	}
}

func TestOutlinesOrientedEmptyForClosedSurface(t *testing.T) {
	m := unitCube()
	if got := m.OutlinesOriented(); len(got) != 0 {
		t.Fatalf("expected no outline edges on a closed surface, got %d", len(got))
	}
}

func TestOutlinesOrientedOnOpenSurface(t *testing.T) {
	// one face of the cube removed: now has a boundary.
	m := unitCube()
	m.Faces = m.Faces[:len(m.Faces)-2]
	m.Tracks = m.Tracks[:len(m.Tracks)-2]
	edges := m.OutlinesOriented()
	if len(edges) != 4 {
		t.Fatalf("expected 4 boundary edges after removing one quad, got %d", len(edges))
	}
}

func TestOrientFixesInconsistentWinding(t *testing.T) {
	p := func(x, y, z float64) Point { return Point{X: x, Y: y, Z: z} }
	points := []Point{p(0, 0, 0), p(1, 0, 0), p(0, 1, 0), p(0, 0, 1)}
	// deliberately inconsistent winding across shared edges
	faces := []Face{{0, 2, 1}, {0, 1, 3}, {2, 1, 3}, {2, 0, 3}}
	m := NewMesh(points, faces, nil, nil)
	oriented := Orient(m, nil)
	if !oriented.IsSurface() {
		t.Fatal("expected Orient to produce a manifold winding")
	}
}

// Orient must pick each island's seed by the direction metric, not by
// face index: two disconnected single-face islands, with the
// farther-along-direction one listed first, both end up with their
// normal agreeing with the given direction.
func TestOrientSeedUsesDirectionNotFaceOrder(t *testing.T) {
	p := func(x, y, z float64) Point { return Point{X: x, Y: y, Z: z} }
	points := []Point{
		p(0, 0, 0), p(0, 1, 0), p(0, 0, 1), p(3, 0, 0), p(3, 1, 0), p(3, 0, 1),
	}
	far := Face{3, 4, 5} // farther along +X, listed first, already +X-wound
	near := Face{0, 2, 1} // closer to the origin, listed second, -X-wound (needs a flip)
	m := NewMesh(points, []Face{far, near}, nil, nil)
	dir := Point{X: 1, Y: 0, Z: 0}
	oriented := Orient(m, &dir)
	for i, f := range oriented.Faces {
		n := oriented.FaceNormal(f)
		if vec.Dot(n, dir) < 0 {
			t.Errorf("face %d normal %v disagrees with direction %v", i, n, dir)
		}
	}
}
