// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "testing"

func TestFaceNormalOfXYTriangle(t *testing.T) {
	m := singleTriangleMesh()
	n := m.FaceNormal(m.Faces[0])
	if n.Z < 0.99 {
		t.Fatalf("expected a counterclockwise XY triangle to have +Z normal, got %v", n)
	}
}

func TestVertexNormalsAverageAdjacentFaces(t *testing.T) {
	points := []Point{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
	}
	m := NewMesh(points, nil, nil, nil)
	MkQuad(m, [4]int{0, 1, 2, 3}, 0)
	normals := m.VertexNormals()
	for i, n := range normals {
		if n.Z < 0.99 {
			t.Errorf("vertex %d normal = %v, want roughly +Z", i, n)
		}
	}
}

func TestWebTangentsAverageIncidentEdges(t *testing.T) {
	points := []Point{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}}
	w := NewWeb(points, []Edge{{0, 1}, {1, 2}}, nil, nil)
	tangents := w.Tangents()
	mid := tangents[1]
	if got, want := mid.X, 1.0; got != want {
		t.Fatalf("middle-point tangent = %v, want X=%v", mid, want)
	}
}
