// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "github.com/cpmech/madcore/vec"

// FaceNormal returns face f's normalized normal (cross(b-a, c-a)).
func (m *Mesh) FaceNormal(f Face) Point {
	a, b, c := m.FacePoints(f)
	return vec.Normalize(vec.Cross(vec.Sub(b, a), vec.Sub(c, a)))
}

// FaceNormals returns the normalized normal of every face, in face
// order.
func (m *Mesh) FaceNormals() []Point {
	out := make([]Point, len(m.Faces))
	for i, f := range m.Faces {
		out[i] = m.FaceNormal(f)
	}
	return out
}

// VertexNormals returns, for every point, the area-weighted average of
// the normals of the faces touching it. The cross product's magnitude
// is twice the triangle's area, so summing unnormalized cross products
// before the final normalization weights each face's contribution by
// its area automatically.
func (m *Mesh) VertexNormals() []Point {
	acc := make([]Point, len(m.Points))
	for _, f := range m.Faces {
		a, b, c := m.FacePoints(f)
		n := vec.Cross(vec.Sub(b, a), vec.Sub(c, a))
		for _, p := range f {
			acc[p] = vec.Add(acc[p], n)
		}
	}
	out := make([]Point, len(acc))
	for i, n := range acc {
		out[i] = vec.Normalize(n)
	}
	return out
}

// EdgeNormals returns, for every unoriented edge in edges, the average
// of the normals of the faces touching it (one face on a boundary edge,
// two on an interior one).
func (m *Mesh) EdgeNormals(edges [][2]int) map[[2]int]Point {
	sum := make(map[[2]int]Point)
	for _, f := range m.Faces {
		n := m.FaceNormal(f)
		for _, e := range faceEdges(f) {
			k := edgeKey(e[0], e[1])
			sum[k] = vec.Add(sum[k], n)
		}
	}
	out := make(map[[2]int]Point, len(edges))
	for _, e := range edges {
		k := edgeKey(e[0], e[1])
		if n, ok := sum[k]; ok {
			out[k] = vec.Normalize(n)
		}
	}
	return out
}

// Tangents returns, for every point used by the web, the normalized
// average of the directions of its incident edges — the tangent used
// when the web describes the boundary of a surface to extrude or loft.
func (w *Web) Tangents() map[int]Point {
	acc := make(map[int]Point)
	for _, e := range w.Edges {
		d := w.EdgeDirection(e)
		acc[e[0]] = vec.Add(acc[e[0]], d)
		acc[e[1]] = vec.Add(acc[e[1]], d)
	}
	out := make(map[int]Point, len(acc))
	for p, d := range acc {
		out[p] = vec.Normalize(d)
	}
	return out
}
