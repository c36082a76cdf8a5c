// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"math"

	"github.com/cpmech/madcore/vec"
)

// metric2 is a lexicographically-compared (primary, secondary) score
// pair, used to pick the most reliable seed point/face when orienting a
// mesh: the primary term ranks candidates by how far out they are along
// the orientation direction, the secondary term (used only to break
// ties on the primary) favors a face whose normal is least tangential
// to that direction.
type metric2 struct{ primary, secondary float64 }

func (a metric2) greater(b metric2) bool {
	return a.primary > b.primary || (a.primary == b.primary && a.secondary > b.secondary)
}

// Orient returns a new Mesh with every face's winding made consistent
// within its connected component, flipping faces as needed.
//
// direction tries to make the result deterministic: if given, the
// outermost point along direction is considered to point outside; if
// nil, the point farthest from the mesh's barycenter is used instead
// (direction must make sense independently for every island if the
// mesh has more than one).
//
// The seed used to fix each island's orientation is not simply the
// first unvisited face: every unreached face's three points are scored
// by metric2 (primary: signed position along direction, or squared
// distance from the barycenter; secondary: |normal·direction| or
// |normal·(point-center)|, used only to break primary ties), and the
// single best-scoring point over all currently-unreached faces is
// taken as the seed, its face flipped so its normal agrees with
// direction (or points away from the barycenter) if needed. This
// mirrors the original's find-best-candidate scan
// (_examples/original_source/madcad/mesh.py's Mesh.orient): a seed
// chosen merely by face index can be tangential to the intended
// orientation and give an unreliable outward/inward sign on a
// non-convex or multi-island mesh, which is exactly the failure mode
// this metric is built to avoid. Propagation then flood-fills from the
// seed: when an already-oriented face and an unvisited neighbor share
// an edge traversed in the *same* direction by both (rather than the
// opposite direction a consistent winding requires), the neighbor is
// flipped. Islands are processed in descending order of their best
// candidate's score, since the scan re-evaluates over all still-
// unreached faces after each island is fully propagated.
func Orient(m *Mesh, direction *vec.Vec) *Mesh {
	faces := append([]Face(nil), m.Faces...)
	n := len(faces)
	out := &Mesh{
		Points: m.Points,
		Faces:  faces,
		Tracks: append([]int(nil), m.Tracks...),
		Groups: m.Groups,
	}
	if n == 0 {
		return out
	}

	normals := make([]Point, n)
	for i, f := range faces {
		a, b, c := m.Points[f[0]], m.Points[f[1]], m.Points[f[2]]
		normals[i] = vec.Cross(vec.Sub(b, a), vec.Sub(c, a))
	}

	center := m.Barycenter()
	var metric func(p, normal Point) metric2
	var orientSign func(p, normal Point) float64
	if direction != nil {
		dir := *direction
		metric = func(p, normal Point) metric2 {
			return metric2{vec.Dot(p, dir), math.Abs(vec.Dot(normal, dir))}
		}
		orientSign = func(p, normal Point) float64 { return vec.Dot(normal, dir) }
	} else {
		metric = func(p, normal Point) metric2 {
			d := vec.Sub(p, center)
			return metric2{vec.Length2(d), math.Abs(vec.Dot(normal, d))}
		}
		orientSign = func(p, normal Point) float64 { return vec.Dot(normal, vec.Sub(p, center)) }
	}

	byEdge := make(map[[2]int][]int, n*3)
	for i, f := range faces {
		for _, e := range faceEdges(f) {
			k := edgeKey(e[0], e[1])
			byEdge[k] = append(byEdge[k], i)
		}
	}

	reached := make([]bool, n)
	for {
		best := metric2{primary: math.Inf(-1)}
		candidate := -1
		var seedPoint Point
		for i, f := range faces {
			if reached[i] {
				continue
			}
			for _, p := range f {
				score := metric(m.Points[p], normals[i])
				if score.greater(best) {
					best, candidate, seedPoint = score, i, m.Points[p]
				}
			}
		}
		if candidate < 0 {
			break
		}
		if orientSign(seedPoint, normals[candidate]) < 0 {
			f := faces[candidate]
			faces[candidate] = Face{f[2], f[1], f[0]}
		}

		stack := []int{candidate}
		for len(stack) > 0 {
			i := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if reached[i] {
				continue
			}
			reached[i] = true
			for _, e := range faceEdges(faces[i]) {
				k := edgeKey(e[0], e[1])
				for _, j := range byEdge[k] {
					if j == i || reached[j] {
						continue
					}
					for _, oe := range faceEdges(faces[j]) {
						if oe == e {
							f := faces[j]
							faces[j] = Face{f[0], f[2], f[1]}
							break
						}
					}
					stack = append(stack, j)
				}
			}
		}
	}
	return out
}
