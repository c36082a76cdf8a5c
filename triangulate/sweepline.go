// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package triangulate

import (
	"fmt"
	"math"
	"sort"

	"github.com/cpmech/madcore/mesh"
	"github.com/cpmech/madcore/vec"
)

func orthoproj2(v Vec2) float64 {
	l := math.Hypot(v.X, v.Y)
	if l == 0 {
		return 0
	}
	return v.Y / l
}

// projy evaluates the line through edge e at the given x coordinate,
// returning its y. Used to test whether a point falls between two
// bounding chains of a sweep cluster.
func projy(pts map[int]Vec2, e [2]int, xval float64) float64 {
	a, b := pts[e[0]], pts[e[1]]
	v := sub2(b, a)
	slope := 0.0
	if v.X != 0 {
		slope = v.Y / v.X
	}
	return a.Y + slope*(xval-a.X)
}

func insertEdge(s [][2]int, i int, v [2]int) [][2]int {
	s = append(s, [2]int{})
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}

type sweepCluster struct{ l0, l1 [2]int }

func insertCluster(s []sweepCluster, i int, v sweepCluster) []sweepCluster {
	s = append(s, sweepCluster{})
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}

func insertLoop(s [][]int, i int, v []int) [][]int {
	s = append(s, nil)
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}

// sweepLineLoops implements the cluster-building sweep: edges are swept
// in decreasing X of their higher-X endpoint, maintaining a list of
// "clusters" — monotone sub-polygons in progress, each bounded by two
// chains (l0, l1) — until every cluster closes into a loop.
func sweepLineLoops(pts map[int]Vec2, edges [][2]int) ([][]int, error) {
	if len(edges) < 3 {
		return nil, errTooFewSweepEdges
	}

	work := append([][2]int(nil), edges...)
	for i, e := range work {
		if pts[e[0]].X < pts[e[1]].X {
			work[i] = [2]int{e[1], e[0]}
		}
	}
	sort.SliceStable(work, func(i, j int) bool {
		xi, xj := pts[work[i][0]].X, pts[work[j][0]].X
		if xi != xj {
			return xi < xj
		}
		oi := -math.Abs(orthoproj2(sub2(pts[work[i][1]], pts[work[i][0]])))
		oj := -math.Abs(orthoproj2(sub2(pts[work[j][1]], pts[work[j][0]])))
		return oi < oj
	})

	stack := work
	var clusters []sweepCluster
	var loops [][]int
	var finalized [][]int

	for len(stack) > 0 {
		edge := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		m := -1
		sc := -1.0
		for i := len(stack) - 1; i >= 0 && pts[stack[i][0]].X == pts[edge[0]].X; i-- {
			e := stack[i]
			if e[0] == edge[0] {
				diff := math.Abs(orthoproj2(sub2(pts[e[1]], pts[e[0]])) - orthoproj2(sub2(pts[edge[1]], pts[edge[0]])))
				if diff > sc {
					sc = diff
					m = i
				}
			}
		}
		var coedge [2]int
		hasCoedge := m >= 0
		if hasCoedge {
			coedge = stack[m]
			stack = append(stack[:m], stack[m+1:]...)
			if orthoproj2(sub2(pts[edge[1]], pts[edge[0]])) < orthoproj2(sub2(pts[coedge[1]], pts[coedge[0]])) {
				edge, coedge = coedge, edge
			}
		}

		found := false
		i := 0
		for i < len(clusters) {
			l0, l1 := clusters[i].l0, clusters[i].l1
			if l0[1] == l1[1] {
				clusters = append(clusters[:i], clusters[i+1:]...)
				loops[i] = append(loops[i], l0[1])
				finalized = append(finalized, loops[i])
				loops = append(loops[:i], loops[i+1:]...)
				continue
			}
			switch {
			case edge[0] == l0[1]:
				loops[i] = append(loops[i], l0[1])
				clusters[i] = sweepCluster{edge, l1}
				if hasCoedge {
					stack = append(stack, coedge)
				}
				found = true
			case edge[0] == l1[1]:
				loops[i] = append([]int{l1[1]}, loops[i]...)
				if hasCoedge {
					clusters[i] = sweepCluster{l0, coedge}
				} else {
					clusters[i] = sweepCluster{l0, edge}
				}
				if hasCoedge {
					stack = append(stack, edge)
				}
				found = true
			case hasCoedge && l0[0] == l1[0] && l0[0] == edge[0] &&
				projy(pts, l0, pts[edge[1]].X) > 0 && projy(pts, l1, pts[edge[1]].X) < 0:
				clusters[i] = sweepCluster{l0, coedge}
				clusters = insertCluster(clusters, i, sweepCluster{edge, l1})
				loops = insertLoop(loops, i, []int{edge[0]})
				found = true
			case hasCoedge &&
				projy(pts, l0, pts[edge[0]].X) > 0 && projy(pts, l0, pts[edge[1]].X) < 0:
				clusters[i] = sweepCluster{l0, coedge}
				clusters = insertCluster(clusters, i, sweepCluster{edge, l1})
				loops[i] = append([]int{coedge[0]}, loops[i]...)
				loops = insertLoop(loops, i, []int{l1[0], edge[0]})
				found = true
			}
			if found {
				break
			}
			i++
		}

		if !found {
			switch {
			case hasCoedge && edge[1] != coedge[1]:
				j := 0
				for j < len(clusters) {
					cl0, cl1 := clusters[j].l0, clusters[j].l1
					a1, a2 := pts[cl0[0]].X, projy(pts, cl0, pts[edge[0]].X)
					b1, b2 := pts[cl1[0]].X, projy(pts, cl1, pts[edge[1]].X)
					if a1 > b1 || (a1 == b1 && a2 >= b2) {
						break
					}
					j++
				}
				clusters = insertCluster(clusters, j, sweepCluster{coedge, edge})
				loops = insertLoop(loops, j, []int{edge[0]})
			case pts[edge[1]].X == pts[edge[0]].X:
				at := len(stack) - 1
				if at < 0 {
					at = 0
				}
				stack = insertEdge(stack, at, edge)
				if hasCoedge {
					stack = insertEdge(stack, at, coedge)
				}
			default:
				return nil, fmt.Errorf("sweep line cannot classify edge %v: %w", edge, mesh.ErrTopology)
			}
		}
	}

	for i, c := range clusters {
		loops[i] = append(loops[i], c.l0[1])
		if c.l0[1] != c.l1[1] {
			loops[i] = append([]int{c.l1[1]}, loops[i]...)
		}
	}
	finalized = append(finalized, loops...)
	return finalized, nil
}

// SweepLineLoops extracts closed point-index loops from an unoriented
// edge soup (a Web whose edges carry no consistent winding), including
// nested holes, in O(n·log²n). normal may be nil to have the plane
// guessed from the web's points.
func SweepLineLoops(w *mesh.Web, normal *vec.Vec) ([][]int, error) {
	x, y, z, ok := guessBase(w.Points, normal)
	if !ok {
		return nil, errDegeneratePlane
	}
	_ = z
	pts := make(map[int]Vec2, len(w.Edges)*2)
	for _, e := range w.Edges {
		for _, p := range e {
			if _, seen := pts[p]; !seen {
				pts[p] = Vec2{vec.Dot(w.Points[p], x), vec.Dot(w.Points[p], y)}
			}
		}
	}
	edges := make([][2]int, len(w.Edges))
	for i, e := range w.Edges {
		edges[i] = [2]int(e)
	}
	return sweepLineLoops(pts, edges)
}

// TriangulationSweepline extracts loops from the web with
// SweepLineLoops and triangulates each with Outline, appending the
// results into one Mesh (one group per loop). A loop shorter than 3
// points or whose own ear clipping fails is silently skipped rather
// than aborting the whole triangulation.
func TriangulationSweepline(w *mesh.Web, normal *vec.Vec) (*mesh.Mesh, error) {
	loops, err := SweepLineLoops(w, normal)
	if err != nil {
		return nil, err
	}
	result := mesh.NewMesh(w.Points, nil, nil, nil)
	for _, loop := range loops {
		if len(loop) < 3 {
			continue
		}
		indices := append(append([]int(nil), loop...), loop[0])
		wire := mesh.NewWire(w.Points, indices, nil, nil)
		sub, _, err := Outline(wire, normal)
		if err != nil {
			continue
		}
		result.AppendInPlace(sub)
	}
	return result, nil
}
