// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "github.com/cpmech/madcore/vec"

// Suites reassembles a set of edges (oriented pairs of point indices)
// into maximal contiguous point-index chains.
//
// If oriented, a chain only extends through an edge starting at its
// current tail; otherwise either endpoint of an unused edge may match.
// If cut, a chain stops rather than picking arbitrarily the moment its
// tail has more than one unused candidate edge, so branching topology
// yields several short chains instead of one chain chosen at random.
// If loop, a chain stops growing the instant its head and tail
// coincide — first-closure-wins: it does not keep consuming further
// edges past the closure point, matching the original's
// `if loop and suite[-1] == suite[0]: break` checked once per edge
// placed.
func Suites(edges [][2]int, oriented, cut, loop bool) [][]int {
	used := make([]bool, len(edges))
	byStart := make(map[int][]int)
	for i, e := range edges {
		byStart[e[0]] = append(byStart[e[0]], i)
		if !oriented {
			byStart[e[1]] = append(byStart[e[1]], i)
		}
	}
	candidatesAt := func(p int) []int {
		var out []int
		for _, i := range byStart[p] {
			if !used[i] {
				out = append(out, i)
			}
		}
		return out
	}

	var suites [][]int
	for start := range edges {
		if used[start] {
			continue
		}
		suite := []int{edges[start][0], edges[start][1]}
		used[start] = true
		for {
			if loop && suite[len(suite)-1] == suite[0] {
				break
			}
			tail := suite[len(suite)-1]
			cands := candidatesAt(tail)
			if len(cands) == 0 || (cut && len(cands) > 1) {
				break
			}
			i := cands[0]
			e := edges[i]
			next := e[1]
			if e[0] == tail {
				next = e[1]
			} else {
				next = e[0]
			}
			used[i] = true
			suite = append(suite, next)
		}
		suites = append(suites, suite)
	}
	return suites
}

// LineSimplification walks w's suites and, for every interior vertex
// whose two adjacent edges are collinear within tolerance (the sine of
// the angle between their directions), maps that vertex onto its
// predecessor in the suite. Feeding the result to Web.MergePoints
// removes the redundant vertex and fuses its two edges into one,
// without changing the polyline's shape beyond tolerance.
func LineSimplification(w *Web, tolerance float64) map[int]int {
	suites := Suites(toEdgeSlice(w.Edges), true, true, false)
	merges := make(map[int]int)
	for _, suite := range suites {
		n := len(suite)
		for i := 1; i < n-1; i++ {
			a := remapIdx(suite[i-1], merges)
			b := suite[i]
			c := suite[i+1]
			pa, pb, pc := w.Points[a], w.Points[b], w.Points[c]
			dir1 := vec.Normalize(vec.Sub(pb, pa))
			dir2 := vec.Normalize(vec.Sub(pc, pb))
			if vec.Length(vec.Cross(dir1, dir2)) <= tolerance {
				merges[b] = a
			}
		}
	}
	return merges
}
