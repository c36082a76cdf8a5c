// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"github.com/cpmech/madcore/hashing"
	"github.com/cpmech/madcore/vec"
)

// Edge is an oriented pair of indices into a Web's Points; direction is
// semantic.
type Edge [2]int

// Web is a set of oriented edges, sharing the same shape as Mesh but with
// Edges in place of Faces.
type Web struct {
	Points []Point
	Edges  []Edge
	Tracks []int
	Groups []interface{}
}

// NewWeb builds a Web from raw buffers in O(1), with no validation.
func NewWeb(points []Point, edges []Edge, tracks []int, groups []interface{}) *Web {
	if tracks == nil {
		tracks = make([]int, len(edges))
	}
	if groups == nil {
		maxTrack := -1
		for _, t := range tracks {
			if t > maxTrack {
				maxTrack = t
			}
		}
		groups = make([]interface{}, maxTrack+1)
	}
	return &Web{Points: points, Edges: edges, Tracks: tracks, Groups: groups}
}

// Clone returns a Web with independently owned slices.
func (w *Web) Clone() *Web {
	return &Web{
		Points: append([]Point(nil), w.Points...),
		Edges:  append([]Edge(nil), w.Edges...),
		Tracks: append([]int(nil), w.Tracks...),
		Groups: append([]interface{}(nil), w.Groups...),
	}
}

// Box returns the web's axis-aligned bounding box.
func (w *Web) Box() Box { return boxOf(w.Points) }

// Precision returns the numeric coordinate precision operations on this
// web allow, given the floating point roundoff.
func (w *Web) Precision(propag uint) float64 { return precisionOf(w.Points, propag) }

// Transform applies trans to every point, returning a new Web sharing
// Edges/Tracks/Groups with w.
func (w *Web) Transform(trans func(Point) Point) *Web {
	points := make([]Point, len(w.Points))
	for i, p := range w.Points {
		points[i] = trans(p)
	}
	return &Web{Points: points, Edges: w.Edges, Tracks: w.Tracks, Groups: w.Groups}
}

// Flip returns a new Web with every edge reversed.
func (w *Web) Flip() *Web {
	edges := make([]Edge, len(w.Edges))
	for i, e := range w.Edges {
		edges[i] = Edge{e[1], e[0]}
	}
	return &Web{Points: w.Points, Edges: edges, Tracks: w.Tracks, Groups: w.Groups}
}

// EdgePoints returns the two coordinates of edge e.
func (w *Web) EdgePoints(e Edge) (Point, Point) { return w.Points[e[0]], w.Points[e[1]] }

// EdgeDirection returns the normalized direction of edge e.
func (w *Web) EdgeDirection(e Edge) Point {
	a, b := w.EdgePoints(e)
	return vec.Normalize(vec.Sub(b, a))
}

// Length returns the total length of the web's edges.
func (w *Web) Length() float64 {
	l := 0.0
	for _, e := range w.Edges {
		a, b := w.EdgePoints(e)
		l += vec.Distance(a, b)
	}
	return l
}

// Barycenter returns the length-weighted barycenter of the web's edges.
func (w *Web) Barycenter() Point {
	if len(w.Edges) == 0 {
		return vec.Zero
	}
	acc := vec.Zero
	tot := 0.0
	for _, e := range w.Edges {
		a, b := w.EdgePoints(e)
		ln := vec.Distance(a, b)
		tot += ln
		acc = vec.Add(acc, vec.Scale(vec.Add(a, b), ln/2))
	}
	if tot == 0 {
		return vec.Zero
	}
	return vec.Scale(acc, 1/tot)
}

// IsLine reports whether every point is used by at most 2 edges (a simple
// path or a disjoint union of them, no branching).
func (w *Web) IsLine() bool {
	count := make(map[int]int)
	for _, e := range w.Edges {
		count[e[0]]++
		count[e[1]]++
		if count[e[0]] > 2 || count[e[1]] > 2 {
			return false
		}
	}
	return true
}

// IsLoop reports whether the web forms a single closed loop: every point
// used exactly twice, and the edges form one connected suite.
func (w *Web) IsLoop() bool {
	if len(w.Edges) == 0 {
		return false
	}
	count := make(map[int]int)
	for _, e := range w.Edges {
		count[e[0]]++
		count[e[1]]++
	}
	for _, c := range count {
		if c != 2 {
			return false
		}
	}
	loops := Suites(toEdgeSlice(w.Edges), false, true, true)
	return len(loops) == 1
}

// Check validates the web's invariants.
func (w *Web) Check() error {
	l := len(w.Points)
	for _, e := range w.Edges {
		if e[0] < 0 || e[0] >= l || e[1] < 0 || e[1] >= l {
			return topoErrf("edge %v references out-of-range point index (have %d points)", e, l)
		}
		if e[0] == e[1] {
			return topoErrf("edge %v uses the same point twice", e)
		}
	}
	if len(w.Edges) != len(w.Tracks) {
		return topoErrf("tracks length %d doesn't match edges length %d", len(w.Tracks), len(w.Edges))
	}
	maxTrack := -1
	for _, t := range w.Tracks {
		if t > maxTrack {
			maxTrack = t
		}
	}
	if maxTrack >= len(w.Groups) {
		return topoErrf("track %d references out-of-range group (have %d groups)", maxTrack, len(w.Groups))
	}
	return nil
}

// IsValid is a non-throwing wrapper over Check.
func (w *Web) IsValid() bool { return w.Check() == nil }

// MergePoints remaps edge indices through merges, dropping edges that
// become degenerate.
func (w *Web) MergePoints(merges map[int]int) {
	edges := w.Edges[:0]
	tracks := w.Tracks[:0]
	for idx, e := range w.Edges {
		a, b := remapIdx(e[0], merges), remapIdx(e[1], merges)
		if a == b {
			continue
		}
		edges = append(edges, Edge{a, b})
		tracks = append(tracks, w.Tracks[idx])
	}
	w.Edges = edges
	w.Tracks = tracks
}

// StripPoints removes points used by no edge, rewriting edge indices.
func (w *Web) StripPoints() []int {
	used := make([]bool, len(w.Points))
	for _, e := range w.Edges {
		used[e[0]] = true
		used[e[1]] = true
	}
	reindex, n := stripIndex(used)
	w.Points = compactPoints(w.Points, used, reindex, n)
	for i, e := range w.Edges {
		w.Edges[i] = Edge{reindex[e[0]], reindex[e[1]]}
	}
	return reindex
}

// MergeClose merges points closer than limit (default: w.Precision(3)).
func (w *Web) MergeClose(limit float64) map[int]int {
	if limit <= 0 {
		limit = w.Precision(3)
	}
	set := hashing.NewPointSet(limit)
	merges := make(map[int]int)
	for i, p := range w.Points {
		used := set.Add(p)
		if used != i {
			merges[i] = used
		}
	}
	w.MergePoints(merges)
	w.Points = set.Points
	return merges
}

// Finish normalizes the web: merge-close, strip unused points, validate.
func (w *Web) Finish() error {
	w.MergeClose(0)
	w.StripPoints()
	return w.Check()
}

// EdgesSet returns the set of unoriented edges present in the web.
func (w *Web) EdgesSet() map[[2]int]bool {
	out := make(map[[2]int]bool, len(w.Edges))
	for _, e := range w.Edges {
		out[edgeKey(e[0], e[1])] = true
	}
	return out
}

// Segmented splits the web into a slice of single-group Webs, each
// sharing w's point buffer. If group is non-nil, only edges matching the
// given tracks are considered.
func (w *Web) Segmented(groups map[int]bool) []*Web {
	byTrack := make(map[int]*Web)
	var order []int
	for i, e := range w.Edges {
		t := w.Tracks[i]
		if groups != nil && !groups[t] {
			continue
		}
		sub, ok := byTrack[t]
		if !ok {
			sub = &Web{Points: w.Points, Groups: w.Groups}
			byTrack[t] = sub
			order = append(order, t)
		}
		sub.Edges = append(sub.Edges, e)
		sub.Tracks = append(sub.Tracks, t)
	}
	out := make([]*Web, 0, len(order))
	for _, t := range order {
		out = append(out, byTrack[t])
	}
	return out
}

// Extremities returns the points used by exactly one edge (the endpoints
// of open suites).
func (w *Web) Extremities() []int {
	count := make(map[int]int)
	var order []int
	for _, e := range w.Edges {
		for _, p := range e {
			if count[p] == 0 {
				order = append(order, p)
			}
			count[p]++
		}
	}
	var out []int
	for _, p := range order {
		if count[p] == 1 {
			out = append(out, p)
		}
	}
	return out
}

// Arcs returns the web's edges grouped into maximal contiguous chains
// (see Suites), each arc given as the sequence of point indices it
// walks.
func (w *Web) Arcs() [][]int {
	return Suites(toEdgeSlice(w.Edges), false, true, false)
}

// GroupExtremities returns the points used by exactly one edge among
// those belonging to groups (the endpoints of that subset's open
// suites).
func (w *Web) GroupExtremities(groups map[int]bool) []int {
	count := make(map[int]int)
	var order []int
	for i, e := range w.Edges {
		if !groups[w.Tracks[i]] {
			continue
		}
		for _, p := range e {
			if count[p] == 0 {
				order = append(order, p)
			}
			count[p]++
		}
	}
	var out []int
	for _, p := range order {
		if count[p] == 1 {
			out = append(out, p)
		}
	}
	return out
}

// Islands returns the unconnected parts of the web as separate Webs,
// sharing w's point buffer.
func (w *Web) Islands() []*Web {
	adj := make(map[int][][2]int) // point -> (edge index, other endpoint)
	for i, e := range w.Edges {
		adj[e[0]] = append(adj[e[0]], [2]int{i, e[1]})
		adj[e[1]] = append(adj[e[1]], [2]int{i, e[0]})
	}
	reached := make([]bool, len(w.Edges))
	var islands []*Web
	for start := 0; start < len(w.Edges); start++ {
		if reached[start] {
			continue
		}
		island := &Web{Points: w.Points, Groups: w.Groups}
		stack := []int{start}
		for len(stack) > 0 {
			i := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if reached[i] {
				continue
			}
			reached[i] = true
			e := w.Edges[i]
			island.Edges = append(island.Edges, e)
			island.Tracks = append(island.Tracks, w.Tracks[i])
			for _, p := range e {
				for _, ie := range adj[p] {
					if !reached[ie[0]] {
						stack = append(stack, ie[0])
					}
				}
			}
		}
		islands = append(islands, island)
	}
	return islands
}

func toEdgeSlice(edges []Edge) [][2]int {
	out := make([][2]int, len(edges))
	for i, e := range edges {
		out[i] = [2]int(e)
	}
	return out
}
