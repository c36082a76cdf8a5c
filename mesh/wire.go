// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"github.com/cpmech/madcore/hashing"
	"github.com/cpmech/madcore/vec"
)

// Wire is an ordered chain of point indices, used to represent a single
// curve (open or, when Indices[0] == Indices[len(Indices)-1], closed).
// Unlike Web, order matters: consecutive entries of Indices are the
// chain's segments.
type Wire struct {
	Points  []Point
	Indices []int
	Tracks  []int
	Groups  []interface{}
}

// NewWire builds a Wire from raw buffers in O(1), with no validation.
// Tracks must have one entry per segment (len(indices)-1); if nil, every
// segment is assigned track 0.
func NewWire(points []Point, indices []int, tracks []int, groups []interface{}) *Wire {
	segs := 0
	if len(indices) > 1 {
		segs = len(indices) - 1
	}
	if tracks == nil {
		tracks = make([]int, segs)
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
	return &Wire{Points: points, Indices: indices, Tracks: tracks, Groups: groups}
}

// Len returns the number of point indices in the chain.
func (w *Wire) Len() int { return len(w.Indices) }

// IsClosed reports whether the chain's first and last indices coincide.
func (w *Wire) IsClosed() bool {
	return len(w.Indices) > 1 && w.Indices[0] == w.Indices[len(w.Indices)-1]
}

// Close returns a new Wire with its first index repeated at the end (if
// not already closed), so every segment including the last-to-first one
// is represented.
func (w *Wire) Close() *Wire {
	if w.IsClosed() || len(w.Indices) == 0 {
		return w
	}
	indices := append(append([]int(nil), w.Indices...), w.Indices[0])
	lastTrack := 0
	if len(w.Tracks) > 0 {
		lastTrack = w.Tracks[len(w.Tracks)-1]
	}
	tracks := append(append([]int(nil), w.Tracks...), lastTrack)
	return &Wire{Points: w.Points, Indices: indices, Tracks: tracks, Groups: w.Groups}
}

// Flip returns a new Wire walking the chain in reverse.
func (w *Wire) Flip() *Wire {
	n := len(w.Indices)
	indices := make([]int, n)
	for i, idx := range w.Indices {
		indices[n-1-i] = idx
	}
	tracks := make([]int, len(w.Tracks))
	for i, t := range w.Tracks {
		tracks[len(tracks)-1-i] = t
	}
	return &Wire{Points: w.Points, Indices: indices, Tracks: tracks, Groups: w.Groups}
}

// Edge returns the i-th segment as a pair of point indices.
func (w *Wire) Edge(i int) [2]int { return [2]int{w.Indices[i], w.Indices[i+1]} }

// Edges returns every segment of the chain as a pair of point indices.
func (w *Wire) Edges() [][2]int {
	if len(w.Indices) < 2 {
		return nil
	}
	out := make([][2]int, len(w.Indices)-1)
	for i := range out {
		out[i] = w.Edge(i)
	}
	return out
}

// EdgePoints returns the two coordinates of the i-th segment.
func (w *Wire) EdgePoints(i int) (Point, Point) {
	e := w.Edge(i)
	return w.Points[e[0]], w.Points[e[1]]
}

// Length returns the chain's total length.
func (w *Wire) Length() float64 {
	l := 0.0
	for i := range w.Edges() {
		a, b := w.EdgePoints(i)
		l += vec.Distance(a, b)
	}
	return l
}

// Barycenter returns the chain's length-weighted barycenter.
func (w *Wire) Barycenter() Point {
	edges := w.Edges()
	if len(edges) == 0 {
		return w.BarycenterPoints()
	}
	acc := vec.Zero
	tot := 0.0
	for i := range edges {
		a, b := w.EdgePoints(i)
		ln := vec.Distance(a, b)
		tot += ln
		acc = vec.Add(acc, vec.Scale(vec.Add(a, b), ln/2))
	}
	if tot == 0 {
		return w.BarycenterPoints()
	}
	return vec.Scale(acc, 1/tot)
}

// BarycenterPoints returns the unweighted average of the points at every
// entry of Indices, repeated indices (such as a closing index) counted
// each time they appear (used when every segment has zero length,
// e.g. a single-point wire).
func (w *Wire) BarycenterPoints() Point {
	if len(w.Indices) == 0 {
		return vec.Zero
	}
	acc := vec.Zero
	for _, idx := range w.Indices {
		acc = vec.Add(acc, w.Points[idx])
	}
	return vec.Scale(acc, 1/float64(len(w.Indices)))
}

// Normal returns the wire's overall normal, estimated over the whole
// loop by Newell's method (the sum of successive-vertex cross products,
// robust to a non-planar or noisy point set, not just the first three
// points). Meaningful for a closed wire; for an open one it estimates
// the normal of its notional closure.
func (w *Wire) Normal() Point {
	acc := vec.Zero
	n := len(w.Indices)
	for i := 0; i < n; i++ {
		a := w.Points[w.Indices[i]]
		b := w.Points[w.Indices[(i+1)%n]]
		acc = vec.Add(acc, vec.Cross(a, b))
	}
	return vec.Normalize(acc)
}

// makeLoopConsistency flips v if it disagrees with the reference
// direction ref, so that a set of per-vertex normals/tangents all point
// to the same side of the loop as ref (typically the loop's own Normal).
func makeLoopConsistency(v, ref Point) Point {
	if vec.Dot(v, ref) < 0 {
		return vec.Neg(v)
	}
	return v
}

// VertexNormals returns, for every entry of Indices, an osculating-plane
// normal estimated from the cross product of the chain's incoming and
// outgoing segment directions at that vertex, oriented consistently
// with the whole loop's Normal. If loop is false, the chain's two
// extremities reuse their single adjacent segment's direction on both
// sides (their cross product is degenerate, so they fall back to the
// loop normal itself).
func (w *Wire) VertexNormals(loop bool) []Point {
	n := len(w.Indices)
	out := make([]Point, n)
	ref := w.Normal()
	dir := func(i int) Point {
		a := w.Points[w.Indices[i]]
		b := w.Points[w.Indices[(i+1)%n]]
		return vec.Normalize(vec.Sub(b, a))
	}
	for i := 0; i < n; i++ {
		var prevI int
		if i == 0 {
			if !loop {
				out[i] = ref
				continue
			}
			prevI = n - 1
		} else {
			prevI = i - 1
		}
		if !loop && i == n-1 {
			out[i] = ref
			continue
		}
		inc := dir(prevI)
		out_ := vec.Cross(inc, dir(i))
		if vec.Length2(out_) == 0 {
			out[i] = ref
			continue
		}
		out[i] = makeLoopConsistency(vec.Normalize(out_), ref)
	}
	return out
}

// Tangents returns, for every entry of Indices, the normalized average
// of its incident segment directions. If loop is false, the chain's two
// extremities take their single adjacent segment's direction.
func (w *Wire) Tangents(loop bool) []Point {
	n := len(w.Indices)
	out := make([]Point, n)
	dir := func(i int) Point {
		a := w.Points[w.Indices[i]]
		b := w.Points[w.Indices[(i+1)%n]]
		return vec.Normalize(vec.Sub(b, a))
	}
	for i := 0; i < n; i++ {
		switch {
		case i == 0 && !loop:
			out[i] = dir(0)
		case i == n-1 && !loop:
			out[i] = dir(n - 2)
		default:
			prevI := i - 1
			if prevI < 0 {
				prevI = n - 1
			}
			out[i] = vec.Normalize(vec.Add(dir(prevI), dir(i%n)))
		}
	}
	return out
}

// Append adds other's points and indices after w's, returning a new
// Wire. Points/Groups buffers are shared when identical by reference.
func (w *Wire) Append(other *Wire) *Wire {
	r := &Wire{
		Points:  w.Points,
		Indices: append([]int(nil), w.Indices...),
		Tracks:  append([]int(nil), w.Tracks...),
		Groups:  w.Groups,
	}
	r.appendInPlace(other)
	return r
}

// AppendInPlace mutates w, appending other's indices/points.
func (w *Wire) AppendInPlace(other *Wire) { w.appendInPlace(other) }

func (w *Wire) appendInPlace(other *Wire) {
	if samePointsBuffer(w.Points, other.Points) {
		w.Indices = append(w.Indices, other.Indices...)
	} else {
		lp := len(w.Points)
		w.Points = append(w.Points, other.Points...)
		for _, idx := range other.Indices {
			w.Indices = append(w.Indices, idx+lp)
		}
	}
	if sameGroupsBuffer(w.Groups, other.Groups) {
		w.Tracks = append(w.Tracks, other.Tracks...)
	} else {
		lt := len(w.Groups)
		w.Groups = append(w.Groups, other.Groups...)
		for _, t := range other.Tracks {
			w.Tracks = append(w.Tracks, t+lt)
		}
	}
}

// StripPoints removes points used by no index, rewriting Indices.
func (w *Wire) StripPoints() []int {
	used := make([]bool, len(w.Points))
	for _, idx := range w.Indices {
		used[idx] = true
	}
	reindex, n := stripIndex(used)
	w.Points = compactPoints(w.Points, used, reindex, n)
	for i, idx := range w.Indices {
		w.Indices[i] = reindex[idx]
	}
	return reindex
}

// MergeClose merges points closer than limit (default: w.Precision(3)),
// remapping Indices and collapsing any segment that becomes degenerate
// (consecutive repeated index).
func (w *Wire) MergeClose(limit float64) map[int]int {
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
	var indices []int
	var tracks []int
	for i, idx := range w.Indices {
		ridx := remapIdx(idx, merges)
		if len(indices) > 0 && indices[len(indices)-1] == ridx {
			if i > 0 && i-1 < len(w.Tracks) {
				tracks = tracks[:len(tracks)-1]
			}
			continue
		}
		indices = append(indices, ridx)
		if i < len(w.Tracks) {
			tracks = append(tracks, w.Tracks[i])
		}
	}
	w.Indices = indices
	w.Tracks = tracks
	w.Points = set.Points
	return merges
}

// Precision returns the numeric coordinate precision operations on this
// wire allow, given the floating point roundoff.
func (w *Wire) Precision(propag uint) float64 { return precisionOf(w.Points, propag) }

// Box returns the wire's axis-aligned bounding box.
func (w *Wire) Box() Box { return boxOf(w.Points) }

// Check validates the wire's invariants.
func (w *Wire) Check() error {
	l := len(w.Points)
	for _, idx := range w.Indices {
		if idx < 0 || idx >= l {
			return topoErrf("wire index %d out of range (have %d points)", idx, l)
		}
	}
	wantTracks := 0
	if len(w.Indices) > 1 {
		wantTracks = len(w.Indices) - 1
	}
	if len(w.Tracks) != wantTracks {
		return topoErrf("tracks length %d doesn't match segment count %d", len(w.Tracks), wantTracks)
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
func (w *Wire) IsValid() bool { return w.Check() == nil }

// Pts returns w.Points, satisfying Container.
func (w *Wire) Pts() []Point { return w.Points }

// DistanceToPoint returns the distance from point to the wire's nearest
// segment, together with the nearest feature (see distanceToSegment).
func (w *Wire) DistanceToPoint(point Point) (float64, interface{}) {
	best := 0.0
	var feature interface{}
	found := false
	for i, e := range w.Edges() {
		a, b := w.EdgePoints(i)
		d, ft := distanceToSegment(point, a, b, Edge(e))
		if !found || d < best {
			found, best, feature = true, d, ft
		}
	}
	return best, feature
}

// Segmented splits the wire into contiguous runs of equal-track
// segments, each a separate Wire sharing w's point buffer. A run breaks
// whenever the track changes, and (if groups is non-nil) whenever a
// segment's track isn't in groups.
func (w *Wire) Segmented(groups map[int]bool) []*Wire {
	var out []*Wire
	var cur *Wire
	curTrack := -1
	flush := func() {
		if cur != nil && len(cur.Indices) > 1 {
			out = append(out, cur)
		}
		cur = nil
	}
	for i, t := range w.Tracks {
		if groups != nil && !groups[t] {
			flush()
			curTrack = -1
			continue
		}
		if cur == nil || t != curTrack {
			flush()
			cur = &Wire{Points: w.Points, Groups: w.Groups, Indices: []int{w.Indices[i]}}
			curTrack = t
		}
		cur.Indices = append(cur.Indices, w.Indices[i+1])
		cur.Tracks = append(cur.Tracks, t)
	}
	flush()
	return out
}
