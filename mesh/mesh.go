// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"github.com/cpmech/madcore/hashing"
	"github.com/cpmech/madcore/vec"
)

// Face is a triangle, a triple of indices into a Mesh's Points. Its
// orientation convention is that cross(b-a, c-a) points outward.
type Face [3]int

// Mesh is a set of triangles, used to represent volumes (by their
// exterior surface) or open surfaces.
type Mesh struct {
	Points []Point
	Faces  []Face
	Tracks []int
	Groups []interface{}
}

// NewMesh builds a Mesh from raw buffers in O(1), with no validation. If
// tracks is nil, every face is assigned track 0; if groups is nil,
// max(tracks)+1 nil groups are allocated, so every track indexes a group.
func NewMesh(points []Point, faces []Face, tracks []int, groups []interface{}) *Mesh {
	if tracks == nil {
		tracks = make([]int, len(faces))
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
	return &Mesh{Points: points, Faces: faces, Tracks: tracks, Groups: groups}
}

// Clone returns a Mesh with independently owned Points/Faces/Tracks/Groups
// slices, safe to mutate without affecting m.
func (m *Mesh) Clone() *Mesh {
	return &Mesh{
		Points: append([]Point(nil), m.Points...),
		Faces:  append([]Face(nil), m.Faces...),
		Tracks: append([]int(nil), m.Tracks...),
		Groups: append([]interface{}(nil), m.Groups...),
	}
}

// Box returns the mesh's axis-aligned bounding box.
func (m *Mesh) Box() Box { return boxOf(m.Points) }

// MaxNum returns the largest absolute coordinate value among the mesh's
// points, a hint of its scale or the floating point precision it allows.
func (m *Mesh) MaxNum() float64 { return maxAbsCoord(m.Points) }

// Precision returns the numeric coordinate precision operations on this
// mesh allow, given the floating point roundoff.
func (m *Mesh) Precision(propag uint) float64 { return precisionOf(m.Points, propag) }

// Transform applies trans to every point, returning a new Mesh sharing
// Faces/Tracks/Groups with m.
func (m *Mesh) Transform(trans func(Point) Point) *Mesh {
	points := make([]Point, len(m.Points))
	for i, p := range m.Points {
		points[i] = trans(p)
	}
	return &Mesh{Points: points, Faces: m.Faces, Tracks: m.Tracks, Groups: m.Groups}
}

// UsePointAt returns the index of the first point within neigh of loc; if
// none is found, it appends loc and returns its new index.
func (m *Mesh) UsePointAt(loc Point, neigh float64) int {
	if i := pointAt(m.Points, loc, neigh); i >= 0 {
		return i
	}
	i := len(m.Points)
	m.Points = append(m.Points, loc)
	return i
}

// PointAt returns the index of the first point within neigh of loc, or -1.
func (m *Mesh) PointAt(loc Point, neigh float64) int { return pointAt(m.Points, loc, neigh) }

// PointNear returns the index of the point nearest to loc.
func (m *Mesh) PointNear(loc Point) int { return pointNear(m.Points, loc) }

// Append adds other's faces and points to m, returning a new Mesh. Points
// and Groups buffers are shared when identical by reference.
func (m *Mesh) Append(other *Mesh) *Mesh {
	r := &Mesh{
		Points: m.Points,
		Faces:  append([]Face(nil), m.Faces...),
		Tracks: append([]int(nil), m.Tracks...),
		Groups: m.Groups,
	}
	r.appendInPlace(other)
	return r
}

// AppendInPlace mutates m, appending other's faces/points.
func (m *Mesh) AppendInPlace(other *Mesh) { m.appendInPlace(other) }

func (m *Mesh) appendInPlace(other *Mesh) {
	samePoints := samePointsBuffer(m.Points, other.Points)
	if samePoints {
		m.Faces = append(m.Faces, other.Faces...)
	} else {
		lp := len(m.Points)
		m.Points = append(m.Points, other.Points...)
		for _, f := range other.Faces {
			m.Faces = append(m.Faces, Face{f[0] + lp, f[1] + lp, f[2] + lp})
		}
	}
	sameGroups := sameGroupsBuffer(m.Groups, other.Groups)
	if sameGroups {
		m.Tracks = append(m.Tracks, other.Tracks...)
	} else {
		lt := len(m.Groups)
		m.Groups = append(m.Groups, other.Groups...)
		for _, t := range other.Tracks {
			m.Tracks = append(m.Tracks, t+lt)
		}
	}
}

func samePointsBuffer(a, b []Point) bool {
	return len(a) > 0 && len(b) > 0 && &a[0] == &b[0]
}

func sameGroupsBuffer(a, b []interface{}) bool {
	return len(a) > 0 && len(b) > 0 && &a[0] == &b[0]
}

// MergePoints remaps face indices through merges ({src: dst}), dropping
// faces that become degenerate (repeat an index). Merged points are not
// removed from the buffer.
func (m *Mesh) MergePoints(merges map[int]int) {
	faces := m.Faces[:0]
	tracks := m.Tracks[:0]
	for idx, f := range m.Faces {
		a, b, c := remapIdx(f[0], merges), remapIdx(f[1], merges), remapIdx(f[2], merges)
		if a == b || b == c || c == a {
			continue
		}
		faces = append(faces, Face{a, b, c})
		tracks = append(tracks, m.Tracks[idx])
	}
	m.Faces = faces
	m.Tracks = tracks
}

func remapIdx(i int, merges map[int]int) int {
	if j, ok := merges[i]; ok {
		return j
	}
	return i
}

// StripPoints removes points used by no face, rewriting face indices.
// Returns the old-index -> new-index reindex table (-1 for removed
// points).
func (m *Mesh) StripPoints() []int {
	used := make([]bool, len(m.Points))
	for _, f := range m.Faces {
		used[f[0]] = true
		used[f[1]] = true
		used[f[2]] = true
	}
	reindex, n := stripIndex(used)
	m.Points = compactPoints(m.Points, used, reindex, n)
	for i, f := range m.Faces {
		m.Faces[i] = Face{reindex[f[0]], reindex[f[1]], reindex[f[2]]}
	}
	return reindex
}

// StripGroups removes groups used by no face, rewriting Tracks. Returns
// the reindex table.
func (m *Mesh) StripGroups() []int {
	used := make([]bool, len(m.Groups))
	for _, t := range m.Tracks {
		used[t] = true
	}
	reindex, n := stripIndex(used)
	m.Groups = compactGroups(m.Groups, used, reindex, n)
	for i, t := range m.Tracks {
		m.Tracks[i] = reindex[t]
	}
	return reindex
}

// MergeGroups merges groups according to merges ({src track: dst track}),
// extending Groups with defs. If merges is nil, every face is collapsed
// onto a single new group holding defs[0].
func (m *Mesh) MergeGroups(defs []interface{}, merges map[int]int) {
	if merges == nil {
		m.Groups = defs
		for i := range m.Tracks {
			m.Tracks[i] = 0
		}
		return
	}
	l := len(m.Groups)
	m.Groups = append(m.Groups, defs...)
	for i, t := range m.Tracks {
		if dst, ok := merges[t]; ok {
			m.Tracks[i] = dst + l
		}
	}
}

// MergeClose merges points closer than limit (default: m.Precision(3)),
// rewriting faces through the resulting remap and dropping faces that
// become degenerate. Returns the remap {old index: new index}.
func (m *Mesh) MergeClose(limit float64) map[int]int {
	if limit <= 0 {
		limit = m.Precision(3)
	}
	set := hashing.NewPointSet(limit)
	merges := make(map[int]int)
	for i, p := range m.Points {
		used := set.Add(p)
		if used != i {
			merges[i] = used
		}
	}
	m.MergePoints(merges)
	m.Points = set.Points
	return merges
}

// Flip returns a new Mesh with every face reversed, so normals point the
// opposite way.
func (m *Mesh) Flip() *Mesh {
	faces := make([]Face, len(m.Faces))
	for i, f := range m.Faces {
		faces[i] = Face{f[0], f[2], f[1]}
	}
	return &Mesh{Points: m.Points, Faces: faces, Tracks: m.Tracks, Groups: m.Groups}
}

// IsSurface reports whether the mesh is manifold: no oriented edge is
// used by more than one face.
func (m *Mesh) IsSurface() bool {
	seen := make(map[[2]int]bool, len(m.Faces)*3)
	for _, f := range m.Faces {
		for _, e := range faceEdges(f) {
			if seen[e] {
				return false
			}
			seen[e] = true
		}
	}
	return true
}

// IsEnvelope reports whether the mesh is a closed surface (empty outline).
func (m *Mesh) IsEnvelope() bool { return len(m.OutlinesOriented()) == 0 }

// Check validates the mesh's invariants, returning an error wrapping
// ErrTopology on the first violation found.
func (m *Mesh) Check() error {
	l := len(m.Points)
	for _, f := range m.Faces {
		for _, p := range f {
			if p < 0 || p >= l {
				return topoErrf("face %v references out-of-range point index (have %d points)", f, l)
			}
		}
		if f[0] == f[1] || f[1] == f[2] || f[2] == f[0] {
			return topoErrf("face %v uses the same point multiple times", f)
		}
	}
	if len(m.Faces) != len(m.Tracks) {
		return topoErrf("tracks length %d doesn't match faces length %d", len(m.Tracks), len(m.Faces))
	}
	maxTrack := -1
	for _, t := range m.Tracks {
		if t > maxTrack {
			maxTrack = t
		}
	}
	if maxTrack >= len(m.Groups) {
		return topoErrf("track %d references out-of-range group (have %d groups)", maxTrack, len(m.Groups))
	}
	return nil
}

// IsValid is a non-throwing wrapper over Check.
func (m *Mesh) IsValid() bool { return m.Check() == nil }

// Finish normalizes the mesh: merge-close, strip unused points, strip
// unused groups, then validate.
func (m *Mesh) Finish() error {
	m.MergeClose(0)
	m.StripPoints()
	m.StripGroups()
	return m.Check()
}

// GroupNear returns the track of the group whose surface is nearest to
// point, or -1 if the mesh has no faces.
//
// The original implementation never updated its running "best" distance,
// so it returned the track of the last face scanned rather than the
// nearest one (spec open question); this one updates best and track
// together, only on strict improvement.
func (m *Mesh) GroupNear(point Point) int {
	best := -1
	bestDist := 0.0
	for i, f := range m.Faces {
		a, b, c := m.Points[f[0]], m.Points[f[1]], m.Points[f[2]]
		fd, _ := distanceToTriangle(point, a, b, c, f)
		if best == -1 || fd < bestDist {
			best, bestDist = m.Tracks[i], fd
		}
	}
	return best
}

// FacePoints returns the three coordinates of face f.
func (m *Mesh) FacePoints(f Face) (Point, Point, Point) {
	return m.Points[f[0]], m.Points[f[1]], m.Points[f[2]]
}

// Surface returns the total area of the mesh's triangles.
func (m *Mesh) Surface() float64 {
	s := 0.0
	for _, f := range m.Faces {
		a, b, c := m.FacePoints(f)
		s += vec.Length(vec.Cross(vec.Sub(b, a), vec.Sub(c, a))) / 2
	}
	return s
}

// Barycenter returns the mesh's surface-area-weighted barycenter.
func (m *Mesh) Barycenter() Point {
	if len(m.Faces) == 0 {
		return vec.Zero
	}
	acc := vec.Zero
	tot := 0.0
	for _, f := range m.Faces {
		a, b, c := m.FacePoints(f)
		w := vec.Length(vec.Cross(vec.Sub(b, a), vec.Sub(c, a)))
		tot += w
		acc = vec.Add(acc, vec.Scale(vec.Add(a, vec.Add(b, c)), w))
	}
	if tot == 0 {
		return vec.Zero
	}
	return vec.Scale(acc, 1/(3*tot))
}

// Group returns a new Mesh, sharing m's point/group buffers, containing
// only the faces whose track is in groups.
func (m *Mesh) Group(groups map[int]bool) *Mesh {
	var faces []Face
	var tracks []int
	for i, f := range m.Faces {
		if groups[m.Tracks[i]] {
			faces = append(faces, f)
			tracks = append(tracks, m.Tracks[i])
		}
	}
	return &Mesh{Points: m.Points, Faces: faces, Tracks: tracks, Groups: m.Groups}
}

// MkTri appends a triangle to m.
func MkTri(m *Mesh, pts [3]int, track int) {
	m.Faces = append(m.Faces, Face(pts))
	m.Tracks = append(m.Tracks, track)
}

// MkQuad appends a quad (4 indices, in loop order) as two triangles,
// splitting along whichever diagonal is shorter.
func MkQuad(m *Mesh, pts [4]int, track int) {
	p := m.Points
	if vec.Distance(p[pts[0]], p[pts[2]]) <= vec.Distance(p[pts[1]], p[pts[3]]) {
		MkTri(m, [3]int{pts[0], pts[1], pts[2]}, track)
		MkTri(m, [3]int{pts[2], pts[3], pts[0]}, track)
	} else {
		MkTri(m, [3]int{pts[0], pts[1], pts[3]}, track)
		MkTri(m, [3]int{pts[1], pts[2], pts[3]}, track)
	}
}

func faceEdges(f Face) [3][2]int {
	return [3][2]int{{f[0], f[1]}, {f[1], f[2]}, {f[2], f[0]}}
}
