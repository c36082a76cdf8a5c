// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package triangulate

import (
	"math"

	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/madcore/mesh"
	"github.com/cpmech/madcore/vec"
)

// haxisEntry is a "half axis": the angle bisector emanating from
// origin (a point index into the growing skeleton point buffer),
// spanned by the two adjacent outline edges whose normals are
// enormals[a] and enormals[b].
type haxisEntry struct {
	origin int
	a, b   int
}

func modi(a, b int) int { return ((a % b) + b) % b }

// skeletize runs the straight-skeleton edge-collapse loop over a
// closed, planar polygon given as 2D points, calling onEvent once per
// collapse with the pre-collapse half-axis list and the slot index
// being collapsed, before that slot is removed and replaced by the
// merged half axis at the new point. Returns the full point buffer
// (the original polygon's points followed by every point created during
// collapse) and an error wrapping mesh.ErrTopology if no further
// intersection can be found before the half-axis list still has more
// than one entry (a degenerate or self-intersecting outline).
func skeletize(proj []Vec2, onEvent func(haxis []haxisEntry, i, ip int)) ([]Vec2, error) {
	l := len(proj)
	pts := append([]Vec2(nil), proj...)

	enormals := make([]Vec2, l)
	for i := 0; i < l; i++ {
		d := sub2(proj[i], proj[modi(i-1, l)])
		enormals[i] = perp2(normalize2(d))
	}

	haxis := make([]haxisEntry, l)
	for i := 0; i < l; i++ {
		haxis[i] = haxisEntry{origin: i, a: i, b: modi(i+1, l)}
	}

	intersect := make([]Vec2, l)
	dist := make([]float64, l)

	evalIntersect := func(i int) {
		n := len(haxis)
		h1 := haxis[modi(i-1, n)]
		h2 := haxis[i]
		v1 := add2(enormals[h1.a], enormals[h1.b])
		v2 := add2(enormals[h2.a], enormals[h2.b])
		if length2v(v1) < numPrec {
			v1 = perp2(enormals[h1.b])
		}
		if length2v(v2) < numPrec {
			v2 = scale2(perp2(enormals[h2.b]), -1)
		}
		rhs := sub2(pts[h2.origin], pts[h1.origin])
		det := -v1.X*v2.Y + v2.X*v1.Y
		if math.Abs(det) < numPrec {
			intersect[i] = pts[h2.origin]
			dist[i] = 0
			return
		}
		x1 := (-v2.Y*rhs.X + v2.X*rhs.Y) / det
		x2 := (-v1.Y*rhs.X + v1.X*rhs.Y) / det
		if x1 >= -numPrec && x2 >= -numPrec {
			intersect[i] = add2(pts[h2.origin], scale2(v2, x2))
			d1 := x1 * length2v(v1)
			d2 := x2 * length2v(v2)
			if d1 < d2 {
				dist[i] = d1
			} else {
				dist[i] = d2
			}
		} else {
			intersect[i] = Vec2{}
			dist[i] = math.Inf(1)
		}
	}
	for i := 0; i < l; i++ {
		evalIntersect(i)
	}

	for len(haxis) > 1 {
		n := len(haxis)
		i := 0
		for k := 1; k < n; k++ {
			if dist[k] < dist[i] {
				i = k
			}
		}
		if math.IsInf(dist[i], 1) {
			return nil, errSkeletonStuck
		}
		h1 := haxis[modi(i-1, n)]
		h2 := haxis[i]
		ip := len(pts)
		pts = append(pts, intersect[i])

		onEvent(haxis, i, ip)

		haxis = append(haxis[:i], haxis[i+1:]...)
		dist = append(dist[:i], dist[i+1:]...)
		intersect = append(intersect[:i], intersect[i+1:]...)
		n--
		if n == 0 {
			break
		}
		haxis[modi(i-1, n)] = haxisEntry{origin: ip, a: h1.a, b: h2.b}
		for d := -2; d <= 2; d++ {
			evalIntersect(modi(i+d, n))
		}
	}
	return pts, nil
}

// Skeleton returns a Web describing the straight skeleton of a closed,
// planar Wire: the locus of bisector segments connecting the outline's
// vertices to the internal points generated by progressively shrinking
// it. The returned Web's points are w's, extended with the new
// skeleton vertices embedded back into the outline's plane.
func Skeleton(w *mesh.Wire, normal *vec.Vec) (*mesh.Web, error) {
	loop := w.Indices
	if w.IsClosed() && len(loop) > 1 {
		loop = loop[:len(loop)-1]
	}
	if len(loop) < 3 {
		return nil, errTooFewPoints
	}
	outer := make([]mesh.Point, len(loop))
	for i, idx := range loop {
		outer[i] = w.Points[idx]
	}
	proj, x, y, z, planeZ, ok := planeProject(outer, normal)
	if !ok {
		return nil, errDegeneratePlane
	}

	l := len(loop)
	points := append([]mesh.Point(nil), w.Points...)
	globalOf := func(local int) int {
		if local < l {
			return loop[local]
		}
		return local - l + len(w.Points)
	}

	var edges []mesh.Edge
	sk := func(haxis []haxisEntry, i, ip int) {
		n := len(haxis)
		h1 := haxis[modi(i-1, n)]
		h2 := haxis[i]
		edges = append(edges, mesh.Edge{globalOf(h1.origin), globalOf(ip)})
		edges = append(edges, mesh.Edge{globalOf(h2.origin), globalOf(ip)})
	}

	all, err := skeletize(proj, sk)
	if err != nil {
		return nil, err
	}
	for _, p := range all[l:] {
		points = append(points, embed3D(p.X, p.Y, x, y, z, planeZ))
	}

	return mesh.NewWeb(points, edges, nil, nil), nil
}

// TriangulationSkeleton fills a closed, planar Wire with triangles by
// running the straight-skeleton collapse and fanning a triangle across
// every collapse event, then merging skeleton points joined by an
// internal edge shorter than half the shortest outline-to-skeleton
// "bone" found — folding slivers left by nearly-collinear collapses.
func TriangulationSkeleton(w *mesh.Wire, normal *vec.Vec) (*mesh.Mesh, error) {
	loop := w.Indices
	if w.IsClosed() && len(loop) > 1 {
		loop = loop[:len(loop)-1]
	}
	if len(loop) < 3 {
		return nil, errTooFewPoints
	}
	outer := make([]mesh.Point, len(loop))
	for i, idx := range loop {
		outer[i] = w.Points[idx]
	}
	proj, x, y, z, planeZ, ok := planeProject(outer, normal)
	if !ok {
		return nil, errDegeneratePlane
	}

	l := len(loop)
	points := append([]mesh.Point(nil), w.Points...)
	globalOf := func(local int) int {
		if local < l {
			return loop[local]
		}
		return local - l + len(w.Points)
	}

	var faces []mesh.Face
	type bone struct{ a, b int }
	// bones holds interior-to-interior half axes: merge candidates.
	// boundaryBones holds outline-to-interior half axes: these set the
	// length scale (minbone) the merge threshold is derived from, and
	// are never themselves merge candidates.
	var bones, boundaryBones []bone

	sk := func(haxis []haxisEntry, i, ip int) {
		n := len(haxis)
		h0 := haxis[modi(i-2, n)]
		h1 := haxis[modi(i-1, n)]
		h2 := haxis[i]
		h3 := haxis[modi(i+1, n)]
		faces = append(faces, mesh.Face{globalOf(h0.origin), globalOf(h1.origin), globalOf(ip)})
		faces = append(faces, mesh.Face{globalOf(h1.origin), globalOf(h2.origin), globalOf(ip)})
		faces = append(faces, mesh.Face{globalOf(h2.origin), globalOf(h3.origin), globalOf(ip)})

		consider := func(h haxisEntry) {
			if h.origin < l {
				boundaryBones = append(boundaryBones, bone{h.origin, ip})
				return
			}
			bones = append(bones, bone{h.origin, ip})
		}
		consider(h1)
		consider(h2)
	}

	all, err := skeletize(proj, sk)
	if err != nil {
		return nil, err
	}
	for _, p := range all[l:] {
		points = append(points, embed3D(p.X, p.Y, x, y, z, planeZ))
	}
	minbone := math.Inf(1)
	for _, bo := range boundaryBones {
		d := vec.Distance(embed3D(all[bo.a].X, all[bo.a].Y, x, y, z, planeZ), embed3D(all[bo.b].X, all[bo.b].Y, x, y, z, planeZ))
		minbone = utl.Min(minbone, d)
	}
	if math.IsInf(minbone, 1) {
		minbone = 0
	}
	threshold := 0.5 * minbone

	merges := make(map[int]int)
	for _, bo := range bones {
		a, b := globalOf(bo.a), globalOf(bo.b)
		if vec.Distance(points[a], points[b]) >= threshold {
			continue
		}
		_, aMerged := merges[a]
		_, bMerged := merges[b]
		switch {
		case !aMerged:
			if v, ok := merges[b]; ok {
				merges[a] = v
			} else {
				merges[a] = b
			}
		case !bMerged:
			merges[b] = a
		}
	}

	m := mesh.NewMesh(points, faces, nil, nil)
	m.MergePoints(merges)
	return m, nil
}
