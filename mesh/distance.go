// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "github.com/cpmech/madcore/vec"

// Container is implemented by Mesh, Web and Wire: anything a point's
// distance can be measured against, and that can list its own points.
type Container interface {
	DistanceToPoint(point Point) (float64, interface{})
	Pts() []Point
}

// Pts returns m.Points, satisfying Container.
func (m *Mesh) Pts() []Point { return m.Points }

// Pts returns w.Points, satisfying Container.
func (w *Web) Pts() []Point { return w.Points }

// distanceToTriangle returns the distance from point to the triangle
// (a,b,c) belonging to face f, and a descriptor of the nearest feature:
// an int vertex index (one of f's three indices) when the nearest
// feature is a corner, a [2]int edge (a pair of f's indices) when it is
// an edge, or f itself when the projection falls inside the triangle.
func distanceToTriangle(point, a, b, c Point, f Face) (float64, interface{}) {
	ab := vec.Sub(b, a)
	ac := vec.Sub(c, a)
	ap := vec.Sub(point, a)

	d1 := vec.Dot(ab, ap)
	d2 := vec.Dot(ac, ap)
	if d1 <= 0 && d2 <= 0 {
		return vec.Distance(point, a), f[0]
	}

	bp := vec.Sub(point, b)
	d3 := vec.Dot(ab, bp)
	d4 := vec.Dot(ac, bp)
	if d3 >= 0 && d4 <= d3 {
		return vec.Distance(point, b), f[1]
	}

	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		t := d1 / (d1 - d3)
		proj := vec.Add(a, vec.Scale(ab, t))
		return vec.Distance(point, proj), [2]int{f[0], f[1]}
	}

	cp := vec.Sub(point, c)
	d5 := vec.Dot(ab, cp)
	d6 := vec.Dot(ac, cp)
	if d6 >= 0 && d5 <= d6 {
		return vec.Distance(point, c), f[2]
	}

	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		t := d2 / (d2 - d6)
		proj := vec.Add(a, vec.Scale(ac, t))
		return vec.Distance(point, proj), [2]int{f[0], f[2]}
	}

	va := d3*d6 - d5*d4
	if va <= 0 && (d4-d3) >= 0 && (d5-d6) >= 0 {
		t := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		proj := vec.Add(b, vec.Scale(vec.Sub(c, b), t))
		return vec.Distance(point, proj), [2]int{f[1], f[2]}
	}

	denom := 1 / (va + vb + vc)
	v := vb * denom
	w := vc * denom
	proj := vec.Add(a, vec.Add(vec.Scale(ab, v), vec.Scale(ac, w)))
	return vec.Distance(point, proj), f
}

// distanceToSegment returns the distance from point to segment (a,b),
// and the nearest feature: an int endpoint index, or the edge e itself
// when the projection lands strictly between the endpoints.
func distanceToSegment(point, a, b Point, e Edge) (float64, interface{}) {
	ab := vec.Sub(b, a)
	ln2 := vec.Length2(ab)
	if ln2 == 0 {
		return vec.Distance(point, a), e[0]
	}
	t := vec.Dot(vec.Sub(point, a), ab) / ln2
	switch {
	case t <= 0:
		return vec.Distance(point, a), e[0]
	case t >= 1:
		return vec.Distance(point, b), e[1]
	default:
		proj := vec.Add(a, vec.Scale(ab, t))
		return vec.Distance(point, proj), e
	}
}

// DistanceToPoint returns the distance from point to the mesh's nearest
// face, in a single accumulator pass (running best, no intermediate
// slice of per-face distances), together with the nearest feature (see
// distanceToTriangle). Returns (0, nil) for an empty mesh.
func (m *Mesh) DistanceToPoint(point Point) (float64, interface{}) {
	best := 0.0
	var feature interface{}
	found := false
	for _, f := range m.Faces {
		a, b, c := m.FacePoints(f)
		d, ft := distanceToTriangle(point, a, b, c, f)
		if !found || d < best {
			found, best, feature = true, d, ft
		}
	}
	return best, feature
}

// DistanceToPoint returns the distance from point to the web's nearest
// edge, together with the nearest feature (see distanceToSegment).
// Returns (0, nil) for an empty web.
func (w *Web) DistanceToPoint(point Point) (float64, interface{}) {
	best := 0.0
	var feature interface{}
	found := false
	for _, e := range w.Edges {
		a, b := w.EdgePoints(e)
		d, ft := distanceToSegment(point, a, b, e)
		if !found || d < best {
			found, best, feature = true, d, ft
		}
	}
	return best, feature
}

// MeshDistance returns the symmetric nearest-primitive distance between
// two point-containers: every point of b is measured against a's
// primitives and vice versa, and the smallest of the two passes is
// returned together with its feature descriptor.
func MeshDistance(a, b Container) (float64, interface{}) {
	best := 0.0
	var feature interface{}
	found := false
	consider := func(d float64, f interface{}) {
		if !found || d < best {
			found, best, feature = true, d, f
		}
	}
	for _, p := range b.Pts() {
		d, f := a.DistanceToPoint(p)
		consider(d, f)
	}
	for _, p := range a.Pts() {
		d, f := b.DistanceToPoint(p)
		consider(d, f)
	}
	return best, feature
}
