// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package triangulate

import (
	"math"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/madcore/mesh"
	"github.com/cpmech/madcore/vec"
)

// aesthetic scores a candidate ear by surface/perimeter², so that the
// ear-clipping order favors well-proportioned triangles over slivers.
// u and v are the two edges leaving the ear's tip, toward its two
// neighbors.
func aesthetic(u, v Vec2) float64 {
	perimeter := length2v(u) + length2v(v) + length2v(sub2(u, v))
	if perimeter == 0 {
		return math.Inf(-1)
	}
	return perpdot2(u, v) / (perimeter * perimeter)
}

// Outline triangulates a closed Wire lying approximately in a single
// plane, by repeated ear clipping: at each step, the remaining corner
// with the best aesthetic score among those whose ear contains no other
// remaining point is cut off, until 2 corners are left.
//
// normal may be nil to have the plane guessed from the points
// themselves (see guessBase). Returns an error wrapping mesh.ErrTopology
// if fewer than 3 usable points remain once the wire's closing index is
// dropped, if its points don't determine a plane, or if clipping gets
// stuck with every remaining ear rejected (no candidate scores above
// -Inf) before the hole is exhausted — the caller may then fall back to
// TriangulationSkeleton. A clipped ear whose score is below
// -numPrec is let through anyway, with a Warning appended to the
// returned slice: the loop is numerically ill-formed there, but not
// stuck.
func Outline(w *mesh.Wire, normal *vec.Vec) (*mesh.Mesh, []Warning, error) {
	loop := w.Indices
	if w.IsClosed() && len(loop) > 1 {
		loop = loop[:len(loop)-1]
	}
	if len(loop) < 3 {
		return nil, nil, errTooFewPoints
	}
	pts := make([]mesh.Point, len(loop))
	for i, idx := range loop {
		pts[i] = w.Points[idx]
	}
	proj, _, _, _, _, ok := planeProject(pts, normal)
	if !ok {
		return nil, nil, errDegeneratePlane
	}

	hole := append([]int(nil), loop...)

	score := func(i int) float64 {
		l := len(hole)
		o := proj[i]
		u := sub2(proj[(i+1)%l], o)
		v := sub2(proj[(i-1+l)%l], o)
		sc := aesthetic(u, v)
		if sc < 0 {
			return sc
		}
		det := perpdot2(u, v)
		if det == 0 {
			return math.Inf(-1)
		}
		for j := 0; j < l; j++ {
			if j == i || j == (i+1)%l || j == (i-1+l)%l {
				continue
			}
			p := sub2(proj[j], o)
			uc := (p.X*v.Y - p.Y*v.X) / det
			vc := (u.X*p.Y - u.Y*p.X) / det
			if uc >= 0 && vc >= 0 && uc+vc <= 1 {
				return math.Inf(-1)
			}
		}
		return sc
	}

	scores := make([]float64, len(hole))
	for i := range hole {
		scores[i] = score(i)
	}

	var faces []mesh.Face
	var warnings []Warning
	for len(hole) > 2 {
		l := len(hole)
		best := 0
		for i := 1; i < l; i++ {
			if scores[i] > scores[best] {
				best = i
			}
		}
		if math.IsInf(scores[best], -1) {
			return nil, warnings, errEarClipStuck
		}
		if scores[best] < -numPrec {
			warn := Warning{
				Index: hole[best],
				Score: scores[best],
				Msg:   "ear score is negative: loop is numerically ill-formed, clipping anyway",
			}
			io.Pfyel("triangulate: %s\n", warn)
			warnings = append(warnings, warn)
		}
		i := best
		faces = append(faces, mesh.Face{hole[(i-1+l)%l], hole[i], hole[(i+1)%l]})

		hole = append(hole[:i], hole[i+1:]...)
		proj = append(proj[:i], proj[i+1:]...)
		scores = append(scores[:i], scores[i+1:]...)
		l--
		if l < 3 {
			break
		}
		scores[(i-1+l)%l] = score((i - 1 + l) % l)
		scores[i%l] = score(i % l)
	}

	return mesh.NewMesh(w.Points, faces, nil, nil), warnings, nil
}
