// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package triangulate

import (
	"math"

	"github.com/cpmech/madcore/mesh"
	"github.com/cpmech/madcore/vec"
)

// Vec2 is a 2D coordinate, used once an outline's 3D points are
// projected into their best-fit plane.
type Vec2 struct{ X, Y float64 }

func sub2(a, b Vec2) Vec2      { return Vec2{a.X - b.X, a.Y - b.Y} }
func add2(a, b Vec2) Vec2      { return Vec2{a.X + b.X, a.Y + b.Y} }
func scale2(a Vec2, s float64) Vec2 { return Vec2{a.X * s, a.Y * s} }
func dot2(a, b Vec2) float64   { return a.X*b.X + a.Y*b.Y }

// perpdot2 is the 2D analog of the cross product's Z component: twice
// the signed area of the triangle (0,u,v).
func perpdot2(u, v Vec2) float64 { return u.X*v.Y - u.Y*v.X }

// perp2 rotates v by +90 degrees.
func perp2(v Vec2) Vec2 { return Vec2{-v.Y, v.X} }

func length2v(v Vec2) float64 { return math.Hypot(v.X, v.Y) }

func normalize2(v Vec2) Vec2 {
	l := length2v(v)
	if l < 1e-300 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

const numPrec = 1e-13

// dirBase builds an orthonormal (x,y,z) basis with z along normal.
func dirBase(normal vec.Vec) (x, y, z vec.Vec) {
	z = vec.Normalize(normal)
	ref := vec.Vec{X: 1, Y: 0, Z: 0}
	if math.Abs(vec.Dot(ref, z)) > 0.9 {
		ref = vec.Vec{X: 0, Y: 1, Z: 0}
	}
	x = vec.Normalize(vec.Noproject(ref, z))
	y = vec.Cross(z, x)
	return x, y, z
}

// guessBase builds a right-handed orthonormal basis (x,y,z) in which
// points are expected to lie close to the XY plane, picking x and y
// directions only once each clears a noise threshold relative to the
// points' own scale — analogous to the teacher's care around
// near-singular Jacobians before inverting (shp/algos.go's InvMap):
// here, a premature choice of a near-zero edge as a basis direction
// would make the projected polygon numerically degenerate.
func guessBase(points []mesh.Point, normal *vec.Vec) (x, y, z vec.Vec, ok bool) {
	if normal != nil {
		x, y, z = dirBase(*normal)
		return x, y, z, true
	}
	if len(points) < 3 {
		return vec.Zero, vec.Zero, vec.Zero, false
	}
	o := points[0]
	ol := vec.MaxAbsComponent(o)
	thres := 10 * numPrec

	var xv vec.Vec
	xl := 0.0
	i := 1
	for xl < thres && i < len(points) {
		p := points[i]
		xv = vec.Sub(p, o)
		denom := vec.MaxAbsComponent(p)
		if ol > denom {
			denom = ol
		}
		if denom == 0 {
			denom = 1
		}
		xl = vec.Dot(xv, xv) / denom
		i++
	}
	if xl < thres {
		return vec.Zero, vec.Zero, vec.Zero, false
	}
	x = vec.Normalize(xv)

	var yv vec.Vec
	zl := 0.0
	for zl < thres && i < len(points) {
		p := points[i]
		yv = vec.Sub(p, o)
		zl = vec.Length(vec.Cross(yv, x))
		i++
	}
	if zl < thres {
		return vec.Zero, vec.Zero, vec.Zero, false
	}
	y = vec.Normalize(vec.Noproject(yv, x))
	z = vec.Cross(x, y)
	return x, y, z, true
}

// planeProject projects an ordered loop of 3D points into the plane
// spanned by guessBase (or by normal, if given), flipping the Y axis
// when the turn at the leftmost point is clockwise, so the returned 2D
// loop always winds counterclockwise. Also
// returns the basis and the plane's offset along z, enough to embed new
// 2D points created during triangulation back into the same 3D plane.
func planeProject(points []mesh.Point, normal *vec.Vec) (proj []Vec2, x, y, z vec.Vec, planeZ float64, ok bool) {
	x, y, z, ok = guessBase(points, normal)
	if !ok {
		return nil, vec.Zero, vec.Zero, vec.Zero, 0, false
	}
	n := len(points)
	best := 0
	bestVal := vec.Dot(points[0], x)
	for i := 1; i < n; i++ {
		if v := vec.Dot(points[i], x); v < bestVal {
			best, bestVal = i, v
		}
	}
	cur := points[best]
	next := points[(best+1)%n]
	prev := points[(best-1+n)%n]
	if vec.Dot(z, vec.Cross(vec.Sub(next, cur), vec.Sub(prev, cur))) < 0 {
		y = vec.Neg(y)
	}
	planeZ = vec.Dot(points[0], z)
	proj = make([]Vec2, n)
	for i, p := range points {
		proj[i] = Vec2{vec.Dot(p, x), vec.Dot(p, y)}
	}
	return proj, x, y, z, planeZ, true
}

// embed3D maps a 2D plane coordinate back into 3D using the basis
// produced by planeProject.
func embed3D(u, v float64, x, y, z vec.Vec, planeZ float64) mesh.Point {
	return vec.Add(vec.Add(vec.Scale(x, u), vec.Scale(y, v)), vec.Scale(z, planeZ))
}
