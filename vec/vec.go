// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vec adapts github.com/deadsy/sdfx/vec/v3's double-precision
// vector type to the handful of operations the geometric kernel needs
// (dot, cross, normalize, length, elementwise min/max). The vector type
// itself stays external; only the small set of free functions below are
// ours.
package vec

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/deadsy/sdfx/vec/v3i"
)

// Vec is a 3D double-precision point or direction.
type Vec = v3.Vec

// Cell is an integer cell-coordinate triple, used as a spatial-hash key.
type Cell = v3i.Vec

// Zero is the additive identity.
var Zero = Vec{X: 0, Y: 0, Z: 0}

// Add returns a+b.
func Add(a, b Vec) Vec { return Vec{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z} }

// Sub returns a-b.
func Sub(a, b Vec) Vec { return Vec{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z} }

// Scale returns a*k.
func Scale(a Vec, k float64) Vec { return Vec{X: a.X * k, Y: a.Y * k, Z: a.Z * k} }

// Neg returns -a.
func Neg(a Vec) Vec { return Vec{X: -a.X, Y: -a.Y, Z: -a.Z} }

// Dot returns the dot product a·b.
func Dot(a, b Vec) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

// Cross returns a×b.
func Cross(a, b Vec) Vec {
	return Vec{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// Length2 returns the squared length of a.
func Length2(a Vec) float64 { return Dot(a, a) }

// Length returns the length of a.
func Length(a Vec) float64 { return math.Sqrt(Length2(a)) }

// Distance2 returns the squared distance between a and b.
func Distance2(a, b Vec) float64 { return Length2(Sub(a, b)) }

// Distance returns the distance between a and b.
func Distance(a, b Vec) float64 { return math.Sqrt(Distance2(a, b)) }

// Normalize returns a scaled to unit length. Returns the zero vector if a
// has exactly zero length.
func Normalize(a Vec) Vec {
	l := Length(a)
	if l == 0 {
		return Zero
	}
	return Scale(a, 1/l)
}

// IsFinite reports whether every component of a is finite.
func IsFinite(a Vec) bool {
	return !math.IsNaN(a.X) && !math.IsInf(a.X, 0) &&
		!math.IsNaN(a.Y) && !math.IsInf(a.Y, 0) &&
		!math.IsNaN(a.Z) && !math.IsInf(a.Z, 0)
}

// MaxAbsComponent returns the largest absolute value among a's components.
func MaxAbsComponent(a Vec) float64 {
	m := math.Abs(a.X)
	if v := math.Abs(a.Y); v > m {
		m = v
	}
	if v := math.Abs(a.Z); v > m {
		m = v
	}
	return m
}

// ElemMin returns the componentwise minimum of a and b.
func ElemMin(a, b Vec) Vec {
	return Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)}
}

// ElemMax returns the componentwise maximum of a and b.
func ElemMax(a, b Vec) Vec {
	return Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)}
}

// Component returns the i-th component (0=X, 1=Y, 2=Z) of a.
func Component(a Vec, i int) float64 {
	switch i {
	case 0:
		return a.X
	case 1:
		return a.Y
	default:
		return a.Z
	}
}

// WithComponent returns a copy of a with its i-th component set to v.
func WithComponent(a Vec, i int, v float64) Vec {
	switch i {
	case 0:
		a.X = v
	case 1:
		a.Y = v
	default:
		a.Z = v
	}
	return a
}

// AngleBetween returns the unsigned angle in radians between a and b.
func AngleBetween(a, b Vec) float64 {
	la, lb := Length(a), Length(b)
	if la == 0 || lb == 0 {
		return 0
	}
	c := Dot(a, b) / (la * lb)
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}
	return math.Acos(c)
}

// Noproject removes from v the component that is parallel to dir.
func Noproject(v, dir Vec) Vec {
	l2 := Length2(dir)
	if l2 == 0 {
		return v
	}
	return Sub(v, Scale(dir, Dot(v, dir)/l2))
}

// CellOf returns the integer cell coordinate containing p at the given
// cellsize, i.e. floor(p/cellsize) componentwise.
func CellOf(p Vec, cellsize float64) Cell {
	return Cell{
		X: int(math.Floor(p.X / cellsize)),
		Y: int(math.Floor(p.Y / cellsize)),
		Z: int(math.Floor(p.Z / cellsize)),
	}
}
