// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hashing implements the voxel-grid spatial hash used to rasterize
// points, segments and triangles into cells, and the coincident-point
// index built on top of it.
package hashing

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/madcore/vec"
)

// Cell is an integer cell-coordinate triple identifying a voxel of side
// cellsize.
type Cell = vec.Cell

// Point is a 3D double-precision coordinate.
type Point = vec.Vec

// Segment is an oriented pair of endpoints.
type Segment [2]Point

// Triangle is an oriented triple of vertices.
type Triangle [3]Point

// PositionMap holds objects associated with their location. Every object
// can be bound to multiple cells, and every cell can hold multiple
// objects. Cellsize is fixed at construction and must not be changed
// while the map is non-empty.
type PositionMap struct {
	cellsize float64
	cells    map[Cell][]interface{}
}

// NewPositionMap creates an empty PositionMap with the given cellsize.
// cellsize must be strictly positive.
func NewPositionMap(cellsize float64) *PositionMap {
	if cellsize <= 0 {
		chk.Panic("hashing: cellsize must be positive, got %v", cellsize)
	}
	return &PositionMap{cellsize: cellsize, cells: make(map[Cell][]interface{})}
}

// Cellsize returns the map's fixed cell size.
func (m *PositionMap) Cellsize() float64 { return m.cellsize }

// Len returns the number of distinct non-empty cells.
func (m *PositionMap) Len() int { return len(m.cells) }

// Keys returns every non-empty cell currently in the map, in unspecified
// order.
func (m *PositionMap) Keys() []Cell {
	keys := make([]Cell, 0, len(m.cells))
	for k := range m.cells {
		keys = append(keys, k)
	}
	return keys
}

// KeysForPoint enumerates the single cell a point falls in.
func (m *PositionMap) KeysForPoint(p Point) []Cell {
	return []Cell{vec.CellOf(p, m.cellsize)}
}

// KeysForSegment rasterizes a segment (a,b) by DDA traversal: from the
// current point, advance to the nearest cell boundary along the segment's
// direction and emit the cell of the resulting midpoint, until the
// current point has moved past b (the last advance may cross b).
func (m *PositionMap) KeysForSegment(a, b Point) []Cell {
	cell := m.cellsize
	v := vec.Normalize(vec.Sub(b, a))
	var keys []Cell
	seen := make(map[Cell]bool)
	emit := func(p Point) {
		k := vec.CellOf(p, cell)
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	p := a
	emit(p)
	if v == vec.Zero {
		return keys
	}
	for vec.Dot(vec.Sub(b, p), v) >= 0 {
		prox := [3]float64{}
		for i := 0; i < 3; i++ {
			vi := vec.Component(v, i)
			if vi == 0 {
				prox[i] = math.Inf(1)
				continue
			}
			pi := vec.Component(p, i)
			rem := math.Mod(pi, cell)
			if rem < 0 {
				rem += cell
			}
			prox[i] = math.Abs((cell - rem) / vi)
		}
		i := 0
		if prox[1] < prox[i] {
			i = 1
		}
		if prox[2] < prox[i] {
			i = 2
		}
		adv := vec.Scale(v, prox[i])
		mid := vec.Add(p, vec.Scale(adv, 0.5))
		emit(mid)
		p = vec.Add(p, adv)
	}
	return keys
}

// permutation of axis indices so that the largest component of n lands on
// index 2 (Z).
func dominantZOrder(n Point) [3]int {
	ax, ay, az := math.Abs(n.X), math.Abs(n.Y), math.Abs(n.Z)
	switch {
	case ay >= ax && ay >= az:
		return [3]int{2, 0, 1}
	case ax >= ay && ax >= az:
		return [3]int{1, 2, 0}
	default:
		return [3]int{0, 1, 2}
	}
}

func permute(p Point, order [3]int) Point {
	c := [3]float64{p.X, p.Y, p.Z}
	return Point{X: c[order[0]], Y: c[order[1]], Z: c[order[2]]}
}

// inverse permutation: given q built as permute(p, order), recover p.
func unpermute(q Point, order [3]int) Point {
	c := [3]float64{q.X, q.Y, q.Z}
	var out [3]float64
	out[order[0]] = c[0]
	out[order[1]] = c[1]
	out[order[2]] = c[2]
	return Point{X: out[0], Y: out[1], Z: out[2]}
}

func floorToCell(x, cell float64) float64 {
	return x - math.Mod(x, cell)
}

// KeysForTriangle rasterizes a triangle (a,b,c). Coordinates are permuted
// so the face normal's largest component lands on Z (keeping the plane's
// slope in X and Y bounded), then swept in X-slices, each intersected
// against the triangle edges to find a Y-interval, each Y-cell center
// tested against the four corners of its cell to find a Z-interval.
func (m *PositionMap) KeysForTriangle(a, b, c Point) []Cell {
	cell := m.cellsize
	cell2 := cell / 2

	n := vec.Cross(vec.Sub(b, a), vec.Sub(c, a))
	if n == vec.Zero {
		return nil
	}
	order := dominantZOrder(n)
	space := [3]Point{permute(a, order), permute(b, order), permute(c, order)}

	v := [3]Point{
		vec.Sub(space[2], space[0]),
		vec.Sub(space[0], space[1]),
		vec.Sub(space[1], space[2]),
	}
	// v[i] = space[i-1] - space[i]
	plane := vec.Cross(vec.Sub(space[1], space[0]), vec.Sub(space[2], space[0]))
	dx := -plane.X / plane.Z
	dy := -plane.Y / plane.Z
	o := space[0]

	pmin := space[0]
	pmax := space[0]
	for _, p := range space[1:] {
		pmin = vec.ElemMin(pmin, p)
		pmax = vec.ElemMax(pmax, p)
	}

	xmin := floorToCell(pmin.X, cell)
	xmax := pmax.X
	nx := int(math.Ceil((xmax - xmin) / cell))
	if nx < 1 {
		nx = 1
	}

	type yv struct{ x, y float64 }
	var ypts []yv
	for i := 0; i < nx; i++ {
		x := xmin + cell*float64(i) + cell2
		var cand []float64
		for k := 0; k < 3; k++ {
			prev := space[(k+2)%3]
			cur := space[k]
			vi := vec.Component(v[k], 0)
			left := (prev.X - x + cell2) * (cur.X - x - cell2)
			right := (prev.X - x - cell2) * (cur.X - x + cell2)
			if left <= 0 || right <= 0 {
				slope := 0.0
				if vi != 0 {
					slope = vec.Component(v[k], 1) / vi
				}
				cand = append(cand, cur.Y+slope*(x-cell2-cur.X))
				cand = append(cand, cur.Y+slope*(x+cell2-cur.X))
			}
		}
		if len(cand) == 0 {
			continue
		}
		ymin, ymax := cand[0], cand[0]
		for _, cv := range cand {
			if cv < ymin {
				ymin = cv
			}
			if cv > ymax {
				ymax = cv
			}
		}
		ymin = floorToCell(ymin, cell)
		ny := int(math.Ceil((ymax - ymin) / cell))
		if ny < 1 {
			ny = 1
		}
		for j := 0; j < ny; j++ {
			ypts = append(ypts, yv{x, ymin + cell*float64(j) + cell2})
		}
	}

	f := func(x, y float64) float64 {
		return o.Z + dx*(x-o.X) + dy*(y-o.Y)
	}
	type zv struct{ x, y, z float64 }
	var zpts []zv
	for _, xy := range ypts {
		cand := []float64{
			f(xy.x-cell2, xy.y-cell2),
			f(xy.x+cell2, xy.y-cell2),
			f(xy.x-cell2, xy.y+cell2),
			f(xy.x+cell2, xy.y+cell2),
		}
		zmin, zmax := cand[0], cand[0]
		for _, cv := range cand {
			if cv < zmin {
				zmin = cv
			}
			if cv > zmax {
				zmax = cv
			}
		}
		zmin = floorToCell(zmin, cell)
		nz := int(math.Ceil((zmax - zmin) / cell))
		if nz < 1 {
			nz = 1
		}
		for k := 0; k < nz; k++ {
			zpts = append(zpts, zv{xy.x, xy.y, zmin + cell*float64(k) + cell2})
		}
	}

	boxMin := Point{X: floorToCell(pmin.X, cell), Y: floorToCell(pmin.Y, cell), Z: floorToCell(pmin.Z, cell)}
	boxMax := Point{
		X: pmax.X + cell - math.Mod(pmax.X, cell),
		Y: pmax.Y + cell - math.Mod(pmax.Y, cell),
		Z: pmax.Z + cell - math.Mod(pmax.Z, cell),
	}

	var keys []Cell
	for _, p := range zpts {
		if boxMin.X < p.x && boxMin.Y < p.y && boxMin.Z < p.z &&
			p.x < boxMax.X && p.y < boxMax.Y && p.z < boxMax.Z {
			orig := unpermute(Point{X: p.x, Y: p.y, Z: p.z}, order)
			keys = append(keys, Cell{
				X: int(math.Floor(orig.X / cell)),
				Y: int(math.Floor(orig.Y / cell)),
				Z: int(math.Floor(orig.Z / cell)),
			})
		}
	}
	return keys
}

// Add enumerates the cells the primitive intersects and appends obj to
// each cell's list. space must be a Point, Segment or Triangle.
func (m *PositionMap) Add(space interface{}, obj interface{}) {
	for _, k := range m.keysFor(space) {
		m.cells[k] = append(m.cells[k], obj)
	}
}

// Get yields every object stored under any cell the query primitive
// intersects, in cell-enumeration order. Objects stored under multiple
// intersected cells are returned multiple times.
func (m *PositionMap) Get(space interface{}) []interface{} {
	var out []interface{}
	for _, k := range m.keysFor(space) {
		out = append(out, m.cells[k]...)
	}
	return out
}

func (m *PositionMap) keysFor(space interface{}) []Cell {
	switch s := space.(type) {
	case Point:
		return m.KeysForPoint(s)
	case Segment:
		return m.KeysForSegment(s[0], s[1])
	case Triangle:
		return m.KeysForTriangle(s[0], s[1], s[2])
	default:
		chk.Panic("hashing: PositionMap only supports keys of type Point, Segment or Triangle, got %T", space)
		return nil
	}
}

// entry pairs a primitive with the object to index it under, for bulk
// insertion via Update.
type Entry struct {
	Space interface{}
	Obj   interface{}
}

// Update bulk-inserts into the map. If other is a *PositionMap its
// cellsize must equal this map's cellsize, or Update panics (precondition
// violation). Otherwise entries is a slice of (primitive, object) pairs.
func (m *PositionMap) Update(other interface{}) {
	switch o := other.(type) {
	case *PositionMap:
		if o.cellsize != m.cellsize {
			chk.Panic("hashing: cannot merge PositionMaps with different cellsize (%v vs %v)", m.cellsize, o.cellsize)
		}
		for k, v := range o.cells {
			m.cells[k] = append(m.cells[k], v...)
		}
	case []Entry:
		for _, e := range o {
			m.Add(e.Space, e.Obj)
		}
	default:
		chk.Panic("hashing: Update requires a *PositionMap or a []Entry, got %T", other)
	}
}
