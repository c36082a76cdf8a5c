// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hashing

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/madcore/vec"
)

// PointSet holds a growing point buffer and hashes its points by cell, so
// that two points within the same cell collapse to a single index. It is
// the coincidence-deduplication primitive used by mergeclose.
type PointSet struct {
	Points   []Point
	cellsize float64
	dict     map[Cell]int
}

// NewPointSet creates an empty PointSet. cellsize is the merge radius:
// points that fall in the same floor(p/cellsize) cell collapse to one
// index (such points are at most sqrt(3)*cellsize apart). Points closer
// than cellsize can still land in neighbouring cells when a cell
// boundary lies between them, and then they do not collapse.
func NewPointSet(cellsize float64) *PointSet {
	if cellsize <= 0 {
		chk.Panic("hashing: PointSet cellsize must be positive, got %v", cellsize)
	}
	return &PointSet{cellsize: cellsize, dict: make(map[Cell]int)}
}

// Cellsize returns the set's fixed cell size.
func (s *PointSet) Cellsize() float64 { return s.cellsize }

func (s *PointSet) keyFor(p Point) Cell { return vec.CellOf(p, s.cellsize) }

// Add inserts p if its cell is not yet occupied, and returns the index it
// is (or was already) stored at.
func (s *PointSet) Add(p Point) int {
	key := s.keyFor(p)
	if i, ok := s.dict[key]; ok {
		return i
	}
	i := len(s.Points)
	s.dict[key] = i
	s.Points = append(s.Points, p)
	return i
}

// Contains reports whether a point occupying p's cell has been added.
func (s *PointSet) Contains(p Point) bool {
	_, ok := s.dict[s.keyFor(p)]
	return ok
}

// Index returns the index stored under p's cell, and whether one exists.
func (s *PointSet) Index(p Point) (int, bool) {
	i, ok := s.dict[s.keyFor(p)]
	return i, ok
}

// Discard removes whatever entry occupies p's cell, if any. It does not
// compact the Points buffer (indices already handed out stay valid
// references into a now-possibly-unreferenced slot).
func (s *PointSet) Discard(p Point) {
	key := s.keyFor(p)
	delete(s.dict, key)
}

// Remove removes the entry occupying p's cell, and panics if there is
// none (mirrors the set-like Remove/Discard split: Remove is strict,
// Discard is not).
func (s *PointSet) Remove(p Point) {
	key := s.keyFor(p)
	if _, ok := s.dict[key]; !ok {
		chk.Panic("hashing: PointSet.Remove: no point at this position")
	}
	delete(s.dict, key)
}

// Len returns the length of the Points buffer, which still counts the
// slots of points that were removed or discarded.
func (s *PointSet) Len() int { return len(s.Points) }
