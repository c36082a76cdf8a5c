// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"reflect"
	"testing"
)

// An open chain of edges forms a single suite.
func TestSuitesOpenChain(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}}
	got := Suites(edges, true, true, false)
	want := [][]int{{0, 1, 2, 3}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Suites() = %v, want %v", got, want)
	}
}

// a closed ring of edges stops as soon as it returns to its start
// (first-closure-wins), rather than continuing past it.
func TestSuitesClosedLoopStopsAtFirstClosure(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {2, 0}}
	got := Suites(edges, true, true, true)
	if len(got) != 1 {
		t.Fatalf("expected a single loop suite, got %d", len(got))
	}
	suite := got[0]
	if suite[0] != suite[len(suite)-1] {
		t.Fatalf("expected the suite to close on itself, got %v", suite)
	}
	if len(suite) != 4 {
		t.Fatalf("expected the loop to use all 3 edges (4 indices), got %v", suite)
	}
}

// a branch point (more than one unused candidate edge) cuts the suite
// rather than picking arbitrarily among candidates.
func TestSuitesCutsAtBranchPoint(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {1, 3}}
	got := Suites(edges, true, true, false)
	if len(got) != 3 {
		t.Fatalf("expected the branch to split into 3 single-edge suites, got %v", got)
	}
}

func TestLineSimplificationMergesCollinearPoints(t *testing.T) {
	points := []Point{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}, {X: 3, Y: 1, Z: 0},
	}
	w := NewWeb(points, []Edge{{0, 1}, {1, 2}, {2, 3}}, nil, nil)
	merges := LineSimplification(w, 1e-9)
	if got, ok := merges[1]; !ok || got != 0 {
		t.Fatalf("expected the collinear middle point to merge into point 0, got merges=%v", merges)
	}
	if _, ok := merges[2]; ok {
		t.Fatalf("expected point 2 (a turn) to survive unmerged, got merges=%v", merges)
	}
}
