// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package triangulate fills planar and near-planar outlines with
// triangles: ear clipping scored by an aesthetic (area/perimeter²)
// criterion, a straight-skeleton fallback for outlines ear clipping
// can't resolve, and a sweep-line loop extractor for unoriented edge
// soups (including nested holes).
package triangulate

import (
	"fmt"

	"github.com/cpmech/madcore/mesh"
)

var (
	errTooFewPoints     = fmt.Errorf("outline has fewer than 3 usable points: %w", mesh.ErrTopology)
	errDegeneratePlane  = fmt.Errorf("outline's points don't determine a plane (collinear or coincident): %w", mesh.ErrTopology)
	errSkeletonStuck    = fmt.Errorf("skeleton collapse found no further bisector intersection: %w", mesh.ErrTopology)
	errEarClipStuck     = fmt.Errorf("ear clipping cannot make progress: %w", mesh.ErrTopology)
	errTooFewSweepEdges = fmt.Errorf("fewer than 3 edges to sweep: %w", mesh.ErrTopology)
)

// Warning is a non-fatal diagnostic surfaced alongside a successful
// result, rather than through a logger or package-level state: the
// caller decides whether to inspect or ignore it.
type Warning struct {
	Index int     // hole index of the offending ear when it was clipped
	Score float64 // aesthetic score that triggered the warning
	Msg   string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s (index %d, score %g)", w.Msg, w.Index, w.Score)
}
