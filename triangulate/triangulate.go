// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package triangulate

import (
	"github.com/cpmech/madcore/mesh"
	"github.com/cpmech/madcore/vec"
)

// Triangulate fills a closed, planar Wire with triangles, trying ear
// clipping (Outline) first and falling back to the straight-skeleton
// method (TriangulationSkeleton) if that fails — mirroring the
// original's try/except fallback, since a handful of outlines (sliver
// corners, near-degenerate ears) defeat ear clipping's local
// containment test but still collapse cleanly under the skeleton.
// Warnings returned alongside a successful ear-clip result are passed
// through; the skeleton fallback never produces any.
func Triangulate(w *mesh.Wire, normal *vec.Vec) (*mesh.Mesh, []Warning, error) {
	m, warnings, err := Outline(w, normal)
	if err == nil {
		return m, warnings, nil
	}
	m, err = TriangulationSkeleton(w, normal)
	return m, nil, err
}
