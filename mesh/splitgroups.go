// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

// SplitGroups returns a new Mesh where every point lying on a frontier
// between two groups is duplicated once per group touching it, so that
// per-group face normals (and the shading derived from them) no longer
// bleed across group boundaries. The first group to touch a point keeps
// its original index; every other group touching that same point is
// given its own copy, shared by every face of that group referencing
// it.
func SplitGroups(m *Mesh) *Mesh {
	type dup struct{ point, track int }
	firstTrack := make(map[int]int)
	assigned := make(map[dup]int)
	points := append([]Point(nil), m.Points...)
	faces := make([]Face, len(m.Faces))

	for i, f := range m.Faces {
		track := m.Tracks[i]
		var nf Face
		for k, p := range f {
			ft, seen := firstTrack[p]
			switch {
			case !seen:
				firstTrack[p] = track
				nf[k] = p
			case ft == track:
				nf[k] = p
			default:
				d := dup{p, track}
				idx, ok := assigned[d]
				if !ok {
					idx = len(points)
					points = append(points, m.Points[p])
					assigned[d] = idx
				}
				nf[k] = idx
			}
		}
		faces[i] = nf
	}

	return &Mesh{
		Points: points,
		Faces:  faces,
		Tracks: append([]int(nil), m.Tracks...),
		Groups: m.Groups,
	}
}
