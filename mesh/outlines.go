// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

// OutlinesOriented returns the oriented edges delimiting the mesh's
// surfaces, oriented consistently with the faces' outward normals: for
// every oriented edge of every face, the edge is added to the running
// set keyed by its reverse, or removed if already present.
func (m *Mesh) OutlinesOriented() [][2]int {
	present := make(map[[2]int]bool)
	order := make([][2]int, 0, len(m.Faces)*3)
	for _, f := range m.Faces {
		for _, e := range faceEdges(f) {
			if present[e] {
				delete(present, e)
			} else {
				rev := [2]int{e[1], e[0]}
				if !present[rev] {
					order = append(order, rev)
				}
				present[rev] = true
			}
		}
	}
	out := make([][2]int, 0, len(order))
	for _, e := range order {
		if present[e] {
			out = append(out, e)
		}
	}
	return out
}

// OutlinesUnoriented returns the unordered edges delimiting the mesh's
// surfaces. Robust to inconsistent face orientation.
func (m *Mesh) OutlinesUnoriented() [][2]int {
	present := make(map[[2]int]bool)
	order := make([][2]int, 0, len(m.Faces)*3)
	for _, f := range m.Faces {
		for _, e := range faceEdges(f) {
			k := edgeKey(e[0], e[1])
			if present[k] {
				delete(present, k)
			} else {
				present[k] = true
				order = append(order, k)
			}
		}
	}
	out := make([][2]int, 0, len(order))
	for _, e := range order {
		if present[e] {
			out = append(out, e)
		}
	}
	return out
}

// Outlines returns a Web of the mesh's oriented boundary edges, sharing
// m's point buffer.
func (m *Mesh) Outlines() *Web {
	edges := m.OutlinesOriented()
	faceEdges := make([]Edge, len(edges))
	for i, e := range edges {
		faceEdges[i] = Edge(e)
	}
	return NewWeb(m.Points, faceEdges, nil, nil)
}

// GroupOutlines returns a Web of oriented edges, one group's worth per
// edge, where two adjacent faces belong to different groups. On a
// frontier between N groups there are N edges, one per side. Edges on the
// mesh's own boundary (used by a single face) are included too, with that
// face's track.
func (m *Mesh) GroupOutlines() *Web {
	type pending struct {
		edge  [2]int
		track int
	}
	belong := make(map[[2]int]int)
	var edges []Edge
	var tracks []int
	for i, f := range m.Faces {
		track := m.Tracks[i]
		for _, e := range [3][2]int{{f[1], f[0]}, {f[2], f[1]}, {f[0], f[2]}} {
			if t, ok := belong[e]; ok {
				if t != track {
					edges = append(edges, Edge(e))
					tracks = append(tracks, track)
					edges = append(edges, Edge{e[1], e[0]})
					tracks = append(tracks, t)
				}
				delete(belong, e)
			} else {
				belong[[2]int{e[1], e[0]}] = track
			}
		}
	}
	for e, t := range belong {
		edges = append(edges, Edge(e))
		tracks = append(tracks, t)
	}
	return NewWeb(m.Points, edges, tracks, m.Groups)
}

// Frontiers returns a Web of unoriented edges splitting the given groups
// apart. If groups is empty, returns frontiers between any groups. Each
// emitted edge is assigned a new group corresponding to the unordered
// pair of source groups.
func (m *Mesh) Frontiers(groups map[int]bool) *Web {
	var edges []Edge
	var tracks []int
	pairIndex := make(map[[2]int]int)
	var pairGroups []interface{}
	belong := make(map[[2]int]int)
	for i, f := range m.Faces {
		if len(groups) > 0 && !groups[m.Tracks[i]] {
			continue
		}
		for _, e := range faceEdges(f) {
			k := edgeKey(e[0], e[1])
			if t, ok := belong[k]; ok {
				if t != m.Tracks[i] {
					g := edgeKey(t, m.Tracks[i])
					idx, ok := pairIndex[g]
					if !ok {
						idx = len(pairGroups)
						pairIndex[g] = idx
						pairGroups = append(pairGroups, g)
					}
					edges = append(edges, Edge(k))
					tracks = append(tracks, idx)
				}
				delete(belong, k)
			} else {
				belong[k] = m.Tracks[i]
			}
		}
	}
	return NewWeb(m.Points, edges, tracks, pairGroups)
}
