// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

// Islands returns the unconnected parts of the mesh as separate Meshes,
// sharing m's point buffer. Two faces are connected when they share a
// point (a weaker, cheaper test than sharing an edge, but equivalent for
// the well-formed meshes Finish produces, and what the original
// propagation walk actually tests).
func (m *Mesh) Islands() []*Mesh {
	touching := make(map[int][]int) // point -> face indices touching it
	for i, f := range m.Faces {
		for _, p := range f {
			touching[p] = append(touching[p], i)
		}
	}
	reached := make([]bool, len(m.Faces))
	var islands []*Mesh
	for start := range m.Faces {
		if reached[start] {
			continue
		}
		island := &Mesh{Points: m.Points, Groups: m.Groups}
		stack := []int{start}
		for len(stack) > 0 {
			i := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if reached[i] {
				continue
			}
			reached[i] = true
			f := m.Faces[i]
			island.Faces = append(island.Faces, f)
			island.Tracks = append(island.Tracks, m.Tracks[i])
			for _, p := range f {
				for _, j := range touching[p] {
					if !reached[j] {
						stack = append(stack, j)
					}
				}
			}
		}
		islands = append(islands, island)
	}
	return islands
}
