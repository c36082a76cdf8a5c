// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

// edgeKey returns a canonical (order-independent) key for an unoriented
// edge (a,b).
func edgeKey(a, b int) [2]int {
	if a < b {
		return [2]int{a, b}
	}
	return [2]int{b, a}
}

// arrangeFace rotates f so that p becomes its first index. f is assumed
// to contain p.
func arrangeFace(f Face, p int) Face {
	switch p {
	case f[1]:
		return Face{f[1], f[2], f[0]}
	case f[2]:
		return Face{f[2], f[0], f[1]}
	default:
		return f
	}
}

// arrangeEdge returns e reversed if p is its second endpoint, else e
// unchanged.
func arrangeEdge(e [2]int, p int) [2]int {
	if p == e[1] {
		return [2]int{e[1], e[0]}
	}
	return e
}

// ConnEF returns, for every oriented edge of every face, the index of the
// face using it. Assumes each oriented edge is used by at most one face
// (manifold); if not, the last write wins — callers should check
// IsSurface first if that matters.
func ConnEF(faces []Face) map[[2]int]int {
	conn := make(map[[2]int]int, len(faces)*3)
	for i, f := range faces {
		for _, e := range faceEdges(f) {
			conn[e] = i
		}
	}
	return conn
}

// ConnPE returns, for every point used by edges, the indices of the
// edges using it.
func ConnPE(edges [][2]int) map[int][]int {
	conn := make(map[int][]int)
	for i, e := range edges {
		for _, p := range e {
			conn[p] = append(conn[p], i)
		}
	}
	return conn
}

// ConnPP returns point-to-point adjacency: for every point referenced by
// an n-gon (a loop of 2+ indices), the set of points adjacent to it along
// that loop.
func ConnPP(ngons [][]int) map[int][]int {
	conn := make(map[int][]int)
	seen := make(map[[2]int]bool)
	add := func(a, b int) {
		k := [2]int{a, b}
		if seen[k] {
			return
		}
		seen[k] = true
		conn[a] = append(conn[a], b)
	}
	for _, loop := range ngons {
		n := len(loop)
		for i := 0; i < n; i++ {
			prev := loop[(i-1+n)%n]
			cur := loop[i]
			add(prev, cur)
			add(cur, prev)
		}
	}
	return conn
}

// Connexity returns, for every point referenced by links (edges or
// n-gons), the number of links referencing it.
func Connexity(links [][]int) map[int]int {
	reach := make(map[int]int)
	for _, l := range links {
		for _, p := range l {
			reach[p]++
		}
	}
	return reach
}
