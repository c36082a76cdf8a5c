// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command madcore builds a demonstration unit cube with the mesh
// package, finishes and orients it, and prints a short report on it.
package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/madcore/mesh"
	"github.com/cpmech/madcore/vec"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	io.PfWhite("\nmadcore -- demonstration meshes\n\n")

	m := unitCube()
	if err := m.Finish(); err != nil {
		chk.Panic("cube mesh is invalid:\n%v", err)
	}
	oriented := mesh.Orient(m, nil)
	io.Pf("%v\n", io.ArgsTable(
		"faces", "n", len(oriented.Faces),
		"surface area", "area", oriented.Surface(),
		"is envelope", "closed", oriented.IsEnvelope(),
		"islands", "islands", len(oriented.Islands()),
		"barycenter", "center", oriented.Barycenter(),
	))
}

// unitCube builds a closed unit cube as a quad-faceted Mesh (each quad
// split into two triangles by MkQuad).
func unitCube() *mesh.Mesh {
	p := func(x, y, z float64) vec.Vec { return vec.Vec{X: x, Y: y, Z: z} }
	points := []mesh.Point{
		p(0, 0, 0), p(1, 0, 0), p(1, 1, 0), p(0, 1, 0),
		p(0, 0, 1), p(1, 0, 1), p(1, 1, 1), p(0, 1, 1),
	}
	quads := [6][4]int{
		{0, 1, 2, 3}, {4, 7, 6, 5}, {0, 4, 5, 1},
		{1, 5, 6, 2}, {2, 6, 7, 3}, {3, 7, 4, 0},
	}
	m := mesh.NewMesh(points, nil, nil, nil)
	for _, q := range quads {
		mesh.MkQuad(m, q, 0)
	}
	return m
}
