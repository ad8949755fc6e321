package kernel

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/chazu/blockcut/pkg/triangulate"
)

// MeshFaces triangulates every face of b in 2-D after rotating it flat
// against its own normal, returning for each face a list of index
// triples into that face's entry of vertices (as produced by
// FindVertices).
func (b Block) MeshFaces(vertices [][]mgl64.Vec3) [][][3]int {
	out := make([][][3]int, len(b.Faces))

	for i, f := range b.Faces {
		n := f.Normal
		pts := make([]triangulate.Point, len(vertices[i]))
		for vi, v := range vertices[i] {
			x, y := rotateFlat(n, v)
			pts[vi] = triangulate.Point{X: x, Y: y}
		}

		tris, err := triangulate.Triangulate(pts)
		if err != nil {
			panic(fmt.Sprintf("kernel: mesh_faces: %v", err))
		}

		if isAntiparallelToZ(n) {
			tris = reverseTriangles(tris)
		}
		out[i] = tris
	}
	return out
}

// rotateFlat applies the rotation of spec §4.E.5 that carries n onto
// +z to point p, returning the resulting x,y (z is dropped). When n is
// already parallel to ±z the rotation is the identity.
func rotateFlat(n, p mgl64.Vec3) (float64, float64) {
	u, v, w := n[0], n[1], n[2]
	h := math.Sqrt(u*u + v*v)
	if h < GeomEpsilon {
		return p[0], p[1]
	}

	// T_xz: rotate about z so (u,v,0) lands on the x-axis.
	x1 := (u*p[0] + v*p[1]) / h
	y1 := (-v*p[0] + u*p[1]) / h
	z1 := p[2]

	// T_z: rotate in x-z so the tilted normal lands on +z.
	nlen := n.Len()
	x2 := (w*x1 - h*z1) / nlen

	return x2, y1
}

// isAntiparallelToZ reports whether n is parallel to -z within
// GeomEpsilon — the one rotation case left with inverted orientation
// by rotateFlat's identity shortcut.
func isAntiparallelToZ(n mgl64.Vec3) bool {
	ez := mgl64.Vec3{0, 0, 1}
	return n.Cross(ez).Len() < GeomEpsilon && n[2] < 0
}

func reverseTriangles(tris [][3]int) [][3]int {
	out := make([][3]int, len(tris))
	for i, tri := range tris {
		out[len(tris)-1-i] = [3]int{tri[0], tri[2], tri[1]}
	}
	return out
}
