package kernel

import "github.com/go-gl/mathgl/mgl64"

// Centroid computes b's volume and centroid via the divergence theorem
// over its triangulated boundary (FindVertices + MeshFaces). The
// returned centroid is in world coordinates. Panics if the polytope is
// degenerate (zero volume) — FindVertices/MeshFaces assume
// NonRedundantFaces has already been applied.
func (b Block) Centroid() (mgl64.Vec3, float64) {
	vertices := b.FindVertices()
	mesh := b.MeshFaces(vertices)

	var volume float64
	var moment mgl64.Vec3

	for i, tris := range mesh {
		verts := vertices[i]
		for _, tri := range tris {
			// Each triangle is listed clockwise as (i,j,k); reinterpret
			// as (c,b,a) to integrate anti-clockwise.
			vc, vb, va := verts[tri[0]], verts[tri[1]], verts[tri[2]]
			normal := vb.Sub(va).Cross(vc.Sub(va))

			volume += va.Dot(normal)
			for axis := 0; axis < 3; axis++ {
				sum := sq(va[axis]+vb[axis]) + sq(vb[axis]+vc[axis]) + sq(vc[axis]+va[axis])
				moment[axis] += normal[axis] * sum
			}
		}
	}
	volume /= 6

	if volume == 0 {
		panic("kernel: centroid: degenerate polytope (zero volume)")
	}

	centroid := mgl64.Vec3{moment[0] / (48 * volume), moment[1] / (48 * volume), moment[2] / (48 * volume)}
	return centroid.Add(b.Origin), volume
}

func sq(x float64) float64 { return x * x }
