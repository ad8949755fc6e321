package kernel

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func approxVec(a, b mgl64.Vec3, tol float64) bool {
	return approxEqual(a[0], b[0], tol) && approxEqual(a[1], b[1], tol) && approxEqual(a[2], b[2], tol)
}

// unitCube returns the axis-aligned cube [0,1]^3, origin at the world
// origin, as six faces in the +x,-x,+y,-y,+z,-z order.
func unitCube() Block {
	return Block{
		Origin: mgl64.Vec3{0, 0, 0},
		Faces: []Face{
			{Normal: mgl64.Vec3{1, 0, 0}, Offset: 1},
			{Normal: mgl64.Vec3{-1, 0, 0}, Offset: 0},
			{Normal: mgl64.Vec3{0, 1, 0}, Offset: 1},
			{Normal: mgl64.Vec3{0, -1, 0}, Offset: 0},
			{Normal: mgl64.Vec3{0, 0, 1}, Offset: 1},
			{Normal: mgl64.Vec3{0, 0, -1}, Offset: 0},
		},
	}
}

