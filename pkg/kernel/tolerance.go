package kernel

import "math"

// FaceEpsilon is the user-visible snapping tolerance applied to a
// Face's scalar fields by ApplyTolerance.
const FaceEpsilon = 1e-6

// GeomEpsilon is the tolerance used by internal geometric predicates:
// redundancy, coplanarity, and rotation triviality.
const GeomEpsilon = 1e-12

// vertexEpsilon dedups triple-intersection points in FindVertices.
// It sits well above GeomEpsilon because a solved vertex accumulates
// the LP/solve error of three plane equations rather than one.
const vertexEpsilon = 1e-9

func snap(x float64) float64 {
	if math.Abs(x) < FaceEpsilon {
		return 0
	}
	return x
}
