package kernel

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Face is a bounded half-space a·x + b·y + c·z ≤ d, offset from its
// owning Block's local origin, plus the inert friction/cohesion
// attributes carried through from the originating Joint.
type Face struct {
	Normal   mgl64.Vec3
	Offset   float64
	Friction float64
	Cohesion float64
}

// NewFace builds a Face. A zero normal is a programming error: every
// half-space bounding a polytope must have a well-defined orientation.
func NewFace(normal mgl64.Vec3, offset, friction, cohesion float64) Face {
	if normal.Len() == 0 {
		panic("kernel: face normal must be non-zero")
	}
	return Face{Normal: normal, Offset: offset, Friction: friction, Cohesion: cohesion}
}

// ApplyTolerance returns a copy of f with every scalar field whose
// magnitude is below FaceEpsilon replaced by zero.
func (f Face) ApplyTolerance() Face {
	return Face{
		Normal:   mgl64.Vec3{snap(f.Normal[0]), snap(f.Normal[1]), snap(f.Normal[2])},
		Offset:   snap(f.Offset),
		Friction: snap(f.Friction),
		Cohesion: snap(f.Cohesion),
	}
}

// Equal reports structural equality on all six attributes after
// tolerance snapping.
func (f Face) Equal(other Face) bool {
	a, b := f.ApplyTolerance(), other.ApplyTolerance()
	return a.Normal == b.Normal && a.Offset == b.Offset &&
		a.Friction == b.Friction && a.Cohesion == b.Cohesion
}

func (f Face) String() string {
	return fmt.Sprintf("Face{n=%v, d=%g}", f.Normal, f.Offset)
}
