package kernel

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestJointTranslateToShiftsOffsetByOriginDelta(t *testing.T) {
	j := Joint{Normal: mgl64.Vec3{1, 0, 0}, Centre: mgl64.Vec3{5, 0, 0}, Offset: 0}
	out := j.TranslateTo(mgl64.Vec3{2, 0, 0})

	if !approxEqual(out.Offset, 3, 1e-9) {
		t.Errorf("Offset = %v, want 3", out.Offset)
	}
	if out.Normal != j.Normal {
		t.Errorf("Normal should be unchanged, got %v", out.Normal)
	}
}

func TestJointGlobalCoordinatesRotatesShapeLines(t *testing.T) {
	j := Joint{
		Normal:       mgl64.Vec3{0, 0, 1},
		Centre:       mgl64.Vec3{0, 0, 5},
		DipDirection: 0,
		Shape:        []ShapeLine{{U: 1, V: 0, L: 2}},
	}

	faces := j.GlobalCoordinates()
	if len(faces) != 1 {
		t.Fatalf("len(faces) = %d, want 1", len(faces))
	}

	want := mgl64.Vec3{0, 1, 0}
	if !approxVec(faces[0].Normal, want, 1e-9) {
		t.Errorf("Normal = %v, want %v", faces[0].Normal, want)
	}
	if !approxEqual(faces[0].Offset, 2, 1e-9) {
		t.Errorf("Offset = %v, want 2", faces[0].Offset)
	}
}

func TestJointGlobalCoordinatesEmptyShapeIsUnbounded(t *testing.T) {
	j := Joint{Normal: mgl64.Vec3{0, 0, 1}, Centre: mgl64.Vec3{0, 0, 0}}
	if faces := j.GlobalCoordinates(); len(faces) != 0 {
		t.Errorf("len(faces) = %d, want 0 for empty shape", len(faces))
	}
}
