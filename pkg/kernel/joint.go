package kernel

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ShapeLine is one in-plane bounding line of a Joint, expressed in the
// joint's own strike/dip frame: (U,V,0) is the line's 2-D normal and L
// is its signed distance from the joint's centre in that frame.
type ShapeLine struct {
	U, V, L float64
}

// Joint is an oriented cutting plane, optionally bounded in-plane by a
// polygon described as a list of ShapeLines. An empty Shape means the
// plane is unbounded.
type Joint struct {
	Normal       mgl64.Vec3
	Centre       mgl64.Vec3
	Offset       float64
	DipAngle     float64
	DipDirection float64
	Friction     float64
	Cohesion     float64
	Shape        []ShapeLine
}

// TranslateTo returns a copy of j whose Offset is measured relative to
// origin instead of the joint's Centre; the plane's position in world
// space is unchanged. Centre is copied as is.
func (j Joint) TranslateTo(origin mgl64.Vec3) Joint {
	out := j
	out.Offset = j.Offset + j.Normal.Dot(j.Centre.Sub(origin))
	return out
}

// GlobalCoordinates returns the world-frame half-spaces bounding the
// joint within its own plane, one per ShapeLine. N_strike and N_dip
// form, with the plane normal, the rotation Q = [N_strike|N_dip|N_plane]
// that carries a shape line's local (u,v,0) normal into world space.
func (j Joint) GlobalCoordinates() []Face {
	s := math.Mod(j.DipDirection+math.Pi/2, 2*math.Pi)
	if s < 0 {
		s += 2 * math.Pi
	}
	nStrike := mgl64.Vec3{math.Cos(s), math.Sin(s), 0}
	nDip := j.Normal.Cross(nStrike)

	out := make([]Face, 0, len(j.Shape))
	for _, line := range j.Shape {
		n := nStrike.Mul(line.U).Add(nDip.Mul(line.V))
		d := line.L + n.Dot(j.Centre)
		out = append(out, Face{Normal: n, Offset: d, Friction: j.Friction, Cohesion: j.Cohesion})
	}
	return out
}
