package kernel

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/chazu/blockcut/pkg/lp"
)

// Block is a convex polytope: the intersection of its Faces, each
// offset from Origin. A Block owns its face list exclusively; Faces
// are value objects and are never shared mutably between Blocks.
type Block struct {
	Origin mgl64.Vec3
	Faces  []Face
}

// Intersects determines whether joint, restricted to its in-plane
// bound if any, meets the interior of b. On success it returns the
// witness point in b's local frame (offset from Origin).
func (b Block) Intersects(joint Joint) (mgl64.Vec3, bool) {
	local := joint.TranslateTo(b.Origin)

	solver := lp.New(4)
	solver.SetObjective([]float64{0, 0, 0, 1}, lp.Minimize)
	solver.AddConstraint(snap4(local.Normal[0], local.Normal[1], local.Normal[2], 0), lp.EQ, snap(local.Offset))

	for _, f := range b.Faces {
		solver.AddConstraint(snap4(f.Normal[0], f.Normal[1], f.Normal[2], -1), lp.LE, snap(f.Offset))
	}
	for _, gc := range joint.GlobalCoordinates() {
		localRHS := gc.Offset - gc.Normal.Dot(b.Origin)
		solver.AddConstraint(snap4(gc.Normal[0], gc.Normal[1], gc.Normal[2], -1), lp.LE, snap(localRHS))
	}

	assignment, optimum, ok := solver.Solve()
	if !ok || optimum >= -GeomEpsilon {
		return mgl64.Vec3{}, false
	}
	return mgl64.Vec3{assignment[0], assignment[1], assignment[2]}, true
}

func snap4(a, b, c, d float64) []float64 {
	return []float64{snap(a), snap(b), snap(c), snap(d)}
}

// Cut splits b across joint. If the joint does not meet b's interior,
// Cut returns []Block{b} unchanged. Otherwise it returns the two child
// polytopes sharing a new origin on the joint plane, each carrying an
// opposing copy of the joint's face at offset zero.
func (b Block) Cut(joint Joint) []Block {
	witness, ok := b.Intersects(joint)
	if !ok {
		return []Block{b}
	}

	newOrigin := b.Origin.Add(witness)
	carried := b.UpdateFaces(newOrigin)

	posFace := Face{Normal: joint.Normal, Offset: 0, Friction: joint.Friction, Cohesion: joint.Cohesion}
	negFace := Face{Normal: joint.Normal.Mul(-1), Offset: 0, Friction: joint.Friction, Cohesion: joint.Cohesion}

	posFaces := append([]Face{posFace}, carried...)
	negFaces := append([]Face{negFace}, carried...)

	return []Block{
		{Origin: newOrigin, Faces: posFaces},
		{Origin: newOrigin, Faces: negFaces},
	}
}

// UpdateFaces re-expresses every face's offset relative to newOrigin,
// leaving each plane's world-frame position unchanged. The new offset
// is divided by the normal's length while the normal is kept as is, so
// this holds only for faces with unit normals.
func (b Block) UpdateFaces(newOrigin mgl64.Vec3) []Face {
	out := make([]Face, len(b.Faces))
	for i, f := range b.Faces {
		out[i] = updateFace(f, b.Origin, newOrigin)
	}
	return out
}

// updateFace implements spec §4.E.7: pick a point w on the face in
// world coordinates by solving the plane equation against origin,
// preferring in turn the z, y, then x axis (first with a normal
// component large enough to be numerically safe to divide by), then
// re-express that point's offset from newOrigin.
func updateFace(f Face, origin, newOrigin mgl64.Vec3) Face {
	n := f.Normal

	var w mgl64.Vec3
	switch {
	case math.Abs(n[2]) >= GeomEpsilon:
		w = origin.Add(mgl64.Vec3{0, 0, f.Offset / n[2]})
	case math.Abs(n[1]) >= GeomEpsilon:
		w = origin.Add(mgl64.Vec3{0, f.Offset / n[1], 0})
	case math.Abs(n[0]) >= GeomEpsilon:
		w = origin.Add(mgl64.Vec3{f.Offset / n[0], 0, 0})
	default:
		panic("kernel: update_faces: degenerate face normal")
	}

	newOffset := n.Dot(w.Sub(newOrigin)) / n.Len()
	return Face{Normal: n, Offset: newOffset, Friction: f.Friction, Cohesion: f.Cohesion}
}

// NonRedundantFaces deduplicates b's faces structurally, then drops
// every face whose bound is never tight against the rest of the
// polytope. The returned list preserves the original insertion order
// of the kept faces.
func (b Block) NonRedundantFaces() []Face {
	deduped := dedupeFaces(b.Faces)

	var kept []Face
	for _, f := range deduped {
		solver := lp.New(3)
		solver.SetObjective([]float64{snap(f.Normal[0]), snap(f.Normal[1]), snap(f.Normal[2])}, lp.Maximize)
		for _, g := range deduped {
			solver.AddConstraint([]float64{snap(g.Normal[0]), snap(g.Normal[1]), snap(g.Normal[2])}, lp.LE, snap(g.Offset))
		}

		_, optimum, ok := solver.Solve()
		if !ok {
			// f is itself one of the constraints, so the objective can
			// never be unbounded; !ok here means numerical breakdown or
			// a genuinely infeasible face system, treated per spec §7
			// as "no contribution" rather than kept.
			continue
		}
		if math.Abs(optimum-f.Offset) <= GeomEpsilon {
			kept = append(kept, f)
		}
	}
	return kept
}

func dedupeFaces(faces []Face) []Face {
	var out []Face
	for _, f := range faces {
		dup := false
		for _, g := range out {
			if f.Equal(g) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, f)
		}
	}
	return out
}

// FindVertices enumerates, for every face i, the distinct points where
// face i meets two other faces j and k (ranging over all faces,
// including i itself). The result is parallel to b.Faces. Coincident
// or non-contributing triples (near-coplanar normals) are skipped; no
// filtering against the polytope's own half-spaces is performed, so
// callers must have eliminated redundant faces first.
func (b Block) FindVertices() [][]mgl64.Vec3 {
	n := len(b.Faces)
	out := make([][]mgl64.Vec3, n)

	for i := 0; i < n; i++ {
		ni, di := b.Faces[i].Normal, b.Faces[i].Offset
		var verts []mgl64.Vec3

		for j := 0; j < n; j++ {
			nj, dj := b.Faces[j].Normal, b.Faces[j].Offset
			for k := 0; k < n; k++ {
				nk, dk := b.Faces[k].Normal, b.Faces[k].Offset

				crossJK := nj.Cross(nk)
				det := ni.Dot(crossJK)
				if math.Abs(det) <= GeomEpsilon {
					continue
				}
				crossKI := nk.Cross(ni)
				crossIJ := ni.Cross(nj)
				p := crossJK.Mul(di).Add(crossKI.Mul(dj)).Add(crossIJ.Mul(dk)).Mul(1 / det)

				if !containsVertex(verts, p) {
					verts = append(verts, p)
				}
			}
		}
		out[i] = verts
	}
	return out
}

func containsVertex(verts []mgl64.Vec3, p mgl64.Vec3) bool {
	for _, v := range verts {
		if p.Sub(v).Len() <= vertexEpsilon {
			return true
		}
	}
	return false
}

// Canonicalize returns b with redundant faces removed, re-anchored to
// its own centroid, and every face tolerance-snapped — the output
// shape every child polytope produced by the engine must take.
func (b Block) Canonicalize() Block {
	reduced := Block{Origin: b.Origin, Faces: b.NonRedundantFaces()}
	centroid, _ := reduced.Centroid()

	faces := reduced.UpdateFaces(centroid)
	snapped := make([]Face, len(faces))
	for i, f := range faces {
		snapped[i] = f.ApplyTolerance()
	}
	return Block{Origin: centroid, Faces: snapped}
}
