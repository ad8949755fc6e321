// Package triangulate computes a 2-D Delaunay triangulation of a point
// set via the Bowyer-Watson incremental algorithm. It is used by
// pkg/kernel to mesh each face of a polytope after the face has been
// rotated flat into the xy-plane.
package triangulate

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// Point is a 2-D point. It is an alias of r2.Point so that callers can
// pass coordinates produced by other r2-based geometry code directly.
type Point = r2.Point

type dedge struct{ a, b int }

type triIdx [3]int

// Triangulate returns a Delaunay triangulation of points as index
// triples into the input slice, each triple ordered clockwise as
// viewed in the input frame. Duplicate points must already have been
// removed by the caller. Fewer than 3 points yields an empty result.
func Triangulate(points []Point) ([][3]int, error) {
	if len(points) < 3 {
		return nil, nil
	}

	tris, err := bowyerWatson(points)
	if err != nil {
		return nil, errors.Wrap(err, "triangulate")
	}
	return tris, nil
}

func bowyerWatson(points []Point) ([][3]int, error) {
	n := len(points)

	minX, minY := points[0].X, points[0].Y
	maxX, maxY := points[0].X, points[0].Y
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	span := math.Max(maxX-minX, maxY-minY)
	if span == 0 {
		return nil, errors.New("all input points coincide")
	}

	midX, midY := (minX+maxX)/2, (minY+maxY)/2
	margin := 20 * span

	// Super-triangle large enough to strictly contain every input point.
	ext := make([]Point, n+3)
	copy(ext, points)
	ext[n] = Point{X: midX - margin, Y: midY - margin}
	ext[n+1] = Point{X: midX, Y: midY + margin}
	ext[n+2] = Point{X: midX + margin, Y: midY - margin}

	triangles := []triIdx{{n, n + 1, n + 2}}

	for pi := 0; pi < n; pi++ {
		p := ext[pi]

		var bad []triIdx
		badSet := make(map[triIdx]bool)
		for _, tri := range triangles {
			if inCircumcircle(ext[tri[0]], ext[tri[1]], ext[tri[2]], p) {
				bad = append(bad, tri)
				badSet[tri] = true
			}
		}

		edgePresent := make(map[dedge]bool)
		for _, tri := range bad {
			es := [3]dedge{{tri[0], tri[1]}, {tri[1], tri[2]}, {tri[2], tri[0]}}
			for _, e := range es {
				edgePresent[e] = true
			}
		}

		var kept []triIdx
		for _, tri := range triangles {
			if !badSet[tri] {
				kept = append(kept, tri)
			}
		}

		for e := range edgePresent {
			if !edgePresent[dedge{e.b, e.a}] {
				kept = append(kept, triIdx{e.a, e.b, pi})
			}
		}
		triangles = kept
	}

	var out [][3]int
	for _, tri := range triangles {
		if tri[0] >= n || tri[1] >= n || tri[2] >= n {
			continue // references a super-triangle vertex
		}
		a, b, c := ext[tri[0]], ext[tri[1]], ext[tri[2]]
		if orient2D(a, b, c) > 0 {
			// Counter-clockwise; flip to the required clockwise order.
			out = append(out, [3]int{tri[0], tri[2], tri[1]})
		} else {
			out = append(out, [3]int{tri[0], tri[1], tri[2]})
		}
	}
	return out, nil
}

// orient2D is twice the signed area of triangle (a,b,c); positive for
// counter-clockwise, negative for clockwise, zero for collinear.
func orient2D(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// inCircumcircle reports whether d lies strictly inside the circle
// through a, b, c.
func inCircumcircle(a, b, c, d Point) bool {
	if orient2D(a, b, c) < 0 {
		a, b = b, a
	}
	ax, ay := a.X-d.X, a.Y-d.Y
	bx, by := b.X-d.X, b.Y-d.Y
	cx, cy := c.X-d.X, c.Y-d.Y

	det := (ax*ax+ay*ay)*(bx*cy-cx*by) -
		(bx*bx+by*by)*(ax*cy-cx*ay) +
		(cx*cx+cy*cy)*(ax*by-bx*ay)
	return det > 1e-12
}
