// Package kernel implements the convex-polytope cutting and analysis
// engine: a Block (the convex region) bounded by Faces, cut across
// Joints, reduced to its non-redundant faces, and measured for
// centroid and volume via per-face triangulation.
//
// Every operation that would "modify" a Block instead returns a new
// one; Block and Face are plain value types with no shared mutable
// state, so a caller may fan cuts out across goroutines without any
// synchronisation in this package.
package kernel
