// Package planarize flattens a mesh's selected vertices onto a plane,
// repairing non-planar quads. A plane is derived from the selection's
// surrounding topology, anchored at a chosen point, and each selected vertex
// is moved by the minimal displacement that puts it exactly on that plane.
package planarize

import (
	"github.com/golang/geo/r3"
)

// PlaneNormal returns the unit normal of the plane through points a, b, c,
// as the normalized cross product of (b-a) and (b-c). Collinear or
// coincident points yield the zero vector; callers must treat that as "no
// valid plane".
func PlaneNormal(a, b, c r3.Vector) r3.Vector {
	n := b.Sub(a).Cross(b.Sub(c))
	if n.Norm() == 0 {
		return r3.Vector{}
	}
	return n.Normalize()
}

// ProjectOntoPlane returns pt moved orthogonally onto the plane through
// anchor with the given unit normal. Points already on the plane are fixed,
// so the projection is idempotent.
func ProjectOntoPlane(pt, anchor, normal r3.Vector) r3.Vector {
	return pt.Sub(normal.Mul(normal.Dot(pt.Sub(anchor))))
}
