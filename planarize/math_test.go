package planarize

import (
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestPlaneNormal(t *testing.T) {
	a := r3.Vector{X: 1, Y: 0, Z: 0}
	b := r3.Vector{X: 0, Y: 2, Z: 0.5}
	c := r3.Vector{X: -1, Y: 0, Z: 3}

	n := PlaneNormal(a, b, c)
	test.That(t, n.Norm(), test.ShouldAlmostEqual, 1)
	test.That(t, n.Dot(b.Sub(a)), test.ShouldAlmostEqual, 0)
	test.That(t, n.Dot(b.Sub(c)), test.ShouldAlmostEqual, 0)
}

func TestPlaneNormalDegenerate(t *testing.T) {
	a := r3.Vector{X: 0, Y: 0, Z: 0}
	b := r3.Vector{X: 1, Y: 1, Z: 1}
	c := r3.Vector{X: 2, Y: 2, Z: 2}
	test.That(t, PlaneNormal(a, b, c), test.ShouldResemble, r3.Vector{})
	test.That(t, PlaneNormal(a, a, a), test.ShouldResemble, r3.Vector{})
	test.That(t, PlaneNormal(a, b, b), test.ShouldResemble, r3.Vector{})
}

func TestProjectOntoPlane(t *testing.T) {
	anchor := r3.Vector{X: 1, Y: 2, Z: 3}
	normal := r3.Vector{X: 0, Y: 0, Z: 1}
	pt := r3.Vector{X: 7, Y: -4, Z: 9}

	proj := ProjectOntoPlane(pt, anchor, normal)
	test.That(t, normal.Dot(proj.Sub(anchor)), test.ShouldAlmostEqual, 0)

	// displacement is parallel to the normal
	test.That(t, pt.Sub(proj).Cross(normal), test.ShouldResemble, r3.Vector{})

	// projecting twice is projecting once
	test.That(t, ProjectOntoPlane(proj, anchor, normal), test.ShouldResemble, proj)
}

func TestProjectOntoPlaneSkewed(t *testing.T) {
	anchor := r3.Vector{X: 0.5, Y: -1, Z: 2}
	normal := r3.Vector{X: 1, Y: 1, Z: 1}.Normalize()
	pt := r3.Vector{X: 3, Y: 0.25, Z: -8}

	proj := ProjectOntoPlane(pt, anchor, normal)
	test.That(t, normal.Dot(proj.Sub(anchor)), test.ShouldAlmostEqual, 0)

	disp := pt.Sub(proj)
	cross := disp.Cross(normal)
	test.That(t, cross.X, test.ShouldAlmostEqual, 0)
	test.That(t, cross.Y, test.ShouldAlmostEqual, 0)
	test.That(t, cross.Z, test.ShouldAlmostEqual, 0)

	again := ProjectOntoPlane(proj, anchor, normal)
	test.That(t, again.X, test.ShouldAlmostEqual, proj.X)
	test.That(t, again.Y, test.ShouldAlmostEqual, proj.Y)
	test.That(t, again.Z, test.ShouldAlmostEqual, proj.Z)
}
