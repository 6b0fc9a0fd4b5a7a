package main

import (
	"path/filepath"
	"testing"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"github.com/meshkit/planarizer/mesh"
	"github.com/meshkit/planarizer/planarize"
)

func TestParsePoint(t *testing.T) {
	pt, err := parsePoint("1, -2,0.5")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, pt, test.ShouldResemble, r3.Vector{X: 1, Y: -2, Z: 0.5})

	_, err = parsePoint("1,2")
	test.That(t, err, test.ShouldNotBeNil)
	_, err = parsePoint("1,2,z")
	test.That(t, err, test.ShouldNotBeNil)
}

func TestApplySelection(t *testing.T) {
	m := mesh.New()
	m.AddVertex(r3.Vector{})
	m.AddVertex(r3.Vector{X: 1})

	test.That(t, applySelection(m, ""), test.ShouldBeError, planarize.ErrEmptySelection)
	test.That(t, applySelection(m, "0, 1"), test.ShouldBeNil)
	test.That(t, len(m.Selected()), test.ShouldEqual, 2)

	m.ClearSelection()
	test.That(t, applySelection(m, "all"), test.ShouldBeNil)
	test.That(t, len(m.Selected()), test.ShouldEqual, 2)

	test.That(t, applySelection(m, "0,x"), test.ShouldNotBeNil)
	test.That(t, applySelection(m, "7"), test.ShouldNotBeNil)
}

func TestAppPlanarizes(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.ply")
	out := filepath.Join(dir, "out.ply")

	m := mesh.New()
	m.AddVertex(r3.Vector{X: 0, Y: 0, Z: 0})
	m.AddVertex(r3.Vector{X: 0, Y: 1, Z: 0})
	m.AddVertex(r3.Vector{X: 1, Y: 1, Z: 0})
	m.AddVertex(r3.Vector{X: 1, Y: 0, Z: 0.5})
	_, err := m.AddFace(0, 1, 2, 3)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, mesh.WriteToFile(in, m), test.ShouldBeNil)

	err = newApp().Run([]string{
		"planarizer",
		"--in", in,
		"--out", out,
		"--plane", "connected",
		"--anchor", "connected",
		"--select", "3",
	})
	test.That(t, err, test.ShouldBeNil)

	result, err := mesh.NewFromFile(out, golog.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(result.Vertices()), test.ShouldEqual, 4)
	d := result.Vertices()[3].Position()
	test.That(t, d.X, test.ShouldAlmostEqual, 1)
	test.That(t, d.Y, test.ShouldAlmostEqual, 0)
	test.That(t, d.Z, test.ShouldAlmostEqual, 0)
}

func TestAppRejectsBadFlags(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.ply")

	m := mesh.New()
	m.AddVertex(r3.Vector{})
	test.That(t, mesh.WriteToFile(in, m), test.ShouldBeNil)

	for _, args := range [][]string{
		{"planarizer", "--in", in, "--out", filepath.Join(dir, "o.ply"), "--plane", "nope", "--select", "0"},
		{"planarizer", "--in", in, "--out", filepath.Join(dir, "o.ply"), "--cursor", "1,2", "--select", "0"},
		{"planarizer", "--in", in, "--out", filepath.Join(dir, "o.ply")},
	} {
		test.That(t, newApp().Run(args), test.ShouldNotBeNil)
	}
}
