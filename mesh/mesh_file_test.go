package mesh

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestWritePLY(t *testing.T) {
	m, _ := newQuad(t)

	var buf bytes.Buffer
	test.That(t, WritePLY(&buf, m), test.ShouldBeNil)
	test.That(t, buf.String(), test.ShouldEqual, `ply
format ascii 1.0
element vertex 4
property double x
property double y
property double z
element face 1
property list uchar int vertex_indices
end_header
0 0 0
0 1 0
1 1 0
1 0 0
4 0 1 2 3
`)
}

func TestNewFromFileUnknown(t *testing.T) {
	logger := golog.NewTestLogger(t)
	_, err := NewFromFile("mesh.obj", logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "do not know how to read")

	_, err = NewFromPLYFile(filepath.Join(t.TempDir(), "missing.ply"), logger)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestPLYRoundTrip(t *testing.T) {
	logger := golog.NewTestLogger(t)

	// the last vertex has coordinates that float32 cannot represent; the
	// double-typed header keeps them exact through the round trip
	m := New()
	for _, pos := range []r3.Vector{
		{X: 0, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 1, Y: 0, Z: 0.5}, {X: 2, Y: 0, Z: 0}, {X: 0.1, Y: -2.3, Z: 0.7},
	} {
		m.AddVertex(pos)
	}
	_, err := m.AddFace(0, 1, 2, 3)
	test.That(t, err, test.ShouldBeNil)
	_, err = m.AddFace(3, 2, 4)
	test.That(t, err, test.ShouldBeNil)

	fn := filepath.Join(t.TempDir(), "mesh.ply")
	test.That(t, WriteToFile(fn, m), test.ShouldBeNil)

	m2, err := NewFromFile(fn, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(m2.Vertices()), test.ShouldEqual, 6)
	test.That(t, len(m2.Faces()), test.ShouldEqual, 2)
	test.That(t, len(m2.Edges()), test.ShouldEqual, 6)
	for i, v := range m2.Vertices() {
		orig := m.Vertices()[i].Position()
		test.That(t, v.Position().X, test.ShouldAlmostEqual, orig.X)
		test.That(t, v.Position().Y, test.ShouldAlmostEqual, orig.Y)
		test.That(t, v.Position().Z, test.ShouldAlmostEqual, orig.Z)
	}
	for i, f := range m2.Faces() {
		test.That(t, len(f.Vertices()), test.ShouldEqual, len(m.Faces()[i].Vertices()))
	}
}

func TestReadPLYMalformed(t *testing.T) {
	logger := golog.NewTestLogger(t)
	for _, data := range []string{
		"",
		"not a mesh",
		// header promises two vertices, body delivers one
		"ply\nformat ascii 1.0\nelement vertex 2\nproperty double x\nproperty double y\nproperty double z\nend_header\n0 0 0\n",
	} {
		_, err := ReadPLY(strings.NewReader(data), logger)
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "invalid ply data")
	}

	fn := filepath.Join(t.TempDir(), "bad.ply")
	test.That(t, os.WriteFile(fn, []byte("not a mesh"), 0o600), test.ShouldBeNil)
	_, err := NewFromFile(fn, logger)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestPLYScalarTypes(t *testing.T) {
	for _, v := range []interface{}{
		float64(2), float32(2), int(2),
		int8(2), int16(2), int32(2),
		uint8(2), uint16(2), uint32(2),
	} {
		f, ok := plyFloat(v)
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, f, test.ShouldEqual, 2.0)
	}
	_, ok := plyFloat("2")
	test.That(t, ok, test.ShouldBeFalse)
}
