package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chenzhekl/goply"
	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	goutils "go.viam.com/utils"
)

// NewFromFile returns a mesh read in from the given file.
func NewFromFile(fn string, logger golog.Logger) (*Mesh, error) {
	switch filepath.Ext(fn) {
	case ".ply":
		return NewFromPLYFile(fn, logger)
	default:
		return nil, errors.Errorf("do not know how to read file %q", fn)
	}
}

// NewFromPLYFile returns a mesh read in from the given PLY file.
func NewFromPLYFile(fn string, logger golog.Logger) (*Mesh, error) {
	f, err := os.Open(fn) //nolint:gosec
	if err != nil {
		return nil, err
	}
	defer goutils.UncheckedErrorFunc(f.Close)
	return ReadPLY(f, logger)
}

// ReadPLY reads a mesh from PLY data. Faces of any arity are kept; elements
// other than vertex and face are ignored with a debug log. Malformed data is
// reported as an error.
func ReadPLY(r io.Reader, logger golog.Logger) (m *Mesh, err error) {
	// goply panics on malformed input instead of returning an error
	defer func() {
		if p := recover(); p != nil {
			m, err = nil, errors.Errorf("invalid ply data: %v", p)
		}
	}()
	ply := goply.New(r)

	m = New()
	for i, elem := range ply.Elements("vertex") {
		x, xOk := plyFloat(elem["x"])
		y, yOk := plyFloat(elem["y"])
		z, zOk := plyFloat(elem["z"])
		if !xOk || !yOk || !zOk {
			return nil, errors.Errorf("vertex %d is missing x/y/z properties", i)
		}
		m.AddVertex(r3.Vector{X: x, Y: y, Z: z})
	}

	for i, elem := range ply.Elements("face") {
		prop, ok := elem["vertex_indices"]
		if !ok {
			prop, ok = elem["vertex_index"]
		}
		if !ok {
			return nil, errors.Errorf("face %d has no vertex index list", i)
		}
		indices, err := plyIndexList(prop)
		if err != nil {
			return nil, errors.Wrapf(err, "face %d", i)
		}
		if _, err := m.AddFace(indices...); err != nil {
			return nil, errors.Wrapf(err, "face %d", i)
		}
	}

	logger.Debugf("read mesh with %d vertices, %d faces", len(m.verts), len(m.faces))
	return m, nil
}

func plyFloat(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	}
	return 0, false
}

func plyIndexList(v interface{}) ([]int, error) {
	list, ok := v.([]interface{})
	if !ok {
		return nil, errors.Errorf("vertex index list has unexpected type %T", v)
	}
	indices := make([]int, 0, len(list))
	for _, item := range list {
		f, ok := plyFloat(item)
		if !ok {
			return nil, errors.Errorf("vertex index has unexpected type %T", item)
		}
		indices = append(indices, int(f))
	}
	return indices, nil
}

// WriteToFile writes the mesh out to the given file as ASCII PLY.
func WriteToFile(fn string, m *Mesh) (err error) {
	f, err := os.Create(fn) //nolint:gosec
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Combine(err, f.Close())
	}()
	return WritePLY(f, m)
}

// WritePLY writes the mesh as ASCII PLY.
func WritePLY(w io.Writer, m *Mesh) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "ply\n")
	fmt.Fprintf(bw, "format ascii 1.0\n")
	fmt.Fprintf(bw, "element vertex %d\n", len(m.verts))
	fmt.Fprintf(bw, "property double x\n")
	fmt.Fprintf(bw, "property double y\n")
	fmt.Fprintf(bw, "property double z\n")
	fmt.Fprintf(bw, "element face %d\n", len(m.faces))
	fmt.Fprintf(bw, "property list uchar int vertex_indices\n")
	fmt.Fprintf(bw, "end_header\n")

	for _, v := range m.verts {
		fmt.Fprintf(bw, "%v %v %v\n", v.pos.X, v.pos.Y, v.pos.Z)
	}
	for _, f := range m.faces {
		fmt.Fprintf(bw, "%d", len(f.verts))
		for _, v := range f.verts {
			fmt.Fprintf(bw, " %d", v.index)
		}
		fmt.Fprintf(bw, "\n")
	}
	return bw.Flush()
}
