package mesh

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// ErrNoFaces is returned when a query requiring face candidates is handed an
// empty collection. This is a contract violation by the caller, not a state a
// well-formed invocation can reach.
var ErrNoFaces = errors.New("no candidate faces")

// NearestFace returns the face whose centroid is closest to pt. Ties resolve
// to the first face encountered in slice order.
func NearestFace(faces []*Face, pt r3.Vector) (*Face, error) {
	if len(faces) == 0 {
		return nil, ErrNoFaces
	}
	best := faces[0]
	bestDist := best.Centroid().Sub(pt).Norm2()
	for _, f := range faces[1:] {
		if d := f.Centroid().Sub(pt).Norm2(); d < bestDist {
			best, bestDist = f, d
		}
	}
	return best, nil
}

// Triangle is the diagonal triangle of a quad relative to one of its
// vertices: the three face corners other than that vertex.
//
//	B----C
//	|    |
//	A----D  <- D is the vertex under consideration; A, B, C is the triangle
//
// Middle is the corner diagonally opposite the considered vertex (B above).
type Triangle struct {
	A, B, C r3.Vector
	Middle  *Vertex
}

// DiagonalTriangle finds the diagonal triangle of face f relative to vertex
// v. It reports false when the face's topology does not yield exactly two
// far edges sharing one unselected middle vertex: n-gons, triangles, and
// quads whose far corners are all selected.
func DiagonalTriangle(v *Vertex, f *Face) (Triangle, bool) {
	var far []*Edge
	for _, e := range f.edges {
		if !e.Has(v) {
			far = append(far, e)
		}
	}
	if len(far) != 2 {
		return Triangle{}, false
	}

	var middle *Vertex
	for _, fv := range f.verts {
		if fv.selected {
			continue
		}
		if far[0].Has(fv) && far[1].Has(fv) {
			middle = fv
			break
		}
	}
	if middle == nil {
		return Triangle{}, false
	}

	a := far[0].Other(middle)
	c := far[1].Other(middle)
	if a == nil || c == nil {
		return Triangle{}, false
	}
	return Triangle{A: a.pos, B: middle.pos, C: c.pos, Middle: middle}, true
}
