package planarize

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/meshkit/planarizer/mesh"
)

// rankEpsilon bounds the ratio of the middle to the largest eigenvalue of
// the selection's covariance below which the points are treated as
// collinear.
const rankEpsilon = 1e-12

// bestFitNormal estimates the normal of the least-squares plane through the
// selected vertices: the eigenvector of the centered covariance matrix with
// the smallest eigenvalue.
func bestFitNormal(sel []*mesh.Vertex) (r3.Vector, error) {
	if len(sel) < 3 {
		return r3.Vector{}, errors.Wrapf(ErrDegeneratePlane, "best-fit plane needs at least 3 vertices, got %d", len(sel))
	}

	center := centroid(sel)
	var xx, xy, xz, yy, yz, zz float64
	for _, v := range sel {
		d := v.Position().Sub(center)
		xx += d.X * d.X
		xy += d.X * d.Y
		xz += d.X * d.Z
		yy += d.Y * d.Y
		yz += d.Y * d.Z
		zz += d.Z * d.Z
	}

	cov := mat.NewSymDense(3, []float64{
		xx, xy, xz,
		xy, yy, yz,
		xz, yz, zz,
	})
	var eig mat.EigenSym
	if !eig.Factorize(cov, true) {
		return r3.Vector{}, errors.Wrap(ErrDegeneratePlane, "covariance factorization failed")
	}

	// Eigenvalues come back in ascending order; the smallest one's
	// eigenvector is the plane normal. If the middle eigenvalue also
	// vanishes the points span a line at best.
	vals := eig.Values(nil)
	if vals[2] <= 0 || vals[1]/vals[2] < rankEpsilon {
		return r3.Vector{}, errors.Wrap(ErrDegeneratePlane, "selected vertices are collinear")
	}
	var vecs mat.Dense
	eig.VectorsTo(&vecs)
	n := r3.Vector{X: vecs.At(0, 0), Y: vecs.At(1, 0), Z: vecs.At(2, 0)}
	return n.Normalize(), nil
}
