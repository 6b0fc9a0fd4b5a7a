package planarize

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/meshkit/planarizer/mesh"
)

// planeNormal derives the projection plane's unit normal for the given
// selection per the configured PlaneSource. refPt is in the mesh's local
// frame.
func (p *Planarizer) planeNormal(m *mesh.Mesh, sel []*mesh.Vertex, refPt r3.Vector) (r3.Vector, error) {
	// A single vertex always planarizes against its own diagonal triangle;
	// cursor-wide and averaged planes are not meaningful for one point.
	if len(sel) == 1 && p.cfg.PlaneSource != PlaneBestFit {
		return p.singleVertexNormal(sel[0], refPt)
	}

	switch p.cfg.PlaneSource {
	case PlaneCursorNearest:
		return nearestFaceNormal(m.Faces(), refPt)
	case PlaneConnected:
		return nearestFaceNormal(connectedFaces(sel, p.cfg.IncludeNGons), refPt)
	case PlaneAverage:
		return averageNormal(connectedFaces(sel, p.cfg.IncludeNGons))
	case PlaneBestFit:
		return bestFitNormal(sel)
	}
	return r3.Vector{}, errors.Errorf("invalid plane source %d", p.cfg.PlaneSource)
}

// singleVertexNormal prefers the diagonal triangle of the connected quad
// nearest the reference point, falling back to that face's own normal when
// the diagonal lookup fails or is degenerate.
func (p *Planarizer) singleVertexNormal(v *mesh.Vertex, refPt r3.Vector) (r3.Vector, error) {
	face, err := mesh.NearestFace(v.QuadFaces(p.cfg.IncludeNGons), refPt)
	if err != nil {
		return r3.Vector{}, errors.Wrapf(ErrNoConnectedFaces, "vertex %d has no connected quad faces", v.Index())
	}
	if tri, ok := mesh.DiagonalTriangle(v, face); ok {
		if n := PlaneNormal(tri.A, tri.B, tri.C); n.Norm() > 0 {
			return n, nil
		}
	}
	p.logger.Debugf("no diagonal triangle for vertex %d, using face normal", v.Index())
	if n := face.Normal(); n.Norm() > 0 {
		return n, nil
	}
	return r3.Vector{}, errors.Wrapf(ErrDegeneratePlane, "face nearest vertex %d has zero area", v.Index())
}

func nearestFaceNormal(faces []*mesh.Face, refPt r3.Vector) (r3.Vector, error) {
	face, err := mesh.NearestFace(faces, refPt)
	if err != nil {
		return r3.Vector{}, errors.Wrap(ErrNoConnectedFaces, "no candidate faces for plane")
	}
	if n := face.Normal(); n.Norm() > 0 {
		return n, nil
	}
	return r3.Vector{}, errors.Wrap(ErrDegeneratePlane, "nearest face has zero area")
}

func averageNormal(faces []*mesh.Face) (r3.Vector, error) {
	if len(faces) == 0 {
		return r3.Vector{}, errors.Wrap(ErrNoConnectedFaces, "selection has no connected quad faces to average")
	}
	var sum r3.Vector
	for _, f := range faces {
		sum = sum.Add(f.Normal())
	}
	if sum.Norm() == 0 {
		return r3.Vector{}, errors.Wrap(ErrDegeneratePlane, "connected face normals cancel out")
	}
	return sum.Normalize(), nil
}

// connectedFaces returns the quad (or n-gon) faces incident to the
// selection, deduplicated, in first-encounter order over the selection's
// index order.
func connectedFaces(sel []*mesh.Vertex, includeNGons bool) []*mesh.Face {
	seen := map[*mesh.Face]bool{}
	var out []*mesh.Face
	for _, v := range sel {
		for _, f := range v.QuadFaces(includeNGons) {
			if !seen[f] {
				seen[f] = true
				out = append(out, f)
			}
		}
	}
	return out
}
