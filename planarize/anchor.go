package planarize

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/meshkit/planarizer/mesh"
)

// anchorPoint derives the point the projection plane passes through. refPt
// is in the mesh's local frame.
func (p *Planarizer) anchorPoint(sel []*mesh.Vertex, refPt r3.Vector) (r3.Vector, error) {
	// Single-vertex selections anchor at their diagonal triangle's middle
	// vertex regardless of configuration, mirroring the forced plane choice.
	if len(sel) == 1 {
		return p.connectedAnchor(sel, refPt)
	}

	switch p.cfg.Anchor {
	case AnchorCursor:
		return refPt, nil
	case AnchorMedian:
		return centroid(sel), nil
	case AnchorConnected:
		return p.connectedAnchor(sel, refPt)
	}
	return r3.Vector{}, errors.Errorf("invalid anchor %d", p.cfg.Anchor)
}

// connectedAnchor anchors at geometry adjacent to the selection.
//
// For a single vertex it is the middle vertex of the diagonal triangle of
// the connected quad nearest the reference point. For multiple vertices it
// is the lowest-index unselected vertex sharing an edge with the selection;
// scanning runs over the selection in index order and stops at the first
// selected vertex with any unselected neighbor.
//
// When no adjacent unselected vertex exists (the whole neighborhood is
// selected), the anchor falls back to the centroid of the connected face
// nearest the reference point.
func (p *Planarizer) connectedAnchor(sel []*mesh.Vertex, refPt r3.Vector) (r3.Vector, error) {
	if len(sel) == 1 {
		face, err := mesh.NearestFace(sel[0].QuadFaces(p.cfg.IncludeNGons), refPt)
		if err != nil {
			return r3.Vector{}, errors.Wrapf(ErrNoConnectedFaces, "vertex %d has no connected quad faces to anchor at", sel[0].Index())
		}
		if tri, ok := mesh.DiagonalTriangle(sel[0], face); ok {
			return tri.Middle.Position(), nil
		}
		return face.Centroid(), nil
	}

	for _, v := range sel {
		var ref *mesh.Vertex
		for _, e := range v.Edges() {
			other := e.Other(v)
			if other.Selected() {
				continue
			}
			if ref == nil || other.Index() < ref.Index() {
				ref = other
			}
		}
		if ref != nil {
			return ref.Position(), nil
		}
	}

	p.logger.Debug("selection has no adjacent unselected vertex, anchoring at nearest connected face centroid")
	face, err := mesh.NearestFace(connectedFaces(sel, p.cfg.IncludeNGons), refPt)
	if err != nil {
		return r3.Vector{}, errors.Wrap(ErrNoConnectedFaces, "no anchor candidate for selection")
	}
	return face.Centroid(), nil
}

// centroid returns the arithmetic mean of the selection's positions.
func centroid(sel []*mesh.Vertex) r3.Vector {
	var c r3.Vector
	for _, v := range sel {
		c = c.Add(v.Position())
	}
	return c.Mul(1.0 / float64(len(sel)))
}
