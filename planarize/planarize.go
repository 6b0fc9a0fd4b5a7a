package planarize

import (
	"sort"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/meshkit/planarizer/mesh"
)

var (
	// ErrEmptySelection is returned when a run is invoked with no vertices
	// selected. The mesh is left untouched.
	ErrEmptySelection = errors.New("no vertices selected")

	// ErrDegeneratePlane is returned when no strategy can produce a valid
	// plane normal: collinear geometry, zero-area faces, or canceling
	// normals with no fallback left.
	ErrDegeneratePlane = errors.New("cannot derive a plane from degenerate geometry")

	// ErrNoConnectedFaces is returned when a strategy needs faces connected
	// to the selection and there are none.
	ErrNoConnectedFaces = errors.New("selection has no connected faces")
)

// Planarizer projects a mesh's selected vertices onto a plane derived per
// its configuration. A Planarizer may be reused across runs; a single run is
// synchronous and owns the mesh for its duration.
type Planarizer struct {
	cfg    Config
	ref    ReferencePoint
	logger golog.Logger
}

// New returns a Planarizer with the given configuration and reference-point
// capability.
func New(cfg Config, ref ReferencePoint, logger golog.Logger) (*Planarizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if ref == nil {
		return nil, errors.New("reference point provider required")
	}
	if logger == nil {
		return nil, errors.New("logger required")
	}
	return &Planarizer{cfg: cfg, ref: ref, logger: logger}, nil
}

// Run projects every selected vertex of m onto the configured plane. On any
// error no vertex position is changed.
func (p *Planarizer) Run(m *mesh.Mesh) error {
	sel := m.Selected()
	if len(sel) == 0 {
		return ErrEmptySelection
	}
	refPt := m.ToLocal(p.ref.Get())
	p.logger.Debugf("planarizing %d vertices (plane=%s anchor=%s mode=%s)",
		len(sel), p.cfg.PlaneSource, p.cfg.Anchor, p.cfg.Mode)

	switch p.cfg.Mode {
	case ModeIndividual:
		return p.runIndividual(m, sel, refPt)
	default:
		return p.runGrouped(m, sel, refPt)
	}
}

// runGrouped computes one plane and one anchor for the whole selection, then
// projects every selected vertex with that pair.
func (p *Planarizer) runGrouped(m *mesh.Mesh, sel []*mesh.Vertex, refPt r3.Vector) error {
	normal, err := p.planeNormal(m, sel, refPt)
	if err != nil {
		return err
	}
	anchor, err := p.anchorPoint(sel, refPt)
	if err != nil {
		return err
	}

	staged := make([]r3.Vector, len(sel))
	for i, v := range sel {
		staged[i] = ProjectOntoPlane(v.Position(), anchor, normal)
	}
	for i, v := range sel {
		v.SetPosition(staged[i])
	}
	return nil
}

// runIndividual processes the selection one vertex at a time, nearest the
// reference point first, each against its own local neighborhood. Later
// vertices see the already-projected positions of earlier ones, which keeps
// adjoining quads consistent. On error all positions are restored.
func (p *Planarizer) runIndividual(m *mesh.Mesh, sel []*mesh.Vertex, refPt r3.Vector) error {
	ordered := make([]*mesh.Vertex, len(sel))
	copy(ordered, sel)
	dist := make(map[*mesh.Vertex]float64, len(sel))
	for _, v := range sel {
		dist[v] = v.Position().Sub(refPt).Norm2()
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return dist[ordered[i]] < dist[ordered[j]]
	})

	saved := make([]r3.Vector, len(sel))
	for i, v := range sel {
		saved[i] = v.Position()
	}
	for _, v := range ordered {
		if err := p.projectSingle(m, v, refPt); err != nil {
			for i, sv := range sel {
				sv.SetPosition(saved[i])
			}
			return errors.Wrapf(err, "vertex %d", v.Index())
		}
	}
	return nil
}

func (p *Planarizer) projectSingle(m *mesh.Mesh, v *mesh.Vertex, refPt r3.Vector) error {
	single := []*mesh.Vertex{v}
	normal, err := p.planeNormal(m, single, refPt)
	if err != nil {
		return err
	}
	anchor, err := p.anchorPoint(single, refPt)
	if err != nil {
		return err
	}
	v.SetPosition(ProjectOntoPlane(v.Position(), anchor, normal))
	return nil
}
