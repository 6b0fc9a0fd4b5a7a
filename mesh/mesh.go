// Package mesh defines an editable polygon mesh and the topology queries the
// planarize package runs against it.
//
// The mesh owns its vertices, edges and faces. Consumers may rewrite vertex
// positions and toggle selection flags; topology is fixed once built.
package mesh

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Mesh is a polygon mesh with explicit vertex/edge/face adjacency.
type Mesh struct {
	verts []*Vertex
	edges []*Edge
	faces []*Face

	edgeLookup map[[2]int]*Edge

	world    *mat.Dense
	worldInv *mat.Dense
}

// New returns an empty mesh.
func New() *Mesh {
	return &Mesh{edgeLookup: map[[2]int]*Edge{}}
}

// AddVertex appends a new unselected vertex at the given position and
// returns it.
func (m *Mesh) AddVertex(pos r3.Vector) *Vertex {
	v := &Vertex{index: len(m.verts), pos: pos}
	m.verts = append(m.verts, v)
	return v
}

// AddFace appends a face whose boundary is the given vertex indices in cycle
// order. Edges are created on first use and shared between faces.
func (m *Mesh) AddFace(indices ...int) (*Face, error) {
	if len(indices) < 3 {
		return nil, errors.Errorf("face needs at least 3 vertices, got %d", len(indices))
	}
	seen := map[int]bool{}
	verts := make([]*Vertex, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(m.verts) {
			return nil, errors.Errorf("face references vertex %d of %d", i, len(m.verts))
		}
		if seen[i] {
			return nil, errors.Errorf("face references vertex %d twice", i)
		}
		seen[i] = true
		verts = append(verts, m.verts[i])
	}

	f := &Face{verts: verts}
	for i := range verts {
		a, b := verts[i], verts[(i+1)%len(verts)]
		f.edges = append(f.edges, m.edgeBetween(a, b))
	}
	for _, v := range verts {
		v.faces = append(v.faces, f)
	}
	m.faces = append(m.faces, f)
	return f, nil
}

func (m *Mesh) edgeBetween(a, b *Vertex) *Edge {
	key := [2]int{a.index, b.index}
	if key[0] > key[1] {
		key[0], key[1] = key[1], key[0]
	}
	if e, ok := m.edgeLookup[key]; ok {
		return e
	}
	e := &Edge{v1: a, v2: b}
	m.edgeLookup[key] = e
	m.edges = append(m.edges, e)
	a.edges = append(a.edges, e)
	b.edges = append(b.edges, e)
	return e
}

// Vertices returns all vertices in index order.
func (m *Mesh) Vertices() []*Vertex {
	return m.verts
}

// Edges returns all edges in creation order.
func (m *Mesh) Edges() []*Edge {
	return m.edges
}

// Faces returns all faces in creation order.
func (m *Mesh) Faces() []*Face {
	return m.faces
}

// Selected returns the selected vertices in index order.
func (m *Mesh) Selected() []*Vertex {
	var sel []*Vertex
	for _, v := range m.verts {
		if v.selected {
			sel = append(sel, v)
		}
	}
	return sel
}

// SelectVertices marks the vertices at the given indices as selected. It does
// not clear any prior selection.
func (m *Mesh) SelectVertices(indices ...int) error {
	for _, i := range indices {
		if i < 0 || i >= len(m.verts) {
			return errors.Errorf("cannot select vertex %d of %d", i, len(m.verts))
		}
	}
	for _, i := range indices {
		m.verts[i].selected = true
	}
	return nil
}

// SelectAll marks every vertex as selected.
func (m *Mesh) SelectAll() {
	for _, v := range m.verts {
		v.selected = true
	}
}

// ClearSelection unmarks every vertex.
func (m *Mesh) ClearSelection() {
	for _, v := range m.verts {
		v.selected = false
	}
}

// SetWorldTransform sets the mesh's local-to-world transform as a 4x4 affine
// matrix. The inverse is cached for mapping world-space reference points back
// into the mesh frame.
func (m *Mesh) SetWorldTransform(world *mat.Dense) error {
	r, c := world.Dims()
	if r != 4 || c != 4 {
		return errors.Errorf("world transform must be 4x4, got %dx%d", r, c)
	}
	var inv mat.Dense
	if err := inv.Inverse(world); err != nil {
		return errors.Wrap(err, "world transform is not invertible")
	}
	m.world = mat.DenseCopyOf(world)
	m.worldInv = &inv
	return nil
}

// ToLocal maps a world-space point into the mesh's local frame. With no world
// transform set the two frames coincide.
func (m *Mesh) ToLocal(pt r3.Vector) r3.Vector {
	if m.worldInv == nil {
		return pt
	}
	return applyAffine(m.worldInv, pt)
}

// ToWorld maps a local point into world space.
func (m *Mesh) ToWorld(pt r3.Vector) r3.Vector {
	if m.world == nil {
		return pt
	}
	return applyAffine(m.world, pt)
}

func applyAffine(t *mat.Dense, pt r3.Vector) r3.Vector {
	var out mat.VecDense
	out.MulVec(t, mat.NewVecDense(4, []float64{pt.X, pt.Y, pt.Z, 1}))
	return r3.Vector{X: out.AtVec(0), Y: out.AtVec(1), Z: out.AtVec(2)}
}
