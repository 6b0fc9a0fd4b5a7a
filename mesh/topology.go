package mesh

import (
	"github.com/golang/geo/r3"
)

// Vertex is a mesh vertex with a mutable position, a selection flag, and
// read-only adjacency to its incident edges and faces.
type Vertex struct {
	index    int
	pos      r3.Vector
	selected bool
	edges    []*Edge
	faces    []*Face
}

// Index returns the vertex's position in the mesh's vertex list.
func (v *Vertex) Index() int {
	return v.index
}

// Position returns the vertex's current position.
func (v *Vertex) Position() r3.Vector {
	return v.pos
}

// SetPosition moves the vertex.
func (v *Vertex) SetPosition(pos r3.Vector) {
	v.pos = pos
}

// Selected reports whether the vertex is part of the active selection.
func (v *Vertex) Selected() bool {
	return v.selected
}

// SetSelected toggles the vertex's selection flag.
func (v *Vertex) SetSelected(selected bool) {
	v.selected = selected
}

// Edges returns the edges incident to the vertex.
func (v *Vertex) Edges() []*Edge {
	return v.edges
}

// Faces returns the faces incident to the vertex.
func (v *Vertex) Faces() []*Face {
	return v.faces
}

// QuadFaces returns the faces incident to the vertex with exactly four
// vertices, or with four or more when includeNGons is set. Triangles are
// never returned; they have no diagonal to reason about.
func (v *Vertex) QuadFaces(includeNGons bool) []*Face {
	var out []*Face
	for _, f := range v.faces {
		n := len(f.verts)
		if n == 4 || (includeNGons && n > 4) {
			out = append(out, f)
		}
	}
	return out
}

// Edge is an unordered pair of vertices.
type Edge struct {
	v1, v2 *Vertex
}

// Vertices returns the edge's two endpoints.
func (e *Edge) Vertices() (*Vertex, *Vertex) {
	return e.v1, e.v2
}

// Has reports whether v is an endpoint of the edge.
func (e *Edge) Has(v *Vertex) bool {
	return e.v1 == v || e.v2 == v
}

// Other returns the endpoint opposite v, or nil if v is not on the edge.
func (e *Edge) Other(v *Vertex) *Vertex {
	switch v {
	case e.v1:
		return e.v2
	case e.v2:
		return e.v1
	}
	return nil
}

// Face is an ordered cycle of vertices. Its centroid and normal are derived
// from the current vertex positions on every call.
type Face struct {
	verts []*Vertex
	edges []*Edge
}

// Vertices returns the face's boundary vertices in cycle order.
func (f *Face) Vertices() []*Vertex {
	return f.verts
}

// Edges returns the face's boundary edges in cycle order.
func (f *Face) Edges() []*Edge {
	return f.edges
}

// Centroid returns the mean of the face's vertex positions.
func (f *Face) Centroid() r3.Vector {
	var c r3.Vector
	for _, v := range f.verts {
		c = c.Add(v.pos)
	}
	return c.Mul(1.0 / float64(len(f.verts)))
}

// Normal returns the face's unit surface normal, computed with Newell's
// method so that n-gons and non-planar quads still get a stable normal.
// A degenerate face yields the zero vector.
func (f *Face) Normal() r3.Vector {
	var n r3.Vector
	for i, v := range f.verts {
		curr := v.pos
		next := f.verts[(i+1)%len(f.verts)].pos
		n.X += (curr.Y - next.Y) * (curr.Z + next.Z)
		n.Y += (curr.Z - next.Z) * (curr.X + next.X)
		n.Z += (curr.X - next.X) * (curr.Y + next.Y)
	}
	if n.Norm() == 0 {
		return r3.Vector{}
	}
	return n.Normalize()
}
