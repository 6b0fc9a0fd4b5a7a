package planarize

import (
	"github.com/golang/geo/r3"
)

// ReferencePoint is the injected capability standing in for the host's 3D
// cursor. Points are in world space; the engine maps them into the mesh's
// local frame itself.
type ReferencePoint interface {
	Get() r3.Vector
	Set(r3.Vector)
}

type staticReferencePoint struct {
	pt r3.Vector
}

// NewStaticReferencePoint returns a ReferencePoint holding a fixed point.
func NewStaticReferencePoint(pt r3.Vector) ReferencePoint {
	return &staticReferencePoint{pt: pt}
}

func (s *staticReferencePoint) Get() r3.Vector {
	return s.pt
}

func (s *staticReferencePoint) Set(pt r3.Vector) {
	s.pt = pt
}
