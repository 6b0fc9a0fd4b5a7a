package planarize

import (
	"github.com/pkg/errors"
)

// PlaneSource selects how the projection plane's normal is derived.
type PlaneSource int

const (
	// PlaneCursorNearest uses the normal of the face nearest the reference
	// point. With more than one vertex selected every mesh face is a
	// candidate; with exactly one, only that vertex's connected quad faces
	// are, and the diagonal triangle's normal is preferred over the face's.
	PlaneCursorNearest PlaneSource = iota
	// PlaneAverage averages the normals of the faces connected to the
	// selection.
	PlaneAverage
	// PlaneConnected behaves like PlaneCursorNearest but only ever considers
	// faces connected to the selection.
	PlaneConnected
	// PlaneBestFit fits a least-squares plane through the selected vertices.
	// It requires at least three selected vertices.
	PlaneBestFit
)

func (s PlaneSource) String() string {
	switch s {
	case PlaneCursorNearest:
		return "cursor"
	case PlaneAverage:
		return "average"
	case PlaneConnected:
		return "connected"
	case PlaneBestFit:
		return "bestfit"
	}
	return "unknown"
}

// ParsePlaneSource parses a PlaneSource from its string form.
func ParsePlaneSource(s string) (PlaneSource, error) {
	switch s {
	case "cursor":
		return PlaneCursorNearest, nil
	case "average":
		return PlaneAverage, nil
	case "connected":
		return PlaneConnected, nil
	case "bestfit":
		return PlaneBestFit, nil
	}
	return 0, errors.Errorf("unknown plane source %q", s)
}

// Anchor selects the point the projection plane passes through.
type Anchor int

const (
	// AnchorCursor anchors the plane at the reference point.
	AnchorCursor Anchor = iota
	// AnchorMedian anchors the plane at the centroid of the selection.
	AnchorMedian
	// AnchorConnected anchors the plane at a vertex adjacent to the
	// selection: the diagonal triangle's middle vertex for a single selected
	// vertex, otherwise the lowest-index unselected vertex reachable over an
	// edge from the selection.
	AnchorConnected
)

func (a Anchor) String() string {
	switch a {
	case AnchorCursor:
		return "cursor"
	case AnchorMedian:
		return "median"
	case AnchorConnected:
		return "connected"
	}
	return "unknown"
}

// ParseAnchor parses an Anchor from its string form.
func ParseAnchor(s string) (Anchor, error) {
	switch s {
	case "cursor":
		return AnchorCursor, nil
	case "median":
		return AnchorMedian, nil
	case "connected":
		return AnchorConnected, nil
	}
	return 0, errors.Errorf("unknown anchor %q", s)
}

// Mode selects how the selection is iterated.
type Mode int

const (
	// ModeGrouped computes one plane and one anchor for the whole selection.
	ModeGrouped Mode = iota
	// ModeIndividual processes selected vertices one at a time in order of
	// distance from the reference point, each against its own local
	// neighborhood.
	ModeIndividual
)

func (m Mode) String() string {
	switch m {
	case ModeGrouped:
		return "grouped"
	case ModeIndividual:
		return "individual"
	}
	return "unknown"
}

// ParseMode parses a Mode from its string form.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "grouped":
		return ModeGrouped, nil
	case "individual":
		return ModeIndividual, nil
	}
	return 0, errors.Errorf("unknown iteration mode %q", s)
}

// Config selects the plane, anchor, and iteration behavior of a run.
type Config struct {
	PlaneSource PlaneSource
	Anchor      Anchor
	Mode        Mode

	// IncludeNGons widens "connected quad faces" to faces with four or more
	// vertices. Triangles stay excluded either way.
	IncludeNGons bool
}

// Validate returns an error if any enum holds an out-of-range value.
func (c Config) Validate() error {
	if c.PlaneSource < PlaneCursorNearest || c.PlaneSource > PlaneBestFit {
		return errors.Errorf("invalid plane source %d", c.PlaneSource)
	}
	if c.Anchor < AnchorCursor || c.Anchor > AnchorConnected {
		return errors.Errorf("invalid anchor %d", c.Anchor)
	}
	if c.Mode < ModeGrouped || c.Mode > ModeIndividual {
		return errors.Errorf("invalid iteration mode %d", c.Mode)
	}
	if c.PlaneSource == PlaneBestFit && c.Mode == ModeIndividual {
		return errors.New("best-fit plane requires grouped iteration")
	}
	return nil
}
