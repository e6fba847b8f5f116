package layout

import "github.com/go-gl/mathgl/mgl64"

// Transform is one computed destination for an item: where it sits and which
// way it faces. Rotation is XYZ Euler angles in radians.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Vec3
}

// Formation names one of the four target arrangements.
type Formation string

const (
	FormationTable  Formation = "table"
	FormationSphere Formation = "sphere"
	FormationHelix  Formation = "helix"
	FormationGrid   Formation = "grid"
)

// Formations lists all formations in presentation order.
func Formations() []Formation {
	return []Formation{FormationTable, FormationSphere, FormationHelix, FormationGrid}
}

// Valid reports whether f names a known formation.
func (f Formation) Valid() bool {
	switch f {
	case FormationTable, FormationSphere, FormationHelix, FormationGrid:
		return true
	}
	return false
}

// Set holds the four target sequences computed for one item count. A Set is
// immutable once built; slot i of every formation corresponds to item i.
type Set struct {
	count   int
	targets map[Formation][]Transform
}

// Compute builds all four formation target sets for n items. The sets are
// always computed together so none can be stale relative to the others.
func Compute(n int) *Set {
	if n < 0 {
		n = 0
	}
	return &Set{
		count: n,
		targets: map[Formation][]Transform{
			FormationTable:  Table(n),
			FormationSphere: Sphere(n),
			FormationHelix:  Helix(n),
			FormationGrid:   Grid(n),
		},
	}
}

// Count returns the item count the set was computed for.
func (s *Set) Count() int { return s.count }

// Targets returns the target sequence for f, or nil for an unknown formation.
// Callers must treat the slice as read-only.
func (s *Set) Targets(f Formation) []Transform { return s.targets[f] }
