// Package stage wires the arena, layout sets and transition engine together
// and owns the dataset-ready control flow: load rows, create items, compute
// every formation's targets for the loaded count, then morph between
// formations on demand while an external frame loop ticks the clock.
package stage

import (
	"errors"
	"time"

	"github.com/san-kum/morph/internal/dataset"
	"github.com/san-kum/morph/internal/layout"
	"github.com/san-kum/morph/internal/scene"
	"github.com/san-kum/morph/internal/tween"
)

// ErrUnknownFormation indicates a formation name outside the four layouts.
var ErrUnknownFormation = errors.New("stage: unknown formation")

// Stage coordinates one loaded dataset's items and their transitions. All
// methods must run in a single scheduling domain; typically the UI event
// loop calls everything.
type Stage struct {
	arena    *scene.Arena
	engine   *tween.Engine
	set      *layout.Set
	current  layout.Formation
	duration time.Duration
}

// New creates an empty stage. A non-positive duration selects the engine
// default.
func New(duration time.Duration) *Stage {
	if duration <= 0 {
		duration = tween.DefaultDuration
	}
	return &Stage{
		arena:    scene.NewArena(),
		engine:   tween.NewEngine(),
		current:  layout.FormationTable,
		duration: duration,
	}
}

// Load replaces the stage contents with the rows of src. All four target
// sets are recomputed together for the new count, in-flight transitions are
// cancelled so they can never drive stale items, and the fresh items are
// seeded at the table layout before the initial morph toward it.
func (s *Stage) Load(src *dataset.Source) {
	s.engine.Reset()
	s.set = layout.Compute(src.Count())
	s.arena.Populate(src.Payloads(), s.set.Targets(layout.FormationTable))
	s.current = layout.FormationTable
	s.engine.Morph(s.arena.Items(), s.set.Targets(s.current), s.duration)
}

// Select morphs every item toward formation f. Selecting with nothing
// loaded is a no-op.
func (s *Stage) Select(f layout.Formation) error {
	if !f.Valid() {
		return ErrUnknownFormation
	}
	s.current = f
	if s.set == nil {
		return nil
	}
	s.engine.Morph(s.arena.Items(), s.set.Targets(f), s.duration)
	return nil
}

// Tick advances all active transitions to now.
func (s *Stage) Tick(now time.Time) { s.engine.Tick(now) }

// Items exposes the live items for the presentation layer.
func (s *Stage) Items() []*scene.Item { return s.arena.Items() }

// Count returns the number of loaded items.
func (s *Stage) Count() int { return s.arena.Len() }

// Formation returns the currently selected formation.
func (s *Stage) Formation() layout.Formation { return s.current }

// Targets returns the current count's targets for f, or nil before any
// load. Read-only.
func (s *Stage) Targets(f layout.Formation) []layout.Transform {
	if s.set == nil {
		return nil
	}
	return s.set.Targets(f)
}

// Animating reports the number of in-flight transitions.
func (s *Stage) Animating() int { return s.engine.Active() }

// Reset unloads the dataset: items are destroyed and every transition is
// cancelled.
func (s *Stage) Reset() {
	s.engine.Reset()
	s.arena.Reset()
	s.set = nil
	s.current = layout.FormationTable
}
