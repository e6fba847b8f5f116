package tween

import (
	"time"

	"github.com/fogleman/ease"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/morph/internal/layout"
	"github.com/san-kum/morph/internal/scene"
)

// DefaultDuration is the transition length used when Morph is given a
// non-positive duration.
const DefaultDuration = 1200 * time.Millisecond

// Curve maps normalized elapsed time in [0,1] to interpolation progress.
type Curve func(float64) float64

// Attribute selects which half of an item's transform a transition drives.
type Attribute uint8

const (
	Position Attribute = iota
	Rotation
)

// Transition interpolates one attribute of one item from the value it had
// when the job was created to a fixed target value.
type Transition struct {
	item     *scene.Item
	attr     Attribute
	from, to mgl64.Vec3
	duration time.Duration
	started  time.Time
	running  bool
}

type jobKey struct {
	item *scene.Item
	attr Attribute
}

// Engine owns the active transitions. All methods must be called from one
// scheduling domain; the engine holds no locks.
type Engine struct {
	active map[jobKey]*Transition
	curve  Curve
}

func NewEngine() *Engine {
	return &Engine{
		active: make(map[jobKey]*Transition),
		curve:  ease.InOutExpo,
	}
}

// Morph starts transitions moving every item toward its index-aligned
// target. Empty items or targets make the call a no-op; otherwise the
// shorter of the two lengths bounds the operation. Any transition already
// driving an affected item's position or rotation is cancelled before its
// replacement starts, and the replacement begins from the item's live
// transform.
func (e *Engine) Morph(items []*scene.Item, targets []layout.Transform, d time.Duration) {
	if len(items) == 0 || len(targets) == 0 {
		return
	}
	if d <= 0 {
		d = DefaultDuration
	}

	n := len(items)
	if len(targets) < n {
		n = len(targets)
	}
	for i := 0; i < n; i++ {
		it := items[i]
		if it == nil {
			continue
		}
		e.start(it, Position, it.Position, targets[i].Position, d)
		e.start(it, Rotation, it.Rotation, targets[i].Rotation, d)
	}
}

// start registers a transition, superseding any active job on the same
// item and attribute.
func (e *Engine) start(it *scene.Item, attr Attribute, from, to mgl64.Vec3, d time.Duration) {
	e.active[jobKey{it, attr}] = &Transition{
		item:     it,
		attr:     attr,
		from:     from,
		to:       to,
		duration: d,
	}
}

// Tick advances every active transition to the given timestamp and writes
// the interpolated values into the items. Transitions that reach their
// duration snap exactly onto the target and are removed. The cost is
// O(active transitions) and the call never blocks.
func (e *Engine) Tick(now time.Time) {
	for k, tr := range e.active {
		if !tr.running {
			tr.running = true
			tr.started = now
		}
		elapsed := now.Sub(tr.started)
		if elapsed >= tr.duration {
			tr.apply(tr.to)
			delete(e.active, k)
			continue
		}
		frac := float64(elapsed) / float64(tr.duration)
		if frac < 0 {
			frac = 0
		}
		eased := e.curve(frac)
		tr.apply(tr.from.Add(tr.to.Sub(tr.from).Mul(eased)))
	}
}

func (t *Transition) apply(v mgl64.Vec3) {
	switch t.attr {
	case Position:
		t.item.Position = v
	case Rotation:
		t.item.Rotation = v
	}
}

// Active reports the number of in-flight transitions.
func (e *Engine) Active() int { return len(e.active) }

// Reset cancels every active transition without touching item transforms,
// as on dataset unload.
func (e *Engine) Reset() {
	e.active = make(map[jobKey]*Transition)
}
