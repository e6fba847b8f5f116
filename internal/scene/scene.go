// Package scene owns the live items being arranged. Items are created once
// per dataset load, in row order, and live in an index-addressed arena; the
// transition engine and the presentation layer both mutate and read the same
// item transforms in place.
package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/morph/internal/layout"
)

// Item is one visual entity. Position and Rotation are the live transform;
// Payload is the item's source row content, never interpreted here.
type Item struct {
	Index    int
	Position mgl64.Vec3
	Rotation mgl64.Vec3
	Payload  any
}

// Arena holds the items for the currently loaded dataset.
type Arena struct {
	items []*Item
}

func NewArena() *Arena {
	return &Arena{items: make([]*Item, 0)}
}

// Populate replaces the arena contents with one item per payload, in order.
// Items are pre-seeded at the matching seed transform so their first
// transition starts from a sensible place instead of the origin; payloads
// beyond the seed length start at the zero transform.
func (a *Arena) Populate(payloads []any, seed []layout.Transform) {
	a.items = make([]*Item, len(payloads))
	for i, p := range payloads {
		it := &Item{Index: i, Payload: p}
		if i < len(seed) {
			it.Position = seed[i].Position
			it.Rotation = seed[i].Rotation
		}
		a.items[i] = it
	}
}

// Items returns the arena's items in index order. The slice is owned by the
// arena; callers mutate the items, not the slice.
func (a *Arena) Items() []*Item { return a.items }

func (a *Arena) Len() int { return len(a.items) }

// At returns item i, or nil when out of range.
func (a *Arena) At(i int) *Item {
	if i < 0 || i >= len(a.items) {
		return nil
	}
	return a.items[i]
}

// Reset drops all items, as on dataset unload.
func (a *Arena) Reset() { a.items = a.items[:0] }
