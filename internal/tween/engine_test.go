package tween_test

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/morph/internal/layout"
	"github.com/san-kum/morph/internal/scene"
	"github.com/san-kum/morph/internal/tween"
)

var _ = Describe("Engine", func() {
	var (
		engine *tween.Engine
		arena  *scene.Arena
		items  []*scene.Item
		epoch  time.Time
	)

	target := func(x, y, z float64) []layout.Transform {
		return []layout.Transform{{Position: mgl64.Vec3{x, y, z}}}
	}

	BeforeEach(func() {
		engine = tween.NewEngine()
		arena = scene.NewArena()
		arena.Populate([]any{"a", "b", "c"}, nil)
		items = arena.Items()
		epoch = time.Unix(1000, 0)
	})

	Describe("Morph", func() {
		It("is a no-op with no items", func() {
			engine.Morph(nil, target(1, 2, 3), time.Second)
			Expect(engine.Active()).To(BeZero())
		})

		It("is a no-op with no targets", func() {
			before := items[0].Position
			engine.Morph(items, nil, time.Second)
			Expect(engine.Active()).To(BeZero())
			engine.Tick(epoch)
			Expect(items[0].Position).To(Equal(before))
		})

		It("starts one position and one rotation transition per item", func() {
			engine.Morph(items, layout.Table(3), time.Second)
			Expect(engine.Active()).To(Equal(6))
		})

		It("is bounded by the shorter of items and targets", func() {
			engine.Morph(items, target(5, 0, 0), time.Second)
			Expect(engine.Active()).To(Equal(2))

			engine.Tick(epoch)
			engine.Tick(epoch.Add(2 * time.Second))
			Expect(items[1].Position).To(Equal(mgl64.Vec3{}), "extra items stay put")
			Expect(items[2].Position).To(Equal(mgl64.Vec3{}))
		})

		It("falls back to the default duration", func() {
			engine.Morph(items[:1], target(10, 0, 0), 0)
			engine.Tick(epoch)
			engine.Tick(epoch.Add(tween.DefaultDuration - time.Millisecond))
			Expect(items[0].Position.X()).To(BeNumerically("<", 10))
			engine.Tick(epoch.Add(tween.DefaultDuration))
			Expect(items[0].Position.X()).To(Equal(10.0))
		})
	})

	Describe("Tick", func() {
		It("holds the start value at the first tick", func() {
			items[0].Position = mgl64.Vec3{1, 1, 1}
			engine.Morph(items[:1], target(9, 9, 9), time.Second)
			engine.Tick(epoch)
			Expect(items[0].Position).To(Equal(mgl64.Vec3{1, 1, 1}))
		})

		It("reaches the halfway point at half duration", func() {
			engine.Morph(items[:1], target(100, -40, 8), time.Second)
			engine.Tick(epoch)
			engine.Tick(epoch.Add(500 * time.Millisecond))
			Expect(items[0].Position.X()).To(BeNumerically("~", 50, 1e-9))
			Expect(items[0].Position.Y()).To(BeNumerically("~", -20, 1e-9))
			Expect(items[0].Position.Z()).To(BeNumerically("~", 4, 1e-9))
		})

		It("eases slowly near both ends", func() {
			engine.Morph(items[:1], target(100, 0, 0), time.Second)
			engine.Tick(epoch)
			engine.Tick(epoch.Add(100 * time.Millisecond))
			Expect(items[0].Position.X()).To(BeNumerically("<", 10), "slow start")

			engine.Tick(epoch.Add(900 * time.Millisecond))
			Expect(items[0].Position.X()).To(BeNumerically(">", 90), "slow end")
		})

		It("snaps exactly onto the target at completion", func() {
			engine.Morph(items[:1], target(123.456, -7, 0.001), time.Second)
			engine.Tick(epoch)
			engine.Tick(epoch.Add(time.Second))
			Expect(items[0].Position).To(Equal(mgl64.Vec3{123.456, -7, 0.001}))
			Expect(engine.Active()).To(BeZero(), "completed jobs leave the active set")
		})

		It("advances all transitions against the same timestamp", func() {
			engine.Morph(items, layout.Sphere(3), time.Second)
			engine.Tick(epoch)
			engine.Tick(epoch.Add(time.Second))
			for i, tr := range layout.Sphere(3) {
				Expect(items[i].Position).To(Equal(tr.Position))
				Expect(items[i].Rotation).To(Equal(tr.Rotation))
			}
		})
	})

	Describe("cancel on reissue", func() {
		It("keeps at most one transition per item and attribute", func() {
			engine.Morph(items[:1], target(10, 0, 0), time.Second)
			engine.Morph(items[:1], target(20, 0, 0), time.Second)
			Expect(engine.Active()).To(Equal(2), "position and rotation only")
		})

		It("restarts from the live value, not the original start or old target", func() {
			engine.Morph(items[:1], target(100, 0, 0), time.Second)
			engine.Tick(epoch)
			engine.Tick(epoch.Add(300 * time.Millisecond))
			partway := items[0].Position
			Expect(partway.X()).To(BeNumerically(">", 0))
			Expect(partway.X()).To(BeNumerically("<", 100))

			engine.Morph(items[:1], target(-50, 0, 0), time.Second)
			engine.Tick(epoch.Add(300 * time.Millisecond))
			Expect(items[0].Position).To(Equal(partway), "no jump at reissue")

			engine.Tick(epoch.Add(1300 * time.Millisecond))
			Expect(items[0].Position).To(Equal(mgl64.Vec3{-50, 0, 0}), "latest call wins")
		})

		It("cancellation is visible before the next tick", func() {
			engine.Morph(items[:1], target(100, 0, 0), time.Second)
			Expect(engine.Active()).To(Equal(2))
			engine.Morph(items[:1], target(0, 100, 0), time.Hour)
			engine.Tick(epoch)
			engine.Tick(epoch.Add(2 * time.Second))
			Expect(items[0].Position.X()).To(BeNumerically("<", 1), "superseded job stopped driving x")
		})
	})

	Describe("Reset", func() {
		It("drops all jobs without touching transforms", func() {
			engine.Morph(items, layout.Grid(3), time.Second)
			engine.Tick(epoch)
			engine.Tick(epoch.Add(400 * time.Millisecond))
			snapshot := items[0].Position
			engine.Reset()
			Expect(engine.Active()).To(BeZero())
			engine.Tick(epoch.Add(2 * time.Second))
			Expect(items[0].Position).To(Equal(snapshot))
		})
	})
})
