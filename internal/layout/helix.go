package layout

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	helixRadius     = 550.0
	helixTurns      = 10
	helixSeparation = 30.0
)

// Helix winds n items along a double helix: even indices ride one strand,
// odd indices the opposite strand half a turn away. The full stack spans
// n*30 units of height centered on the origin, and every item faces outward
// from the helix axis at its own height.
func Helix(n int) []Transform {
	out := make([]Transform, n)
	for i := range out {
		t := float64(i) / float64(n)
		angle := t * helixTurns * 2 * math.Pi
		if i%2 != 0 {
			angle += math.Pi
		}

		pos := mgl64.Vec3{
			helixRadius * math.Cos(angle),
			(t - 0.5) * float64(n) * helixSeparation,
			helixRadius * math.Sin(angle),
		}
		look := mgl64.Vec3{2 * pos.X(), pos.Y(), 2 * pos.Z()}
		out[i] = Transform{
			Position: pos,
			Rotation: lookAtEuler(pos, look),
		}
	}
	return out
}
