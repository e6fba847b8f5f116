package layout

import "github.com/go-gl/mathgl/mgl64"

const (
	gridSizeX   = 5
	gridSizeY   = 4
	gridSizeZ   = 10
	gridSpacing = 320.0
)

// Grid stacks n items into a 5x4x10 lattice, filling x fastest, then y,
// then depth. The lattice is centered on the origin on all three axes;
// counts beyond the 200-slot capacity wrap back and overlap rather than
// error. Identity rotation.
func Grid(n int) []Transform {
	out := make([]Transform, n)
	for i := range out {
		gx := float64(i % gridSizeX)
		gy := float64((i / gridSizeX) % gridSizeY)
		gz := float64(i / (gridSizeX * gridSizeY))
		out[i].Position = mgl64.Vec3{
			(gx - (gridSizeX/2.0 - 0.5)) * gridSpacing,
			-(gy - (gridSizeY/2.0 - 0.5)) * gridSpacing,
			(gz - (gridSizeZ/2.0 - 0.5)) * gridSpacing,
		}
	}
	return out
}
