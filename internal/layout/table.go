package layout

import "github.com/go-gl/mathgl/mgl64"

const (
	tableCols     = 20
	tableRows     = 10
	tableSpacingX = 140.0
	tableSpacingY = 180.0
)

// Table arranges n items on a flat 20-column wall, centered on the origin.
// Items face the default forward axis (identity rotation).
func Table(n int) []Transform {
	out := make([]Transform, n)
	for i := range out {
		col := float64(i % tableCols)
		row := float64(i / tableCols)
		out[i].Position = mgl64.Vec3{
			(col - (tableCols/2.0 - 0.5)) * tableSpacingX,
			-(row - (tableRows/2.0 - 0.5)) * tableSpacingY,
			0,
		}
	}
	return out
}
