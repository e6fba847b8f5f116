package layout

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var worldUp = mgl64.Vec3{0, 1, 0}

// lookAtEuler returns the XYZ Euler angles that rotate an item sitting at
// eye so its +Z axis points toward target, keeping +Y up. When the forward
// direction degenerates (zero length, or parallel to up at the sphere
// poles) the direction is nudged deterministically so the result stays
// finite.
func lookAtEuler(eye, target mgl64.Vec3) mgl64.Vec3 {
	fwd := target.Sub(eye)
	if fwd.LenSqr() == 0 {
		fwd[2] = 1
	}
	fwd = fwd.Normalize()

	right := worldUp.Cross(fwd)
	if right.LenSqr() == 0 {
		// forward is parallel to up; tip it slightly off the pole
		fwd[2] += 1e-4
		fwd = fwd.Normalize()
		right = worldUp.Cross(fwd)
	}
	right = right.Normalize()
	up := fwd.Cross(right)

	// Rotation matrix columns are right, up, fwd. Extract XYZ order Euler
	// angles: ry from the forward column, rx/rz from the remainder unless
	// forward is nearly aligned with world X (gimbal case).
	m11, m12, m13 := right.X(), up.X(), fwd.X()
	m23, m33 := fwd.Y(), fwd.Z()
	m22, m32 := up.Y(), up.Z()

	ry := math.Asin(mgl64.Clamp(m13, -1, 1))
	var rx, rz float64
	if math.Abs(m13) < 0.9999999 {
		rx = math.Atan2(-m23, m33)
		rz = math.Atan2(-m12, m11)
	} else {
		rx = math.Atan2(m32, m22)
	}
	return mgl64.Vec3{rx, ry, rz}
}
