package layout

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const sphereRadius = 900.0

// Sphere distributes n items evenly over a sphere of radius 900 using a
// Fibonacci-style spiral: the polar angle steps through acos(-1 + 2i/n) and
// the azimuth winds by sqrt(n*pi) per unit of polar angle. Items face
// outward along the radial direction.
func Sphere(n int) []Transform {
	out := make([]Transform, n)
	for i := range out {
		phi := math.Acos(-1 + 2*float64(i)/float64(n))
		theta := math.Sqrt(float64(n)*math.Pi) * phi

		sinPhi := math.Sin(phi)
		pos := mgl64.Vec3{
			sphereRadius * sinPhi * math.Sin(theta),
			sphereRadius * math.Cos(phi),
			sphereRadius * sinPhi * math.Cos(theta),
		}
		out[i] = Transform{
			Position: pos,
			Rotation: lookAtEuler(pos, pos.Mul(2)),
		}
	}
	return out
}
