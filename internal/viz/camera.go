package viz

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	minDistance = 600.0
	maxDistance = 12000.0
	maxPitch    = 1.2

	// worldExtent is the rough radius of the largest formation; it maps
	// world units onto the canvas.
	worldExtent = 1800.0
)

// Camera orbits the origin at a distance. Orbit and zoom inputs move
// spring-smoothed targets, so keyboard steps glide instead of snapping.
type Camera struct {
	yaw, pitch, distance float64

	yawVel, pitchVel, distVel          float64
	targetYaw, targetPitch, targetDist float64

	spring harmonica.Spring
}

func NewCamera(fps int, distance float64) *Camera {
	if distance <= 0 {
		distance = 3000
	}
	return &Camera{
		distance:   distance,
		targetDist: distance,
		spring:     harmonica.NewSpring(harmonica.FPS(fps), 6.0, 0.9),
	}
}

// Orbit nudges the camera target around the origin.
func (c *Camera) Orbit(dYaw, dPitch float64) {
	c.targetYaw += dYaw
	c.targetPitch = mgl64.Clamp(c.targetPitch+dPitch, -maxPitch, maxPitch)
}

// Zoom scales the target distance.
func (c *Camera) Zoom(factor float64) {
	c.targetDist = mgl64.Clamp(c.targetDist*factor, minDistance, maxDistance)
}

// Step advances the springs one frame.
func (c *Camera) Step() {
	c.yaw, c.yawVel = c.spring.Update(c.yaw, c.yawVel, c.targetYaw)
	c.pitch, c.pitchVel = c.spring.Update(c.pitch, c.pitchVel, c.targetPitch)
	c.distance, c.distVel = c.spring.Update(c.distance, c.distVel, c.targetDist)
}

// view rotates a world point into camera space.
func (c *Camera) view(p mgl64.Vec3) mgl64.Vec3 {
	cy, sy := math.Cos(c.yaw), math.Sin(c.yaw)
	p[0], p[2] = p.X()*cy+p.Z()*sy, -p.X()*sy+p.Z()*cy
	cx, sx := math.Cos(c.pitch), math.Sin(c.pitch)
	p[1], p[2] = p.Y()*cx-p.Z()*sx, p.Y()*sx+p.Z()*cx
	return p
}

// Project converts a world point to canvas coordinates. It returns the cell
// position, the depth (distance from the camera along the view axis, larger
// is farther), and whether the point lands on the canvas.
func (c *Camera) Project(p mgl64.Vec3, w, h int) (int, int, float64, bool) {
	v := c.view(p)
	depth := c.distance - v.Z()
	if depth <= 1 {
		return 0, 0, 0, false
	}
	scale := c.distance / depth

	minDim := float64(h * 2) // cells are about twice as tall as wide
	if float64(w) < minDim {
		minDim = float64(w)
	}
	pScale := minDim / (2 * worldExtent) * scale

	x := w/2 + int(math.Round(v.X()*pScale))
	y := h/2 - int(math.Round(v.Y()*pScale/2))
	return x, y, depth, x >= 0 && x < w && y >= 0 && y < h
}
