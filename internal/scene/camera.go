package scene

import (
	"math"

	"driftfield/internal/core"
)

// CameraConfig holds the projection and pointer-follow tuning.
type CameraConfig struct {
	FOV  float64 // vertical field of view in degrees
	Near float64
	Far  float64

	Distance float64 // resting distance from the origin along +Z

	FollowRange float64 // world units the camera drifts at the viewport edge
	FollowDip   float64 // how far the camera dips toward the origin in the corners
	FollowXY    float64 // per-event easing factor for X and Y
	FollowZ     float64 // per-event easing factor for Z
}

// DefaultCameraConfig returns the standard camera tuning.
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		FOV:         75,
		Near:        0.1,
		Far:         2000,
		Distance:    750,
		FollowRange: 200,
		FollowDip:   150,
		FollowXY:    0.05,
		FollowZ:     0.02,
	}
}

// Camera is a perspective camera that always looks at Target.
type Camera struct {
	cfg    CameraConfig
	size   core.Size
	Pos    core.Vec3
	Target core.Vec3

	// pointer in normalised device coordinates
	mx, my float64
}

// NewCamera places a camera at its resting position for the given viewport.
func NewCamera(cfg CameraConfig, size core.Size) *Camera {
	return &Camera{cfg: cfg, size: size, Pos: core.Vec3{Z: cfg.Distance}}
}

// Config returns the camera tuning.
func (c *Camera) Config() CameraConfig { return c.cfg }

// Size returns the viewport the camera projects onto.
func (c *Camera) Size() core.Size { return c.size }

// Resize updates the viewport and therefore the aspect ratio.
func (c *Camera) Resize(size core.Size) { c.size = size }

// Aspect returns the viewport aspect ratio.
func (c *Camera) Aspect() float64 { return c.size.Aspect() }

// Pointer returns the last pointer position in normalised device coordinates.
func (c *Camera) Pointer() (float64, float64) { return c.mx, c.my }

// PointerNDC converts viewport pixel coordinates to normalised device
// coordinates, with +Y up.
func PointerNDC(size core.Size, x, y float64) (float64, float64) {
	if size.W <= 0 || size.H <= 0 {
		return 0, 0
	}
	return x/float64(size.W)*2 - 1, -(y/float64(size.H))*2 + 1
}

// Follow eases the camera toward the pointer. When the pointer is outside
// the hero section the pointer resets to the centre and the camera stays put.
func (c *Camera) Follow(mx, my float64, inHome bool) {
	if !inHome {
		c.mx, c.my = 0, 0
		return
	}
	c.mx, c.my = mx, my

	tx := mx * c.cfg.FollowRange
	ty := my * c.cfg.FollowRange
	tz := c.cfg.Distance - math.Abs(mx*my)*c.cfg.FollowDip

	c.Pos.X += (tx - c.Pos.X) * c.cfg.FollowXY
	c.Pos.Y += (ty - c.Pos.Y) * c.cfg.FollowXY
	c.Pos.Z += (tz - c.Pos.Z) * c.cfg.FollowZ
	c.Target = core.Vec3{}
}

// basis returns the camera's right, up and forward unit vectors.
func (c *Camera) basis() (right, up, forward core.Vec3) {
	forward = c.Target.Sub(c.Pos).Normalize()
	if forward == (core.Vec3{}) {
		forward = core.Vec3{Z: -1}
	}
	worldUp := core.Vec3{Y: 1}
	right = forward.Cross(worldUp).Normalize()
	if right == (core.Vec3{}) {
		right = core.Vec3{X: 1}
	}
	up = right.Cross(forward)
	return right, up, forward
}

// Projection is a world point mapped to the viewport.
type Projection struct {
	X, Y  float64 // pixels, origin top-left
	Depth float64 // distance along the view direction
}

// Project maps a world point to viewport pixels. ok is false for points
// outside the near/far range.
func (c *Camera) Project(p core.Vec3) (Projection, bool) {
	right, up, forward := c.basis()
	d := p.Sub(c.Pos)
	z := d.Dot(forward)
	if z < c.cfg.Near || z > c.cfg.Far {
		return Projection{}, false
	}
	f := 1 / math.Tan(c.cfg.FOV*math.Pi/360)
	ndcX := d.Dot(right) * f / (c.Aspect() * z)
	ndcY := d.Dot(up) * f / z
	return Projection{
		X:     (ndcX + 1) / 2 * float64(c.size.W),
		Y:     (1 - ndcY) / 2 * float64(c.size.H),
		Depth: z,
	}, true
}

// PointScale returns the on-screen size of a point of the given world size at
// depth, matching size attenuation of a perspective point cloud.
func (c *Camera) PointScale(size, depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	return size * (float64(c.size.H) / 2) / depth
}
