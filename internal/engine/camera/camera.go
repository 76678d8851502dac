// Package camera provides the perspective projection for 3D rendering.
package camera

import "github.com/go-gl/mathgl/mgl32"

// Projection is a perspective frustum that follows the viewport aspect.
type Projection struct {
	FovY float32 // Vertical field of view, degrees
	Near float32
	Far  float32

	width, height int
}

// NewProjection creates a projection for a width x height viewport.
func NewProjection(fovY, near, far float32, width, height int) *Projection {
	p := &Projection{FovY: fovY, Near: near, Far: far}
	p.Resize(width, height)
	return p
}

// Resize updates the viewport size. Non-positive sizes are clamped to 1.
func (p *Projection) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	p.width, p.height = width, height
}

// Aspect returns width / height.
func (p *Projection) Aspect() float32 {
	return float32(p.width) / float32(p.height)
}

// Matrix returns the projection matrix.
func (p *Projection) Matrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(p.FovY), p.Aspect(), p.Near, p.Far)
}
