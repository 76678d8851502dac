// Package model bakes parsed meshes into render buffers.
package model

import "github.com/go-gl/mathgl/mgl32"

// Attribute flags which corner attributes a render buffer carries.
type Attribute uint8

const (
	AttrNormal Attribute = 1 << iota
	AttrPosition
	AttrTexCoord
)

// Has reports whether a contains attr.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// Corner is one submitted triangle corner.
// Absent attributes are left zero and their Has flag is false.
type Corner struct {
	Normal   mgl32.Vec3
	Position mgl32.Vec3
	TexCoord mgl32.Vec3 // (u, v, 0)

	HasNormal   bool
	HasPosition bool
	HasTexCoord bool
}

// Bounds holds the axis-aligned bounding box of the buffer.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Center returns the midpoint of the box.
func (b Bounds) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the extent of the box along each axis.
func (b Bounds) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// Stride is the number of floats per interleaved corner: normal, position, texcoord.
const Stride = 9

// DefaultNormal is the normal in effect before any corner supplies one.
var DefaultNormal = mgl32.Vec3{0, 0, 1}

// Float offsets of each attribute inside an interleaved corner.
const (
	NormalOffset   = 0
	PositionOffset = 3
	TexCoordOffset = 6
)
