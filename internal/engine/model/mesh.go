package model

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/objview/pkg/formats"
)

// RenderBuffer is the flattened corner sequence of a mesh.
// It is built once and never modified afterwards.
type RenderBuffer struct {
	corners []Corner
	attrs   Attribute
	bounds  Bounds
}

// Build bakes every face corner of obj into a render buffer, in face order.
// An attribute is resolved only when its container is non-empty; an index
// outside the container omits the attribute for that corner.
func Build(obj *formats.OBJ) *RenderBuffer {
	b := &RenderBuffer{
		corners: make([]Corner, 0, len(obj.Faces)*3),
		bounds: Bounds{
			Min: mgl32.Vec3{1e10, 1e10, 1e10},
			Max: mgl32.Vec3{-1e10, -1e10, -1e10},
		},
	}

	for _, face := range obj.Faces {
		for i := 0; i < 3; i++ {
			var c Corner

			if len(obj.Normals) > 0 {
				if n, ok := lookup(obj.Normals, face.Normals[i]); ok {
					c.Normal, c.HasNormal = n, true
					b.attrs |= AttrNormal
				}
			}
			if len(obj.Positions) > 0 {
				if p, ok := lookup(obj.Positions, face.Positions[i]); ok {
					c.Position, c.HasPosition = p, true
					b.attrs |= AttrPosition
					updateBounds(&b.bounds, p)
				}
			}
			if len(obj.TexCoords) > 0 {
				if t, ok := lookup(obj.TexCoords, face.TexCoords[i]); ok {
					c.TexCoord, c.HasTexCoord = t.Vec3(0), true
					b.attrs |= AttrTexCoord
				}
			}

			b.corners = append(b.corners, c)
		}
	}

	if !b.attrs.Has(AttrPosition) {
		b.bounds = Bounds{}
	}
	return b
}

func lookup[T any](items []T, idx int) (T, bool) {
	if idx < 0 || idx >= len(items) {
		var zero T
		return zero, false
	}
	return items[idx], true
}

// Len returns the number of corners.
func (b *RenderBuffer) Len() int {
	return len(b.corners)
}

// TriangleCount returns the number of triangles.
func (b *RenderBuffer) TriangleCount() int {
	return len(b.corners) / 3
}

// Corner returns the i-th corner.
func (b *RenderBuffer) Corner(i int) Corner {
	return b.corners[i]
}

// Attributes returns the attributes present on at least one corner.
func (b *RenderBuffer) Attributes() Attribute {
	return b.attrs
}

// Bounds returns the box around all resolved positions.
func (b *RenderBuffer) Bounds() Bounds {
	return b.bounds
}

// Interleave flattens the buffer for GPU upload, Stride floats per corner.
// A corner without a normal reuses the last normal written, starting from
// DefaultNormal. Other absent attributes are written as zeroes.
func (b *RenderBuffer) Interleave() []float32 {
	data := make([]float32, 0, len(b.corners)*Stride)
	normal := DefaultNormal
	for _, c := range b.corners {
		if c.HasNormal {
			normal = c.Normal
		}
		data = append(data, normal[:]...)
		data = append(data, c.Position[:]...)
		data = append(data, c.TexCoord[:]...)
	}
	return data
}

func updateBounds(b *Bounds, p mgl32.Vec3) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}
