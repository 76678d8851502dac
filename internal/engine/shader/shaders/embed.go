// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// MeshVertexShader lights each vertex with the point-light rig.
//
//go:embed mesh.vert
var MeshVertexShader string

// MeshFragmentShader writes the interpolated vertex colour.
//
//go:embed mesh.frag
var MeshFragmentShader string
