// Package renderer draws a baked render buffer with OpenGL.
package renderer

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/objview/internal/engine/camera"
	"github.com/Faultbox/objview/internal/engine/lighting"
	"github.com/Faultbox/objview/internal/engine/model"
	"github.com/Faultbox/objview/internal/engine/shader"
	"github.com/Faultbox/objview/internal/engine/shader/shaders"
	"github.com/Faultbox/objview/internal/logger"
)

// Vertex attribute locations, matching mesh.vert.
const (
	normalLocation   = 0
	positionLocation = 1
	texCoordLocation = 2
)

// ErrAlreadyUploaded is returned when Upload is called twice.
var ErrAlreadyUploaded = errors.New("render buffer already uploaded")

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int

	FovY float32 // degrees
	Near float32
	Far  float32
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config     Config
	projection *camera.Projection

	program  uint32
	uniforms uniforms

	vao         uint32
	vbo         uint32
	vertexCount int32
	uploaded    bool
}

type uniforms struct {
	modelView    int32
	projection   int32
	normalMatrix int32

	lightCount    int32
	lightEnabled  int32
	lightPosition int32
	lightAmbient  int32
	lightDiffuse  int32
	lightSpecular int32
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:     cfg,
		projection: camera.NewProjection(cfg.FovY, cfg.Near, cfg.Far, cfg.Width, cfg.Height),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0, 0, 0, 1)

	var err error
	r.program, err = shader.CompileProgram(shaders.MeshVertexShader, shaders.MeshFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create mesh shader: %w", err)
	}
	r.lookupUniforms()

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)

	r.Resize(cfg.Width, cfg.Height)

	logger.Debug("renderer created", zap.Uint32("program", r.program))
	return r, nil
}

func (r *Renderer) lookupUniforms() {
	r.uniforms = uniforms{
		modelView:     shader.Uniform(r.program, "uModelView"),
		projection:    shader.Uniform(r.program, "uProjection"),
		normalMatrix:  shader.Uniform(r.program, "uNormalMatrix"),
		lightCount:    shader.Uniform(r.program, "uLightCount"),
		lightEnabled:  shader.Uniform(r.program, "uLightEnabled"),
		lightPosition: shader.Uniform(r.program, "uLightPosition"),
		lightAmbient:  shader.Uniform(r.program, "uLightAmbient"),
		lightDiffuse:  shader.Uniform(r.program, "uLightDiffuse"),
		lightSpecular: shader.Uniform(r.program, "uLightSpecular"),
	}
}

// Upload copies buf into a static vertex buffer. It may be called once;
// the uploaded data is drawn unchanged by every later Draw.
func (r *Renderer) Upload(buf *model.RenderBuffer) error {
	if r.uploaded {
		return ErrAlreadyUploaded
	}

	data := buf.Interleave()
	attrs := buf.Attributes()

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	if len(data) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	}

	stride := int32(model.Stride * 4)
	bindAttribute(normalLocation, model.NormalOffset, stride, attrs.Has(model.AttrNormal), model.DefaultNormal)
	bindAttribute(positionLocation, model.PositionOffset, stride, attrs.Has(model.AttrPosition), [3]float32{})
	bindAttribute(texCoordLocation, model.TexCoordOffset, stride, attrs.Has(model.AttrTexCoord), [3]float32{})

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.vertexCount = int32(buf.Len())
	r.uploaded = true

	logger.Debug("render buffer uploaded",
		zap.Int("corners", buf.Len()),
		zap.Bool("normals", attrs.Has(model.AttrNormal)),
		zap.Bool("texcoords", attrs.Has(model.AttrTexCoord)),
	)
	return nil
}

// bindAttribute enables a vertex array for present attributes. Absent ones
// read the constant value instead.
func bindAttribute(location uint32, offset int, stride int32, present bool, constant [3]float32) {
	if present {
		gl.VertexAttribPointerWithOffset(location, 3, gl.FLOAT, false, stride, uintptr(offset*4))
		gl.EnableVertexAttribArray(location)
		return
	}
	gl.DisableVertexAttribArray(location)
	gl.VertexAttrib3f(location, constant[0], constant[1], constant[2])
}

// Resize updates the viewport and the projection aspect.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	r.projection.Resize(width, height)
	gl.Viewport(0, 0, int32(width), int32(height))

	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Float32("aspect", r.projection.Aspect()),
	)
}

// Draw clears the frame and submits the uploaded buffer with the given
// model transform and light rig.
func (r *Renderer) Draw(modelView mgl32.Mat4, rig *lighting.Rig) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(r.program)

	projection := r.projection.Matrix()
	normalMatrix := modelView.Mat3().Inv().Transpose()
	gl.UniformMatrix4fv(r.uniforms.modelView, 1, false, &modelView[0])
	gl.UniformMatrix4fv(r.uniforms.projection, 1, false, &projection[0])
	gl.UniformMatrix3fv(r.uniforms.normalMatrix, 1, false, &normalMatrix[0])

	r.uploadLights(rig)

	if r.vertexCount > 0 {
		gl.BindVertexArray(r.vao)
		gl.DrawArrays(gl.TRIANGLES, 0, r.vertexCount)
		gl.BindVertexArray(0)
	}
}

func (r *Renderer) uploadLights(rig *lighting.Rig) {
	positions := rig.GetPositions()
	ambients := rig.GetAmbients()
	diffuses := rig.GetDiffuses()
	speculars := rig.GetSpeculars()
	enabled := rig.GetEnabled()

	gl.Uniform1i(r.uniforms.lightCount, int32(rig.Count()))
	gl.Uniform1iv(r.uniforms.lightEnabled, lighting.MaxLights, &enabled[0])
	gl.Uniform3fv(r.uniforms.lightPosition, lighting.MaxLights, &positions[0])
	gl.Uniform3fv(r.uniforms.lightAmbient, lighting.MaxLights, &ambients[0])
	gl.Uniform3fv(r.uniforms.lightDiffuse, lighting.MaxLights, &diffuses[0])
	gl.Uniform3fv(r.uniforms.lightSpecular, lighting.MaxLights, &speculars[0])
}

// ReadPixels returns the current back buffer as RGBA, bottom row first.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	width, height := r.config.Width, r.config.Height
	pixels := make([]byte, width*height*4)
	if len(pixels) == 0 {
		return pixels, width, height
	}

	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadBuffer(gl.BACK)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, width, height
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}
