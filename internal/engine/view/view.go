// Package view holds the user-controlled model transform and the input
// handlers that mutate it.
package view

import "github.com/go-gl/mathgl/mgl32"

// Input step sizes.
const (
	RotateStep    float32 = 5.0 // degrees per key press
	ScaleStep     float32 = 1.1 // factor per key press
	TranslateStep float32 = 0.1 // units per key press
	DragFactor    float32 = 0.3 // degrees per pixel
)

// LightCount is the number of toggleable lights.
const LightCount = 3

// LightSwitch applies a light's enabled state to the renderer.
type LightSwitch interface {
	SetLightEnabled(index int, enabled bool)
}

// State is the model transform and light flags.
// Angles are in degrees.
type State struct {
	AngleX, AngleY, AngleZ float32
	ScaleX, ScaleY, ScaleZ float32
	PosX, PosY, PosZ       float32

	Lights [LightCount]bool

	initial [3]float32
}

// New returns a state with unit scale, no rotation, every light enabled and
// the model placed at (x, y, z).
func New(x, y, z float32) *State {
	s := &State{initial: [3]float32{x, y, z}}
	s.Reset()
	return s
}

// Reset restores the initial transform and turns every light back on.
func (s *State) Reset() {
	s.AngleX, s.AngleY, s.AngleZ = 0, 0, 0
	s.ScaleX, s.ScaleY, s.ScaleZ = 1, 1, 1
	s.PosX, s.PosY, s.PosZ = s.initial[0], s.initial[1], s.initial[2]
	for i := range s.Lights {
		s.Lights[i] = true
	}
}

// ModelMatrix composes translate, scale, then rotations about X, Y and Z.
func (s *State) ModelMatrix() mgl32.Mat4 {
	m := mgl32.Ident4()
	m = m.Mul4(mgl32.Translate3D(s.PosX, s.PosY, s.PosZ))
	m = m.Mul4(mgl32.Scale3D(s.ScaleX, s.ScaleY, s.ScaleZ))
	m = m.Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(s.AngleX)))
	m = m.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(s.AngleY)))
	m = m.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(s.AngleZ)))
	return m
}

// ToggleLight flips light i and applies the new state through lights.
func (s *State) ToggleLight(i int, lights LightSwitch) {
	if i < 0 || i >= LightCount {
		return
	}
	s.Lights[i] = !s.Lights[i]
	if lights != nil {
		lights.SetLightEnabled(i, s.Lights[i])
	}
}

// ApplyLights pushes every light flag through lights.
func (s *State) ApplyLights(lights LightSwitch) {
	for i, on := range s.Lights {
		lights.SetLightEnabled(i, on)
	}
}

// HandleKey applies a case-sensitive key binding. It reports whether the
// view should be redrawn; every key requests a redraw.
func (s *State) HandleKey(key rune, lights LightSwitch) bool {
	switch key {
	case 'x':
		s.AngleX += RotateStep
	case 'X':
		s.AngleX -= RotateStep
	case 'y':
		s.AngleY += RotateStep
	case 'Y':
		s.AngleY -= RotateStep
	case 'z':
		s.AngleZ += RotateStep
	case 'Z':
		s.AngleZ -= RotateStep
	case '+':
		s.ScaleX *= ScaleStep
		s.ScaleY *= ScaleStep
		s.ScaleZ *= ScaleStep
	case '-':
		s.ScaleX /= ScaleStep
		s.ScaleY /= ScaleStep
		s.ScaleZ /= ScaleStep
	case 'w':
		s.PosY += TranslateStep
	case 's':
		s.PosY -= TranslateStep
	case 'a':
		s.PosX -= TranslateStep
	case 'd':
		s.PosX += TranslateStep
	case '1', '2', '3':
		s.ToggleLight(int(key-'1'), lights)
	case 'r':
		s.Reset()
		if lights != nil {
			s.ApplyLights(lights)
		}
	}
	return true
}
