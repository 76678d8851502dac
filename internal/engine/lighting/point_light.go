// Package lighting provides the fixed point-light rig used by the model shader.
package lighting

// MaxLights is the number of light slots in the shader.
const MaxLights = 8

// PointLight is a positional light with Phong colour terms.
type PointLight struct {
	Position [3]float32 // Eye-space position
	Ambient  [3]float32
	Diffuse  [3]float32
	Specular [3]float32
}

// DefaultLights returns the three stock lights: one above the model and one
// on each side.
func DefaultLights() []PointLight {
	ambient := [3]float32{0.1, 0.1, 0.1}
	specular := [3]float32{1.0, 1.0, 1.0}
	return []PointLight{
		{Position: [3]float32{0, 5, 5}, Ambient: ambient, Diffuse: [3]float32{0.8, 0.8, 0.8}, Specular: specular},
		{Position: [3]float32{-5, 0, 5}, Ambient: ambient, Diffuse: [3]float32{0.5, 0.5, 0.5}, Specular: specular},
		{Position: [3]float32{5, 0, 5}, Ambient: ambient, Diffuse: [3]float32{0.5, 0.5, 0.5}, Specular: specular},
	}
}

// Rig holds the configured lights and their enabled flags.
type Rig struct {
	lights  []PointLight
	enabled []bool
}

// NewRig creates a rig with every light enabled.
// Lights beyond MaxLights are dropped.
func NewRig(lights []PointLight) *Rig {
	if len(lights) > MaxLights {
		lights = lights[:MaxLights]
	}
	r := &Rig{
		lights:  append([]PointLight(nil), lights...),
		enabled: make([]bool, len(lights)),
	}
	for i := range r.enabled {
		r.enabled[i] = true
	}
	return r
}

// Count returns the number of configured lights.
func (r *Rig) Count() int {
	return len(r.lights)
}

// SetLightEnabled turns light i on or off. Unknown slots are ignored.
func (r *Rig) SetLightEnabled(i int, enabled bool) {
	if i < 0 || i >= len(r.enabled) {
		return
	}
	r.enabled[i] = enabled
}

// Enabled reports whether light i is on.
func (r *Rig) Enabled(i int) bool {
	if i < 0 || i >= len(r.enabled) {
		return false
	}
	return r.enabled[i]
}

// GetPositions returns positions as a flat slice for GPU upload.
// Format: [x0, y0, z0, x1, y1, z1, ...], MaxLights entries.
func (r *Rig) GetPositions() []float32 {
	return r.flatten(func(l PointLight) [3]float32 { return l.Position })
}

// GetAmbients returns ambient colours as a flat slice for GPU upload.
func (r *Rig) GetAmbients() []float32 {
	return r.flatten(func(l PointLight) [3]float32 { return l.Ambient })
}

// GetDiffuses returns diffuse colours as a flat slice for GPU upload.
func (r *Rig) GetDiffuses() []float32 {
	return r.flatten(func(l PointLight) [3]float32 { return l.Diffuse })
}

// GetSpeculars returns specular colours as a flat slice for GPU upload.
func (r *Rig) GetSpeculars() []float32 {
	return r.flatten(func(l PointLight) [3]float32 { return l.Specular })
}

// GetEnabled returns 1 for enabled slots and 0 otherwise, MaxLights entries.
func (r *Rig) GetEnabled() []int32 {
	result := make([]int32, MaxLights)
	for i, on := range r.enabled {
		if on {
			result[i] = 1
		}
	}
	return result
}

func (r *Rig) flatten(field func(PointLight) [3]float32) []float32 {
	result := make([]float32, MaxLights*3)
	for i, light := range r.lights {
		v := field(light)
		result[i*3+0] = v[0]
		result[i*3+1] = v[1]
		result[i*3+2] = v[2]
	}
	return result
}
