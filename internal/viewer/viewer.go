// Package viewer runs the interactive mesh viewer loop.
package viewer

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/objview/internal/config"
	"github.com/Faultbox/objview/internal/engine/debug"
	"github.com/Faultbox/objview/internal/engine/input"
	"github.com/Faultbox/objview/internal/engine/lighting"
	"github.com/Faultbox/objview/internal/engine/model"
	"github.com/Faultbox/objview/internal/engine/view"
	"github.com/Faultbox/objview/internal/logger"
	"github.com/Faultbox/objview/pkg/formats"
)

// Viewer owns the mesh, the view state and the drawing surface.
type Viewer struct {
	config  *config.Config
	running bool

	mesh   *formats.OBJ
	buffer *model.RenderBuffer

	state *view.State
	drag  view.Drag
	rig   *lighting.Rig

	surface surface

	screenshots       *debug.ScreenshotCapture
	screenshotPending bool
}

// LoadMesh parses the configured mesh file.
func LoadMesh(cfg config.MeshConfig) (*formats.OBJ, error) {
	layout, err := formats.ParseOBJCornerLayout(cfg.CornerLayout)
	if err != nil {
		return nil, err
	}

	obj, err := formats.ParseOBJFile(cfg.Path, formats.OBJOptions{Layout: layout})
	if err != nil {
		return nil, err
	}

	if obj.Truncated {
		logger.Warn("mesh scan stopped at a non-numeric value",
			zap.String("path", cfg.Path),
			zap.Int("faces", len(obj.Faces)),
		)
	}
	return obj, nil
}

// New loads the mesh and then opens the window. Nothing is created when the
// mesh cannot be read.
func New(cfg *config.Config) (*Viewer, error) {
	obj, err := LoadMesh(cfg.Mesh)
	if err != nil {
		return nil, fmt.Errorf("failed to load mesh: %w", err)
	}

	buf := model.Build(obj)
	logger.Info("mesh loaded",
		zap.String("path", cfg.Mesh.Path),
		zap.Stringer("layout", layoutOf(cfg.Mesh)),
		zap.Int("positions", len(obj.Positions)),
		zap.Int("normals", len(obj.Normals)),
		zap.Int("texcoords", len(obj.TexCoords)),
		zap.Int("triangles", buf.TriangleCount()),
	)

	pos := cfg.View.Position
	v := &Viewer{
		config: cfg,
		mesh:   obj,
		buffer: buf,
		state:  view.New(pos[0], pos[1], pos[2]),
		rig:    lighting.NewRig(lightsFromConfig(cfg.Lights)),

		screenshots: debug.NewScreenshotCapture(cfg.Screenshot.Dir, cfg.Screenshot.Prefix),
	}

	v.surface, err = newSurface(cfg, buf)
	if err != nil {
		return nil, err
	}

	v.state.ApplyLights(v.rig)
	return v, nil
}

func layoutOf(cfg config.MeshConfig) formats.OBJCornerLayout {
	layout, _ := formats.ParseOBJCornerLayout(cfg.CornerLayout)
	return layout
}

func lightsFromConfig(lights []config.LightConfig) []lighting.PointLight {
	if len(lights) == 0 {
		return lighting.DefaultLights()
	}
	result := make([]lighting.PointLight, len(lights))
	for i, l := range lights {
		result[i] = lighting.PointLight{
			Position: l.Position,
			Ambient:  l.Ambient,
			Diffuse:  l.Diffuse,
			Specular: l.Specular,
		}
	}
	return result
}

// Run draws the first frame and then redraws only after input that changes
// what is shown. It returns when the window is closed or Escape is pressed.
func (v *Viewer) Run() error {
	v.running = true
	v.present()

	logger.Info("entering event loop")
	for v.running {
		redraw := false
		for _, event := range v.surface.Wait() {
			if v.handle(event) {
				redraw = true
			}
		}
		if redraw && v.running {
			v.present()
		}
	}
	return nil
}

// handle dispatches one event and reports whether a redraw is needed.
func (v *Viewer) handle(event input.Event) bool {
	switch event.Type {
	case input.EventQuit:
		v.running = false

	case input.EventKeyDown:
		if event.Key == sdl.SCANCODE_ESCAPE {
			v.running = false
		}

	case input.EventWindowResize:
		v.surface.Resize(event.Width, event.Height)
		return true

	case input.EventExpose:
		return true

	case input.EventText:
		if event.Char == 'p' {
			v.screenshotPending = true
			return true
		}
		redraw := v.state.HandleKey(event.Char, v.rig)
		if event.Char >= '1' && event.Char <= '3' {
			idx := int(event.Char - '1')
			logger.Debug("light toggled", zap.Int("light", idx), zap.Bool("enabled", v.state.Lights[idx]))
		}
		return redraw

	case input.EventMouseDown:
		if event.Button == sdl.BUTTON_LEFT {
			v.drag.Press(event.MouseX, event.MouseY)
		}

	case input.EventMouseUp:
		if event.Button == sdl.BUTTON_LEFT {
			v.drag.Release()
		}

	case input.EventMouseMove:
		return v.drag.Motion(event.MouseX, event.MouseY, v.state)
	}
	return false
}

// present draws the current state and swaps buffers. A pending screenshot
// is read back before the swap.
func (v *Viewer) present() {
	v.surface.Draw(v.state.ModelMatrix(), v.rig)
	if v.screenshotPending {
		v.screenshotPending = false
		v.capture()
	}
	v.surface.Present()
}

func (v *Viewer) capture() {
	pixels, width, height := v.surface.ReadPixels()
	path, err := v.screenshots.CaptureFromPixels(pixels, width, height)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// State returns the current view state.
func (v *Viewer) State() *view.State {
	return v.state
}

// Close releases the window and GL resources.
func (v *Viewer) Close() {
	logger.Info("closing viewer")
	if v.surface != nil {
		v.surface.Close()
	}
}
