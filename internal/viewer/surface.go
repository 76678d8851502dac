package viewer

import (
	"fmt"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/objview/internal/config"
	"github.com/Faultbox/objview/internal/engine/input"
	"github.com/Faultbox/objview/internal/engine/lighting"
	"github.com/Faultbox/objview/internal/engine/model"
	"github.com/Faultbox/objview/internal/engine/renderer"
	"github.com/Faultbox/objview/internal/engine/window"
)

// surface is the windowing and drawing collaborator of the loop.
type surface interface {
	// Wait blocks for the next batch of input events.
	Wait() []input.Event
	Resize(width, height int)
	Draw(modelView mgl32.Mat4, rig *lighting.Rig)
	// ReadPixels returns the drawn frame as RGBA, bottom row first.
	ReadPixels() ([]byte, int, int)
	Present()
	Close()
}

// newSurface opens the window, creates the renderer and uploads buf.
var newSurface = openGLSurface

type glSurface struct {
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
}

func openGLSurface(cfg *config.Config, buf *model.RenderBuffer) (surface, error) {
	win, err := window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	win.SetTitle(fmt.Sprintf("%s - %s", cfg.Window.Title, filepath.Base(cfg.Mesh.Path)))

	// Create renderer (AFTER window, since OpenGL context must exist)
	width, height := win.GetDrawableSize()
	r, err := renderer.New(renderer.Config{
		Width:  width,
		Height: height,
		FovY:   cfg.Projection.FovY,
		Near:   cfg.Projection.Near,
		Far:    cfg.Projection.Far,
	})
	if err != nil {
		win.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	if err := r.Upload(buf); err != nil {
		r.Close()
		win.Close()
		return nil, fmt.Errorf("failed to upload mesh: %w", err)
	}

	return &glSurface{
		window:   win,
		renderer: r,
		input:    input.New(),
	}, nil
}

func (s *glSurface) Wait() []input.Event {
	return s.input.Wait()
}

// Resize ignores the reported window size and uses the drawable size,
// which differs on high-DPI displays.
func (s *glSurface) Resize(_, _ int) {
	s.renderer.Resize(s.window.GetDrawableSize())
}

func (s *glSurface) Draw(modelView mgl32.Mat4, rig *lighting.Rig) {
	s.renderer.Draw(modelView, rig)
}

func (s *glSurface) ReadPixels() ([]byte, int, int) {
	return s.renderer.ReadPixels()
}

func (s *glSurface) Present() {
	s.window.SwapBuffers()
}

func (s *glSurface) Close() {
	s.renderer.Close()
	s.window.Close()
}
