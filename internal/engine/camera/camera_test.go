package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestProjection_Aspect(t *testing.T) {
	p := NewProjection(60, 0.1, 20, 1600, 900)

	if !mgl32.FloatEqual(p.Aspect(), 1600.0/900.0) {
		t.Errorf("expected aspect %f, got %f", 1600.0/900.0, p.Aspect())
	}

	p.Resize(800, 800)
	if p.Aspect() != 1 {
		t.Errorf("expected aspect 1 after resize, got %f", p.Aspect())
	}
}

func TestProjection_ZeroHeight(t *testing.T) {
	p := NewProjection(60, 0.1, 20, 640, 0)
	if p.Aspect() != 640 {
		t.Errorf("expected clamped aspect 640, got %f", p.Aspect())
	}
}

func TestProjection_Matrix(t *testing.T) {
	p := NewProjection(60, 0.1, 20, 1000, 1000)
	m := p.Matrix()

	want := mgl32.Perspective(mgl32.DegToRad(60), 1, 0.1, 20)
	if !m.ApproxEqual(want) {
		t.Errorf("projection: got %v, want %v", m, want)
	}

	// A point on the near plane maps to NDC depth -1.
	ndc := mgl32.TransformCoordinate(mgl32.Vec3{0, 0, -0.1}, m)
	if !mgl32.FloatEqualThreshold(ndc.Z(), -1, 1e-4) {
		t.Errorf("near plane depth: got %f, want -1", ndc.Z())
	}
}
