package formats

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const testTriangleOBJ = `# single triangle
v 0.0 0.0 0.0
v 1.0 0.0 0.0
v 0.0 1.0 0.0
vn 0.0 0.0 1.0
vn 0.0 0.0 1.0
vn 0.0 0.0 1.0
vt 0.0 0.0
vt 1.0 0.0
vt 0.0 1.0
f 1/1/1 2/2/2 3/3/3
`

func TestParseOBJ_SinglePosition(t *testing.T) {
	obj, err := ParseOBJ(strings.NewReader("v 1.0 2.0 3.0\n"), OBJOptions{})
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}

	if len(obj.Positions) != 1 {
		t.Fatalf("expected 1 position, got %d", len(obj.Positions))
	}
	if obj.Positions[0] != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("expected position (1, 2, 3), got %v", obj.Positions[0])
	}
	if obj.Truncated {
		t.Error("expected complete parse")
	}
}

func TestParseOBJ_Triangle(t *testing.T) {
	obj, err := ParseOBJ(strings.NewReader(testTriangleOBJ), OBJOptions{})
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}

	if len(obj.Positions) != 3 || len(obj.Normals) != 3 || len(obj.TexCoords) != 3 {
		t.Fatalf("expected 3/3/3 records, got %d/%d/%d",
			len(obj.Positions), len(obj.Normals), len(obj.TexCoords))
	}
	if len(obj.Faces) != 1 {
		t.Fatalf("expected 1 face, got %d", len(obj.Faces))
	}

	want := [3]int{0, 1, 2}
	face := obj.Faces[0]
	if face.Positions != want {
		t.Errorf("position indices: got %v, want %v", face.Positions, want)
	}
	if face.TexCoords != want {
		t.Errorf("texcoord indices: got %v, want %v", face.TexCoords, want)
	}
	if face.Normals != want {
		t.Errorf("normal indices: got %v, want %v", face.Normals, want)
	}
	if obj.TexCoords[1] != (mgl32.Vec2{1, 0}) {
		t.Errorf("expected texcoord (1, 0), got %v", obj.TexCoords[1])
	}
}

func TestParseOBJ_IgnoresUnknownTags(t *testing.T) {
	data := "o cube\ng side\nusemtl red\ns off\nv 1 1 1\nmtllib cube.mtl\n"
	obj, err := ParseOBJ(strings.NewReader(data), OBJOptions{})
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}

	if len(obj.Positions) != 1 {
		t.Errorf("expected 1 position, got %d", len(obj.Positions))
	}
	if obj.Truncated {
		t.Error("unknown tags should not truncate the scan")
	}
}

func TestParseOBJ_TokensSpanLines(t *testing.T) {
	obj, err := ParseOBJ(strings.NewReader("v 1\n2\n3 vt 0.5\n0.25"), OBJOptions{})
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}

	if len(obj.Positions) != 1 || obj.Positions[0] != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("expected position (1, 2, 3), got %v", obj.Positions)
	}
	if len(obj.TexCoords) != 1 || obj.TexCoords[0] != (mgl32.Vec2{0.5, 0.25}) {
		t.Errorf("expected texcoord (0.5, 0.25), got %v", obj.TexCoords)
	}
}

func TestParseOBJ_NonNumericStopsScan(t *testing.T) {
	data := "v 1 2 3\nv 4 five 6\nv 7 8 9\n"
	obj, err := ParseOBJ(strings.NewReader(data), OBJOptions{})
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}

	if !obj.Truncated {
		t.Error("expected Truncated to be set")
	}
	if len(obj.Positions) != 2 {
		t.Fatalf("expected 2 positions, got %d", len(obj.Positions))
	}
	if obj.Positions[1] != (mgl32.Vec3{4, 0, 0}) {
		t.Errorf("expected partial record (4, 0, 0), got %v", obj.Positions[1])
	}
}

func TestParseOBJ_NumericPrefix(t *testing.T) {
	// Trailing text after a number is read as the next token.
	data := "v 1 2 3#note\nv -.5 5 6e\n"
	obj, err := ParseOBJ(strings.NewReader(data), OBJOptions{})
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}

	if obj.Truncated {
		t.Error("expected a complete scan")
	}
	want := []mgl32.Vec3{{1, 2, 3}, {-0.5, 5, 6}}
	if len(obj.Positions) != len(want) {
		t.Fatalf("expected %d positions, got %d", len(want), len(obj.Positions))
	}
	for i := range want {
		if obj.Positions[i] != want[i] {
			t.Errorf("position %d: got %v, want %v", i, obj.Positions[i], want[i])
		}
	}
}

func TestFloatPrefix(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"3", 1},
		{"3#note", 1},
		{"-1.25", 5},
		{"+.5x", 3},
		{"1e5", 3},
		{"1e-5f", 4},
		{"2e", 1},
		{"2e+", 1},
		{".", 0},
		{"-", 0},
		{"five", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := floatPrefix(tt.in); got != tt.want {
				t.Errorf("floatPrefix(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseOBJ_IncompleteFaceDropped(t *testing.T) {
	data := "v 0 0 0\nv 1 0 0\nf 1 2"
	obj, err := ParseOBJ(strings.NewReader(data), OBJOptions{})
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}

	if len(obj.Faces) != 0 {
		t.Errorf("expected no faces, got %d", len(obj.Faces))
	}
}

func TestParseOBJCorner(t *testing.T) {
	tests := []struct {
		token  string
		layout OBJCornerLayout
		pos    int
		tex    int
		norm   int
	}{
		{"1/2/3", OBJLayoutStandard, 0, 1, 2},
		{"4//6", OBJLayoutStandard, 3, NoIndex, 5},
		{"7/8", OBJLayoutStandard, 6, 7, NoIndex},
		{"9", OBJLayoutStandard, 8, NoIndex, NoIndex},
		{"x/y/z", OBJLayoutStandard, NoIndex, NoIndex, NoIndex},

		// Legacy reads the texcoord from the whole token when no third slash exists.
		{"1/2/3", OBJLayoutLegacy, 0, 0, 2},
		{"4//6", OBJLayoutLegacy, 3, 3, 5},
		{"9", OBJLayoutLegacy, 8, 8, 8},
		{"7/8", OBJLayoutLegacy, 6, 7, 6},
		{"1/2/3/4", OBJLayoutLegacy, 0, 3, 2},
		{"1/2/", OBJLayoutLegacy, 0, 0, NoIndex},
	}

	for _, tt := range tests {
		t.Run(tt.layout.String()+"_"+tt.token, func(t *testing.T) {
			pos, tex, norm := ParseOBJCorner(tt.token, tt.layout)
			if pos != tt.pos || tex != tt.tex || norm != tt.norm {
				t.Errorf("ParseOBJCorner(%q): got (%d, %d, %d), want (%d, %d, %d)",
					tt.token, pos, tex, norm, tt.pos, tt.tex, tt.norm)
			}
		})
	}
}

func TestParseOBJCornerLayout(t *testing.T) {
	for name, want := range map[string]OBJCornerLayout{
		"":         OBJLayoutStandard,
		"standard": OBJLayoutStandard,
		"Legacy":   OBJLayoutLegacy,
	} {
		got, err := ParseOBJCornerLayout(name)
		if err != nil {
			t.Errorf("ParseOBJCornerLayout(%q) failed: %v", name, err)
		}
		if got != want {
			t.Errorf("ParseOBJCornerLayout(%q): got %s, want %s", name, got, want)
		}
	}

	if _, err := ParseOBJCornerLayout("quad"); err == nil {
		t.Error("expected error for unknown layout")
	}
}

func TestParseOBJFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tri.obj")
	if err := os.WriteFile(path, []byte(testTriangleOBJ), 0644); err != nil {
		t.Fatalf("failed to write test mesh: %v", err)
	}

	obj, err := ParseOBJFile(path, OBJOptions{})
	if err != nil {
		t.Fatalf("ParseOBJFile failed: %v", err)
	}
	if len(obj.Faces) != 1 {
		t.Errorf("expected 1 face, got %d", len(obj.Faces))
	}
}

func TestParseOBJFile_Missing(t *testing.T) {
	_, err := ParseOBJFile("/nonexistent/mba1.obj", OBJOptions{})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}
