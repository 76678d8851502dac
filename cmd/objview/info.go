package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Faultbox/objview/internal/config"
	"github.com/Faultbox/objview/internal/engine/model"
	"github.com/Faultbox/objview/internal/viewer"
	"github.com/Faultbox/objview/pkg/formats"
)

func runInfo(w io.Writer, cfg *config.Config) error {
	stat, err := os.Stat(cfg.Mesh.Path)
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}

	obj, err := viewer.LoadMesh(cfg.Mesh)
	if err != nil {
		return fmt.Errorf("load mesh: %w", err)
	}
	buf := model.Build(obj)
	attrs := buf.Attributes()

	fmt.Fprintf(w, "File:       %s\n", filepath.Base(cfg.Mesh.Path))
	fmt.Fprintf(w, "Size:       %.2f KB\n", float64(stat.Size())/1024)
	layout, err := formats.ParseOBJCornerLayout(cfg.Mesh.CornerLayout)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Layout:     %s\n", layout)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Positions:  %d\n", len(obj.Positions))
	fmt.Fprintf(w, "Normals:    %d\n", len(obj.Normals))
	fmt.Fprintf(w, "TexCoords:  %d\n", len(obj.TexCoords))
	fmt.Fprintf(w, "Triangles:  %d\n", buf.TriangleCount())
	fmt.Fprintf(w, "Attributes: normal=%t position=%t texcoord=%t\n",
		attrs.Has(model.AttrNormal), attrs.Has(model.AttrPosition), attrs.Has(model.AttrTexCoord))
	if obj.Truncated {
		fmt.Fprintln(w, "Warning:    scan stopped at a non-numeric value")
	}

	if attrs.Has(model.AttrPosition) {
		b := buf.Bounds()
		size := b.Size()
		center := b.Center()
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Bounds:     (%.3f, %.3f, %.3f) - (%.3f, %.3f, %.3f)\n",
			b.Min[0], b.Min[1], b.Min[2], b.Max[0], b.Max[1], b.Max[2])
		fmt.Fprintf(w, "Size:       %.3f x %.3f x %.3f\n", size[0], size[1], size[2])
		fmt.Fprintf(w, "Center:     (%.3f, %.3f, %.3f)\n", center[0], center[1], center[2])
	}
	return nil
}
