// snapshot - render a single turntable frame of a model to an image.
// Writes one PNG or lossless WebP file, chosen by the output extension.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lukasx999/tdrf/pkg/math3d"
	"github.com/lukasx999/tdrf/pkg/models"
	"github.com/lukasx999/tdrf/pkg/render"
)

var (
	size    = flag.Int("size", 512, "Output image size in pixels (square)")
	output  = flag.String("o", "snapshot.png", "Output file (.png or .webp)")
	yawDeg  = flag.Float64("yaw", 30, "Turntable yaw in degrees")
	pitch   = flag.Float64("pitch", -20, "Turntable pitch in degrees")
	culling = flag.String("cull", "none", "Cull mode: none, back or front")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "snapshot - offline render for the tdrf rasterizer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: snapshot [options] [model.obj|model.glb]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(modelPath string) error {
	var mesh *models.Mesh
	var err error

	switch {
	case modelPath == "":
		mesh = models.Cube()
	case strings.EqualFold(filepath.Ext(modelPath), ".obj"):
		mesh, err = models.LoadOBJ(modelPath)
	default:
		mesh, err = models.LoadGLB(modelPath)
	}
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}
	mesh.FitNDC()

	fb := render.NewFramebuffer(*size, *size)
	rasterizer := render.NewRasterizer(fb)

	switch *culling {
	case "none":
		rasterizer.SetCullMode(render.CullNone)
	case "back":
		rasterizer.SetCullMode(render.CullBack)
	case "front":
		rasterizer.SetCullMode(render.CullFront)
	default:
		return fmt.Errorf("unknown cull mode %q", *culling)
	}

	model := math3d.RotateX(math3d.DegToRad(float32(*pitch))).
		Mul(math3d.RotateY(math3d.DegToRad(float32(*yawDeg)))).
		Mul(math3d.ScaleUniform(0.6))
	vs := func(v math3d.Vec4) math3d.Vec4 {
		return model.MulVec4(v)
	}
	fs := render.GradientShader(fb.Width(), render.RGB(240, 120, 40), render.RGB(40, 120, 240))

	if err := rasterizer.RenderVertexBuffer(mesh.VertexBuffer(), vs, fs); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	switch strings.ToLower(filepath.Ext(*output)) {
	case ".webp":
		err = fb.SaveWebP(*output)
	default:
		err = fb.SavePNG(*output)
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", *output, err)
	}

	fmt.Printf("Rendered %s (%d triangles) to %s\n", mesh.Name, mesh.TriangleCount(), *output)
	return nil
}
