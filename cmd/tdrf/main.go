// tdrf - terminal viewer for the tdrf software rasterizer.
// Spins an OBJ/GLB model (or the built-in cube) and draws it with
// half-block cells.
//
// Controls:
//
//	W/S         - Pitch up/down
//	A/D         - Yaw left/right
//	Space       - Apply random impulse
//	R           - Reset rotation
//	X           - Toggle wireframe mode
//	C           - Cycle cull mode (none/back/front)
//	F           - Flip front-face winding order
//	Esc/Q       - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/lukasx999/tdrf/pkg/math3d"
	"github.com/lukasx999/tdrf/pkg/models"
	"github.com/lukasx999/tdrf/pkg/render"
)

var (
	targetFPS = flag.Int("fps", 60, "Target FPS")
	checker   = flag.Bool("checker", false, "Checkerboard fragment shader instead of gradient")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "tdrf - terminal software rasterizer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: tdrf [options] [model.obj|model.glb]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// RotationAxis tracks position and velocity for one rotation axis with
// spring decay.
type RotationAxis struct {
	Position  float64
	Velocity  float64
	velSpring harmonica.Spring
	velAccel  float64 // internal spring velocity (for animating Velocity toward 0)
}

// NewRotationAxis creates an axis with a harmonica spring for smooth
// velocity decay.
func NewRotationAxis(fps int) RotationAxis {
	return RotationAxis{
		// Frequency 4.0 = moderate speed, damping 1.0 = critically damped (no overshoot)
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Update applies velocity to position and decays velocity toward 0.
func (a *RotationAxis) Update() {
	a.Position += a.Velocity
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
}

// RotationState holds pitch and yaw with harmonica spring physics.
type RotationState struct {
	Pitch, Yaw RotationAxis
	fps        int
}

func NewRotationState(fps int) *RotationState {
	return &RotationState{
		Pitch: NewRotationAxis(fps),
		Yaw:   NewRotationAxis(fps),
		fps:   fps,
	}
}

func (r *RotationState) Update() {
	r.Pitch.Update()
	r.Yaw.Update()
}

func (r *RotationState) ApplyImpulse(pitch, yaw float64) {
	r.Pitch.Velocity += pitch
	r.Yaw.Velocity += yaw
}

func (r *RotationState) Reset() {
	r.Pitch = NewRotationAxis(r.fps)
	r.Yaw = NewRotationAxis(r.fps)
}

// Matrix builds the model transform for the current rotation. The model
// is shrunk so that every rotated vertex stays inside the NDC cube.
func (r *RotationState) Matrix() math3d.Mat4 {
	return math3d.RotateX(float32(r.Pitch.Position)).
		Mul(math3d.RotateY(float32(r.Yaw.Position))).
		Mul(math3d.ScaleUniform(0.6))
}

// loadMesh loads a model by extension, falling back to the built-in
// cube when no path is given.
func loadMesh(path string) (*models.Mesh, error) {
	if path == "" {
		return models.Cube(), nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		return models.LoadOBJ(path)
	case ".glb", ".gltf":
		return models.LoadGLB(path)
	default:
		return nil, fmt.Errorf("unsupported format: %s (use .obj or .glb)", filepath.Ext(path))
	}
}

func run(modelPath string) error {
	mesh, err := loadMesh(modelPath)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}
	mesh.FitNDC()
	vertices := mesh.VertexBuffer()

	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	// Half-block cells give double vertical resolution.
	fb := render.NewFramebuffer(width, height*2)
	rasterizer := render.NewRasterizer(fb)

	rotation := NewRotationState(*targetFPS)
	rotation.ApplyImpulse(0.01, 0.02)
	wireframe := false

	// Context for clean shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)
				fb = render.NewFramebuffer(width, height*2)
				rasterizer = render.NewRasterizer(fb)

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"), ev.MatchString("q"), ev.MatchString("ctrl+c"):
					cancel()
					return
				case ev.MatchString("w", "up"):
					rotation.ApplyImpulse(-0.05, 0)
				case ev.MatchString("s", "down"):
					rotation.ApplyImpulse(0.05, 0)
				case ev.MatchString("a", "left"):
					rotation.ApplyImpulse(0, -0.05)
				case ev.MatchString("d", "right"):
					rotation.ApplyImpulse(0, 0.05)
				case ev.MatchString("space"):
					rotation.ApplyImpulse(
						(rand.Float64()-0.5)*0.5,
						(rand.Float64()-0.5)*0.5,
					)
				case ev.MatchString("r"):
					rotation.Reset()
				case ev.MatchString("x"):
					wireframe = !wireframe
				case ev.MatchString("c"):
					switch rasterizer.CullMode() {
					case render.CullNone:
						rasterizer.SetCullMode(render.CullBack)
					case render.CullBack:
						rasterizer.SetCullMode(render.CullFront)
					default:
						rasterizer.SetCullMode(render.CullNone)
					}
				case ev.MatchString("f"):
					if rasterizer.WindingOrder() == render.CounterClockwise {
						rasterizer.SetWindingOrder(render.Clockwise)
					} else {
						rasterizer.SetWindingOrder(render.CounterClockwise)
					}
				}
			}
		}
	}()

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	targetDuration := time.Second / time.Duration(*targetFPS)

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		frameStart := time.Now()
		rotation.Update()

		model := rotation.Matrix()
		vs := func(v math3d.Vec4) math3d.Vec4 {
			return model.MulVec4(v)
		}

		var fs render.FragmentShader
		if *checker {
			fs = render.CheckerShader(4, render.ColorWhite, render.RGB(90, 90, 110))
		} else {
			fs = render.GradientShader(fb.Width(), render.RGB(240, 120, 40), render.RGB(40, 120, 240))
		}

		rasterizer.Clear()
		if wireframe {
			for i := 0; i+2 < len(vertices); i += 3 {
				rasterizer.DrawTriangleWire(vertices[i], vertices[i+1], vertices[i+2], vs, render.RGB(0, 255, 128))
			}
		} else {
			if err := rasterizer.RenderVertexBuffer(vertices, vs, fs); err != nil {
				cleanup()
				return fmt.Errorf("render: %w", err)
			}
		}

		fb.Draw(term, uv.Rect(0, 0, width, height))
		if err := term.Display(); err != nil {
			cleanup()
			return fmt.Errorf("display: %w", err)
		}

		if elapsed := time.Since(frameStart); elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
