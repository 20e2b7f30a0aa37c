package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/san-kum/affine/internal/geom"
	"github.com/san-kum/affine/internal/probe"
	"github.com/san-kum/affine/internal/viz"
)

const (
	width       = 70
	height      = 20
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer prints frames of a scene straight to a writer, for terminals
// where the full screen viewer is not wanted. The camera orbits the origin.
type LiveRenderer struct {
	out       io.Writer
	name      string
	frameRate int
	lastFrame time.Time
	canvas    *viz.Canvas
	wire      *viz.Wireframe
	camera    *viz.Camera
	orbit     geom.Angle
}

func NewLiveRenderer(out io.Writer, name string, frameRate int, cam *viz.Camera) *LiveRenderer {
	return &LiveRenderer{
		out:       out,
		name:      name,
		frameRate: frameRate,
		canvas:    viz.NewCanvas(width, height),
		wire:      viz.NewWireframe(),
		camera:    cam,
		orbit:     geom.Deg(3),
	}
}

// Frame draws one frame and advances the orbit. It skips the frame when
// called faster than the frame rate and reports whether it drew.
func (r *LiveRenderer) Frame(targets []probe.Target, results []probe.Result) bool {
	if r.frameRate > 0 && time.Since(r.lastFrame) < time.Second/time.Duration(r.frameRate) {
		return false
	}
	r.lastFrame = time.Now()

	r.canvas.Clear()
	r.wire.Clear()
	r.wire.AddAxes(1)
	for _, t := range targets {
		r.wire.AddTarget(t, viz.EdgeShape)
	}
	r.wire.AddResults(results, 30)
	viz.Render3D(r.canvas, r.wire, r.camera)
	r.render(probe.CountHits(results), len(results))

	r.step()
	return true
}

// step swings the camera about the world up axis through the origin.
func (r *LiveRenderer) step() {
	turn := geom.AxisRotation(r.orbit, geom.WorldUp)
	body := r.camera.Body
	pos := turn.MulVec(body.Position())
	r.camera.Body = geom.NewRigidbody(pos, body.Orientation().Turn(turn))
}

func (r *LiveRenderer) render(hits, rays int) {
	var b strings.Builder
	b.WriteString(clearScreen)
	fmt.Fprintf(&b, "  %s  hits=%d/%d\n", r.name, hits, rays)
	b.WriteString("  " + strings.Repeat("-", width) + "\n")

	for _, row := range strings.Split(strings.TrimSuffix(r.canvas.String(), "\n"), "\n") {
		b.WriteString("  ")
		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString("  " + strings.Repeat("-", width) + "\n")
	pos := r.camera.Body.Position()
	fmt.Fprintf(&b, "  camera=(%.2f, %.2f, %.2f)\n", pos.X(), pos.Y(), pos.Z())

	io.WriteString(r.out, b.String())
}

func (r *LiveRenderer) Start() { io.WriteString(r.out, hideCursor) }
func (r *LiveRenderer) Stop()  { io.WriteString(r.out, showCursor) }
