package viz

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/affine/internal/geom"
	"github.com/san-kum/affine/internal/logging"
	"github.com/san-kum/affine/internal/probe"
)

const (
	width      = 80
	height     = 24
	missLength = 30.0
	moveStep   = 0.5
)

var turnStep = geom.Deg(15)

var (
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2).Width(44)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
	targetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// CastMsg carries the outcome of a background sweep. Gen is the placement
// generation the sweep was started for.
type CastMsg struct {
	Gen     int
	Results []probe.Result
	Err     error
	Took    time.Duration
}

// Model is an interactive scene viewer. It draws the targets and the probe
// sweep and lets the user move the camera and the selected target.
type Model struct {
	targets  []probe.Target
	initial  []probe.Target
	selected int
	gen      int

	sweep   probe.Sweep
	workers int
	results []probe.Result
	took    time.Duration
	err     error

	camera     *Camera
	initialCam Camera
	canvas     *Canvas
	wire       *Wireframe
	showAxes   bool
	showRays   bool
	showHelp   bool
	log        *logging.Logger
}

type ModelOption func(*Model)

func WithWorkers(n int) ModelOption { return func(m *Model) { m.workers = n } }

func WithModelLogger(l *logging.Logger) ModelOption { return func(m *Model) { m.log = l } }

func NewModel(targets []probe.Target, sweep probe.Sweep, cam *Camera, opts ...ModelOption) Model {
	m := Model{
		targets:    append([]probe.Target(nil), targets...),
		initial:    append([]probe.Target(nil), targets...),
		sweep:      sweep,
		camera:     cam,
		initialCam: *cam,
		canvas:     NewCanvas(width, height),
		wire:       NewWireframe(),
		showAxes:   true,
		showRays:   true,
		log:        logging.Nop(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func (m Model) Init() tea.Cmd { return m.cast() }

// cast runs the sweep against a snapshot of the targets, tagged with the
// current generation.
func (m Model) cast() tea.Cmd {
	targets := append([]probe.Target(nil), m.targets...)
	gen, sweep, workers, log := m.gen, m.sweep, m.workers, m.log
	return func() tea.Msg {
		if len(targets) == 0 {
			return CastMsg{Gen: gen}
		}
		start := time.Now()
		rays, err := sweep.Rays()
		if err != nil {
			return CastMsg{Gen: gen, Err: err}
		}
		c := probe.NewCaster(targets, probe.WithWorkers(workers), probe.WithLogger(log))
		results, err := c.Cast(context.Background(), rays)
		return CastMsg{Gen: gen, Results: results, Err: err, Took: time.Since(start)}
	}
}

// recast starts a new generation so sweeps of earlier placements are dropped.
func (m *Model) recast() tea.Cmd {
	m.gen++
	return m.cast()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case CastMsg:
		if msg.Gen != m.gen {
			m.log.Debug("stale sweep dropped", logging.Int("gen", msg.Gen), logging.Int("current", m.gen))
			return m, nil
		}
		m.results, m.err, m.took = msg.Results, msg.Err, msg.Took
		if msg.Err != nil {
			m.log.Warn("sweep failed", logging.Err(msg.Err))
		}
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cam := m.camera
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "?":
		m.showHelp = !m.showHelp
	case "t":
		NextTheme()
	case "a":
		m.showAxes = !m.showAxes
	case "p":
		m.showRays = !m.showRays
	case "tab":
		m.cycleTarget(1)
	case "shift+tab":
		m.cycleTarget(-1)

	case "w":
		cam.Move(geom.Vec3(0, 0, moveStep))
	case "s":
		cam.Move(geom.Vec3(0, 0, -moveStep))
	case "A":
		cam.Move(geom.Vec3(-moveStep, 0, 0))
	case "D":
		cam.Move(geom.Vec3(moveStep, 0, 0))
	case "left":
		cam.Turn(geom.Rad(0), turnStep, geom.Rad(0))
	case "right":
		cam.Turn(geom.Rad(0), turnStep.Neg(), geom.Rad(0))
	case "up":
		cam.Turn(turnStep.Neg(), geom.Rad(0), geom.Rad(0))
	case "down":
		cam.Turn(turnStep, geom.Rad(0), geom.Rad(0))
	case "+", "=":
		cam.ZoomIn()
	case "-", "_":
		cam.ZoomOut()

	case "x", "X", "y", "Y", "z", "Z":
		cmd := m.editTarget(func(b geom.Rigidbody) geom.Rigidbody {
			return b.WithOrientation(b.Orientation().Rotate(keyTurn(msg.String()).Matrix()))
		})
		return m, cmd
	case "f":
		cmd := m.editTarget(func(b geom.Rigidbody) geom.Rigidbody {
			return b.WithOrientation(b.Orientation().Flip())
		})
		return m, cmd
	case "[", "]":
		step := moveStep
		if msg.String() == "[" {
			step = -step
		}
		cmd := m.editTarget(func(b geom.Rigidbody) geom.Rigidbody {
			return b.Translate(b.Forward().Scale(step))
		})
		return m, cmd
	case "r":
		m.targets = append(m.targets[:0:0], m.initial...)
		*m.camera = m.initialCam
		cmd := m.recast()
		return m, cmd
	}
	return m, nil
}

// keyTurn maps the rotation keys to a local turn. Lower case turns forward.
func keyTurn(key string) geom.Rotation {
	a := turnStep
	if strings.ToUpper(key) == key {
		a = a.Neg()
	}
	zero := geom.Rad(0)
	switch strings.ToLower(key) {
	case "x":
		return geom.NewRotation(a, zero, zero)
	case "y":
		return geom.NewRotation(zero, a, zero)
	}
	return geom.NewRotation(zero, zero, a)
}

func (m *Model) cycleTarget(dir int) {
	if len(m.targets) == 0 {
		return
	}
	m.selected = (m.selected + dir + len(m.targets)) % len(m.targets)
}

// editTarget replaces the selected target's body and recasts the sweep.
func (m *Model) editTarget(edit func(geom.Rigidbody) geom.Rigidbody) tea.Cmd {
	if len(m.targets) == 0 {
		return nil
	}
	t := m.targets[m.selected]
	m.targets = append(m.targets[:0:0], m.targets...)
	m.targets[m.selected] = t.WithBody(edit(t.Body()))
	return m.recast()
}

// Targets returns the targets as currently placed.
func (m Model) Targets() []probe.Target { return m.targets }

// Camera returns the camera as currently placed.
func (m Model) Camera() *Camera { return m.camera }

func (m Model) Results() []probe.Result { return m.results }

// Frame redraws the scene onto the canvas and returns it.
func (m Model) Frame() *Canvas {
	m.canvas.Clear()
	m.wire.Clear()
	if m.showAxes {
		m.wire.AddAxes(1)
	}
	for i, t := range m.targets {
		kind := EdgeShape
		if i == m.selected {
			kind = EdgeSelected
		}
		m.wire.AddTarget(t, kind)
	}
	if m.showRays {
		m.wire.AddResults(m.results, missLength)
	}
	Render3D(m.canvas, m.wire, m.camera)
	return m.canvas
}

func (m Model) View() string {
	canvasView := CanvasStyle().Render(m.Frame().String())

	var s strings.Builder
	s.WriteString(GradientText("AFFINE", CurrentTheme.Shape, CurrentTheme.Selected) + "\n")
	s.WriteString(HeaderStyle.Render(CurrentTheme.Name) + "\n\n")

	if len(m.targets) > 0 {
		t := m.targets[m.selected]
		s.WriteString(Selected().Render("> "+t.Name()) + "\n")
		s.WriteString(describeBody(t.Body()))
	} else {
		s.WriteString(targetStyle.Render("(no targets)") + "\n")
	}

	s.WriteString("\n")
	hits := probe.CountHits(m.results)
	s.WriteString(Metric("Rays", "%d", len(m.results)) + "\n")
	s.WriteString(Metric("Hits", "%d ", hits) + HitBar(hits, len(m.results), 16) + "\n")
	s.WriteString(Metric("Cast", "%s", m.took.Round(time.Microsecond)) + "\n")
	if m.err != nil {
		s.WriteString(errorStyle.Render(m.err.Error()) + "\n")
	}

	dist := probe.Distances(m.results)
	if len(dist) > 0 {
		s.WriteString("\n" + DistanceSparkline(dist, 36) + "\n")
	}
	if hitDist := finite(dist); len(hitDist) > 1 {
		chart := asciigraph.Plot(hitDist, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("hit distance"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString(helpStyle.Render(Separator(36) + "\nQ:Quit T:Theme ?:Help\nTab:Select F:Flip R:Reset"))
	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	if m.showHelp {
		return Panel.Render(helpText) + "\n" + mainView
	}
	return mainView
}

const helpText = `KEYBOARD SHORTCUTS
  Tab/S-Tab - Select next/previous target
  x/X y/Y z/Z - Pitch, yaw, roll target
  f         - Flip target upside down
  [ ]       - Move target along forward
  w/s       - Move camera forward/back
  A/D       - Move camera left/right
  Arrows    - Turn camera
  +/-       - Zoom
  a         - Toggle axes
  p         - Toggle rays
  r         - Reset scene
  t         - Cycle themes
  q         - Quit`

func describeBody(b geom.Rigidbody) string {
	rot := b.Orientation().Rotation()
	pos := b.Position()
	var s strings.Builder
	s.WriteString(Metric("Pitch", "%7.2f°", rot.Pitch().Degrees()) + "\n")
	s.WriteString(Metric("Yaw", "%7.2f°", rot.Yaw().Degrees()) + "\n")
	s.WriteString(Metric("Roll", "%7.2f°", rot.Roll().Degrees()) + "\n")
	s.WriteString(Metric("Position", "%.2f %.2f %.2f", pos.X(), pos.Y(), pos.Z()) + "\n")
	fwd := b.Forward()
	s.WriteString(Metric("Forward", "%.2f %.2f %.2f", fwd.At(0), fwd.At(1), fwd.At(2)) + "\n")
	return s.String()
}

func finite(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// Run starts the viewer full screen and blocks until the user quits.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	return nil
}
