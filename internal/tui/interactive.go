package tui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/affine/internal/config"
	"github.com/san-kum/affine/internal/logging"
	"github.com/san-kum/affine/internal/viz"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

var sceneInfo = map[string]string{
	"corridor":  "walls and floor, wide sweep",
	"cube":      "yawed cuboid, three probe rays",
	"billboard": "tilted board on a post",
}

// fieldNames are the editable values of a target, in display order.
var fieldNames = []string{"pitch", "yaw", "roll", "x", "y", "z", "width", "height", "depth"}

type state int

const (
	stateMenu state = iota
	stateEdit
	stateView
)

type model struct {
	state  state
	cursor int
	scenes []string
	files  map[string]*config.Config

	cfg         *config.Config
	selected    string
	target      int
	fieldCursor int
	editing     bool
	editBuf     string
	err         error

	viewer viz.Model
	log    *logging.Logger
}

// NewInteractiveApp lists the built-in presets followed by any scene files
// given by path.
func NewInteractiveApp(files map[string]*config.Config, log *logging.Logger) *model {
	scenes := config.ListPresets()
	extra := make([]string, 0, len(files))
	for name := range files {
		extra = append(extra, name)
	}
	sort.Strings(extra)
	scenes = append(scenes, extra...)
	if log == nil {
		log = logging.Provide()
	}
	return &model{
		state:  stateMenu,
		scenes: scenes,
		files:  files,
		log:    log,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == stateView {
		if k, ok := msg.(tea.KeyMsg); ok && (k.String() == "esc" || k.String() == "q") {
			m.state = stateEdit
			return m, tea.ClearScreen
		}
		next, cmd := m.viewer.Update(msg)
		m.viewer = next.(viz.Model)
		return m, cmd
	}
	if k, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(k)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateEdit:
		return m.editKey(msg)
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.scenes)-1 {
			m.cursor++
		}
	case "enter", " ":
		if len(m.scenes) == 0 {
			return m, nil
		}
		m.selected = m.scenes[m.cursor]
		m.cfg = m.load(m.selected)
		m.target, m.fieldCursor, m.err = 0, 0, nil
		m.state = stateEdit
	}
	return m, nil
}

func (m model) load(name string) *config.Config {
	if cfg, ok := m.files[name]; ok {
		c := *cfg
		c.Targets = append([]config.TargetConfig(nil), cfg.Targets...)
		return &c
	}
	return config.GetPreset(name)
}

func (m model) editKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			if val, err := strconv.ParseFloat(m.editBuf, 64); err == nil {
				m.setField(val)
			}
			m.editing = false
			m.editBuf = ""
		case "esc":
			m.editing = false
			m.editBuf = ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' {
					m.editBuf += string(c)
				}
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "esc":
		m.state = stateMenu
	case "tab":
		if n := len(m.cfg.Targets); n > 0 {
			m.target = (m.target + 1) % n
		}
	case "up", "k":
		if m.fieldCursor > 0 {
			m.fieldCursor--
		}
	case "down", "j":
		if m.fieldCursor < len(fieldNames)-1 {
			m.fieldCursor++
		}
	case "left", "h":
		m.setField(m.field() - m.step())
	case "right", "l":
		m.setField(m.field() + m.step())
	case "enter", " ":
		m.editing = true
		m.editBuf = strconv.FormatFloat(m.field(), 'f', -1, 64)
	case "s":
		return m.start()
	}
	return m, nil
}

// step is the arrow key increment: angles move in degrees, lengths in tenths.
func (m model) step() float64 {
	if m.fieldCursor < 3 {
		return 5
	}
	return 0.1
}

func (m *model) targetConfig() *config.TargetConfig {
	if m.cfg == nil || m.target >= len(m.cfg.Targets) {
		return nil
	}
	return &m.cfg.Targets[m.target]
}

func (m model) field() float64 {
	t := m.targetConfig()
	if t == nil {
		return 0
	}
	switch fieldNames[m.fieldCursor] {
	case "pitch":
		return t.Rotation.Pitch
	case "yaw":
		return t.Rotation.Yaw
	case "roll":
		return t.Rotation.Roll
	case "x", "y", "z":
		return coord(t.Position, m.fieldCursor-3)
	case "width":
		return t.Width
	case "height":
		return t.Height
	}
	return t.Depth
}

func (m *model) setField(v float64) {
	t := m.targetConfig()
	if t == nil {
		return
	}
	switch fieldNames[m.fieldCursor] {
	case "pitch":
		t.Rotation.Pitch = v
	case "yaw":
		t.Rotation.Yaw = v
	case "roll":
		t.Rotation.Roll = v
	case "x", "y", "z":
		pos := make([]float64, 3)
		copy(pos, t.Position)
		pos[m.fieldCursor-3] = v
		t.Position = pos
	case "width":
		t.Width = v
	case "height":
		t.Height = v
	case "depth":
		t.Depth = v
	}
}

func coord(v []float64, i int) float64 {
	if i < len(v) {
		return v[i]
	}
	return 0
}

func (m model) start() (model, tea.Cmd) {
	scene, err := m.cfg.Scene()
	if err != nil {
		m.err = err
		m.log.Warn("scene rejected", logging.String("scene", m.selected), logging.Err(err))
		return m, nil
	}
	viz.SetTheme(m.cfg.Theme)
	cam := viz.NewCamera(scene.Camera)
	cam.Zoom = scene.Zoom
	m.viewer = viz.NewModel(scene.Targets, scene.Sweep, cam,
		viz.WithWorkers(m.cfg.Workers), viz.WithModelLogger(m.log))
	m.err = nil
	m.state = stateView
	return m, tea.Batch(tea.ClearScreen, m.viewer.Init())
}

func (m model) View() string {
	switch m.state {
	case stateEdit:
		return m.viewEdit()
	case stateView:
		return m.viewer.View()
	}
	return m.viewMenu()
}

func (m model) viewMenu() string {
	var b strings.Builder
	b.WriteString("\n  " + cyan.Render("affine") + dim.Render(" scene browser") + "\n\n")
	for i, name := range m.scenes {
		cursor, style := "  ", white
		if i == m.cursor {
			cursor, style = magenta.Render("> "), magenta
		}
		info := sceneInfo[name]
		if _, ok := m.files[name]; ok {
			info = "scene file"
		}
		b.WriteString(fmt.Sprintf("  %s%-12s %s\n", cursor, style.Render(name), dimmer.Render(info)))
	}
	b.WriteString("\n  " + dim.Render("↑↓ select  enter open  q quit") + "\n")
	return b.String()
}

func (m model) viewEdit() string {
	var b strings.Builder
	b.WriteString("\n  " + cyan.Render(m.selected) + "\n\n")

	t := m.targetConfig()
	if t == nil {
		b.WriteString("  " + dim.Render("(no targets)") + "\n")
	} else {
		b.WriteString(fmt.Sprintf("  %s %s  %s\n\n", dim.Render("target"), white.Render(t.Name), dimmer.Render(t.Kind)))
		for i, name := range fieldNames {
			old := m.fieldCursor
			m.fieldCursor = i
			val := strconv.FormatFloat(m.field(), 'f', 2, 64)
			m.fieldCursor = old

			line := fmt.Sprintf("%-8s %8s", name, val)
			switch {
			case i == m.fieldCursor && m.editing:
				b.WriteString("  " + yellow.Render(fmt.Sprintf("%-8s %8s_", name, m.editBuf)) + "\n")
			case i == m.fieldCursor:
				b.WriteString("  " + magenta.Render("> "+line) + "\n")
			default:
				b.WriteString("    " + white.Render(line) + "\n")
			}
		}
	}
	if m.err != nil {
		b.WriteString("\n  " + red.Render(m.err.Error()) + "\n")
	}
	b.WriteString("\n  " + dim.Render("tab target  ↑↓ field  ←→ adjust  enter type  s view  q back") + "\n")
	return b.String()
}

// RunInteractive opens the scene browser.
func RunInteractive(files map[string]*config.Config, log *logging.Logger) error {
	_, err := tea.NewProgram(NewInteractiveApp(files, log), tea.WithAltScreen()).Run()
	return err
}
