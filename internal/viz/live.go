package viz

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"math"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/clothsim/internal/analysis"
	"github.com/san-kum/clothsim/internal/config"
	"github.com/san-kum/clothsim/internal/interact"
	"github.com/san-kum/clothsim/internal/metrics"
	"github.com/san-kum/clothsim/internal/sim"
)

const (
	canvasWidth     = 64
	canvasHeight    = 26
	historyCapacity = 600

	// Canvas placement inside the layout, in cells. Mouse coordinates
	// arrive in terminal cells and must be shifted by this before
	// unprojection.
	canvasPadX = 2
	canvasPadY = 1
)

var (
	canvasStyle      = lipgloss.NewStyle().Padding(1, 2)
	statsStyle       = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(45)
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// liveParam is one tunable slot in the side panel. Edits land on the
// session's config and take effect on the next tick.
type liveParam struct {
	name     string
	min, max float64
	step     float64
	get      func(cfg *config.Config) float64
	set      func(cfg *config.Config, v float64)
	// rebuild marks params whose change invalidates particle indices,
	// forcing a fresh interaction controller.
	rebuild bool
}

func liveParams() []liveParam {
	return []liveParam{
		{
			name: "stiffness", min: 0, max: 1, step: 0.05,
			get: func(cfg *config.Config) float64 { return cfg.EffectiveStiffness() },
			set: func(cfg *config.Config, v float64) {
				cfg.Cloth.Stiffness = v
				cfg.Cloth.GSM = 0
			},
		},
		{
			name: "gsm", min: config.MinGSM, max: config.MaxGSM, step: 25,
			get: func(cfg *config.Config) float64 {
				return config.GSMFromStiffness(cfg.EffectiveStiffness())
			},
			set: func(cfg *config.Config, v float64) { cfg.Cloth.GSM = v },
		},
		{
			name: "friction", min: 0, max: 1, step: 0.05,
			get: func(cfg *config.Config) float64 { return cfg.Cloth.Friction },
			set: func(cfg *config.Config, v float64) { cfg.Cloth.Friction = v },
		},
		{
			name: "ball grip", min: 0, max: 1, step: 0.05,
			get: func(cfg *config.Config) float64 { return cfg.Sphere.Friction },
			set: func(cfg *config.Config, v float64) { cfg.Sphere.Friction = v },
		},
		{
			name: "radius", min: 0.2, max: 2, step: 0.05,
			get: func(cfg *config.Config) float64 { return cfg.Sphere.Radius },
			set: func(cfg *config.Config, v float64) { cfg.Sphere.Radius = v },
		},
		{
			name: "resolution", min: 2, max: 80, step: 2,
			get:     func(cfg *config.Config) float64 { return float64(cfg.Cloth.Resolution) },
			set:     func(cfg *config.Config, v float64) { cfg.Cloth.Resolution = int(v + 0.5) },
			rebuild: true,
		},
		{
			name: "size", min: 0.5, max: 5, step: 0.1,
			get: func(cfg *config.Config) float64 { return cfg.Cloth.Size },
			set: func(cfg *config.Config, v float64) { cfg.Cloth.Size = v },
		},
	}
}

// Model drives the interactive view: a stepping session on the left,
// stats and tunable parameters on the right.
type Model struct {
	session *sim.Session
	ctrl    *interact.Controller
	camera  *Camera
	canvas  *Canvas
	wf      Wireframe

	paused   bool
	showHelp bool

	params   []liveParam
	selected int

	kinetic []float64

	recording bool
	frames    []*image.Paletted
	notice    string
}

func NewModel(cfg *config.Config) (Model, error) {
	session, err := sim.NewSession(cfg)
	if err != nil {
		return Model{}, err
	}
	ctrl := interact.NewController(session.Solver().Grid)
	session.SetPinSource(ctrl)

	return Model{
		session: session,
		ctrl:    ctrl,
		camera:  NewCamera(),
		canvas:  NewCanvas(canvasWidth, canvasHeight),
		params:  liveParams(),
		kinetic: make([]float64, 0, historyCapacity),
	}, nil
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "r":
			m.reset()
		case "tab":
			m.selected = (m.selected + 1) % len(m.params)
		case "up", "k":
			m.adjustParam(1)
		case "down", "j":
			m.adjustParam(-1)
		case "g":
			if m.recording {
				m.saveGIF()
				m.recording = false
				m.frames = nil
			} else {
				m.recording = true
				m.frames = make([]*image.Paletted, 0)
				m.notice = ""
			}
		case "?":
			m.showHelp = !m.showHelp
		case "x":
			m.camera.Pitch += 0.1
		case "X":
			m.camera.Pitch -= 0.1
		case "y":
			m.camera.Yaw += 0.1
		case "Y":
			m.camera.Yaw -= 0.1
		case "+", "=":
			m.camera.Zoom *= 1.1
		case "-", "_":
			m.camera.Zoom /= 1.1
		}
	case tea.MouseMsg:
		if m.showHelp {
			return m, nil
		}
		switch {
		case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
			m.pressAt(msg.X, msg.Y)
		case msg.Action == tea.MouseActionMotion && m.ctrl.Drag.Dragging():
			m.ctrl.Drag.Move(m.rayAt(msg.X, msg.Y))
		case msg.Action == tea.MouseActionRelease:
			m.ctrl.Drag.Release()
		}
	case TickMsg:
		if !m.paused {
			m.session.Step()
			m.kinetic = append(m.kinetic, metrics.KineticOf(m.session.Solver()))
			if len(m.kinetic) > historyCapacity {
				m.kinetic = m.kinetic[1:]
			}
		}
		m.draw()
		if m.recording {
			m.captureFrame()
		}
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) adjustParam(dir float64) {
	p := m.params[m.selected]
	cfg := m.session.Config()
	v := p.get(cfg) + dir*p.step
	if v < p.min {
		v = p.min
	}
	if v > p.max {
		v = p.max
	}
	p.set(cfg, v)
	if p.rebuild {
		m.syncController()
	}
}

// reset rebuilds the sheet at the current configuration.
func (m *Model) reset() {
	m.session.Reset()
	m.syncController()
	m.kinetic = m.kinetic[:0]
}

// syncController replaces the interaction controller after anything
// that invalidates particle indices, dropping held pins.
func (m *Model) syncController() {
	g, _, _ := m.session.Config().Scene()
	m.ctrl = interact.NewController(g)
	m.session.SetPinSource(m.ctrl)
}

// rayAt unprojects a terminal cell, through its center, into a world
// ray.
func (m *Model) rayAt(cellX, cellY int) interact.Ray {
	x := (cellX-canvasPadX)*2 + 1
	y := (cellY-canvasPadY)*4 + 2
	return m.camera.PickRay(x, y, m.canvas.Width*2, m.canvas.Height*4)
}

// pressAt starts a drag at the particle nearest the click ray, if one
// is close enough.
func (m *Model) pressAt(cellX, cellY int) {
	ray := m.rayAt(cellX, cellY)
	p := m.session.Solver().Particles
	best, bestDist := -1, m.ctrl.Drag.PickRadius
	for i := range p.Pos {
		t := p.Pos[i].Sub(ray.Origin).Dot(ray.Dir)
		if t < 0 {
			continue
		}
		if d := p.Pos[i].Dist(ray.At(t)); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best >= 0 {
		m.ctrl.Drag.Pick(p, p.Pos[best], ray.Dir)
	}
}

// draw renders the scene wireframes into the canvas.
func (m *Model) draw() {
	m.canvas.Clear()
	m.wf.Clear()

	solver := m.session.Solver()
	cfg := m.session.Config()
	extent := math.Max(cfg.Cloth.Size, solver.Sphere.Radius+1)
	FloorWireframe(&m.wf, solver.Floor, extent, 9)
	SphereWireframe(&m.wf, solver.Sphere, 24)
	SheetWireframe(&m.wf, solver.Particles.Pos, solver.Grid)

	m.wf.Render(m.canvas, m.camera)

	// Ring the held particle so the grab point is visible.
	if pin, ok := m.ctrl.Drag.Pin(); ok && pin.Index < len(solver.Particles.Pos) {
		held := solver.Particles.Pos[pin.Index]
		if x, y, _, visible := m.camera.Project(held, m.canvas.Width*2, m.canvas.Height*4); visible {
			m.canvas.DrawCircle(x, y, 3)
		}
	}
}

// View renders the TUI interface.
func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render("CLOTH DRAPE") + "\n")
	status := "RUNNING"
	if m.paused {
		status = "PAUSED"
	}
	if m.recording {
		status += "  REC"
	}
	if m.ctrl.Drag.Dragging() {
		status += "  DRAG"
	}
	s.WriteString(fmt.Sprintf("%s\n\n", status))

	if len(m.kinetic) > 1 {
		chart := asciigraph.Plot(m.kinetic, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Kinetic"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	solver := m.session.Solver()
	frame := solver.Particles.Pos
	contacts := analysis.ContactCount(frame, solver.Sphere, metrics.DefaultContactBand)
	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", m.session.Time())) + "\n")
	s.WriteString(labelStyle.Render("Tick") + valueStyle.Render(fmt.Sprintf("%d", m.session.Ticks())) + "\n")
	s.WriteString(labelStyle.Render("Contacts") + valueStyle.Render(fmt.Sprintf("%d", contacts)) + "\n")
	s.WriteString(labelStyle.Render("Low point") + valueStyle.Render(fmt.Sprintf("%.2f", analysis.MinHeight(frame))) + "\n")
	s.WriteString(labelStyle.Render("Spread") + valueStyle.Render(fmt.Sprintf("%.2f", analysis.HeightSpread(frame))) + "\n")
	if m.notice != "" {
		s.WriteString(labelStyle.Render("Note") + valueStyle.Render(m.notice) + "\n")
	}

	s.WriteString("\nPARAMETERS\n")
	cfg := m.session.Config()
	for i, p := range m.params {
		val := p.get(cfg)
		barWidth := 10
		ratio := (val - p.min) / (p.max - p.min)
		if ratio > 1 {
			ratio = 1
		} else if ratio < 0 {
			ratio = 0
		}
		filled := int(ratio * float64(barWidth))
		bar := "[" + strings.Repeat("=", filled) + strings.Repeat("-", barWidth-filled) + "]"
		line := fmt.Sprintf("%-10s %s %.2f", p.name, bar, val)
		if i == m.selected {
			s.WriteString(activeParamStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + labelStyle.Render(line) + "\n")
		}
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Reset Q:Quit\nG:Record ?:Help ↑↓:Tune\nMouse:Drag the sheet"))
	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume simulation  ║
║  R        - Rebuild the sheet        ║
║  Q        - Quit                     ║
║  Tab      - Cycle parameters         ║
║  Up/K     - Increase parameter       ║
║  Down/J   - Decrease parameter       ║
║  X/Y      - Rotate camera            ║
║  +/-      - Zoom                     ║
║  G        - Toggle GIF recording     ║
║  Mouse    - Drag the sheet           ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

func (m *Model) captureFrame() {
	charW, charH := 8, 16
	imgW, imgH := m.canvas.Width*charW, m.canvas.Height*charH
	img := image.NewPaletted(image.Rect(0, 0, imgW, imgH), color.Palette{color.Black, color.White})
	for y := 0; y < imgH; y++ {
		for x := 0; x < imgW; x++ {
			img.SetColorIndex(x, y, 0)
		}
	}
	for row := 0; row < m.canvas.Height; row++ {
		for col := 0; col < m.canvas.Width; col++ {
			r := m.canvas.Grid[row][col]
			if r < 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)
			dotW, dotH := charW/2, charH/4
			baseX, baseY := col*charW, row*charH
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] == 0 {
						continue
					}
					for py := 0; py < dotH; py++ {
						for px := 0; px < dotW; px++ {
							img.SetColorIndex(baseX+dx*dotW+px, baseY+dy*dotH+py, 1)
						}
					}
				}
			}
		}
	}
	m.frames = append(m.frames, img)
}

func (m *Model) saveGIF() {
	if len(m.frames) == 0 {
		return
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range m.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, 2)
	}
	f, err := os.Create("cloth.gif")
	if err != nil {
		m.notice = err.Error()
		return
	}
	defer f.Close()
	if err := gif.EncodeAll(f, &anim); err != nil {
		m.notice = err.Error()
		return
	}
	m.notice = "saved cloth.gif"
}

// Run starts the interactive viewer and blocks until it exits.
func Run(cfg *config.Config) error {
	m, err := NewModel(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = p.Run()
	return err
}
