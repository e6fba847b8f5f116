package viz

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/morph/internal/dataset"
	"github.com/san-kum/morph/internal/layout"
	"github.com/san-kum/morph/internal/stage"
)

const (
	defaultWidth    = 100
	defaultHeight   = 28
	activityHistory = 120
	orbitStep       = 0.15
	autoOrbitStep   = 0.01
)

type TickMsg time.Time

// Model is the bubbletea model for the live formation view.
type Model struct {
	stage *stage.Stage
	src   *dataset.Source
	cam   *Camera

	frameRate     int
	width, height int
	canvas        *Canvas
	activity      []float64
	labelField    string
	autoOrbit     bool
	showHelp      bool
}

// NewModel builds the live view over an already-loaded stage.
func NewModel(st *stage.Stage, src *dataset.Source, frameRate int, camDistance float64, autoOrbit bool) Model {
	if frameRate <= 0 {
		frameRate = 60
	}
	return Model{
		stage:      st,
		src:        src,
		cam:        NewCamera(frameRate, camDistance),
		frameRate:  frameRate,
		width:      defaultWidth,
		height:     defaultHeight,
		canvas:     NewCanvas(defaultWidth, defaultHeight),
		activity:   make([]float64, 0, activityHistory),
		labelField: pickLabelField(src),
		autoOrbit:  autoOrbit,
	}
}

// pickLabelField chooses which row field becomes the item glyph. A field
// named "symbol" wins, otherwise the first field.
func pickLabelField(src *dataset.Source) string {
	if src == nil {
		return ""
	}
	for _, f := range src.Fields {
		if strings.EqualFold(f, "symbol") {
			return f
		}
	}
	if len(src.Fields) > 0 {
		return src.Fields[0]
	}
	return ""
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.frameRate), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "t":
			m.stage.Select(layout.FormationTable)
		case "s":
			m.stage.Select(layout.FormationSphere)
		case "h":
			m.stage.Select(layout.FormationHelix)
		case "g":
			m.stage.Select(layout.FormationGrid)
		case "left":
			m.cam.Orbit(-orbitStep, 0)
		case "right":
			m.cam.Orbit(orbitStep, 0)
		case "up":
			m.cam.Orbit(0, orbitStep)
		case "down":
			m.cam.Orbit(0, -orbitStep)
		case "+", "=":
			m.cam.Zoom(1 / 1.2)
		case "-":
			m.cam.Zoom(1.2)
		case "o":
			m.autoOrbit = !m.autoOrbit
		case "?":
			m.showHelp = !m.showHelp
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height-7
		if m.height < 5 {
			m.height = 5
		}
		m.canvas = NewCanvas(m.width, m.height)

	case TickMsg:
		m.stage.Tick(time.Time(msg))
		if m.autoOrbit {
			m.cam.Orbit(autoOrbitStep, 0)
		}
		m.cam.Step()

		m.activity = append(m.activity, float64(m.stage.Animating()))
		if len(m.activity) > activityHistory {
			m.activity = m.activity[1:]
		}
		m.draw()
		return m, m.tick()
	}
	return m, nil
}

type drawnItem struct {
	x, y  int
	depth float64
	label string
}

func (m *Model) draw() {
	m.canvas.Clear()

	drawn := make([]drawnItem, 0, m.stage.Count())
	var minDepth, maxDepth float64
	for _, it := range m.stage.Items() {
		x, y, depth, ok := m.cam.Project(it.Position, m.canvas.Width, m.canvas.Height)
		if !ok {
			continue
		}
		if len(drawn) == 0 || depth < minDepth {
			minDepth = depth
		}
		if len(drawn) == 0 || depth > maxDepth {
			maxDepth = depth
		}
		drawn = append(drawn, drawnItem{x, y, depth, m.label(it.Index)})
	}

	// paint far to near so labels of closer items overwrite cleanly
	sort.Slice(drawn, func(i, j int) bool { return drawn[i].depth > drawn[j].depth })
	span := maxDepth - minDepth
	for _, d := range drawn {
		style := &itemMid
		if span > 0 {
			switch rel := (d.depth - minDepth) / span; {
			case rel < 0.33:
				style = &itemNear
			case rel > 0.66:
				style = &itemFar
			}
		}
		m.canvas.PutString(d.x, d.y, d.depth, d.label, style)
	}
}

// label renders item i's payload as a short glyph. Payload interpretation
// lives here, not in the engine.
func (m *Model) label(i int) string {
	s := m.src.Field(i, m.labelField)
	if s == "" {
		return "·"
	}
	if r := []rune(s); len(r) > 3 {
		return string(r[:3])
	}
	return s
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.canvas.String())
	b.WriteByte('\n')
	b.WriteString(m.statusLine())
	b.WriteByte('\n')
	b.WriteString(m.activityGraph())
	if m.showHelp {
		b.WriteByte('\n')
		b.WriteString(helpStyle.Render("t/s/h/g formation · arrows orbit · +/- zoom · o auto-orbit · q quit"))
	}
	return b.String()
}

func (m Model) statusLine() string {
	parts := []string{
		headerStyle.Render("morph"),
		labelStyle.Render("formation ") + activeStyle.Render(string(m.stage.Formation())),
		labelStyle.Render("items ") + valueStyle.Render(fmt.Sprintf("%d", m.stage.Count())),
		labelStyle.Render("animating ") + valueStyle.Render(fmt.Sprintf("%d", m.stage.Animating())),
	}
	return strings.Join(parts, "  ")
}

func (m Model) activityGraph() string {
	if len(m.activity) < 2 {
		return ""
	}
	w := min(m.width-10, activityHistory)
	if w < 10 {
		w = 10
	}
	return graphStyle.Render(asciigraph.Plot(m.activity,
		asciigraph.Height(3),
		asciigraph.Width(w),
	))
}

// Run launches the live view and blocks until the user quits.
func Run(st *stage.Stage, src *dataset.Source, frameRate int, camDistance float64, autoOrbit bool) error {
	p := tea.NewProgram(NewModel(st, src, frameRate, camDistance, autoOrbit), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
