package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/wheelibin/ledpanel/internal/colors"
	"github.com/wheelibin/ledpanel/internal/events"
	"github.com/wheelibin/ledpanel/internal/gradient"
	"github.com/wheelibin/ledpanel/internal/models"
	"github.com/wheelibin/ledpanel/internal/panel"
	"github.com/wheelibin/ledpanel/internal/scene"
	"github.com/wheelibin/ledpanel/internal/selection"
)

const backgroundColor = "#011922"
const headerBackgroundColor = "#1e7ba0"

// screen rows used by the mouse widgets
const (
	rowSlider  = 1
	rowPreview = 3
	labelWidth = 8
)

const defaultWidth = 80
const requestTimeout = 10 * time.Second

type previewMessage events.PreviewUpdated

type stripsMessage struct {
	strips []models.Strip
}

type statusMessage string

var baseStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("240"))

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#ffffff")).
	Background(lipgloss.Color(headerBackgroundColor)).
	Padding(0, 1)

var labelStyle = lipgloss.NewStyle().Width(labelWidth).Foreground(lipgloss.Color("245"))

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color(backgroundColor))

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

type PanelTUI struct {
	teaProgram *tea.Program
	unsubs     []func()
}

func NewPanelTUI(logger *log.Logger, p *panel.Panel) *PanelTUI {
	m := NewModel(logger, p)
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	t := &PanelTUI{teaProgram: program}
	t.unsubs = append(t.unsubs,
		p.Bus.Subscribe(func(e events.PreviewUpdated) {
			program.Send(previewMessage(e))
		}),
		p.Bus.Subscribe(func(e events.StripSelected) {
			program.Send(statusMessage(fmt.Sprintf("editing %s", e.Strip.Name)))
		}),
	)
	return t
}

// Run blocks until the user quits
func (t *PanelTUI) Run() error {
	defer func() {
		for _, unsub := range t.unsubs {
			unsub()
		}
	}()
	_, err := t.teaProgram.Run()
	return err
}

type focusArea int

const (
	focusStrips focusArea = iota
	focusEditor
	focusName
)

type dragTarget int

const (
	dragNone dragTarget = iota
	dragSlider
	dragPreview
)

type Model struct {
	logger *log.Logger
	panel  *panel.Panel

	width  int
	table  table.Model
	editor textarea.Model
	name   textinput.Model
	focus  focusArea

	leds     []models.LED
	ledsSeq  uint64
	active   colors.Slot
	dragging dragTarget
	status   string
}

func NewModel(logger *log.Logger, p *panel.Panel) *Model {

	columns := []table.Column{
		{Title: "ID", Width: 4},
		{Title: "Strip", Width: 16},
		{Title: "Host", Width: 20},
		{Title: "Selected", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(5),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	editor := textarea.New()
	editor.Placeholder = "h,0,100,0,255,1,0;"
	editor.ShowLineNumbers = true
	editor.SetHeight(6)

	name := textinput.New()
	name.Placeholder = "scene name"
	name.Prompt = "scene: "
	name.SetValue(p.Logical.SceneName())

	return &Model{
		logger: logger,
		panel:  p,
		table:  t,
		editor: editor,
		name:   name,
		leds:   p.Logical.Preview(),
		active: colors.First,
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadStrips
}

func (m Model) loadStrips() tea.Msg {
	strips, err := m.panel.ListStrips()
	if err != nil {
		return statusMessage(err.Error())
	}
	return stripsMessage{strips: strips}
}

func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := message.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.editor.SetWidth(msg.Width - 2)
		return m, nil

	case previewMessage:
		// renders can be delivered out of order
		if msg.Seq <= m.ledsSeq {
			return m, nil
		}
		m.ledsSeq = msg.Seq
		m.leds = msg.Leds
		if m.focus != focusEditor && m.editor.Value() != msg.Scene {
			m.editor.SetValue(msg.Scene)
		}
		return m, nil

	case stripsMessage:
		rows := make([]table.Row, 0, len(msg.strips))
		for _, s := range msg.strips {
			selected := ""
			if s.Selected {
				selected = "✓"
			}
			rows = append(rows, table.Row{strconv.Itoa(s.ID), s.Name, s.Host, selected})
		}
		m.table.SetRows(rows)
		return m, nil

	case statusMessage:
		m.status = string(msg)
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		switch m.focus {
		case focusEditor:
			return m.handleEditorKey(msg)
		case focusName:
			return m.handleNameKey(msg)
		default:
			return m.handleKey(msg)
		}
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := m.panel.Colors

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "g":
		c.ToggleGradient()
	case "1":
		c.ToggleChannel(gradient.Hue)
	case "2":
		c.ToggleChannel(gradient.Saturation)
	case "3":
		c.ToggleChannel(gradient.Level)

	case "h":
		return m, m.addCommand(c.HueCommand)
	case "s":
		return m, m.addCommand(c.SaturationCommand)
	case "l":
		return m, m.addCommand(c.LevelCommand)
	case "a":
		cmds, err := c.HSLCommands()
		if err != nil {
			m.status = "select a range first"
			return m, nil
		}
		m.panel.Logical.AddCommands(cmds)

	case "[":
		c.SetSaturation(m.active, c.Color(m.active).Saturation-5)
	case "]":
		c.SetSaturation(m.active, c.Color(m.active).Saturation+5)
	case "-":
		c.SetLevel(m.active, c.Color(m.active).Level-5)
	case "=":
		c.SetLevel(m.active, c.Color(m.active).Level+5)

	case "tab":
		if m.active == colors.First {
			m.active = colors.Last
		} else {
			m.active = colors.First
		}

	case "ctrl+a":
		m.panel.Selector.SelectAll()
	case "ctrl+x":
		m.panel.Selector.Clear()

	case "ctrl+s":
		return m, m.saveScene()
	case "ctrl+o":
		return m, m.loadScene()

	case " ", "enter":
		return m, m.toggleStrip()

	case "c":
		color := c.Color(m.active)
		return m, m.run("color sent", func(ctx context.Context) error {
			return m.panel.SetColor(ctx, color.HTMLHue, color.Saturation, color.Level)
		})
	case "w":
		level := c.Color(m.active).Level
		return m, m.run("white sent", func(ctx context.Context) error {
			return m.panel.SetWhite(ctx, level)
		})
	case "o":
		return m, m.run("strips off", m.panel.SetOff)
	case "p":
		return m, m.sendPreview()

	case "e":
		m.focus = focusEditor
		m.table.Blur()
		return m, m.editor.Focus()
	case "n":
		m.focus = focusName
		m.table.Blur()
		return m, m.name.Focus()

	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editor.Blur()
		m.focus = focusStrips
		m.table.Focus()
		m.panel.Logical.SetSceneText(m.editor.Value())
		return m, nil
	case "ctrl+s":
		m.panel.Logical.SetSceneText(m.editor.Value())
		return m, m.saveScene()
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.name.Blur()
		m.focus = focusStrips
		m.table.Focus()
		m.panel.Logical.SetSceneName(strings.TrimSpace(m.name.Value()))
		return m, nil
	}
	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.MouseLeft:
		switch {
		case msg.Y == rowSlider && msg.X >= labelWidth:
			m.dragging = dragSlider
			x := m.sliderPixel(msg.X)
			m.slider().Press(x)
			m.slider().Drag(x)
		case msg.Y >= rowPreview:
			if idx, ok := m.ledAt(msg.X, msg.Y); ok {
				m.dragging = dragPreview
				m.panel.Selector.Press(idx)
			}
		}

	case tea.MouseMotion:
		switch m.dragging {
		case dragSlider:
			m.slider().Drag(m.sliderPixel(msg.X))
		case dragPreview:
			if idx, ok := m.ledAt(msg.X, msg.Y); ok {
				m.panel.Selector.Drag(idx)
			}
		}

	case tea.MouseRelease:
		switch m.dragging {
		case dragSlider:
			m.slider().Release(m.sliderPixel(msg.X))
		case dragPreview:
			m.panel.Selector.Release()
		}
		m.dragging = dragNone
	}
	return m, nil
}

func (m Model) slider() *selection.HueSlider {
	if m.active == colors.Last {
		return m.panel.LastSlider
	}
	return m.panel.FirstSlider
}

func (m Model) screenWidth() int {
	if m.width > 0 {
		return m.width
	}
	return defaultWidth
}

func (m Model) sliderColumns() int {
	return max(1, min(m.screenWidth()-labelWidth, m.panel.Hues.Width()))
}

// sliderPixel converts a screen column on the slider row to a spectrum x position
func (m Model) sliderPixel(screenX int) float64 {
	col := screenX - labelWidth
	return float64(col) * float64(m.panel.Hues.Width()) / float64(m.sliderColumns())
}

func (m Model) ledsPerRow() int {
	return max(1, m.screenWidth()-labelWidth)
}

func (m Model) ledAt(x int, y int) (int, bool) {
	if x < labelWidth {
		return 0, false
	}
	idx := (y-rowPreview)*m.ledsPerRow() + (x - labelWidth)
	if idx < 0 || idx >= len(m.leds) {
		return 0, false
	}
	return idx, true
}

func (m Model) addCommand(build func() (scene.Command, error)) tea.Cmd {
	cmd, err := build()
	if err != nil {
		return func() tea.Msg { return statusMessage("select a range first") }
	}
	m.panel.Logical.AddCommand(cmd)
	return nil
}

func (m Model) run(done string, action func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		if err := action(ctx); err != nil {
			m.logger.Error(err)
			return statusMessage(err.Error())
		}
		return statusMessage(done)
	}
}

func (m Model) saveScene() tea.Cmd {
	name := strings.TrimSpace(m.name.Value())
	return m.run("scene saved", func(ctx context.Context) error {
		return m.panel.Logical.SaveScene(ctx, name)
	})
}

func (m Model) loadScene() tea.Cmd {
	name := strings.TrimSpace(m.name.Value())
	return m.run("scene loaded", func(ctx context.Context) error {
		return m.panel.Logical.LoadScene(ctx, name)
	})
}

func (m Model) sendPreview() tea.Cmd {
	strip := m.panel.Logical.Strip()
	if strip == nil {
		return func() tea.Msg { return statusMessage("select a single strip first") }
	}
	text := m.panel.Logical.SceneText()
	return m.run("preview sent", func(ctx context.Context) error {
		return m.panel.SendScene(ctx, strip.ID, text)
	})
}

func (m Model) toggleStrip() tea.Cmd {
	row := m.table.SelectedRow()
	if row == nil {
		return nil
	}
	id, err := strconv.Atoi(row[0])
	if err != nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		if err := m.panel.ToggleStrip(ctx, id); err != nil {
			return statusMessage(err.Error())
		}
		return m.loadStrips()
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.titleView())
	b.WriteString("\n")
	b.WriteString(m.sliderView())
	b.WriteString("\n")
	b.WriteString(m.colorsView())
	b.WriteString("\n")
	b.WriteString(m.previewView())
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")
	b.WriteString(baseStyle.Render(m.table.View()))
	b.WriteString("\n")
	b.WriteString(m.name.View())
	b.WriteString("\n")
	b.WriteString(m.editor.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("g gradient • 1/2/3 channels • h/s/l/a add • [ ] sat • - = level • tab slider • space strip • e edit • n name • ctrl+s save • ctrl+o load • c/w/o/p send • q quit"))

	return b.String()
}

func (m Model) titleView() string {
	c := m.panel.Colors
	ch := c.Channels()
	flag := func(on bool, s string) string {
		if on {
			return strings.ToUpper(s)
		}
		return "-"
	}
	gradientMode := "off"
	if c.Gradient() {
		gradientMode = "on"
	}
	return titleStyle.Render(fmt.Sprintf("ledpanel  leds: %d  gradient: %s  channels: %s%s%s  slider: %s",
		m.panel.Logical.LedCount(), gradientMode, flag(ch.Hue, "h"), flag(ch.Saturation, "s"), flag(ch.Level, "l"), m.active))
}

func (m Model) sliderView() string {
	img := m.panel.Hues.Image()
	bounds := img.Bounds()
	cols := m.sliderColumns()
	width := m.panel.Hues.Width()

	firstCol := int(m.panel.FirstSlider.Position() * float64(cols) / float64(width))
	lastCol := int(m.panel.LastSlider.Position() * float64(cols) / float64(width))

	var b strings.Builder
	b.WriteString(labelStyle.Render("hue"))
	for col := 0; col < cols; col++ {
		x := bounds.Min.X + col*width/cols
		hex := "#000000"
		if c, ok := colorful.MakeColor(img.At(x, bounds.Min.Y+bounds.Dy()/2)); ok {
			hex = c.Hex()
		}
		marker := " "
		switch col {
		case firstCol:
			marker = "1"
		case lastCol:
			marker = "2"
		}
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(hex)).Foreground(lipgloss.Color("#000000")).Render(marker))
	}
	return b.String()
}

func (m Model) colorsView() string {
	c := m.panel.Colors
	ch := c.Channels()
	swatch := func(slot colors.Slot) string {
		hsl := c.Color(slot)
		return lipgloss.NewStyle().Background(lipgloss.Color(swatchHex(hsl, ch))).Render("    ") +
			fmt.Sprintf(" %s s%.0f l%.0f ", hsl.HSL(ch), hsl.Saturation, hsl.Level)
	}
	return labelStyle.Render("colors") + swatch(colors.First) + " → " + swatch(colors.Last)
}

// swatchHex renders a colour the way an led written with it would appear
func swatchHex(c colors.HslColor, ch models.Channels) string {
	leds := []models.LED{{}}
	hue, sat, level := c.HTMLHue, c.Saturation, c.Level
	leds[0].Hue, leds[0].Saturation, leds[0].Level = &hue, &sat, &level
	scene.Render(leds, ch)
	return leds[0].Hex
}

func (m Model) previewView() string {
	perRow := m.ledsPerRow()
	var b strings.Builder
	for start := 0; start < len(m.leds) || start == 0; start += perRow {
		if start == 0 {
			b.WriteString(labelStyle.Render("preview"))
		} else {
			b.WriteString("\n")
			b.WriteString(labelStyle.Render(""))
		}
		end := min(start+perRow, len(m.leds))
		for i := start; i < end; i++ {
			marker := " "
			if m.panel.Selector.IsSelected(i) {
				marker = "▁"
			}
			b.WriteString(lipgloss.NewStyle().
				Background(lipgloss.Color(m.leds[i].Hex)).
				Foreground(lipgloss.Color("#ffffff")).
				Render(marker))
		}
		if len(m.leds) == 0 {
			break
		}
	}
	return b.String()
}
