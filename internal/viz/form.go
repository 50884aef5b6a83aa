package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/trajsim/internal/experiment"
	"github.com/san-kum/trajsim/internal/form"
	"github.com/san-kum/trajsim/internal/trajectory"
)

const (
	fieldSpeed = iota
	fieldAngle
	fieldAir
	fieldMass
	fieldDrag
)

var fieldLabels = map[int]string{
	fieldSpeed: "Initial speed (m/s)",
	fieldAngle: "Launch angle (deg)",
	fieldAir:   "Air resistance",
	fieldMass:  "Mass (kg)",
	fieldDrag:  "Drag coefficient k",
}

// FormModel is the interactive launch form. Every edit recomputes the
// trajectory.
type FormModel struct {
	input    form.Form
	cursor   int
	registry *experiment.Registry
	engine   trajectory.Config
	result   *trajectory.Result
	err      error
	width    int
	height   int
}

func NewFormModel(registry *experiment.Registry, engine trajectory.Config, initial form.Form) FormModel {
	m := FormModel{
		input:    initial,
		registry: registry,
		engine:   engine,
		width:    80,
		height:   24,
	}
	m.recompute()
	return m
}

// RunForm starts the launch form on the terminal.
func RunForm(registry *experiment.Registry, engine trajectory.Config, initial form.Form) error {
	p := tea.NewProgram(NewFormModel(registry, engine, initial), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m FormModel) Init() tea.Cmd { return nil }

func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m FormModel) handleKey(msg tea.KeyMsg) (FormModel, tea.Cmd) {
	switch key := msg.String(); key {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "shift+tab":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "tab", "enter":
		if m.cursor == fieldAir && key == "enter" {
			m.toggleAir()
			break
		}
		if m.cursor < len(m.fields())-1 {
			m.cursor++
		}
	case " ", "space":
		if m.cursor == fieldAir {
			m.toggleAir()
		}
	case "backspace":
		if f := m.field(); f != nil && len(*f) > 0 {
			*f = (*f)[:len(*f)-1]
			m.recompute()
		}
	default:
		if f := m.field(); f != nil && isNumeric(key) {
			*f += key
			m.recompute()
		}
	}
	return m, nil
}

// fields lists the visible fields; mass and k only appear with air resistance.
func (m *FormModel) fields() []int {
	if m.input.AirResistance {
		return []int{fieldSpeed, fieldAngle, fieldAir, fieldMass, fieldDrag}
	}
	return []int{fieldSpeed, fieldAngle, fieldAir}
}

// field returns the text under the cursor, or nil for the toggle.
func (m *FormModel) field() *string {
	switch m.cursor {
	case fieldSpeed:
		return &m.input.Speed
	case fieldAngle:
		return &m.input.Angle
	case fieldMass:
		return &m.input.Mass
	case fieldDrag:
		return &m.input.Drag
	}
	return nil
}

func (m *FormModel) toggleAir() {
	m.input.AirResistance = !m.input.AirResistance
	m.recompute()
}

func (m *FormModel) recompute() {
	m.result, m.err = m.input.Evaluate(m.registry, m.engine)
}

func isNumeric(key string) bool {
	if len(key) != 1 {
		return false
	}
	c := key[0]
	return (c >= '0' && c <= '9') || c == '.' || c == '-' || c == 'e'
}

func (m FormModel) View() string {
	var b strings.Builder

	b.WriteString(Title.Render("Projectile parameters"))
	b.WriteString("\n\n")

	for _, f := range m.fields() {
		b.WriteString(m.renderField(f))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	var results string
	if m.err != nil {
		results = GlassPanel.Render(ErrorText.Render(m.err.Error()))
	} else {
		results = FormatResult(m.result)
	}

	chartWidth := max(m.width-30, 20)
	chart := PlotHeights(m.result, chartWidth, max(m.height/3, 5), "height (m) over time")
	if m.err != nil {
		chart = ""
	}

	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, results, "", chart))
	b.WriteString("\n\n")
	b.WriteString(KeyHint.Render("↑/↓ move • type digits to edit • space toggles air resistance • esc quit"))

	return b.String()
}

func (m FormModel) renderField(f int) string {
	label := MetricLabel.Render(fmt.Sprintf("%-22s", fieldLabels[f]))

	var value string
	switch f {
	case fieldAir:
		if m.input.AirResistance {
			value = ToggleOn.Render("[on]")
		} else {
			value = ToggleOff.Render("[off]")
		}
	case fieldSpeed:
		value = m.input.Speed
	case fieldAngle:
		value = m.input.Angle
	case fieldMass:
		value = m.input.Mass
	case fieldDrag:
		value = m.input.Drag
	}

	if f != m.cursor {
		// border plus padding of the focus panel
		return "   " + label + MetricValue.Render(value)
	}

	if f != fieldAir {
		value += "_"
	}
	return FocusPanel.Render(label + MetricValue.Render(value))
}

// Input returns the current form contents.
func (m FormModel) Input() form.Form { return m.input }

// Result returns the latest computation and its error.
func (m FormModel) Result() (*trajectory.Result, error) { return m.result, m.err }
