package viz

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Theme is the palette behind the form and result panels.
type Theme struct {
	Name    string
	Border  lipgloss.Color
	Focus   lipgloss.Color
	Value   lipgloss.Color
	Label   lipgloss.Color
	Hint    lipgloss.Color
	Good    lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
}

var (
	ThemeLab = Theme{
		Name:    "lab",
		Border:  lipgloss.Color("#444466"),
		Focus:   lipgloss.Color("#00ffff"),
		Value:   lipgloss.Color("#00ccff"),
		Label:   lipgloss.Color("#888899"),
		Hint:    lipgloss.Color("#666688"),
		Good:    lipgloss.Color("#00ff88"),
		Warning: lipgloss.Color("#ffcc00"),
		Error:   lipgloss.Color("#ff4444"),
	}

	ThemePhosphor = Theme{
		Name:    "phosphor",
		Border:  lipgloss.Color("#005500"),
		Focus:   lipgloss.Color("#00ff00"),
		Value:   lipgloss.Color("#88ff88"),
		Label:   lipgloss.Color("#00aa00"),
		Hint:    lipgloss.Color("#005500"),
		Good:    lipgloss.Color("#88ff88"),
		Warning: lipgloss.Color("#ffff00"),
		Error:   lipgloss.Color("#ff0000"),
	}

	ThemeOcean = Theme{
		Name:    "ocean",
		Border:  lipgloss.Color("#4488aa"),
		Focus:   lipgloss.Color("#ffd700"),
		Value:   lipgloss.Color("#00a8cc"),
		Label:   lipgloss.Color("#a0c0dd"),
		Hint:    lipgloss.Color("#4488aa"),
		Good:    lipgloss.Color("#00ff88"),
		Warning: lipgloss.Color("#ffcc00"),
		Error:   lipgloss.Color("#ff4444"),
	}

	CurrentTheme = ThemeLab

	Themes = []Theme{ThemeLab, ThemePhosphor, ThemeOcean}
)

// GetTheme returns a theme by name
func GetTheme(name string) (Theme, bool) {
	for _, t := range Themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// SetTheme switches the package styles to the named theme.
func SetTheme(name string) error {
	t, ok := GetTheme(name)
	if !ok {
		return fmt.Errorf("unknown theme: %s (available: %v)", name, ThemeNames())
	}
	applyTheme(t)
	return nil
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

func applyTheme(t Theme) {
	CurrentTheme = t

	GlassPanel = GlassPanel.BorderForeground(t.Border)
	FocusPanel = GlassPanel.BorderForeground(t.Focus)
	Title = Title.Foreground(t.Focus)
	MetricValue = MetricValue.Foreground(t.Value)
	MetricLabel = MetricLabel.Foreground(t.Label)
	KeyHint = KeyHint.Foreground(t.Hint)
	ErrorText = ErrorText.Foreground(t.Error)
	ToggleOn = ToggleOn.Foreground(t.Good)
	ToggleOff = ToggleOff.Foreground(t.Hint)
	SparkHigh = SparkHigh.Foreground(t.Good)
	SparkMid = SparkMid.Foreground(t.Warning)
	SparkLow = SparkLow.Foreground(t.Error)
}
