// Package theme provides colour themes for the terminal and web front ends.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/chmouel/lazycode/internal/view"
)

// Theme defines all colors used in the application UI.
type Theme struct {
	Background lipgloss.Color
	Accent     lipgloss.Color
	AccentFg   lipgloss.Color // Foreground color for text on Accent background
	AccentDim  lipgloss.Color
	Border     lipgloss.Color
	BorderDim  lipgloss.Color
	MutedFg    lipgloss.Color
	TextFg     lipgloss.Color
	SuccessFg  lipgloss.Color
	WarnFg     lipgloss.Color
	ErrorFg    lipgloss.Color
	Cyan       lipgloss.Color
	Pink       lipgloss.Color
	Yellow     lipgloss.Color

	// Optional editor colours; empty values fall back in RoleColor.
	Panel     lipgloss.Color
	Selection lipgloss.Color
	BrightFg  lipgloss.Color
	Status    lipgloss.Color
	StatusFg  lipgloss.Color
}

// Theme names.
const (
	VSCodeDarkName      = "vscode-dark"
	DraculaName         = "dracula"
	DraculaLightName    = "dracula-light"
	NarnaName           = "narna"
	CleanLightName      = "clean-light"
	NordName            = "nord"
	MonokaiName         = "monokai"
	CatppuccinMochaName = "catppuccin-mocha"
)

// VSCodeDark returns the default theme, modelled on the classic dark editor.
func VSCodeDark() *Theme {
	return &Theme{
		Background: lipgloss.Color("#1E1E1E"),
		Accent:     lipgloss.Color("#75BEFF"), // Selected file icon
		AccentFg:   lipgloss.Color("#1E1E1E"),
		AccentDim:  lipgloss.Color("#2A2D2E"), // Hover row
		Border:     lipgloss.Color("#3C3C3C"),
		BorderDim:  lipgloss.Color("#2D2D2D"),
		MutedFg:    lipgloss.Color("#858585"),
		TextFg:     lipgloss.Color("#CCCCCC"),
		SuccessFg:  lipgloss.Color("#89D185"),
		WarnFg:     lipgloss.Color("#CCA700"),
		ErrorFg:    lipgloss.Color("#F48771"),
		Cyan:       lipgloss.Color("#4EC9B0"),
		Pink:       lipgloss.Color("#C586C0"),
		Yellow:     lipgloss.Color("#DCDCAA"),
		Panel:      lipgloss.Color("#252526"),
		Selection:  lipgloss.Color("#37373D"),
		BrightFg:   lipgloss.Color("#FFFFFF"),
		Status:     lipgloss.Color("#007ACC"),
		StatusFg:   lipgloss.Color("#FFFFFF"),
	}
}

// Dracula returns the Dracula theme (dark background, vibrant colors).
func Dracula() *Theme {
	return &Theme{
		Background: lipgloss.Color("#282A36"), // Background
		Accent:     lipgloss.Color("#BD93F9"), // Purple (primary accent)
		AccentFg:   lipgloss.Color("#282A36"), // Dark text on accent
		AccentDim:  lipgloss.Color("#44475A"), // Current Line / Selection
		Border:     lipgloss.Color("#6272A4"), // Comment (subtle borders)
		BorderDim:  lipgloss.Color("#44475A"), // Darker borders
		MutedFg:    lipgloss.Color("#6272A4"), // Comment (muted text)
		TextFg:     lipgloss.Color("#F8F8F2"), // Foreground (primary text)
		SuccessFg:  lipgloss.Color("#50FA7B"), // Green (success)
		WarnFg:     lipgloss.Color("#FFB86C"), // Orange (warning)
		ErrorFg:    lipgloss.Color("#FF5555"), // Red (error)
		Cyan:       lipgloss.Color("#8BE9FD"), // Cyan (info/secondary)
		Pink:       lipgloss.Color("#FF79C6"), // Pink (alternative accent)
		Yellow:     lipgloss.Color("#F1FA8C"), // Yellow (alternative highlight)
	}
}

// DraculaLight returns the Dracula theme adapted for light backgrounds.
func DraculaLight() *Theme {
	return &Theme{
		Background: lipgloss.Color("#FFFFFF"), // White
		Accent:     lipgloss.Color("#c6dbe5"), // Purple (darker for light bg)
		AccentFg:   lipgloss.Color("#24292F"), // Dark text on accent
		AccentDim:  lipgloss.Color("#F3E8FF"), // Light purple wash
		Border:     lipgloss.Color("#D0D7DE"), // Subtle gray border
		BorderDim:  lipgloss.Color("#E8E8E8"), // Lighter border
		MutedFg:    lipgloss.Color("#6E7781"), // Muted gray text
		TextFg:     lipgloss.Color("#24292F"), // Dark text
		SuccessFg:  lipgloss.Color("#059669"), // Green
		WarnFg:     lipgloss.Color("#D97706"), // Orange
		ErrorFg:    lipgloss.Color("#DC2626"), // Red
		Cyan:       lipgloss.Color("#0891B2"), // Cyan/Teal
		Pink:       lipgloss.Color("#DB2777"), // Pink
		Yellow:     lipgloss.Color("#CA8A04"), // Yellow
	}
}

// Narna returns a balanced dark theme with blue accents.
func Narna() *Theme {
	return &Theme{
		Background: lipgloss.Color("#0D1117"), // Charcoal background
		Accent:     lipgloss.Color("#41ADFF"), // Blue accent
		AccentFg:   lipgloss.Color("#0D1117"), // Dark text on accent
		AccentDim:  lipgloss.Color("#1A2230"), // Selected rows / panels
		Border:     lipgloss.Color("#30363D"), // Subtle borders
		BorderDim:  lipgloss.Color("#20252D"), // Dim borders
		MutedFg:    lipgloss.Color("#8B949E"), // Muted text
		TextFg:     lipgloss.Color("#E6EDF3"), // Primary text
		SuccessFg:  lipgloss.Color("#3FB950"), // Success green
		WarnFg:     lipgloss.Color("#E3B341"), // Warning amber
		ErrorFg:    lipgloss.Color("#F47067"), // Soft red
		Cyan:       lipgloss.Color("#7CE0F3"), // Cyan highlights
		Pink:       lipgloss.Color("#D2A8FF"), // Accent purple/pink
		Yellow:     lipgloss.Color("#F2CC60"), // Highlight yellow
	}
}

// CleanLight returns a theme optimized for light terminal backgrounds.
func CleanLight() *Theme {
	return &Theme{
		Background: lipgloss.Color("#FFFFFF"), // Pure White
		Accent:     lipgloss.Color("#c6dbe5"), // Cyan (matching header)
		AccentFg:   lipgloss.Color("#24292F"), // Dark text on accent
		AccentDim:  lipgloss.Color("#DDF4FF"), // Very light blue wash
		Border:     lipgloss.Color("#D0D7DE"), // Subtle cool gray
		BorderDim:  lipgloss.Color("#E1E4E8"), // Very subtle divider
		MutedFg:    lipgloss.Color("#6E7781"), // Muted gray text
		TextFg:     lipgloss.Color("#24292F"), // Deep charcoal (softer than black)
		SuccessFg:  lipgloss.Color("#1A7F37"), // Success green
		WarnFg:     lipgloss.Color("#9A6700"), // Warning brown/orange
		ErrorFg:    lipgloss.Color("#CF222E"), // Error red
		Cyan:       lipgloss.Color("#0598BC"), // Cyan
		Pink:       lipgloss.Color("#BF3989"), // Pink
		Yellow:     lipgloss.Color("#D4A72C"), // Yellow
	}
}

// Nord returns the Nord theme.
func Nord() *Theme {
	return &Theme{
		Background: lipgloss.Color("#2E3440"),
		Accent:     lipgloss.Color("#88C0D0"),
		AccentFg:   lipgloss.Color("#2E3440"), // Dark text on accent
		AccentDim:  lipgloss.Color("#3B4252"),
		Border:     lipgloss.Color("#4C566A"),
		BorderDim:  lipgloss.Color("#434C5E"),
		MutedFg:    lipgloss.Color("#81A1C1"),
		TextFg:     lipgloss.Color("#E5E9F0"),
		SuccessFg:  lipgloss.Color("#A3BE8C"),
		WarnFg:     lipgloss.Color("#EBCB8B"),
		ErrorFg:    lipgloss.Color("#BF616A"),
		Cyan:       lipgloss.Color("#88C0D0"),
		Pink:       lipgloss.Color("#B48EAD"),
		Yellow:     lipgloss.Color("#EBCB8B"),
	}
}

// Monokai returns the Monokai theme.
func Monokai() *Theme {
	return &Theme{
		Background: lipgloss.Color("#272822"),
		Accent:     lipgloss.Color("#A6E22E"),
		AccentFg:   lipgloss.Color("#272822"), // Dark text on green accent
		AccentDim:  lipgloss.Color("#3E3D32"),
		Border:     lipgloss.Color("#75715E"),
		BorderDim:  lipgloss.Color("#3E3D32"),
		MutedFg:    lipgloss.Color("#75715E"),
		TextFg:     lipgloss.Color("#F8F8F2"),
		SuccessFg:  lipgloss.Color("#A6E22E"),
		WarnFg:     lipgloss.Color("#FD971F"),
		ErrorFg:    lipgloss.Color("#F92672"),
		Cyan:       lipgloss.Color("#66D9EF"),
		Pink:       lipgloss.Color("#F92672"),
		Yellow:     lipgloss.Color("#E6DB74"),
	}
}

// CatppuccinMocha returns the Catppuccin Mocha theme.
func CatppuccinMocha() *Theme {
	return &Theme{
		Background: lipgloss.Color("#1E1E2E"),
		Accent:     lipgloss.Color("#B4BEFE"),
		AccentFg:   lipgloss.Color("#1E1E2E"), // Dark text on accent
		AccentDim:  lipgloss.Color("#313244"),
		Border:     lipgloss.Color("#45475A"),
		BorderDim:  lipgloss.Color("#313244"),
		MutedFg:    lipgloss.Color("#6C7086"),
		TextFg:     lipgloss.Color("#CDD6F4"),
		SuccessFg:  lipgloss.Color("#A6E3A1"),
		WarnFg:     lipgloss.Color("#F9E2AF"),
		ErrorFg:    lipgloss.Color("#F38BA8"),
		Cyan:       lipgloss.Color("#89DCEB"),
		Pink:       lipgloss.Color("#F5C2E7"),
		Yellow:     lipgloss.Color("#F9E2AF"),
	}
}

// GetTheme returns a theme by name, or VSCodeDark if not found.
func GetTheme(name string) *Theme {
	switch name {
	case DraculaName:
		return Dracula()
	case DraculaLightName:
		return DraculaLight()
	case NarnaName:
		return Narna()
	case CleanLightName:
		return CleanLight()
	case NordName:
		return Nord()
	case MonokaiName:
		return Monokai()
	case CatppuccinMochaName:
		return CatppuccinMocha()
	default:
		return VSCodeDark()
	}
}

// IsLight returns true if the theme is a light theme.
func IsLight(name string) bool {
	switch name {
	case DraculaLightName, CleanLightName:
		return true
	default:
		return false
	}
}

// DefaultDark returns the default dark theme name.
func DefaultDark() string {
	return VSCodeDarkName
}

// DefaultLight returns the default light theme name.
func DefaultLight() string {
	return CleanLightName
}

// AvailableThemes returns a list of available theme names.
func AvailableThemes() []string {
	return []string{
		VSCodeDarkName,
		DraculaName,
		DraculaLightName,
		NarnaName,
		CleanLightName,
		NordName,
		MonokaiName,
		CatppuccinMochaName,
	}
}

// RoleColor resolves a semantic view colour. The empty role yields "".
func (t *Theme) RoleColor(role view.Role) lipgloss.Color {
	switch role {
	case view.RoleText:
		return t.TextFg
	case view.RoleBright:
		return fallback(t.BrightFg, t.TextFg)
	case view.RoleMuted:
		return t.MutedFg
	case view.RoleAccent:
		return t.Accent
	case view.RoleSelection:
		return fallback(t.Selection, t.AccentDim)
	case view.RolePanel:
		return fallback(t.Panel, t.Background)
	case view.RoleHeading:
		return t.MutedFg
	case view.RoleStatus:
		return fallback(t.Status, t.Accent)
	case view.RoleStatusFg:
		return fallback(t.StatusFg, t.AccentFg)
	default:
		return ""
	}
}

func fallback(c, def lipgloss.Color) lipgloss.Color {
	if c == "" {
		return def
	}
	return c
}
