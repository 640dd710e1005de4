package playerbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jojongai/portfolio/internal/ui/styles"
)

func barStyle() lipgloss.Style {
	return styles.PanelStyle(false)
}

func titleStyle() lipgloss.Style {
	return styles.T().S().Title
}

func subtitleStyle() lipgloss.Style {
	return styles.T().S().Muted
}

func timeStyle() lipgloss.Style {
	return styles.T().S().Muted
}

func disabledStyle() lipgloss.Style {
	return styles.T().S().Subtle
}

func activeStyle() lipgloss.Style {
	return styles.T().S().Playing
}

func progressBarFilled() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.T().Primary)
}

func progressBarEmpty() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.T().Border)
}
