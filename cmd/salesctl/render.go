package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sangkips/salestrack-api/internal/domain/enum"
)

var badgeBase = lipgloss.NewStyle().Padding(0, 1).Bold(true)

// badgeColors maps the label table's colour classes to terminal colours
var badgeColors = map[string]lipgloss.Color{
	"bg-success":   lipgloss.Color("28"),
	"bg-danger":    lipgloss.Color("160"),
	"bg-warning":   lipgloss.Color("214"),
	"bg-info":      lipgloss.Color("37"),
	"bg-primary":   lipgloss.Color("33"),
	"bg-secondary": lipgloss.Color("243"),
	"bg-dark":      lipgloss.Color("236"),
}

func badge(entity enum.EntityType, status string) string {
	if status == "" {
		return "-"
	}
	return renderLabel(enum.LabelFor(entity, status))
}

func renderLabel(label enum.StatusLabel) string {
	classes := strings.Fields(label.Color)
	style := badgeBase.Foreground(lipgloss.Color("255")).Background(badgeColors[enum.DefaultLabelColor])
	for _, class := range classes {
		if bg, ok := badgeColors[class]; ok {
			style = style.Background(bg)
		}
		if class == "text-dark" {
			style = style.Foreground(lipgloss.Color("16"))
		}
	}
	return style.Render(label.Text)
}
