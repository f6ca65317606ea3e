package theme

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
)

// Colors
var (
	Primary = lipgloss.Color("#33A8FF")
	Muted   = lipgloss.Color("#6B7280")
	Success = lipgloss.Color("#10B981")
	Warning = lipgloss.Color("#F59E0B")
	Error   = lipgloss.Color("#EF4444")
)

// Shared styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	CellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	BorderStyle = lipgloss.NewStyle().
			Foreground(Muted)
)

// StatusColor maps CCE cluster phases and ECS server states to theme colors.
func StatusColor(status string) color.Color {
	switch strings.ToLower(status) {
	case "available", "active":
		return Success
	case "unavailable", "error", "shutoff", "deleted", "upgradefailed",
		"rollbackfailed", "hibernation":
		return Error
	case "creating", "deleting", "upgrading", "resizing", "hibernating",
		"awaking", "rollingback", "build", "reboot", "hard_reboot", "rebuild",
		"migrating", "resize", "verify_resize", "revert_resize":
		return Warning
	default:
		return Muted
	}
}

// RenderStatus renders a status string with a colored bullet.
func RenderStatus(status string) string {
	c := StatusColor(status)
	bullet := lipgloss.NewStyle().Foreground(c).Render("●")
	return bullet + " " + status
}
