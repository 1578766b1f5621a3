package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderAttract draws the screensaver surface. The selected gameplay video
// plays muted full-screen on the real kiosk; here the surface shows which
// video is rolling plus the wake hint. Any press lands on the idle
// controller first and never reaches the views underneath.
func (m Model) renderAttract() string {
	st := m.theme.Styles()

	title := "VR CLUB"
	hint := "TAP ANYWHERE TO START"
	var lines []string

	if len(m.games) > 0 {
		g := m.games[m.idleCtl.VideoIndex()%len(m.games)]
		lines = append(lines,
			st.Accent.Render(title),
			"",
			st.Text.Render(g.Name),
			st.Muted.Render("now playing · "+g.Video),
		)
	} else {
		lines = append(lines, st.Accent.Render(title))
	}
	lines = append(lines, "", "", st.Warning.Render(hint))

	content := strings.Join(lines, "\n")
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
