package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vrclub/kiosk/internal/catalog"
)

// handleBrowseKey processes visitor-facing keys plus the hidden operator
// gestures: triple-tap "a" opens the admin panel, "S" forces attract mode.
func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.visible()

	switch msg.String() {
	case "a":
		now := time.Now()
		if now.Sub(m.lastTapAt) > adminTapWindow {
			m.adminTaps = 0
		}
		m.adminTaps++
		m.lastTapAt = now
		if m.adminTaps >= adminTapCount {
			m.adminTaps = 0
			m.openAdmin()
		}
		return m, nil

	case "S":
		m.idleCtl.ForceAttract()
		m.videoStarted = time.Now()
		return m, nil

	case "j", "down":
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		m.cursor = len(visible) - 1

	case "left", "h":
		m.cycleFilter(-1)
	case "right", "l":
		m.cycleFilter(1)

	case "enter":
		if len(visible) > 0 {
			m.showDetail = !m.showDetail
		}
	case "esc":
		m.showDetail = false
	}

	return m, nil
}

// cycleFilter steps through ALL plus every derived tag, clamping the
// cursor into the new projection and persisting the choice.
func (m *Model) cycleFilter(step int) {
	selectors := append([]string{catalog.SelectorAll}, m.tags...)
	idx := 0
	for i, s := range selectors {
		if s == m.filter {
			idx = i
			break
		}
	}
	idx = (idx + step + len(selectors)) % len(selectors)
	m.filter = selectors[idx]
	m.cursor = clamp(m.cursor, 0, len(m.visible())-1)
	m.savePrefs()
}

func (m Model) renderBrowse() string {
	st := m.theme.Styles()
	var b strings.Builder

	header := st.Header.Width(m.width).Render("VR CLUB  ·  GAME CATALOG")
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(m.renderFilterBar(st))
	b.WriteString("\n\n")

	visible := m.visible()
	if len(visible) == 0 {
		b.WriteString(st.Muted.Render("  No games in catalog"))
		b.WriteString("\n")
	} else if m.showDetail {
		b.WriteString(m.renderDetail(st, visible[m.cursor]))
	} else {
		b.WriteString(m.renderList(st, visible))
	}

	b.WriteString("\n")
	footer := fmt.Sprintf("%d games  ·  enter details  ·  ←/→ filter", len(visible))
	if m.status != "" {
		footer += "  ·  " + m.status
	}
	b.WriteString(st.Footer.Width(m.width).Render(footer))
	return b.String()
}

func (m Model) renderFilterBar(st Styles) string {
	parts := make([]string, 0, len(m.tags)+1)
	for _, sel := range append([]string{catalog.SelectorAll}, m.tags...) {
		label := sel
		if sel == catalog.SelectorAll {
			label = "ALL GAMES"
		}
		if sel == m.filter {
			parts = append(parts, st.TagOn.Render(label))
		} else {
			parts = append(parts, st.Tag.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderList(st Styles, visible []catalog.GameRecord) string {
	var b strings.Builder
	maxRows := m.height - 7
	if maxRows < 1 {
		maxRows = 1
	}
	start := 0
	if m.cursor >= maxRows {
		start = m.cursor - maxRows + 1
	}
	for i := start; i < len(visible) && i < start+maxRows; i++ {
		g := visible[i]
		line := fmt.Sprintf("  %s  %s", padRight(g.Name, 32), st.Muted.Render(strings.Join(g.Tags, " ")))
		if i == m.cursor {
			line = st.Selected.Render("▸ " + padRight(g.Name, 32))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderDetail(st Styles, g catalog.GameRecord) string {
	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(st.Accent.Render(g.Name))
	b.WriteString("\n\n")

	if len(g.Tags) > 0 {
		b.WriteString("  ")
		b.WriteString(st.Warning.Render(strings.Join(g.Tags, "  ")))
		b.WriteString("\n\n")
	}
	for _, para := range strings.Split(g.Description, "\n") {
		if para == "" {
			continue
		}
		b.WriteString("  ")
		b.WriteString(st.Text.Render(truncate(para, m.width-4)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	players := g.Players
	if players == "" {
		players = "1"
	}
	b.WriteString("  " + st.Muted.Render("Players: ") + st.Text.Render(players) + "\n")
	if g.Time > 0 {
		b.WriteString("  " + st.Muted.Render("Session: ") + st.Text.Render(fmt.Sprintf("%d min", g.Time)) + "\n")
	}
	if g.Video != "" {
		b.WriteString("  " + st.Muted.Render("Video:   ") + st.Text.Render(g.Video) + "\n")
	}
	return b.String()
}
