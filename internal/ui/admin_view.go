package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vrclub/kiosk/internal/picker"
)

type adminPhase int

const (
	phasePIN adminPhase = iota
	phaseList
	phaseEdit
	phaseConfirm
)

// adminState holds the operator panel's view state. The panel's actual
// semantics (draft, upsert, commit) live in the admin session; this is
// only input plumbing around it.
type adminState struct {
	phase     adminPhase
	pin       textinput.Model
	row       int
	confirmID string
	form      editForm
}

type editForm struct {
	name     textinput.Model
	players  textinput.Model
	minutes  textinput.Model
	desc     textarea.Model
	tagEntry textinput.Model

	focus       int // 0 name, 1 players, 2 minutes, 3 description, 4 tag palette
	tagCursor   int
	enteringTag bool
}

const formTagRow = 4

func newAdminState() adminState {
	pin := textinput.New()
	pin.Placeholder = "PIN"
	pin.EchoMode = textinput.EchoPassword
	pin.CharLimit = 8
	pin.Width = 12
	return adminState{phase: phasePIN, pin: pin}
}

func newEditForm(name, players string, minutes int, desc string) editForm {
	f := editForm{}

	f.name = textinput.New()
	f.name.Placeholder = "Game name"
	f.name.CharLimit = 80
	f.name.Width = 40
	f.name.SetValue(name)
	f.name.Focus()

	f.players = textinput.New()
	f.players.Placeholder = "1-4"
	f.players.CharLimit = 16
	f.players.Width = 16
	f.players.SetValue(players)

	f.minutes = textinput.New()
	f.minutes.Placeholder = "minutes"
	f.minutes.CharLimit = 4
	f.minutes.Width = 8
	if minutes > 0 {
		f.minutes.SetValue(strconv.Itoa(minutes))
	}

	f.desc = textarea.New()
	f.desc.Placeholder = "Description"
	f.desc.SetWidth(60)
	f.desc.SetHeight(6)
	f.desc.SetValue(desc)

	f.tagEntry = textinput.New()
	f.tagEntry.Placeholder = "new tag"
	f.tagEntry.CharLimit = 24
	f.tagEntry.Width = 16

	return f
}

// openAdmin resets the session and shows the PIN gate.
func (m *Model) openAdmin() {
	m.session.Open()
	m.admin = newAdminState()
	m.admin.pin.Focus()
	m.mode = modeAdmin
	m.status = ""
}

func (m *Model) closeAdmin() {
	m.session.Cancel()
	m.mode = modeBrowse
	m.status = ""
}

func (m Model) handleAdminKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.admin.phase {
	case phasePIN:
		return m.handlePINKey(msg)
	case phaseList:
		return m.handleListKey(msg)
	case phaseEdit:
		return m.handleEditKey(msg)
	case phaseConfirm:
		return m.handleConfirmKey(msg)
	}
	return m, nil
}

func (m Model) handlePINKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeAdmin()
		return m, nil
	case "enter":
		if err := m.session.Unlock(m.admin.pin.Value()); err != nil {
			m.status = "Wrong PIN"
			m.admin.pin.SetValue("")
			return m, nil
		}
		m.admin.phase = phaseList
		m.admin.row = 0
		m.status = ""
		return m, nil
	}
	var cmd tea.Cmd
	m.admin.pin, cmd = m.admin.pin.Update(msg)
	return m, cmd
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeAdmin()
		return m, nil

	case "j", "down":
		if m.admin.row < len(m.games)-1 {
			m.admin.row++
		}
	case "k", "up":
		if m.admin.row > 0 {
			m.admin.row--
		}

	case "J":
		// Drag-down: the new order shows immediately, persisted only on "o".
		if m.admin.row < len(m.games)-1 {
			if err := m.session.Reorder(moveRecord(m.games, m.admin.row, m.admin.row+1)); err != nil {
				m.status = err.Error()
				return m, nil
			}
			m.admin.row++
			m.refreshData()
		}
	case "K":
		if m.admin.row > 0 {
			if err := m.session.Reorder(moveRecord(m.games, m.admin.row, m.admin.row-1)); err != nil {
				m.status = err.Error()
				return m, nil
			}
			m.admin.row--
			m.refreshData()
		}

	case "o":
		if m.session.Busy() {
			m.status = "Busy, try again"
			return m, nil
		}
		m.status = "Saving order..."
		return m, commitOrderCmd(m.ctx, m.session)

	case "n":
		m.session.StartNew()
		m.admin.form = newEditForm("", "1", 0, "")
		m.admin.phase = phaseEdit
		m.status = ""

	case "e":
		if len(m.games) > 0 {
			g := m.games[m.admin.row]
			m.session.StartEdit(g)
			m.admin.form = newEditForm(g.Name, g.Players, g.Time, g.Description)
			m.admin.phase = phaseEdit
			m.status = ""
		}

	case "d":
		if len(m.games) > 0 {
			m.admin.confirmID = m.games[m.admin.row].ID
			m.admin.phase = phaseConfirm
		}
	}
	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		id := m.admin.confirmID
		m.admin.phase = phaseList
		m.status = "Deleting " + id + "..."
		return m, deleteCmd(m.ctx, m.session, id)
	case "n", "esc":
		m.admin.phase = phaseList
	}
	return m, nil
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.admin.form.enteringTag {
		switch msg.String() {
		case "enter":
			if err := m.session.AddTag(m.admin.form.tagEntry.Value()); err != nil {
				m.status = err.Error()
			}
			m.admin.form.tagEntry.SetValue("")
			m.admin.form.tagEntry.Blur()
			m.admin.form.enteringTag = false
			return m, nil
		case "esc":
			m.admin.form.tagEntry.SetValue("")
			m.admin.form.tagEntry.Blur()
			m.admin.form.enteringTag = false
			return m, nil
		}
		var cmd tea.Cmd
		m.admin.form.tagEntry, cmd = m.admin.form.tagEntry.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "esc":
		m.session.Cancel()
		m.admin.phase = phaseList
		m.status = ""
		return m, nil

	case "tab":
		m.admin.form.setFocus(m.admin.form.focus + 1)
		return m, nil
	case "shift+tab":
		m.admin.form.setFocus(m.admin.form.focus - 1)
		return m, nil

	case "ctrl+o":
		m.status = "Choosing cover..."
		return m, pickCmd(m.filePicker, picker.ClassImage)
	case "ctrl+b":
		m.status = "Choosing video..."
		return m, pickCmd(m.filePicker, picker.ClassVideo)

	case "ctrl+s":
		if m.session.Busy() {
			m.status = "Busy, try again"
			return m, nil
		}
		if !m.pushForm() {
			return m, nil
		}
		m.status = "Saving..."
		return m, saveCmd(m.ctx, m.session)
	}

	if m.admin.form.focus == formTagRow {
		palette := m.session.Palette()
		switch msg.String() {
		case "left":
			if m.admin.form.tagCursor > 0 {
				m.admin.form.tagCursor--
			}
			return m, nil
		case "right":
			if m.admin.form.tagCursor < len(palette)-1 {
				m.admin.form.tagCursor++
			}
			return m, nil
		case " ", "enter":
			if len(palette) > 0 {
				if err := m.session.ToggleTag(palette[m.admin.form.tagCursor]); err != nil {
					m.status = err.Error()
				}
			}
			return m, nil
		case "+":
			m.admin.form.enteringTag = true
			m.admin.form.tagEntry.Focus()
			return m, nil
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.admin.form.focus {
	case 0:
		m.admin.form.name, cmd = m.admin.form.name.Update(msg)
	case 1:
		m.admin.form.players, cmd = m.admin.form.players.Update(msg)
	case 2:
		m.admin.form.minutes, cmd = m.admin.form.minutes.Update(msg)
	case 3:
		m.admin.form.desc, cmd = m.admin.form.desc.Update(msg)
	}
	return m, cmd
}

// pushForm copies the form fields onto the session draft. Returns false
// when a field fails local validation; the draft keeps its last values.
func (m *Model) pushForm() bool {
	minutes := 0
	if v := strings.TrimSpace(m.admin.form.minutes.Value()); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			m.status = "Session length must be a number of minutes"
			return false
		}
		minutes = n
	}
	if err := m.session.SetName(m.admin.form.name.Value()); err != nil {
		m.status = err.Error()
		return false
	}
	_ = m.session.SetPlayers(m.admin.form.players.Value())
	_ = m.session.SetTime(minutes)
	_ = m.session.SetDescription(m.admin.form.desc.Value())
	return true
}

func (f *editForm) setFocus(next int) {
	const fields = 5
	f.focus = ((next % fields) + fields) % fields

	f.name.Blur()
	f.players.Blur()
	f.minutes.Blur()
	f.desc.Blur()
	switch f.focus {
	case 0:
		f.name.Focus()
	case 1:
		f.players.Focus()
	case 2:
		f.minutes.Focus()
	case 3:
		f.desc.Focus()
	}
}

// Rendering

func (m Model) renderAdmin() string {
	st := m.theme.Styles()
	var b strings.Builder
	b.WriteString(st.Header.Width(m.width).Render("OPERATOR PANEL"))
	b.WriteString("\n\n")

	switch m.admin.phase {
	case phasePIN:
		b.WriteString("  " + st.Text.Render("Enter PIN") + "\n\n")
		b.WriteString("  " + m.admin.pin.View() + "\n")
	case phaseList:
		b.WriteString(m.renderAdminList(st))
	case phaseEdit:
		b.WriteString(m.renderAdminEdit(st))
	case phaseConfirm:
		b.WriteString("  " + st.Danger.Render("Delete "+m.admin.confirmID+"?") + "  " + st.Muted.Render("y/n") + "\n")
	}

	b.WriteString("\n")
	b.WriteString(st.Footer.Width(m.width).Render(m.adminFooter()))
	return b.String()
}

func (m Model) adminFooter() string {
	var keys string
	switch m.admin.phase {
	case phasePIN:
		keys = "enter unlock · esc close"
	case phaseList:
		keys = "n new · e edit · d delete · J/K move · o save order · esc close"
	case phaseEdit:
		keys = "tab field · space toggle tag · + new tag · ^O cover · ^B video · ^S save · esc cancel"
	case phaseConfirm:
		keys = "y confirm · n cancel"
	}
	if m.status != "" {
		keys += "  ·  " + m.status
	}
	return keys
}

func (m Model) renderAdminList(st Styles) string {
	var b strings.Builder
	if len(m.games) == 0 {
		b.WriteString(st.Muted.Render("  Catalog is empty"))
		b.WriteString("\n")
		return b.String()
	}
	for i, g := range m.games {
		line := fmt.Sprintf("  ≡ %s %s", padRight(g.Name, 32), st.Muted.Render(g.ID))
		if i == m.admin.row {
			line = st.Selected.Render("▸ ≡ " + padRight(g.Name, 32) + " " + g.ID)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderAdminEdit(st Styles) string {
	var b strings.Builder
	d, ok := m.session.Draft()
	if !ok {
		return st.Muted.Render("  No draft open") + "\n"
	}

	title := "EDIT  " + d.Record.ID
	if d.IsNew {
		title = "NEW GAME"
	}
	b.WriteString("  " + st.Accent.Render(title) + "\n\n")

	b.WriteString("  " + st.Muted.Render("Name        ") + m.admin.form.name.View() + "\n")
	b.WriteString("  " + st.Muted.Render("Players     ") + m.admin.form.players.View() + "\n")
	b.WriteString("  " + st.Muted.Render("Minutes     ") + m.admin.form.minutes.View() + "\n")
	b.WriteString("  " + st.Muted.Render("Description ") + "\n")
	b.WriteString(indent(m.admin.form.desc.View(), "  "))
	b.WriteString("\n")

	b.WriteString("  " + st.Muted.Render("Tags        ") + m.renderTagPalette(st, d.Record.Tags) + "\n")
	if m.admin.form.enteringTag {
		b.WriteString("  " + st.Muted.Render("New tag     ") + m.admin.form.tagEntry.View() + "\n")
	}

	cover := d.Record.Cover
	if d.PendingImage != "" {
		cover = d.PendingImage + " (pending)"
	}
	if cover == "" {
		cover = "none"
	}
	video := d.Record.Video
	if d.PendingVideo != "" {
		video = d.PendingVideo + " (pending)"
	}
	if video == "" {
		video = "none"
	}
	b.WriteString("  " + st.Muted.Render("Cover       ") + st.Text.Render(cover) + "\n")
	b.WriteString("  " + st.Muted.Render("Video       ") + st.Text.Render(video) + "\n")
	return b.String()
}

func (m Model) renderTagPalette(st Styles, active []string) string {
	palette := m.session.Palette()
	if len(palette) == 0 {
		return st.Muted.Render("(none · press + to add)")
	}
	on := make(map[string]bool, len(active))
	for _, t := range active {
		on[t] = true
	}
	parts := make([]string, 0, len(palette))
	for i, tag := range palette {
		label := tag
		if m.admin.form.focus == formTagRow && i == m.admin.form.tagCursor {
			label = "[" + tag + "]"
		}
		if on[tag] {
			parts = append(parts, st.TagOn.Render(label))
		} else {
			parts = append(parts, st.Tag.Render(label))
		}
	}
	return strings.Join(parts, " ")
}
