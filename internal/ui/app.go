// Package ui is the Bubble Tea shell for the kiosk: the visitor-facing
// browse view, the attract-mode overlay, and the operator panel.
package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/vrclub/kiosk/internal/admin"
	"github.com/vrclub/kiosk/internal/catalog"
	"github.com/vrclub/kiosk/internal/idle"
	"github.com/vrclub/kiosk/internal/picker"
	"github.com/vrclub/kiosk/internal/prefs"
)

// mode is the top-level view the kiosk shows (attract overlays both).
type mode int

const (
	modeBrowse mode = iota
	modeAdmin
)

const (
	defaultTick = time.Second

	// attractDwell is how long one video "plays" before the attract loop
	// advances to the next one.
	attractDwell = 45 * time.Second

	// adminTapWindow bounds the hidden triple-tap gesture that opens the
	// operator panel.
	adminTapWindow = time.Second
	adminTapCount  = 3
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Store      *catalog.Store
	Session    *admin.Session
	Idle       *idle.Controller
	FilePicker picker.Picker
	Log        *zap.SugaredLogger
	ThemeName  string
	PrefsPath  string
	Filter     string
	TickEvery  time.Duration
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx        context.Context
	store      *catalog.Store
	session    *admin.Session
	idleCtl    *idle.Controller
	filePicker picker.Picker
	log        *zap.SugaredLogger
	prefsPath  string
	tickEvery  time.Duration

	theme  Theme
	width  int
	height int
	ready  bool
	mode   mode
	status string

	// Browse state
	games      []catalog.GameRecord
	tags       []string
	filter     string
	cursor     int
	showDetail bool

	// Attract state
	videoStarted time.Time

	// Hidden admin gesture
	adminTaps int
	lastTapAt time.Time

	// Operator panel state
	admin adminState
}

// New creates the root model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	tick := opts.TickEvery
	if tick <= 0 {
		tick = defaultTick
	}
	filter := opts.Filter
	if filter == "" {
		filter = catalog.SelectorAll
	}

	m := Model{
		ctx:        ctx,
		store:      opts.Store,
		session:    opts.Session,
		idleCtl:    opts.Idle,
		filePicker: opts.FilePicker,
		log:        log,
		prefsPath:  opts.PrefsPath,
		tickEvery:  tick,
		theme:      GetTheme(opts.ThemeName),
		filter:     filter,
		admin:      newAdminState(),
	}
	m.refreshData()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickEvery)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		// Pointer traffic only feeds inactivity detection; wake taps and
		// anything inside the resume window are swallowed either way.
		kind := idle.InputPointer
		if msg.Action == tea.MouseActionPress {
			kind = idle.InputTouch
		}
		m.idleCtl.Touch(time.Now(), kind)
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		return m.handleTick(time.Time(msg))

	case saveDoneMsg:
		if msg.err != nil {
			m.status = "Save failed: " + msg.err.Error()
			m.log.Errorw("save failed", "error", msg.err)
			return m, nil
		}
		m.status = "Saved"
		m.admin.phase = phaseList
		m.refreshData()
		return m, nil

	case deleteDoneMsg:
		if msg.err != nil {
			m.status = "Delete failed: " + msg.err.Error()
			m.log.Errorw("delete failed", "id", msg.id, "error", msg.err)
			return m, nil
		}
		m.status = "Deleted " + msg.id
		m.admin.phase = phaseList
		m.refreshData()
		m.admin.row = clamp(m.admin.row, 0, len(m.games)-1)
		return m, nil

	case commitDoneMsg:
		if msg.err != nil {
			m.status = "Order save failed: " + msg.err.Error()
			m.log.Errorw("order commit failed", "error", msg.err)
			return m, nil
		}
		m.status = "Order saved"
		m.refreshData()
		return m, nil

	case pickDoneMsg:
		return m.handlePicked(msg)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.idleCtl.State() == idle.Attract {
		return m.renderAttract()
	}
	if m.mode == modeAdmin {
		return m.renderAdmin()
	}
	return m.renderBrowse()
}

// handleKey routes keyboard input, feeding the idle controller first so a
// wake press never reaches the view underneath the attract surface.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.idleCtl.Close()
		return m, tea.Quit
	}
	if m.idleCtl.Touch(time.Now(), idle.InputKey) {
		return m, nil
	}

	switch msg.String() {
	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil
	}

	if m.mode == modeAdmin {
		return m.handleAdminKey(msg)
	}
	return m.handleBrowseKey(msg)
}

// handleTick drives the idle state machine and keeps the browse snapshot
// fresh. The tick is the kiosk's only clock.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.refreshData()

	if m.idleCtl.Tick(now, len(m.games)) {
		m.videoStarted = now
		m.log.Infow("attract mode engaged", "video", m.idleCtl.VideoIndex())
	}
	if m.idleCtl.State() == idle.Attract && now.Sub(m.videoStarted) >= attractDwell {
		m.idleCtl.PlaybackEnded(len(m.games))
		m.videoStarted = now
	}

	return m, tickCmd(m.tickEvery)
}

func (m Model) handlePicked(msg pickDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.status = "File selection failed: " + msg.err.Error()
		return m, nil
	}
	if !msg.ok {
		m.status = "Selection cancelled"
		return m, nil
	}
	var err error
	if msg.class == picker.ClassVideo {
		err = m.session.AttachVideo(msg.path)
	} else {
		err = m.session.AttachImage(msg.path)
	}
	if err != nil {
		m.status = "Attach failed: " + err.Error()
		return m, nil
	}
	m.status = "Attached " + msg.path
	return m, nil
}

// refreshData pulls the current catalog snapshot into the model.
func (m *Model) refreshData() {
	if m.store == nil {
		return
	}
	m.games = m.store.Games()
	m.tags = m.store.Tags()
	m.cursor = clamp(m.cursor, 0, len(m.visible())-1)
}

// visible is the filter projection the browse view renders.
func (m Model) visible() []catalog.GameRecord {
	return catalog.Filter(m.games, m.filter)
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, LastFilter: m.filter}); err != nil {
		m.log.Warnw("prefs save failed", "error", err)
	}
}

// Messages

type tickMsg time.Time

type saveDoneMsg struct{ err error }

type deleteDoneMsg struct {
	id  string
	err error
}

type commitDoneMsg struct{ err error }

type pickDoneMsg struct {
	class picker.Class
	path  string
	ok    bool
	err   error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func saveCmd(ctx context.Context, s *admin.Session) tea.Cmd {
	return func() tea.Msg {
		return saveDoneMsg{err: s.Save(ctx)}
	}
}

func deleteCmd(ctx context.Context, s *admin.Session, id string) tea.Cmd {
	return func() tea.Msg {
		return deleteDoneMsg{id: id, err: s.Delete(ctx, id, true)}
	}
}

func commitOrderCmd(ctx context.Context, s *admin.Session) tea.Cmd {
	return func() tea.Msg {
		return commitDoneMsg{err: s.CommitOrder(ctx)}
	}
}

func pickCmd(p picker.Picker, class picker.Class) tea.Cmd {
	return func() tea.Msg {
		path, ok, err := p.PickFile(class)
		return pickDoneMsg{class: class, path: path, ok: ok, err: err}
	}
}

// Run starts the Bubble Tea program. Mouse reporting is enabled so pointer
// movement counts as kiosk activity.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
