package ui

import (
	"encoding/json"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Alessio99-a/fetchbind/internal/fetch"
	"github.com/Alessio99-a/fetchbind/internal/prefs"
)

// Payload is the response type the terminal host displays. The coordinator
// is generic; the host only ever pretty-prints whatever JSON came back.
type Payload = json.RawMessage

// Options configures the terminal host.
type Options struct {
	Coordinator *fetch.Coordinator[Payload]
	Binder      *fetch.Binder[Payload]

	// RequestName and Base are display-only; all execution state lives in
	// the coordinator.
	RequestName string
	Base        fetch.Options

	PollTick  time.Duration
	WatchTick time.Duration
	ThemeName string
	PrefsPath string
	Watch     bool
}

// Model is the root application state for Bubble Tea. It is the reference
// host for the lifecycle binder: Init mounts, the quit path unmounts.
type Model struct {
	coord  *fetch.Coordinator[Payload]
	binder *fetch.Binder[Payload]

	requestName string
	base        fetch.Options
	pollTick    time.Duration
	watchTick   time.Duration
	prefsPath   string

	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool
	watch    bool
	editing  bool

	snapshot    fetch.Snapshot[Payload]
	lastUpdated time.Time

	spin      spinner.Model
	body      viewport.Model
	pathInput textinput.Model
}

// New creates the host model.
func New(opts Options) Model {
	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = 250 * time.Millisecond
	}
	watchTick := opts.WatchTick
	if watchTick <= 0 {
		watchTick = 5 * time.Second
	}

	theme := GetTheme(opts.ThemeName)

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = theme.Styles().Accent

	input := textinput.New()
	input.Placeholder = opts.Base.URL
	input.Prompt = "url: "
	input.CharLimit = 512

	return Model{
		coord:       opts.Coordinator,
		binder:      opts.Binder,
		requestName: opts.RequestName,
		base:        opts.Base,
		pollTick:    pollTick,
		watchTick:   watchTick,
		prefsPath:   opts.PrefsPath,
		theme:       theme,
		watch:       opts.Watch,
		spin:        spin,
		pathInput:   input,
	}
}

// Init implements tea.Model. Mounting here is what ties the coordinator's
// lifetime to the program's: the binder fires the optional initial execution
// and the quit path guarantees the matching unmount.
func (m Model) Init() tea.Cmd {
	m.binder.Mount()
	return tea.Batch(
		tea.EnterAltScreen,
		tickCmd(m.pollTick),
		watchTickCmd(m.watchTick),
		snapshotCmd(m.coord),
		m.spin.Tick,
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.body = viewport.New(msg.Width-2, bodyHeight(msg.Height))
			m.ready = true
		} else {
			m.body.Width = msg.Width - 2
			m.body.Height = bodyHeight(msg.Height)
		}
		m.refreshBody()
		return m, nil

	case tickMsg:
		return m, tea.Batch(snapshotCmd(m.coord), tickCmd(m.pollTick))

	case watchTickMsg:
		cmds := []tea.Cmd{watchTickCmd(m.watchTick)}
		if m.watch {
			cmds = append(cmds, executeCmd(m.coord, nil))
		}
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.snapshot = fetch.Snapshot[Payload](msg)
		m.lastUpdated = time.Now()
		m.refreshBody()
		return m, nil

	case executedMsg:
		// The outcome itself is not displayed; it may belong to a
		// superseded invocation. The snapshot is the single source of
		// truth for rendering.
		return m, snapshotCmd(m.coord)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.editing {
		return m.handleEditKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.binder.Unmount()
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case "r":
		return m, executeCmd(m.coord, nil)

	case "e":
		m.editing = true
		m.pathInput.SetValue("")
		m.pathInput.Focus()
		return m, textinput.Blink

	case "x":
		m.coord.Reset()
		return m, snapshotCmd(m.coord)

	case "c":
		m.coord.CancelCurrent()
		return m, snapshotCmd(m.coord)

	case "w":
		m.watch = !m.watch
		m.savePrefs()
		return m, nil

	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.spin.Style = m.theme.Styles().Accent
		m.savePrefs()
		m.refreshBody()
		return m, nil
	}

	if m.ready {
		var cmd tea.Cmd
		m.body, cmd = m.body.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.pathInput.Blur()
		return m, nil

	case "enter":
		target := m.pathInput.Value()
		m.editing = false
		m.pathInput.Blur()
		if target == "" {
			return m, nil
		}
		return m, executeCmd(m.coord, &fetch.Options{URL: target})
	}

	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(msg)
	return m, cmd
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, Watch: m.watch})
}

// Messages

type tickMsg time.Time

type watchTickMsg time.Time

type snapshotMsg fetch.Snapshot[Payload]

type executedMsg struct {
	outcome fetch.Outcome[Payload]
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func watchTickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return watchTickMsg(t)
	})
}

func snapshotCmd(coord *fetch.Coordinator[Payload]) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(coord.Snapshot())
	}
}

// executeCmd runs one invocation off the UI loop. Re-executing while a prior
// invocation is in flight is safe: the coordinator supersedes it.
func executeCmd(coord *fetch.Coordinator[Payload], override *fetch.Options) tea.Cmd {
	return func() tea.Msg {
		return executedMsg{outcome: coord.Execute(override)}
	}
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(opts Options) error {
	program := tea.NewProgram(New(opts))
	_, err := program.Run()
	// The binder tolerates a second unmount; this covers exits that bypass
	// the quit key, like a terminal hangup.
	opts.Binder.Unmount()
	return err
}
