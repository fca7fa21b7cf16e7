// Package tui renders the demo page in the terminal. It is one possible
// frontend for the surface document: key presses become element clicks or
// document-level keydowns, and every surface mutation triggers a repaint.
package tui

import (
	"uiplay/internal/config"
	"uiplay/internal/docs"
	"uiplay/internal/surface"
	"uiplay/internal/wire"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// action maps a key shortcut to a clickable element.
type action struct {
	key      string
	selector string
}

var actions = []action{
	{"a", "#add-btn"},
	{"g", "#greet-btn"},
	{"l", "#local-btn"},
	{"c", "#global-btn"},
	{"f", "#flip-btn"},
	{"s", "#spin-btn"},
	{"p", "#pulse-btn"},
	{"m", "#modal-open-btn"},
}

type changedMsg struct{}

type appModel struct {
	doc     *surface.Document
	classes config.ClassConfig
	warns   []wire.Warning

	width  int
	height int

	selected int
	spin     spinner.Model
	showHelp bool
}

func newAppModel(doc *surface.Document, classes config.ClassConfig, warns []wire.Warning) appModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorAccent)
	return appModel{
		doc:     doc,
		classes: classes,
		warns:   warns,
		width:   80,
		height:  24,
		spin:    sp,
	}
}

func waitForChange(doc *surface.Document) tea.Cmd {
	return func() tea.Msg {
		<-doc.Changed()
		return changedMsg{}
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(waitForChange(m.doc), m.spin.Tick)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case changedMsg:
		// A surface mutation (handler, timer) happened; re-arm and repaint.
		return m, waitForChange(m.doc)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.showHelp {
		switch key {
		case "esc", "?", "q":
			m.showHelp = false
		}
		return m, nil
	}

	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case "esc":
		// Global key listener: wiring closes the modal on esc regardless
		// of focus.
		m.doc.DispatchKey("esc")
		return m, nil

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case "down", "j":
		if m.selected < len(actions)-1 {
			m.selected++
		}
		return m, nil

	case "enter", " ":
		if m.modalOpen() {
			m.click("#modal-close-btn")
			return m, nil
		}
		m.click(actions[m.selected].selector)
		return m, nil

	case "b":
		// Backdrop click: targets the container itself, which the wiring
		// reads as "outside the content box".
		if el, ok := m.doc.Find("#demo-modal"); ok && m.modalOpen() {
			el.Click()
		}
		return m, nil
	}

	if m.modalOpen() {
		if key == "x" {
			m.click("#modal-close-btn")
		}
		return m, nil
	}

	for i, a := range actions {
		if a.key == key {
			m.selected = i
			m.click(a.selector)
			return m, nil
		}
	}
	return m, nil
}

func (m appModel) click(selector string) {
	if el, ok := m.doc.Find(selector); ok {
		el.Click()
	}
}

func (m appModel) modalOpen() bool {
	el, ok := m.doc.Find("#demo-modal")
	return ok && el.HasClass("open")
}

func (m appModel) helpMarkdown() string {
	body, ok := docs.Get("guide")
	if !ok {
		return "no guide available"
	}
	return body
}

// Run starts the interactive demo over the given document.
func Run(doc *surface.Document, cfg *config.Config, warns []wire.Warning) error {
	applyColorProfilePreference()
	applyThemePreference(cfg.Theme)
	m := newAppModel(doc, cfg.Classes, warns)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
