// Package tui wires the session to the terminal widgets. All regex work
// happens in the session; the model only moves text between the widgets
// and the session and displays whatever comes back.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rxlab/regex-tester/pkg/session"
)

type focusArea int

const (
	focusPattern focusArea = iota
	focusSubject
)

// Model is the bubbletea model for the tester.
type Model struct {
	session *session.Session
	pattern textinput.Model
	subject textarea.Model
	results viewport.Model
	focus   focusArea
	result  session.Result
}

// NewModel creates the UI model. The pattern input starts focused, and
// initialPattern (if any) is fed through the session immediately so the
// first frame already reflects it.
func NewModel(sess *session.Session, subjectHeight int, initialPattern string) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter your regex here (e.g., [a-z]+)"
	ti.Prompt = "> "
	ti.Focus()

	ta := textarea.New()
	ta.ShowLineNumbers = true
	ta.SetHeight(subjectHeight)

	vp := viewport.New(78, 12)

	m := Model{
		session: sess,
		pattern: ti,
		subject: ta,
		results: vp,
	}

	if initialPattern != "" {
		m.pattern.SetValue(initialPattern)
	}
	m.result = sess.SetPattern(m.pattern.Value())
	m.results.SetContent(m.result.Document)

	return m
}

// Init implements the tea.Model interface
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements the tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab", "shift+tab":
			return m.toggleFocus()
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.results, cmd = m.results.Update(msg)
			return m, cmd
		}

		// Keystrokes go only to the focused widget.
		var cmd tea.Cmd
		switch m.focus {
		case focusPattern:
			m.pattern, cmd = m.pattern.Update(msg)
		case focusSubject:
			m.subject, cmd = m.subject.Update(msg)
		}
		cmds = append(cmds, cmd)

	case tea.WindowSizeMsg:
		m = m.resize(msg.Width, msg.Height)

	default:
		var cmd tea.Cmd
		m.pattern, cmd = m.pattern.Update(msg)
		cmds = append(cmds, cmd)
		m.subject, cmd = m.subject.Update(msg)
		cmds = append(cmds, cmd)
		m.results, cmd = m.results.Update(msg)
		cmds = append(cmds, cmd)
	}

	m = m.refresh()
	return m, tea.Batch(cmds...)
}

// View implements the tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(labelStyle.Render("Regular Expression Pattern:"))
	b.WriteString("\n")
	b.WriteString(m.pattern.View())
	b.WriteString("\n")
	b.WriteString(statusLine(m.result.Status))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Test String:"))
	b.WriteString("\n")
	b.WriteString(m.subject.View())
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Match Results:"))
	b.WriteString("\n")
	b.WriteString(resultsStyle.Render(m.results.View()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab: switch focus • pgup/pgdown: scroll results • ctrl+c: quit"))

	return b.String()
}

// refresh feeds the current widget values to the session. The session
// ignores values that did not change, so this is cheap to call on every
// update.
func (m Model) refresh() Model {
	m.session.SetPattern(m.pattern.Value())
	res := m.session.SetSubject(m.subject.Value())
	if res != m.result {
		m.result = res
		m.results.SetContent(res.Document)
		m.results.GotoTop()
	}
	return m
}

func (m Model) toggleFocus() (Model, tea.Cmd) {
	if m.focus == focusPattern {
		m.focus = focusSubject
		m.pattern.Blur()
		return m, m.subject.Focus()
	}
	m.focus = focusPattern
	m.subject.Blur()
	return m, m.pattern.Focus()
}

func (m Model) resize(width, height int) Model {
	inner := width - 4
	if inner < 20 {
		inner = 20
	}

	m.pattern.Width = inner
	m.subject.SetWidth(inner)
	m.results.Width = inner

	// Everything above the results pane has a fixed height; give the
	// viewport whatever remains.
	used := m.subject.Height() + 10
	remaining := height - used
	if remaining < 4 {
		remaining = 4
	}
	m.results.Height = remaining

	return m
}

func statusLine(st session.Status) string {
	const prefix = "Regex Status: "
	switch st.Level {
	case session.LevelValid:
		return prefix + validStyle.Render(st.Text)
	case session.LevelInvalid, session.LevelError:
		return prefix + invalidStyle.Render(st.Text)
	default:
		return prefix + neutralStyle.Render(st.Text)
	}
}
