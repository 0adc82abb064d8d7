// Package tui renders a selector widget in the terminal. Keys and mouse
// clicks are translated into host input events, so the widget sees the same
// clicks and arrow keys it would get from a document.
package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/optsel/internal/dom"
	"github.com/marcus/optsel/internal/host"
	"github.com/marcus/optsel/internal/selector"
	"github.com/sahilm/fuzzy"
)

// headerLines is the number of lines rendered above the first option.
const headerLines = 2

// maxEvents bounds the select events kept for display.
const maxEvents = 3

// Model is the bubbletea model for one widget.
type Model struct {
	doc    *host.Document
	widget *selector.Widget
	title  string

	keys    keyMap
	help    help.Model
	jump    textinput.Model
	jumping bool
	cursor  int
	width   int
	events  []selector.SelectEvent
	status  string

	// inbox collects select actions dispatched during the current input.
	inbox *[]selector.SelectEvent
	unsub func()
}

// New creates a model. The widget must already be built on doc.
func New(doc *host.Document, w *selector.Widget, title string) Model {
	ti := textinput.New()
	ti.Placeholder = "jump to option"
	ti.Prompt = "/ "

	m := Model{
		doc:    doc,
		widget: w,
		title:  title,
		keys:   defaultKeyMap(),
		help:   help.New(),
		jump:   ti,
		width:  80,
		inbox:  &[]selector.SelectEvent{},
	}
	inbox := m.inbox
	m.unsub = doc.Subscribe(func(a host.Action) {
		if ev, ok := a.Detail.(selector.SelectEvent); ok && a.Event == selector.EventSelect {
			*inbox = append(*inbox, ev)
		}
	})
	m.cursor = w.FocusedIndex()
	if focused := doc.FocusWithin(w.Element()); focused != w.Element() {
		for _, o := range w.Options() {
			if o.Node() == focused {
				m.cursor = o.Index()
			}
		}
	}
	return m
}

// Close stops collecting select actions from the document.
func (m Model) Close() {
	if m.unsub != nil {
		m.unsub()
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.clickRow(msg.Y - headerLines)
		}
		return m, nil

	case tea.KeyMsg:
		if m.jumping {
			return m.updateJump(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.arrow(dom.KeyArrowUp, -1)
	case key.Matches(msg, m.keys.Down):
		m.arrow(dom.KeyArrowDown, 1)
	case key.Matches(msg, m.keys.Left):
		m.arrow(dom.KeyArrowLeft, -1)
	case key.Matches(msg, m.keys.Right):
		m.arrow(dom.KeyArrowRight, 1)
	case key.Matches(msg, m.keys.Pick):
		m.clickRow(m.cursor)
	case key.Matches(msg, m.keys.Clear):
		m.widget.Clear()
		m.flush()
		m.status = "cleared"
	case key.Matches(msg, m.keys.Jump):
		m.jumping = true
		m.jump.Reset()
		return m, m.jump.Focus()
	}
	return m, nil
}

func (m Model) updateJump(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.jumping = false
		m.jump.Blur()
		return m, nil
	case msg.Type == tea.KeyEnter:
		m.jumping = false
		m.jump.Blur()
		if idx, ok := m.bestMatch(m.jump.Value()); ok {
			m.clickRow(idx)
		} else {
			m.status = fmt.Sprintf("no option matches %q", m.jump.Value())
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.jump, cmd = m.jump.Update(msg)
	return m, cmd
}

// arrow sends a navigation key to the widget. Without a keyboard mode the
// widget ignores arrows, so the cursor moves the way Tab would.
func (m *Model) arrow(domKey string, step int) {
	opts := m.widget.Options()
	if len(opts) == 0 {
		return
	}
	if m.widget.Mode() == selector.ModeNone || m.widget.Disabled() {
		m.cursor = min(max(m.cursor+step, 0), len(opts)-1)
		m.doc.Focus(opts[m.cursor].Node())
		return
	}
	m.doc.KeyDown(domKey)
	m.flush()
	m.cursor = m.widget.FocusedIndex()
}

// clickRow clicks the option rendered on row i.
func (m *Model) clickRow(i int) {
	opts := m.widget.Options()
	if i < 0 || i >= len(opts) {
		return
	}
	m.cursor = i
	m.doc.Click(opts[i].Node())
	m.flush()
	if m.widget.Mode() != selector.ModeNone {
		m.cursor = m.widget.FocusedIndex()
		m.doc.Focus(opts[m.cursor].Node())
	}
	m.status = ""
}

// flush applies deferred writes and moves the select events fired by the
// input into the display list, in dispatch order.
func (m *Model) flush() {
	if m.doc.Deferred() {
		m.doc.Flush()
	}
	m.events = append(m.events, *m.inbox...)
	*m.inbox = (*m.inbox)[:0]
	if len(m.events) > maxEvents {
		m.events = slices.Clone(m.events[len(m.events)-maxEvents:])
	}
}

// bestMatch returns the index of the option whose label or value best
// matches query.
func (m Model) bestMatch(query string) (int, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return 0, false
	}
	opts := m.widget.Options()
	haystack := make([]string, len(opts))
	for i, o := range opts {
		haystack[i] = o.Label() + " " + o.Value()
	}
	matches := fuzzy.Find(query, haystack)
	if len(matches) == 0 {
		return 0, false
	}
	return matches[0].Index, true
}

func (m Model) View() string {
	var sb strings.Builder

	kind := "single"
	if m.widget.Multiple() {
		kind = "multiple"
	}
	sb.WriteString(titleStyle.Render(m.title))
	sb.WriteString(mutedText.Render(fmt.Sprintf("  %s · keyboard %s", kind, m.widget.Mode())))
	sb.WriteString("\n\n")

	labelWidth := max(m.width-8, 10)
	states := m.widget.Snapshot()
	for i, s := range states {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(m.renderRow(s, i == m.cursor, labelWidth))
	}
	if len(states) == 0 {
		sb.WriteString(mutedText.Render("(no options)"))
	}
	sb.WriteString("\n\n")

	if name := m.widget.Name(); name != "" {
		sb.WriteString(mutedText.Render(fmt.Sprintf("form %s = [%s]", name, strings.Join(m.widget.EmittedValues(), ", "))))
		sb.WriteString("\n")
	}
	for _, ev := range m.events {
		sb.WriteString(eventStyle.Render(fmt.Sprintf("select %s -> [%s]", ev.TargetOption, strings.Join(ev.SelectedOptions, ", "))))
		sb.WriteString("\n")
	}
	if m.status != "" {
		sb.WriteString(mutedText.Render(m.status))
		sb.WriteString("\n")
	}
	if m.jumping {
		sb.WriteString(m.jump.View())
		sb.WriteString("\n")
	}
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func (m Model) renderRow(s selector.OptionState, atCursor bool, width int) string {
	cursor := "  "
	if atCursor {
		cursor = cursorStyle.Render("> ")
	}

	mark := "( )"
	if m.widget.Multiple() {
		mark = "[ ]"
	}
	if s.Selected {
		mark = strings.Replace(mark, " ", "x", 1)
		if !m.widget.Multiple() {
			mark = "(*)"
		}
	}

	label := ansi.Truncate(s.Label, width, "…")
	style := itemNormal
	switch {
	case s.Disabled:
		style = itemDisabled
	case atCursor:
		style = itemFocused
	case s.Selected:
		style = itemSelected
	}
	return cursor + mark + " " + style.Render(label)
}
