package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/tokenfield/editor"
	"github.com/iw2rmb/tokenfield/measure"
)

var (
	quitKey = key.NewBinding(key.WithKeys("esc", "ctrl+q"), key.WithHelp("esc", "quit"))

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	frameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

type model struct {
	field  editor.Model
	help   help.Model
	font   measure.Measurer
	height int
}

func newModel(cfg editor.Config, font measure.Measurer) model {
	return model{
		field: editor.New(cfg),
		help:  help.New(),
		font:  font,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		inner := msg.Width - frameStyle.GetHorizontalFrameSize()
		m.field = m.field.SetSize(inner, m.height)
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, quitKey) {
			return m, tea.Quit
		}
	case tea.MouseMsg:
		// Translate to field coordinates inside the frame.
		msg.X -= frameStyle.GetBorderLeftSize() + frameStyle.GetPaddingLeft()
		msg.Y -= frameStyle.GetBorderTopSize() + frameStyle.GetPaddingTop()
		var cmd tea.Cmd
		m.field, cmd = m.field.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.field, cmd = m.field.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return frameStyle.Render(m.field.View()) + "\n" +
		statusStyle.Render(m.status()) + "\n" +
		m.help.View(m.field.KeyMap())
}

func (m model) status() string {
	f := m.field.Field()
	cells, flexible := m.field.DraftWidth()
	px, _ := f.DraftWidth(m.field.Draft().Text(), m.font)
	if flexible {
		return fmt.Sprintf("%d tokens | %s | draft fills the row", f.Len(), f.Position())
	}
	return fmt.Sprintf("%d tokens | %s | draft %d cells, %dpx", f.Len(), f.Position(), cells, px)
}
