package editor

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/tokenfield/draft"
	"github.com/iw2rmb/tokenfield/tokens"
)

// Model is a Bubble Tea component that renders and interacts with a token
// field.
type Model struct {
	cfg   Config
	field *tokens.Field
	draft *draft.Draft
	log   *slog.Logger

	focused bool

	width, height int
	viewport      viewport.Model
	layout        layout

	lastFieldVersion uint64
	lastDraftVersion uint64
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	m := Model{
		cfg: cfg,
		field: tokens.New(tokens.Options{
			Separator:    cfg.Separator,
			Tokens:       cfg.Tokens,
			Suggestions:  cfg.Suggestions,
			Resolve:      cfg.Resolve,
			DraftPadding: caretPadding,
			Logger:       cfg.Logger,
		}),
		draft:    draft.New("", draft.Options{HistoryLimit: cfg.HistoryLimit}),
		log:      cfg.Logger.With("component", "editor"),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastFieldVersion = m.field.Version()
	m.lastDraftVersion = m.draft.Version()
	m.rebuildContent()
	return m
}

// Field returns the underlying field. Hosts may mutate it directly; the next
// Update picks the change up.
func (m Model) Field() *tokens.Field { return m.field }

// Draft returns the draft being typed.
func (m Model) Draft() *draft.Draft { return m.draft }

func (m Model) Tokens() []tokens.Token { return m.field.Tokens() }

func (m Model) Value() string { return m.field.Value() }

// DraftWidth reports the draft box size in cells as the field computes it.
func (m Model) DraftWidth() (width int, flexible bool) {
	return m.field.DraftWidth(m.draft.Text(), m.cfg.Measurer)
}

// KeyMap returns the bindings in use, for help rendering.
func (m Model) KeyMap() KeyMap { return *m.cfg.KeyMap }

func (m Model) Init() tea.Cmd { return nil }

// SetSize sets the field width and an optional fixed height. A zero width
// keeps every chip on one row; a zero height grows with the content.
func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.height = height
	m.rebuildContent()
	m.followCaret()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.log.Debug("focus")
		m.rebuildContent()
		m.followCaret()
	}
	return m
}

// Blur runs the blur transition: the draft is cleared and the editor returns
// to the trailing slot.
func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.log.Debug("blur")
		m.apply(m.field.HandleBlur())
		m.syncFromField()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, m.height), nil
	case tea.FocusMsg:
		m = m.Focus()
	case tea.BlurMsg:
		m = m.Blur()
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	}
	// Rebuild in case the host mutated the field outside of the editor.
	m.syncFromField()
	return m, cmd
}

func (m Model) View() string {
	out := m.layout.content
	if m.height > 0 {
		out = m.viewport.View()
	}
	if list := m.renderSuggestions(); list != "" {
		out += "\n" + list
	}
	return out
}

func (m *Model) apply(res tokens.Result) {
	if res.ClearDraft {
		m.draft.Clear()
	}
	if res.ReplaceDraft {
		m.draft.SetText(res.Draft)
	}
	if res.Focus && !m.focused {
		m.focused = true
	}
}

func (m *Model) syncFromField() {
	fv := m.field.Version()
	dv := m.draft.Version()
	if fv == m.lastFieldVersion && dv == m.lastDraftVersion {
		m.rebuildContent()
		return
	}
	fieldChanged := fv != m.lastFieldVersion
	m.lastFieldVersion = fv
	m.lastDraftVersion = dv

	m.field.FilterSuggestions(m.draft.Text())
	m.rebuildContent()
	m.followCaret()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.field, m.draft, m.cfg.Measurer, fieldChanged))
	}
}

func (m *Model) rebuildContent() {
	m.layout = m.buildLayout()
	m.viewport.Width = m.width
	m.viewport.Height = m.height
	m.viewport.SetContent(m.layout.content)
}

func (m *Model) followCaret() {
	h := m.viewport.Height
	if h <= 0 {
		return
	}
	row := m.layout.draftRow()
	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}
