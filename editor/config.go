package editor

import (
	"log/slog"

	"github.com/iw2rmb/tokenfield/measure"
	"github.com/iw2rmb/tokenfield/tokens"
)

const (
	defaultMaxSuggestions = 5
	defaultMinDraftWidth  = 8
	chipGap               = 1
	caretPadding          = 1
)

// Config configures the editor Model.
type Config struct {
	// Initial tokens. Duplicate IDs are dropped.
	Tokens []tokens.Token

	// Forwarded to tokens.Options.
	Separator   string
	Suggestions []tokens.Token
	Resolve     func(text string) (tokens.Token, bool)

	// Placeholder is shown in an empty trailing draft when there are no
	// tokens.
	Placeholder string

	// MaxSuggestions caps the rendered suggestion rows. Default: 5.
	MaxSuggestions int

	// MinDraftWidth is the narrowest trailing draft before it wraps to its
	// own row. Default: 8.
	MinDraftWidth int

	// Measurer sizes the inline draft. It must report terminal cells.
	// Default: measure.Cells.
	Measurer measure.Measurer

	// Forwarded to draft.Options.
	HistoryLimit int

	// Style and KeyMap default to DefaultStyle and DefaultKeyMap when nil.
	Style     *Style
	KeyMap    *KeyMap
	Clipboard Clipboard

	// Logger is forwarded to the field. Default: discard.
	Logger *slog.Logger

	// OnChange is called once per Update that changed the tokens, the editor
	// position or the draft.
	OnChange func(ChangeEvent)
}

func normalizeConfig(cfg Config) Config {
	if cfg.MaxSuggestions <= 0 {
		cfg.MaxSuggestions = defaultMaxSuggestions
	}
	if cfg.MinDraftWidth <= 0 {
		cfg.MinDraftWidth = defaultMinDraftWidth
	}
	if cfg.Measurer == nil {
		cfg.Measurer = measure.Cells{}
	}
	if cfg.KeyMap == nil {
		km := DefaultKeyMap()
		cfg.KeyMap = &km
	}
	if cfg.Style == nil {
		st := DefaultStyle()
		cfg.Style = &st
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return cfg
}
