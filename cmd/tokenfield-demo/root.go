package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/tokenfield"
	"github.com/iw2rmb/tokenfield/editor"
	"github.com/iw2rmb/tokenfield/internal/logger"
	"github.com/iw2rmb/tokenfield/measure"
	"github.com/iw2rmb/tokenfield/tokens"
)

var (
	separator   string
	initial     string
	suggestions []string
	placeholder string
	height      int
	fontSize    float64
	logFile     string
	debugMode   bool
)

var rootCmd = &cobra.Command{
	Use:   "tokenfield-demo",
	Short: "Interactive token field",
	Long: `tokenfield-demo runs the token field component in the terminal.
Type text and press enter or the separator to add a token. On exit the
final value is printed to stdout.`,
	Version:       tokenfield.VersionTag(),
	RunE:          runDemo,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&separator, "separator", "s", tokens.DefaultSeparator, `key that commits the draft, e.g. "," or "tab"`)
	f.StringVarP(&initial, "tokens", "t", "", "initial value, split on the separator")
	f.StringSliceVar(&suggestions, "suggest", nil, "suggestion items as label or id=label")
	f.StringVar(&placeholder, "placeholder", "add a token", "text shown while the field is empty")
	f.IntVar(&height, "height", 0, "fixed field height in rows (0 grows with content)")
	f.Float64Var(&fontSize, "font-size", 12, "point size used to report the draft width in pixels")
	f.StringVar(&logFile, "log-file", "", "write logs to this file")
	f.BoolVar(&debugMode, "debug", false, "enable debug logging")
}

func runDemo(cmd *cobra.Command, args []string) error {
	if logFile != "" {
		if err := logger.Init(logFile); err != nil {
			return err
		}
		defer logger.Close()
	}
	logger.SetDebug(debugMode)
	log := logger.WithComponent("demo")

	font, err := measure.GoRegular(fontSize, 72)
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}
	defer font.Close()

	m := newModel(editor.Config{
		Separator:   separator,
		Suggestions: parseSuggestions(suggestions),
		Placeholder: placeholder,
		Logger:      logger.Logger(),
	}, font)
	m.field.Field().SetValue(initial)
	m.height = height

	log.Info("starting", "version", tokenfield.Version(), "separator", separator, "tokens", m.field.Field().Len())
	final, err := tea.NewProgram(m, tea.WithMouseCellMotion(), tea.WithReportFocus()).Run()
	if err != nil {
		return fmt.Errorf("run program: %w", err)
	}

	value := final.(model).field.Value()
	log.Info("finished", "value", value)
	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}

// parseSuggestions reads "id=label" items; a bare item is both.
func parseSuggestions(items []string) []tokens.Token {
	out := make([]tokens.Token, 0, len(items))
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it == "" {
			continue
		}
		id, label, ok := strings.Cut(it, "=")
		if !ok {
			out = append(out, tokens.NewToken(it))
			continue
		}
		out = append(out, tokens.Token{ID: strings.TrimSpace(id), Label: strings.TrimSpace(label)})
	}
	return out
}
