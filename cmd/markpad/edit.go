package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"pkt.systems/pslog"

	"github.com/iw2rmb/markpad/editor"
	"github.com/iw2rmb/markpad/internal/app"
	"github.com/iw2rmb/markpad/internal/config"
	"github.com/iw2rmb/markpad/internal/highlight"
	"github.com/iw2rmb/markpad/internal/logx"
	"github.com/iw2rmb/markpad/preview"
	"github.com/iw2rmb/markpad/store"
)

type editOptions struct {
	indentWidth   int
	exactOutdent  bool
	noLineNumbers bool
	noHighlight   bool
	previewStyle  string
	logFile       string
	debug         bool
}

func newEditCmd(root *rootOptions) *cobra.Command {
	opts := &editOptions{}
	cmd := &cobra.Command{
		Use:   "edit [file]",
		Short: "Open a document in the editor",
		Long: "Open a markdown document in the editor with a live preview. " +
			"Without a file the welcome document is shown. Documents are never written back.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags(), root.configPath, opts)
			if err != nil {
				return err
			}
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runEdit(cmd, cfg, path, opts)
		},
	}
	bindEditFlags(cmd.Flags(), opts)
	return cmd
}

func bindEditFlags(fs *pflag.FlagSet, opts *editOptions) {
	fs.IntVar(&opts.indentWidth, "indent-width", 0, "spaces inserted by Tab and removed by Shift+Tab")
	fs.BoolVar(&opts.exactOutdent, "exact-outdent", false, "place the selection after Shift+Tab from the spaces actually removed")
	fs.BoolVar(&opts.noLineNumbers, "no-line-numbers", false, "hide the line-number gutter")
	fs.BoolVar(&opts.noHighlight, "no-highlight", false, "disable markdown syntax highlighting in the editor")
	fs.StringVar(&opts.previewStyle, "style", "", "preview style (dark, light, auto, ...)")
	fs.StringVar(&opts.logFile, "log-file", "", "write JSON logs to this file while the editor runs")
	fs.BoolVar(&opts.debug, "debug", false, "log debug messages to --log-file")
}

// loadConfig reads the config file and applies explicitly set flags on top.
func loadConfig(flags *pflag.FlagSet, path string, opts *editOptions) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if flags.Changed("indent-width") {
		cfg.Editor.IndentWidth = opts.indentWidth
	}
	if flags.Changed("exact-outdent") {
		cfg.Editor.ExactOutdent = opts.exactOutdent
	}
	if flags.Changed("no-line-numbers") {
		cfg.Editor.LineNumbers = !opts.noLineNumbers
	}
	if flags.Changed("no-highlight") {
		cfg.Editor.Highlight = !opts.noHighlight
	}
	if flags.Changed("style") {
		cfg.Preview.Style = opts.previewStyle
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runEdit(cmd *cobra.Command, cfg config.Config, path string, opts *editOptions) error {
	ctx := cmd.Context()

	// Bubble Tea owns the terminal, so the console logger is replaced.
	logger := logx.Discard()
	if opts.logFile != "" {
		fileLogger, closer, err := logx.OpenFile(opts.logFile, opts.debug)
		if err != nil {
			return err
		}
		defer func() { _ = closer.Close() }()
		logger = fileLogger
	}
	ctx = pslog.ContextWithLogger(ctx, logger)

	text, err := readDocument(path, cmd.InOrStdin())
	if err != nil {
		return err
	}

	renderer, err := preview.New(preview.Options{Style: cfg.Preview.Style, WordWrap: cfg.Preview.WordWrap})
	if err != nil {
		return err
	}

	var hl editor.Highlighter
	if cfg.Editor.Highlight {
		md, err := highlight.New(cfg.Editor.HighlightStyle)
		if err != nil {
			return err
		}
		hl = md
	}

	clip := app.DetectClipboard()
	if clip == nil {
		logger.Warn("system clipboard unavailable; copy and paste are disabled")
	}

	m, err := app.New(ctx, app.Options{
		Path:        path,
		Text:        text,
		Config:      cfg,
		Renderer:    renderer,
		Highlighter: hl,
		Clipboard:   clip,
	})
	if err != nil {
		return err
	}
	defer m.Close()

	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run editor: %w", err)
	}
	if fm, ok := final.(app.Model); ok {
		logger.Info("session ended", "bytes", len(fm.Text()))
	}
	return nil
}

// readDocument loads path, or standard input for "-". An empty path yields
// the welcome document.
func readDocument(path string, stdin io.Reader) (string, error) {
	switch path {
	case "":
		return store.Welcome(), nil
	case "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}
	return string(data), nil
}
