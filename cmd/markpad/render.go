package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pkt.systems/pslog"

	"github.com/iw2rmb/markpad/internal/config"
	"github.com/iw2rmb/markpad/preview"
)

func newRenderCmd(root *rootOptions) *cobra.Command {
	var style string
	var width int
	var noColor bool
	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Print the rendered preview of a document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(root.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("style") {
				cfg.Preview.Style = style
			}
			if cmd.Flags().Changed("width") {
				cfg.Preview.WordWrap = width
			}

			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			text, err := readDocument(path, cmd.InOrStdin())
			if err != nil {
				return err
			}

			r, err := preview.New(preview.Options{
				Style:    cfg.Preview.Style,
				WordWrap: cfg.Preview.WordWrap,
				NoColor:  noColor,
			})
			if err != nil {
				return err
			}
			out, err := r.Render(text)
			if err != nil {
				return err
			}
			pslog.Ctx(cmd.Context()).Debug("rendered", "path", path, "bytes", len(text), "style", cfg.Preview.Style)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringVar(&style, "style", "", "preview style (dark, light, ascii, notty, ...)")
	cmd.Flags().IntVar(&width, "width", 0, "word-wrap column (0 disables wrapping)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "render without color escape sequences")
	return cmd
}
