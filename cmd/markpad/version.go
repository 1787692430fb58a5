package main

import (
	"fmt"

	"github.com/spf13/cobra"

	markpad "github.com/iw2rmb/markpad"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), markpad.Banner())
			return err
		},
	}
}
