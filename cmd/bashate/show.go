package main

import (
	"github.com/spf13/cobra"

	"bashate/internal/diagfmt"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "show",
		Aliases: []string{"rules"},
		Short:   "List every check with its default severity",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showCatalog(cmd)
		},
	}
}

func showCatalog(cmd *cobra.Command) error {
	enabled, err := colorEnabled(cmd)
	if err != nil {
		return err
	}
	return diagfmt.RenderCatalog(cmd.OutOrStdout(), diagfmt.Options{Color: enabled})
}
