package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toyz/nextcrud/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show nextcrud version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetFullVersionInfo())
		},
	}
}
