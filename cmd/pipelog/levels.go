package main

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/philipp01105/pipelog/core"
)

func levelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: heredoc.Doc("list the log levels in order of severity"),

		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, l := range core.Levels() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %d\n", l.String(), int(l))
			}
		},
	}
}
