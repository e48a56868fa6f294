package main

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/philipp01105/pipelog/appender"
	"github.com/philipp01105/pipelog/core"
	"github.com/philipp01105/pipelog/logger"
)

const (
	checkCmdShort = "validate a logger configuration file"
	checkCmdLong  = `Load the file given with --config, build the logger it describes and
	print its appenders. Database appenders are not connected.`
)

func checkCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: heredoc.Doc(checkCmdShort),
		Long:  heredoc.Doc(checkCmdLong),

		SilenceErrors: true,
		SilenceUsage:  true,

		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if root.configPath == "" {
				return handleError(cmd, fmt.Errorf("%w: --%s is required", core.ErrConfiguration, configFlagName))
			}

			log, err := root.buildLogger(cmd, logger.NewRegistry())
			if err != nil {
				return handleError(cmd, err)
			}
			defer log.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "logger %q: level %s, %d appender(s)\n", log.Name(), log.Level(), len(log.Appenders()))
			for _, a := range log.Appenders() {
				printAppender(cmd, a, "  ")
			}
			return nil
		},
	}
}

func printAppender(cmd *cobra.Command, a appender.Appender, indent string) {
	fmt.Fprintln(cmd.OutOrStdout(), indent+"- "+appender.NameOf(a))
	if comp, ok := a.(*appender.Composite); ok {
		for _, child := range comp.Children() {
			printAppender(cmd, child, indent+"  ")
		}
	}
}
