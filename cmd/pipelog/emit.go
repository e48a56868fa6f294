package main

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/philipp01105/pipelog/core"
	"github.com/philipp01105/pipelog/logger"
)

const (
	emitCmdUsage = "emit MESSAGE"
	emitCmdShort = "write one log record"
	emitCmdLong  = `Write one log record through the logger.

	Without --config the record goes to standard output using the simple
	format. With --config every appender of the configured logger receives
	it, subject to its filters.`

	emitCmdExample = `# Write an INFO record to standard output
	pipelog emit "service started"

	# Write a record with metadata through a configured logger
	pipelog emit -c logger.yaml --severity ERROR --metadata user=alice --metadata attempt=3 "login failed"`
)

type emitFlags struct {
	severity string
	metadata []string
}

func (f *emitFlags) addFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.severity, "severity", "s", core.InfoLevel.String(), "level of the emitted record")
	flags.StringArrayVarP(&f.metadata, "metadata", "m", nil, "metadata as key=value, repeatable")
}

// parseMetadata turns key=value pairs into string fields, keeping their order.
func parseMetadata(pairs []string) ([]core.Field, error) {
	fields := make([]core.Field, 0, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: metadata %q is not key=value", core.ErrValidation, pair)
		}
		fields = append(fields, logger.String(key, value))
	}
	return fields, nil
}

func emitCmd(root *rootFlags) *cobra.Command {
	flags := &emitFlags{}
	cmd := &cobra.Command{
		Use:     emitCmdUsage,
		Short:   heredoc.Doc(emitCmdShort),
		Long:    heredoc.Doc(emitCmdLong),
		Example: heredoc.Doc(emitCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := core.ParseLevel(flags.severity)
			if err != nil {
				return handleError(cmd, err)
			}
			fields, err := parseMetadata(flags.metadata)
			if err != nil {
				return handleError(cmd, err)
			}

			log, err := root.buildLogger(cmd, logger.NewRegistry())
			if err != nil {
				return handleError(cmd, err)
			}

			log.Log(level, args[0], fields...)
			if err := log.Close(); err != nil {
				return handleError(cmd, err)
			}
			return nil
		},
	}

	flags.addFlags(cmd)
	return cmd
}
