package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/philipp01105/pipelog/appender"
	"github.com/philipp01105/pipelog/config"
	"github.com/philipp01105/pipelog/core"
	"github.com/philipp01105/pipelog/logger"
)

// Version is injected at build time with -ldflags "-X main.Version=...".
var Version = "dev"

const (
	appName  = "pipelog"
	appShort = "pipelog writes log records through a configured logger"

	configFlagName      = "config"
	configShortFlagName = "c"
	levelFlagName       = "level"
	levelShortFlagName  = "v"

	cliLoggerName = "pipelog"
)

var levelFlagUsage = "minimum level of the logger, overrides the config file (possible values: " + strings.Join(levelNames(), ", ") + ")"

func levelNames() []string {
	levels := core.Levels()
	names := make([]string, len(levels))
	for i, l := range levels {
		names[i] = l.String()
	}
	return names
}

type rootFlags struct {
	configPath string
	level      string
}

func (f *rootFlags) addFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&f.configPath, configFlagName, configShortFlagName, "", "path to a JSON, YAML or TOML logger configuration")
	flags.StringVarP(&f.level, levelFlagName, levelShortFlagName, "", levelFlagUsage)
}

// buildLogger creates the logger described by the flags. Without a config
// file it is a console logger on the command's output.
func (f *rootFlags) buildLogger(cmd *cobra.Command, registry *logger.Registry) (*logger.Logger, error) {
	var (
		log *logger.Logger
		err error
	)
	if f.configPath != "" {
		log, err = config.BuildInto(registry, f.configPath)
	} else {
		log, err = registry.NewBuilder().
			SetName(cliLoggerName).
			AddAppender(appender.NewConsole(appender.ConsoleConfig{Writer: cmd.OutOrStdout()})).
			Build()
	}
	if err != nil {
		return nil, err
	}

	if f.level != "" {
		level, err := core.ParseLevel(f.level)
		if err != nil {
			_ = log.Close()
			return nil, err
		}
		log.SetLevel(level)
	}
	return log, nil
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: heredoc.Doc(appShort),

		SilenceErrors: true,
		SilenceUsage:  true,

		ValidArgsFunction: cobra.NoFileCompletions,
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		c.PrintErrln(err)
		_ = c.Usage()
		return err
	})

	flags.addFlags(cmd)
	cmd.AddCommand(
		emitCmd(flags),
		levelsCmd(),
		checkCmd(flags),
		versionCmd(),
	)
	return cmd
}

func handleError(cmd *cobra.Command, err error) error {
	cmd.PrintErrln("Error:", err)
	return err
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: heredoc.Doc("Display the " + appName + " version"),

		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", appName, Version)
		},
	}
}
