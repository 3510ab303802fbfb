// Package cli provides the logctl command-line interface: the parser and
// filter engine run against a local file, without the HTTP server.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"log-explorer-backend/config"
)

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "logctl",
		Short: "Parse, filter and summarise application log files",
		Long: `logctl parses plain text or gzip compressed application logs into
structured entries and answers filter queries over them.

Header lines look like:
  2024-01-15T10:30:00.123Z ERROR [com.app.Service] [worker-1] : message

Lines that do not start with a timestamp are continuations of the previous
entry (stack traces, wrapped messages).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()})
			config.ApplyLogLevel(logLevel)
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Diagnostic log level (debug|info|warn|error)")

	rootCmd.AddCommand(NewStatsCommand())
	rootCmd.AddCommand(NewFilterCommand())

	return rootCmd
}
