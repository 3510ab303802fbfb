package cli

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"log-explorer-backend/internal/decoder"
	"log-explorer-backend/internal/model"
)

// StatsOptions holds command-line options for the stats command.
type StatsOptions struct {
	JSON     bool
	MaxBytes int64
}

// NewStatsCommand creates the stats command.
func NewStatsCommand() *cobra.Command {
	opts := &StatsOptions{}

	cmd := &cobra.Command{
		Use:   "stats <log-file>",
		Short: "Count the entries of a log file per level",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, list, err := loadWorkspace(args[0], opts.MaxBytes)
			if err != nil {
				return err
			}
			return writeStats(cmd.OutOrStdout(), ws.Stats(list), opts.JSON)
		},
	}

	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Print the counts as JSON")
	cmd.Flags().Int64Var(&opts.MaxBytes, "max-bytes", decoder.DefaultMaxBytes, "Largest accepted file size in bytes")

	return cmd
}

func writeStats(w io.Writer, stats model.LogStats, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	}

	rows := [][]string{
		{string(model.LevelError), strconv.Itoa(stats.Error)},
		{string(model.LevelWarn), strconv.Itoa(stats.Warn)},
		{string(model.LevelInfo), strconv.Itoa(stats.Info)},
		{string(model.LevelDebug), strconv.Itoa(stats.Debug)},
		{string(model.LevelTrace), strconv.Itoa(stats.Trace)},
		{"TOTAL", strconv.Itoa(stats.Total)},
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"LEVEL", "COUNT"})
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	table.AppendBulk(rows)
	table.Render()
	return nil
}
