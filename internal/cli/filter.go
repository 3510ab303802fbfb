package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"log-explorer-backend/internal/decoder"
	"log-explorer-backend/internal/logindex"
	"log-explorer-backend/internal/model"
)

// FilterOptions holds command-line options for the filter command.
type FilterOptions struct {
	Level     string
	Search    string
	From      string
	To        string
	SortBy    string
	SortOrder string
	Limit     int
	Raw       bool
	JSON      bool
	MaxBytes  int64
}

// NewFilterCommand creates the filter command.
func NewFilterCommand() *cobra.Command {
	opts := &FilterOptions{}

	cmd := &cobra.Command{
		Use:   "filter <log-file>",
		Short: "Print the entries of a log file matching a filter",
		Long: `Print the entries of a log file matching every given condition.

  --level   exact severity (INFO, WARN, ERROR, DEBUG, TRACE or ALL)
  --search  case-insensitive text in message, class name, thread or level
  --from    first day included (YYYY-MM-DD)
  --to      last day included (YYYY-MM-DD)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFilter(cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Level, "level", "l", "", "Level to keep")
	cmd.Flags().StringVarP(&opts.Search, "search", "s", "", "Text to search for")
	cmd.Flags().StringVar(&opts.From, "from", "", "First day included (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.To, "to", "", "Last day included (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.SortBy, "sort-by", "", "Sort field (timestamp|level|thread|className|message), file order when empty")
	cmd.Flags().StringVar(&opts.SortOrder, "sort-order", string(logindex.SortAsc), "Sort order (asc|desc)")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 0, "Print at most n entries (0 for all)")
	cmd.Flags().BoolVar(&opts.Raw, "raw", false, "Print the raw source lines of each entry")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Print entries as JSON")
	cmd.Flags().Int64Var(&opts.MaxBytes, "max-bytes", decoder.DefaultMaxBytes, "Largest accepted file size in bytes")

	return cmd
}

func runFilter(w io.Writer, path string, opts *FilterOptions) error {
	ws, list, err := loadWorkspace(path, opts.MaxBytes)
	if err != nil {
		return err
	}

	filter := model.LogFilter{
		Search:   opts.Search,
		Level:    strings.ToUpper(opts.Level),
		DateFrom: opts.From,
		DateTo:   opts.To,
	}
	matched := ws.Filter(list, filter)

	if opts.SortBy != "" {
		field, err := logindex.ParseSortField(opts.SortBy)
		if err != nil {
			return err
		}
		matched = logindex.Sort(matched, field, logindex.ParseSortOrder(opts.SortOrder))
	}
	if opts.Limit > 0 && len(matched) > opts.Limit {
		matched = matched[:opts.Limit]
	}

	if opts.JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(matched)
	}
	for i := range matched {
		if err := writeEntry(w, &matched[i], opts.Raw); err != nil {
			return err
		}
	}
	return nil
}

func writeEntry(w io.Writer, entry *model.LogEntry, raw bool) error {
	if raw {
		_, err := fmt.Fprintln(w, entry.Raw)
		return err
	}
	_, err := fmt.Fprintf(w, "%s %-5s [%s] [%s] %s\n",
		entry.Timestamp.Format(time.RFC3339Nano), entry.Level, entry.ClassName, entry.Thread, entry.Message)
	return err
}
