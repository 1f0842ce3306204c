package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dotcommander/ftype/internal/app"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show launch history",
	Long:  `Display recent association-based launches with their resolved commands and exit codes.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := app.NewFileHistoryStore(viper.GetString("history.path"))
		return showHistory(os.Stdout, store, historyLimit)
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 10, "number of entries (0 for all)")
}

func showHistory(out io.Writer, store app.HistoryStore, limit int) error {
	entries, err := store.GetRecent(limit)
	if err != nil {
		return fmt.Errorf("failed to get history: %w", err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, "No launch history found.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tEXT\tEXIT\tCOMMAND")
	fmt.Fprintln(w, "────\t───\t────\t───────")

	for _, entry := range entries {
		exit := fmt.Sprint(entry.ExitCode)
		if entry.DryRun {
			exit = "dry"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			entry.Timestamp.Format("01-02 15:04"),
			entry.Extension,
			exit,
			truncate(strings.Join(entry.Resolved, " "), 60),
		)
	}
	w.Flush()

	if limit > 0 && len(entries) >= limit {
		fmt.Fprintf(out, "\nShowing %d most recent. Use -l 0 for all.\n", limit)
	}
	return nil
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
