/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/valpere/gemtran/internal/store"
)

var (
	historyDBPath string
	historyLimit  int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect the translation attempt history",
	Long: `List, summarize, and clear the SQLite log of translation attempts.

Attempts are recorded when history.enabled is true in the config. The log is
never used to answer a translation.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent translation attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openHistoryForCmd(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		entries, err := db.ListHistory(cmd.Context(), historyLimit)
		if err != nil {
			return fmt.Errorf("failed to list entries: %w", err)
		}

		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No translation attempts recorded.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTIME\tTARGET\tSTATUS\tERROR\tLATENCY\tTEXT")
		for _, e := range entries {
			text := e.InputText
			if r := []rune(text); len(r) > 40 {
				text = string(r[:37]) + "..."
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%dms\t%q\n",
				e.ID, e.CreatedAt.Local().Format("2006-01-02 15:04"),
				e.TargetLanguage, e.Status, e.ErrorKind, e.LatencyMs, text)
		}
		return w.Flush()
	},
}

var historyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show translation history statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openHistoryForCmd(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		stats, err := db.Stats(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get stats: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Total attempts: %d\n", stats.TotalEntries)
		fmt.Fprintf(out, "Succeeded:      %d\n", stats.Succeeded)
		fmt.Fprintf(out, "Failed:         %d\n", stats.Failed)
		fmt.Fprintf(out, "Avg latency:    %.0fms\n", stats.AvgLatencyMs)
		for kind, n := range stats.ByErrorKind {
			fmt.Fprintf(out, "  %-14s %d\n", kind+":", n)
		}
		return nil
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a history entry by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openHistoryForCmd(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.DeleteEntry(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to delete entry: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted entry: %s\n", args[0])
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all history entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openHistoryForCmd(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		n, err := db.ClearHistory(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d entries from history.\n", n)
		return nil
	},
}

// openHistoryForCmd opens --db if given, else the configured history path.
// A missing database file is reported rather than created.
func openHistoryForCmd(cmd *cobra.Command) (*store.Store, error) {
	path := cfg.History.Path
	if cmd.Flags().Changed("db") {
		path = historyDBPath
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("history database not available at %s: %w", path, err)
	}
	return openHistory(path)
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.PersistentFlags().StringVar(&historyDBPath, "db", "", "History database path (default: history.path from config)")
	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of entries to show (0 = all)")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyStatsCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	historyCmd.AddCommand(historyClearCmd)
}
