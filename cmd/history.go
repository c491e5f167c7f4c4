package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	mm "github.com/abhisek/readychina/internal/matchmaker"
	"github.com/abhisek/readychina/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent quiz results and where everyone ended up",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("n")
		if n < 0 {
			return fmt.Errorf("-n must not be negative, got %d", n)
		}

		env, err := openCLI(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		repo := env.store.EventRepo()
		results, err := repo.QueryQuizResults(cmd.Context(), store.QueryOpts{Limit: n})
		if err != nil {
			return fmt.Errorf("query quiz results: %w", err)
		}
		counts, err := repo.OutcomeCounts(cmd.Context())
		if err != nil {
			return fmt.Errorf("query outcome counts: %w", err)
		}

		printHistory(cmd.OutOrStdout(), results, counts)
		return nil
	},
}

func printHistory(out io.Writer, results []store.QuizResult, counts map[string]int) {
	if len(results) == 0 {
		fmt.Fprintln(out, "No quizzes yet.")
		return
	}

	fmt.Fprintf(out, "%-17s  %-7s  %-10s  %s\n", "When", "Answers", "City", "Score")
	fmt.Fprintln(out, strings.Repeat("─", 48))
	for _, r := range results {
		fmt.Fprintf(out, "%-17s  %-7s  %-10s  %d%%\n",
			r.Timestamp.Local().Format("2006-01-02 15:04"), r.Answers, r.City, r.Score)
	}

	fmt.Fprintln(out)
	seen := make(map[mm.OutcomeID]bool)
	for _, o := range mm.AllOutcomes() {
		if seen[o.ID] {
			continue
		}
		seen[o.ID] = true
		fmt.Fprintf(out, "%-10s %d\n", o.City, counts[string(o.ID)])
	}
}

func init() {
	historyCmd.Flags().IntP("n", "n", 10, "Number of results to show (0 = all)")
}
