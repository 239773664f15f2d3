package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubetimer/internal/recorder"
	"github.com/SeamusWaldron/cubetimer/internal/storage"
	"github.com/SeamusWaldron/cubetimer/internal/timer"
)

var (
	historyLimit   int
	historySession string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent solves and session statistics",
	Long: `Show the most recent solves of a session with best, mean and WCA
averages (Ao5, Ao12). Averages are computed over the whole session.

Examples:
  cubetimer history
  cubetimer history --limit 50
  cubetimer history --session oh`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 12, "Number of solves to list (0 for all)")
	historyCmd.Flags().StringVarP(&historySession, "session", "s", "", "Session to show (default: active session)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	session, err := lookupSession(db, historySession)
	if err != nil {
		return err
	}

	solves, err := storage.NewSolveRepository(db).ListBySession(session.SessionID, 0)
	if err != nil {
		return fmt.Errorf("failed to list solves: %w", err)
	}

	writeHistory(os.Stdout, session.Name, solves, historyLimit)
	return nil
}

// writeHistory prints the last limit solves and stats over all of solves.
func writeHistory(w io.Writer, name string, solves []storage.Solve, limit int) {
	fmt.Fprintf(w, "Session: %s\n", name)
	fmt.Fprintln(w, strings.Repeat("=", 9+len(name)))

	if len(solves) == 0 {
		fmt.Fprintln(w, "No solves yet. Run 'cubetimer timer' to start.")
		return
	}

	shown := solves
	if limit > 0 && len(shown) > limit {
		shown = shown[len(shown)-limit:]
	}

	offset := len(solves) - len(shown)
	for i, s := range shown {
		res := recorder.ResultFromSolve(s)
		fmt.Fprintf(w, "%4d. %9s   %s   %s\n",
			offset+i+1, res.String(), s.CreatedAt.Local().Format("2006-01-02 15:04"), s.ScrambleText)
	}

	st := timer.Summarize(recorder.Results(solves))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Solves:    %d (%d finished)\n", st.Count, st.Finished)
	fmt.Fprintf(w, "Best:      %s\n", formatStat(st.Best, true))
	fmt.Fprintf(w, "Worst:     %s\n", formatStat(st.Worst, true))
	fmt.Fprintf(w, "Mean:      %s\n", formatStat(st.Mean, st.Finished > 0))
	fmt.Fprintf(w, "Ao5:       %s (best %s)\n", formatStat(st.Ao5, st.Count >= 5), formatStat(st.BestAo5, st.Count >= 5))
	fmt.Fprintf(w, "Ao12:      %s (best %s)\n", formatStat(st.Ao12, st.Count >= 12), formatStat(st.BestAo12, st.Count >= 12))
}
