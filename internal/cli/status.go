package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubetimer/internal/recorder"
	"github.com/SeamusWaldron/cubetimer/internal/storage"
	"github.com/SeamusWaldron/cubetimer/internal/timer"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show database and session information",
	Long:  `Display the database location, the active session, solve totals and the most recent solve.`,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	// Load state file
	stateFile, err := recorder.NewDefaultStateFile()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	fmt.Println("Cube Timer Status")
	fmt.Println("=================")
	fmt.Println()

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Printf("Database: %s\n", db.Path())
	if err := stateFile.SetDBPath(db.Path()); err != nil {
		return err
	}

	solveRepo := storage.NewSolveRepository(db)
	total, err := solveRepo.Count("")
	if err != nil {
		return err
	}
	sessions, err := storage.NewSessionRepository(db).List()
	if err != nil {
		return err
	}
	fmt.Printf("Sessions: %d\n", len(sessions))
	fmt.Printf("Total solves: %s\n", humanize.Comma(int64(total)))

	last, err := solveRepo.LastCreated()
	if err != nil {
		return err
	}
	if last != nil {
		res := recorder.ResultFromSolve(*last)
		fmt.Printf("Last solve: %s (%s)\n", res.String(), humanize.Time(last.CreatedAt))
	}

	fmt.Println()

	// Active session
	if !stateFile.HasActiveSession() {
		fmt.Println("No active session")
		fmt.Println("  (Use 'cubetimer session use <name>' or just run 'cubetimer timer')")
		return nil
	}

	active, err := storage.NewSessionRepository(db).Get(stateFile.ActiveSessionID())
	if err != nil {
		return err
	}
	if active == nil {
		fmt.Printf("Active session %s no longer exists\n", stateFile.ActiveSession())
		return stateFile.ClearActiveSession()
	}

	fmt.Printf("Active session: %s (%d solves)\n", active.Name, active.SolveCount)

	solves, err := solveRepo.ListBySession(active.SessionID, 12)
	if err != nil {
		return err
	}
	st := timer.Summarize(recorder.Results(solves))
	fmt.Printf("  Ao5: %s  Ao12: %s\n", formatStat(st.Ao5, st.Count >= 5), formatStat(st.Ao12, st.Count >= 12))

	return nil
}
