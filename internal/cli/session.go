package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubetimer/internal/recorder"
	"github.com/SeamusWaldron/cubetimer/internal/storage"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage solve sessions",
	Long: `Sessions group solves so that averages are computed per event or per
practice block. New solves are recorded into the active session.`,
}

var sessionNewCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a session and make it active",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionNew,
}

var sessionUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Switch the active session, creating it if needed",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionUse,
}

var sessionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sessions",
	RunE:  runSessionList,
}

var sessionDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a session and all of its solves",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionDelete,
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.AddCommand(sessionNewCmd)
	sessionCmd.AddCommand(sessionUseCmd)
	sessionCmd.AddCommand(sessionListCmd)
	sessionCmd.AddCommand(sessionDeleteCmd)
}

func runSessionNew(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}

	existing, err := storage.NewSessionRepository(db).GetByName(args[0])
	db.Close()
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("session %q already exists (use 'cubetimer session use %s')", args[0], args[0])
	}

	return runSessionUse(cmd, args)
}

func runSessionUse(cmd *cobra.Command, args []string) error {
	db, rec, err := openRecorder(args[0])
	if err != nil {
		return err
	}
	defer db.Close()

	s := rec.Session()
	fmt.Printf("Active session: %s (%d solves)\n", s.Name, s.SolveCount)
	return nil
}

func runSessionList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	stateFile, err := recorder.NewDefaultStateFile()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	sessions, err := storage.NewSessionRepository(db).List()
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	writeSessions(os.Stdout, sessions, stateFile.ActiveSessionID())
	return nil
}

func writeSessions(w io.Writer, sessions []storage.Session, activeID string) {
	if len(sessions) == 0 {
		fmt.Fprintln(w, "No sessions yet. Start one with 'cubetimer session new <name>'.")
		return
	}

	for _, s := range sessions {
		marker := " "
		if s.SessionID == activeID {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %-20s %6s solves  created %s\n",
			marker, s.Name, humanize.Comma(int64(s.SolveCount)), humanize.Time(s.CreatedAt))
	}
}

func runSessionDelete(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSessionRepository(db)
	s, err := repo.GetByName(args[0])
	if err != nil {
		return err
	}
	if s == nil {
		return fmt.Errorf("session %q not found", args[0])
	}

	if err := repo.Delete(s.SessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	stateFile, err := recorder.NewDefaultStateFile()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}
	if stateFile.ActiveSessionID() == s.SessionID {
		if err := stateFile.ClearActiveSession(); err != nil {
			return err
		}
	}

	fmt.Printf("Deleted session %s (%d solves)\n", s.Name, s.SolveCount)
	return nil
}
