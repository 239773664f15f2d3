package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/cubetimer/internal/recorder"
	"github.com/SeamusWaldron/cubetimer/internal/storage"
)

var (
	exportFormat  string
	exportOutput  string
	exportSession string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the solves of a session",
	Long: `Export the solves of a session in text, JSON or YAML format.

Examples:
  cubetimer export
  cubetimer export --session oh --format json
  cubetimer export --format yaml -o solves.yaml`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportFormat, "format", "txt", "Export format (txt, json, yaml)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
	exportCmd.Flags().StringVarP(&exportSession, "session", "s", "", "Session to export (default: active session)")
}

// SolveExport is the exported form of one solve.
type SolveExport struct {
	SolveID    string    `json:"solve_id" yaml:"solve_id"`
	Scramble   string    `json:"scramble" yaml:"scramble"`
	TimeMs     int64     `json:"time_ms" yaml:"time_ms"`
	Inspection int64     `json:"inspection_ms,omitempty" yaml:"inspection_ms,omitempty"`
	Penalty    string    `json:"penalty,omitempty" yaml:"penalty,omitempty"`
	Result     string    `json:"result" yaml:"result"`
	Notes      string    `json:"notes,omitempty" yaml:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
}

// SessionExport is the exported form of a session.
type SessionExport struct {
	Session string        `json:"session" yaml:"session"`
	Solves  []SolveExport `json:"solves" yaml:"solves"`
}

func runExport(cmd *cobra.Command, args []string) error {
	// Open database
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	session, err := lookupSession(db, exportSession)
	if err != nil {
		return err
	}

	solves, err := storage.NewSolveRepository(db).ListBySession(session.SessionID, 0)
	if err != nil {
		return fmt.Errorf("failed to get solves: %w", err)
	}
	if len(solves) == 0 {
		return fmt.Errorf("no solves found in session %s", session.Name)
	}

	// Write output
	if exportOutput == "" {
		return writeExport(os.Stdout, exportFormat, session.Name, solves)
	}

	if err := exportToFile(exportOutput, exportFormat, session.Name, solves); err != nil {
		return err
	}

	fmt.Printf("Exported %d solves to %s\n", len(solves), exportOutput)
	return nil
}

// exportToFile writes the export to path. A failed close is reported, since
// buffered data may not have reached the disk.
func exportToFile(path, format, name string, solves []storage.Solve) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	if err := writeExport(f, format, name, solves); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}

func writeExport(w io.Writer, format, name string, solves []storage.Solve) error {
	switch strings.ToLower(format) {
	case "txt", "text":
		for i, s := range solves {
			fmt.Fprintf(w, "%d. %s   %s\n", i+1, recorder.ResultFromSolve(s).String(), s.ScrambleText)
		}
		return nil

	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(newSessionExport(name, solves)); err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return nil

	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		if err := enc.Encode(newSessionExport(name, solves)); err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return nil
	}

	return fmt.Errorf("unknown format: %s (use txt, json or yaml)", format)
}

func newSessionExport(name string, solves []storage.Solve) SessionExport {
	return SessionExport{
		Session: name,
		Solves: lo.Map(solves, func(s storage.Solve, _ int) SolveExport {
			return SolveExport{
				SolveID:    s.SolveID,
				Scramble:   s.ScrambleText,
				TimeMs:     s.DurationMs,
				Inspection: s.InspectionMs,
				Penalty:    s.Penalty,
				Result:     recorder.ResultFromSolve(s).String(),
				Notes:      lo.FromPtr(s.Notes),
				CreatedAt:  s.CreatedAt,
			}
		}),
	}
}
