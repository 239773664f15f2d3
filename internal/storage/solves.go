package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Solve represents a timed solve in the database.
type Solve struct {
	SolveID      string
	SessionID    string
	ScrambleText string
	DurationMs   int64
	InspectionMs int64
	Penalty      string
	Notes        *string
	CreatedAt    time.Time
}

// NewSolve holds the fields of a solve to be created.
type NewSolve struct {
	SessionID    string
	ScrambleText string
	DurationMs   int64
	InspectionMs int64
	Penalty      string
	Notes        string
}

// SolveRepository provides CRUD operations for solves.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Create stores a new solve and returns it.
func (r *SolveRepository) Create(in NewSolve) (*Solve, error) {
	s := &Solve{
		SolveID:      uuid.New().String(),
		SessionID:    in.SessionID,
		ScrambleText: in.ScrambleText,
		DurationMs:   in.DurationMs,
		InspectionMs: in.InspectionMs,
		Penalty:      in.Penalty,
		CreatedAt:    time.Now().UTC(),
	}
	if in.Notes != "" {
		notes := in.Notes
		s.Notes = &notes
	}

	createdAt := formatTime(s.CreatedAt)
	_, err := r.db.Exec(`
		INSERT INTO solves (solve_id, session_id, scramble_text, duration_ms, inspection_ms, penalty, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, s.SolveID, s.SessionID, s.ScrambleText, s.DurationMs, s.InspectionMs, s.Penalty, s.Notes, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create solve: %w", err)
	}

	s.CreatedAt = parseTime(createdAt)
	return s, nil
}

const solveColumns = `solve_id, session_id, scramble_text, duration_ms, inspection_ms, penalty, notes, created_at`

func scanSolve(row interface{ Scan(...any) error }) (*Solve, error) {
	var s Solve
	var createdAt string
	err := row.Scan(
		&s.SolveID, &s.SessionID, &s.ScrambleText,
		&s.DurationMs, &s.InspectionMs, &s.Penalty,
		&s.Notes, &createdAt,
	)
	if err != nil {
		return nil, err
	}
	s.CreatedAt = parseTime(createdAt)
	return &s, nil
}

func (r *SolveRepository) queryOne(query string, args ...any) (*Solve, error) {
	s, err := scanSolve(r.db.QueryRow(query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get solve: %w", err)
	}
	return s, nil
}

// Get retrieves a solve by ID. It returns nil if there is no such solve.
func (r *SolveRepository) Get(solveID string) (*Solve, error) {
	return r.queryOne(`SELECT `+solveColumns+` FROM solves WHERE solve_id = ?`, solveID)
}

// GetLast retrieves the most recent solve of a session.
func (r *SolveRepository) GetLast(sessionID string) (*Solve, error) {
	return r.queryOne(`
		SELECT `+solveColumns+` FROM solves
		WHERE session_id = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1
	`, sessionID)
}

// ListBySession retrieves the most recent limit solves of a session in
// chronological order. A limit of zero or less returns every solve.
func (r *SolveRepository) ListBySession(sessionID string, limit int) ([]Solve, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := r.db.Query(`
		SELECT `+solveColumns+` FROM (
			SELECT `+solveColumns+`, rowid AS rid FROM solves
			WHERE session_id = ?
			ORDER BY created_at DESC, rowid DESC
			LIMIT ?
		)
		ORDER BY created_at, rid
	`, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		s, err := scanSolve(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}
		solves = append(solves, *s)
	}

	return solves, rows.Err()
}

// SetPenalty changes the penalty of a solve.
func (r *SolveRepository) SetPenalty(solveID, penalty string) error {
	res, err := r.db.Exec("UPDATE solves SET penalty = ? WHERE solve_id = ?", penalty, solveID)
	if err != nil {
		return fmt.Errorf("failed to set penalty: %w", err)
	}
	return expectRow(res)
}

// Delete deletes a solve.
func (r *SolveRepository) Delete(solveID string) error {
	res, err := r.db.Exec("DELETE FROM solves WHERE solve_id = ?", solveID)
	if err != nil {
		return fmt.Errorf("failed to delete solve: %w", err)
	}
	return expectRow(res)
}

// Count returns the number of solves in a session, or in every session when
// sessionID is empty.
func (r *SolveRepository) Count(sessionID string) (int, error) {
	var count int
	var err error
	if sessionID == "" {
		err = r.db.QueryRow("SELECT COUNT(*) FROM solves").Scan(&count)
	} else {
		err = r.db.QueryRow("SELECT COUNT(*) FROM solves WHERE session_id = ?", sessionID).Scan(&count)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to count solves: %w", err)
	}
	return count, nil
}

// LastCreated returns the most recent solve across every session.
func (r *SolveRepository) LastCreated() (*Solve, error) {
	return r.queryOne(`
		SELECT ` + solveColumns + ` FROM solves
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1
	`)
}
