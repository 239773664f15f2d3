package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session is a named group of solves.
type Session struct {
	SessionID  string
	Name       string
	CreatedAt  time.Time
	SolveCount int
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session. Names are unique.
func (r *SessionRepository) Create(name string) (*Session, error) {
	s := &Session{
		SessionID: uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	_, err := r.db.Exec(`
		INSERT INTO sessions (session_id, name, created_at)
		VALUES (?, ?, ?)
	`, s.SessionID, s.Name, formatTime(s.CreatedAt))
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.CreatedAt = parseTime(formatTime(s.CreatedAt))
	return s, nil
}

const sessionColumns = `
	s.session_id, s.name, s.created_at,
	(SELECT COUNT(*) FROM solves v WHERE v.session_id = s.session_id)
`

func scanSession(row interface{ Scan(...any) error }) (*Session, error) {
	var s Session
	var createdAt string
	if err := row.Scan(&s.SessionID, &s.Name, &createdAt, &s.SolveCount); err != nil {
		return nil, err
	}
	s.CreatedAt = parseTime(createdAt)
	return &s, nil
}

// Get retrieves a session by ID. It returns nil if there is no such session.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	s, err := scanSession(r.db.QueryRow(`SELECT `+sessionColumns+` FROM sessions s WHERE s.session_id = ?`, sessionID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return s, nil
}

// GetByName retrieves a session by name. It returns nil if there is no such
// session.
func (r *SessionRepository) GetByName(name string) (*Session, error) {
	s, err := scanSession(r.db.QueryRow(`SELECT `+sessionColumns+` FROM sessions s WHERE s.name = ?`, name))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return s, nil
}

// List retrieves all sessions, oldest first.
func (r *SessionRepository) List() ([]Session, error) {
	rows, err := r.db.Query(`SELECT ` + sessionColumns + ` FROM sessions s ORDER BY s.created_at, s.rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, *s)
	}

	return sessions, rows.Err()
}

// Delete deletes a session and its solves in one transaction.
func (r *SessionRepository) Delete(sessionID string) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM solves WHERE session_id = ?", sessionID); err != nil {
			return fmt.Errorf("failed to delete solves: %w", err)
		}

		res, err := tx.Exec("DELETE FROM sessions WHERE session_id = ?", sessionID)
		if err != nil {
			return fmt.Errorf("failed to delete session: %w", err)
		}
		return expectRow(res)
	})
}

func expectRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
