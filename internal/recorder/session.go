package recorder

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/SeamusWaldron/cubetimer/internal/storage"
	"github.com/SeamusWaldron/cubetimer/internal/timer"
)

// DefaultSessionName is used when no session has been chosen.
const DefaultSessionName = "default"

var (
	// ErrNoSession is returned when recording before a session is selected.
	ErrNoSession = errors.New("recorder: no session selected")
	// ErrNoSolves is returned when editing the last solve of an empty session.
	ErrNoSolves = errors.New("recorder: session has no solves")
)

// Recorder stores timed solves into the selected session.
type Recorder struct {
	stateFile *StateFile
	logger    *zap.Logger

	mu      sync.RWMutex
	session *storage.Session

	sessionRepo *storage.SessionRepository
	solveRepo   *storage.SolveRepository
}

// New creates a recorder. stateFile may be nil, in which case the active
// session is not remembered between runs.
func New(db *storage.DB, stateFile *StateFile, logger *zap.Logger) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recorder{
		stateFile:   stateFile,
		logger:      logger,
		sessionRepo: storage.NewSessionRepository(db),
		solveRepo:   storage.NewSolveRepository(db),
	}
}

// UseSession selects the session to record into, creating it if needed.
// An empty name resumes the session remembered in the state file, falling
// back to DefaultSessionName.
func (r *Recorder) UseSession(name string) (*storage.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var session *storage.Session
	var err error

	if name == "" && r.stateFile != nil && r.stateFile.HasActiveSession() {
		session, err = r.sessionRepo.Get(r.stateFile.ActiveSessionID())
		if err != nil {
			return nil, err
		}
	}

	if session == nil {
		if name == "" {
			name = DefaultSessionName
		}
		session, err = r.sessionRepo.GetByName(name)
		if err != nil {
			return nil, err
		}
	}

	if session == nil {
		session, err = r.sessionRepo.Create(name)
		if err != nil {
			return nil, err
		}
		r.logger.Info("session created", zap.String("session", session.Name), zap.String("session_id", session.SessionID))
	}

	if r.stateFile != nil {
		if err := r.stateFile.SetActiveSession(session.SessionID, session.Name); err != nil {
			return nil, err
		}
	}

	r.session = session
	r.logger.Debug("session selected", zap.String("session", session.Name))
	return session, nil
}

// Session returns the selected session, or nil.
func (r *Recorder) Session() *storage.Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.session
}

func (r *Recorder) sessionID() (string, error) {
	if r.session == nil {
		return "", ErrNoSession
	}
	return r.session.SessionID, nil
}

// Record stores a finished solve with the scramble it was timed on.
func (r *Recorder) Record(scramble string, res timer.Result) (*storage.Solve, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sessionID, err := r.sessionID()
	if err != nil {
		return nil, err
	}

	solve, err := r.solveRepo.Create(storage.NewSolve{
		SessionID:    sessionID,
		ScrambleText: scramble,
		DurationMs:   res.Duration.Milliseconds(),
		InspectionMs: res.Inspection.Milliseconds(),
		Penalty:      string(res.Penalty),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record solve: %w", err)
	}

	r.logger.Info("solve recorded",
		zap.String("solve_id", solve.SolveID),
		zap.String("time", res.String()),
		zap.String("scramble", scramble),
	)
	return solve, nil
}

func (r *Recorder) last() (*storage.Solve, error) {
	sessionID, err := r.sessionID()
	if err != nil {
		return nil, err
	}

	last, err := r.solveRepo.GetLast(sessionID)
	if err != nil {
		return nil, err
	}
	if last == nil {
		return nil, ErrNoSolves
	}
	return last, nil
}

// SetLastPenalty changes the penalty of the most recent solve.
func (r *Recorder) SetLastPenalty(p timer.Penalty) (*storage.Solve, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	last, err := r.last()
	if err != nil {
		return nil, err
	}

	if err := r.solveRepo.SetPenalty(last.SolveID, string(p)); err != nil {
		return nil, err
	}
	last.Penalty = string(p)

	r.logger.Info("penalty changed", zap.String("solve_id", last.SolveID), zap.String("penalty", string(p)))
	return last, nil
}

// DeleteLast removes the most recent solve.
func (r *Recorder) DeleteLast() (*storage.Solve, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	last, err := r.last()
	if err != nil {
		return nil, err
	}

	if err := r.solveRepo.Delete(last.SolveID); err != nil {
		return nil, err
	}

	r.logger.Info("solve deleted", zap.String("solve_id", last.SolveID))
	return last, nil
}

// Results returns the last limit results of the session, oldest first. A
// limit of zero or less returns every result.
func (r *Recorder) Results(limit int) ([]timer.Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sessionID, err := r.sessionID()
	if err != nil {
		return nil, err
	}

	solves, err := r.solveRepo.ListBySession(sessionID, limit)
	if err != nil {
		return nil, err
	}
	return Results(solves), nil
}

// ResultFromSolve converts a stored solve back to a timer result. Unknown
// penalties are read as none.
func ResultFromSolve(s storage.Solve) timer.Result {
	penalty, _ := timer.ParsePenalty(s.Penalty)
	return timer.Result{
		Duration:   time.Duration(s.DurationMs) * time.Millisecond,
		Inspection: time.Duration(s.InspectionMs) * time.Millisecond,
		Penalty:    penalty,
	}
}

// Results converts stored solves to timer results.
func Results(solves []storage.Solve) []timer.Result {
	results := make([]timer.Result, len(solves))
	for i, s := range solves {
		results[i] = ResultFromSolve(s)
	}
	return results
}
