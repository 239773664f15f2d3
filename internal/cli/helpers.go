package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/cubetimer"
	"github.com/SeamusWaldron/cubetimer/internal/recorder"
	"github.com/SeamusWaldron/cubetimer/internal/storage"
)

// openDB opens the database named by --db or CUBETIMER_DB, else the one
// recorded in the state file, else the default location.
func openDB() (*storage.DB, error) {
	stateFile, err := recorder.NewDefaultStateFile()
	if err != nil {
		logger.Warn("failed to load state", zap.Error(err))
		stateFile = nil
	}

	var db *storage.DB
	if path := resolveDBPath(cfg.Storage.DBPath, stateFile); path == "" {
		db, err = storage.OpenDefault()
	} else {
		db, err = storage.Open(path)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Debug("database opened", zap.String("path", db.Path()))
	return db, nil
}

// resolveDBPath picks the configured path over the stored one. Empty means
// the default location.
func resolveDBPath(configured string, stateFile *recorder.StateFile) string {
	if configured != "" {
		return configured
	}
	if stateFile != nil {
		return stateFile.DBPath()
	}
	return ""
}

// openRecorder opens the database and selects the session named by the flag,
// the environment, or the state file, in that order.
func openRecorder(sessionName string) (*storage.DB, *recorder.Recorder, error) {
	db, err := openDB()
	if err != nil {
		return nil, nil, err
	}

	stateFile, err := recorder.NewDefaultStateFile()
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to load state: %w", err)
	}

	if sessionName == "" {
		sessionName = cfg.Timer.Session
	}

	rec := recorder.New(db, stateFile, logger)
	if _, err := rec.UseSession(sessionName); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to select session: %w", err)
	}

	return db, rec, nil
}

// scrambleLength returns the --length flag when set, else the configured
// length.
func scrambleLength(cmd *cobra.Command, flagValue int) int {
	if cmd.Flags().Changed("length") {
		return flagValue
	}
	return cfg.Timer.ScrambleLength
}

// newGenerator builds a generator from the shared scramble flags.
func newGenerator(cmd *cobra.Command, seed uint64, strict bool) *cubetimer.Generator {
	opts := []cubetimer.Option{
		cubetimer.WithStrictAxis(strict || cfg.Timer.StrictAxis),
	}
	if cmd.Flags().Changed("seed") {
		opts = append(opts, cubetimer.WithSeed(seed))
	}
	return cubetimer.NewGenerator(opts...)
}

func defaultLogPath() (string, error) {
	dir, err := storage.DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "logs", "cubetimer.log"), nil
}

// lookupSession finds an existing session without creating one. An empty name
// means the configured session, then the active one, then the default.
func lookupSession(db *storage.DB, name string) (*storage.Session, error) {
	repo := storage.NewSessionRepository(db)

	if name == "" {
		name = cfg.Timer.Session
	}
	if name == "" {
		stateFile, err := recorder.NewDefaultStateFile()
		if err != nil {
			return nil, fmt.Errorf("failed to load state: %w", err)
		}
		if stateFile.HasActiveSession() {
			s, err := repo.Get(stateFile.ActiveSessionID())
			if err != nil {
				return nil, err
			}
			if s != nil {
				return s, nil
			}
		}
		name = recorder.DefaultSessionName
	}

	s, err := repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("session %q not found", name)
	}
	return s, nil
}
