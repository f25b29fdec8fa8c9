package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/rxlab/regex-tester/pkg/config"
	"github.com/rxlab/regex-tester/pkg/engine"
	"github.com/rxlab/regex-tester/pkg/session"
	"github.com/rxlab/regex-tester/pkg/tui"
)

// Dependencies holds everything main needs to run the UI
type Dependencies struct {
	Config  *config.Config
	Engine  engine.Engine
	Session *session.Session
	Model   tui.Model

	logFile *os.File
}

// NewDependencies creates all dependencies with the given configuration
func NewDependencies(cfg *config.Config) (*Dependencies, error) {
	deps := &Dependencies{Config: cfg}

	eng, err := engine.New(cfg.Engine)
	if err != nil {
		return nil, err
	}
	deps.Engine = eng

	// The UI owns the terminal, so debug logging goes to a file or nowhere.
	log := zerolog.Nop()
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		deps.logFile = f
		log = zerolog.New(f).With().Timestamp().Logger()
	}

	deps.Session = session.New(eng, log)
	deps.Model = tui.NewModel(deps.Session, cfg.SubjectHeight, cfg.Pattern)

	return deps, nil
}

// Close cleans up all dependencies
func (d *Dependencies) Close() {
	if d.logFile != nil {
		_ = d.logFile.Close()
	}
}
