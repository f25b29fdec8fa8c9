// Package session owns the live pattern and subject text and recomputes
// the status line and result document whenever either changes.
package session

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rxlab/regex-tester/pkg/engine"
	"github.com/rxlab/regex-tester/pkg/markdown"
	"github.com/rxlab/regex-tester/pkg/scan"
)

// Level classifies the status line.
type Level int

const (
	LevelNeutral Level = iota
	LevelValid
	LevelInvalid
	LevelError
)

// Status is the one-line state of the current pattern.
type Status struct {
	Level Level
	Text  string
}

// Result is everything a display surface needs after one recompute: the
// status line and the markdown document for the results pane.
type Result struct {
	Status   Status
	Document string
}

// Session owns the two live inputs and the engine that compiles patterns.
// It is single-threaded by design: all updates arrive from the UI event
// loop, and every recompute fully replaces the previous result.
type Session struct {
	engine  engine.Engine
	log     zerolog.Logger
	pattern string
	subject string
	result  Result
}

// New creates a session with empty pattern and subject.
func New(eng engine.Engine, log zerolog.Logger) *Session {
	s := &Session{engine: eng, log: log}
	s.result = s.recompute()
	return s
}

// SetPattern updates the pattern text. Setting the current value again is
// a no-op so spurious change notifications do not recompute.
func (s *Session) SetPattern(pattern string) Result {
	if pattern == s.pattern {
		return s.result
	}
	s.pattern = pattern
	s.result = s.recompute()
	return s.result
}

// SetSubject updates the subject text. Same no-op rule as SetPattern.
func (s *Session) SetSubject(subject string) Result {
	if subject == s.subject {
		return s.result
	}
	s.subject = subject
	s.result = s.recompute()
	return s.result
}

// Result returns the output of the most recent recompute.
func (s *Session) Result() Result {
	return s.result
}

func (s *Session) recompute() Result {
	res := Recompute(s.engine, s.pattern, s.subject)
	s.log.Debug().
		Int("pattern_len", len(s.pattern)).
		Int("subject_len", len(s.subject)).
		Str("status", res.Status.Text).
		Msg("recompute")
	return res
}

// Recompute runs the full pipeline for one (pattern, subject) pair. It is
// a pure function: identical inputs produce identical results.
func Recompute(eng engine.Engine, pattern, subject string) Result {
	if pattern == "" {
		return Result{
			Status:   Status{Level: LevelNeutral, Text: "(Enter a pattern)"},
			Document: "Enter a regex pattern to see matches.",
		}
	}

	cp, err := eng.Compile(pattern)
	if err != nil {
		return Result{
			Status:   Status{Level: LevelInvalid, Text: fmt.Sprintf("Invalid - %v", err)},
			Document: fmt.Sprintf("### Regex Error\n\n```\n%v\n```", err),
		}
	}

	valid := Status{Level: LevelValid, Text: "Valid"}

	if subject == "" {
		return Result{Status: valid, Document: "Enter a test string to find matches."}
	}

	matches, err := scan.Collect(cp, subject)
	if err != nil {
		return Result{
			Status:   Status{Level: LevelError, Text: fmt.Sprintf("Error during matching - %v", err)},
			Document: fmt.Sprintf("### Matching Error\n\n```\n%v\n```", err),
		}
	}

	if len(matches) == 0 {
		return Result{
			Status:   valid,
			Document: "No matches found in:\n\n" + markdown.Escape(subject),
		}
	}

	doc := markdown.Build(subject, matches)
	var b strings.Builder
	b.WriteString("### Highlighted Text:\n\n")
	b.WriteString(doc.Highlighted)
	b.WriteString("\n\n### Match Details:\n\n")
	b.WriteString(strings.Join(doc.Details, "\n\n"))

	return Result{Status: valid, Document: b.String()}
}
