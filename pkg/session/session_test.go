package session

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/rxlab/regex-tester/pkg/engine"
	"github.com/rxlab/regex-tester/pkg/testutil"
)

func TestRecompute(t *testing.T) {
	eng := engine.StdlibEngine{}

	tests := []struct {
		name          string
		pattern       string
		subject       string
		expectedLevel Level
		statusHas     string
		documentHas   string
	}{
		{
			name:          "empty pattern",
			pattern:       "",
			subject:       "anything at all",
			expectedLevel: LevelNeutral,
			statusHas:     "(Enter a pattern)",
			documentHas:   "Enter a regex pattern to see matches.",
		},
		{
			name:          "invalid pattern",
			pattern:       "(",
			subject:       "abc",
			expectedLevel: LevelInvalid,
			statusHas:     "Invalid",
			documentHas:   "### Regex Error",
		},
		{
			name:          "valid pattern empty subject",
			pattern:       `[a-z]+`,
			subject:       "",
			expectedLevel: LevelValid,
			statusHas:     "Valid",
			documentHas:   "Enter a test string to find matches.",
		},
		{
			name:          "no matches includes escaped subject",
			pattern:       `foo`,
			subject:       "bar",
			expectedLevel: LevelValid,
			statusHas:     "Valid",
			documentHas:   "No matches found in:\n\nbar",
		},
		{
			name:          "matches render both sections",
			pattern:       `[a-z]+`,
			subject:       "Hello World 123",
			expectedLevel: LevelValid,
			statusHas:     "Valid",
			documentHas:   "### Highlighted Text:\n\nH**ello** W**orld** 123\n\n### Match Details:",
		},
		{
			name:          "match spans in details",
			pattern:       `[a-z]+`,
			subject:       "Hello World 123",
			expectedLevel: LevelValid,
			statusHas:     "Valid",
			documentHas:   "- **Match**: `ello` (span=(1, 5))",
		},
		{
			name:          "named groups in details",
			pattern:       `(?P<word>\w+)`,
			subject:       "hi",
			expectedLevel: LevelValid,
			statusHas:     "Valid",
			documentHas:   "Named Groups: {word=`hi`}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Recompute(eng, tt.pattern, tt.subject)

			if res.Status.Level != tt.expectedLevel {
				t.Errorf("status level = %d, want %d", res.Status.Level, tt.expectedLevel)
			}
			if !strings.Contains(res.Status.Text, tt.statusHas) {
				t.Errorf("status %q does not contain %q", res.Status.Text, tt.statusHas)
			}
			if !strings.Contains(res.Document, tt.documentHas) {
				t.Errorf("document %q does not contain %q", res.Document, tt.documentHas)
			}
			if res.Document == "" {
				t.Error("document must never be empty")
			}
			if res.Status.Text == "" {
				t.Error("status must never be empty")
			}
		})
	}
}

func TestRecompute_Idempotent(t *testing.T) {
	eng := engine.StdlibEngine{}
	inputs := []struct{ pattern, subject string }{
		{"", ""},
		{"(", "abc"},
		{`[a-z]+`, "Hello World 123"},
		{`(?P<word>\w+)`, "hi"},
		{`x*`, "abc"},
		{`foo`, "bar"},
	}

	for _, in := range inputs {
		first := Recompute(eng, in.pattern, in.subject)
		second := Recompute(eng, in.pattern, in.subject)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("Recompute(%q, %q) is not idempotent (-first +second):\n%s", in.pattern, in.subject, diff)
		}
	}
}

func TestRecompute_InvalidPatternNeverScans(t *testing.T) {
	pattern := &testutil.FakePattern{}
	eng := &testutil.FakeEngine{
		CompileErr: errors.New("missing closing paren"),
		Pattern:    pattern,
	}

	res := Recompute(eng, "(", "abc")

	if res.Status.Level != LevelInvalid {
		t.Errorf("status level = %d, want %d", res.Status.Level, LevelInvalid)
	}
	if !strings.Contains(res.Document, "missing closing paren") {
		t.Errorf("document %q does not carry the compile error", res.Document)
	}
	if pattern.Scans != 0 {
		t.Errorf("collection ran %d times despite compile failure", pattern.Scans)
	}
}

func TestRecompute_CollectError(t *testing.T) {
	eng := &testutil.FakeEngine{
		Pattern: &testutil.FakePattern{PanicMsg: "engine exploded"},
	}

	res := Recompute(eng, "anything", "abc")

	if res.Status.Level != LevelError {
		t.Errorf("status level = %d, want %d", res.Status.Level, LevelError)
	}
	if !strings.Contains(res.Status.Text, "Error during matching") {
		t.Errorf("status %q does not flag a matching error", res.Status.Text)
	}
	if !strings.Contains(res.Document, "### Matching Error") {
		t.Errorf("document %q is not the matching error document", res.Document)
	}
	if !strings.Contains(res.Document, "engine exploded") {
		t.Errorf("document %q does not carry the failure message", res.Document)
	}
}

func TestSession_NoOpOnUnchangedValues(t *testing.T) {
	eng := &testutil.FakeEngine{Pattern: &testutil.FakePattern{}}
	s := New(eng, zerolog.Nop())

	s.SetPattern("abc")
	if len(eng.Compiled) != 1 {
		t.Fatalf("expected 1 compile but got %d", len(eng.Compiled))
	}

	// Spurious change notifications with the same value must not recompute.
	s.SetPattern("abc")
	s.SetPattern("abc")
	if len(eng.Compiled) != 1 {
		t.Errorf("unchanged pattern recompiled: %d compiles", len(eng.Compiled))
	}

	s.SetSubject("hello")
	if len(eng.Compiled) != 2 {
		t.Fatalf("expected recompute on subject change, got %d compiles", len(eng.Compiled))
	}
	s.SetSubject("hello")
	if len(eng.Compiled) != 2 {
		t.Errorf("unchanged subject recompiled: %d compiles", len(eng.Compiled))
	}
}

func TestSession_ResultTracksLatestInputs(t *testing.T) {
	s := New(engine.StdlibEngine{}, zerolog.Nop())

	if s.Result().Status.Level != LevelNeutral {
		t.Errorf("fresh session should be neutral, got level %d", s.Result().Status.Level)
	}

	res := s.SetPattern(`[a-z]+`)
	if res.Status.Level != LevelValid {
		t.Errorf("valid pattern: level = %d, want %d", res.Status.Level, LevelValid)
	}

	res = s.SetSubject("Hello World 123")
	if !strings.Contains(res.Document, "**ello**") {
		t.Errorf("document %q does not highlight the first match", res.Document)
	}

	// An error never wedges the session: it recovers on the next edit.
	res = s.SetPattern("(")
	if res.Status.Level != LevelInvalid {
		t.Errorf("invalid pattern: level = %d, want %d", res.Status.Level, LevelInvalid)
	}
	res = s.SetPattern(`\d+`)
	if res.Status.Level != LevelValid {
		t.Errorf("session did not recover from invalid pattern: level = %d", res.Status.Level)
	}
	if !strings.Contains(res.Document, "**123**") {
		t.Errorf("document %q does not highlight the digits", res.Document)
	}
}
