// Package scan turns a compiled pattern and a subject string into an
// ordered list of match records.
package scan

import (
	"fmt"

	"github.com/rxlab/regex-tester/pkg/engine"
)

// Group is a single capture group slot. A group that did not participate
// in the match has Present false; that is distinct from a group that
// matched the empty string.
type Group struct {
	Value   string
	Present bool
}

// NamedGroup binds a capture group to its name. Entries keep the
// pattern's group order so rendering is deterministic.
type NamedGroup struct {
	Name string
	Group
}

// Match is one non-overlapping match of a pattern against the subject.
// Start and End are byte offsets forming a half-open span.
type Match struct {
	Start  int
	End    int
	Text   string
	Groups []Group
	Named  []NamedGroup
}

// Collect runs cp against subject and records every match, leftmost
// first.
//
// The ordering invariant (ascending starts, non-overlapping spans) holds
// even for a misbehaving engine: any reported match that starts inside
// already-consumed input is dropped rather than rescanned. A panicking
// engine is reported as an error instead of taking down the caller.
func Collect(cp engine.CompiledPattern, subject string) (matches []Match, err error) {
	defer func() {
		if r := recover(); r != nil {
			matches = nil
			err = fmt.Errorf("scan failed: %v", r)
		}
	}()

	if subject == "" {
		return nil, nil
	}

	names := cp.SubexpNames()
	prevEnd := 0
	for _, idx := range cp.FindAllSubmatchIndex(subject) {
		if len(idx) < 2 || idx[0] < 0 || idx[1] < idx[0] || idx[1] > len(subject) {
			continue
		}
		start, end := idx[0], idx[1]
		if start < prevEnd {
			continue
		}

		m := Match{
			Start: start,
			End:   end,
			Text:  subject[start:end],
		}
		for g := 1; g <= len(idx)/2-1; g++ {
			var grp Group
			if s, e := idx[2*g], idx[2*g+1]; s >= 0 && e >= s && e <= len(subject) {
				grp = Group{Value: subject[s:e], Present: true}
			}
			m.Groups = append(m.Groups, grp)
			if g < len(names) && names[g] != "" {
				m.Named = append(m.Named, NamedGroup{Name: names[g], Group: grp})
			}
		}

		matches = append(matches, m)
		prevEnd = end
	}

	return matches, nil
}
