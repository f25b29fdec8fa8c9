// Package engine defines the regex capability used by the rest of the
// application, plus the available implementations.
package engine

import "fmt"

// CompiledPattern is an opaque handle to a compiled regular expression.
// It exposes only what match collection needs; callers never see the
// underlying engine type.
type CompiledPattern interface {
	// FindAllSubmatchIndex returns every non-overlapping match as a slice
	// of byte offsets in the shape stdlib regexp uses: each element holds
	// 2*(1+NumSubexp) offsets, with -1 marking a group that did not
	// participate in the match.
	FindAllSubmatchIndex(subject string) [][]int

	// SubexpNames returns the capture group names, index 0 being the empty
	// name of the whole match. Unnamed groups have an empty name.
	SubexpNames() []string

	// NumSubexp returns the number of capture groups in the pattern.
	NumSubexp() int
}

// Engine compiles pattern text into CompiledPatterns.
type Engine interface {
	Name() string
	Compile(pattern string) (CompiledPattern, error)
}

// New returns the engine registered under name. The empty name selects
// the default stdlib engine.
func New(name string) (Engine, error) {
	switch name {
	case "", "stdlib":
		return StdlibEngine{}, nil
	case "coregex":
		return CoregexEngine{}, nil
	default:
		return nil, fmt.Errorf("unknown regex engine %q (available: stdlib, coregex)", name)
	}
}

// Names lists the available engine names.
func Names() []string {
	return []string{"stdlib", "coregex"}
}
