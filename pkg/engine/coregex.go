package engine

import "github.com/coregx/coregex"

// CoregexEngine compiles patterns with the coregex engine. Its API is
// stdlib-compatible, so the adapter is shaped exactly like the stdlib one.
type CoregexEngine struct{}

// Name implements the Engine interface
func (CoregexEngine) Name() string { return "coregex" }

// Compile implements the Engine interface
func (CoregexEngine) Compile(pattern string) (CompiledPattern, error) {
	re, err := coregex.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return coregexPattern{re: re}, nil
}

type coregexPattern struct {
	re *coregex.Regex
}

func (p coregexPattern) FindAllSubmatchIndex(subject string) [][]int {
	return p.re.FindAllStringSubmatchIndex(subject, -1)
}

func (p coregexPattern) SubexpNames() []string { return p.re.SubexpNames() }

func (p coregexPattern) NumSubexp() int { return p.re.NumSubexp() }
