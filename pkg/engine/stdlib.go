package engine

import "regexp"

// StdlibEngine compiles patterns with Go's regexp package (RE2 semantics).
type StdlibEngine struct{}

// Name implements the Engine interface
func (StdlibEngine) Name() string { return "stdlib" }

// Compile implements the Engine interface
func (StdlibEngine) Compile(pattern string) (CompiledPattern, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return stdlibPattern{re: re}, nil
}

type stdlibPattern struct {
	re *regexp.Regexp
}

func (p stdlibPattern) FindAllSubmatchIndex(subject string) [][]int {
	return p.re.FindAllStringSubmatchIndex(subject, -1)
}

func (p stdlibPattern) SubexpNames() []string { return p.re.SubexpNames() }

func (p stdlibPattern) NumSubexp() int { return p.re.NumSubexp() }
