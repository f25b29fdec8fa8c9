// Package testutil provides hand-rolled fakes for exercising error paths
// that the real engines never take.
package testutil

import "github.com/rxlab/regex-tester/pkg/engine"

// FakeEngine is a scripted implementation of engine.Engine. It records
// every Compile call and returns either CompileErr or Pattern.
type FakeEngine struct {
	CompileErr error
	Pattern    *FakePattern
	Compiled   []string
}

// Name implements the engine.Engine interface
func (f *FakeEngine) Name() string { return "fake" }

// Compile implements the engine.Engine interface
func (f *FakeEngine) Compile(pattern string) (engine.CompiledPattern, error) {
	f.Compiled = append(f.Compiled, pattern)
	if f.CompileErr != nil {
		return nil, f.CompileErr
	}
	if f.Pattern != nil {
		return f.Pattern, nil
	}
	return &FakePattern{}, nil
}

// FakePattern returns scripted match indexes, or panics when PanicMsg is
// set, standing in for an engine blowing up mid-scan.
type FakePattern struct {
	Indexes  [][]int
	Names    []string
	PanicMsg string
	Scans    int
}

// FindAllSubmatchIndex implements the engine.CompiledPattern interface
func (p *FakePattern) FindAllSubmatchIndex(subject string) [][]int {
	p.Scans++
	if p.PanicMsg != "" {
		panic(p.PanicMsg)
	}
	return p.Indexes
}

// SubexpNames implements the engine.CompiledPattern interface
func (p *FakePattern) SubexpNames() []string {
	if p.Names == nil {
		return []string{""}
	}
	return p.Names
}

// NumSubexp implements the engine.CompiledPattern interface
func (p *FakePattern) NumSubexp() int {
	return len(p.SubexpNames()) - 1
}
