// Package markdown renders scan results in the small markdown dialect the
// results pane displays: escaped text, bold highlights, heading sections.
package markdown

import (
	"fmt"
	"strings"

	"github.com/rxlab/regex-tester/pkg/scan"
)

// escaper backslash-escapes every character that carries meaning in the
// output markup.
var escaper = strings.NewReplacer(
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
	"(", `\(`,
	")", `\)`,
	"!", `\!`,
	"#", `\#`,
	"-", `\-`,
	"+", `\+`,
	".", `\.`,
)

// Escape returns s with markup-significant characters backslash-escaped.
// It is applied to each fragment after slicing, never across a highlight
// boundary, so concatenated fragments stay well formed. Escaping an
// already-escaped string escapes it again; that is accepted, not
// deduplicated.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Document is the rendered view of one scan: the subject with matched
// spans emphasized, plus one detail entry per match in match order.
type Document struct {
	Highlighted string
	Details     []string
}

// Build walks subject left to right using the match spans as cut points.
// Text between matches is escaped verbatim; text inside a match is
// escaped and wrapped in bold markers. Stripping the markup from
// Highlighted yields subject exactly.
func Build(subject string, matches []scan.Match) Document {
	var doc Document
	var b strings.Builder

	last := 0
	for _, m := range matches {
		b.WriteString(Escape(subject[last:m.Start]))
		b.WriteString("**")
		b.WriteString(Escape(m.Text))
		b.WriteString("**")
		last = m.End

		doc.Details = append(doc.Details, detailEntry(m))
	}
	b.WriteString(Escape(subject[last:]))

	doc.Highlighted = b.String()
	return doc
}

func detailEntry(m scan.Match) string {
	var b strings.Builder
	fmt.Fprintf(&b, "- **Match**: `%s` (span=(%d, %d))", Escape(m.Text), m.Start, m.End)

	if len(m.Groups) > 0 {
		vals := make([]string, len(m.Groups))
		for i, g := range m.Groups {
			vals[i] = "`" + groupValue(g) + "`"
		}
		fmt.Fprintf(&b, "\n  - Groups (%d): (%s)", len(m.Groups), strings.Join(vals, ", "))
	}

	if len(m.Named) > 0 {
		pairs := make([]string, len(m.Named))
		for i, ng := range m.Named {
			pairs[i] = ng.Name + "=`" + groupValue(ng.Group) + "`"
		}
		fmt.Fprintf(&b, "\n  - Named Groups: {%s}", strings.Join(pairs, ", "))
	}

	return b.String()
}

// groupValue renders a group that did not participate as the literal
// None, keeping it distinct from an empty-string match.
func groupValue(g scan.Group) string {
	if !g.Present {
		return "None"
	}
	return Escape(g.Value)
}
