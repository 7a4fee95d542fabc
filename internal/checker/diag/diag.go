package diag

import (
	"fmt"
	"sort"
)

// Diagnostic is one reported problem, keyed to a 1-based source line.
type Diagnostic struct {
	Line    int
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %s", d.Line, d.Message)
}

// Set collects diagnostics with at most one entry per source line. The
// first diagnostic recorded for a line wins; later ones on the same line
// are dropped so a single root cause does not cascade into several
// reports.
type Set struct {
	byLine map[int]string
}

func NewSet() *Set {
	return &Set{byLine: make(map[int]string)}
}

// Add records a diagnostic for line unless the line already has one.
func (s *Set) Add(line int, format string, args ...any) {
	if _, seen := s.byLine[line]; seen {
		return
	}
	s.byLine[line] = fmt.Sprintf(format, args...)
}

// AddAll merges diagnostics into the set, keeping existing entries.
func (s *Set) AddAll(diags []Diagnostic) {
	for _, d := range diags {
		s.Add(d.Line, "%s", d.Message)
	}
}

func (s *Set) Empty() bool {
	return len(s.byLine) == 0
}

func (s *Set) Len() int {
	return len(s.byLine)
}

// Sorted returns the diagnostics in ascending line order.
func (s *Set) Sorted() []Diagnostic {
	lines := make([]int, 0, len(s.byLine))
	for line := range s.byLine {
		lines = append(lines, line)
	}
	sort.Ints(lines)

	out := make([]Diagnostic, 0, len(lines))
	for _, line := range lines {
		out = append(out, Diagnostic{Line: line, Message: s.byLine[line]})
	}
	return out
}
