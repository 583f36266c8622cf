package ordering

import (
	"sort"
	"strings"
)

// DefaultDelimiter starts a line comment that opens a new class section:
//
//	// -- Private Methods ----
const DefaultDelimiter = " -- "

// SectionMap holds the lines of all section comments of a module, in
// ascending order. It is built once per module and never modified.
type SectionMap struct {
	lines LineList
}

// NewSectionMap collects the section comments among comments. A section
// comment is a line comment whose text starts with delimiter. Block comments
// never open a section.
func NewSectionMap(comments []Comment, delimiter string) *SectionMap {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}
	m := &SectionMap{}
	for _, c := range comments {
		if c.Kind == CommentLine && strings.HasPrefix(c.Text, delimiter) {
			m.lines.Add(c.Loc.Start.Line)
		}
	}
	if !sort.IsSorted(m.lines) {
		m.lines.Sort()
	}
	return m
}

// Lines returns the section comment lines.
func (m *SectionMap) Lines() []int {
	return m.lines
}

// Cursor returns a cursor positioned on the first section line at or after
// line.
func (m *SectionMap) Cursor(line int) *SectionCursor {
	return &SectionCursor{
		lines: m.lines,
		next:  sort.SearchInts(m.lines, line),
	}
}

// SectionCursor walks the section lines of a map forward. Lines behind the
// cursor are consumed.
type SectionCursor struct {
	lines []int
	next  int
}

// Between reports whether a section line lies strictly between after and
// before. Lines up to after are consumed.
func (c *SectionCursor) Between(after, before int) bool {
	c.Seek(after + 1)
	line, ok := c.Peek()
	return ok && line < before
}

// Peek returns the next unconsumed section line.
func (c *SectionCursor) Peek() (int, bool) {
	if c.next >= len(c.lines) {
		return 0, false
	}
	return c.lines[c.next], true
}

// Seek consumes every section line before line.
func (c *SectionCursor) Seek(line int) {
	for c.next < len(c.lines) && c.lines[c.next] < line {
		c.next++
	}
}
