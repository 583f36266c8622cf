package ordering

import "sort"

var _ sort.Interface = (*LineList)(nil)

// LineList is a list of line numbers that *can* be sorted.
//
// Implement sort.Interface
type LineList []int

// Len returns the length of the list.
func (l LineList) Len() int {
	return len(l)
}

// Less reports whether the element with index i should sort before the element with index j.
func (l LineList) Less(i, j int) bool {
	return l[i] < l[j]
}

// Sort sorts the list.
func (l LineList) Sort() {
	sort.Sort(l)
}

// Swap swaps the elements with indexes i and j.
func (l LineList) Swap(i, j int) {
	l[i], l[j] = l[j], l[i]
}

// Add adds a line to the list.
func (l *LineList) Add(line int) {
	*l = append(*l, line)
}

// sortKey is the running comparison key of a checker. The zero value is
// unset, so an empty identifier is still a real key.
type sortKey struct {
	value string
	set   bool
}
