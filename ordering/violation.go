package ordering

import "fmt"

const (
	RelativeGroupOrder Code = iota + 1
	SpecifierGroupOrder
	AlphabetImportOrder
	AlphabetSpecifierOrder
	SortClassBody
)

const (
	RuleSortImports = "sort-imports"
	RuleSortClass   = "sort-class"
)

var messages = map[Code]string{
	RelativeGroupOrder:     "external modules should be imported before internal modules",
	SpecifierGroupOrder:    "import groupings should follow the order: unnamed, destructured, wildcard, default",
	AlphabetImportOrder:    "import declarations should be sorted alphabetically",
	AlphabetSpecifierOrder: "import names should be sorted alphabetically",
	SortClassBody:          "class methods and properties should be sorted alphabetically",
}

// Code identifies which ordering rule a violation breaks.
type Code int

// Message returns the fixed diagnostic text of the code.
func (c Code) Message() string {
	return messages[c]
}

// Rule returns the name of the rule the code belongs to.
func (c Code) Rule() string {
	if c == SortClassBody {
		return RuleSortClass
	}
	return RuleSortImports
}

func (c Code) String() string {
	switch c {
	case RelativeGroupOrder:
		return "RELATIVE_GROUP_ORDER"
	case SpecifierGroupOrder:
		return "SPECIFIER_GROUP_ORDER"
	case AlphabetImportOrder:
		return "ALPHABET_IMPORT_ORDER"
	case AlphabetSpecifierOrder:
		return "ALPHABET_SPECIFIER_ORDER"
	case SortClassBody:
		return "SORT_CLASS_BODY"
	default:
		return fmt.Sprintf("Code(%d)", int(c))
	}
}

// Reporter receives violations as the checks find them.
type Reporter func(Violation)

// Violation is one ordering mismatch, anchored to the node that is out of
// place.
type Violation struct {
	Code Code
	Node Node
}

// Message returns the diagnostic text.
func (v Violation) Message() string {
	return v.Code.Message()
}

// Pos returns where the offending node starts.
func (v Violation) Pos() Position {
	return v.Node.Span().Start
}

// Rule returns the name of the broken rule.
func (v Violation) Rule() string {
	return v.Code.Rule()
}

func (v Violation) String() string {
	pos := v.Pos()
	return fmt.Sprintf("%d:%d: %s (%s)", pos.Line, pos.Column+1, v.Message(), v.Rule())
}
