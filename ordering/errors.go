package ordering

import "fmt"

// UnrecognizedKindError is returned when a node carries a kind outside the
// taxonomy the checks know about. It aborts the analysis of the module.
type UnrecognizedKindError struct {
	// What is "import specifier" or "class body member".
	What string
	Kind string
	Node Node
}

func (e *UnrecognizedKindError) Error() string {
	if e.Node == nil {
		return fmt.Sprintf("unrecognized %s %q", e.What, e.Kind)
	}
	pos := e.Node.Span().Start
	return fmt.Sprintf("%d:%d: unrecognized %s %q", pos.Line, pos.Column+1, e.What, e.Kind)
}
