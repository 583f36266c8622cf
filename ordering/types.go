package ordering

const (
	SpecifierNone      SpecifierKind = "none"
	SpecifierNamed     SpecifierKind = "named"
	SpecifierNamespace SpecifierKind = "namespace"
	SpecifierDefault   SpecifierKind = "default"
)

const (
	MemberMethod   MemberKind = "method"
	MemberProperty MemberKind = "property"
)

const (
	CommentLine CommentKind = iota
	CommentBlock
)

// ClassBody is the container of a class's methods and properties.
type ClassBody struct {
	Members []*Member
	Loc     Span
}

// Span returns the location of the class body, braces included.
func (b *ClassBody) Span() Span {
	return b.Loc
}

// Comment is a comment found anywhere in the module.
type Comment struct {
	Kind CommentKind

	// Text is the comment body without the "//" or "/* */" markers. It is
	// not trimmed.
	Text string

	Loc Span
}

// CommentKind tells line comments from block comments.
type CommentKind int

// ImportDecl is a module-level import declaration.
type ImportDecl struct {
	// Source is the module specifier string, without quotes.
	Source string

	// Specifiers are the bindings in source order. Empty for a side-effect
	// import such as `import './polyfill'`.
	Specifiers []*Specifier

	Loc Span
}

// Span returns the location of the declaration.
func (d *ImportDecl) Span() Span {
	return d.Loc
}

// Member is a class-body element.
type Member struct {
	Kind MemberKind

	// Name is the identifier of the method or property, as written.
	Name string

	Loc Span
}

// Span returns the location of the member.
func (m *Member) Span() Span {
	return m.Loc
}

// MemberKind tags a class-body element. Front ends may pass through a kind
// that is neither MemberMethod nor MemberProperty; the class checker rejects it.
type MemberKind string

// Module is everything the checks need from one source file.
type Module struct {
	Path        string
	Comments    []Comment
	Imports     []*ImportDecl
	ClassBodies []*ClassBody
}

// Node is anything a violation can be anchored to.
type Node interface {
	Span() Span
}

// Position is a location in a source file. Line is 1-based and Column is
// 0-based, in bytes.
type Position struct {
	Line   int
	Column int
}

// Span is the source range of a node.
type Span struct {
	Start Position
	End   Position
}

// Specifier is one binding of an import declaration.
type Specifier struct {
	Kind SpecifierKind

	// Local is the name bound in the importing module.
	Local string

	Loc Span
}

// Span returns the location of the specifier.
func (s *Specifier) Span() Span {
	return s.Loc
}

// SpecifierKind is the binding form of an import specifier.
type SpecifierKind string
