package ordering

// Builders for hand-made modules. Every node sits on its own line unless
// stated otherwise.

func at(line int) Span {
	return Span{Start: Position{Line: line}, End: Position{Line: line}}
}

func lines(start, end int) Span {
	return Span{Start: Position{Line: start}, End: Position{Line: end}}
}

func imp(line int, source string, specs ...*Specifier) *ImportDecl {
	for _, s := range specs {
		s.Loc = at(line)
	}
	return &ImportDecl{Source: source, Specifiers: specs, Loc: at(line)}
}

func named(local string) *Specifier {
	return &Specifier{Kind: SpecifierNamed, Local: local}
}

func def(local string) *Specifier {
	return &Specifier{Kind: SpecifierDefault, Local: local}
}

func star(local string) *Specifier {
	return &Specifier{Kind: SpecifierNamespace, Local: local}
}

func method(line int, name string) *Member {
	return &Member{Kind: MemberMethod, Name: name, Loc: at(line)}
}

func prop(line int, name string) *Member {
	return &Member{Kind: MemberProperty, Name: name, Loc: at(line)}
}

func lineComment(line int, text string) Comment {
	return Comment{Kind: CommentLine, Text: text, Loc: at(line)}
}

func blockComment(line int, text string) Comment {
	return Comment{Kind: CommentBlock, Text: text, Loc: at(line)}
}

func body(start, end int, members ...*Member) *ClassBody {
	return &ClassBody{Members: members, Loc: lines(start, end)}
}

// codes returns the codes of violations, for compact comparisons.
func codes(violations []Violation) []Code {
	var out []Code
	for _, v := range violations {
		out = append(out, v.Code)
	}
	return out
}
