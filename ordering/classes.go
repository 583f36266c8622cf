package ordering

// ClassChecker checks that methods and properties of a class body are sorted
// alphabetically within each section.
type ClassChecker struct {
	report   Reporter
	sections *SectionMap

	// ConstructorFirst exempts a constructor in first position.
	ConstructorFirst bool
}

// NewClassChecker returns a checker using the section comments of sections and
// sending violations to report.
func NewClassChecker(sections *SectionMap, report Reporter) *ClassChecker {
	return &ClassChecker{
		report:           report,
		sections:         sections,
		ConstructorFirst: true,
	}
}

// Check walks one class body. Each call starts a fresh run; no state is kept
// between class bodies.
func (c *ClassChecker) Check(body *ClassBody) error {
	cursor := c.sections.Cursor(body.Loc.Start.Line)

	var last sortKey
	for i, member := range body.Members {
		if i == 0 && c.ConstructorFirst && isConstructor(member) {
			continue
		}

		// drop section comments that are already behind this member
		cursor.Seek(member.Loc.Start.Line)

		key, err := memberKey(member)
		if err != nil {
			return err
		}

		if last.set && key < last.value {
			c.report(Violation{Code: SortClassBody, Node: member})
		}

		if i+1 < len(body.Members) && cursor.Between(member.Loc.End.Line, body.Members[i+1].Loc.Start.Line) {
			last = sortKey{}
		} else {
			last = sortKey{value: key, set: true}
		}
	}
	return nil
}

func isConstructor(m *Member) bool {
	return m.Kind == MemberMethod && m.Name == "constructor"
}

func memberKey(m *Member) (string, error) {
	switch m.Kind {
	case MemberMethod, MemberProperty:
		return m.Name, nil
	default:
		return "", &UnrecognizedKindError{What: "class body member", Kind: string(m.Kind), Node: m}
	}
}
