package ordering

// Options configures the checks of a module.
type Options struct {
	// Delimiter starts the text of a section comment. Empty means
	// DefaultDelimiter.
	Delimiter string

	// ConstructorFirst exempts a leading constructor from class sorting.
	ConstructorFirst bool
}

// DefaultOptions returns the options of the standard style.
func DefaultOptions() Options {
	return Options{
		Delimiter:        DefaultDelimiter,
		ConstructorFirst: true,
	}
}

// Check runs the import and class checks on mod. Imports are checked first,
// as one sequence, then each class body in document order. Violations are
// returned in the order they were found.
//
// An unrecognized import specifier or class member stops the analysis of the
// module with an *UnrecognizedKindError. The violations found before it are
// still returned.
func Check(mod *Module, opts Options) ([]Violation, error) {
	var violations []Violation
	report := func(v Violation) {
		violations = append(violations, v)
	}

	imports := NewImportChecker(report)
	for _, decl := range mod.Imports {
		if err := imports.Check(decl); err != nil {
			return violations, err
		}
	}

	classes := NewClassChecker(NewSectionMap(mod.Comments, opts.Delimiter), report)
	classes.ConstructorFirst = opts.ConstructorFirst
	for _, body := range mod.ClassBodies {
		if err := classes.Check(body); err != nil {
			return violations, err
		}
	}
	return violations, nil
}
