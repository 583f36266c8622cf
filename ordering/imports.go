package ordering

import "strings"

const (
	BucketUnnamed Bucket = iota
	BucketNamed
	BucketNamespace
	BucketDefault
)

// Bucket is the rank of an import's binding form. Buckets must not decrease
// within a group of external or relative imports.
type Bucket int

// ImportRecord is what the import checker compares between two adjacent
// declarations.
type ImportRecord struct {
	External bool
	Kind     SpecifierKind
	Bucket   Bucket
	SortKey  string
}

// ImportChecker checks the import declarations of one module, in document
// order, as a single flat sequence.
type ImportChecker struct {
	report Reporter
	last   *ImportRecord
}

// NewImportChecker returns a checker sending violations to report.
func NewImportChecker(report Reporter) *ImportChecker {
	return &ImportChecker{report: report}
}

// Check compares decl with the previously checked declaration and checks the
// order of its named specifiers. The declaration becomes the new baseline
// whether or not it was reported.
func (c *ImportChecker) Check(decl *ImportDecl) error {
	next, err := Classify(decl)
	if err != nil {
		return err
	}

	if countNamed(decl) > 1 {
		c.checkSpecifiers(decl)
	}

	if last := c.last; last != nil {
		switch {
		case next.External && !last.External:
			c.report(Violation{Code: RelativeGroupOrder, Node: decl})
		case next.External != last.External:
			// relative after external is the expected order
		case last.Bucket > next.Bucket:
			c.report(Violation{Code: SpecifierGroupOrder, Node: decl})
		case last.Kind == next.Kind && next.SortKey < last.SortKey:
			c.report(Violation{Code: AlphabetImportOrder, Node: decl})
		}
	}

	c.last = &next
	return nil
}

func countNamed(decl *ImportDecl) int {
	n := 0
	for _, spec := range decl.Specifiers {
		if spec.Kind == SpecifierNamed {
			n++
		}
	}
	return n
}

func (c *ImportChecker) checkSpecifiers(decl *ImportDecl) {
	var last sortKey
	for _, spec := range decl.Specifiers {
		if spec.Kind != SpecifierNamed {
			continue
		}
		name := strings.ToLower(spec.Local)
		if last.set && name < last.value {
			c.report(Violation{Code: AlphabetSpecifierOrder, Node: spec})
		}
		last = sortKey{value: name, set: true}
	}
}

// Classify derives the comparison record of an import declaration. The kind
// of the first specifier decides the bucket; every specifier must carry a
// known kind.
func Classify(decl *ImportDecl) (ImportRecord, error) {
	for _, spec := range decl.Specifiers {
		if _, ok := bucketOf(spec.Kind); !ok || spec.Kind == SpecifierNone {
			return ImportRecord{}, &UnrecognizedKindError{What: "import specifier", Kind: string(spec.Kind), Node: spec}
		}
	}

	rec := ImportRecord{
		External: IsExternal(decl.Source),
		Kind:     SpecifierNone,
		SortKey:  decl.Source,
	}
	if len(decl.Specifiers) > 0 {
		first := decl.Specifiers[0]
		rec.Kind = first.Kind
		rec.SortKey = strings.ToLower(first.Local)
	}
	rec.Bucket, _ = bucketOf(rec.Kind)
	return rec, nil
}

// IsExternal reports whether source names a package rather than a relative
// file path.
func IsExternal(source string) bool {
	return !strings.HasPrefix(source, "./") && !strings.HasPrefix(source, "../")
}

func bucketOf(kind SpecifierKind) (Bucket, bool) {
	switch kind {
	case SpecifierNone:
		return BucketUnnamed, true
	case SpecifierNamed:
		return BucketNamed, true
	case SpecifierNamespace:
		return BucketNamespace, true
	case SpecifierDefault:
		return BucketDefault, true
	}
	return 0, false
}
