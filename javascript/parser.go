// Package javascript builds ordering modules from JavaScript source files.
//
// The tree-sitter grammar is used when the binary is built with cgo. Without
// cgo, Parse returns ErrUnavailable.
package javascript

import (
	"errors"
	"path/filepath"
	"strings"
)

var (
	// ErrSyntax is returned when the source does not parse cleanly.
	ErrSyntax = errors.New("syntax error")

	// ErrUnavailable is returned when the binary was built without cgo.
	ErrUnavailable = errors.New("javascript parser not available (built without cgo)")
)

// Extensions are the file extensions handled by default.
var Extensions = []string{".js", ".jsx", ".mjs", ".cjs"}

// tree-sitter node types
const (
	nodeClassBody        = "class_body"
	nodeComment          = "comment"
	nodeComputedName     = "computed_property_name"
	nodeFieldDefinition  = "field_definition"
	nodeIdentifier       = "identifier"
	nodeImportClause     = "import_clause"
	nodeImportSpecifier  = "import_specifier"
	nodeImportStatement  = "import_statement"
	nodeMethodDefinition = "method_definition"
	nodeNamedImports     = "named_imports"
	nodeNamespaceImport  = "namespace_import"
	nodeProgram          = "program"
	nodePublicField      = "public_field_definition"
	nodeString           = "string"
	nodeStringFragment   = "string_fragment"
)

// HasExtension reports whether path ends with one of exts. The comparison is
// case insensitive.
func HasExtension(path string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}

// commentText strips the comment markers. The second result is true for a
// line comment.
func commentText(raw string) (string, bool) {
	if strings.HasPrefix(raw, "//") {
		return raw[2:], true
	}
	raw = strings.TrimPrefix(raw, "/*")
	raw = strings.TrimSuffix(raw, "*/")
	return raw, false
}

// unquote removes the quotes of a string literal when the grammar gives no
// string fragment (empty strings).
func unquote(raw string) string {
	if len(raw) >= 2 {
		return raw[1 : len(raw)-1]
	}
	return raw
}
