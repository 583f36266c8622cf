package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/metal3d/cakesort/ordering"
	"github.com/stretchr/testify/require"
)

func TestBuildCommand(t *testing.T) {
	cmd := buildMainCommand()
	if cmd == nil {
		t.Fatal("buildMainCommand() should not return nil")
	}
	names := map[string]bool{}
	for _, c := range cmd.Commands() {
		names[c.Name()] = true
	}
	for _, name := range []string{"check", "print-config", "completion"} {
		if !names[name] {
			t.Errorf("missing %q command", name)
		}
	}
}

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

func TestCollectFiles(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.js":                      "",
		"b.ts":                      "",
		"lib/c.mjs":                 "",
		"lib/node_modules/dep/d.js": "",
		".cache/e.js":               "",
		"dist/f.js":                 "",
		"README.md":                 "",
	})
	config := defaultConfig()
	config.Exclude = append(config.Exclude, "**/dist/**")

	files, err := collectFiles(config, root)
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(root, "a.js"),
		filepath.Join(root, "lib", "c.mjs"),
	}, files)

	// explicit files are checked whatever their extension
	files, err = collectFiles(config, filepath.Join(root, "b.ts"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	_, err = collectFiles(config, filepath.Join(root, "missing.js"))
	require.Error(t, err)
}

func TestIsExcluded(t *testing.T) {
	patterns := []string{"**/node_modules/**", "**/*.min.js"}
	require.True(t, isExcluded(patterns, "node_modules"))
	require.True(t, isExcluded(patterns, "src/node_modules/react/index.js"))
	require.True(t, isExcluded(patterns, "./vendor/jquery.min.js"))
	require.False(t, isExcluded(patterns, "src/app.js"))
	require.False(t, isExcluded(nil, "src/app.js"))
}

func TestReport(t *testing.T) {
	out := bytes.NewBuffer(nil)
	err := report(out, []fileResult{
		{path: "a.js"},
		{path: "b.js", violations: []ordering.Violation{{
			Code: ordering.RelativeGroupOrder,
			Node: &ordering.ImportDecl{Loc: ordering.Span{Start: ordering.Position{Line: 2}}},
		}}},
	})
	require.EqualError(t, err, "1 ordering violations")
	require.Equal(t, "b.js:2:1: external modules should be imported before internal modules (sort-imports)\n", out.String())

	out.Reset()
	err = report(out, []fileResult{{path: "a.js", err: os.ErrNotExist}})
	require.EqualError(t, err, "0 ordering violations, 1 files could not be checked")
	require.Empty(t, out.String())

	require.NoError(t, report(out, []fileResult{{path: "a.js"}}))
}

func TestWrapPath(t *testing.T) {
	positioned := &ordering.UnrecognizedKindError{
		What: "class body member",
		Kind: "class_static_block",
		Node: &ordering.Member{Loc: ordering.Span{Start: ordering.Position{Line: 2, Column: 2}}},
	}
	err := wrapPath("a.js", positioned)
	require.EqualError(t, err, `a.js:2:3: unrecognized class body member "class_static_block"`)
	require.ErrorIs(t, err, positioned)

	bare := &ordering.UnrecognizedKindError{What: "import specifier", Kind: "bogus"}
	require.EqualError(t, wrapPath("a.js", bare), `a.js: unrecognized import specifier "bogus"`)
	require.EqualError(t, wrapPath("a.js", os.ErrNotExist), "a.js: file does not exist")
}

func TestCheckFlagsValidation(t *testing.T) {
	root := writeTree(t, map[string]string{"a.js": ""})

	cmd := buildMainCommand()
	cmd.SetArgs([]string{"check", "--jobs", "0", root})
	require.ErrorContains(t, cmd.Execute(), "Invalid jobs count")

	cmd = buildMainCommand()
	cmd.SetArgs([]string{"check", "--exclude", "[", root})
	require.ErrorContains(t, cmd.Execute(), "Invalid exclude pattern")
}
