package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/metal3d/cakesort/javascript"
	logger "github.com/metal3d/cakesort/log"
	"github.com/metal3d/cakesort/ordering"
	"golang.org/x/sync/errgroup"
)

const (
	usage = `%[1]s checks that import declarations and class members of JavaScript
files are sorted. Imports go external first, then by binding form (unnamed,
destructured, wildcard, default), then alphabetically. Class methods and
properties are sorted alphabetically inside sections opened by a
"// -- Section name" comment.`

	stdinFilename = "stdin.js"
)

var (
	version  = "master" // changed at compilation time
	log      = logger.GetLogger()
	examples = []string{
		"$ %[1]s check ./src",
		"$ %[1]s check --exclude '**/vendor/**' --jobs 4 .",
		"$ cat file.js | %[1]s check",
	}
	completionExamples = []string{
		"$ %[1]s completion bash",
		"$ %[1]s completion bash -no-descriptions",
		"$ %[1]s completion zsh",
		"$ %[1]s completion fish",
		"$ %[1]s completion powershell",
	}
)

// fileResult is the outcome of the analysis of one file.
type fileResult struct {
	path       string
	violations []ordering.Violation
	err        error
}

func main() {
	if err := buildMainCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func stdinIsPiped() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

func run(ctx context.Context, config *CheckConfig, out io.Writer, args ...string) error {
	var results []fileResult
	if len(args) == 0 {
		// read from stdin
		input, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		log.Debug("processing stdin")
		results = []fileResult{analyze(ctx, stdinFilename, input, config.Options())}
	} else {
		files, err := collectFiles(config, args...)
		if err != nil {
			return err
		}
		results, err = analyzeFiles(ctx, config, files)
		if err != nil {
			return err
		}
	}
	return report(out, results)
}

// collectFiles expands directories into the files to check. Files given
// explicitly are kept whatever their extension, unless excluded.
func collectFiles(config *CheckConfig, args ...string) ([]string, error) {
	var files []string
	for _, arg := range args {
		stat, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !stat.IsDir() {
			if isExcluded(config.Exclude, arg) {
				log.Debug("skipping excluded file", "path", arg)
				continue
			}
			files = append(files, arg)
			continue
		}

		log.Debug("processing directory", "path", arg)
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if isExcluded(config.Exclude, path) {
				log.Debug("skipping excluded path", "path", path)
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				// skip hidden directories, but not the root directory
				if path != arg && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if javascript.HasExtension(path, config.Extensions) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

func isExcluded(patterns []string, path string) bool {
	path = filepath.ToSlash(filepath.Clean(path))
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, path); ok {
			return true
		}
		// "**/node_modules/**" should also match the directory itself
		if ok, _ := doublestar.Match(pattern, path+"/"); ok {
			return true
		}
	}
	return false
}

// analyzeFiles checks files in parallel. Results keep the order of files.
func analyzeFiles(ctx context.Context, config *CheckConfig, files []string) ([]fileResult, error) {
	results := make([]fileResult, len(files))
	opts := config.Options()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(config.Jobs)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			log.Debug("processing file", "path", path)
			content, err := os.ReadFile(path)
			if err != nil {
				results[i] = fileResult{path: path, err: err}
				return nil
			}
			results[i] = analyze(ctx, path, content, opts)
			// a canceled context stops the remaining files
			return ctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func analyze(ctx context.Context, path string, content []byte, opts ordering.Options) fileResult {
	mod, err := javascript.Parse(ctx, path, content)
	if err != nil {
		return fileResult{path: path, err: err}
	}
	violations, err := ordering.Check(mod, opts)
	if err != nil {
		err = wrapPath(path, err)
	}
	return fileResult{path: path, violations: violations, err: err}
}

// wrapPath prefixes err with path, glued to the position when err has one.
func wrapPath(path string, err error) error {
	var kindErr *ordering.UnrecognizedKindError
	if errors.As(err, &kindErr) && kindErr.Node != nil {
		return fmt.Errorf("%s:%w", path, err)
	}
	return fmt.Errorf("%s: %w", path, err)
}

// report prints violations and returns an error when any file has a
// violation or could not be analyzed.
func report(out io.Writer, results []fileResult) error {
	var violations, failures int
	for _, res := range results {
		for _, v := range res.violations {
			fmt.Fprintf(out, "%s:%s\n", res.path, v)
		}
		violations += len(res.violations)
		if res.err != nil {
			log.Error("analysis failed", "path", res.path, "err", res.err)
			failures++
		}
	}
	log.Debug("done", "files", len(results), "violations", violations, "failures", failures)

	switch {
	case failures > 0:
		return fmt.Errorf("%d ordering violations, %d files could not be checked", violations, failures)
	case violations > 0:
		return fmt.Errorf("%d ordering violations", violations)
	}
	return nil
}
