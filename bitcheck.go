package bitcheck

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"github.com/alexhholmes/bitcheck/internal/analyzer"
	"github.com/alexhholmes/bitcheck/internal/codegen"
	"github.com/alexhholmes/bitcheck/internal/parser"
)

// DefaultConcurrency bounds how many files are validated in parallel.
const DefaultConcurrency = 8

// Options configure a validation run.
type Options struct {
	// Strategy selects the gate backend: "capability" (default) or "index".
	// A record's own strategy= annotation overrides it.
	Strategy string

	// WriteGuards emits a <file>_bitcheck.go guard next to every source file
	// that defines records, so `go build` re-asserts alignment on its own.
	WriteGuards bool

	// Concurrency bounds the file pool; <= 0 means DefaultConcurrency.
	Concurrency int
}

// Outcome is the terminal verdict for one record definition: either accepted,
// with no further artifact, or rejected with a diagnostic.
type Outcome struct {
	File       string
	Record     string
	Total      uint
	Residue    uint
	Accepted   bool
	Diagnostic string
}

// Report aggregates the outcomes of one validation run.
type Report struct {
	Outcomes []Outcome
}

// Rejected counts the records that failed validation.
func (r *Report) Rejected() int {
	n := 0
	for _, o := range r.Outcomes {
		if !o.Accepted {
			n++
		}
	}
	return n
}

// Failed reports whether any record was rejected. A failed report must abort
// the surrounding build.
func (r *Report) Failed() bool {
	return r.Rejected() > 0
}

// CheckFile validates every annotated record in one Go source file.
// Records are independent: one rejection does not stop the others.
func CheckFile(path string, opts Options) ([]Outcome, error) {
	strategy, err := analyzer.ParseStrategy(opts.Strategy)
	if err != nil {
		return nil, err
	}

	records, err := parser.ParseFile(path)
	if err != nil {
		return nil, err
	}

	outcomes := make([]Outcome, 0, len(records))
	for _, rec := range records {
		res := analyzer.Analyze(rec, strategy)
		out := Outcome{
			File:       path,
			Record:     res.Record,
			Total:      res.Total,
			Residue:    res.Residue,
			Accepted:   res.Accepted,
			Diagnostic: res.Diagnostic,
		}
		Logger().Debug("validated record",
			zap.String("file", out.File),
			zap.String("record", out.Record),
			zap.Uint("total", out.Total),
			zap.Uint("residue", out.Residue),
			zap.Bool("accepted", out.Accepted))
		outcomes = append(outcomes, out)
	}

	if opts.WriteGuards && len(records) > 0 {
		if err := writeGuards(path, records); err != nil {
			return nil, err
		}
	}

	return outcomes, nil
}

// Check validates every annotated record reachable from paths, which may name
// files or directories. Validations share no state, so files run through a
// bounded pool; results are reported sorted by file, declaration order within
// each file.
func Check(paths []string, opts Options) (*Report, error) {
	files, err := expandPaths(paths)
	if err != nil {
		return nil, err
	}

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	var mu sync.Mutex
	var outcomes []Outcome

	p := pool.New().WithMaxGoroutines(concurrency).WithErrors()
	for _, file := range files {
		file := file // per-iteration copy; go directive predates Go 1.22 loop-var semantics
		p.Go(func() error {
			outs, err := CheckFile(file, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			mu.Lock()
			outcomes = append(outcomes, outs...)
			mu.Unlock()
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(outcomes, func(i, j int) bool {
		return outcomes[i].File < outcomes[j].File
	})

	return &Report{Outcomes: outcomes}, nil
}

func writeGuards(path string, records []*parser.Record) error {
	pkg, err := parser.PackageName(path)
	if err != nil {
		return err
	}

	src, err := codegen.GenerateGuards(pkg, records)
	if err != nil {
		return err
	}
	if src == nil {
		return nil // nothing survived extraction, no guard to write
	}

	guard := codegen.GuardPath(path)
	if err := os.WriteFile(guard, src, 0o644); err != nil {
		return fmt.Errorf("write guard: %w", err)
	}
	Logger().Debug("wrote guard file", zap.String("path", guard))
	return nil
}

// expandPaths resolves files and directories into a sorted list of Go source
// files, skipping generated guards, hidden and underscore directories, and
// testdata fixtures.
func expandPaths(paths []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			if !strings.HasSuffix(path, ".go") {
				return nil, fmt.Errorf("not a Go source file: %s", path)
			}
			add(path)
			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				name := d.Name()
				if p != path && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == "testdata") {
					return filepath.SkipDir
				}
				return nil
			}
			if !strings.HasSuffix(p, ".go") || codegen.IsGuardPath(p) {
				return nil
			}
			add(p)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}
