package cmd

import (
	"fmt"
	"os"

	"github.com/bmath-lang/bmath/internal/bmerrors"
	"github.com/bmath-lang/bmath/internal/engine"
	"github.com/bmath-lang/bmath/internal/interp"
	"github.com/bmath-lang/bmath/internal/parser"
)

// runFile evaluates an entire script file, stopping at its first error
// (script mode is not REPL-recovered, per spec.md §4.6).
func runFile(level parser.Level, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return runSource(level, string(content))
}

// runInline evaluates a single command-line expression argument the same
// way a script file is evaluated.
func runInline(level parser.Level, expr string) error {
	return runSource(level, expr)
}

func runSource(level parser.Level, source string) error {
	eng := engine.New(level)
	failed := false
	_ = eng.Run(source, false, func(lv interp.LabeledValue, err error) bool {
		if err != nil {
			reportError(source, err)
			failed = true
			return false
		}
		printValue(os.Stdout, lv.Label, lv.Value.String())
		return true
	})
	if failed {
		os.Exit(1)
	}
	return nil
}

func reportError(source string, err error) {
	if be, ok := err.(*bmerrors.Error); ok {
		fmt.Fprintln(os.Stderr, be.FormatWithSource(source, true))
		return
	}
	fmt.Fprintln(os.Stderr, err)
}
