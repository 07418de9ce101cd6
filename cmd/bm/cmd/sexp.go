package cmd

import (
	"fmt"
	"os"

	"github.com/bmath-lang/bmath/internal/printer"
)

// runSexp implements --sexp: print path's AST as S-expressions.
func runSexp(path string, compact bool) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}

	out, err := printer.Sexp(string(content), compact)
	if err != nil {
		reportError(string(content), err)
		os.Exit(1)
	}

	fmt.Println(out)
	return nil
}
