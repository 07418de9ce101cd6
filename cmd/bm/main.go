// Command bm is BMath's command-line surface: a REPL, single-expression
// evaluator, script runner, and two debugging collaborators (--format,
// --sexp), all thin wrappers around internal/engine and internal/printer.
package main

import (
	"fmt"
	"os"

	"github.com/bmath-lang/bmath/cmd/bm/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
