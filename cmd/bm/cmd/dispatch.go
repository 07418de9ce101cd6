package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func runRoot(c *cobra.Command, args []string) error {
	if formatPath != "" {
		return runFormat(formatPath, formatOutPath)
	}
	if sexpPath != "" {
		return runSexp(sexpPath, sexpCompact)
	}

	level, err := optimizerLevel()
	if err != nil {
		return err
	}

	switch {
	case interactive:
		return runRepl(level)
	case filePath != "":
		return runFile(level, filePath)
	case len(args) == 1:
		return runInline(level, args[0])
	default:
		return runRepl(level)
	}
}

// printValue renders one top-level evaluation result the way the REPL and
// script runner both report it: "name = value" for a top-level assignment,
// bare "value" otherwise.
func printValue(w *os.File, label, rendered string) {
	if label != "" {
		fmt.Fprintf(w, "%s = %s\n", label, rendered)
	} else {
		fmt.Fprintln(w, rendered)
	}
}
