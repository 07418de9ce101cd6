package cmd

import (
	"fmt"
	"os"

	"github.com/bmath-lang/bmath/internal/printer"
)

// runFormat implements --format: pretty-print path's source and write it to
// outPath (stdout if empty).
func runFormat(path, outPath string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}

	level, err := optimizerLevel()
	if err != nil {
		return err
	}

	formatted, err := printer.Format(string(content), level)
	if err != nil {
		reportError(string(content), err)
		os.Exit(1)
	}

	if outPath == "" {
		fmt.Println(formatted)
		return nil
	}
	if err := os.WriteFile(outPath, []byte(formatted+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return nil
}
