package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmath-lang/bmath/internal/engine"
	"github.com/bmath-lang/bmath/internal/interp"
	"github.com/bmath-lang/bmath/internal/parser"
	"github.com/chzyer/readline"
)

const (
	promptReady = "bm> "
	promptMore  = "... "
)

// runRepl drives an interactive read-eval-print loop over stdin/stdout
// using chzyer/readline for line editing and history, per spec.md §6.
// Pending lines accumulate in buf until they parse as a complete top-level
// expression run (IncompleteInput propagated unwrapped, per spec.md §4.6);
// any other error is reported and recovered from, leaving the REPL ready
// for the next line.
func runRepl(level parser.Level) error {
	historyFile := historyFilePath()
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          promptReady,
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to start REPL: %w", err)
	}
	defer rl.Close()

	eng := engine.New(level)
	var buf strings.Builder

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if buf.Len() == 0 {
				continue
			}
			buf.Reset()
			rl.SetPrompt(promptReady)
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(line)
		source := buf.String()

		runErr := eng.Run(source, true, func(lv interp.LabeledValue, evalErr error) bool {
			if evalErr != nil {
				reportError(source, evalErr)
				return true
			}
			printValue(os.Stdout, lv.Label, lv.Value.String())
			return true
		})

		if runErr != nil {
			// IncompleteInput: keep buf around and switch to the
			// continuation prompt.
			rl.SetPrompt(promptMore)
			continue
		}
		buf.Reset()
		rl.SetPrompt(promptReady)
	}
}

func historyFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bmath_history")
}
