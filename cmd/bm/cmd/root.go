// Package cmd implements bm's cobra command tree: one root command whose
// flags select among REPL, inline-expression, file, --format, and --sexp
// modes, following the teacher's cmd/dwscript/cmd package split (root.go
// wires the command and global flags; each mode gets its own file).
package cmd

import (
	"fmt"

	"github.com/bmath-lang/bmath/internal/parser"
	"github.com/spf13/cobra"
)

var (
	filePath      string
	interactive   bool
	optLevelFlag  string
	formatPath    string
	formatOutPath string
	sexpPath      string
	sexpCompact   bool
)

var rootCmd = &cobra.Command{
	Use:   "bm [expr]",
	Short: "BMath: an expression-oriented language for interactive numeric computation",
	Long: `bm evaluates BMath source: a small expression language with a lexer,
Pratt parser, tree-walking interpreter, and a standard library of
arithmetic, trigonometric, vector, sequence, and higher-order functions.

With no arguments and no flags, bm starts an interactive REPL. Given a
positional argument, it evaluates that string as a sequence of top-level
BMath expressions and prints each result.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runRoot,
}

func init() {
	rootCmd.Flags().StringVarP(&filePath, "file", "f", "", "evaluate a BMath script file")
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "force the interactive REPL")
	rootCmd.Flags().StringVarP(&optLevelFlag, "optimize", "O", "full", "optimizer level: none|basic|full")
	rootCmd.Flags().StringVar(&formatPath, "format", "", "pretty-print a BMath source file and exit")
	rootCmd.Flags().StringVarP(&formatOutPath, "output", "o", "", "output path for --format (default: stdout)")
	rootCmd.Flags().StringVar(&sexpPath, "sexp", "", "print a BMath file's AST as S-expressions and exit")
	rootCmd.Flags().BoolVar(&sexpCompact, "compact", false, "render --sexp output on a single line per expression")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func optimizerLevel() (parser.Level, error) {
	level, ok := parser.ParseLevel(optLevelFlag)
	if !ok {
		return parser.LevelNone, fmt.Errorf("invalid -O value %q: want none, basic, or full", optLevelFlag)
	}
	return level, nil
}
