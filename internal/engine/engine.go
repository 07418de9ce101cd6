// Package engine wires bmlexer, parser, and interp together into the single
// pipeline spec.md §4.6 describes: lex one top-level expression, parse it
// (folding it through the Optimizer as it goes), evaluate it against a
// persistent root environment, yield the result. cmd/bm's script runner and
// REPL driver are both thin callers of Engine.Run.
package engine

import (
	"github.com/bmath-lang/bmath/internal/bmerrors"
	"github.com/bmath-lang/bmath/internal/interp"
	"github.com/bmath-lang/bmath/internal/parser"
)

// Engine holds the state that must survive across calls to Run: the
// interpreter's root environment (so top-level assignments in one REPL line
// are visible to the next) and the configured Optimizer level.
type Engine struct {
	Interp *interp.Interpreter
	Opt    *parser.Optimizer
}

// New creates an Engine with a fresh interpreter and an Optimizer at level.
func New(level parser.Level) *Engine {
	return &Engine{Interp: interp.New(), Opt: parser.NewOptimizer(level)}
}

// Yield is called once per top-level expression Run evaluates. Returning
// false stops Run early, before the next expression is parsed.
type Yield func(interp.LabeledValue, error) bool

// Run lexes and parses source one top-level expression at a time, evaluating
// each against the Engine's root environment and reporting it through yield,
// per spec.md §4.6. It stops at the first error of any kind, having already
// reported every expression before it — a parser does not attempt statement
// recovery past a syntax error, so trying to keep parsing the same source
// after one would risk looping over the same malformed token forever.
//
// In REPL mode (repl=true), an IncompleteInput error — raised when source
// ends mid-expression, e.g. inside an unclosed bracket or an open block — is
// not reported through yield at all; it is returned directly so the REPL
// driver can append another line of input and call Run again over the
// combined source. The driver is expected to recover from any other
// reported error simply by calling Run again on the next line of input;
// script/file mode treats it as fatal and stops the whole run.
func (e *Engine) Run(source string, repl bool, yield Yield) error {
	p, err := parser.New(source, e.Opt)
	if err != nil {
		if repl && bmerrors.Is(err, bmerrors.IncompleteInput) {
			return err
		}
		yield(interp.LabeledValue{}, err)
		return nil
	}

	for {
		expr, err := p.Next()
		if err != nil {
			if repl && bmerrors.Is(err, bmerrors.IncompleteInput) {
				return err
			}
			yield(interp.LabeledValue{}, err)
			return nil
		}
		if expr == nil {
			return nil
		}

		lv, err := e.Interp.Eval(expr, nil)
		if !yield(lv, err) {
			return nil
		}
		if err != nil {
			return nil
		}
	}
}
