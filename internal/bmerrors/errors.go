// Package bmerrors defines BMath's typed error taxonomy and the positional
// stack trace every error carries, grounded on the teacher's two-layer
// error design: a category-tagged interpreter error
// (internal/interp/errors/errors.go) plus a caret-diagram source formatter
// (internal/errors/errors.go).
package bmerrors

import (
	"fmt"
	"strings"

	"github.com/bmath-lang/bmath/internal/token"
)

// Category groups related Kinds for coarse-grained handling (e.g. try_catch
// matching "any TypeError").
type Category int

const (
	CategoryParse Category = iota
	CategoryArithmetic
	CategoryType
	CategoryEnvironment
	CategoryComplex
)

func (c Category) String() string {
	switch c {
	case CategoryParse:
		return "ParseError"
	case CategoryArithmetic:
		return "ArithmeticError"
	case CategoryType:
		return "TypeError"
	case CategoryEnvironment:
		return "EnvironmentError"
	case CategoryComplex:
		return "ComplexError"
	}
	return "Error"
}

// Kind is a specific error condition within a Category. Names mirror the
// taxonomy in spec.md §7 exactly.
type Kind int

const (
	// Parser kinds
	IncompleteInput Kind = iota
	UnexpectedToken
	MissingToken
	InvalidExpression
	InvalidNumberFormat
	UnexpectedCharacter

	// Runtime kinds
	ZeroDivision
	UnsupportedType
	InvalidArgument
	SequenceExhausted
	UndefinedVariable
	ReservedName
	ComplexModulus
	ComplexComparison
	ComplexCeilFloorRound
)

var kindInfo = map[Kind]struct {
	name     string
	category Category
}{
	IncompleteInput:       {"IncompleteInput", CategoryParse},
	UnexpectedToken:       {"UnexpectedToken", CategoryParse},
	MissingToken:          {"MissingToken", CategoryParse},
	InvalidExpression:     {"InvalidExpression", CategoryParse},
	InvalidNumberFormat:   {"InvalidNumberFormat", CategoryParse},
	UnexpectedCharacter:   {"UnexpectedCharacter", CategoryParse},
	ZeroDivision:          {"ZeroDivision", CategoryArithmetic},
	UnsupportedType:       {"UnsupportedType", CategoryType},
	InvalidArgument:       {"InvalidArgument", CategoryType},
	SequenceExhausted:     {"SequenceExhausted", CategoryType},
	UndefinedVariable:     {"UndefinedVariable", CategoryEnvironment},
	ReservedName:          {"ReservedName", CategoryEnvironment},
	ComplexModulus:        {"ComplexModulus", CategoryComplex},
	ComplexComparison:     {"ComplexComparison", CategoryComplex},
	ComplexCeilFloorRound: {"ComplexCeilFloorRound", CategoryComplex},
}

func (k Kind) String() string {
	if info, ok := kindInfo[k]; ok {
		return info.name
	}
	return "UnknownError"
}

// Category returns the Category a Kind belongs to.
func (k Kind) Category() Category {
	if info, ok := kindInfo[k]; ok {
		return info.category
	}
	return CategoryType
}

// Error is a BMath error: a typed Kind, a human message, and an ordered
// Stack of positions. The interpreter pushes the current expression's
// position onto Stack on every unwind (see interp.Interpreter.evalExpr),
// so Stack reads innermost-first and grows outward — the same convention
// as the teacher's StackTrace, just inlined onto the error instead of kept
// as a side-channel call stack.
type Error struct {
	Kind    Kind
	Message string
	Stack   []token.Position
}

// New creates an Error at the given position; Stack starts with just that
// position, the innermost frame.
func New(kind Kind, message string, pos token.Position) *Error {
	return &Error{Kind: kind, Message: message, Stack: []token.Position{pos}}
}

// Newf is New with fmt.Sprintf-style formatting.
func Newf(kind Kind, pos token.Position, format string, args ...any) *Error {
	return New(kind, fmt.Sprintf(format, args...), pos)
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Push appends pos to the stack; called by the interpreter as an error
// unwinds through each enclosing expression.
func (e *Error) Push(pos token.Position) {
	e.Stack = append(e.Stack, pos)
}

// Is reports whether err is a BMath error of exactly the given Kind.
func Is(err error, kind Kind) bool {
	be, ok := err.(*Error)
	return ok && be.Kind == kind
}

// IsCategory reports whether err is a BMath error belonging to the given Category.
func IsCategory(err error, cat Category) bool {
	be, ok := err.(*Error)
	return ok && be.Kind.Category() == cat
}

// Format renders the error with its "[Kind] message" header followed by the
// position stack, outermost call last — innermost position first, each on
// its own line, following the teacher's StackTrace.String() convention
// (internal/errors/stack_trace.go) but printed top-to-bottom instead of
// reversed, since innermost-first is what spec.md §7 asks for ("the
// interpreter appends the current expression's position on every unwind,
// giving an innermost-first trace").
func (e *Error) Format() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("[%s] %s", e.Kind, e.Message))
	for _, pos := range e.Stack {
		sb.WriteString(fmt.Sprintf("\n  at %s", pos))
	}
	return sb.String()
}

// colorRed/colorReset wrap the caret line when color is requested, matching
// the teacher's CompilerError.Format ANSI toggle.
const (
	colorRed   = "\x1b[31m"
	colorReset = "\x1b[0m"
)

// FormatWithSource renders the error like Format, but additionally shows the
// offending source line with a caret under the innermost position, in the
// style of the teacher's CompilerError.Format (internal/errors/errors.go).
// When color is true the header and caret are wrapped in ANSI red, as the
// teacher's formatter does for terminal output.
func (e *Error) FormatWithSource(source string, color bool) string {
	header := fmt.Sprintf("[%s] %s", e.Kind, e.Message)
	if color {
		header = colorRed + header + colorReset
	}
	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString("\n")

	if len(e.Stack) > 0 {
		pos := e.Stack[0]
		if line := sourceLine(source, pos.Line); line != "" {
			lineNumStr := fmt.Sprintf("%4d | ", pos.Line)
			sb.WriteString(lineNumStr)
			sb.WriteString(line)
			sb.WriteString("\n")
			caret := strings.Repeat(" ", len(lineNumStr)+pos.Column-1) + "^"
			if color {
				caret = colorRed + caret + colorReset
			}
			sb.WriteString(caret)
			sb.WriteString("\n")
		}
	}

	for _, pos := range e.Stack {
		sb.WriteString(fmt.Sprintf("  at %s\n", pos))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func sourceLine(source string, lineNum int) string {
	if source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}
