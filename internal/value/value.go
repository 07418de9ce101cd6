package value

import (
	"strings"

	"github.com/bmath-lang/bmath/internal/environment"
	"github.com/bmath-lang/bmath/internal/token"
)

// Expression is the minimal capability value.Closure needs from an AST node:
// its source position. internal/ast.Expression satisfies this by duck
// typing, the same way internal/environment.Value avoids an import cycle
// back from environment to value (see that package's doc comment) — here it
// is value that would otherwise have to import ast, which itself must import
// value for the `Value(Value)` literal expression variant.
type Expression interface {
	Pos() token.Position
}

// Kind tags which branch of the runtime Value union a Value holds.
type Kind int

const (
	KindNumber Kind = iota
	KindBool
	KindString
	KindType
	KindError
	KindVector
	KindSequence
	KindFunction
	KindNativeFunc
)

// Value is BMath's runtime value union. Every concrete kind below
// implements it; callers switch on TypeOf().Kind (or a type switch on the
// concrete Go type) to dispatch.
type Value interface {
	// TypeOf returns this value's Type, used by `is`, casts, and error messages.
	TypeOf() Type
	// String renders the value the way the REPL/print() would.
	String() string
	// Kind returns the union tag, for fast type-switch-free dispatch.
	Kind() Kind
}

// NumberValue wraps a Number.
type NumberValue struct{ N Number }

func (v NumberValue) TypeOf() Type   { return NumberKindAsType(v.N.Kind) }
func (v NumberValue) String() string { return v.N.String() }
func (v NumberValue) Kind() Kind     { return KindNumber }
func Num(n Number) NumberValue       { return NumberValue{N: n} }

// BoolValue wraps a bool.
type BoolValue struct{ B bool }

func (v BoolValue) TypeOf() Type { return Of(BooleanType) }
func (v BoolValue) String() string {
	if v.B {
		return "true"
	}
	return "false"
}
func (v BoolValue) Kind() Kind { return KindBool }
func Bool(b bool) BoolValue    { return BoolValue{B: b} }

// StringValue wraps a string. BMath has no lexical string literal syntax;
// strings are only produced by stdlib functions (e.g. error messages).
type StringValue struct{ S string }

func (v StringValue) TypeOf() Type   { return Of(StringType) }
func (v StringValue) String() string { return v.S }
func (v StringValue) Kind() Kind     { return KindString }
func Str(s string) StringValue       { return StringValue{S: s} }

// TypeValue wraps a Type, letting type literals (e.g. `Integer`, `Number`)
// be first-class callable values used for casts and `is` checks.
type TypeValue struct{ T Type }

func (v TypeValue) TypeOf() Type   { return Of(TypeType) }
func (v TypeValue) String() string { return v.T.String() }
func (v TypeValue) Kind() Kind     { return KindType }
func Typ(t Type) TypeValue         { return TypeValue{T: t} }

// ErrorValue wraps a message string describing a caught runtime error, as
// produced by try_catch's handler argument.
type ErrorValue struct{ Message string }

func (v ErrorValue) TypeOf() Type   { return ErrType(v.Message) }
func (v ErrorValue) String() string { return "Error(" + v.Message + ")" }
func (v ErrorValue) Kind() Kind     { return KindError }
func Err(msg string) ErrorValue     { return ErrorValue{Message: msg} }

// Vector is a heap-allocated, fixed-length, ordered array of Values. It has
// reference semantics: VectorValue wraps a pointer to one, so `set` mutates
// in place and is visible to every binding that shares the same Vector.
type Vector struct {
	Elems []Value
}

// NewVector constructs a Vector from elems (not copied; caller should not
// alias the slice afterward).
func NewVector(elems []Value) *Vector { return &Vector{Elems: elems} }

func (vec *Vector) String() string {
	parts := make([]string, len(vec.Elems))
	for i, e := range vec.Elems {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// VectorValue wraps a *Vector.
type VectorValue struct{ V *Vector }

func (v VectorValue) TypeOf() Type   { return Of(VectorType) }
func (v VectorValue) String() string { return v.V.String() }
func (v VectorValue) Kind() Kind     { return KindVector }
func Vec(v *Vector) VectorValue      { return VectorValue{V: v} }

// Parameter is a single FuncDef parameter: a name and an advisory type
// annotation (defaults to AnyType when unspecified).
type Parameter struct {
	Name string
	Type Type
}

// Closure is a user-defined function value: a body expression, the
// environment captured by reference at definition time, and its parameter
// list. Capture-by-reference is what makes self-recursive bindings and
// mutation-visible-to-closures work (spec.md §4.4's "classical closure
// semantics").
type Closure struct {
	Body       Expression
	Env        *environment.Environment
	Params     []Parameter
	ReturnType Type
}

// FunctionValue wraps a *Closure.
type FunctionValue struct{ Fn *Closure }

func (v FunctionValue) TypeOf() Type { return Of(FunctionType) }
func (v FunctionValue) String() string {
	names := make([]string, len(v.Fn.Params))
	for i, p := range v.Fn.Params {
		names[i] = p.Name
	}
	return "|" + strings.Join(names, ", ") + "| ..."
}
func (v FunctionValue) Kind() Kind { return KindFunction }
func Fn(c *Closure) FunctionValue  { return FunctionValue{Fn: c} }

// Invoker lets a NativeFunc call back into the interpreter to invoke any
// other function value (user-defined or native) recursively — e.g. map's
// native implementation uses it to apply the caller-supplied fn to each
// element.
type Invoker func(fn Value, args []Value) (Value, error)

// NativeFuncValue is a host-implemented callable. Name is used in error
// messages and reserved-name registration.
type NativeFuncValue struct {
	Name string
	Fn   func(args []Value, invoke Invoker) (Value, error)
}

func (v NativeFuncValue) TypeOf() Type   { return Of(FunctionType) }
func (v NativeFuncValue) String() string { return "<native " + v.Name + ">" }
func (v NativeFuncValue) Kind() Kind     { return KindNativeFunc }

func Native(name string, fn func(args []Value, invoke Invoker) (Value, error)) NativeFuncValue {
	return NativeFuncValue{Name: name, Fn: fn}
}
