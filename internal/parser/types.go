package parser

import "github.com/bmath-lang/bmath/internal/value"

// typeNames resolves a bare identifier to a static Type value when it names
// one of BMath's built-in types. Recognized at both prefix-expression
// position (producing a `Value(Type)` literal — spec.md §4.2's "type
// literal" prefix parser) and wherever a parameter/assignment type
// annotation is expected after `:`. Keeping this as a parser-level table
// rather than routing through the environment means type names are type
// literals syntactically, not just conventionally-reserved identifiers: an
// expression like `Integer = 5` fails to parse (InvalidExpression) rather
// than failing at runtime with ReservedName, since the left-hand side of
// `=` is never an Ident in that case.
var typeNames = map[string]value.Type{
	"Integer":  value.Of(value.IntegerType),
	"Real":     value.Of(value.RealType),
	"Complex":  value.Of(value.ComplexType),
	"Boolean":  value.Of(value.BooleanType),
	"Vector":   value.Of(value.VectorType),
	"Sequence": value.Of(value.SequenceType),
	"Function": value.Of(value.FunctionType),
	"Type":     value.Of(value.TypeType),
	"String":   value.Of(value.StringType),
	"Error":    value.Of(value.ErrorSimpleType),
	"Number":   value.NumberType,
	"Any":      value.AnyType,
}
