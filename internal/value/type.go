package value

// SimpleType enumerates BMath's primitive type tags.
type SimpleType int

const (
	IntegerType SimpleType = iota
	RealType
	ComplexType
	BooleanType
	VectorType
	SequenceType
	FunctionType
	TypeType
	StringType
	ErrorSimpleType
)

var simpleTypeNames = map[SimpleType]string{
	IntegerType:     "Integer",
	RealType:        "Real",
	ComplexType:     "Complex",
	BooleanType:     "Boolean",
	VectorType:      "Vector",
	SequenceType:    "Sequence",
	FunctionType:    "Function",
	TypeType:        "Type",
	StringType:      "String",
	ErrorSimpleType: "Error",
}

func (s SimpleType) String() string {
	if name, ok := simpleTypeNames[s]; ok {
		return name
	}
	return "Unknown"
}

// allSimpleTypes lists every SimpleType, used to build AnyType.
var allSimpleTypes = []SimpleType{
	IntegerType, RealType, ComplexType, BooleanType, VectorType,
	SequenceType, FunctionType, TypeType, StringType, ErrorSimpleType,
}

var numberSimpleTypes = []SimpleType{IntegerType, RealType, ComplexType}

// TypeKind tags which branch of Simple|Sum|Error a Type holds.
type TypeKind int

const (
	SimpleKind TypeKind = iota
	SumKind
	ErrorKind
)

// Type models BMath's type values: a single SimpleType, a Sum (set) of
// SimpleTypes, or an Error(message) carrying a plain string (used as the
// advisory "type" of a raised-and-caught error value).
type Type struct {
	Kind   TypeKind
	Simple SimpleType
	Sum    map[SimpleType]bool
	ErrMsg string
}

// Of constructs a Simple Type.
func Of(s SimpleType) Type { return Type{Kind: SimpleKind, Simple: s} }

// SumOf constructs a Sum Type over the given SimpleTypes.
func SumOf(members ...SimpleType) Type {
	set := make(map[SimpleType]bool, len(members))
	for _, m := range members {
		set[m] = true
	}
	return Type{Kind: SumKind, Sum: set}
}

// ErrType constructs an Error(message) Type.
func ErrType(msg string) Type { return Type{Kind: ErrorKind, ErrMsg: msg} }

// AnyType is the Sum of every SimpleType.
var AnyType = SumOf(allSimpleTypes...)

// NumberType is the Sum of {Integer, Real, Complex}.
var NumberType = SumOf(numberSimpleTypes...)

func (t Type) String() string {
	switch t.Kind {
	case SimpleKind:
		return t.Simple.String()
	case ErrorKind:
		return "Error(" + t.ErrMsg + ")"
	default:
		if len(t.Sum) == len(allSimpleTypes) {
			return "Any"
		}
		if len(t.Sum) == len(numberSimpleTypes) && t.Sum[IntegerType] && t.Sum[RealType] && t.Sum[ComplexType] {
			return "Number"
		}
		names := make([]string, 0, len(t.Sum))
		for _, s := range allSimpleTypes {
			if t.Sum[s] {
				names = append(names, s.String())
			}
		}
		out := "("
		for i, n := range names {
			if i > 0 {
				out += "|"
			}
			out += n
		}
		return out + ")"
	}
}

// has reports whether this Type (Simple or Sum) includes the given SimpleType.
func (t Type) has(s SimpleType) bool {
	switch t.Kind {
	case SimpleKind:
		return t.Simple == s
	case SumKind:
		return t.Sum[s]
	default:
		return false
	}
}

// Identical implements === : exact structural equality between two Type values.
func (t Type) Identical(other Type) bool {
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case SimpleKind:
		return t.Simple == other.Simple
	case ErrorKind:
		return t.ErrMsg == other.ErrMsg
	default:
		if len(t.Sum) != len(other.Sum) {
			return false
		}
		for s := range t.Sum {
			if !other.Sum[s] {
				return false
			}
		}
		return true
	}
}

// IsSubtypeOf implements the subtype-aware == relation used by `expr is T`:
// every SimpleType this Type can denote must be included in other. A Simple
// type is trivially a subtype of any Sum that contains it; the numeric
// hierarchy Integer≤Real≤Complex is handled at the Value level (a concrete
// Integer value "is Real"), not here — this method compares Type-to-Type.
func (t Type) IsSubtypeOf(other Type) bool {
	switch t.Kind {
	case SimpleKind:
		return other.has(t.Simple)
	case SumKind:
		for s := range t.Sum {
			if !other.has(s) {
				return false
			}
		}
		return true
	default:
		return other.Kind == ErrorKind && t.ErrMsg == other.ErrMsg
	}
}

// NumberKindAsType maps a concrete Number's tag to its Simple Type, used to
// test `x is Real` etc. against a runtime Number value: the numeric
// hierarchy Integer≤Real≤Complex means an Integer value also "is" Real and
// "is" Complex, and a Real value also "is" Complex.
func NumberKindAsType(k NumberKind) Type {
	switch k {
	case IntegerKind:
		return Of(IntegerType)
	case RealKind:
		return Of(RealType)
	default:
		return Of(ComplexType)
	}
}

// NumberFitsType reports whether a Number of kind k satisfies `is target`,
// honoring the Integer≤Real≤Complex hierarchy: an Integer "is" Real and
// Complex; a Real "is" Complex, but not vice versa.
func NumberFitsType(k NumberKind, target Type) bool {
	switch target.Kind {
	case SimpleKind:
		return numberKindFitsSimple(k, target.Simple)
	case SumKind:
		for s := range target.Sum {
			if numberKindFitsSimple(k, s) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func numberKindFitsSimple(k NumberKind, s SimpleType) bool {
	switch s {
	case IntegerType:
		return k == IntegerKind
	case RealType:
		return k == IntegerKind || k == RealKind
	case ComplexType:
		return true // Integer and Real are both ≤ Complex
	default:
		return false
	}
}
