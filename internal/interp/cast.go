package interp

import (
	"github.com/bmath-lang/bmath/internal/bmerrors"
	"github.com/bmath-lang/bmath/internal/token"
	"github.com/bmath-lang/bmath/internal/value"
)

// castTo implements the callable-Type cast dispatch table from spec.md
// §4.4.2: calling a Type value with one argument converts it.
func castTo(target value.Type, arg value.Value, pos token.Position) (value.Value, error) {
	if target.Kind != value.SimpleKind {
		return nil, bmerrors.Newf(bmerrors.InvalidArgument, pos, "%s is not a castable type", target)
	}
	switch target.Simple {
	case value.RealType:
		return castReal(arg, pos)
	case value.IntegerType:
		return castInteger(arg, pos)
	case value.ComplexType:
		return castComplex(arg, pos)
	case value.SequenceType:
		return castSequence(arg, pos)
	case value.VectorType:
		return castVector(arg, pos)
	case value.BooleanType:
		return castIdentity(arg, value.KindBool, pos, "Boolean")
	case value.FunctionType:
		return castFunction(arg, pos)
	case value.TypeType:
		return value.Typ(arg.TypeOf()), nil
	default:
		return nil, bmerrors.Newf(bmerrors.InvalidArgument, pos, "cannot cast to %s", target)
	}
}

func castReal(arg value.Value, pos token.Position) (value.Value, error) {
	n, ok := arg.(value.NumberValue)
	if !ok {
		return nil, bmerrors.Newf(bmerrors.InvalidArgument, pos, "cannot cast %s to Real", arg.TypeOf())
	}
	switch n.N.Kind {
	case value.IntegerKind:
		return value.Num(value.Real(float64(n.N.I))), nil
	case value.RealKind:
		return n, nil
	default:
		if n.N.Im == 0 {
			return value.Num(value.Real(n.N.Re)), nil
		}
		return nil, bmerrors.New(bmerrors.InvalidArgument, "cannot cast a Complex with nonzero imaginary part to Real", pos)
	}
}

func castInteger(arg value.Value, pos token.Position) (value.Value, error) {
	n, ok := arg.(value.NumberValue)
	if !ok {
		return nil, bmerrors.Newf(bmerrors.InvalidArgument, pos, "cannot cast %s to Integer", arg.TypeOf())
	}
	switch n.N.Kind {
	case value.IntegerKind:
		return n, nil
	case value.RealKind:
		return value.Num(value.Int(int64(n.N.R))), nil
	default:
		if n.N.Im == 0 {
			return value.Num(value.Int(int64(n.N.Re))), nil
		}
		return nil, bmerrors.New(bmerrors.InvalidArgument, "cannot cast a Complex with nonzero imaginary part to Integer", pos)
	}
}

func castComplex(arg value.Value, pos token.Position) (value.Value, error) {
	n, ok := arg.(value.NumberValue)
	if !ok {
		return nil, bmerrors.Newf(bmerrors.InvalidArgument, pos, "cannot cast %s to Complex", arg.TypeOf())
	}
	re, im := n.N.AsComplexPair()
	return value.Num(value.Cplx(re, im)), nil
}

func castSequence(arg value.Value, pos token.Position) (value.Value, error) {
	switch v := arg.(type) {
	case value.VectorValue:
		return value.Seq(value.NewSequence(value.NewVectorGenerator(v.V.Elems))), nil
	case value.SequenceValue:
		return v, nil
	default:
		return nil, bmerrors.Newf(bmerrors.InvalidArgument, pos, "cannot cast %s to Sequence", arg.TypeOf())
	}
}

func castVector(arg value.Value, pos token.Position) (value.Value, error) {
	sv, ok := arg.(value.SequenceValue)
	if !ok {
		return nil, bmerrors.Newf(bmerrors.InvalidArgument, pos, "cannot cast %s to Vector", arg.TypeOf())
	}
	var elems []value.Value
	for !sv.Seq.AtEnd() {
		v, err := sv.Seq.Next()
		if err != nil {
			if err == value.ErrSequenceExhausted {
				break
			}
			return nil, bmerrors.New(bmerrors.InvalidArgument, err.Error(), pos)
		}
		elems = append(elems, v)
	}
	return value.Vec(value.NewVector(elems)), nil
}

func castFunction(arg value.Value, pos token.Position) (value.Value, error) {
	switch arg.(type) {
	case value.FunctionValue, value.NativeFuncValue:
		return arg, nil
	default:
		return nil, bmerrors.Newf(bmerrors.InvalidArgument, pos, "cannot cast %s to Function", arg.TypeOf())
	}
}

func castIdentity(arg value.Value, kind value.Kind, pos token.Position, name string) (value.Value, error) {
	if arg.Kind() != kind {
		return nil, bmerrors.Newf(bmerrors.InvalidArgument, pos, "cannot cast %s to %s", arg.TypeOf(), name)
	}
	return arg, nil
}
