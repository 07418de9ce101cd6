package stdlib

import (
	"math"

	"github.com/bmath-lang/bmath/internal/bmerrors"
	"github.com/bmath-lang/bmath/internal/environment"
	"github.com/bmath-lang/bmath/internal/value"
)

// unaryNum adapts a pure Number->Number math.go function into a
// NativeFuncValue.Fn, handling arity/type checking and error wrapping.
func unaryNum(name string, fn func(value.Number) (value.Number, error)) func([]value.Value, value.Invoker) (value.Value, error) {
	return func(args []value.Value, _ value.Invoker) (value.Value, error) {
		if len(args) != 1 {
			return nil, bmerrors.Newf(bmerrors.InvalidArgument, zeroPos, "%s expects 1 argument, got %d", name, len(args))
		}
		n, ok := args[0].(value.NumberValue)
		if !ok {
			return nil, bmerrors.Newf(bmerrors.UnsupportedType, zeroPos, "%s requires a Number argument, got %s", name, args[0].TypeOf())
		}
		r, err := fn(n.N)
		if err != nil {
			return nil, wrapErr(err, zeroPos)
		}
		return value.Num(r), nil
	}
}

func powFn(args []value.Value, _ value.Invoker) (value.Value, error) {
	if len(args) != 2 {
		return nil, bmerrors.Newf(bmerrors.InvalidArgument, zeroPos, "pow expects 2 arguments, got %d", len(args))
	}
	return Pow(args[0], args[1], zeroPos)
}

func logFn(args []value.Value, _ value.Invoker) (value.Value, error) {
	if len(args) != 1 && len(args) != 2 {
		return nil, bmerrors.Newf(bmerrors.InvalidArgument, zeroPos, "log expects 1 or 2 arguments, got %d", len(args))
	}
	x, ok := args[0].(value.NumberValue)
	if !ok {
		return nil, bmerrors.New(bmerrors.UnsupportedType, "log requires a Number argument", zeroPos)
	}
	base := value.Real(math.E)
	if len(args) == 2 {
		bn, ok := args[1].(value.NumberValue)
		if !ok {
			return nil, bmerrors.New(bmerrors.UnsupportedType, "log's base must be a Number", zeroPos)
		}
		base = bn.N
	}
	r, err := logNum(x.N, base)
	if err != nil {
		return nil, wrapErr(err, zeroPos)
	}
	return value.Num(r), nil
}

// Register binds every stdlib function and constant into root, marking each
// name reserved so it cannot be reassigned from BMath source (spec.md §4.5's
// closing note on protected globals).
func Register(root *environment.Environment) {
	natives := map[string]func([]value.Value, value.Invoker) (value.Value, error){
		"sqrt":  unaryNum("sqrt", sqrtNum),
		"abs":   unaryNum("abs", absNum),
		"floor": unaryNum("floor", floorNum),
		"ceil":  unaryNum("ceil", ceilNum),
		"round": unaryNum("round", roundNum),
		"exp":   unaryNum("exp", expNum),
		"re":    unaryNum("re", reNum),
		"im":    unaryNum("im", imNum),
		"sin":   unaryNum("sin", sinNum),
		"cos":   unaryNum("cos", cosNum),
		"tan":   unaryNum("tan", tanNum),
		"cot":   unaryNum("cot", cotNum),
		"sec":   unaryNum("sec", secNum),
		"csc":   unaryNum("csc", cscNum),
		"pow":   powFn,
		"log":   logFn,

		"vec":     vecFn,
		"dot":     dotFn,
		"first":   firstFn,
		"last":    lastFn,
		"len":     lenFn,
		"nth":     nthFn,
		"at":      nthFn,
		"merge":   mergeFn,
		"slice":   sliceFn,
		"set":     setFn,

		"seq":      seqFn,
		"collect":  collectFn,
		"skip":     skipFn,
		"take":     takeFn,
		"hasNext":  hasNextFn,
		"next":     nextFn,
		"map":      mapFn,
		"filter":   filterFn,
		"reduce":   reduceFn,
		"sum":      sumFn,
		"any":      anyFn,
		"all":      allFn,
		"zip":      zipFn,
		"min":      minFn,
		"max":      maxFn,

		"exit":      exitFn,
		"try_or":    tryOrFn,
		"try_catch": tryCatchFn,
		"print":     printFn,
	}

	for name, fn := range natives {
		root.Define(name, value.Native(name, fn))
		root.MarkReserved(name)
	}

	constants := map[string]value.Value{
		"pi": value.Num(value.Real(math.Pi)),
		"e":  value.Num(value.Real(math.E)),
		"i":  value.Num(value.Cplx(0, 1)),
	}
	for name, v := range constants {
		root.Define(name, v)
		root.MarkReserved(name)
	}
}
