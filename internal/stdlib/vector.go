package stdlib

import (
	"github.com/bmath-lang/bmath/internal/bmerrors"
	"github.com/bmath-lang/bmath/internal/value"
)

func asInt(v value.Value) (int64, bool) {
	n, ok := v.(value.NumberValue)
	if !ok || n.N.Kind != value.IntegerKind {
		return 0, false
	}
	return n.N.I, true
}

func isCallable(v value.Value) bool {
	switch v.(type) {
	case value.FunctionValue, value.NativeFuncValue:
		return true
	default:
		return false
	}
}

// vecFn builds a Vector of length n: if x_or_fn is callable, element i is
// x_or_fn(i); otherwise the vector is n copies of x_or_fn (spec.md §4.5).
func vecFn(args []value.Value, invoke value.Invoker) (value.Value, error) {
	if len(args) != 2 {
		return nil, bmerrors.Newf(bmerrors.InvalidArgument, zeroPos, "vec expects 2 arguments, got %d", len(args))
	}
	n, ok := asInt(args[0])
	if !ok || n < 0 {
		return nil, bmerrors.New(bmerrors.InvalidArgument, "vec's first argument must be a non-negative Integer", zeroPos)
	}
	out := make([]value.Value, n)
	if isCallable(args[1]) {
		for i := int64(0); i < n; i++ {
			v, err := invoke(args[1], []value.Value{value.Num(value.Int(i))})
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
	} else {
		for i := range out {
			out[i] = args[1]
		}
	}
	return value.Vec(value.NewVector(out)), nil
}

func dotFn(args []value.Value, _ value.Invoker) (value.Value, error) {
	if len(args) != 2 {
		return nil, bmerrors.Newf(bmerrors.InvalidArgument, zeroPos, "dot expects 2 arguments, got %d", len(args))
	}
	u, ok1 := args[0].(value.VectorValue)
	v, ok2 := args[1].(value.VectorValue)
	if !ok1 || !ok2 {
		return nil, bmerrors.New(bmerrors.UnsupportedType, "dot requires two Vector arguments", zeroPos)
	}
	return dot(u.V, v.V, zeroPos)
}

func asVector(name string, args []value.Value, n int) ([]value.Value, error) {
	if len(args) != n {
		return nil, bmerrors.Newf(bmerrors.InvalidArgument, zeroPos, "%s expects %d argument(s), got %d", name, n, len(args))
	}
	return args, nil
}

func firstFn(args []value.Value, _ value.Invoker) (value.Value, error) {
	if _, err := asVector("first", args, 1); err != nil {
		return nil, err
	}
	v, ok := args[0].(value.VectorValue)
	if !ok {
		return nil, bmerrors.New(bmerrors.UnsupportedType, "first requires a Vector argument", zeroPos)
	}
	if len(v.V.Elems) == 0 {
		return nil, bmerrors.New(bmerrors.InvalidArgument, "first: vector is empty", zeroPos)
	}
	return v.V.Elems[0], nil
}

func lastFn(args []value.Value, _ value.Invoker) (value.Value, error) {
	if _, err := asVector("last", args, 1); err != nil {
		return nil, err
	}
	v, ok := args[0].(value.VectorValue)
	if !ok {
		return nil, bmerrors.New(bmerrors.UnsupportedType, "last requires a Vector argument", zeroPos)
	}
	if len(v.V.Elems) == 0 {
		return nil, bmerrors.New(bmerrors.InvalidArgument, "last: vector is empty", zeroPos)
	}
	return v.V.Elems[len(v.V.Elems)-1], nil
}

func lenFn(args []value.Value, _ value.Invoker) (value.Value, error) {
	if _, err := asVector("len", args, 1); err != nil {
		return nil, err
	}
	v, ok := args[0].(value.VectorValue)
	if !ok {
		return nil, bmerrors.New(bmerrors.UnsupportedType, "len requires a Vector argument", zeroPos)
	}
	return value.Num(value.Int(int64(len(v.V.Elems)))), nil
}

func nthFn(args []value.Value, _ value.Invoker) (value.Value, error) {
	if _, err := asVector("nth", args, 2); err != nil {
		return nil, err
	}
	v, ok := args[0].(value.VectorValue)
	if !ok {
		return nil, bmerrors.New(bmerrors.UnsupportedType, "nth requires a Vector argument", zeroPos)
	}
	i, ok := asInt(args[1])
	if !ok || i < 0 || i >= int64(len(v.V.Elems)) {
		return nil, bmerrors.New(bmerrors.InvalidArgument, "nth: index out of range", zeroPos)
	}
	return v.V.Elems[i], nil
}

func mergeFn(args []value.Value, _ value.Invoker) (value.Value, error) {
	if _, err := asVector("merge", args, 2); err != nil {
		return nil, err
	}
	u, ok1 := args[0].(value.VectorValue)
	w, ok2 := args[1].(value.VectorValue)
	if !ok1 || !ok2 {
		return nil, bmerrors.New(bmerrors.UnsupportedType, "merge requires two Vector arguments", zeroPos)
	}
	out := make([]value.Value, 0, len(u.V.Elems)+len(w.V.Elems))
	out = append(out, u.V.Elems...)
	out = append(out, w.V.Elems...)
	return value.Vec(value.NewVector(out)), nil
}

// sliceFn implements slice(v, end) and slice(v, start, end), end exclusive.
func sliceFn(args []value.Value, _ value.Invoker) (value.Value, error) {
	if len(args) != 2 && len(args) != 3 {
		return nil, bmerrors.Newf(bmerrors.InvalidArgument, zeroPos, "slice expects 2 or 3 arguments, got %d", len(args))
	}
	v, ok := args[0].(value.VectorValue)
	if !ok {
		return nil, bmerrors.New(bmerrors.UnsupportedType, "slice requires a Vector argument", zeroPos)
	}
	var start, end int64
	if len(args) == 2 {
		var ok bool
		end, ok = asInt(args[1])
		if !ok {
			return nil, bmerrors.New(bmerrors.InvalidArgument, "slice's end index must be an Integer", zeroPos)
		}
	} else {
		var ok1, ok2 bool
		start, ok1 = asInt(args[1])
		end, ok2 = asInt(args[2])
		if !ok1 || !ok2 {
			return nil, bmerrors.New(bmerrors.InvalidArgument, "slice's indices must be Integers", zeroPos)
		}
	}
	n := int64(len(v.V.Elems))
	if start < 0 || end < start || end > n {
		return nil, bmerrors.New(bmerrors.InvalidArgument, "slice: index out of range", zeroPos)
	}
	out := make([]value.Value, end-start)
	copy(out, v.V.Elems[start:end])
	return value.Vec(value.NewVector(out)), nil
}

// setFn mutates v[i] = x in place and returns the previous element, per
// spec.md §4.5's "set(v, i, x) mutates and returns the previous element".
func setFn(args []value.Value, _ value.Invoker) (value.Value, error) {
	if _, err := asVector("set", args, 3); err != nil {
		return nil, err
	}
	v, ok := args[0].(value.VectorValue)
	if !ok {
		return nil, bmerrors.New(bmerrors.UnsupportedType, "set requires a Vector argument", zeroPos)
	}
	i, ok := asInt(args[1])
	if !ok || i < 0 || i >= int64(len(v.V.Elems)) {
		return nil, bmerrors.New(bmerrors.InvalidArgument, "set: index out of range", zeroPos)
	}
	prev := v.V.Elems[i]
	v.V.Elems[i] = args[2]
	return prev, nil
}
