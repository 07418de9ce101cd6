package stdlib

import (
	"github.com/bmath-lang/bmath/internal/bmerrors"
	"github.com/bmath-lang/bmath/internal/value"
)

func asSeq(name string, args []value.Value, n int) error {
	if len(args) != n {
		return bmerrors.Newf(bmerrors.InvalidArgument, zeroPos, "%s expects %d argument(s), got %d", name, n, len(args))
	}
	return nil
}

// fnGenerator adapts a BMath-callable Value into a value.Generator by
// invoking it through the Invoker for every element; seq(n, fn)'s backing
// store.
type fnGenerator struct {
	n       int64
	i       int64
	fn      value.Value
	invoke  value.Invoker
	peeked  value.Value
	hasPeek bool
}

func (g *fnGenerator) AtEnd() bool { return !g.hasPeek && g.i >= g.n }

func (g *fnGenerator) Next(peek bool) (value.Value, error) {
	if g.hasPeek {
		v := g.peeked
		if !peek {
			g.hasPeek = false
			g.peeked = nil
		}
		return v, nil
	}
	if g.i >= g.n {
		return nil, value.ErrSequenceExhausted
	}
	v, err := g.invoke(g.fn, []value.Value{value.Num(value.Int(g.i))})
	if err != nil {
		return nil, err
	}
	g.i++
	if peek {
		g.hasPeek = true
		g.peeked = v
	}
	return v, nil
}

// seqFn implements seq(n, fn): a lazy Sequence of n elements, element i being
// fn(i). n may be negative to mean an unbounded sequence (spec.md §4.5).
func seqFn(args []value.Value, invoke value.Invoker) (value.Value, error) {
	if err := asSeq("seq", args, 2); err != nil {
		return nil, err
	}
	n, ok := asInt(args[0])
	if !ok {
		return nil, bmerrors.New(bmerrors.InvalidArgument, "seq's first argument must be an Integer", zeroPos)
	}
	if n < 0 {
		n = int64(^uint64(0) >> 1)
	}
	if !isCallable(args[1]) {
		return nil, bmerrors.New(bmerrors.UnsupportedType, "seq's second argument must be callable", zeroPos)
	}
	gen := &fnGenerator{n: n, fn: args[1], invoke: invoke}
	return value.Seq(value.NewSequence(gen)), nil
}

func asSequence(args []value.Value, i int) (*value.Sequence, bool) {
	sv, ok := args[i].(value.SequenceValue)
	return sv.Seq, ok
}

func vecAsSequence(args []value.Value, i int) (*value.Sequence, bool) {
	if sv, ok := asSequence(args, i); ok {
		return sv, true
	}
	vv, ok := args[i].(value.VectorValue)
	if !ok {
		return nil, false
	}
	return value.NewSequence(value.NewVectorGenerator(vv.V.Elems)), true
}

// collectFn implements collect(seq): drains a Sequence into a Vector.
func collectFn(args []value.Value, _ value.Invoker) (value.Value, error) {
	if err := asSeq("collect", args, 1); err != nil {
		return nil, err
	}
	seq, ok := vecAsSequence(args, 0)
	if !ok {
		return nil, bmerrors.New(bmerrors.UnsupportedType, "collect requires a Sequence or Vector argument", zeroPos)
	}
	var out []value.Value
	for !seq.AtEnd() {
		v, err := seq.Next()
		if err != nil {
			if err == value.ErrSequenceExhausted {
				break
			}
			return nil, wrapErr(err, zeroPos)
		}
		out = append(out, v)
	}
	return value.Vec(value.NewVector(out)), nil
}

// skipFn implements skip(seq, n): drops the first n elements eagerly and
// returns the same Sequence positioned after them.
func skipFn(args []value.Value, _ value.Invoker) (value.Value, error) {
	if err := asSeq("skip", args, 2); err != nil {
		return nil, err
	}
	seq, ok := vecAsSequence(args, 0)
	if !ok {
		return nil, bmerrors.New(bmerrors.UnsupportedType, "skip requires a Sequence or Vector argument", zeroPos)
	}
	n, ok := asInt(args[1])
	if !ok || n < 0 {
		return nil, bmerrors.New(bmerrors.InvalidArgument, "skip's count must be a non-negative Integer", zeroPos)
	}
	for i := int64(0); i < n && !seq.AtEnd(); i++ {
		if _, err := seq.Next(); err != nil && err != value.ErrSequenceExhausted {
			return nil, wrapErr(err, zeroPos)
		}
	}
	return value.Seq(seq), nil
}

// takeFn implements take(seq, n): eagerly collects up to n elements and
// wraps them back into a Sequence, without consuming the rest of seq.
func takeFn(args []value.Value, _ value.Invoker) (value.Value, error) {
	if err := asSeq("take", args, 2); err != nil {
		return nil, err
	}
	seq, ok := vecAsSequence(args, 0)
	if !ok {
		return nil, bmerrors.New(bmerrors.UnsupportedType, "take requires a Sequence or Vector argument", zeroPos)
	}
	n, ok := asInt(args[1])
	if !ok || n < 0 {
		return nil, bmerrors.New(bmerrors.InvalidArgument, "take's count must be a non-negative Integer", zeroPos)
	}
	out := make([]value.Value, 0, n)
	for i := int64(0); i < n && !seq.AtEnd(); i++ {
		v, err := seq.Next()
		if err != nil {
			if err == value.ErrSequenceExhausted {
				break
			}
			return nil, wrapErr(err, zeroPos)
		}
		out = append(out, v)
	}
	return value.Seq(value.NewSequence(value.NewVectorGenerator(out))), nil
}

func hasNextFn(args []value.Value, _ value.Invoker) (value.Value, error) {
	if err := asSeq("hasNext", args, 1); err != nil {
		return nil, err
	}
	seq, ok := vecAsSequence(args, 0)
	if !ok {
		return nil, bmerrors.New(bmerrors.UnsupportedType, "hasNext requires a Sequence or Vector argument", zeroPos)
	}
	return value.Bool(!seq.AtEnd()), nil
}

func nextFn(args []value.Value, _ value.Invoker) (value.Value, error) {
	if err := asSeq("next", args, 1); err != nil {
		return nil, err
	}
	seq, ok := vecAsSequence(args, 0)
	if !ok {
		return nil, bmerrors.New(bmerrors.UnsupportedType, "next requires a Sequence or Vector argument", zeroPos)
	}
	v, err := seq.Next()
	if err != nil {
		return nil, wrapErr(err, zeroPos)
	}
	return v, nil
}

// mapFn implements map(seq, fn): a lazily-transformed Sequence view.
func mapFn(args []value.Value, invoke value.Invoker) (value.Value, error) {
	if err := asSeq("map", args, 2); err != nil {
		return nil, err
	}
	seq, ok := vecAsSequence(args, 0)
	if !ok {
		return nil, bmerrors.New(bmerrors.UnsupportedType, "map requires a Sequence or Vector argument", zeroPos)
	}
	if !isCallable(args[1]) {
		return nil, bmerrors.New(bmerrors.UnsupportedType, "map's second argument must be callable", zeroPos)
	}
	fn := args[1]
	t := value.Transformer{Kind: value.MapTransformer, Fn: func(v value.Value) (value.Value, error) {
		return invoke(fn, []value.Value{v})
	}}
	return value.Seq(seq.WithTransformer(t)), nil
}

// filterFn implements filter(seq, pred): a lazily-transformed Sequence view.
func filterFn(args []value.Value, invoke value.Invoker) (value.Value, error) {
	if err := asSeq("filter", args, 2); err != nil {
		return nil, err
	}
	seq, ok := vecAsSequence(args, 0)
	if !ok {
		return nil, bmerrors.New(bmerrors.UnsupportedType, "filter requires a Sequence or Vector argument", zeroPos)
	}
	if !isCallable(args[1]) {
		return nil, bmerrors.New(bmerrors.UnsupportedType, "filter's second argument must be callable", zeroPos)
	}
	fn := args[1]
	t := value.Transformer{Kind: value.FilterTransformer, Fn: func(v value.Value) (value.Value, error) {
		return invoke(fn, []value.Value{v})
	}}
	return value.Seq(seq.WithTransformer(t)), nil
}

// reduceFn implements reduce(seq, init, fn): eagerly folds the Sequence/Vector.
func reduceFn(args []value.Value, invoke value.Invoker) (value.Value, error) {
	if err := asSeq("reduce", args, 3); err != nil {
		return nil, err
	}
	seq, ok := vecAsSequence(args, 0)
	if !ok {
		return nil, bmerrors.New(bmerrors.UnsupportedType, "reduce requires a Sequence or Vector argument", zeroPos)
	}
	if !isCallable(args[2]) {
		return nil, bmerrors.New(bmerrors.UnsupportedType, "reduce's third argument must be callable", zeroPos)
	}
	acc := args[1]
	for !seq.AtEnd() {
		v, err := seq.Next()
		if err != nil {
			if err == value.ErrSequenceExhausted {
				break
			}
			return nil, wrapErr(err, zeroPos)
		}
		acc, err = invoke(args[2], []value.Value{acc, v})
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func sumFn(args []value.Value, invoke value.Invoker) (value.Value, error) {
	if err := asSeq("sum", args, 1); err != nil {
		return nil, err
	}
	seq, ok := vecAsSequence(args, 0)
	if !ok {
		return nil, bmerrors.New(bmerrors.UnsupportedType, "sum requires a Sequence or Vector argument", zeroPos)
	}
	var acc value.Value = value.Num(value.Int(0))
	for !seq.AtEnd() {
		v, err := seq.Next()
		if err != nil {
			if err == value.ErrSequenceExhausted {
				break
			}
			return nil, wrapErr(err, zeroPos)
		}
		acc, err = Add(acc, v, zeroPos)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func anyFn(args []value.Value, invoke value.Invoker) (value.Value, error) {
	if err := asSeq("any", args, 2); err != nil {
		return nil, err
	}
	seq, ok := vecAsSequence(args, 0)
	if !ok {
		return nil, bmerrors.New(bmerrors.UnsupportedType, "any requires a Sequence or Vector argument", zeroPos)
	}
	if !isCallable(args[1]) {
		return nil, bmerrors.New(bmerrors.UnsupportedType, "any's second argument must be callable", zeroPos)
	}
	for !seq.AtEnd() {
		v, err := seq.Next()
		if err != nil {
			if err == value.ErrSequenceExhausted {
				break
			}
			return nil, wrapErr(err, zeroPos)
		}
		r, err := invoke(args[1], []value.Value{v})
		if err != nil {
			return nil, err
		}
		if b, ok := r.(value.BoolValue); ok && b.B {
			return value.Bool(true), nil
		}
	}
	return value.Bool(false), nil
}

func allFn(args []value.Value, invoke value.Invoker) (value.Value, error) {
	if err := asSeq("all", args, 2); err != nil {
		return nil, err
	}
	seq, ok := vecAsSequence(args, 0)
	if !ok {
		return nil, bmerrors.New(bmerrors.UnsupportedType, "all requires a Sequence or Vector argument", zeroPos)
	}
	if !isCallable(args[1]) {
		return nil, bmerrors.New(bmerrors.UnsupportedType, "all's second argument must be callable", zeroPos)
	}
	for !seq.AtEnd() {
		v, err := seq.Next()
		if err != nil {
			if err == value.ErrSequenceExhausted {
				break
			}
			return nil, wrapErr(err, zeroPos)
		}
		r, err := invoke(args[1], []value.Value{v})
		if err != nil {
			return nil, err
		}
		if b, ok := r.(value.BoolValue); !ok || !b.B {
			return value.Bool(false), nil
		}
	}
	return value.Bool(true), nil
}

// zipFn implements zip(a, b): a lazy Sequence of [a_i, b_i] pairs, stopping
// at whichever input is shorter.
func zipFn(args []value.Value, _ value.Invoker) (value.Value, error) {
	if err := asSeq("zip", args, 2); err != nil {
		return nil, err
	}
	a, ok1 := vecAsSequence(args, 0)
	b, ok2 := vecAsSequence(args, 1)
	if !ok1 || !ok2 {
		return nil, bmerrors.New(bmerrors.UnsupportedType, "zip requires two Sequence or Vector arguments", zeroPos)
	}
	return value.Seq(value.NewSequence(value.NewZipGenerator(a, b))), nil
}

// minmax implements min/max, both variadic (two or more scalar arguments) or
// a single Sequence/Vector argument, with an optional trailing comparator
// function replacing the default numeric ordering.
func minmax(name string, args []value.Value, invoke value.Invoker, wantMin bool) (value.Value, error) {
	var fn value.Value
	rest := args
	if len(rest) > 0 && isCallable(rest[len(rest)-1]) {
		fn = rest[len(rest)-1]
		rest = rest[:len(rest)-1]
	}
	var items []value.Value
	if len(rest) == 1 {
		seq, ok := vecAsSequence(rest, 0)
		if !ok {
			return nil, bmerrors.Newf(bmerrors.UnsupportedType, zeroPos, "%s requires a Sequence/Vector or 2+ scalar arguments", name)
		}
		for !seq.AtEnd() {
			v, err := seq.Next()
			if err != nil {
				if err == value.ErrSequenceExhausted {
					break
				}
				return nil, wrapErr(err, zeroPos)
			}
			items = append(items, v)
		}
	} else {
		items = rest
	}
	if len(items) == 0 {
		return nil, bmerrors.Newf(bmerrors.InvalidArgument, zeroPos, "%s: no elements", name)
	}
	best := items[0]
	for _, v := range items[1:] {
		var less bool
		if fn != nil {
			r, err := invoke(fn, []value.Value{v, best})
			if err != nil {
				return nil, err
			}
			b, ok := r.(value.BoolValue)
			if !ok {
				return nil, bmerrors.Newf(bmerrors.UnsupportedType, zeroPos, "%s's comparator must return Boolean", name)
			}
			less = b.B
		} else {
			bv, bb, ok := numberPair(v, best)
			if !ok {
				return nil, bmerrors.Newf(bmerrors.UnsupportedType, zeroPos, "%s requires Number operands without a comparator", name)
			}
			c, err := bv.Compare(bb)
			if err != nil {
				return nil, wrapErr(err, zeroPos)
			}
			less = c < 0
		}
		if less == wantMin {
			best = v
		}
	}
	return best, nil
}

func minFn(args []value.Value, invoke value.Invoker) (value.Value, error) {
	return minmax("min", args, invoke, true)
}

func maxFn(args []value.Value, invoke value.Invoker) (value.Value, error) {
	return minmax("max", args, invoke, false)
}
