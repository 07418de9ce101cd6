package stdlib

import (
	"testing"

	"github.com/bmath-lang/bmath/internal/value"
)

// invoke dispatches a BMath-callable Value the same way the interpreter
// would, without pulling in internal/interp: both Value variants stdlib
// tests exercise (NativeFuncValue) are callable through value.Invoker
// directly.
func invoke(fn value.Value, args []value.Value) (value.Value, error) {
	nf, ok := fn.(value.NativeFuncValue)
	if !ok {
		panic("invoke: not a NativeFuncValue in test")
	}
	return nf.Fn(args, invoke)
}

func countingFn(calls *int, f func(value.Value) (value.Value, error)) value.Value {
	return value.Native("counting", func(args []value.Value, _ value.Invoker) (value.Value, error) {
		*calls++
		return f(args[0])
	})
}

// TestTakeInvokesGeneratorAtMostMinNK exercises spec.md's sequence-laziness
// invariant: take(seq(n, f), k) invokes f at most min(n, k) times.
func TestTakeInvokesGeneratorAtMostMinNK(t *testing.T) {
	tests := []struct {
		n, k int64
		want int
	}{
		{10, 3, 3},
		{2, 10, 2},
		{5, 5, 5},
	}
	for _, tt := range tests {
		calls := 0
		gen := countingFn(&calls, func(v value.Value) (value.Value, error) { return v, nil })
		seqVal, err := seqFn([]value.Value{value.Num(value.Int(tt.n)), gen}, invoke)
		if err != nil {
			t.Fatalf("seq(%d, fn): unexpected error: %v", tt.n, err)
		}
		if _, err := takeFn([]value.Value{seqVal, value.Num(value.Int(tt.k))}, invoke); err != nil {
			t.Fatalf("take(seq(%d,fn), %d): unexpected error: %v", tt.n, tt.k, err)
		}
		if calls != tt.want {
			t.Errorf("take(seq(%d,fn), %d) invoked fn %d times, want %d", tt.n, tt.k, calls, tt.want)
		}
	}
}

// TestFilterInvokesPredicateExactlyOncePerSourceElement exercises spec.md's
// other sequence-laziness invariant.
func TestFilterInvokesPredicateExactlyOncePerSourceElement(t *testing.T) {
	calls := 0
	pred := countingFn(&calls, func(v value.Value) (value.Value, error) {
		n := v.(value.NumberValue).N
		return value.Bool(n.I%2 == 0), nil
	})
	vec := value.Vec(value.NewVector([]value.Value{
		value.Num(value.Int(1)), value.Num(value.Int(2)), value.Num(value.Int(3)),
		value.Num(value.Int(4)), value.Num(value.Int(5)),
	}))
	filtered, err := filterFn([]value.Value{vec, pred}, invoke)
	if err != nil {
		t.Fatalf("filter: unexpected error: %v", err)
	}
	collected, err := collectFn([]value.Value{filtered}, invoke)
	if err != nil {
		t.Fatalf("collect: unexpected error: %v", err)
	}
	got := collected.(value.VectorValue).V.Elems
	if len(got) != 2 {
		t.Fatalf("filter(evens) = %v, want 2 elements", got)
	}
	if calls != 5 {
		t.Fatalf("predicate invoked %d times, want exactly 5 (once per source element)", calls)
	}
}

func TestTakeReturnsASequenceNotAVector(t *testing.T) {
	vec := value.Vec(value.NewVector([]value.Value{
		value.Num(value.Int(1)), value.Num(value.Int(2)), value.Num(value.Int(3)),
	}))
	got, err := takeFn([]value.Value{vec, value.Num(value.Int(2))}, invoke)
	if err != nil {
		t.Fatalf("take: unexpected error: %v", err)
	}
	if _, ok := got.(value.SequenceValue); !ok {
		t.Fatalf("take(...) returned %T, want value.SequenceValue", got)
	}
	collected, err := collectFn([]value.Value{got}, invoke)
	if err != nil {
		t.Fatalf("collect(take(...)): unexpected error: %v", err)
	}
	if collected.String() != "[1, 2]" {
		t.Fatalf("collect(take(vec,2)) = %s, want [1, 2]", collected.String())
	}
}

func TestSeqNegativeNIsUnboundedButStillLazy(t *testing.T) {
	calls := 0
	gen := countingFn(&calls, func(v value.Value) (value.Value, error) { return v, nil })
	seqVal, err := seqFn([]value.Value{value.Num(value.Int(-1)), gen}, invoke)
	if err != nil {
		t.Fatalf("seq(-1, fn): unexpected error: %v", err)
	}
	if _, err := takeFn([]value.Value{seqVal, value.Num(value.Int(4))}, invoke); err != nil {
		t.Fatalf("take: unexpected error: %v", err)
	}
	if calls != 4 {
		t.Fatalf("fn invoked %d times for an unbounded sequence, want exactly 4", calls)
	}
}

func TestCollectDrainsVectorOrSequenceToVector(t *testing.T) {
	vec := value.Vec(value.NewVector([]value.Value{value.Num(value.Int(1)), value.Num(value.Int(2))}))
	got, err := collectFn([]value.Value{vec}, invoke)
	if err != nil {
		t.Fatalf("collect(vector): unexpected error: %v", err)
	}
	if got.String() != "[1, 2]" {
		t.Fatalf("collect(vector) = %s, want [1, 2]", got.String())
	}
}

func TestReduceFoldsLeftToRight(t *testing.T) {
	vec := value.Vec(value.NewVector([]value.Value{
		value.Num(value.Int(1)), value.Num(value.Int(2)), value.Num(value.Int(3)), value.Num(value.Int(4)),
	}))
	add := value.Native("add", func(args []value.Value, _ value.Invoker) (value.Value, error) {
		a := args[0].(value.NumberValue).N
		b := args[1].(value.NumberValue).N
		sum, _ := a.Add(b)
		return value.Num(sum), nil
	})
	got, err := reduceFn([]value.Value{vec, value.Num(value.Int(0)), add}, invoke)
	if err != nil {
		t.Fatalf("reduce: unexpected error: %v", err)
	}
	if got.String() != "10" {
		t.Fatalf("reduce(sum) = %s, want 10", got.String())
	}
}

func TestZipStopsAtShorterInput(t *testing.T) {
	a := value.Vec(value.NewVector([]value.Value{value.Num(value.Int(1)), value.Num(value.Int(2)), value.Num(value.Int(3))}))
	b := value.Vec(value.NewVector([]value.Value{value.Num(value.Int(10)), value.Num(value.Int(20))}))
	zipped, err := zipFn([]value.Value{a, b}, invoke)
	if err != nil {
		t.Fatalf("zip: unexpected error: %v", err)
	}
	collected, err := collectFn([]value.Value{zipped}, invoke)
	if err != nil {
		t.Fatalf("collect(zip): unexpected error: %v", err)
	}
	if got := collected.String(); got != "[[1, 10], [2, 20]]" {
		t.Fatalf("collect(zip(a,b)) = %s, want [[1, 10], [2, 20]]", got)
	}
}

func TestMinMaxOverScalarArgs(t *testing.T) {
	got, err := minFn([]value.Value{value.Num(value.Int(3)), value.Num(value.Int(1)), value.Num(value.Int(2))}, invoke)
	if err != nil {
		t.Fatalf("min: unexpected error: %v", err)
	}
	if got.String() != "1" {
		t.Fatalf("min(3,1,2) = %s, want 1", got.String())
	}
	got, err = maxFn([]value.Value{value.Num(value.Int(3)), value.Num(value.Int(1)), value.Num(value.Int(2))}, invoke)
	if err != nil {
		t.Fatalf("max: unexpected error: %v", err)
	}
	if got.String() != "3" {
		t.Fatalf("max(3,1,2) = %s, want 3", got.String())
	}
}
