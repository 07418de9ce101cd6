package stdlib

import (
	"testing"

	"github.com/bmath-lang/bmath/internal/bmerrors"
	"github.com/bmath-lang/bmath/internal/value"
)

func intVec(elems ...int64) value.Value {
	vs := make([]value.Value, len(elems))
	for i, e := range elems {
		vs[i] = value.Num(value.Int(e))
	}
	return value.Vec(value.NewVector(vs))
}

func TestVecWithScalarFillsCopies(t *testing.T) {
	got, err := vecFn([]value.Value{value.Num(value.Int(3)), value.Num(value.Int(7))}, invoke)
	if err != nil {
		t.Fatalf("vec: unexpected error: %v", err)
	}
	if got.String() != "[7, 7, 7]" {
		t.Fatalf("vec(3, 7) = %s, want [7, 7, 7]", got.String())
	}
}

func TestVecWithFnCallsItPerIndex(t *testing.T) {
	calls := 0
	fn := countingFn(&calls, func(v value.Value) (value.Value, error) {
		n := v.(value.NumberValue).N
		sq, _ := n.Mul(n)
		return value.Num(sq), nil
	})
	got, err := vecFn([]value.Value{value.Num(value.Int(4)), fn}, invoke)
	if err != nil {
		t.Fatalf("vec: unexpected error: %v", err)
	}
	if got.String() != "[0, 1, 4, 9]" {
		t.Fatalf("vec(4, sq) = %s, want [0, 1, 4, 9]", got.String())
	}
	if calls != 4 {
		t.Fatalf("fn invoked %d times, want 4", calls)
	}
}

func TestSetMutatesInPlaceAndReturnsPrevious(t *testing.T) {
	v := intVec(1, 2, 3)
	prev, err := setFn([]value.Value{v, value.Num(value.Int(1)), value.Num(value.Int(99))}, invoke)
	if err != nil {
		t.Fatalf("set: unexpected error: %v", err)
	}
	if prev.String() != "2" {
		t.Fatalf("set returned %s, want previous value 2", prev.String())
	}
	if v.String() != "[1, 99, 3]" {
		t.Fatalf("vector after set = %s, want [1, 99, 3]", v.String())
	}
}

func TestSetOutOfRangeIsInvalidArgument(t *testing.T) {
	v := intVec(1, 2, 3)
	_, err := setFn([]value.Value{v, value.Num(value.Int(5)), value.Num(value.Int(0))}, invoke)
	if !bmerrors.Is(err, bmerrors.InvalidArgument) {
		t.Fatalf("set out of range = %v, want InvalidArgument", err)
	}
}

func TestSliceTwoAndThreeArgForms(t *testing.T) {
	v := intVec(10, 20, 30, 40, 50)
	got, err := sliceFn([]value.Value{v, value.Num(value.Int(3))}, invoke)
	if err != nil {
		t.Fatalf("slice(v, end): unexpected error: %v", err)
	}
	if got.String() != "[10, 20, 30]" {
		t.Fatalf("slice(v, 3) = %s, want [10, 20, 30]", got.String())
	}

	got, err = sliceFn([]value.Value{v, value.Num(value.Int(1)), value.Num(value.Int(3))}, invoke)
	if err != nil {
		t.Fatalf("slice(v, start, end): unexpected error: %v", err)
	}
	if got.String() != "[20, 30]" {
		t.Fatalf("slice(v, 1, 3) = %s, want [20, 30]", got.String())
	}
}

func TestFirstLastEmptyVectorIsInvalidArgument(t *testing.T) {
	empty := value.Vec(value.NewVector(nil))
	if _, err := firstFn([]value.Value{empty}, invoke); !bmerrors.Is(err, bmerrors.InvalidArgument) {
		t.Fatalf("first([]) = %v, want InvalidArgument", err)
	}
	if _, err := lastFn([]value.Value{empty}, invoke); !bmerrors.Is(err, bmerrors.InvalidArgument) {
		t.Fatalf("last([]) = %v, want InvalidArgument", err)
	}
}

func TestMergeConcatenates(t *testing.T) {
	got, err := mergeFn([]value.Value{intVec(1, 2), intVec(3, 4)}, invoke)
	if err != nil {
		t.Fatalf("merge: unexpected error: %v", err)
	}
	if got.String() != "[1, 2, 3, 4]" {
		t.Fatalf("merge = %s, want [1, 2, 3, 4]", got.String())
	}
}

func TestDotProduct(t *testing.T) {
	got, err := dotFn([]value.Value{intVec(1, 2, 3), intVec(4, 5, 6)}, invoke)
	if err != nil {
		t.Fatalf("dot: unexpected error: %v", err)
	}
	if got.String() != "32" {
		t.Fatalf("dot([1,2,3],[4,5,6]) = %s, want 32", got.String())
	}
}
