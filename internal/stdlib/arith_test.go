package stdlib

import (
	"testing"

	"github.com/bmath-lang/bmath/internal/bmerrors"
	"github.com/bmath-lang/bmath/internal/token"
	"github.com/bmath-lang/bmath/internal/value"
)

var noPos = token.Position{}

func TestAddVectorVectorIsElementwise(t *testing.T) {
	got, err := Add(intVec(1, 2, 3), intVec(10, 20, 30), noPos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "[11, 22, 33]" {
		t.Fatalf("[1,2,3]+[10,20,30] = %s, want [11, 22, 33]", got.String())
	}
}

func TestAddVectorMismatchedLengthIsInvalidArgument(t *testing.T) {
	_, err := Add(intVec(1, 2), intVec(1, 2, 3), noPos)
	if !bmerrors.Is(err, bmerrors.InvalidArgument) {
		t.Fatalf("mismatched-length vector add = %v, want InvalidArgument", err)
	}
}

func TestMulVectorScalarIsElementwise(t *testing.T) {
	got, err := Mul(intVec(1, 2, 3), value.Num(value.Int(2)), noPos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "[2, 4, 6]" {
		t.Fatalf("[1,2,3]*2 = %s, want [2, 4, 6]", got.String())
	}
}

func TestMulVectorVectorIsDotProduct(t *testing.T) {
	got, err := Mul(intVec(1, 2, 3), intVec(4, 5, 6), noPos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "32" {
		t.Fatalf("[1,2,3]*[4,5,6] = %s, want 32 (dot product)", got.String())
	}
}

func TestDivVectorVectorIsUnsupported(t *testing.T) {
	_, err := Div(intVec(1, 2), intVec(3, 4), noPos)
	if !bmerrors.Is(err, bmerrors.UnsupportedType) {
		t.Fatalf("[1,2]/[3,4] = %v, want UnsupportedType", err)
	}
}

func TestNegDistributesOverVector(t *testing.T) {
	got, err := Neg(intVec(1, -2, 3), noPos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "[-1, 2, -3]" {
		t.Fatalf("-[1,-2,3] = %s, want [-1, 2, -3]", got.String())
	}
}

func TestNotRequiresBoolean(t *testing.T) {
	_, err := Not(value.Num(value.Int(1)), noPos)
	if !bmerrors.Is(err, bmerrors.UnsupportedType) {
		t.Fatalf("!1 = %v, want UnsupportedType", err)
	}
	got, err := Not(value.Bool(true), noPos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "false" {
		t.Fatalf("!true = %s, want false", got.String())
	}
}

func TestCompareRejectsComplexOperands(t *testing.T) {
	_, err := Compare(value.Num(value.Cplx(1, 1)), value.Num(value.Int(0)), noPos, func(c int) bool { return c < 0 })
	if err == nil {
		t.Fatal("expected an error comparing a Complex operand")
	}
}

func TestCompareLessThan(t *testing.T) {
	got, err := Compare(value.Num(value.Int(1)), value.Num(value.Int(2)), noPos, func(c int) bool { return c < 0 })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "true" {
		t.Fatalf("1 < 2 = %s, want true", got.String())
	}
}
