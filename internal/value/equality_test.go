package value

import "testing"

func TestEqualPromotesNumbers(t *testing.T) {
	if !Equal(Num(Int(2)), Num(Real(2))) {
		t.Fatal("Num(Int(2)) should equal Num(Real(2))")
	}
}

func TestEqualVectorsElementwise(t *testing.T) {
	a := Vec(NewVector([]Value{Num(Int(1)), Num(Int(2))}))
	b := Vec(NewVector([]Value{Num(Int(1)), Num(Real(2))}))
	c := Vec(NewVector([]Value{Num(Int(1)), Num(Int(3))}))
	d := Vec(NewVector([]Value{Num(Int(1))}))
	if !Equal(a, b) {
		t.Fatal("equal-length vectors with elementwise-equal numbers should be Equal")
	}
	if Equal(a, c) {
		t.Fatal("vectors differing in one element should not be Equal")
	}
	if Equal(a, d) {
		t.Fatal("vectors of different length should not be Equal, never an error")
	}
}

func TestEqualKindMismatchIsFalseNotError(t *testing.T) {
	if Equal(Num(Int(1)), Bool(true)) {
		t.Fatal("a Number and a Boolean should never be Equal")
	}
	if Equal(Str("1"), Num(Int(1))) {
		t.Fatal("a String and a Number should never be Equal")
	}
}

func TestEqualTypeValuesUseIdentical(t *testing.T) {
	if !Equal(Typ(NumberType), Typ(SumOf(IntegerType, RealType, ComplexType))) {
		t.Fatal("equivalent Type values should be Equal")
	}
}

func TestEqualFunctionsAreNeverEqual(t *testing.T) {
	f := Fn(&Closure{})
	if Equal(f, f) {
		t.Fatal("Function values have no defined equality, should always be false")
	}
}
