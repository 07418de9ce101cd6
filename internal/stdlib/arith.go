// Package stdlib implements BMath's standard library: arithmetic/trig/vector
// /sequence/higher-order functions, registered into the root Environment by
// Register. It depends only on internal/value (plus internal/bmerrors/token
// for error reporting and internal/environment for Register), never on
// internal/ast or internal/interp, so that
// the interpreter can call these operator implementations directly for its
// Binary/Unary dispatch without a dependency cycle.
package stdlib

import (
	"github.com/bmath-lang/bmath/internal/bmerrors"
	"github.com/bmath-lang/bmath/internal/token"
	"github.com/bmath-lang/bmath/internal/value"
)

// scalarVectorOnly handles the Vector-paired-with-scalar case (either
// operand, not both) shared by every arithmetic operator; both-Vector
// operands are left unhandled (handled=false) since that case means
// different things per operator (elementwise for +/-, dot product for *,
// undefined for /,%,^).
func scalarVectorOnly(a, b value.Value, scalarOp func(x, y value.Value) (value.Value, error)) (value.Value, bool, error) {
	av, aIsVec := a.(value.VectorValue)
	bv, bIsVec := b.(value.VectorValue)
	if aIsVec && bIsVec {
		return nil, false, nil
	}
	if aIsVec {
		out := make([]value.Value, len(av.V.Elems))
		for i, e := range av.V.Elems {
			r, err := scalarOp(e, b)
			if err != nil {
				return nil, true, err
			}
			out[i] = r
		}
		return value.Vec(value.NewVector(out)), true, nil
	}
	if bIsVec {
		out := make([]value.Value, len(bv.V.Elems))
		for i, e := range bv.V.Elems {
			r, err := scalarOp(a, e)
			if err != nil {
				return nil, true, err
			}
			out[i] = r
		}
		return value.Vec(value.NewVector(out)), true, nil
	}
	return nil, false, nil
}

// elementwise additionally handles same-length Vector×Vector by pairing
// elements positionally; used by + and -.
func elementwise(a, b value.Value, pos token.Position, scalarOp func(x, y value.Value) (value.Value, error)) (value.Value, bool, error) {
	if v, handled, err := scalarVectorOnly(a, b, scalarOp); handled {
		return v, true, err
	}
	av, aIsVec := a.(value.VectorValue)
	bv, bIsVec := b.(value.VectorValue)
	if aIsVec && bIsVec {
		if len(av.V.Elems) != len(bv.V.Elems) {
			return nil, true, bmerrors.Newf(bmerrors.InvalidArgument, pos,
				"vectors must have equal length, got %d and %d", len(av.V.Elems), len(bv.V.Elems))
		}
		out := make([]value.Value, len(av.V.Elems))
		for i := range av.V.Elems {
			r, err := scalarOp(av.V.Elems[i], bv.V.Elems[i])
			if err != nil {
				return nil, true, err
			}
			out[i] = r
		}
		return value.Vec(value.NewVector(out)), true, nil
	}
	return nil, false, nil
}

func numberPair(a, b value.Value) (value.Number, value.Number, bool) {
	an, aok := a.(value.NumberValue)
	bn, bok := b.(value.NumberValue)
	return an.N, bn.N, aok && bok
}

// Add implements + (spec.md §4.5): Vector+scalar and same-length
// Vector+Vector are elementwise.
func Add(a, b value.Value, pos token.Position) (value.Value, error) {
	if v, handled, err := elementwise(a, b, pos, func(x, y value.Value) (value.Value, error) { return Add(x, y, pos) }); handled {
		return v, err
	}
	an, bn, ok := numberPair(a, b)
	if !ok {
		return nil, bmerrors.Newf(bmerrors.UnsupportedType, pos, "+ requires Number operands, got %s and %s", a.TypeOf(), b.TypeOf())
	}
	n, err := an.Add(bn)
	if err != nil {
		return nil, wrapErr(err, pos)
	}
	return value.Num(n), nil
}

// Sub implements - (binary).
func Sub(a, b value.Value, pos token.Position) (value.Value, error) {
	if v, handled, err := elementwise(a, b, pos, func(x, y value.Value) (value.Value, error) { return Sub(x, y, pos) }); handled {
		return v, err
	}
	an, bn, ok := numberPair(a, b)
	if !ok {
		return nil, bmerrors.Newf(bmerrors.UnsupportedType, pos, "- requires Number operands, got %s and %s", a.TypeOf(), b.TypeOf())
	}
	n, err := an.Sub(bn)
	if err != nil {
		return nil, wrapErr(err, pos)
	}
	return value.Num(n), nil
}

// Mul implements *: Vector×Vector is dot product, Vector×scalar is elementwise.
func Mul(a, b value.Value, pos token.Position) (value.Value, error) {
	av, aIsVec := a.(value.VectorValue)
	bv, bIsVec := b.(value.VectorValue)
	if aIsVec && bIsVec {
		return dot(av.V, bv.V, pos)
	}
	if v, handled, err := scalarVectorOnly(a, b, func(x, y value.Value) (value.Value, error) { return Mul(x, y, pos) }); handled {
		return v, err
	}
	an, bn, ok := numberPair(a, b)
	if !ok {
		return nil, bmerrors.Newf(bmerrors.UnsupportedType, pos, "* requires Number operands, got %s and %s", a.TypeOf(), b.TypeOf())
	}
	n, err := an.Mul(bn)
	if err != nil {
		return nil, wrapErr(err, pos)
	}
	return value.Num(n), nil
}

func dot(a, b *value.Vector, pos token.Position) (value.Value, error) {
	if len(a.Elems) != len(b.Elems) {
		return nil, bmerrors.Newf(bmerrors.InvalidArgument, pos,
			"dot product requires equal-length vectors, got %d and %d", len(a.Elems), len(b.Elems))
	}
	sum := value.Num(value.Int(0))
	var sumVal value.Value = sum
	for i := range a.Elems {
		term, err := Mul(a.Elems[i], b.Elems[i], pos)
		if err != nil {
			return nil, err
		}
		sumVal, err = Add(sumVal, term, pos)
		if err != nil {
			return nil, err
		}
	}
	return sumVal, nil
}

// Div implements /, which always promotes to at least Real; Vector×Vector is
// undefined (falls through to the UnsupportedType error below).
func Div(a, b value.Value, pos token.Position) (value.Value, error) {
	if v, handled, err := scalarVectorOnly(a, b, func(x, y value.Value) (value.Value, error) { return Div(x, y, pos) }); handled {
		return v, err
	}
	an, bn, ok := numberPair(a, b)
	if !ok {
		return nil, bmerrors.Newf(bmerrors.UnsupportedType, pos, "/ requires Number operands, got %s and %s", a.TypeOf(), b.TypeOf())
	}
	n, err := an.Div(bn)
	if err != nil {
		return nil, wrapErr(err, pos)
	}
	return value.Num(n), nil
}

// Mod implements %; Vector×Vector is undefined.
func Mod(a, b value.Value, pos token.Position) (value.Value, error) {
	if v, handled, err := scalarVectorOnly(a, b, func(x, y value.Value) (value.Value, error) { return Mod(x, y, pos) }); handled {
		return v, err
	}
	an, bn, ok := numberPair(a, b)
	if !ok {
		return nil, bmerrors.Newf(bmerrors.UnsupportedType, pos, "%% requires Number operands, got %s and %s", a.TypeOf(), b.TypeOf())
	}
	n, err := an.Mod(bn)
	if err != nil {
		return nil, wrapErr(err, pos)
	}
	return value.Num(n), nil
}

// Pow implements ^ (also exposed as the pow(x,y) function); Vector×Vector is
// undefined.
func Pow(a, b value.Value, pos token.Position) (value.Value, error) {
	if v, handled, err := scalarVectorOnly(a, b, func(x, y value.Value) (value.Value, error) { return Pow(x, y, pos) }); handled {
		return v, err
	}
	an, bn, ok := numberPair(a, b)
	if !ok {
		return nil, bmerrors.Newf(bmerrors.UnsupportedType, pos, "^ requires Number operands, got %s and %s", a.TypeOf(), b.TypeOf())
	}
	n, err := an.Pow(bn)
	if err != nil {
		return nil, wrapErr(err, pos)
	}
	return value.Num(n), nil
}

// Neg implements unary -, applied elementwise to a Vector.
func Neg(a value.Value, pos token.Position) (value.Value, error) {
	if av, ok := a.(value.VectorValue); ok {
		out := make([]value.Value, len(av.V.Elems))
		for i, e := range av.V.Elems {
			r, err := Neg(e, pos)
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return value.Vec(value.NewVector(out)), nil
	}
	n, ok := a.(value.NumberValue)
	if !ok {
		return nil, bmerrors.Newf(bmerrors.UnsupportedType, pos, "unary - requires a Number, got %s", a.TypeOf())
	}
	return value.Num(n.N.Neg()), nil
}

// Not implements unary !.
func Not(a value.Value, pos token.Position) (value.Value, error) {
	b, ok := a.(value.BoolValue)
	if !ok {
		return nil, bmerrors.Newf(bmerrors.UnsupportedType, pos, "! requires a Boolean, got %s", a.TypeOf())
	}
	return value.Bool(!b.B), nil
}

// Compare implements <, <=, >, >= via a three-way comparator predicate;
// complex operands raise ComplexComparison.
func Compare(a, b value.Value, pos token.Position, pred func(cmp int) bool) (value.Value, error) {
	an, bn, ok := numberPair(a, b)
	if !ok {
		return nil, bmerrors.Newf(bmerrors.UnsupportedType, pos, "comparison requires Number operands, got %s and %s", a.TypeOf(), b.TypeOf())
	}
	c, err := an.Compare(bn)
	if err != nil {
		return nil, wrapErr(err, pos)
	}
	return value.Bool(pred(c)), nil
}
