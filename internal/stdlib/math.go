package stdlib

import (
	"errors"
	"math"

	"github.com/bmath-lang/bmath/internal/value"
)

// errComplexUnsupported marks math functions spec.md doesn't define over
// Complex (the trig family and log), mirroring the "undefined for Complex"
// treatment spec.md §3 already gives ceil/floor/round and comparisons.
var errComplexUnsupported = errors.New("operation is undefined for Complex numbers")

func sqrtNum(n value.Number) (value.Number, error)  { return n.Sqrt(), nil }
func absNum(n value.Number) (value.Number, error)   { return n.Abs(), nil }
func floorNum(n value.Number) (value.Number, error) { return n.Floor() }
func ceilNum(n value.Number) (value.Number, error)  { return n.Ceil() }
func roundNum(n value.Number) (value.Number, error) { return n.Round() }

func expNum(n value.Number) (value.Number, error) {
	if n.Kind == value.ComplexKind {
		mag := math.Exp(n.Re)
		return value.Cplx(mag*math.Cos(n.Im), mag*math.Sin(n.Im)), nil
	}
	return value.Real(math.Exp(n.AsFloat())), nil
}

func reNum(n value.Number) (value.Number, error) {
	re, _ := n.AsComplexPair()
	return value.Real(re), nil
}

func imNum(n value.Number) (value.Number, error) {
	_, im := n.AsComplexPair()
	return value.Real(im), nil
}

func trigReal(fn func(float64) float64) func(value.Number) (value.Number, error) {
	return func(n value.Number) (value.Number, error) {
		if n.Kind == value.ComplexKind {
			return value.Number{}, errComplexUnsupported
		}
		return value.Real(fn(n.AsFloat())), nil
	}
}

var (
	sinNum = trigReal(math.Sin)
	cosNum = trigReal(math.Cos)
	tanNum = trigReal(math.Tan)
	cotNum = trigReal(func(x float64) float64 { return 1 / math.Tan(x) })
	secNum = trigReal(func(x float64) float64 { return 1 / math.Cos(x) })
	cscNum = trigReal(func(x float64) float64 { return 1 / math.Sin(x) })
)

func logNum(x, base value.Number) (value.Number, error) {
	if x.Kind == value.ComplexKind || base.Kind == value.ComplexKind {
		return value.Number{}, errComplexUnsupported
	}
	return value.Real(math.Log(x.AsFloat()) / math.Log(base.AsFloat())), nil
}
