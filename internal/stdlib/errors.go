package stdlib

import (
	"errors"

	"github.com/bmath-lang/bmath/internal/bmerrors"
	"github.com/bmath-lang/bmath/internal/token"
	"github.com/bmath-lang/bmath/internal/value"
)

// wrapErr promotes a value-layer sentinel error into a positioned
// *bmerrors.Error, the same promotion the parser's constant folder performs
// for parse-time arithmetic errors (internal/parser/optimizer.go's
// wrapArithError).
func wrapErr(err error, pos token.Position) *bmerrors.Error {
	switch {
	case errors.Is(err, value.ErrZeroDivision):
		return bmerrors.New(bmerrors.ZeroDivision, err.Error(), pos)
	case errors.Is(err, value.ErrComplexModulus):
		return bmerrors.New(bmerrors.ComplexModulus, err.Error(), pos)
	case errors.Is(err, value.ErrComplexComparison):
		return bmerrors.New(bmerrors.ComplexComparison, err.Error(), pos)
	case errors.Is(err, value.ErrComplexCeilFloorRound):
		return bmerrors.New(bmerrors.ComplexCeilFloorRound, err.Error(), pos)
	case errors.Is(err, errComplexUnsupported):
		return bmerrors.New(bmerrors.UnsupportedType, err.Error(), pos)
	case errors.Is(err, value.ErrSequenceExhausted):
		return bmerrors.New(bmerrors.SequenceExhausted, err.Error(), pos)
	default:
		return bmerrors.New(bmerrors.InvalidArgument, err.Error(), pos)
	}
}

// zeroPos is attached to errors raised from inside a NativeFuncValue, which
// has no direct access to the calling expression's source position (see
// value.NativeFuncValue's Fn signature). The interpreter's call dispatch
// pushes the real call-site position immediately afterward, so the stack
// still carries useful positions from the first enclosing frame onward; only
// the innermost entry is a placeholder. See DESIGN.md.
var zeroPos = token.Position{}
