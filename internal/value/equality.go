package value

// Equal implements == across any pair of Values: Numbers compare after
// promotion, Vectors compare element-wise when the same length (otherwise
// false, never an error — spec.md §9), and any other kind mismatch is
// simply false rather than a TypeError.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case NumberValue:
		bv, ok := b.(NumberValue)
		return ok && av.N.Equal(bv.N)
	case BoolValue:
		bv, ok := b.(BoolValue)
		return ok && av.B == bv.B
	case StringValue:
		bv, ok := b.(StringValue)
		return ok && av.S == bv.S
	case TypeValue:
		bv, ok := b.(TypeValue)
		return ok && av.T.Identical(bv.T)
	case VectorValue:
		bv, ok := b.(VectorValue)
		if !ok || len(av.V.Elems) != len(bv.V.Elems) {
			return false
		}
		for i := range av.V.Elems {
			if !Equal(av.V.Elems[i], bv.V.Elems[i]) {
				return false
			}
		}
		return true
	case ErrorValue:
		bv, ok := b.(ErrorValue)
		return ok && av.Message == bv.Message
	default:
		// Sequence, Function, NativeFunc have no defined equality beyond
		// identity, which Value's interface representation doesn't expose
		// meaningfully here; treat as never equal, matching "otherwise false".
		return false
	}
}
