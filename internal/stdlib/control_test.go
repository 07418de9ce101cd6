package stdlib

import (
	"testing"

	"github.com/bmath-lang/bmath/internal/bmerrors"
	"github.com/bmath-lang/bmath/internal/value"
)

func ok0() value.Value {
	return value.Native("ok", func(args []value.Value, _ value.Invoker) (value.Value, error) {
		return value.Num(value.Int(42)), nil
	})
}

func failing0() value.Value {
	return value.Native("failing", func(args []value.Value, _ value.Invoker) (value.Value, error) {
		return nil, bmerrors.New(bmerrors.ZeroDivision, "division by zero", zeroPos)
	})
}

func TestTryOrReturnsBodyResultOnSuccess(t *testing.T) {
	got, err := tryOrFn([]value.Value{ok0(), value.Num(value.Int(-1))}, invoke)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "42" {
		t.Fatalf("try_or success = %s, want 42", got.String())
	}
}

func TestTryOrReturnsDefaultOnError(t *testing.T) {
	got, err := tryOrFn([]value.Value{failing0(), value.Num(value.Int(-1))}, invoke)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "-1" {
		t.Fatalf("try_or failure = %s, want default -1", got.String())
	}
}

func TestTryCatchInvokesHandlerWithErrorValue(t *testing.T) {
	handler := value.Native("handler", func(args []value.Value, _ value.Invoker) (value.Value, error) {
		if _, ok := args[0].(value.ErrorValue); !ok {
			t.Fatalf("handler's argument is %T, want value.ErrorValue", args[0])
		}
		return value.Str("handled"), nil
	})
	got, err := tryCatchFn([]value.Value{failing0(), handler}, invoke)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "handled" {
		t.Fatalf("try_catch = %s, want handled", got.String())
	}
}

func TestTryCatchPassesThroughOnSuccess(t *testing.T) {
	handler := value.Native("handler", func(args []value.Value, _ value.Invoker) (value.Value, error) {
		t.Fatal("handler should not be invoked when body succeeds")
		return nil, nil
	})
	got, err := tryCatchFn([]value.Value{ok0(), handler}, invoke)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "42" {
		t.Fatalf("try_catch success = %s, want 42", got.String())
	}
}
