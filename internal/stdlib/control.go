package stdlib

import (
	"fmt"
	"os"

	"github.com/bmath-lang/bmath/internal/bmerrors"
	"github.com/bmath-lang/bmath/internal/value"
)

// exitFn implements exit([code]): terminates the host process directly,
// matching a REPL/script host's expectation that exit() never returns.
func exitFn(args []value.Value, _ value.Invoker) (value.Value, error) {
	code := 0
	if len(args) == 1 {
		i, ok := asInt(args[0])
		if !ok {
			return nil, bmerrors.New(bmerrors.InvalidArgument, "exit's argument must be an Integer", zeroPos)
		}
		code = int(i)
	} else if len(args) != 0 {
		return nil, bmerrors.Newf(bmerrors.InvalidArgument, zeroPos, "exit expects 0 or 1 arguments, got %d", len(args))
	}
	os.Exit(code)
	return nil, nil
}

// tryOrFn implements try_or(|| body, default): runs the zero-argument
// closure, returning its result, or default if evaluating it raised any
// BMath error.
func tryOrFn(args []value.Value, invoke value.Invoker) (value.Value, error) {
	if len(args) != 2 {
		return nil, bmerrors.Newf(bmerrors.InvalidArgument, zeroPos, "try_or expects 2 arguments, got %d", len(args))
	}
	if !isCallable(args[0]) {
		return nil, bmerrors.New(bmerrors.UnsupportedType, "try_or's first argument must be callable", zeroPos)
	}
	v, err := invoke(args[0], nil)
	if err != nil {
		return args[1], nil
	}
	return v, nil
}

// tryCatchFn implements try_catch(|| body, |err| handler): runs body, and on
// a BMath error invokes handler with an ErrorValue describing it.
func tryCatchFn(args []value.Value, invoke value.Invoker) (value.Value, error) {
	if len(args) != 2 {
		return nil, bmerrors.Newf(bmerrors.InvalidArgument, zeroPos, "try_catch expects 2 arguments, got %d", len(args))
	}
	if !isCallable(args[0]) || !isCallable(args[1]) {
		return nil, bmerrors.New(bmerrors.UnsupportedType, "try_catch's arguments must be callable", zeroPos)
	}
	v, err := invoke(args[0], nil)
	if err == nil {
		return v, nil
	}
	be, ok := err.(*bmerrors.Error)
	msg := err.Error()
	if ok {
		msg = be.Message
	}
	return invoke(args[1], []value.Value{value.Err(msg)})
}

// printFn implements print(value): writes the value's display rendering to
// stdout followed by a newline, returning the value unchanged so print can
// be chained inline.
func printFn(args []value.Value, _ value.Invoker) (value.Value, error) {
	if len(args) != 1 {
		return nil, bmerrors.Newf(bmerrors.InvalidArgument, zeroPos, "print expects 1 argument, got %d", len(args))
	}
	fmt.Println(args[0].String())
	return args[0], nil
}
