// Package interp implements BMath's tree-walking interpreter: evaluation of
// an ast.Expression against a lexical environment.Environment, user-defined
// closure dispatch, the callable-Type cast protocol, and positional stack
// trace construction as errors unwind (internal/bmerrors).
//
// Binary/unary arithmetic, comparison, and logical operators are delegated
// to internal/stdlib's plain Go functions (Add, Sub, ..., Compare), which the
// interpreter calls directly — see that package's doc comment for why this
// keeps the dependency graph acyclic. == and != are answered by value.Equal
// instead. The interpreter itself only special-
// cases the two operators (`&`, `|`) that must short-circuit, since stdlib's
// shared helpers always receive both operands already evaluated.
package interp

import (
	"github.com/bmath-lang/bmath/internal/ast"
	"github.com/bmath-lang/bmath/internal/bmerrors"
	"github.com/bmath-lang/bmath/internal/environment"
	"github.com/bmath-lang/bmath/internal/stdlib"
	"github.com/bmath-lang/bmath/internal/token"
	"github.com/bmath-lang/bmath/internal/value"
)

// LabeledValue is the result of one top-level evaluation: the bound name for
// a top-level Assign, or an empty Label for any other expression.
type LabeledValue struct {
	Label string
	Value value.Value
}

// Interpreter walks ast.Expression trees against a root Environment preloaded
// with stdlib by stdlib.Register.
type Interpreter struct {
	Root *environment.Environment
}

// New creates an Interpreter with a fresh root environment, preloaded with
// the standard library.
func New() *Interpreter {
	root := environment.New()
	stdlib.Register(root)
	return &Interpreter{Root: root}
}

// Eval evaluates a single top-level expression against env (the Interpreter's
// Root if env is nil), returning a LabeledValue per spec.md §4.4.
func (ip *Interpreter) Eval(expr ast.Expression, env *environment.Environment) (LabeledValue, error) {
	if env == nil {
		env = ip.Root
	}
	v, err := ip.evalExpr(expr, env)
	if err != nil {
		return LabeledValue{}, err
	}
	if a, ok := expr.(*ast.Assign); ok {
		return LabeledValue{Label: a.Name, Value: v}, nil
	}
	return LabeledValue{Value: v}, nil
}

// evalExpr is the recursive workhorse. On any *bmerrors.Error bubbling up
// from a sub-evaluation, it pushes expr's own position before returning,
// building the innermost-first stack trace spec.md §7 describes.
func (ip *Interpreter) evalExpr(expr ast.Expression, env *environment.Environment) (value.Value, error) {
	v, err := ip.dispatch(expr, env)
	if err != nil {
		if be, ok := err.(*bmerrors.Error); ok {
			be.Push(expr.Pos())
		}
		return nil, err
	}
	return v, nil
}

func (ip *Interpreter) dispatch(expr ast.Expression, env *environment.Environment) (value.Value, error) {
	switch n := expr.(type) {
	case *ast.ValueLit:
		return n.Val, nil
	case *ast.Group:
		return ip.evalExpr(n.Inner, env)
	case *ast.Unary:
		return ip.evalUnary(n, env)
	case *ast.Binary:
		return ip.evalBinary(n, env)
	case *ast.TypeCheck:
		return ip.evalTypeCheck(n, env)
	case *ast.Vector:
		return ip.evalVector(n, env)
	case *ast.Ident:
		return ip.evalIdent(n, env)
	case *ast.Assign:
		return ip.evalAssign(n, env)
	case *ast.FuncDef:
		return ip.evalFuncDef(n, env)
	case *ast.FuncCall:
		return ip.evalFuncCall(n, env)
	case *ast.Block:
		return ip.evalBlock(n, env)
	case *ast.If:
		return ip.evalIf(n, env)
	default:
		return nil, bmerrors.Newf(bmerrors.InvalidExpression, expr.Pos(), "cannot evaluate %T", expr)
	}
}

func (ip *Interpreter) evalUnary(n *ast.Unary, env *environment.Environment) (value.Value, error) {
	operand, err := ip.evalExpr(n.Operand, env)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case ast.Not:
		return stdlib.Not(operand, n.Position)
	default:
		return stdlib.Neg(operand, n.Position)
	}
}

var compareOps = map[ast.BinaryOp]func(cmp int) bool{
	ast.Lt: func(c int) bool { return c < 0 },
	ast.Le: func(c int) bool { return c <= 0 },
	ast.Gt: func(c int) bool { return c > 0 },
	ast.Ge: func(c int) bool { return c >= 0 },
}

func (ip *Interpreter) evalBinary(n *ast.Binary, env *environment.Environment) (value.Value, error) {
	// `&` and `|` short-circuit, so the right operand is evaluated lazily and
	// must not go through stdlib's eager arithmetic helpers.
	if n.Op == ast.And || n.Op == ast.Or {
		return ip.evalShortCircuit(n, env)
	}

	left, err := ip.evalExpr(n.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := ip.evalExpr(n.Right, env)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case ast.Add:
		return stdlib.Add(left, right, n.OpPos)
	case ast.Sub:
		return stdlib.Sub(left, right, n.OpPos)
	case ast.Mul:
		return stdlib.Mul(left, right, n.OpPos)
	case ast.Div:
		return stdlib.Div(left, right, n.OpPos)
	case ast.Mod:
		return stdlib.Mod(left, right, n.OpPos)
	case ast.Pow:
		return stdlib.Pow(left, right, n.OpPos)
	case ast.Eq:
		return value.Bool(value.Equal(left, right)), nil
	case ast.Ne:
		return value.Bool(!value.Equal(left, right)), nil
	case ast.Lt, ast.Le, ast.Gt, ast.Ge:
		return stdlib.Compare(left, right, n.OpPos, compareOps[n.Op])
	default:
		return nil, bmerrors.Newf(bmerrors.InvalidExpression, n.OpPos, "unknown binary operator %s", n.Op)
	}
}

func (ip *Interpreter) evalShortCircuit(n *ast.Binary, env *environment.Environment) (value.Value, error) {
	left, err := ip.evalExpr(n.Left, env)
	if err != nil {
		return nil, err
	}
	lb, ok := left.(value.BoolValue)
	if !ok {
		return nil, bmerrors.Newf(bmerrors.UnsupportedType, n.OpPos, "%s requires Boolean operands, got %s", n.Op, left.TypeOf())
	}
	if n.Op == ast.And && !lb.B {
		return value.Bool(false), nil
	}
	if n.Op == ast.Or && lb.B {
		return value.Bool(true), nil
	}
	right, err := ip.evalExpr(n.Right, env)
	if err != nil {
		return nil, err
	}
	rb, ok := right.(value.BoolValue)
	if !ok {
		return nil, bmerrors.Newf(bmerrors.UnsupportedType, n.OpPos, "%s requires Boolean operands, got %s", n.Op, right.TypeOf())
	}
	return value.Bool(rb.B), nil
}

func (ip *Interpreter) evalTypeCheck(n *ast.TypeCheck, env *environment.Environment) (value.Value, error) {
	v, err := ip.evalExpr(n.Expr, env)
	if err != nil {
		return nil, err
	}
	target, err := ip.evalExpr(n.Target, env)
	if err != nil {
		return nil, err
	}
	tv, ok := target.(value.TypeValue)
	if !ok {
		return nil, bmerrors.Newf(bmerrors.UnsupportedType, n.Position, "right side of `is` must be a Type, got %s", target.TypeOf())
	}
	if nv, ok := v.(value.NumberValue); ok {
		return value.Bool(value.NumberFitsType(nv.N.Kind, tv.T)), nil
	}
	return value.Bool(v.TypeOf().IsSubtypeOf(tv.T)), nil
}

func (ip *Interpreter) evalVector(n *ast.Vector, env *environment.Environment) (value.Value, error) {
	elems := make([]value.Value, len(n.Elems))
	for i, e := range n.Elems {
		v, err := ip.evalExpr(e, env)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return value.Vec(value.NewVector(elems)), nil
}

func (ip *Interpreter) evalIdent(n *ast.Ident, env *environment.Environment) (value.Value, error) {
	v, ok := env.Get(n.Name)
	if !ok {
		return nil, bmerrors.Newf(bmerrors.UndefinedVariable, n.Position, "undefined variable %q", n.Name)
	}
	return v.(value.Value), nil
}

func (ip *Interpreter) evalAssign(n *ast.Assign, env *environment.Environment) (value.Value, error) {
	v, err := ip.evalExpr(n.Expr, env)
	if err != nil {
		return nil, err
	}
	if n.IsLocal {
		env.Define(n.Name, v)
		return v, nil
	}
	if env.IsReservedAtRoot(n.Name) {
		return nil, bmerrors.Newf(bmerrors.ReservedName, n.Position, "%q is reserved and cannot be reassigned", n.Name)
	}
	env.Set(n.Name, v)
	return v, nil
}

func (ip *Interpreter) evalFuncDef(n *ast.FuncDef, env *environment.Environment) (value.Value, error) {
	return value.Fn(&value.Closure{
		Body:       n.Body,
		Env:        env,
		Params:     n.Params,
		ReturnType: n.ReturnType,
	}), nil
}

func (ip *Interpreter) evalBlock(n *ast.Block, env *environment.Environment) (value.Value, error) {
	child := environment.NewEnclosed(env)
	var result value.Value
	for _, e := range n.Exprs {
		v, err := ip.evalExpr(e, child)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

func (ip *Interpreter) evalIf(n *ast.If, env *environment.Environment) (value.Value, error) {
	for _, b := range n.Branches {
		cv, err := ip.evalExpr(b.Cond, env)
		if err != nil {
			return nil, err
		}
		bv, ok := cv.(value.BoolValue)
		if !ok {
			return nil, bmerrors.Newf(bmerrors.UnsupportedType, b.Cond.Pos(), "if condition must be Boolean, got %s", cv.TypeOf())
		}
		if bv.B {
			return ip.evalExpr(b.Then, env)
		}
	}
	return ip.evalExpr(n.Else, env)
}

func (ip *Interpreter) evalFuncCall(n *ast.FuncCall, env *environment.Environment) (value.Value, error) {
	fn, err := ip.evalExpr(n.Fn, env)
	if err != nil {
		return nil, err
	}
	args := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := ip.evalExpr(a, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return ip.Call(fn, args, n.Position)
}

// Call dispatches fn(args) per spec.md §4.4.1/§4.4.2: a Type value triggers a
// cast, a Function value a closure call, a NativeFunc a host call. It is
// exposed (not just invoked internally by evalFuncCall) so it can back the
// value.Invoker passed to every native function, letting natives like map's
// or reduce's implementation call back into user closures.
func (ip *Interpreter) Call(fn value.Value, args []value.Value, pos token.Position) (value.Value, error) {
	switch f := fn.(type) {
	case value.TypeValue:
		if len(args) != 1 {
			return nil, bmerrors.Newf(bmerrors.InvalidArgument, pos, "%s cast expects 1 argument, got %d", f.T, len(args))
		}
		return castTo(f.T, args[0], pos)
	case value.FunctionValue:
		return ip.callClosure(f.Fn, args, pos)
	case value.NativeFuncValue:
		return f.Fn(args, ip.invoker())
	default:
		return nil, bmerrors.Newf(bmerrors.UnsupportedType, pos, "%s is not callable", fn.TypeOf())
	}
}

func (ip *Interpreter) invoker() value.Invoker {
	return func(fn value.Value, args []value.Value) (value.Value, error) {
		return ip.Call(fn, args, token.Position{})
	}
}

func (ip *Interpreter) callClosure(c *value.Closure, args []value.Value, pos token.Position) (value.Value, error) {
	if len(args) != len(c.Params) {
		return nil, bmerrors.Newf(bmerrors.InvalidArgument, pos, "function expects %d argument(s), got %d", len(c.Params), len(args))
	}
	child := environment.NewEnclosed(c.Env)
	for i, p := range c.Params {
		child.Define(p.Name, args[i])
	}
	body, ok := c.Body.(ast.Expression)
	if !ok {
		return nil, bmerrors.New(bmerrors.InvalidExpression, "closure body is not an Expression", pos)
	}
	return ip.evalExpr(body, child)
}
