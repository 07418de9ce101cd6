package parser

import (
	"errors"

	"github.com/bmath-lang/bmath/internal/ast"
	"github.com/bmath-lang/bmath/internal/bmerrors"
	"github.com/bmath-lang/bmath/internal/token"
	"github.com/bmath-lang/bmath/internal/value"
)

// Level selects which optimization passes the Optimizer runs, per spec.md
// §4.3.
type Level int

const (
	LevelNone Level = iota
	LevelBasic
	LevelFull
)

// ParseLevel maps a CLI-facing string ("none"/"basic"/"full") to a Level.
func ParseLevel(s string) (Level, bool) {
	switch s {
	case "none":
		return LevelNone, true
	case "basic":
		return LevelBasic, true
	case "full":
		return LevelFull, true
	default:
		return LevelNone, false
	}
}

// Optimizer runs parse-time folding passes over freshly built AST nodes.
// The parser calls the matching Fold* method (FoldBinary, FoldUnary, FoldIf,
// FoldGroup, FoldTypeCheck) after constructing each such node;
// on success the returned Expression replaces the new node in the tree. No
// pass here changes observable runtime semantics (spec.md §4.3's "must
// preserve observable runtime semantics" rule), including error sites: a
// folding arithmetic error is re-raised as a parse-time error attached to
// the folded node's position rather than deferred to evaluation.
type Optimizer struct {
	Level         Level
	PreserveGroup bool // disables RemoveGrouping, for pretty-print mode
}

// NewOptimizer creates an Optimizer at the given Level.
func NewOptimizer(level Level) *Optimizer {
	return &Optimizer{Level: level}
}

// FoldBinary attempts to fold a freshly built Binary node. Returns the
// original node unchanged (ok=false) when no fold applies; ok=true with a
// replacement Expression when it does. err is non-nil only when an operand
// pair necessarily raises an arithmetic error during the fold itself (e.g.
// `1/0` constant-folds straight to a parse error).
func (o *Optimizer) FoldBinary(n *ast.Binary) (ast.Expression, bool, error) {
	if o.Level == LevelNone {
		return n, false, nil
	}

	if lit, ok := foldNumberBinary(n); ok {
		return lit.expr, lit.err == nil, lit.err
	}

	if o.Level < LevelFull {
		return n, false, nil
	}

	if lit, ok := foldBoolBinary(n); ok {
		return lit, true, nil
	}
	if lit, ok := foldComparisonBinary(n); ok {
		return lit, true, nil
	}
	return n, false, nil
}

// FoldUnary attempts to fold a freshly built Unary node.
func (o *Optimizer) FoldUnary(n *ast.Unary) (ast.Expression, bool, error) {
	if o.Level == LevelNone {
		return n, false, nil
	}
	lit, isLit := n.Operand.(*ast.ValueLit)
	if !isLit {
		return n, false, nil
	}
	switch n.Op {
	case ast.Neg:
		num, ok := lit.Val.(value.NumberValue)
		if !ok {
			return n, false, nil
		}
		return &ast.ValueLit{Val: value.Num(num.N.Neg()), Position: n.Position}, true, nil
	case ast.Not:
		if o.Level < LevelFull {
			return n, false, nil
		}
		b, ok := lit.Val.(value.BoolValue)
		if !ok {
			return n, false, nil
		}
		return &ast.ValueLit{Val: value.Bool(!b.B), Position: n.Position}, true, nil
	}
	return n, false, nil
}

// FoldTypeCheck implements TypeCheckSimplification: `expr is Any` ⇒ `true`,
// regardless of whether expr itself is constant.
func (o *Optimizer) FoldTypeCheck(n *ast.TypeCheck) (ast.Expression, bool) {
	if o.Level < LevelFull {
		return n, false
	}
	lit, ok := n.Target.(*ast.ValueLit)
	if !ok {
		return n, false
	}
	tv, ok := lit.Val.(value.TypeValue)
	if !ok {
		return n, false
	}
	if tv.T.Identical(value.AnyType) {
		return &ast.ValueLit{Val: value.Bool(true), Position: n.Position}, true
	}
	return n, false
}

// FoldIf implements ConditionalSimplification: branches with a constant
// false condition are dropped; if a branch's condition is constant true,
// every branch after it and the original else are dropped and its Then
// becomes the new else. Branches before it with non-constant conditions are
// kept; when there are none, the whole expression reduces to that Then.
// Only conditions that are Boolean literals (foldConstBool) count as
// constant.
func (o *Optimizer) FoldIf(n *ast.If) (ast.Expression, bool) {
	if o.Level < LevelFull {
		return n, false
	}
	kept := make([]ast.IfBranch, 0, len(n.Branches))
	for _, b := range n.Branches {
		if bv, isConst := foldConstBool(b.Cond); isConst {
			if !bv {
				continue // drop: provably never taken
			}
			// Constant-true: everything from here on is unreachable.
			if len(kept) == 0 {
				return b.Then, true
			}
			kept = append(kept, b)
			return &ast.If{Branches: kept, Else: b.Then, Position: n.Position}, true
		}
		kept = append(kept, b)
	}
	if len(kept) == len(n.Branches) {
		return n, false
	}
	return &ast.If{Branches: kept, Else: n.Else, Position: n.Position}, true
}

func foldConstBool(e ast.Expression) (bool, bool) {
	lit, ok := e.(*ast.ValueLit)
	if !ok {
		return false, false
	}
	b, ok := lit.Val.(value.BoolValue)
	return b.B, ok
}

// FoldGroup implements RemoveGrouping: `(e)` unwraps to `e`, unless
// PreserveGroup is set (pretty-print mode needs the parens back).
func (o *Optimizer) FoldGroup(n *ast.Group) (ast.Expression, bool) {
	if o.Level < LevelFull || o.PreserveGroup {
		return n, false
	}
	return n.Inner, true
}

type binFoldResult struct {
	expr ast.Expression
	err  error
}

// foldNumberBinary implements ConstantFolding for arithmetic operators over
// two Number literals. Division/modulo-by-zero and modulo-of-complex raise
// at fold time, per the "parse-time error promotion" design note.
func foldNumberBinary(n *ast.Binary) (binFoldResult, bool) {
	l, lok := n.Left.(*ast.ValueLit)
	r, rok := n.Right.(*ast.ValueLit)
	if !lok || !rok {
		return binFoldResult{}, false
	}
	ln, lok := l.Val.(value.NumberValue)
	rn, rok := r.Val.(value.NumberValue)
	if !lok || !rok {
		return binFoldResult{}, false
	}

	var result value.Number
	var err error
	switch n.Op {
	case ast.Add:
		result, err = ln.N.Add(rn.N)
	case ast.Sub:
		result, err = ln.N.Sub(rn.N)
	case ast.Mul:
		result, err = ln.N.Mul(rn.N)
	case ast.Div:
		result, err = ln.N.Div(rn.N)
	case ast.Mod:
		result, err = ln.N.Mod(rn.N)
	case ast.Pow:
		result, err = ln.N.Pow(rn.N)
	default:
		return binFoldResult{}, false
	}
	if err != nil {
		return binFoldResult{expr: n, err: wrapArithError(err, n.OpPos)}, true
	}
	return binFoldResult{expr: &ast.ValueLit{Val: value.Num(result), Position: n.Position}}, true
}

// wrapArithError promotes a value-layer sentinel arithmetic error into a
// positioned parse-time *bmerrors.Error, attached to the folded operator's
// position per the "parse-time error promotion" design note.
func wrapArithError(err error, pos token.Position) error {
	switch {
	case errors.Is(err, value.ErrZeroDivision):
		return bmerrors.New(bmerrors.ZeroDivision, err.Error(), pos)
	case errors.Is(err, value.ErrComplexModulus):
		return bmerrors.New(bmerrors.ComplexModulus, err.Error(), pos)
	default:
		return bmerrors.New(bmerrors.InvalidArgument, err.Error(), pos)
	}
}

func foldBoolBinary(n *ast.Binary) (ast.Expression, bool) {
	if n.Op != ast.And && n.Op != ast.Or {
		return nil, false
	}
	// Short-circuit when the left operand alone already decides the
	// result, regardless of what the right operand is: `false & x` and
	// `true | x` never evaluate x at runtime (evalShortCircuit), so
	// folding to the decided literal drops x without changing semantics.
	if l, ok := n.Left.(*ast.ValueLit); ok {
		if lb, ok := l.Val.(value.BoolValue); ok {
			if n.Op == ast.And && !lb.B {
				return &ast.ValueLit{Val: value.Bool(false), Position: n.Position}, true
			}
			if n.Op == ast.Or && lb.B {
				return &ast.ValueLit{Val: value.Bool(true), Position: n.Position}, true
			}
		}
	}
	l, lok := n.Left.(*ast.ValueLit)
	r, rok := n.Right.(*ast.ValueLit)
	if !lok || !rok {
		return nil, false
	}
	lb, lok := l.Val.(value.BoolValue)
	rb, rok := r.Val.(value.BoolValue)
	if !lok || !rok {
		return nil, false
	}
	var result bool
	if n.Op == ast.And {
		result = lb.B && rb.B
	} else {
		result = lb.B || rb.B
	}
	return &ast.ValueLit{Val: value.Bool(result), Position: n.Position}, true
}

func foldComparisonBinary(n *ast.Binary) (ast.Expression, bool) {
	var cmp func(value.NumberValue, value.NumberValue) (value.Value, bool)
	switch n.Op {
	case ast.Eq:
		cmp = func(a, b value.NumberValue) (value.Value, bool) { return value.Bool(a.N.Equal(b.N)), true }
	case ast.Ne:
		cmp = func(a, b value.NumberValue) (value.Value, bool) { return value.Bool(!a.N.Equal(b.N)), true }
	case ast.Lt, ast.Le, ast.Gt, ast.Ge:
		cmp = func(a, b value.NumberValue) (value.Value, bool) {
			c, err := a.N.Compare(b.N)
			if err != nil {
				return nil, false
			}
			switch n.Op {
			case ast.Lt:
				return value.Bool(c < 0), true
			case ast.Le:
				return value.Bool(c <= 0), true
			case ast.Gt:
				return value.Bool(c > 0), true
			default:
				return value.Bool(c >= 0), true
			}
		}
	default:
		return nil, false
	}
	l, lok := n.Left.(*ast.ValueLit)
	r, rok := n.Right.(*ast.ValueLit)
	if !lok || !rok {
		return nil, false
	}
	ln, lok := l.Val.(value.NumberValue)
	rn, rok := r.Val.(value.NumberValue)
	if !lok || !rok {
		return nil, false
	}
	v, ok := cmp(ln, rn)
	if !ok {
		return nil, false
	}
	return &ast.ValueLit{Val: v, Position: n.Position}, true
}
