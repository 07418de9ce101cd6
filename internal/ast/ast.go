// Package ast defines BMath's Expression tree, following the teacher's
// sum-type-via-tagged-struct approach (internal/ast/ast.go): each variant is
// its own small struct implementing a shared Expression interface, rather
// than one universal node with optional fields.
package ast

import (
	"strings"

	"github.com/bmath-lang/bmath/internal/token"
	"github.com/bmath-lang/bmath/internal/value"
)

// Expression is any BMath AST node; every variant carries its own source
// Position for error reporting.
type Expression interface {
	Pos() token.Position
	String() string
	expressionNode()
}

// ValueLit is a literal that was already reduced to a runtime Value at
// parse time: numbers, true/false, and type literals (e.g. `Integer`).
type ValueLit struct {
	Val      value.Value
	Position token.Position
}

func (n *ValueLit) Pos() token.Position { return n.Position }
func (n *ValueLit) String() string      { return n.Val.String() }
func (*ValueLit) expressionNode()       {}

// Group is a parenthesized sub-expression. The optimizer's RemoveGrouping
// pass may unwrap it away unless pretty-print mode asks to preserve parens.
type Group struct {
	Inner    Expression
	Position token.Position
}

func (n *Group) Pos() token.Position { return n.Position }
func (n *Group) String() string      { return "(" + n.Inner.String() + ")" }
func (*Group) expressionNode()       {}

// UnaryOp distinguishes BMath's two prefix operators.
type UnaryOp int

const (
	Neg UnaryOp = iota
	Not
)

func (op UnaryOp) String() string {
	if op == Not {
		return "!"
	}
	return "-"
}

// Unary is a prefix `-x` or `!x`.
type Unary struct {
	Op       UnaryOp
	Operand  Expression
	Position token.Position
}

func (n *Unary) Pos() token.Position { return n.Position }
func (n *Unary) String() string      { return n.Op.String() + n.Operand.String() }
func (*Unary) expressionNode()       {}

// BinaryOp enumerates every infix operator in BMath's precedence table that
// isn't call/chain/assignment (those get their own node types: FuncCall,
// Chain is desugared into FuncCall, Assign).
type BinaryOp int

const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
	Mod
	Pow
	Eq
	Ne
	Lt
	Le
	Gt
	Ge
	And
	Or
)

var binaryOpLiterals = map[BinaryOp]string{
	Add: "+", Sub: "-", Mul: "*", Div: "/", Mod: "%", Pow: "^",
	Eq: "==", Ne: "!=", Lt: "<", Le: "<=", Gt: ">", Ge: ">=",
	And: "&", Or: "|",
}

func (op BinaryOp) String() string { return binaryOpLiterals[op] }

// Binary is any two-operand arithmetic, comparison, or logical expression.
// OpPos is the position of the operator token itself, used to anchor errors
// raised by the operation (distinct from Position, the position of the
// whole expression which the parser sets to the left operand's start).
type Binary struct {
	Op       BinaryOp
	Left     Expression
	Right    Expression
	OpPos    token.Position
	Position token.Position
}

func (n *Binary) Pos() token.Position { return n.Position }
func (n *Binary) String() string {
	return "(" + n.Left.String() + " " + n.Op.String() + " " + n.Right.String() + ")"
}
func (*Binary) expressionNode() {}

// TypeCheck is `expr is TypeExpr`, evaluated by testing expr's runtime type
// against the Type that TypeExpr evaluates to.
type TypeCheck struct {
	Expr     Expression
	Target   Expression
	Position token.Position
}

func (n *TypeCheck) Pos() token.Position { return n.Position }
func (n *TypeCheck) String() string      { return n.Expr.String() + " is " + n.Target.String() }
func (*TypeCheck) expressionNode()       {}

// Vector is a `[e1, e2, ...]` literal.
type Vector struct {
	Elems    []Expression
	Position token.Position
}

func (n *Vector) Pos() token.Position { return n.Position }
func (n *Vector) String() string {
	parts := make([]string, len(n.Elems))
	for i, e := range n.Elems {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (*Vector) expressionNode() {}

// Ident is a bare identifier reference, resolved by environment lookup.
type Ident struct {
	Name     string
	Position token.Position
}

func (n *Ident) Pos() token.Position { return n.Position }
func (n *Ident) String() string      { return n.Name }
func (*Ident) expressionNode()       {}

// Assign is `name = expr` or `local name[:T] = expr`. Type is advisory: the
// interpreter never narrows on it.
type Assign struct {
	Name     string
	Expr     Expression
	IsLocal  bool
	Type     value.Type
	HasType  bool
	Position token.Position
}

func (n *Assign) Pos() token.Position { return n.Position }
func (n *Assign) String() string {
	prefix := ""
	if n.IsLocal {
		prefix = "local "
	}
	return prefix + n.Name + " = " + n.Expr.String()
}
func (*Assign) expressionNode() {}

// FuncDef is a function literal `|p1[:T1], ...| [=> Tret] body`.
type FuncDef struct {
	Params     []value.Parameter
	Body       Expression
	ReturnType value.Type
	HasRetType bool
	Position   token.Position
}

func (n *FuncDef) Pos() token.Position { return n.Position }
func (n *FuncDef) String() string {
	names := make([]string, len(n.Params))
	for i, p := range n.Params {
		names[i] = p.Name
	}
	return "|" + strings.Join(names, ", ") + "| " + n.Body.String()
}
func (*FuncDef) expressionNode() {}

// FuncCall is `fn(arg1, arg2, ...)`, also used for the desugared form of the
// chain operator (`x -> f(a)` parses directly into FuncCall{f, [x, a]}).
type FuncCall struct {
	Fn       Expression
	Args     []Expression
	Position token.Position
}

func (n *FuncCall) Pos() token.Position { return n.Position }
func (n *FuncCall) String() string {
	parts := make([]string, len(n.Args))
	for i, a := range n.Args {
		parts[i] = a.String()
	}
	return n.Fn.String() + "(" + strings.Join(parts, ", ") + ")"
}
func (*FuncCall) expressionNode() {}

// Block is `{e1 \n e2 \n ... en}`, its own child scope; evaluates to the
// last expression's value.
type Block struct {
	Exprs    []Expression
	Position token.Position
}

func (n *Block) Pos() token.Position { return n.Position }
func (n *Block) String() string {
	parts := make([]string, len(n.Exprs))
	for i, e := range n.Exprs {
		parts[i] = e.String()
	}
	return "{" + strings.Join(parts, "; ") + "}"
}
func (*Block) expressionNode() {}

// IfBranch pairs one if/elif condition with its then-expression.
type IfBranch struct {
	Cond Expression
	Then Expression
}

// If is `if(cond) then (elif(cond) then)* else elseBranch` — else is
// mandatory, per spec.md §4.2.
type If struct {
	Branches []IfBranch
	Else     Expression
	Position token.Position
}

func (n *If) Pos() token.Position { return n.Position }
func (n *If) String() string {
	var sb strings.Builder
	for i, b := range n.Branches {
		if i == 0 {
			sb.WriteString("if(")
		} else {
			sb.WriteString(" elif(")
		}
		sb.WriteString(b.Cond.String())
		sb.WriteString(") ")
		sb.WriteString(b.Then.String())
	}
	sb.WriteString(" else ")
	sb.WriteString(n.Else.String())
	return sb.String()
}
func (*If) expressionNode() {}
