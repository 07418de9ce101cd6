package ast

import (
	"testing"

	"github.com/bmath-lang/bmath/internal/token"
	"github.com/bmath-lang/bmath/internal/value"
)

func lit(n int64) Expression {
	return &ValueLit{Val: value.Num(value.Int(n))}
}

func TestBinaryStringParenthesizesOperands(t *testing.T) {
	b := &Binary{Op: Add, Left: lit(1), Right: lit(2)}
	if got := b.String(); got != "(1 + 2)" {
		t.Errorf("Binary.String() = %q, want %q", got, "(1 + 2)")
	}
}

func TestUnaryStringPrefixesOperator(t *testing.T) {
	u := &Unary{Op: Neg, Operand: lit(5)}
	if got := u.String(); got != "-5" {
		t.Errorf("Unary.String() = %q, want %q", got, "-5")
	}
	u2 := &Unary{Op: Not, Operand: &Ident{Name: "flag"}}
	if got := u2.String(); got != "!flag" {
		t.Errorf("Unary.String() = %q, want %q", got, "!flag")
	}
}

func TestVectorStringJoinsElements(t *testing.T) {
	v := &Vector{Elems: []Expression{lit(1), lit(2), lit(3)}}
	if got := v.String(); got != "[1, 2, 3]" {
		t.Errorf("Vector.String() = %q, want %q", got, "[1, 2, 3]")
	}
}

func TestAssignStringIncludesLocalPrefix(t *testing.T) {
	a := &Assign{Name: "x", Expr: lit(1), IsLocal: true}
	if got := a.String(); got != "local x = 1" {
		t.Errorf("Assign.String() = %q, want %q", got, "local x = 1")
	}
	b := &Assign{Name: "y", Expr: lit(2)}
	if got := b.String(); got != "y = 2" {
		t.Errorf("Assign.String() = %q, want %q", got, "y = 2")
	}
}

func TestFuncCallStringRendersArgs(t *testing.T) {
	c := &FuncCall{Fn: &Ident{Name: "f"}, Args: []Expression{lit(1), lit(2)}}
	if got := c.String(); got != "f(1, 2)" {
		t.Errorf("FuncCall.String() = %q, want %q", got, "f(1, 2)")
	}
}

func TestFuncDefStringRendersParamNamesOnly(t *testing.T) {
	fd := &FuncDef{
		Params: []value.Parameter{{Name: "a"}, {Name: "b"}},
		Body:   &Binary{Op: Add, Left: &Ident{Name: "a"}, Right: &Ident{Name: "b"}},
	}
	if got := fd.String(); got != "|a, b| (a + b)" {
		t.Errorf("FuncDef.String() = %q, want %q", got, "|a, b| (a + b)")
	}
}

func TestIfStringChainsElifAndElse(t *testing.T) {
	n := &If{
		Branches: []IfBranch{
			{Cond: &Ident{Name: "a"}, Then: lit(1)},
			{Cond: &Ident{Name: "b"}, Then: lit(2)},
		},
		Else: lit(3),
	}
	want := "if(a) 1 elif(b) 2 else 3"
	if got := n.String(); got != want {
		t.Errorf("If.String() = %q, want %q", got, want)
	}
}

func TestBlockStringJoinsWithSemicolons(t *testing.T) {
	b := &Block{Exprs: []Expression{lit(1), lit(2)}}
	if got := b.String(); got != "{1; 2}" {
		t.Errorf("Block.String() = %q, want %q", got, "{1; 2}")
	}
}

func TestGroupStringWrapsParens(t *testing.T) {
	g := &Group{Inner: lit(1)}
	if got := g.String(); got != "(1)" {
		t.Errorf("Group.String() = %q, want %q", got, "(1)")
	}
}

func TestTypeCheckStringUsesIsKeyword(t *testing.T) {
	tc := &TypeCheck{Expr: &Ident{Name: "x"}, Target: &ValueLit{Val: value.Typ(value.Of(value.IntegerType))}}
	if got := tc.String(); got != "x is Integer" {
		t.Errorf("TypeCheck.String() = %q, want %q", got, "x is Integer")
	}
}

func TestPosReturnsOwnPosition(t *testing.T) {
	pos := token.Position{Line: 4, Column: 2}
	n := &Ident{Name: "x", Position: pos}
	if n.Pos() != pos {
		t.Errorf("Pos() = %v, want %v", n.Pos(), pos)
	}
}
