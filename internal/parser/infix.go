package parser

import (
	"github.com/bmath-lang/bmath/internal/ast"
	"github.com/bmath-lang/bmath/internal/bmerrors"
	"github.com/bmath-lang/bmath/internal/token"
)

var binaryOps = map[token.Kind]ast.BinaryOp{
	token.PLUS:       ast.Add,
	token.MINUS:      ast.Sub,
	token.STAR:       ast.Mul,
	token.SLASH:      ast.Div,
	token.PERCENT:    ast.Mod,
	token.CARET:      ast.Pow,
	token.EQ:         ast.Eq,
	token.NOT_EQ:     ast.Ne,
	token.LESS:       ast.Lt,
	token.LESS_EQ:    ast.Le,
	token.GREATER:    ast.Gt,
	token.GREATER_EQ: ast.Ge,
	token.AMP:        ast.And,
	token.PIPE:       ast.Or,
}

// rightAssoc holds operators whose right operand is parsed at precedence-1
// (only `^`, per spec.md §4.2: "right-assoc" on the power row).
var rightAssoc = map[token.Kind]bool{
	token.CARET: true,
}

func parseBinary(p *Parser, left ast.Expression) (ast.Expression, error) {
	opTok := p.cur
	op := binaryOps[opTok.Kind]
	prec := precedenceOf(opTok.Kind)
	if err := p.advance(); err != nil {
		return nil, err
	}
	rightMin := prec
	if rightAssoc[opTok.Kind] {
		rightMin = prec - 1
	}
	right, err := p.parseExpression(rightMin)
	if err != nil {
		return nil, err
	}
	bin := &ast.Binary{Op: op, Left: left, Right: right, OpPos: opTok.Pos, Position: left.Pos()}
	folded, ok, err := p.opt.FoldBinary(bin)
	if err != nil {
		return nil, err
	}
	if ok {
		return folded, nil
	}
	return bin, nil
}

// parseTypeCheck handles `expr is TypeExpr`. The right-hand side is parsed
// at precEq so a further `is`/`==` doesn't silently chain into it.
func parseTypeCheck(p *Parser, left ast.Expression) (ast.Expression, error) {
	if err := p.advance(); err != nil { // consume `is`
		return nil, err
	}
	target, err := p.parseExpression(precEq)
	if err != nil {
		return nil, err
	}
	tc := &ast.TypeCheck{Expr: left, Target: target, Position: left.Pos()}
	if folded, ok := p.opt.FoldTypeCheck(tc); ok {
		return folded, nil
	}
	return tc, nil
}

func parseCall(p *Parser, left ast.Expression) (ast.Expression, error) {
	if err := p.advance(); err != nil { // consume (
		return nil, err
	}
	if err := p.skipNewlines(); err != nil {
		return nil, err
	}
	var args []ast.Expression
	for !p.curIs(token.RPAREN) {
		arg, err := p.parseExpression(lowest)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if err := p.skipNewlines(); err != nil {
			return nil, err
		}
		if p.curIs(token.COMMA) {
			if err := p.advance(); err != nil {
				return nil, err
			}
			if err := p.skipNewlines(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.FuncCall{Fn: left, Args: args, Position: left.Pos()}, nil
}

// parseChain desugars `x -> f(a, b)` into `f(x, a, b)` and bare `x -> f`
// into `f(x)`, per spec.md §4.2's pipe-style chain operator. Parsing the
// right-hand side at precChn (< precCall) lets a trailing `(...)` bind as
// part of that right-hand expression, so it arrives here already a
// *ast.FuncCall when the target was itself called.
func parseChain(p *Parser, left ast.Expression) (ast.Expression, error) {
	if err := p.advance(); err != nil { // consume ->
		return nil, err
	}
	right, err := p.parseExpression(precChn)
	if err != nil {
		return nil, err
	}
	if fc, ok := right.(*ast.FuncCall); ok {
		args := append([]ast.Expression{left}, fc.Args...)
		return &ast.FuncCall{Fn: fc.Fn, Args: args, Position: left.Pos()}, nil
	}
	return &ast.FuncCall{Fn: right, Args: []ast.Expression{left}, Position: left.Pos()}, nil
}

// parseAssign handles `name = expr`; the left-hand side must already have
// parsed as a bare Ident (type literals and other expressions are rejected
// here rather than at eval time, per types.go's design note).
func parseAssign(p *Parser, left ast.Expression) (ast.Expression, error) {
	ident, ok := left.(*ast.Ident)
	if !ok {
		return nil, bmerrors.New(bmerrors.InvalidExpression, "left-hand side of = must be an identifier", left.Pos())
	}
	if err := p.advance(); err != nil { // consume =
		return nil, err
	}
	value_, err := p.parseExpression(precAsg - 1) // right-assoc
	if err != nil {
		return nil, err
	}
	return &ast.Assign{Name: ident.Name, Expr: value_, IsLocal: false, Position: ident.Position}, nil
}
