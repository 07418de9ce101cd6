package parser

import (
	"strconv"

	"github.com/bmath-lang/bmath/internal/ast"
	"github.com/bmath-lang/bmath/internal/bmerrors"
	"github.com/bmath-lang/bmath/internal/token"
	"github.com/bmath-lang/bmath/internal/value"
)

// precUnary sits between factor (50) and power (60): `-2^2` parses as
// `-(2^2)` (unary binds looser than `^`) while `-2*3` parses as `(-2)*3`
// (unary binds tighter than `*`).
const precUnary = 55

func parseNumber(p *Parser) (ast.Expression, error) {
	tok := p.cur
	pos := tok.Pos
	var n value.Number
	switch tok.Kind {
	case token.INT:
		i, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			return nil, bmerrors.Newf(bmerrors.InvalidNumberFormat, pos, "invalid integer literal: %s", tok.Literal)
		}
		n = value.Int(i)
	case token.REAL:
		f, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return nil, bmerrors.Newf(bmerrors.InvalidNumberFormat, pos, "invalid real literal: %s", tok.Literal)
		}
		n = value.Real(f)
	case token.IMAGINARY:
		f, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return nil, bmerrors.Newf(bmerrors.InvalidNumberFormat, pos, "invalid imaginary literal: %si", tok.Literal)
		}
		n = value.Cplx(0, f)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &ast.ValueLit{Val: value.Num(n), Position: pos}, nil
}

func parseBool(p *Parser) (ast.Expression, error) {
	pos := p.cur.Pos
	b := p.cur.Kind == token.TRUE
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &ast.ValueLit{Val: value.Bool(b), Position: pos}, nil
}

// parseIdentOrType implements spec.md §4.2's "type literal" and
// "identifier" prefix parsers together: a name matching one of the
// built-in type names (see types.go) is a Type literal; anything else is a
// plain identifier resolved by environment lookup at eval time.
func parseIdentOrType(p *Parser) (ast.Expression, error) {
	name := p.cur.Literal
	pos := p.cur.Pos
	if err := p.advance(); err != nil {
		return nil, err
	}
	if t, ok := typeNames[name]; ok {
		return &ast.ValueLit{Val: value.Typ(t), Position: pos}, nil
	}
	return &ast.Ident{Name: name, Position: pos}, nil
}

func parseGroup(p *Parser) (ast.Expression, error) {
	pos := p.cur.Pos
	if err := p.advance(); err != nil { // consume (
		return nil, err
	}
	if err := p.skipNewlines(); err != nil {
		return nil, err
	}
	inner, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	if err := p.skipNewlines(); err != nil {
		return nil, err
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	grouped := &ast.Group{Inner: inner, Position: pos}
	folded, ok := p.opt.FoldGroup(grouped)
	if ok {
		return folded, nil
	}
	return grouped, nil
}

func parseVector(p *Parser) (ast.Expression, error) {
	pos := p.cur.Pos
	if err := p.advance(); err != nil { // consume [
		return nil, err
	}
	if err := p.skipNewlines(); err != nil {
		return nil, err
	}
	var elems []ast.Expression
	for !p.curIs(token.RBRACK) {
		e, err := p.parseExpression(lowest)
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
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
	if err := p.expect(token.RBRACK); err != nil {
		return nil, err
	}
	return &ast.Vector{Elems: elems, Position: pos}, nil
}

func parseBlock(p *Parser) (ast.Expression, error) {
	pos := p.cur.Pos
	if err := p.advance(); err != nil { // consume {
		return nil, err
	}
	if err := p.skipNewlines(); err != nil {
		return nil, err
	}
	var exprs []ast.Expression
	for !p.curIs(token.RBRACE) {
		e, err := p.parseExpression(lowest)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
		if err := p.skipNewlines(); err != nil {
			return nil, err
		}
	}
	if len(exprs) == 0 {
		return nil, bmerrors.New(bmerrors.InvalidExpression, "empty block", pos)
	}
	if err := p.advance(); err != nil { // consume }
		return nil, err
	}
	return &ast.Block{Exprs: exprs, Position: pos}, nil
}

// parseTypeAnnotation expects cur to be an identifier naming a built-in
// type (see types.go) and consumes it.
func (p *Parser) parseTypeAnnotation() (value.Type, error) {
	if !p.curIs(token.IDENT) {
		return value.Type{}, bmerrors.Newf(bmerrors.MissingToken, p.cur.Pos,
			"expected a type name, found %s", p.cur.Kind)
	}
	t, ok := typeNames[p.cur.Literal]
	if !ok {
		return value.Type{}, bmerrors.Newf(bmerrors.InvalidExpression, p.cur.Pos,
			"%q is not a known type", p.cur.Literal)
	}
	if err := p.advance(); err != nil {
		return value.Type{}, err
	}
	return t, nil
}

func parseFuncDef(p *Parser) (ast.Expression, error) {
	pos := p.cur.Pos
	if err := p.advance(); err != nil { // consume |
		return nil, err
	}
	var params []value.Parameter
	for !p.curIs(token.PIPE) {
		if !p.curIs(token.IDENT) {
			return nil, bmerrors.Newf(bmerrors.MissingToken, p.cur.Pos,
				"expected parameter name, found %s", p.cur.Kind)
		}
		name := p.cur.Literal
		if err := p.advance(); err != nil {
			return nil, err
		}
		paramType := value.AnyType
		if p.curIs(token.COLON) {
			if err := p.advance(); err != nil {
				return nil, err
			}
			t, err := p.parseTypeAnnotation()
			if err != nil {
				return nil, err
			}
			paramType = t
		}
		params = append(params, value.Parameter{Name: name, Type: paramType})
		if p.curIs(token.COMMA) {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if err := p.expect(token.PIPE); err != nil {
		return nil, err
	}
	retType := value.AnyType
	hasRet := false
	if p.curIs(token.FAT_ARROW) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		t, err := p.parseTypeAnnotation()
		if err != nil {
			return nil, err
		}
		retType = t
		hasRet = true
	}
	body, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	return &ast.FuncDef{Params: params, Body: body, ReturnType: retType, HasRetType: hasRet, Position: pos}, nil
}

func parseLocal(p *Parser) (ast.Expression, error) {
	pos := p.cur.Pos
	if err := p.advance(); err != nil { // consume `local`
		return nil, err
	}
	if !p.curIs(token.IDENT) {
		return nil, bmerrors.Newf(bmerrors.MissingToken, p.cur.Pos,
			"expected identifier after local, found %s", p.cur.Kind)
	}
	name := p.cur.Literal
	if err := p.advance(); err != nil {
		return nil, err
	}
	typ := value.AnyType
	hasType := false
	if p.curIs(token.COLON) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		t, err := p.parseTypeAnnotation()
		if err != nil {
			return nil, err
		}
		typ = t
		hasType = true
	}
	if err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}
	value_, err := p.parseExpression(precAsg - 1)
	if err != nil {
		return nil, err
	}
	return &ast.Assign{Name: name, Expr: value_, IsLocal: true, Type: typ, HasType: hasType, Position: pos}, nil
}

func parseIf(p *Parser) (ast.Expression, error) {
	pos := p.cur.Pos
	p.lex.IncIfDepth(pos)
	if err := p.advance(); err != nil { // consume `if`
		return nil, err
	}
	// Newlines between branches are skipped only while the token after them
	// can continue this if, so a missing else is reported before the lexer
	// is pulled on to the end of the input with the if still open.
	skipBranchNewlines := func() error {
		for p.curIs(token.NEWLINE) && (p.peekIs(token.NEWLINE) || p.peekIs(token.ELIF) || p.peekIs(token.ELSE)) {
			if err := p.advance(); err != nil {
				return err
			}
		}
		return nil
	}
	branch, err := p.parseIfBranch()
	if err != nil {
		return nil, err
	}
	branches := []ast.IfBranch{branch}
	if err := skipBranchNewlines(); err != nil {
		return nil, err
	}
	for p.curIs(token.ELIF) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		b, err := p.parseIfBranch()
		if err != nil {
			return nil, err
		}
		branches = append(branches, b)
		if err := skipBranchNewlines(); err != nil {
			return nil, err
		}
	}
	if !p.curIs(token.ELSE) {
		p.lex.DecIfDepth()
		return nil, bmerrors.New(bmerrors.MissingToken, "if-expression requires an else branch", p.cur.Pos)
	}
	p.lex.DecIfDepth() // before the else branch is lexed past its first token
	if err := p.advance(); err != nil {
		return nil, err
	}
	elseExpr, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	ifExpr := &ast.If{Branches: branches, Else: elseExpr, Position: pos}
	if folded, ok := p.opt.FoldIf(ifExpr); ok {
		return folded, nil
	}
	return ifExpr, nil
}

func (p *Parser) parseIfBranch() (ast.IfBranch, error) {
	if err := p.expect(token.LPAREN); err != nil {
		return ast.IfBranch{}, err
	}
	if err := p.skipNewlines(); err != nil {
		return ast.IfBranch{}, err
	}
	cond, err := p.parseExpression(lowest)
	if err != nil {
		return ast.IfBranch{}, err
	}
	if err := p.skipNewlines(); err != nil {
		return ast.IfBranch{}, err
	}
	if err := p.expect(token.RPAREN); err != nil {
		return ast.IfBranch{}, err
	}
	if err := p.skipNewlines(); err != nil {
		return ast.IfBranch{}, err
	}
	then, err := p.parseExpression(lowest)
	if err != nil {
		return ast.IfBranch{}, err
	}
	return ast.IfBranch{Cond: cond, Then: then}, nil
}

func parseUnary(p *Parser) (ast.Expression, error) {
	op := ast.Neg
	if p.cur.Kind == token.BANG {
		op = ast.Not
	}
	pos := p.cur.Pos
	if err := p.advance(); err != nil {
		return nil, err
	}
	operand, err := p.parseExpression(precUnary)
	if err != nil {
		return nil, err
	}
	unary := &ast.Unary{Op: op, Operand: operand, Position: pos}
	folded, ok, err := p.opt.FoldUnary(unary)
	if err != nil {
		return nil, err
	}
	if ok {
		return folded, nil
	}
	return unary, nil
}
