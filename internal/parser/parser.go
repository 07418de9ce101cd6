// Package parser implements BMath's Pratt (top-down operator-precedence)
// parser and its parse-time Optimizer, following the teacher's design
// (internal/parser/parser.go): a precedence table plus prefix/infix
// function maps keyed by token.Kind, with parseExpression doing the
// standard precedence-climbing loop.
package parser

import (
	"github.com/bmath-lang/bmath/internal/ast"
	"github.com/bmath-lang/bmath/internal/bmerrors"
	"github.com/bmath-lang/bmath/internal/bmlexer"
	"github.com/bmath-lang/bmath/internal/token"
)

// Precedence levels, per spec.md §4.2's table (higher binds tighter).
const (
	lowest   = 0
	precAsg  = 5  // =
	precOr   = 15 // |
	precAnd  = 20 // &
	precEq   = 25 // == != is
	precOrd  = 30 // < <= > >=
	precTerm = 40 // + -
	precFac  = 50 // * / %
	precPow  = 60 // ^
	precChn  = 75 // ->
	precCall = 80 // ( after expr
)

var precedences = map[token.Kind]int{
	token.ASSIGN:     precAsg,
	token.PIPE:       precOr,
	token.AMP:        precAnd,
	token.EQ:         precEq,
	token.NOT_EQ:     precEq,
	token.IS:         precEq,
	token.LESS:       precOrd,
	token.LESS_EQ:    precOrd,
	token.GREATER:    precOrd,
	token.GREATER_EQ: precOrd,
	token.PLUS:       precTerm,
	token.MINUS:      precTerm,
	token.STAR:       precFac,
	token.SLASH:      precFac,
	token.PERCENT:    precFac,
	token.CARET:      precPow,
	token.ARROW:      precChn,
	token.LPAREN:     precCall,
}

func precedenceOf(k token.Kind) int {
	if p, ok := precedences[k]; ok {
		return p
	}
	return lowest
}

type prefixFn func(p *Parser) (ast.Expression, error)
type infixFn func(p *Parser, left ast.Expression) (ast.Expression, error)

// Parser consumes a token stream from a *bmlexer.Lexer and produces one
// top-level ast.Expression at a time via Next, folding each newly built
// node through an Optimizer as it goes.
type Parser struct {
	lex *bmlexer.Lexer
	opt *Optimizer

	cur  token.Token
	peek token.Token

	prefixFns map[token.Kind]prefixFn
	infixFns  map[token.Kind]infixFn
}

// New creates a Parser over src with the given Optimizer (pass
// parser.NewOptimizer(parser.LevelNone)'s result, or any Optimizer built by
// NewOptimizer, to configure folding — see Optimizer).
func New(src string, opt *Optimizer) (*Parser, error) {
	p := &Parser{lex: bmlexer.New(src), opt: opt}
	p.registerFns()
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parser) registerFns() {
	p.prefixFns = map[token.Kind]prefixFn{
		token.INT:       parseNumber,
		token.REAL:      parseNumber,
		token.IMAGINARY: parseNumber,
		token.TRUE:      parseBool,
		token.FALSE:     parseBool,
		token.IDENT:     parseIdentOrType,
		token.LPAREN:    parseGroup,
		token.LBRACK:    parseVector,
		token.LBRACE:    parseBlock,
		token.PIPE:      parseFuncDef,
		token.IF:        parseIf,
		token.LOCAL:     parseLocal,
		token.MINUS:     parseUnary,
		token.BANG:      parseUnary,
	}
	p.infixFns = map[token.Kind]infixFn{
		token.PLUS:       parseBinary,
		token.MINUS:      parseBinary,
		token.STAR:       parseBinary,
		token.SLASH:      parseBinary,
		token.PERCENT:    parseBinary,
		token.CARET:      parseBinary,
		token.EQ:         parseBinary,
		token.NOT_EQ:     parseBinary,
		token.LESS:       parseBinary,
		token.LESS_EQ:    parseBinary,
		token.GREATER:    parseBinary,
		token.GREATER_EQ: parseBinary,
		token.AMP:        parseBinary,
		token.PIPE:       parseBinary,
		token.IS:         parseTypeCheck,
		token.LPAREN:     parseCall,
		token.ARROW:      parseChain,
		token.ASSIGN:     parseAssign,
	}
}

// advance shifts peek into cur and lexes a new peek token.
func (p *Parser) advance() error {
	p.cur = p.peek
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.peek = tok
	return nil
}

func (p *Parser) curIs(k token.Kind) bool  { return p.cur.Kind == k }
func (p *Parser) peekIs(k token.Kind) bool { return p.peek.Kind == k }

// expect checks cur.Kind == k, advances past it, or raises MissingToken.
func (p *Parser) expect(k token.Kind) error {
	if !p.curIs(k) {
		return bmerrors.Newf(bmerrors.MissingToken, p.cur.Pos,
			"expected %s, found %s", k, p.cur.Kind)
	}
	return p.advance()
}

// skipNewlines consumes any run of NEWLINE tokens at cur (legal inside
// brackets/blocks/if-expressions per spec.md §4.1/§4.2).
func (p *Parser) skipNewlines() error {
	for p.curIs(token.NEWLINE) {
		if err := p.advance(); err != nil {
			return err
		}
	}
	return nil
}

// AtEOF reports whether the parser has nothing left to parse.
func (p *Parser) AtEOF() bool { return p.curIs(token.EOF) }

// Next parses exactly one top-level expression, leaving its trailing
// END_OF_EXPR (or EOF) as the current token for the next call to skip.
// Returns (nil, nil) once input is exhausted.
func (p *Parser) Next() (ast.Expression, error) {
	if err := p.skipEndOfExprs(); err != nil {
		return nil, err
	}
	if p.AtEOF() {
		return nil, nil
	}
	expr, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	if !p.curIs(token.END_OF_EXPR) && !p.AtEOF() {
		return nil, bmerrors.Newf(bmerrors.UnexpectedToken, p.cur.Pos,
			"unexpected token %s after expression", p.cur.Kind)
	}
	return expr, nil
}

func (p *Parser) skipEndOfExprs() error {
	for p.curIs(token.END_OF_EXPR) {
		if err := p.advance(); err != nil {
			return err
		}
	}
	return nil
}

// parseExpression is the standard Pratt precedence-climbing loop: run the
// prefix parser for cur, then repeatedly fold in infix operators whose
// precedence exceeds minPrec.
func (p *Parser) parseExpression(minPrec int) (ast.Expression, error) {
	prefix, ok := p.prefixFns[p.cur.Kind]
	if !ok {
		return nil, bmerrors.Newf(bmerrors.UnexpectedToken, p.cur.Pos,
			"unexpected token %s", p.cur.Kind)
	}
	left, err := prefix(p)
	if err != nil {
		return nil, err
	}

	for minPrec < precedenceOf(p.cur.Kind) {
		infix, ok := p.infixFns[p.cur.Kind]
		if !ok {
			break
		}
		left, err = infix(p, left)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}
