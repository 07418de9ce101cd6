// Package printer is a thin collaborator backing the CLI's --format and
// --sexp flags (spec.md §6): it is not a full source formatter, just enough
// to round-trip an Expression tree back to BMath surface syntax or dump its
// structure as S-expressions for tooling/debugging.
package printer

import (
	"strconv"
	"strings"

	"github.com/bmath-lang/bmath/internal/ast"
	"github.com/bmath-lang/bmath/internal/parser"
)

// Format re-parses source with grouping parentheses preserved (so the
// output does not silently drop parens the author wrote) and renders every
// top-level expression back out through its own String method, one per
// line. Folding still runs at the given level, same as a normal run, since
// spec.md's RemoveGrouping is the only pass --format disables.
func Format(source string, level parser.Level) (string, error) {
	opt := parser.NewOptimizer(level)
	opt.PreserveGroup = true
	p, err := parser.New(source, opt)
	if err != nil {
		return "", err
	}
	var lines []string
	for {
		expr, err := p.Next()
		if err != nil {
			return "", err
		}
		if expr == nil {
			break
		}
		lines = append(lines, expr.String())
	}
	return strings.Join(lines, "\n"), nil
}

// Sexp parses source at LevelNone (folding would erase structure the
// S-expression dump exists to show) and renders each top-level expression
// as a parenthesized prefix form. compact collapses each expression onto a
// single line without indentation.
func Sexp(source string, compact bool) (string, error) {
	p, err := parser.New(source, parser.NewOptimizer(parser.LevelNone))
	if err != nil {
		return "", err
	}
	var out []string
	for {
		expr, err := p.Next()
		if err != nil {
			return "", err
		}
		if expr == nil {
			break
		}
		out = append(out, sexp(expr, 0, compact))
	}
	return strings.Join(out, "\n"), nil
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}

func nl(compact bool) string {
	if compact {
		return " "
	}
	return "\n"
}

func sexp(expr ast.Expression, depth int, compact bool) string {
	switch n := expr.(type) {
	case *ast.ValueLit:
		return "(lit " + n.Val.String() + ")"
	case *ast.Group:
		return wrap("group", depth, compact, sexp(n.Inner, depth+1, compact))
	case *ast.Unary:
		return wrap("unary "+n.Op.String(), depth, compact, sexp(n.Operand, depth+1, compact))
	case *ast.Binary:
		return wrap("binary "+n.Op.String(), depth, compact,
			sexp(n.Left, depth+1, compact), sexp(n.Right, depth+1, compact))
	case *ast.TypeCheck:
		return wrap("is", depth, compact, sexp(n.Expr, depth+1, compact), sexp(n.Target, depth+1, compact))
	case *ast.Vector:
		parts := make([]string, len(n.Elems))
		for i, e := range n.Elems {
			parts[i] = sexp(e, depth+1, compact)
		}
		return wrap("vector", depth, compact, parts...)
	case *ast.Ident:
		return "(ident " + n.Name + ")"
	case *ast.Assign:
		head := "assign " + n.Name
		if n.IsLocal {
			head = "local-assign " + n.Name
		}
		return wrap(head, depth, compact, sexp(n.Expr, depth+1, compact))
	case *ast.FuncDef:
		names := make([]string, len(n.Params))
		for i, p := range n.Params {
			names[i] = p.Name
		}
		head := "funcdef (" + strings.Join(names, " ") + ")"
		return wrap(head, depth, compact, sexp(n.Body, depth+1, compact))
	case *ast.FuncCall:
		parts := make([]string, len(n.Args)+1)
		parts[0] = sexp(n.Fn, depth+1, compact)
		for i, a := range n.Args {
			parts[i+1] = sexp(a, depth+1, compact)
		}
		return wrap("call", depth, compact, parts...)
	case *ast.Block:
		parts := make([]string, len(n.Exprs))
		for i, e := range n.Exprs {
			parts[i] = sexp(e, depth+1, compact)
		}
		return wrap("block", depth, compact, parts...)
	case *ast.If:
		parts := make([]string, 0, len(n.Branches)*2+1)
		for _, b := range n.Branches {
			parts = append(parts, sexp(b.Cond, depth+1, compact), sexp(b.Then, depth+1, compact))
		}
		parts = append(parts, sexp(n.Else, depth+1, compact))
		return wrap("if", depth, compact, parts...)
	default:
		return "(unknown " + strconv.Quote(expr.String()) + ")"
	}
}

func wrap(head string, depth int, compact bool, children ...string) string {
	if compact || len(children) == 0 {
		if len(children) == 0 {
			return "(" + head + ")"
		}
		return "(" + head + " " + strings.Join(children, " ") + ")"
	}
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(head)
	for _, c := range children {
		sb.WriteString(nl(compact))
		sb.WriteString(indent(depth + 1))
		sb.WriteString(c)
	}
	sb.WriteString(nl(compact))
	sb.WriteString(indent(depth))
	sb.WriteString(")")
	return sb.String()
}
