package parser

import (
	"testing"

	"github.com/bmath-lang/bmath/internal/bmerrors"
)

func parseOne(t *testing.T, source string, level Level) (string, error) {
	t.Helper()
	p, err := New(source, NewOptimizer(level))
	if err != nil {
		return "", err
	}
	expr, err := p.Next()
	if err != nil {
		return "", err
	}
	if expr == nil {
		t.Fatalf("no expression parsed from %q", source)
	}
	return expr.String(), nil
}

func TestPrecedenceAndAssociativity(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"2 + 3 * 4", "(2 + (3 * 4))"},
		{"2 * 3 + 4", "((2 * 3) + 4)"},
		{"2 ^ 3 ^ 2", "(2 ^ (3 ^ 2))"}, // right-associative
		{"-2 ^ 2", "-(2 ^ 2)"},         // unary binds looser than ^
		{"-2 * 3", "(-2 * 3)"},         // unary binds tighter than *
		{"1 < 2 & 3 < 4", "((1 < 2) & (3 < 4))"},
		{"1 | 2 & 3", "(1 | (2 & 3))"},
	}
	for _, tt := range tests {
		got, err := parseOne(t, tt.source, LevelNone)
		if err != nil {
			t.Fatalf("parse(%q): unexpected error: %v", tt.source, err)
		}
		if got != tt.want {
			t.Errorf("parse(%q) = %q, want %q", tt.source, got, tt.want)
		}
	}
}

func TestChainDesugarsIntoFuncCall(t *testing.T) {
	got, err := parseOne(t, "x -> f(a)", LevelNone)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "f(x, a)" {
		t.Errorf("x -> f(a) desugars to %q, want f(x, a)", got)
	}

	got, err = parseOne(t, "x -> f", LevelNone)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "f(x)" {
		t.Errorf("x -> f desugars to %q, want f(x)", got)
	}
}

func TestAssignRequiresIdentLHS(t *testing.T) {
	_, err := parseOne(t, "Integer = 5", LevelNone)
	if err == nil {
		t.Fatal("expected an error assigning to a type literal")
	}
	if !bmerrors.Is(err, bmerrors.InvalidExpression) {
		t.Fatalf("Integer = 5 error = %v, want InvalidExpression", err)
	}
}

func TestAssignIsRightAssociative(t *testing.T) {
	got, err := parseOne(t, "a = b = 1", LevelNone)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "a = b = 1" {
		t.Errorf("a = b = 1 rendered as %q", got)
	}
}

func TestConstantFoldingAtLevelBasic(t *testing.T) {
	got, err := parseOne(t, "2 + 3 * 4", LevelBasic)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "14" {
		t.Errorf("folded 2+3*4 = %q, want 14", got)
	}
}

func TestFoldingPreservesSemanticsForZeroDivision(t *testing.T) {
	_, err := parseOne(t, "1 / 0", LevelBasic)
	if err == nil {
		t.Fatal("expected a parse-time error folding 1/0")
	}
	if !bmerrors.Is(err, bmerrors.ZeroDivision) {
		t.Fatalf("1/0 fold error = %v, want ZeroDivision", err)
	}
}

func TestLevelNoneNeverFolds(t *testing.T) {
	got, err := parseOne(t, "2 + 3", LevelNone)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "(2 + 3)" {
		t.Errorf("LevelNone folded %q, want unfolded (2 + 3)", got)
	}
}

func TestGroupRemovedAtLevelFull(t *testing.T) {
	got, err := parseOne(t, "(1) -> f", LevelFull)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "f(1)" {
		t.Errorf("(1) -> f at LevelFull = %q, want f(1) (grouping removed)", got)
	}
}

func TestGroupPreservedWhenFlagSet(t *testing.T) {
	p, err := New("(1 + 2)", &Optimizer{Level: LevelFull, PreserveGroup: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expr, err := p.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := expr.String(); got != "(3)" {
		t.Errorf("PreserveGroup fold of (1+2) = %q, want (3)", got)
	}
}

func TestBoolShortCircuitFoldsEvenWithNonLiteralOperand(t *testing.T) {
	got, err := parseOne(t, "false & x", LevelFull)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "false" {
		t.Errorf("false & x = %q, want false (x need not be a literal to fold)", got)
	}

	got, err = parseOne(t, "true | x", LevelFull)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "true" {
		t.Errorf("true | x = %q, want true (x need not be a literal to fold)", got)
	}
}

func TestBoolNonDecidingOperandDoesNotFoldAgainstNonLiteral(t *testing.T) {
	got, err := parseOne(t, "true & x", LevelFull)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "(true & x)" {
		t.Errorf("true & x = %q, want (true & x) unfolded (right must still be evaluated and type-checked)", got)
	}
}

func TestTypeCheckIsAnyFoldsToTrue(t *testing.T) {
	got, err := parseOne(t, "1 is Any", LevelFull)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "true" {
		t.Errorf("1 is Any = %q, want true", got)
	}
}

func TestMultipleTopLevelExpressionsViaNext(t *testing.T) {
	p, err := New("1\n2\n3", NewOptimizer(LevelNone))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got []string
	for {
		expr, err := p.Next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if expr == nil {
			break
		}
		got = append(got, expr.String())
	}
	if len(got) != 3 || got[0] != "1" || got[1] != "2" || got[2] != "3" {
		t.Fatalf("got %v, want [1 2 3]", got)
	}
}

func TestUnclosedBlockRaisesIncompleteInput(t *testing.T) {
	_, err := parseOne(t, "{1", LevelNone)
	if !bmerrors.Is(err, bmerrors.IncompleteInput) {
		t.Fatalf("unclosed block error = %v, want IncompleteInput", err)
	}
}

// TestIfWithoutElseIsMissingToken covers the case where the if-expression's
// Then branch is followed by something that is clearly not elif/else (here,
// a second top-level expression after a suppressed newline) rather than by
// end-of-input, which the lexer instead reports as IncompleteInput to allow
// REPL continuation (see TestIfAtEOFWithoutElseIsIncompleteInput).
func TestIfWithoutElseIsMissingToken(t *testing.T) {
	_, err := parseOne(t, "if(1 < 2) 3\n5", LevelNone)
	if !bmerrors.Is(err, bmerrors.MissingToken) {
		t.Fatalf("if without else error = %v, want MissingToken", err)
	}
}

func TestIfAtEOFWithoutElseIsIncompleteInput(t *testing.T) {
	_, err := parseOne(t, "if(1 < 2) 3", LevelNone)
	if !bmerrors.Is(err, bmerrors.IncompleteInput) {
		t.Fatalf("if without else at EOF error = %v, want IncompleteInput", err)
	}
}
