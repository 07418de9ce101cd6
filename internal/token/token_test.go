package token

import "testing"

func TestPositionStringFormat(t *testing.T) {
	p := Position{Line: 3, Column: 7}
	if got := p.String(); got != "3:7" {
		t.Errorf("Position.String() = %q, want 3:7", got)
	}
}

func TestKindStringKnownAndUnknown(t *testing.T) {
	if got := PLUS.String(); got != "+" {
		t.Errorf("PLUS.String() = %q, want +", got)
	}
	if got := Kind(9999).String(); got != "UNKNOWN" {
		t.Errorf("unknown kind String() = %q, want UNKNOWN", got)
	}
}

func TestLookupIdentClassifiesKeywords(t *testing.T) {
	if LookupIdent("if") != IF {
		t.Error("LookupIdent(if) should be IF")
	}
	if LookupIdent("local") != LOCAL {
		t.Error("LookupIdent(local) should be LOCAL")
	}
	if LookupIdent("foo") != IDENT {
		t.Error("LookupIdent(foo) should be IDENT")
	}
}

func TestTokenString(t *testing.T) {
	tok := New(IDENT, "x", Position{Line: 1, Column: 1})
	if got := tok.String(); got != `IDENT("x")@1:1` {
		t.Errorf("Token.String() = %q, want IDENT(\"x\")@1:1", got)
	}
}
