package expr

import (
	"errors"
	"testing"
)

func kinds(toks []Token) []TokenKind {
	out := make([]TokenKind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestTokenizeBasic(t *testing.T) {
	t.Parallel()

	toks, err := Tokenize("2 + 3.14 * (4)")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	want := []TokenKind{TokenNumber, TokenOperator, TokenNumber, TokenOperator, TokenLParen, TokenNumber, TokenRParen}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
	if toks[2].Value != 3.14 {
		t.Errorf("token 2 value = %v, want 3.14", toks[2].Value)
	}
}

// ** must lex as one operator token, never as two *.
func TestTokenizeMaximalMunch(t *testing.T) {
	t.Parallel()

	toks, err := Tokenize("2**3")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(toks) != 3 {
		t.Fatalf("got %d tokens %v, want 3", len(toks), toks)
	}
	if toks[1].Text != "**" {
		t.Errorf("middle token = %q, want **", toks[1].Text)
	}

	toks, err = Tokenize("2 * *3")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(toks) != 4 || toks[1].Text != "*" || toks[2].Text != "*" {
		t.Errorf("separated stars should stay separate, got %v", toks)
	}
}

func TestTokenizeIdentifiers(t *testing.T) {
	t.Parallel()

	toks, err := Tokenize("sqrt(pi) + log(e, 2)")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	var idents []string
	for _, tok := range toks {
		if tok.Kind == TokenIdent {
			idents = append(idents, tok.Text)
		}
	}
	want := []string{"sqrt", "pi", "log", "e"}
	if len(idents) != len(want) {
		t.Fatalf("idents = %v, want %v", idents, want)
	}
	for i := range want {
		if idents[i] != want[i] {
			t.Errorf("ident %d = %q, want %q", i, idents[i], want[i])
		}
	}
}

func TestTokenizeRejects(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"2 $ 3", "cos(1)", "2 # 3", "\"2\"", "2 % 3", "1..2", "."} {
		_, err := Tokenize(in)
		var se *SyntaxError
		if !errors.As(err, &se) {
			t.Errorf("Tokenize(%q): want *SyntaxError, got %v", in, err)
		}
	}
}

func TestTokenizeColumns(t *testing.T) {
	t.Parallel()

	toks, err := Tokenize("  12 + sqrt(9)")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if toks[0].Col != 3 {
		t.Errorf("number column = %d, want 3", toks[0].Col)
	}
	if toks[2].Col != 8 {
		t.Errorf("sqrt column = %d, want 8", toks[2].Col)
	}
}
