package expr_test

import (
	"math"
	"testing"

	"github.com/mathmcp/mathmcp/pkg/expr"
)

// FuzzEvaluate checks that arbitrary input never panics and that failures
// always surface as errors rather than silent inf/NaN results.
func FuzzEvaluate(f *testing.F) {
	f.Add("2 + 3 * 4")
	f.Add("sqrt(2 + 2) * (3 + 4)")
	f.Add("2 ** 3 ** 2")
	f.Add("-2 ** 2")
	f.Add("log(2, 8)")
	f.Add("((((")
	f.Add("5 / 0")
	f.Add("sqrt 16")
	f.Fuzz(func(t *testing.T, s string) {
		v, err := expr.Evaluate(s)
		if err == nil && (math.IsNaN(v) || math.IsInf(v, 0)) {
			t.Errorf("Evaluate(%q) = %v without error", s, v)
		}
	})
}

// FuzzTokenize checks the tokenizer consumes or rejects every input without
// panicking.
func FuzzTokenize(f *testing.F) {
	f.Add("2+3*4")
	f.Add("sqrt(pi)")
	f.Add("1..2")
	f.Add("**")
	f.Fuzz(func(t *testing.T, s string) {
		toks, err := expr.Tokenize(s)
		if err == nil {
			for _, tok := range toks {
				if tok.Col <= 0 {
					t.Errorf("Tokenize(%q): token %v has non-positive column", s, tok)
				}
			}
		}
	})
}
