package expr

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// TokenKind classifies lexical tokens.
type TokenKind int

const (
	// TokenEOF marks the end of the token stream. The tokenizer never emits
	// it; the parser synthesizes it past the last token.
	TokenEOF TokenKind = iota
	// TokenNumber is a decimal numeric literal such as 3 or 3.14.
	TokenNumber
	// TokenOperator is one of + - * / **.
	TokenOperator
	// TokenLParen is an opening parenthesis.
	TokenLParen
	// TokenRParen is a closing parenthesis.
	TokenRParen
	// TokenIdent is an allow-listed identifier: sqrt, log, pi, or e.
	TokenIdent
	// TokenComma separates function arguments.
	TokenComma
)

func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "end of expression"
	case TokenNumber:
		return "number"
	case TokenOperator:
		return "operator"
	case TokenLParen:
		return "'('"
	case TokenRParen:
		return "')'"
	case TokenIdent:
		return "identifier"
	case TokenComma:
		return "','"
	default:
		return "invalid token"
	}
}

// Token is a single lexical unit of an expression.
type Token struct {
	Kind TokenKind
	// Text is the source text of the token.
	Text string
	// Value holds the parsed numeric value for TokenNumber tokens.
	Value float64
	// Col is the 1-based column of the token's first character.
	Col int
}

func (t Token) String() string {
	if t.Kind == TokenEOF {
		return t.Kind.String()
	}
	return t.Kind.String() + " " + strconv.Quote(t.Text)
}

// identifiers is the allow-list of names the tokenizer accepts. Functions
// and constants outside this set are a syntax error, which is the safety
// boundary that keeps the grammar closed.
var identifiers = map[string]bool{
	"sqrt": true,
	"log":  true,
	"pi":   true,
	"e":    true,
}

// Tokenize scans input left to right into a token sequence. Every character
// is consumed into exactly one token or rejected with *SyntaxError.
// Whitespace separates tokens and is otherwise ignored. The two-character
// operator ** is matched before a single *.
func Tokenize(input string) ([]Token, error) {
	var toks []Token
	i := 0
	for i < len(input) {
		c := input[i]
		col := i + 1
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c >= '0' && c <= '9', c == '.':
			j := i
			for j < len(input) && (input[j] >= '0' && input[j] <= '9' || input[j] == '.') {
				j++
			}
			text := input[i:j]
			v, err := strconv.ParseFloat(text, 64)
			if err != nil || text == "." {
				return nil, syntaxErr(col, "invalid number "+strconv.Quote(text))
			}
			toks = append(toks, Token{Kind: TokenNumber, Text: text, Value: v, Col: col})
			i = j
		case isIdentByte(c):
			j := i
			for j < len(input) && (isIdentByte(input[j]) || input[j] >= '0' && input[j] <= '9') {
				j++
			}
			name := input[i:j]
			if !identifiers[strings.ToLower(name)] {
				return nil, syntaxErr(col, "unknown identifier "+strconv.Quote(name))
			}
			toks = append(toks, Token{Kind: TokenIdent, Text: strings.ToLower(name), Col: col})
			i = j
		case c == '*':
			if i+1 < len(input) && input[i+1] == '*' {
				toks = append(toks, Token{Kind: TokenOperator, Text: "**", Col: col})
				i += 2
			} else {
				toks = append(toks, Token{Kind: TokenOperator, Text: "*", Col: col})
				i++
			}
		case c == '+' || c == '-' || c == '/':
			toks = append(toks, Token{Kind: TokenOperator, Text: string(c), Col: col})
			i++
		case c == '(':
			toks = append(toks, Token{Kind: TokenLParen, Text: "(", Col: col})
			i++
		case c == ')':
			toks = append(toks, Token{Kind: TokenRParen, Text: ")", Col: col})
			i++
		case c == ',':
			toks = append(toks, Token{Kind: TokenComma, Text: ",", Col: col})
			i++
		default:
			r, _ := utf8.DecodeRuneInString(input[i:])
			return nil, syntaxErr(col, "invalid character "+strconv.QuoteRune(r))
		}
	}
	return toks, nil
}

func isIdentByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}
