package expr

// Grammar, precedence low to high:
//
//	expr    = term { ("+" | "-") term }
//	term    = unary { ("*" | "/") unary }
//	unary   = "-" unary | power
//	power   = primary [ "**" unary ]
//	primary = number | "pi" | "e" | "(" expr ")"
//	        | "sqrt" "(" expr ")" | "log" "(" expr "," expr ")"
//
// power recursing into unary on its right operand makes ** right-associative
// (2 ** 3 ** 2 = 2 ** (3 ** 2)) and places unary minus below it
// (-2 ** 2 = -(2 ** 2), while 2 ** -3 still parses).

import (
	"math"
)

// Parse builds an AST from a token sequence. It fails with *SyntaxError on
// an unexpected token, an unmatched parenthesis, a missing operand, trailing
// tokens after a complete expression, or a function call without its
// required parenthesized arguments.
func Parse(toks []Token) (Node, error) {
	if len(toks) == 0 {
		return nil, syntaxErr(0, "empty expression")
	}
	p := &parser{toks: toks}
	n, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Kind != TokenEOF {
		return nil, syntaxErr(tok.Col, "unexpected "+tok.String()+" after expression")
	}
	return n, nil
}

// parser holds the token cursor. Each grammar level below is one method
// consuming tokens and descending into the next-higher-precedence level.
type parser struct {
	toks []Token
	pos  int
}

func (p *parser) peek() Token {
	if p.pos >= len(p.toks) {
		end := 1
		if len(p.toks) > 0 {
			last := p.toks[len(p.toks)-1]
			end = last.Col + len(last.Text)
		}
		return Token{Kind: TokenEOF, Col: end}
	}
	return p.toks[p.pos]
}

func (p *parser) next() Token {
	tok := p.peek()
	if tok.Kind != TokenEOF {
		p.pos++
	}
	return tok
}

// expect consumes the next token if it has the wanted kind, or fails with a
// SyntaxError naming what was expected.
func (p *parser) expect(kind TokenKind, context string) (Token, error) {
	tok := p.peek()
	if tok.Kind != kind {
		return Token{}, syntaxErr(tok.Col, "expected "+kind.String()+" "+context+", found "+tok.String())
	}
	return p.next(), nil
}

func (p *parser) parseExpr() (Node, error) {
	n, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		if tok.Kind != TokenOperator || (tok.Text != "+" && tok.Text != "-") {
			return n, nil
		}
		p.next()
		rhs, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		n = &BinaryOp{Op: tok.Text, Left: n, Right: rhs}
	}
}

func (p *parser) parseTerm() (Node, error) {
	n, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		if tok.Kind != TokenOperator || (tok.Text != "*" && tok.Text != "/") {
			return n, nil
		}
		p.next()
		rhs, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		n = &BinaryOp{Op: tok.Text, Left: n, Right: rhs}
	}
}

func (p *parser) parseUnary() (Node, error) {
	if tok := p.peek(); tok.Kind == TokenOperator && tok.Text == "-" {
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryMinus{Operand: operand}, nil
	}
	return p.parsePower()
}

func (p *parser) parsePower() (Node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Kind == TokenOperator && tok.Text == "**" {
		p.next()
		// Descend into unary, not power, so the exponent may carry its own
		// sign and chained ** groups from the right.
		exp, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &BinaryOp{Op: "**", Left: base, Right: exp}, nil
	}
	return base, nil
}

func (p *parser) parsePrimary() (Node, error) {
	tok := p.peek()
	switch tok.Kind {
	case TokenNumber:
		p.next()
		return &Literal{Value: tok.Value}, nil

	case TokenLParen:
		p.next()
		n, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRParen, "to close '('"); err != nil {
			return nil, err
		}
		return n, nil

	case TokenIdent:
		p.next()
		switch tok.Text {
		case "pi":
			return &Literal{Value: math.Pi}, nil
		case "e":
			return &Literal{Value: math.E}, nil
		case "sqrt":
			arg, err := p.parseCallArgs(tok.Text, 1)
			if err != nil {
				return nil, err
			}
			return &Call{Name: tok.Text, Args: arg}, nil
		case "log":
			args, err := p.parseCallArgs(tok.Text, 2)
			if err != nil {
				return nil, err
			}
			return &Call{Name: tok.Text, Args: args}, nil
		default:
			// Tokenize only emits allow-listed identifiers.
			return nil, syntaxErr(tok.Col, "unknown identifier "+tok.Text)
		}

	case TokenEOF:
		return nil, syntaxErr(tok.Col, "missing operand")

	default:
		return nil, syntaxErr(tok.Col, "unexpected "+tok.String())
	}
}

// parseCallArgs parses the parenthesized argument list of a function call,
// requiring exactly count comma-separated arguments. sqrt 16 (no
// parentheses) and sqrt() (no argument) are both syntax errors.
func (p *parser) parseCallArgs(name string, count int) ([]Node, error) {
	if _, err := p.expect(TokenLParen, "after "+name); err != nil {
		return nil, err
	}
	args := make([]Node, 0, count)
	for i := 0; i < count; i++ {
		if i > 0 {
			if _, err := p.expect(TokenComma, "between "+name+" arguments"); err != nil {
				return nil, err
			}
		}
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	if _, err := p.expect(TokenRParen, "to close "+name+" call"); err != nil {
		return nil, err
	}
	return args, nil
}
