package lisp

import (
	"errors"
	"strconv"
	"text/scanner"
)

// Parser reads S-expressions from a token slice. The slice is never
// modified; the parser only advances its cursor.
type Parser struct {
	tokens []Token
	pos    int
}

// NewParser returns a parser positioned at the first of tokens.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// More reports whether any tokens are left.
func (p *Parser) More() bool {
	return p.pos < len(p.tokens)
}

func (p *Parser) eof() error {
	pos := scanner.Position{}
	if n := len(p.tokens); n > 0 {
		pos = p.tokens[n-1].Pos
	}
	return &SyntaxError{Pos: pos, Msg: "EOF while reading", Err: ErrUnexpectedEOF}
}

func (p *Parser) peek() (Token, error) {
	if !p.More() {
		return Token{}, p.eof()
	}
	return p.tokens[p.pos], nil
}

func (p *Parser) pop() (Token, error) {
	tok, err := p.peek()
	if err == nil {
		p.pos++
	}
	return tok, err
}

// Parse reads one expression. The parser is left at the token after it.
func (p *Parser) Parse() (Value, error) {
	tok, err := p.pop()
	if err != nil {
		return nil, err
	}
	switch tok.Text {
	case "(":
		list := List{}
		for {
			next, err := p.peek()
			if err != nil {
				return nil, err
			}
			if next.Text == ")" {
				break
			}
			e, err := p.Parse()
			if err != nil {
				return nil, err
			}
			list = append(list, e)
		}
		p.pos++ // the ")"
		return list, nil
	case ")":
		return nil, &SyntaxError{Pos: tok.Pos, Msg: "unexpected ')'"}
	}
	return Atom(tok.Text), nil
}

// ParseAll reads every expression left in the tokens.
func (p *Parser) ParseAll() ([]Value, error) {
	var result []Value
	for p.More() {
		e, err := p.Parse()
		if err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	return result, nil
}

// Read reads the first expression of a source text.
func Read(src string) (Value, error) {
	return NewParser(Tokenize(src)).Parse()
}

// Atom classifies a token as a Number or a Symbol. Literals out of range
// read as infinity or zero.
func Atom(text string) Value {
	if looksNumeric(text) {
		f, err := strconv.ParseFloat(text, 64)
		if err == nil || errors.Is(err, strconv.ErrRange) {
			return Number(f)
		}
	}
	return Symbol(text)
}

// looksNumeric reports whether text starts like a decimal literal, so that
// words such as inf and nan stay symbols.
func looksNumeric(text string) bool {
	s := text
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	if len(s) > 1 && s[0] == '.' {
		s = s[1:]
	}
	return len(s) > 0 && '0' <= s[0] && s[0] <= '9'
}
