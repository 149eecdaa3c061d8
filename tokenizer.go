package lisp

import (
	"strings"
	"text/scanner"
)

// Token is one lexical token with the position where it starts.
type Token struct {
	Text string
	Pos  scanner.Position
}

func (t Token) String() string {
	return t.Text
}

const whitespace uint64 = 1<<'\t' | 1<<'\n' | 1<<'\v' | 1<<'\f' | 1<<'\r' | 1<<' '

func isIdentRune(ch rune, i int) bool {
	if ch < 0 || ch == '(' || ch == ')' {
		return false
	}
	return ch >= 64 || whitespace&(1<<uint(ch)) == 0
}

// Tokenize splits a source text into tokens. Parentheses are tokens of
// their own; any other run of characters up to a space or parenthesis is
// one token. Nothing is validated here.
func Tokenize(src string) []Token {
	result := make([]Token, 0, 100)
	var scn scanner.Scanner
	scn.Init(strings.NewReader(src))
	scn.Mode = scanner.ScanIdents
	scn.IsIdentRune = isIdentRune
	scn.Whitespace = whitespace
	scn.Error = func(*scanner.Scanner, string) {} // invalid UTF-8 stays in the token
	for tok := scn.Scan(); tok != scanner.EOF; tok = scn.Scan() {
		result = append(result, Token{scn.TokenText(), scn.Position})
	}
	return result
}
