package lisp

import (
	"strings"
	"testing"
)

const program1 = `
    (if (> (val x) 0)
       (fn (+ (aref A i) 1)
        (quote (one two))))
`

func texts(tokens []Token) []string {
	ss := make([]string, len(tokens))
	for i, t := range tokens {
		ss[i] = t.Text
	}
	return ss
}

func TestTokenizeProgram(t *testing.T) {
	want := []string{"(", "if", "(", ">", "(", "val", "x", ")", "0", ")", "(", "fn", "(", "+",
		"(", "aref", "A", "i", ")", "1", ")", "(", "quote", "(", "one", "two", ")",
		")", ")", ")"}
	got := texts(Tokenize(program1))
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("Tokenize:\n got %q\nwant %q", got, want)
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		src  string
		want []string
	}{
		{"", nil},
		{"  \n\t ", nil},
		{"x", []string{"x"}},
		{"()", []string{"(", ")"}},
		{"(a(b)c)", []string{"(", "a", "(", "b", ")", "c", ")"}},
		{"(<= 1 2)", []string{"(", "<=", "1", "2", ")"}},
		{"-3.5e2 set! a.b", []string{"-3.5e2", "set!", "a.b"}},
		{"(quote\n(x))", []string{"(", "quote", "(", "x", ")", ")"}},
		{"λ 'x \"y\"", []string{"λ", "'x", "\"y\""}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got := texts(Tokenize(tt.src))
			if len(got) != len(tt.want) {
				t.Fatalf("Tokenize(%q) = %q, want %q", tt.src, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTokenizePositions(t *testing.T) {
	tokens := Tokenize("(a\n  bc)")
	want := [][2]int{{1, 1}, {1, 2}, {2, 3}, {2, 5}}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, tok := range tokens {
		if tok.Pos.Line != want[i][0] || tok.Pos.Column != want[i][1] {
			t.Errorf("%q at %d:%d, want %d:%d", tok.Text, tok.Pos.Line, tok.Pos.Column, want[i][0], want[i][1])
		}
	}
}

func TestTokenizeIsIndependent(t *testing.T) {
	a := texts(Tokenize("(+ 1 2)"))
	b := texts(Tokenize("(+ 1 2)"))
	if strings.Join(a, " ") != strings.Join(b, " ") {
		t.Errorf("repeated Tokenize differs: %q vs %q", a, b)
	}
}
