package lisp

import (
	"fmt"
	"io"
	"strings"
)

// WriteTree writes an expression as an indented tree, one node per line.
// A list whose head is a symbol is written as that symbol with the rest
// of the list one space deeper.
func WriteTree(w io.Writer, exp Value) error {
	return writeTree(w, exp, 0)
}

func writeTree(w io.Writer, exp Value, depth int) error {
	indent := strings.Repeat(" ", depth)
	var err error
	switch x := exp.(type) {
	case List:
		if len(x) == 0 {
			_, err = fmt.Fprintf(w, "%slist: Nil\n", indent)
			return err
		}
		rest := x[1:]
		if head, ok := x[0].(Symbol); ok {
			_, err = fmt.Fprintf(w, "%ssymbol: %s\n", indent, head)
		} else {
			_, err = fmt.Fprintf(w, "%slist:\n", indent)
			rest = x
		}
		if err != nil {
			return err
		}
		for _, e := range rest {
			if err := writeTree(w, e, depth+1); err != nil {
				return err
			}
		}
		return nil
	case Number:
		_, err = fmt.Fprintf(w, "%snumber: %s\n", indent, x)
	case Symbol:
		_, err = fmt.Fprintf(w, "%ssymbol: %s\n", indent, x)
	case Boolean:
		_, err = fmt.Fprintf(w, "%sboolean: %s\n", indent, x)
	default:
		_, err = fmt.Fprintf(w, "%sprocedure: %s\n", indent, stringify(exp))
	}
	return err
}

// Tree returns the tree form of an expression.
func Tree(exp Value) string {
	var b strings.Builder
	WriteTree(&b, exp)
	return b.String()
}
