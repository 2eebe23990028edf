// file:radix/pkg/x_radix/dump.go
package x_radix

import (
	"fmt"
	"io"
	"strings"
)

//---------------------
// Tree Dump (Debug)
//---------------------

// Dump writes a visual tree representation to writer.
func (t *RadixTree[T]) Dump(w io.Writer) {
	if t == nil || t.root == nil {
		fmt.Fprintln(w, "EMPTY")
		return
	}
	t.dump(w, t.root, 0)
	fmt.Fprintln(w)
}

// dump writes a single node (recursive).
func (t *RadixTree[T]) dump(w io.Writer, n *node[T], depth int) {
	if n.hasValue() {
		fmt.Fprintf(w, "%s %s Label: %q Value: %+v\n", dumpPre(depth), n.kind(), n.label, *n.value)
	} else {
		fmt.Fprintf(w, "%s %s Label: %q\n", dumpPre(depth), n.kind(), n.label)
	}
	depth++
	for _, c := range n.children {
		t.dump(w, c, depth)
	}
}

//---------------------
// Node Kind Labels
//---------------------

func (n *node[T]) kind() string {
	switch {
	case n.label == "" && !n.hasValue():
		return "ROOT"
	case n.hasValue():
		return "ENTRY"
	default:
		return "BRANCH"
	}
}

//---------------------
// Indentation Helper
//---------------------

func dumpPre(depth int) string {
	if depth == 0 {
		return "-- "
	}
	var b strings.Builder
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
	b.WriteString("|__ ")
	return b.String()
}
