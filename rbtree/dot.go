package rbtree

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

type nodeids[T any] struct {
	idTable map[*node[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*node[T]]int),
		max:     1,
	}
}

func (ids nodeids[T]) find(n *node[T]) int {
	return ids.idTable[n]
}

func (ids *nodeids[T]) alloc(n *node[T]) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Dot outputs the internal structure of the tree in Graphviz DOT format
// (for debugging purposes).
func (t *Tree[T]) Dot(w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[T]()
	nodelist, edgelist := "", ""
	var walk func(n *node[T])
	walk = func(n *node[T]) {
		if n == nil {
			return
		}
		id := ids.alloc(n)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%v\" %s];\n", id, n.value, nodeDotStyles(n))
		for _, child := range []*node[T]{n.left, n.right} {
			if child == nil {
				nilid := id + 10000
				if n.left == nil && n.right == nil {
					continue
				}
				nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode())
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", id, nilid)
				continue
			}
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", id, ids.alloc(child))
			walk(child)
		}
	}
	if t != nil {
		walk(t.root)
	}
	if _, err := io.WriteString(w, nodelist); err != nil {
		tracer().Errorf("tree DOT: %s", err.Error())
	}
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.4]"
}

func nodeDotStyles[T any](n *node[T]) string {
	s := ",style=filled,shape=circle,fontcolor=white"
	if n.isRed() {
		s += ",fillcolor=\"#cc2222\""
	} else {
		s += ",fillcolor=\"#222222\""
	}
	return s
}

// Fprint writes an indented, right-to-left rotated rendering of the tree,
// red nodes colorized when the writer is a capable terminal.
func (t *Tree[T]) Fprint(w io.Writer) {
	if t == nil || t.root == nil {
		fmt.Fprintln(w, "(empty)")
		return
	}
	t.fprintNode(w, t.root, 0)
	if t.end.parent != nil {
		fmt.Fprintf(w, "end ~> %v\n", t.end.parent.value)
	}
}

var redprint = color.New(color.FgRed).SprintfFunc()

func (t *Tree[T]) fprintNode(w io.Writer, n *node[T], level int) {
	if n == nil {
		return
	}
	t.fprintNode(w, n.right, level+1)
	for i := 0; i < level; i++ {
		io.WriteString(w, "  ")
	}
	if n.isRed() {
		fmt.Fprintln(w, redprint("%v (R)", n.value))
	} else {
		fmt.Fprintf(w, "%v (B)\n", n.value)
	}
	t.fprintNode(w, n.left, level+1)
}
