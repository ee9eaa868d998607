package rpp

import (
	"io"
	"strings"
)

const indentUnit = "  "

// Serialize renders a document tree back to project text. Lines whose
// attributes were never touched are replayed from their original text, so an
// unmodified tree reproduces its input byte for byte.
func Serialize(root *Node) []byte {
	var sb strings.Builder
	writeNode(&sb, root, 0)
	return []byte(sb.String())
}

// Write renders the tree to w.
func Write(w io.Writer, root *Node) error {
	_, err := w.Write(Serialize(root))
	return err
}

func writeNode(sb *strings.Builder, n *Node, depth int) {
	if n == nil {
		return
	}
	indent := strings.Repeat(indentUnit, depth)
	sb.WriteString(indent)
	if n.Block {
		sb.WriteString(openLine(n))
		sb.WriteByte('\n')
		for _, child := range n.Children {
			writeNode(sb, child, depth+1)
		}
		sb.WriteString(indent)
		sb.WriteString(">\n")
		return
	}
	sb.WriteString(leafLine(n))
	sb.WriteByte('\n')
}

func openLine(n *Node) string {
	if n.raw != "" {
		return n.raw
	}
	return "<" + formatLine(n)
}

func leafLine(n *Node) string {
	if n.raw != "" {
		return n.raw
	}
	return formatLine(n)
}
