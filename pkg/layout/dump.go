package layout

import (
	"fmt"
	"io"
	"strings"
)

// DumpTree writes an indented, human-readable description of the tree to
// w: one line per node with its label (or kind), solved size and position.
func DumpTree(w io.Writer, root Node) error {
	return dumpNode(w, root, 0)
}

func dumpNode(w io.Writer, node Node, depth int) error {
	label := node.Label()
	if label == "" {
		label = node.Kind()
	}
	size := node.Size()
	pos := node.Position()

	_, err := fmt.Fprintf(w, "%s• %s (size: %.2fx%.2f, position: %.2f,%.2f)\n",
		strings.Repeat("  ", depth), label, size.Width, size.Height, pos.X, pos.Y)
	if err != nil {
		return err
	}

	for _, child := range node.Children() {
		if err := dumpNode(w, child, depth+1); err != nil {
			return err
		}
	}
	return nil
}
