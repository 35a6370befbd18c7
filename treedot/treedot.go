// Package treedot renders a treecode addressed tree for graphviz. The
// tree is reduced to (parent label, parent code) -> (child label,
// child code) edge pairs; layout itself is delegated to an externally
// configured dot binary and skipped entirely when none is configured.
package treedot

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/forestrie/go-treecode/binarytree"
	"github.com/forestrie/go-treecode/treecode"
)

// A Labeler names a node from its treecode.
type Labeler func(code *treecode.Treecode) string

// BinaryLabeler labels a node with its raw binary code string.
func BinaryLabeler(code *treecode.Treecode) string {
	return code.String()
}

// HashLabeler labels a node with a truncated hash of its code string.
// Long paths produce labels of unbounded length otherwise.
func HashLabeler(code *treecode.Treecode) string {
	sum := sha256.Sum256([]byte(code.String()))
	return hex.EncodeToString(sum[:4])
}

// Edge is one parent to child edge of the rendered tree. A synthetic
// edge marks a missing child slot so the rendered shape shows where
// the tree is ragged; synthetic children carry no code.
type Edge struct {
	ParentLabel string
	ParentCode  string
	ChildLabel  string
	ChildCode   string
	Synthetic   bool
}

// Edges enumerates every parent to child pair in index order, left
// slot before right, with a synthetic leaf marker wherever a child is
// absent.
func Edges[N comparable](t *binarytree.Tree[N], label Labeler) []Edge {
	var edges []Edge

	for i := 0; i < t.Len(); i++ {
		data := t.Data(binarytree.NodeIndex(i))

		for branch, child := range data.Children {
			if child == binarytree.NoIndex {
				edges = append(edges, Edge{
					ParentLabel: label(data.Code),
					ParentCode:  data.Code.String(),
					ChildLabel:  fmt.Sprintf("leaf_%d_%s", i, treecode.Branch(branch)),
					Synthetic:   true,
				})
				continue
			}

			childData := t.Data(child)
			edges = append(edges, Edge{
				ParentLabel: label(data.Code),
				ParentCode:  data.Code.String(),
				ChildLabel:  label(childData.Code),
				ChildCode:   childData.Code.String(),
			})
		}
	}

	return edges
}

// WriteDot writes the tree as a graphviz digraph.
func WriteDot[N comparable](w io.Writer, t *binarytree.Tree[N], label Labeler) error {
	if _, err := fmt.Fprintln(w, "digraph treecode {"); err != nil {
		return err
	}

	for _, e := range Edges(t, label) {
		var err error
		if e.Synthetic {
			_, err = fmt.Fprintf(w, "  %q [shape=point];\n  %q -> %q;\n",
				e.ChildLabel, e.ParentLabel, e.ChildLabel)
		} else {
			_, err = fmt.Fprintf(w, "  %q -> %q;\n", e.ParentLabel, e.ChildLabel)
		}
		if err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}
