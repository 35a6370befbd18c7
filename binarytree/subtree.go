package binarytree

import (
	"fmt"

	"github.com/forestrie/go-treecode/treecode"
)

// NodesUnder returns every index reachable from start by following
// child links, start included, left subtrees before right. The
// traversal keeps an explicit stack so its depth is bounded by the
// result size, not the Go call stack.
func (t *Tree[N]) NodesUnder(start NodeIndex) ([]NodeIndex, error) {
	if !t.inRange(start) {
		return nil, fmt.Errorf("start index %d: %w", start, ErrNotFound)
	}

	var found []NodeIndex

	stack := []NodeIndex{start}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		found = append(found, current)

		// Push right first so the left subtree is visited first.
		children := t.treeData[current].Children
		if right := children[treecode.Right]; right != NoIndex {
			stack = append(stack, right)
		}
		if left := children[treecode.Left]; left != NoIndex {
			stack = append(stack, left)
		}
	}

	return found, nil
}
