package binarytree

import (
	"github.com/forestrie/go-treecode/treecode"
)

// NodeIndex identifies a node's row in the parallel node and tree-data
// slices.
type NodeIndex int

// NoIndex marks an absent parent or child link.
const NoIndex NodeIndex = -1

// TreeData is the linkage row for one node: its treecode address, the
// index of its parent and the indices of its children. The child slots
// are indexed by treecode.Branch.
type TreeData struct {
	Code     *treecode.Treecode
	Parent   NodeIndex
	Children [2]NodeIndex
}

// NewTreeData returns a row for code with no links. Callers set Parent
// or Children before handing the row to Builder.Put.
func NewTreeData(code *treecode.Treecode) TreeData {
	return TreeData{
		Code:     code,
		Parent:   NoIndex,
		Children: [2]NodeIndex{NoIndex, NoIndex},
	}
}

// Tree is the read-only view of a finalized tree. It is produced by
// Builder.Finalize or RestoreTree and safe for concurrent readers.
//
// N must be comparable by value; the builtin map supplies the
// hashable contract for value lookup.
type Tree[N comparable] struct {
	nodes    []N
	treeData []TreeData
	index    map[N]NodeIndex
}

// Len returns the number of nodes in the tree.
func (t *Tree[N]) Len() int {
	return len(t.nodes)
}

// RootNode returns the node at index 0, which is always the root.
func (t *Tree[N]) RootNode() (N, error) {
	if len(t.nodes) == 0 {
		var zero N
		return zero, ErrEmptyTree
	}
	return t.nodes[0], nil
}

// Node returns the node value stored at i.
func (t *Tree[N]) Node(i NodeIndex) N {
	return t.nodes[i]
}

// Data returns the linkage row for i. The row's code is owned by the
// tree; clone it before mutating.
func (t *Tree[N]) Data(i NodeIndex) TreeData {
	return t.treeData[i]
}

// IndexForNode looks up a node's index by value. A miss is an expected
// outcome, not an error.
func (t *Tree[N]) IndexForNode(node N) (NodeIndex, bool) {
	i, ok := t.index[node]
	return i, ok
}

// CodeFromNode looks up a node's treecode by value. The returned code
// is owned by the tree; clone it before mutating.
func (t *Tree[N]) CodeFromNode(node N) (*treecode.Treecode, bool) {
	i, ok := t.index[node]
	if !ok {
		return nil, false
	}
	return t.treeData[i].Code, true
}

func (t *Tree[N]) inRange(i NodeIndex) bool {
	return i >= 0 && int(i) < len(t.nodes)
}
