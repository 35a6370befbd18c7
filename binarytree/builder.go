package binarytree

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/forestrie/go-treecode/treecode"
)

// Builder performs the mutation phase of tree construction. Nodes may
// arrive in any order; Put backfills the parent or child side of each
// link as the missing end shows up. Finalize ends the phase and
// returns the read-only Tree.
type Builder[N comparable] struct {
	nodes    []N
	treeData []TreeData
	index    map[N]NodeIndex

	log       *zap.Logger
	finalized bool
}

func NewBuilder[N comparable](opts ...Option) *Builder[N] {
	o := Options{Log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	b := &Builder[N]{
		index: make(map[N]NodeIndex),
		log:   o.Log,
	}
	if o.InitialCapacity > 0 {
		b.EnsureUnusedCapacity(o.InitialCapacity)
	}
	return b
}

// EnsureUnusedCapacity reserves room for n further Put calls so that
// PutAssumesCapacity can run allocation free.
func (b *Builder[N]) EnsureUnusedCapacity(n int) {
	needed := len(b.nodes) + n
	if needed <= cap(b.nodes) {
		return
	}
	nodes := make([]N, len(b.nodes), needed)
	copy(nodes, b.nodes)
	b.nodes = nodes

	treeData := make([]TreeData, len(b.treeData), needed)
	copy(treeData, b.treeData)
	b.treeData = treeData
}

// Put inserts node at the next free index and wires it into the tree.
//
// The code in data is cloned; the tree owns its copy exclusively. If
// data.Parent is set, the branch from the parent's code to this code
// selects which child slot of the parent now names the new index. If
// data names children that are already present (child first,
// bottom-up construction), each child's parent link is backfilled to
// the new index.
//
// The first node put into an empty builder must carry the empty code;
// it becomes the root at index 0.
func (b *Builder[N]) Put(node N, data TreeData) (NodeIndex, error) {
	b.EnsureUnusedCapacity(1)
	return b.PutAssumesCapacity(node, data)
}

// PutAssumesCapacity is Put without reallocation. The caller must have
// reserved space via EnsureUnusedCapacity; running out is a caller bug
// and panics.
func (b *Builder[N]) PutAssumesCapacity(node N, data TreeData) (NodeIndex, error) {
	if b.finalized {
		return NoIndex, ErrFinalized
	}
	if len(b.nodes) == cap(b.nodes) {
		panic("binarytree: put without reserved capacity")
	}
	if _, ok := b.index[node]; ok {
		return NoIndex, ErrDuplicateNode
	}
	if len(b.nodes) == 0 && data.Code.CodeLength() != 0 {
		return NoIndex, ErrRootMustBeFirst
	}

	code := data.Code.Clone()

	newIndex := NodeIndex(len(b.nodes))
	b.nodes = append(b.nodes, node)

	data.Code = code
	b.treeData = append(b.treeData, data)
	b.index[node] = newIndex

	// Wire the parent's child slot. A parent index that names a row
	// which does not exist, or whose code is not an ancestor of this
	// one, is a bug in the calling code.
	if data.Parent != NoIndex {
		if data.Parent < 0 || int(data.Parent) >= len(b.treeData)-1 {
			panic(fmt.Sprintf("binarytree: put with absent parent index %d", data.Parent))
		}
		parentCode := b.treeData[data.Parent].Code
		branch := parentCode.NextStepTowards(code)
		b.treeData[data.Parent].Children[branch] = newIndex

		b.log.Debug("put: wired parent",
			zap.Int("index", int(newIndex)),
			zap.Int("parent", int(data.Parent)),
			zap.Stringer("branch", branch))
	}

	// Backfill parent links for children inserted before this node.
	for branch, child := range data.Children {
		if child == NoIndex {
			continue
		}
		if child < 0 || int(child) >= len(b.treeData)-1 {
			panic(fmt.Sprintf("binarytree: put with absent child index %d", child))
		}
		b.treeData[child].Parent = newIndex

		b.log.Debug("put: backfilled child",
			zap.Int("index", int(newIndex)),
			zap.Int("child", int(child)),
			zap.Stringer("branch", treecode.Branch(branch)))
	}

	return newIndex, nil
}

// Finalize ends the mutation phase and returns the read-only view.
// The builder keeps no access to the tree's storage; further Put calls
// fail with ErrFinalized.
func (b *Builder[N]) Finalize() *Tree[N] {
	b.finalized = true
	t := &Tree[N]{
		nodes:    b.nodes,
		treeData: b.treeData,
		index:    b.index,
	}
	b.nodes = nil
	b.treeData = nil
	b.index = nil
	return t
}
