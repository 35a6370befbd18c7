package binarytree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-treecode/binarytree"
	"github.com/forestrie/go-treecode/treecode"
	"github.com/forestrie/go-treecode/treetesting"
)

func TestBuilderWiresParentAndBackfillsChildren(t *testing.T) {
	tc := treetesting.NewTestContext(t, treetesting.TestConfig{})
	f := tc.BuildFiveNodeTree()

	// E went in before D; D's put must have wired both directions.
	dataD := f.Tree.Data(f.D)
	require.Equal(t, f.E, dataD.Children[treecode.Right])
	require.Equal(t, binarytree.NoIndex, dataD.Children[treecode.Left])
	require.Equal(t, f.B, dataD.Parent)

	dataE := f.Tree.Data(f.E)
	require.Equal(t, f.D, dataE.Parent)

	// B gained C on the left and D on the right as each arrived.
	dataB := f.Tree.Data(f.B)
	require.Equal(t, f.C, dataB.Children[treecode.Left])
	require.Equal(t, f.D, dataB.Children[treecode.Right])
}

func TestBuilderRootMustBeFirst(t *testing.T) {
	b := binarytree.NewBuilder[string]()

	notRoot := treecode.New()
	notRoot.Append(treecode.Left)

	_, err := b.Put("x", binarytree.NewTreeData(notRoot))
	require.ErrorIs(t, err, binarytree.ErrRootMustBeFirst)

	_, err = b.Put("root", binarytree.NewTreeData(treecode.New()))
	require.NoError(t, err)
}

func TestBuilderRejectsDuplicateNode(t *testing.T) {
	b := binarytree.NewBuilder[string]()

	_, err := b.Put("root", binarytree.NewTreeData(treecode.New()))
	require.NoError(t, err)

	_, err = b.Put("root", binarytree.NewTreeData(treecode.New()))
	require.ErrorIs(t, err, binarytree.ErrDuplicateNode)
}

func TestBuilderFinalizeEndsMutation(t *testing.T) {
	b := binarytree.NewBuilder[string]()

	_, err := b.Put("root", binarytree.NewTreeData(treecode.New()))
	require.NoError(t, err)

	tree := b.Finalize()
	require.Equal(t, 1, tree.Len())

	_, err = b.Put("late", binarytree.NewTreeData(treecode.New()))
	require.ErrorIs(t, err, binarytree.ErrFinalized)
}

func TestBuilderPutOwnsAClone(t *testing.T) {
	b := binarytree.NewBuilder[string]()

	code := treecode.New()
	_, err := b.Put("root", binarytree.NewTreeData(code))
	require.NoError(t, err)

	// The caller keeps its code; mutating it must not disturb the
	// tree's copy.
	code.Append(treecode.Right)

	tree := b.Finalize()
	stored, ok := tree.CodeFromNode("root")
	require.True(t, ok)
	require.Equal(t, 0, stored.CodeLength())
}

func TestBuilderPutAbsentParentPanics(t *testing.T) {
	b := binarytree.NewBuilder[string]()

	_, err := b.Put("root", binarytree.NewTreeData(treecode.New()))
	require.NoError(t, err)

	child := treecode.New()
	child.Append(treecode.Left)
	data := binarytree.NewTreeData(child)
	data.Parent = 7

	require.Panics(t, func() { _, _ = b.Put("child", data) })
}

func TestPutAssumesCapacityPanicsWithoutReserve(t *testing.T) {
	b := binarytree.NewBuilder[string]()
	require.Panics(t, func() {
		_, _ = b.PutAssumesCapacity("root", binarytree.NewTreeData(treecode.New()))
	})
}

func TestPutAssumesCapacityBulkConstruction(t *testing.T) {
	tc := treetesting.NewTestContext(t, treetesting.TestConfig{Seed: 42})

	depth := 200
	tree, chain := tc.BuildRandomChain(depth)

	require.Equal(t, depth+1, tree.Len())
	require.Equal(t, depth+1, len(chain))

	// Every link on the chain is one branch step.
	for level := 1; level <= depth; level++ {
		data := tree.Data(chain[level])
		require.Equal(t, chain[level-1], data.Parent)
		require.Equal(t, level, data.Code.CodeLength())
	}
}

func TestTreeLookups(t *testing.T) {
	tc := treetesting.NewTestContext(t, treetesting.TestConfig{})
	f := tc.BuildFiveNodeTree()

	root, err := f.Tree.RootNode()
	require.NoError(t, err)
	require.Equal(t, "A", root)

	i, ok := f.Tree.IndexForNode("D")
	require.True(t, ok)
	require.Equal(t, f.D, i)

	// Absence is an expected outcome, not an error.
	_, ok = f.Tree.IndexForNode("Z")
	require.False(t, ok)

	code, ok := f.Tree.CodeFromNode("E")
	require.True(t, ok)
	require.Equal(t, 3, code.CodeLength())

	_, ok = f.Tree.CodeFromNode("Z")
	require.False(t, ok)
}

func TestEmptyTreeRootNode(t *testing.T) {
	b := binarytree.NewBuilder[string]()
	tree := b.Finalize()

	_, err := tree.RootNode()
	require.ErrorIs(t, err, binarytree.ErrEmptyTree)
}
