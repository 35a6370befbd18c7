// Package treetesting provides shared fixtures for tests of the
// treecode tree container.
package treetesting

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/forestrie/go-treecode/binarytree"
	"github.com/forestrie/go-treecode/treecode"
)

type TestConfig struct {
	// The RNG is seeded with Seed so generated trees are the same from
	// run to run. Force it to a fixed value for reproducible data.
	Seed        int64
	LabelPrefix string // can be ""
}

type TestContext struct {
	T    *testing.T
	Log  *zap.Logger
	Rand *rand.Rand
	Cfg  TestConfig
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	if cfg.LabelPrefix == "" {
		cfg.LabelPrefix = "treetest"
	}
	return TestContext{
		T:    t,
		Log:  zaptest.NewLogger(t),
		Rand: rand.New(rand.NewSource(cfg.Seed)),
		Cfg:  cfg,
	}
}

// Fixture is the canonical five node tree:
//
//	      A
//	     /
//	    B
//	   / \
//	  C   D
//	       \
//	        E
//
// B is A+left, C is B+left, D is B+right, E is D+right. E is inserted
// before its parent D so the fixture always exercises the bottom-up
// parent backfill path.
type Fixture struct {
	Tree          *binarytree.Tree[string]
	A, B, C, D, E binarytree.NodeIndex
}

func (c *TestContext) BuildFiveNodeTree() Fixture {
	b := binarytree.NewBuilder[string]()

	codeA := treecode.New()
	codeB := codeA.Clone()
	codeB.Append(treecode.Left)
	codeC := codeB.Clone()
	codeC.Append(treecode.Left)
	codeD := codeB.Clone()
	codeD.Append(treecode.Right)
	codeE := codeD.Clone()
	codeE.Append(treecode.Right)

	var f Fixture
	var err error

	f.A, err = b.Put("A", binarytree.NewTreeData(codeA))
	require.NoError(c.T, err)

	dataB := binarytree.NewTreeData(codeB)
	dataB.Parent = f.A
	f.B, err = b.Put("B", dataB)
	require.NoError(c.T, err)

	dataC := binarytree.NewTreeData(codeC)
	dataC.Parent = f.B
	f.C, err = b.Put("C", dataC)
	require.NoError(c.T, err)

	// E arrives before its parent D.
	f.E, err = b.Put("E", binarytree.NewTreeData(codeE))
	require.NoError(c.T, err)

	dataD := binarytree.NewTreeData(codeD)
	dataD.Parent = f.B
	dataD.Children[treecode.Right] = f.E
	f.D, err = b.Put("D", dataD)
	require.NoError(c.T, err)

	f.Tree = b.Finalize()
	return f
}

// BuildRandomChain builds a single root to leaf chain of the given
// depth with randomly chosen branches and unique labels, returning the
// tree and the chain indices in root first order.
func (c *TestContext) BuildRandomChain(depth int) (*binarytree.Tree[string], []binarytree.NodeIndex) {
	b := binarytree.NewBuilder[string](binarytree.WithInitialCapacity(depth + 1))

	chain := make([]binarytree.NodeIndex, 0, depth+1)

	code := treecode.New()
	root, err := b.PutAssumesCapacity(c.label(0), binarytree.NewTreeData(code))
	require.NoError(c.T, err)
	chain = append(chain, root)

	for level := 1; level <= depth; level++ {
		branch := treecode.Branch(c.Rand.Intn(2))
		code = code.Clone()
		code.Append(branch)

		data := binarytree.NewTreeData(code)
		data.Parent = chain[level-1]

		i, err := b.PutAssumesCapacity(c.label(level), data)
		require.NoError(c.T, err)
		chain = append(chain, i)
	}

	return b.Finalize(), chain
}

func (c *TestContext) label(level int) string {
	return fmt.Sprintf("%s-%d-%s", c.Cfg.LabelPrefix, level, uuid.NewString())
}
