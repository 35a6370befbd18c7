package treedot_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-treecode/treedot"
	"github.com/forestrie/go-treecode/treetesting"
)

func TestEdgesFiveNodeTree(t *testing.T) {
	tc := treetesting.NewTestContext(t, treetesting.TestConfig{})
	f := tc.BuildFiveNodeTree()

	edges := treedot.Edges(f.Tree, treedot.BinaryLabeler)

	// Two slots per node.
	require.Equal(t, 2*f.Tree.Len(), len(edges))

	var real, synthetic int
	for _, e := range edges {
		if e.Synthetic {
			synthetic++
			require.Empty(t, e.ChildCode)
			continue
		}
		real++
	}

	// Four parent->child links exist; the other six slots are ragged.
	require.Equal(t, 4, real)
	require.Equal(t, 6, synthetic)
}

func TestEdgesBinaryLabels(t *testing.T) {
	tc := treetesting.NewTestContext(t, treetesting.TestConfig{})
	f := tc.BuildFiveNodeTree()

	edges := treedot.Edges(f.Tree, treedot.BinaryLabeler)

	// The first edge is root -> B: empty path to one left step.
	require.Equal(t, "1", edges[0].ParentLabel)
	require.Equal(t, "10", edges[0].ChildLabel)
}

func TestHashLabelerIsStableAndShort(t *testing.T) {
	tc := treetesting.NewTestContext(t, treetesting.TestConfig{})
	f := tc.BuildFiveNodeTree()

	code, ok := f.Tree.CodeFromNode("E")
	require.True(t, ok)

	fst := treedot.HashLabeler(code)
	snd := treedot.HashLabeler(code)
	require.Equal(t, fst, snd)
	require.Equal(t, 8, len(fst))

	other, ok := f.Tree.CodeFromNode("B")
	require.True(t, ok)
	require.NotEqual(t, fst, treedot.HashLabeler(other))
}

func TestWriteDot(t *testing.T) {
	tc := treetesting.NewTestContext(t, treetesting.TestConfig{})
	f := tc.BuildFiveNodeTree()

	var sb strings.Builder
	require.NoError(t, treedot.WriteDot(&sb, f.Tree, treedot.BinaryLabeler))

	out := sb.String()
	require.True(t, strings.HasPrefix(out, "digraph treecode {"))
	require.Contains(t, out, `"1" -> "10";`)
	require.Contains(t, out, `"10" -> "100";`) // B -> C
	require.Contains(t, out, `"10" -> "110";`) // B -> D
	require.Contains(t, out, `"110" -> "1110";`) // D -> E
	require.Contains(t, out, "[shape=point]")
	require.True(t, strings.HasSuffix(strings.TrimSpace(out), "}"))
}

func TestRenderSkipsWhenUnconfigured(t *testing.T) {
	tc := treetesting.NewTestContext(t, treetesting.TestConfig{})
	f := tc.BuildFiveNodeTree()

	outPath := filepath.Join(t.TempDir(), "tree.png")

	// No dot binary configured: render is a logged no-op.
	err := treedot.Render(context.Background(), f.Tree, outPath,
		treedot.WithLogger(tc.Log))
	require.NoError(t, err)

	_, err = os.Stat(outPath)
	require.True(t, os.IsNotExist(err))
}

func TestRenderFailsWithBadBinary(t *testing.T) {
	tc := treetesting.NewTestContext(t, treetesting.TestConfig{})
	f := tc.BuildFiveNodeTree()

	outPath := filepath.Join(t.TempDir(), "tree.png")

	err := treedot.Render(context.Background(), f.Tree, outPath,
		treedot.WithDotPath(filepath.Join(t.TempDir(), "no-such-dot")),
		treedot.WithLabeler(treedot.HashLabeler),
		treedot.WithFormat("svg"))
	require.Error(t, err)
}
