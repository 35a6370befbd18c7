package binarytree

import (
	"fmt"

	"github.com/forestrie/go-treecode/cborcodec"
	"github.com/forestrie/go-treecode/treecode"
)

// A snapshot is the CBOR form of a finalized tree: node values plus
// the linkage rows, in index order. The bytes are handed to the caller
// whole; where they are kept is not this package's concern. Restoring
// rebuilds the value index and re-checks the linkage invariants, so a
// snapshot from an untrusted store cannot smuggle in an inconsistent
// tree.

const snapshotVersion = 1

type snapshotRow struct {
	Code     *treecode.Treecode `cbor:"1,keyasint"`
	Parent   int                `cbor:"2,keyasint"`
	Children [2]int             `cbor:"3,keyasint"`
}

type snapshot[N comparable] struct {
	Version int           `cbor:"1,keyasint"`
	Nodes   []N           `cbor:"2,keyasint"`
	Rows    []snapshotRow `cbor:"3,keyasint"`
}

// Snapshot serializes the tree. N must itself be CBOR serializable.
func (t *Tree[N]) Snapshot() ([]byte, error) {
	codec, err := cborcodec.NewDefault()
	if err != nil {
		return nil, err
	}

	s := snapshot[N]{
		Version: snapshotVersion,
		Nodes:   t.nodes,
		Rows:    make([]snapshotRow, len(t.treeData)),
	}
	for i, row := range t.treeData {
		s.Rows[i] = snapshotRow{
			Code:     row.Code,
			Parent:   int(row.Parent),
			Children: [2]int{int(row.Children[0]), int(row.Children[1])},
		}
	}

	return codec.MarshalCBOR(s)
}

// RestoreTree decodes a snapshot back into a read-only tree,
// revalidating the parent/child/code invariants row by row.
func RestoreTree[N comparable](data []byte) (*Tree[N], error) {
	codec, err := cborcodec.NewDefault()
	if err != nil {
		return nil, err
	}

	var s snapshot[N]
	if err = codec.UnmarshalInto(data, &s); err != nil {
		return nil, err
	}
	if s.Version != snapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d: %w", s.Version, ErrSnapshotInvalid)
	}
	if len(s.Nodes) != len(s.Rows) {
		return nil, fmt.Errorf("node and row counts differ: %w", ErrSnapshotInvalid)
	}

	t := &Tree[N]{
		nodes:    s.Nodes,
		treeData: make([]TreeData, len(s.Rows)),
		index:    make(map[N]NodeIndex, len(s.Nodes)),
	}

	for i, row := range s.Rows {
		t.treeData[i] = TreeData{
			Code:     row.Code,
			Parent:   NodeIndex(row.Parent),
			Children: [2]NodeIndex{NodeIndex(row.Children[0]), NodeIndex(row.Children[1])},
		}
	}

	for i, node := range t.nodes {
		if _, ok := t.index[node]; ok {
			return nil, fmt.Errorf("duplicate node value at index %d: %w", i, ErrSnapshotInvalid)
		}
		t.index[node] = NodeIndex(i)
	}

	if err = t.validateLinkage(); err != nil {
		return nil, err
	}

	return t, nil
}

// validateLinkage re-checks the construction invariants: index 0 is
// the root with the empty code, every parent's code is a strict prefix
// of its child's code exactly one bit shorter, the branch bit between
// them selects the child slot that names the child, and every named
// child names the row back as its parent. Both link directions are
// checked so a crafted snapshot cannot plant a dangling or circular
// child reference for NodesUnder to walk into.
func (t *Tree[N]) validateLinkage() error {
	if len(t.treeData) == 0 {
		return nil
	}
	if t.treeData[0].Code == nil || t.treeData[0].Code.CodeLength() != 0 {
		return fmt.Errorf("index 0 does not carry the empty code: %w", ErrSnapshotInvalid)
	}

	for i, row := range t.treeData {
		if row.Code == nil {
			return fmt.Errorf("index %d has no code: %w", i, ErrSnapshotInvalid)
		}

		for _, child := range row.Children {
			if child == NoIndex {
				continue
			}
			if !t.inRange(child) {
				return fmt.Errorf("index %d names absent child %d: %w", i, child, ErrSnapshotInvalid)
			}
			if child == NodeIndex(i) {
				return fmt.Errorf("index %d names itself as a child: %w", i, ErrSnapshotInvalid)
			}
			if t.treeData[child].Parent != NodeIndex(i) {
				return fmt.Errorf("child %d of index %d does not name it as parent: %w", child, i, ErrSnapshotInvalid)
			}
		}

		if row.Parent == NoIndex {
			continue
		}
		if !t.inRange(row.Parent) {
			return fmt.Errorf("index %d names absent parent %d: %w", i, row.Parent, ErrSnapshotInvalid)
		}

		parentCode := t.treeData[row.Parent].Code
		if parentCode.CodeLength()+1 != row.Code.CodeLength() || !parentCode.IsPrefixOf(row.Code) {
			return fmt.Errorf("index %d is not one branch below parent %d: %w", i, row.Parent, ErrSnapshotInvalid)
		}

		branch := parentCode.NextStepTowards(row.Code)
		if t.treeData[row.Parent].Children[branch] != NodeIndex(i) {
			return fmt.Errorf("parent %d does not name index %d on its %v slot: %w",
				row.Parent, i, branch, ErrSnapshotInvalid)
		}
	}

	return nil
}
