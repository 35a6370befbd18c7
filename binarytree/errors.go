package binarytree

import "errors"

var (
	ErrNotFound        = errors.New("node not present in the tree")
	ErrNoPath          = errors.New("no path between nodes")
	ErrEmptyTree       = errors.New("the tree has no nodes")
	ErrRootMustBeFirst = errors.New("the first node put into a tree must carry the empty code")
	ErrDuplicateNode   = errors.New("a node with this value is already in the tree")
	ErrFinalized       = errors.New("the builder has been finalized")
	ErrSnapshotInvalid = errors.New("the snapshot does not describe a consistent tree")
)
