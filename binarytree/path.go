package binarytree

import (
	"fmt"

	"github.com/forestrie/go-treecode/treecode"
)

// PathEndpoints names the two ends of a path query, by node index.
type PathEndpoints struct {
	Source      NodeIndex
	Destination NodeIndex
}

// SortEndpointIndices verifies a monotonic path exists between the
// endpoints and orders them ancestor first, swapping in place when the
// caller supplied them descendant first. It reports whether a swap
// occurred.
//
// An endpoint index outside the tree fails with ErrNotFound; endpoints
// that are present but on unrelated subtrees fail with ErrNoPath. The
// two failures are distinct because a caller may legitimately ask
// about nodes it is not sure are linked.
func (t *Tree[N]) SortEndpointIndices(endpoints *PathEndpoints) (bool, error) {
	if !t.inRange(endpoints.Source) {
		return false, fmt.Errorf("source index %d: %w", endpoints.Source, ErrNotFound)
	}
	if !t.inRange(endpoints.Destination) {
		return false, fmt.Errorf("destination index %d: %w", endpoints.Destination, ErrNotFound)
	}

	sourceCode := t.treeData[endpoints.Source].Code
	destCode := t.treeData[endpoints.Destination].Code

	if !treecode.PathExists(sourceCode, destCode) {
		return false, ErrNoPath
	}

	if sourceCode.CodeLength() > destCode.CodeLength() {
		endpoints.Source, endpoints.Destination = endpoints.Destination, endpoints.Source
		return true, nil
	}

	return false, nil
}

// SortEndpoints resolves two node values to indices and orders them
// ancestor first. A value absent from the tree fails with ErrNotFound
// before any path check happens.
func (t *Tree[N]) SortEndpoints(source, destination N) (PathEndpoints, bool, error) {
	src, ok := t.index[source]
	if !ok {
		return PathEndpoints{}, false, fmt.Errorf("source node: %w", ErrNotFound)
	}
	dst, ok := t.index[destination]
	if !ok {
		return PathEndpoints{}, false, fmt.Errorf("destination node: %w", ErrNotFound)
	}

	endpoints := PathEndpoints{Source: src, Destination: dst}
	swapped, err := t.SortEndpointIndices(&endpoints)
	return endpoints, swapped, err
}

// Path returns the ordered, inclusive chain of indices connecting the
// endpoints, from the caller's source to the caller's destination.
//
// Internally the walk always runs descendant to ancestor: the result
// length is exactly destLen-srcLen+1, the buffer fills backwards by
// repeated parent steps (each step shortens the code by exactly one
// bit, by the tree invariant), and the whole buffer reverses when the
// caller's endpoints arrived descendant first. The caller's stated
// direction is always preserved.
func (t *Tree[N]) Path(endpoints PathEndpoints) ([]NodeIndex, error) {
	sorted := endpoints
	swapped, err := t.SortEndpointIndices(&sorted)
	if err != nil {
		return nil, err
	}

	sourceCode := t.treeData[sorted.Source].Code
	destCode := t.treeData[sorted.Destination].Code

	length := destCode.CodeLength() - sourceCode.CodeLength() + 1

	path := make([]NodeIndex, length)
	path[0] = sorted.Source

	current := sorted.Destination
	for i := 0; i < length-1; i++ {
		path[length-1-i] = current
		current = t.treeData[current].Parent
	}

	if swapped {
		for i, j := 0, length-1; i < j; i, j = i+1, j-1 {
			path[i], path[j] = path[j], path[i]
		}
	}

	return path, nil
}

// PathBetween is Path for endpoints named by node value rather than
// index.
func (t *Tree[N]) PathBetween(source, destination N) ([]NodeIndex, error) {
	endpoints, swapped, err := t.SortEndpoints(source, destination)
	if err != nil {
		return nil, err
	}

	// SortEndpoints already ordered them; recover the caller's
	// direction by undoing the swap before querying.
	if swapped {
		endpoints.Source, endpoints.Destination = endpoints.Destination, endpoints.Source
	}

	return t.Path(endpoints)
}
