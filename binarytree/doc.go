package binarytree

/*

# Treecode addressed binary tree container

This package stores a binary tree in structure-of-arrays form: node
values and tree linkage live in parallel slices indexed by the same
NodeIndex, rather than as linked heap objects. Each row carries the
node's treecode, its parent index and its two child indices.

Because every node is addressed by its treecode, "is there a path
between these two nodes" and "what is that path" are answered with
treecode arithmetic and a parent walk, in time proportional to the
path length, never by graph search over the whole tree.

## Two phase construction

Construction and query are separate phases with a single owner:

 1. a Builder accepts Put calls, in any order. Parent-before-child and
    child-before-parent both work; later insertions backfill whichever
    side of the link was missing.
 2. Finalize ends the mutation phase and returns the read-only Tree.

The split exists because downstream code holds positions into the
container during the read phase; nothing moves after Finalize.

## Invariants

1. index 0 is the root and carries the empty (length 0) code
2. a parent's code is a strict prefix of each child's code, one bit
   shorter, and the differing bit selects the child slot
3. the tree owns every stored treecode exclusively; Put clones the
   caller's code on the way in

There is no internal synchronization. Concurrent readers after
Finalize are safe; concurrent mutation is not detected.

*/
