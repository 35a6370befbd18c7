package treecode

/*

# Treecode primitives

This package provides a binary encoding for the address of a node in a
binary tree: the root-to-node path packed, one bit per tree level, into
a growable slice of uint64 words.

It follows the same "functional primitives" style as binary position
arithmetic packages:

- small, composable functions
- explicit bit layouts
- a burden of knowledge on the caller for hot paths

## Encoding

The path is read from LSB to MSB, least significant word first. Between
the final step and the unused space there is a single sentinel bit
(0b1), which is always the highest set bit across the whole word slice.

	0b1011 => sentinel (0b1) + path (011 read right to left)
	        = right(1), right(1), left(0) from the root

Path step directions:

	0: left child
	1: right child

A code whose only set bit is the sentinel (word 0 == 0b1) addresses the
root, and has code length 0.

## Core invariants

1. exactly one sentinel bit is set; every bit above it is zero
2. CodeLength is the bit position of the sentinel, never stored
3. backing storage only ever grows, and grows by doubling

Because the sentinel doubles as the length marker, CodeLength, Append
and IsPrefixOf all depend on it consistently. There is deliberately no
separate length field to fall out of sync.

## Ownership

Every Treecode exclusively owns its word slice. Clone deep-copies;
Append mutates in place (reallocating on growth). Nothing in this
package aliases a word slice between two codes.

*/
