// Package merkle builds Merkle trees over Starknet field elements.
//
// Pairs are hashed with the smaller operand first, so membership proofs
// carry no left/right flags. Levels with an odd node count pair the last
// node with zero.
package merkle

import (
	"fmt"

	"github.com/NethermindEth/juno/core/felt"
)

// PairHashFunc combines two nodes into their parent node.
type PairHashFunc func(a, b *felt.Felt) *felt.Felt

// Tree is an immutable Merkle tree built from a fixed set of leaves.
type Tree struct {
	levels [][]*felt.Felt
	hash   PairHashFunc
}

// NewTree builds a tree from the given leaves. At least one leaf is
// required; a single leaf is its own root.
func NewTree(hash PairHashFunc, leaves ...*felt.Felt) (*Tree, error) {
	if hash == nil {
		return nil, fmt.Errorf("pair hash function is required")
	}
	if len(leaves) == 0 {
		return nil, fmt.Errorf("merkle tree requires at least one leaf")
	}

	t := &Tree{hash: hash}
	level := append([]*felt.Felt(nil), leaves...)
	t.levels = append(t.levels, level)
	for len(level) > 1 {
		parents := make([]*felt.Felt, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			if i+1 == len(level) {
				parents = append(parents, HashPair(level[i], &felt.Zero, hash))
			} else {
				parents = append(parents, HashPair(level[i], level[i+1], hash))
			}
		}
		t.levels = append(t.levels, parents)
		level = parents
	}
	return t, nil
}

// Root returns the tree root.
func (t *Tree) Root() *felt.Felt {
	top := t.levels[len(t.levels)-1]
	return top[0]
}

// Leaves returns the leaf level in insertion order.
func (t *Tree) Leaves() []*felt.Felt {
	return append([]*felt.Felt(nil), t.levels[0]...)
}

// Proof returns the sibling path from the given leaf up to the root.
// When the same value appears more than once, the path for its first
// occurrence is returned.
func (t *Tree) Proof(leaf *felt.Felt) ([]*felt.Felt, error) {
	idx := -1
	for i, l := range t.levels[0] {
		if l.Equal(leaf) {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, fmt.Errorf("leaf %s not found in tree", leaf)
	}

	var path []*felt.Felt
	for _, level := range t.levels[:len(t.levels)-1] {
		sibling := &felt.Zero
		if pair := idx ^ 1; pair < len(level) {
			sibling = level[pair]
		}
		path = append(path, sibling)
		idx /= 2
	}
	return path, nil
}

// VerifyProof folds a leaf through the sibling path and reports whether
// it reproduces the root.
func VerifyProof(root, leaf *felt.Felt, path []*felt.Felt, hash PairHashFunc) bool {
	node := leaf
	for _, sibling := range path {
		node = HashPair(node, sibling, hash)
	}
	return node.Equal(root)
}

// HashPair hashes two nodes with the smaller operand first.
func HashPair(a, b *felt.Felt, hash PairHashFunc) *felt.Felt {
	if a.Cmp(b) > 0 {
		a, b = b, a
	}
	return hash(a, b)
}
