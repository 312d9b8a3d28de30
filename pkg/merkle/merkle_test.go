package merkle

import (
	"testing"

	"github.com/NethermindEth/juno/core/crypto"
	"github.com/NethermindEth/juno/core/felt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feltFromUint(v uint64) *felt.Felt {
	return new(felt.Felt).SetUint64(v)
}

func feltRange(n int) []*felt.Felt {
	leaves := make([]*felt.Felt, n)
	for i := range leaves {
		leaves[i] = feltFromUint(uint64(i + 1))
	}
	return leaves
}

func TestNewTreeErrors(t *testing.T) {
	_, err := NewTree(crypto.Pedersen)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one leaf")

	_, err = NewTree(nil, feltFromUint(1))
	require.Error(t, err)
}

func TestSingleLeafIsItsOwnRoot(t *testing.T) {
	leaf := feltFromUint(42)
	tree, err := NewTree(crypto.Pedersen, leaf)
	require.NoError(t, err)
	assert.True(t, tree.Root().Equal(leaf))

	path, err := tree.Proof(leaf)
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.True(t, VerifyProof(tree.Root(), leaf, path, crypto.Pedersen))
}

func TestPairOrderIsCanonical(t *testing.T) {
	a, b := feltFromUint(1), feltFromUint(2)

	forward, err := NewTree(crypto.Pedersen, a, b)
	require.NoError(t, err)
	reversed, err := NewTree(crypto.Pedersen, b, a)
	require.NoError(t, err)

	assert.True(t, forward.Root().Equal(reversed.Root()))
	assert.True(t, forward.Root().Equal(crypto.Pedersen(a, b)))
}

func TestOddLevelPairsWithZero(t *testing.T) {
	a, b, c := feltFromUint(1), feltFromUint(2), feltFromUint(3)
	tree, err := NewTree(crypto.Pedersen, a, b, c)
	require.NoError(t, err)

	left := crypto.Pedersen(a, b)
	right := crypto.Pedersen(&felt.Zero, c) // zero sorts first
	want := HashPair(left, right, crypto.Pedersen)
	assert.True(t, tree.Root().Equal(want))
}

func TestProofRoundTrip(t *testing.T) {
	hashes := map[string]PairHashFunc{
		"pedersen": crypto.Pedersen,
		"poseidon": crypto.Poseidon,
	}

	for name, hash := range hashes {
		t.Run(name, func(t *testing.T) {
			leaves := feltRange(7)
			tree, err := NewTree(hash, leaves...)
			require.NoError(t, err)

			for _, leaf := range leaves {
				path, err := tree.Proof(leaf)
				require.NoError(t, err)
				assert.True(t, VerifyProof(tree.Root(), leaf, path, hash))
			}
		})
	}
}

func TestProofRejectsUnknownLeaf(t *testing.T) {
	tree, err := NewTree(crypto.Pedersen, feltRange(4)...)
	require.NoError(t, err)

	_, err = tree.Proof(feltFromUint(99))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestVerifyRejectsTamperedPath(t *testing.T) {
	leaves := feltRange(8)
	tree, err := NewTree(crypto.Poseidon, leaves...)
	require.NoError(t, err)

	path, err := tree.Proof(leaves[3])
	require.NoError(t, err)
	require.NotEmpty(t, path)

	assert.False(t, VerifyProof(tree.Root(), feltFromUint(99), path, crypto.Poseidon))

	path[0] = feltFromUint(12345)
	assert.False(t, VerifyProof(tree.Root(), leaves[3], path, crypto.Poseidon))
}

func TestLeavesReturnsCopy(t *testing.T) {
	tree, err := NewTree(crypto.Pedersen, feltRange(3)...)
	require.NoError(t, err)

	got := tree.Leaves()
	require.Len(t, got, 3)
	got[0] = feltFromUint(77)
	assert.True(t, tree.Leaves()[0].Equal(feltFromUint(1)))
}
