package typeddata

import (
	"testing"

	"github.com/NethermindEth/juno/core/felt"
	"github.com/stretchr/testify/require"
)

// The classic mail document, the reference fixture for the Legacy
// revision since the earliest typed-data implementations.
const legacyMailJSON = `{
	"types": {
		"StarkNetDomain": [
			{ "name": "name", "type": "felt" },
			{ "name": "version", "type": "felt" },
			{ "name": "chainId", "type": "felt" }
		],
		"Person": [
			{ "name": "name", "type": "felt" },
			{ "name": "wallet", "type": "felt" }
		],
		"Mail": [
			{ "name": "from", "type": "Person" },
			{ "name": "to", "type": "Person" },
			{ "name": "contents", "type": "felt" }
		]
	},
	"primaryType": "Mail",
	"domain": { "name": "StarkNet Mail", "version": "1", "chainId": 1 },
	"message": {
		"from": { "name": "Cow", "wallet": "0xCD2a3d9F938E13CD947Ec05AbC7FE734Df8DD826" },
		"to": { "name": "Bob", "wallet": "0xbBbBBBBbbBBBbbbBbbBbbbbBBbBbbbbBbBbbBBbB" },
		"contents": "Hello, Bob!"
	}
}`

const legacyMailAccount = "0xCD2a3d9F938E13CD947Ec05AbC7FE734Df8DD826"

// Every basic type of the Active revision in one message.
const activeBaseTypesJSON = `{
	"types": {
		"StarknetDomain": [
			{ "name": "name", "type": "shortstring" },
			{ "name": "version", "type": "shortstring" },
			{ "name": "chainId", "type": "shortstring" },
			{ "name": "revision", "type": "shortstring" }
		],
		"Example": [
			{ "name": "n0", "type": "felt" },
			{ "name": "n1", "type": "bool" },
			{ "name": "n2", "type": "string" },
			{ "name": "n3", "type": "selector" },
			{ "name": "n4", "type": "u128" },
			{ "name": "n5", "type": "ContractAddress" },
			{ "name": "n6", "type": "ClassHash" },
			{ "name": "n7", "type": "timestamp" },
			{ "name": "n8", "type": "shortstring" }
		]
	},
	"primaryType": "Example",
	"domain": {
		"name": "StarkNet Mail",
		"version": "1",
		"chainId": "1",
		"revision": "1"
	},
	"message": {
		"n0": "0x3e8",
		"n1": true,
		"n2": "transfer",
		"n3": "transfer",
		"n4": 10,
		"n5": "0x3e8",
		"n6": "0x3e8",
		"n7": 1000,
		"n8": "transfer"
	}
}`

// A structural enum document: one variant selected, tuple payload.
const activeEnumJSON = `{
	"types": {
		"StarknetDomain": [
			{ "name": "name", "type": "shortstring" },
			{ "name": "version", "type": "shortstring" },
			{ "name": "chainId", "type": "shortstring" },
			{ "name": "revision", "type": "shortstring" }
		],
		"Example": [
			{ "name": "someEnum", "type": "enum", "contains": "My Enum" }
		],
		"My Enum": [
			{ "name": "Variant 1", "type": "()" },
			{ "name": "Variant 2", "type": "(u128,u128*)" },
			{ "name": "Variant 3", "type": "(u128)" }
		]
	},
	"primaryType": "Example",
	"domain": {
		"name": "StarkNet Mail",
		"version": "1",
		"chainId": "1",
		"revision": "1"
	},
	"message": {
		"someEnum": { "Variant 2": [2, [0, 1]] }
	}
}`

// Preset struct types referenced without being declared.
const activePresetJSON = `{
	"types": {
		"StarknetDomain": [
			{ "name": "name", "type": "shortstring" },
			{ "name": "version", "type": "shortstring" },
			{ "name": "chainId", "type": "shortstring" },
			{ "name": "revision", "type": "shortstring" }
		],
		"Example": [
			{ "name": "n0", "type": "TokenAmount" },
			{ "name": "n1", "type": "NftId" }
		]
	},
	"primaryType": "Example",
	"domain": {
		"name": "StarkNet Mail",
		"version": "1",
		"chainId": "1",
		"revision": "1"
	},
	"message": {
		"n0": {
			"token_address": "0x49d36570d4e46f48e99674bd3fcc84644ddd6b96f7c741b1562b82f9e004dc7",
			"amount": { "low": "0x616", "high": "0x0" }
		},
		"n1": {
			"collection_address": "0x49d36570d4e46f48e99674bd3fcc84644ddd6b96f7c741b1562b82f9e004dc7",
			"token_id": { "low": "0x265", "high": "0x0" }
		}
	}
}`

// A session permission document with a merkletree of policies.
const legacySessionJSON = `{
	"types": {
		"StarkNetDomain": [
			{ "name": "name", "type": "felt" },
			{ "name": "version", "type": "felt" },
			{ "name": "chainId", "type": "felt" }
		],
		"Policy": [
			{ "name": "contractAddress", "type": "felt" },
			{ "name": "selector", "type": "selector" }
		],
		"Session": [
			{ "name": "key", "type": "felt" },
			{ "name": "expires", "type": "felt" },
			{ "name": "root", "type": "merkletree", "contains": "Policy" }
		]
	},
	"primaryType": "Session",
	"domain": { "name": "StarkNet Mail", "version": "1", "chainId": 1 },
	"message": {
		"key": "0x1234",
		"expires": "0x5678",
		"root": [
			{ "contractAddress": "0x1", "selector": "transfer" },
			{ "contractAddress": "0x2", "selector": "transfer" },
			{ "contractAddress": "0x3", "selector": "transfer" }
		]
	}
}`

func mustParse(t *testing.T, doc string) *TypedData {
	t.Helper()
	td, err := ParseJSON([]byte(doc))
	require.NoError(t, err)
	return td
}

func hexFelt(t *testing.T, s string) *felt.Felt {
	t.Helper()
	f, err := new(felt.Felt).SetString(s)
	require.NoError(t, err)
	return f
}
