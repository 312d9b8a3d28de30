package typeddata

import (
	"math/big"
	"strconv"

	"github.com/NethermindEth/juno/core/crypto"
	"github.com/NethermindEth/juno/core/felt"
)

// Revision identifies one of the two incompatible encoding protocols.
// Everything revision-specific (domain type name, hash primitives, type
// escaping, preset types) hangs off this value, so the encoding functions
// themselves stay revision-agnostic.
type Revision uint8

const (
	// RevisionLegacy is the original encoding: Pedersen hashes, unescaped
	// type strings, no preset types.
	RevisionLegacy Revision = 0
	// RevisionActive is the current encoding: Poseidon hashes, quoted type
	// strings, preset types and the extended basic type set.
	RevisionActive Revision = 1
)

func (r Revision) String() string {
	return strconv.Itoa(int(r))
}

// DomainTypeName returns the name under which the document domain must be
// declared in the type universe for this revision.
func (r Revision) DomainTypeName() string {
	if r == RevisionActive {
		return "StarknetDomain"
	}
	return "StarkNetDomain"
}

// HashElements folds a felt sequence into a single digest using the
// revision's array hash.
func (r Revision) HashElements(elems []*felt.Felt) *felt.Felt {
	if r == RevisionActive {
		return crypto.PoseidonArray(elems...)
	}
	return crypto.PedersenArray(elems...)
}

// PairHash combines two felts using the revision's two-ary hash.
func (r Revision) PairHash(a, b *felt.Felt) *felt.Felt {
	if r == RevisionActive {
		return crypto.Poseidon(a, b)
	}
	return crypto.Pedersen(a, b)
}

// escapeTypeName renders a type or field name the way the revision's type
// signature expects it: double-quoted under Active, verbatim under Legacy.
func (r Revision) escapeTypeName(s string) string {
	if r == RevisionActive {
		return `"` + s + `"`
	}
	return s
}

// presetTypes returns the struct types the revision predeclares. Presets
// behave like user declarations during encoding but hash with their own
// closed universe.
func (r Revision) presetTypes() Types {
	if r == RevisionActive {
		return activePresetTypes
	}
	return nil
}

var activePresetTypes = Types{
	"u256": {
		{Name: "low", Type: "u128"},
		{Name: "high", Type: "u128"},
	},
	"TokenAmount": {
		{Name: "token_address", Type: "ContractAddress"},
		{Name: "amount", Type: "u256"},
	},
	"NftId": {
		{Name: "collection_address", Type: "ContractAddress"},
		{Name: "token_id", Type: "u256"},
	},
}

// parseRevision maps a domain revision discriminant to a Revision. Both
// string and number forms are accepted; an absent (nil) value counts as
// Legacy. ok is false for any other value.
func parseRevision(v any) (rev Revision, ok bool) {
	switch value := v.(type) {
	case nil:
		return RevisionLegacy, true
	case string:
		switch value {
		case "0":
			return RevisionLegacy, true
		case "1":
			return RevisionActive, true
		}
	case float64:
		switch value {
		case 0:
			return RevisionLegacy, true
		case 1:
			return RevisionActive, true
		}
	case int:
		switch value {
		case 0:
			return RevisionLegacy, true
		case 1:
			return RevisionActive, true
		}
	}
	return 0, false
}

// fieldPrime is the Stark field modulus, 2^251 + 17*2^192 + 1. Range
// checks run against the integer value before reduction into the field.
var fieldPrime = func() *big.Int {
	p, ok := new(big.Int).SetString("800000000000011000000000000000000000000000000000000000000000001", 16)
	if !ok {
		panic("typeddata: bad field prime literal")
	}
	return p
}()

var (
	feltMax = new(big.Int).Sub(fieldPrime, big.NewInt(1))
	u128Max = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	i128Max = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	i128Min = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
)
