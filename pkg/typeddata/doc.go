// Package typeddata computes Starknet off-chain message digests from
// structured, JSON-round-trippable documents.
//
// A document declares a universe of struct types, a domain separator and
// a message, and hashes to a single field element that an account signs.
// The same document always hashes to the same digest, and any change to
// the types, the domain or the message values changes it.
//
// # Revisions
//
// Two incompatible protocol revisions exist and every operation takes the
// target Revision explicitly:
//
//   - RevisionLegacy (0): Pedersen hashes, verbatim type signatures, domain
//     declared as "StarkNetDomain".
//   - RevisionActive (1): Poseidon hashes, double-quoted type signatures,
//     domain declared as "StarknetDomain", preset types (u256, TokenAmount,
//     NftId) and an extended basic type set (u128, i128, timestamp, string
//     as byte array, structural enums).
//
// A document carries its revision in the domain's "revision" value;
// (*TypedData).Revision resolves it against the declared domain form.
//
// # Hashing a document
//
//	td, err := typeddata.ParseJSON(raw)
//	if err != nil {
//	    return err
//	}
//	hash, err := td.MessageHash("0x52963fd79dd3d7d7eea2952ec9d4b4345c1bdaa8661cf10e26cd87c1aa65a1b")
//
// The digest folds a fixed prefix, the domain struct hash, the signer
// address and the message struct hash with the revision's array hash.
//
// # Lower-level operations
//
// The intermediate stages are exported for callers that need them:
// GetDependencies resolves which struct types a root type pulls in,
// EncodeType renders the canonical type signature, GetTypeHash hashes it,
// EncodeValue encodes a single value and GetStructHash hashes a whole
// struct value.
//
// # Errors
//
// All failures wrap a small set of sentinel errors (ErrSchemaMismatch,
// ErrMissingField, ErrOutOfRange, ErrTypeMismatch, ErrUnsupportedType,
// ErrNotConvertible and friends), so callers can classify them with
// errors.Is.
package typeddata
