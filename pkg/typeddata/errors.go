package typeddata

import "fmt"

var (
	// Document shape errors
	ErrSchemaMismatch     = fmt.Errorf("typed data does not match the expected schema")
	ErrUnresolvedRevision = fmt.Errorf("%w: unable to resolve document revision", ErrSchemaMismatch)
	ErrMissingField       = fmt.Errorf("missing value for field")

	// Value encoding errors
	ErrOutOfRange       = fmt.Errorf("value out of range for type")
	ErrTypeMismatch     = fmt.Errorf("value does not match the declared type")
	ErrUnsupportedType  = fmt.Errorf("unsupported type")
	ErrNotConvertible   = fmt.Errorf("value is not convertible to a field element")
	ErrMaxDepthExceeded = fmt.Errorf("maximum encoding depth exceeded")

	// Merkle tree field errors
	ErrInvalidMerkleTree = fmt.Errorf("invalid merkletree declaration")
)
