package typeddata

import (
	"fmt"

	"github.com/NethermindEth/juno/core/felt"
)

// GetStructHash hashes a struct value: the type hash followed by each
// field's digest in declaration order, folded with the revision's array
// hash. Under Active the preset type names resolve even when the universe
// does not declare them.
func GetStructHash(types Types, name string, data map[string]any, rev Revision) (*felt.Felt, error) {
	return structHash(types, name, data, rev, 0)
}

func structHash(types Types, name string, data map[string]any, rev Revision, depth int) (*felt.Felt, error) {
	encoded, err := encodeData(types, name, data, rev, depth)
	if err != nil {
		return nil, err
	}
	return rev.HashElements(encoded), nil
}

// encodeData produces the element sequence a struct value hashes over.
// Every declared field must have a value; null stands only for an absent
// enum variant.
func encodeData(types Types, name string, data map[string]any, rev Revision, depth int) ([]*felt.Felt, error) {
	fields, ok := types[name]
	if !ok {
		fields, ok = rev.presetTypes()[name]
	}
	if !ok {
		return nil, fmt.Errorf("%w: type %q is not declared", ErrSchemaMismatch, name)
	}

	encoded := make([]*felt.Felt, 0, len(fields)+1)
	encoded = append(encoded, GetTypeHash(types, name, rev))
	for _, field := range fields {
		value, present := data[field.Name]
		if !present || (value == nil && field.Type != "enum") {
			return nil, fmt.Errorf("%w: %q of %q", ErrMissingField, field.Name, name)
		}
		ctx := &fieldContext{parent: name, field: field.Name}
		_, digest, err := encodeValue(types, field.Type, value, ctx, rev, depth+1)
		if err != nil {
			return nil, fmt.Errorf("field %q of %q: %w", field.Name, name, err)
		}
		encoded = append(encoded, digest)
	}
	return encoded, nil
}
