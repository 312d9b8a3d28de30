package typeddata

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/NethermindEth/juno/core/crypto"
	"github.com/NethermindEth/juno/core/felt"

	"github.com/erc7824/snip12/pkg/merkle"
	"github.com/erc7824/snip12/pkg/shortstring"
)

// maxEncodingDepth bounds value recursion so that cyclic type universes
// fail with an error instead of exhausting the stack.
const maxEncodingDepth = 32

// valueKind is the closed set of encodings a field type can resolve to.
// Classification depends only on the type universe, the type string and
// the revision, never on the value.
type valueKind uint8

const (
	kindStruct valueKind = iota
	kindPreset
	kindArray
	kindEnum
	kindMerkleTree
	kindSelector
	kindString
	kindI128
	kindU128
	kindFelt
	kindAddress
	kindBool
	kindUnknown
)

func classifyType(types Types, fieldType string, rev Revision) valueKind {
	if _, ok := types[fieldType]; ok {
		return kindStruct
	}
	if _, ok := rev.presetTypes()[fieldType]; ok {
		return kindPreset
	}
	if strings.HasSuffix(fieldType, "*") {
		return kindArray
	}
	switch fieldType {
	case "enum":
		return kindEnum
	case "merkletree":
		return kindMerkleTree
	case "selector":
		return kindSelector
	case "string":
		return kindString
	case "i128":
		return kindI128
	case "u128", "timestamp":
		return kindU128
	case "felt", "shortstring":
		return kindFelt
	case "ClassHash", "ContractAddress":
		return kindAddress
	case "bool":
		return kindBool
	}
	return kindUnknown
}

// fieldContext names the declaration a value was reached through: the
// enclosing struct type and the field within it. Enum and merkletree
// encodings resolve their inner type from it; every other kind ignores it.
type fieldContext struct {
	parent string
	field  string
}

// EncodeValue encodes a single value of the given type. It returns the
// tag the value contributes to the encoded form (the declared type, or
// "felt" for selector and merkletree digests) together with the value's
// digest. Enum and merkletree types need their enclosing declaration and
// are only encodable through GetStructHash.
func EncodeValue(types Types, fieldType string, value any, rev Revision) (string, *felt.Felt, error) {
	return encodeValue(types, fieldType, value, nil, rev, 0)
}

func encodeValue(types Types, fieldType string, value any, ctx *fieldContext, rev Revision, depth int) (string, *felt.Felt, error) {
	if depth > maxEncodingDepth {
		return "", nil, fmt.Errorf("%w (limit %d)", ErrMaxDepthExceeded, maxEncodingDepth)
	}

	switch classifyType(types, fieldType, rev) {
	case kindStruct:
		m, ok := value.(map[string]any)
		if !ok {
			return "", nil, fmt.Errorf("%w: %s value must be an object, got %T", ErrTypeMismatch, fieldType, value)
		}
		h, err := structHash(types, fieldType, m, rev, depth)
		if err != nil {
			return "", nil, err
		}
		return fieldType, h, nil

	case kindPreset:
		m, ok := value.(map[string]any)
		if !ok {
			return "", nil, fmt.Errorf("%w: %s value must be an object, got %T", ErrTypeMismatch, fieldType, value)
		}
		// Preset structs hash inside their own closed universe.
		h, err := structHash(rev.presetTypes(), fieldType, m, rev, depth)
		if err != nil {
			return "", nil, err
		}
		return fieldType, h, nil

	case kindArray:
		items, ok := value.([]any)
		if !ok {
			return "", nil, fmt.Errorf("%w: %s value must be an array, got %T", ErrTypeMismatch, fieldType, value)
		}
		elemType := strings.TrimSuffix(fieldType, "*")
		digests := make([]*felt.Felt, len(items))
		for i, item := range items {
			_, d, err := encodeValue(types, elemType, item, nil, rev, depth+1)
			if err != nil {
				return "", nil, fmt.Errorf("array element %d: %w", i, err)
			}
			digests[i] = d
		}
		return fieldType, rev.HashElements(digests), nil

	case kindEnum:
		return encodeEnum(types, value, ctx, rev, depth)

	case kindMerkleTree:
		return encodeMerkleTree(types, value, ctx, rev, depth)

	case kindSelector:
		s, ok := value.(string)
		if !ok {
			return "", nil, fmt.Errorf("%w: selector value must be a string, got %T", ErrTypeMismatch, value)
		}
		if hexPattern.MatchString(s) {
			n, ok := new(big.Int).SetString(s[2:], 16)
			if !ok {
				return "", nil, fmt.Errorf("%w: %q", ErrNotConvertible, s)
			}
			f, err := bigToFelt(n)
			if err != nil {
				return "", nil, err
			}
			return "felt", f, nil
		}
		return "felt", crypto.StarknetKeccak([]byte(s)), nil

	case kindString:
		if rev != RevisionActive {
			return encodeScalarLenient(fieldType, value)
		}
		s, ok := value.(string)
		if !ok {
			return "", nil, fmt.Errorf("%w: string value must be a string, got %T", ErrTypeMismatch, value)
		}
		ba, err := shortstring.FromString(s)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %v", ErrNotConvertible, err)
		}
		elems := make([]*felt.Felt, 0, len(ba.Data)+3)
		elems = append(elems, new(felt.Felt).SetUint64(uint64(len(ba.Data))))
		elems = append(elems, ba.Data...)
		elems = append(elems, ba.PendingWord, new(felt.Felt).SetUint64(uint64(ba.PendingWordLen)))
		return fieldType, rev.HashElements(elems), nil

	case kindI128:
		if rev != RevisionActive {
			return encodeScalarLenient(fieldType, value)
		}
		n, err := toBigStrict(value)
		if err != nil {
			return "", nil, err
		}
		if err := assertRange(n, fieldType, i128Min, i128Max); err != nil {
			return "", nil, err
		}
		if n.Sign() < 0 {
			n = new(big.Int).Add(n, fieldPrime)
		}
		f, err := bigToFelt(n)
		if err != nil {
			return "", nil, err
		}
		return fieldType, f, nil

	case kindU128:
		if rev != RevisionActive {
			return encodeScalarLenient(fieldType, value)
		}
		n, err := toBigStrict(value)
		if err != nil {
			return "", nil, err
		}
		if err := assertRange(n, fieldType, bigZero, u128Max); err != nil {
			return "", nil, err
		}
		f, err := bigToFelt(n)
		if err != nil {
			return "", nil, err
		}
		return fieldType, f, nil

	case kindFelt, kindAddress:
		if rev != RevisionActive {
			return encodeScalarLenient(fieldType, value)
		}
		n, err := toBigLenient(value)
		if err != nil {
			return "", nil, err
		}
		if err := assertRange(n, fieldType, bigZero, feltMax); err != nil {
			return "", nil, err
		}
		f, err := bigToFelt(n)
		if err != nil {
			return "", nil, err
		}
		return fieldType, f, nil

	case kindBool:
		if rev != RevisionActive {
			return encodeScalarLenient(fieldType, value)
		}
		b, ok := value.(bool)
		if !ok {
			return "", nil, fmt.Errorf("%w: bool value must be a native boolean, got %T", ErrTypeMismatch, value)
		}
		f := new(felt.Felt)
		if b {
			f.SetUint64(1)
		}
		return fieldType, f, nil
	}

	// Unknown basic type: Active rejects, Legacy encodes best effort.
	if rev == RevisionActive {
		return "", nil, fmt.Errorf("%w: %q", ErrUnsupportedType, fieldType)
	}
	return encodeScalarLenient(fieldType, value)
}

var hexPattern = regexp.MustCompile("^0x[0-9a-fA-F]+$")

func encodeScalarLenient(fieldType string, value any) (string, *felt.Felt, error) {
	n, err := toBigLenient(value)
	if err != nil {
		return "", nil, err
	}
	f, err := bigToFelt(n)
	if err != nil {
		return "", nil, err
	}
	return fieldType, f, nil
}

func encodeEnum(types Types, value any, ctx *fieldContext, rev Revision, depth int) (string, *felt.Felt, error) {
	// A null enum slot stands for an absent variant and encodes as zero.
	if value == nil {
		return "enum", new(felt.Felt), nil
	}
	if rev != RevisionActive {
		return encodeScalarLenient("enum", value)
	}
	if ctx == nil {
		return "", nil, fmt.Errorf("%w: enum value outside a struct field", ErrSchemaMismatch)
	}
	decl, ok := findFieldDecl(types, ctx)
	if !ok {
		return "", nil, fmt.Errorf("%w: no declaration for enum field %q in %q", ErrSchemaMismatch, ctx.field, ctx.parent)
	}
	variants, ok := types[decl.Contains]
	if !ok {
		return "", nil, fmt.Errorf("%w: enum type %q is not declared", ErrSchemaMismatch, decl.Contains)
	}

	m, ok := value.(map[string]any)
	if !ok || len(m) != 1 {
		return "", nil, fmt.Errorf("%w: enum value must be an object with exactly one variant", ErrTypeMismatch)
	}
	var variantName string
	var payload any
	for k, v := range m {
		variantName, payload = k, v
	}

	variantIdx := -1
	var variant Field
	for i, v := range variants {
		if v.Name == variantName {
			variantIdx, variant = i, v
			break
		}
	}
	if variantIdx == -1 {
		return "", nil, fmt.Errorf("%w: unknown variant %q of enum %q", ErrTypeMismatch, variantName, decl.Contains)
	}
	if !isEnclosedTuple(variant.Type) {
		return "", nil, fmt.Errorf("%w: variant %q of %q must declare a parenthesized payload type", ErrSchemaMismatch, variantName, decl.Contains)
	}

	args, _ := payload.([]any)
	elems := []*felt.Felt{new(felt.Felt).SetUint64(uint64(variantIdx))}
	for i, sub := range strings.Split(variant.Type[1:len(variant.Type)-1], ",") {
		if sub == "" {
			continue
		}
		if i >= len(args) {
			return "", nil, fmt.Errorf("%w: variant %q expects a payload element at position %d", ErrTypeMismatch, variantName, i)
		}
		_, d, err := encodeValue(types, sub, args[i], nil, rev, depth+1)
		if err != nil {
			return "", nil, fmt.Errorf("variant %q payload %d: %w", variantName, i, err)
		}
		elems = append(elems, d)
	}
	return "enum", rev.HashElements(elems), nil
}

func encodeMerkleTree(types Types, value any, ctx *fieldContext, rev Revision, depth int) (string, *felt.Felt, error) {
	leafType, err := merkleLeafType(types, ctx)
	if err != nil {
		return "", nil, err
	}

	items, ok := value.([]any)
	if !ok {
		return "", nil, fmt.Errorf("%w: merkletree value must be an array, got %T", ErrTypeMismatch, value)
	}
	leaves := make([]*felt.Felt, len(items))
	for i, item := range items {
		_, d, err := encodeValue(types, leafType, item, nil, rev, depth+1)
		if err != nil {
			return "", nil, fmt.Errorf("merkle leaf %d: %w", i, err)
		}
		leaves[i] = d
	}

	tree, err := merkle.NewTree(rev.PairHash, leaves...)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidMerkleTree, err)
	}
	return "felt", tree.Root(), nil
}

// merkleLeafType resolves the leaf type from the enclosing merkletree
// declaration. Without a declaration leaves fall back to the opaque "raw"
// type, which only Legacy can encode.
func merkleLeafType(types Types, ctx *fieldContext) (string, error) {
	if ctx == nil {
		return "raw", nil
	}
	decl, ok := findFieldDecl(types, ctx)
	if !ok {
		return "", fmt.Errorf("%w: no declaration for field %q in %q", ErrInvalidMerkleTree, ctx.field, ctx.parent)
	}
	if decl.Type != "merkletree" {
		return "", fmt.Errorf("%w: field %q of %q is not a merkletree", ErrInvalidMerkleTree, ctx.field, ctx.parent)
	}
	if decl.Contains == "" {
		return "", fmt.Errorf("%w: field %q of %q names no leaf type", ErrInvalidMerkleTree, ctx.field, ctx.parent)
	}
	if strings.HasSuffix(decl.Contains, "*") {
		return "", fmt.Errorf("%w: leaf type of %q must not be an array", ErrInvalidMerkleTree, ctx.field)
	}
	return decl.Contains, nil
}

func findFieldDecl(types Types, ctx *fieldContext) (Field, bool) {
	for _, f := range types[ctx.parent] {
		if f.Name == ctx.field {
			return f, true
		}
	}
	return Field{}, false
}
