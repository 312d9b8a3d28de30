package typeddata

import (
	"encoding/json"
	"fmt"

	"github.com/NethermindEth/juno/core/felt"
	"github.com/go-playground/validator/v10"

	"github.com/erc7824/snip12/pkg/shortstring"
)

// Field is one entry of a struct type declaration.
type Field struct {
	Name string `json:"name" validate:"required"`
	Type string `json:"type" validate:"required"`
	// Contains carries the inner type name for enum and merkletree fields.
	Contains string `json:"contains,omitempty"`
}

// Types is the type universe of a document: struct type name to its
// ordered field declarations.
type Types map[string][]Field

// Domain holds the domain separator values. It hashes like any other
// struct, under the domain type name the document revision prescribes.
type Domain map[string]any

// Revision reports the revision discriminant carried by the domain.
// An absent discriminant counts as Legacy. ok is false when a value is
// present but is not a known revision in string or number form.
func (d Domain) Revision() (Revision, bool) {
	return parseRevision(d["revision"])
}

// TypedData is a complete signable document: the type universe, the name
// of the message's root type, the domain separator and the message values.
type TypedData struct {
	Types       Types          `json:"types" validate:"required,dive,dive"`
	PrimaryType string         `json:"primaryType" validate:"required"`
	Domain      Domain         `json:"domain" validate:"required"`
	Message     map[string]any `json:"message" validate:"required"`
}

// ParseJSON decodes a typed-data document and validates its shape.
func ParseJSON(data []byte) (*TypedData, error) {
	var td TypedData
	if err := json.Unmarshal(data, &td); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
	}
	if err := td.Validate(); err != nil {
		return nil, err
	}
	return &td, nil
}

func getValidator() *validator.Validate {
	validate := validator.New()

	validate.RegisterStructValidation(func(sl validator.StructLevel) {
		field := sl.Current().Interface().(Field)
		if field.Type == "merkletree" && field.Contains == "" {
			sl.ReportError(field.Contains, "Contains", "Contains", "merkletree_contains", "")
		}
	}, Field{})

	return validate
}

// Validate checks the document shape: the four top-level sections are
// present, every field declaration carries a name and a type, merkletree
// declarations name their leaf type, and the revision is resolvable.
func (td *TypedData) Validate() error {
	if err := getValidator().Struct(td); err != nil {
		return fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
	}
	if _, err := td.Revision(); err != nil {
		return err
	}
	return nil
}

// Revision resolves which encoding protocol the document targets. Active
// wins when the type universe declares its domain form and the domain
// discriminant agrees; Legacy requires its own domain form and an absent
// or Legacy discriminant.
func (td *TypedData) Revision() (Revision, error) {
	rev, ok := td.Domain.Revision()
	if _, declared := td.Types[RevisionActive.DomainTypeName()]; declared && ok && rev == RevisionActive {
		return RevisionActive, nil
	}
	if _, declared := td.Types[RevisionLegacy.DomainTypeName()]; declared && ok && rev == RevisionLegacy {
		return RevisionLegacy, nil
	}
	return 0, fmt.Errorf("%w: no domain type matches the revision discriminant", ErrUnresolvedRevision)
}

// messagePrefix is the fixed first element of every message hash, the
// same short string under both revisions.
var messagePrefix = shortstring.MustEncode("StarkNet Message")

// MessageHash computes the digest an account signs over: the message
// prefix, the domain struct hash, the signer address and the primary
// struct hash, folded with the revision's array hash.
func (td *TypedData) MessageHash(accountAddress string) (*felt.Felt, error) {
	if err := td.Validate(); err != nil {
		return nil, err
	}
	rev, err := td.Revision()
	if err != nil {
		return nil, err
	}

	account, err := toBigStrict(accountAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid account address: %w", err)
	}
	accountFelt, err := bigToFelt(account)
	if err != nil {
		return nil, fmt.Errorf("invalid account address: %w", err)
	}

	domainHash, err := GetStructHash(td.Types, rev.DomainTypeName(), td.Domain, rev)
	if err != nil {
		return nil, fmt.Errorf("hashing domain: %w", err)
	}
	msgHash, err := GetStructHash(td.Types, td.PrimaryType, td.Message, rev)
	if err != nil {
		return nil, fmt.Errorf("hashing message: %w", err)
	}

	return rev.HashElements([]*felt.Felt{messagePrefix, domainHash, accountFelt, msgHash}), nil
}
