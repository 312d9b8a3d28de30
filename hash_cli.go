package main

import (
	"fmt"
	"math/big"
	"os"

	"github.com/NethermindEth/juno/core/felt"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"

	"github.com/erc7824/snip12/pkg/log"
	"github.com/erc7824/snip12/pkg/typeddata"
)

// DocumentHasher computes the printable digests of a typed-data document.
type DocumentHasher struct {
	digestFormat string
}

// NewDocumentHasher creates a hasher printing digests in the given format.
func NewDocumentHasher(digestFormat string) *DocumentHasher {
	return &DocumentHasher{
		digestFormat: digestFormat,
	}
}

// MessageHash returns the digest the account signs over the document.
func (h *DocumentHasher) MessageHash(doc *typeddata.TypedData, account string) (string, error) {
	digest, err := doc.MessageHash(account)
	if err != nil {
		return "", err
	}
	return h.formatDigest(digest), nil
}

// StructHash returns the struct hash of the named type over the data the
// document carries for it. An empty name means the primary type; the
// revision's domain type selects the domain values.
func (h *DocumentHasher) StructHash(doc *typeddata.TypedData, typeName string) (string, error) {
	rev, err := doc.Revision()
	if err != nil {
		return "", err
	}
	if typeName == "" {
		typeName = doc.PrimaryType
	}

	var data map[string]any
	switch typeName {
	case doc.PrimaryType:
		data = doc.Message
	case rev.DomainTypeName():
		data = doc.Domain
	default:
		return "", fmt.Errorf("document carries no data for type %q", typeName)
	}

	digest, err := typeddata.GetStructHash(doc.Types, typeName, data, rev)
	if err != nil {
		return "", err
	}
	return h.formatDigest(digest), nil
}

// TypeHash returns the type hash of the named type. An empty name means
// the primary type.
func (h *DocumentHasher) TypeHash(doc *typeddata.TypedData, typeName string) (string, error) {
	rev, err := doc.Revision()
	if err != nil {
		return "", err
	}
	if typeName == "" {
		typeName = doc.PrimaryType
	}
	if typeddata.EncodeType(doc.Types, typeName, rev) == "" {
		return "", fmt.Errorf("type %q is not declared", typeName)
	}
	return h.formatDigest(typeddata.GetTypeHash(doc.Types, typeName, rev)), nil
}

// EncodedType returns the signature string the type hash is computed over.
// An empty name means the primary type.
func (h *DocumentHasher) EncodedType(doc *typeddata.TypedData, typeName string) (string, error) {
	rev, err := doc.Revision()
	if err != nil {
		return "", err
	}
	if typeName == "" {
		typeName = doc.PrimaryType
	}
	encoded := typeddata.EncodeType(doc.Types, typeName, rev)
	if encoded == "" {
		return "", fmt.Errorf("type %q is not declared", typeName)
	}
	return encoded, nil
}

func (h *DocumentHasher) formatDigest(digest *felt.Felt) string {
	switch h.digestFormat {
	case digestFormatDecimal:
		return digest.BigInt(new(big.Int)).String()
	case digestFormatPadded:
		b := digest.Bytes()
		return hexutil.Encode(b[:])
	default:
		return digest.String()
	}
}

// loadDocument reads and parses a typed-data document from a JSON file.
func loadDocument(path string) (*typeddata.TypedData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read document")
	}
	doc, err := typeddata.ParseJSON(raw)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse document")
	}
	return doc, nil
}

// runMessageHashCli is the entry point for the message-hash command.
// Example: snip12 message-hash document.json 0x52963ee...
func runMessageHashCli(logger log.Logger, config *Config) {
	logger = logger.WithName("message-hash")
	if len(os.Args) < 3 || len(os.Args) > 4 {
		logger.Fatal("usage: snip12 message-hash <document.json> [account]")
	}

	account := config.Account
	if len(os.Args) > 3 {
		account = os.Args[3]
	}
	if account == "" {
		logger.Fatal("no account address: pass one or set SNIP12_ACCOUNT")
	}

	doc, err := loadDocument(os.Args[2])
	if err != nil {
		logger.Fatal("failed to load document", "path", os.Args[2], "error", err)
	}

	digest, err := NewDocumentHasher(config.DigestFormat).MessageHash(doc, account)
	if err != nil {
		logger.Fatal("failed to hash document", "error", err)
	}

	fmt.Println(digest)
}

// runStructHashCli is the entry point for the struct-hash command.
// Example: snip12 struct-hash document.json StarkNetDomain
func runStructHashCli(logger log.Logger, config *Config) {
	logger = logger.WithName("struct-hash")
	if len(os.Args) < 3 || len(os.Args) > 4 {
		logger.Fatal("usage: snip12 struct-hash <document.json> [type]")
	}

	var typeName string
	if len(os.Args) > 3 {
		typeName = os.Args[3]
	}

	doc, err := loadDocument(os.Args[2])
	if err != nil {
		logger.Fatal("failed to load document", "path", os.Args[2], "error", err)
	}

	digest, err := NewDocumentHasher(config.DigestFormat).StructHash(doc, typeName)
	if err != nil {
		logger.Fatal("failed to hash struct", "type", typeName, "error", err)
	}

	fmt.Println(digest)
}

// runTypeHashCli is the entry point for the type-hash command.
// Example: snip12 type-hash document.json Mail
func runTypeHashCli(logger log.Logger, config *Config) {
	logger = logger.WithName("type-hash")
	if len(os.Args) < 3 || len(os.Args) > 4 {
		logger.Fatal("usage: snip12 type-hash <document.json> [type]")
	}

	var typeName string
	if len(os.Args) > 3 {
		typeName = os.Args[3]
	}

	doc, err := loadDocument(os.Args[2])
	if err != nil {
		logger.Fatal("failed to load document", "path", os.Args[2], "error", err)
	}

	digest, err := NewDocumentHasher(config.DigestFormat).TypeHash(doc, typeName)
	if err != nil {
		logger.Fatal("failed to hash type", "type", typeName, "error", err)
	}

	fmt.Println(digest)
}

// runEncodedTypeCli is the entry point for the encoded-type command.
// Example: snip12 encoded-type document.json Mail
func runEncodedTypeCli(logger log.Logger, config *Config) {
	logger = logger.WithName("encoded-type")
	if len(os.Args) < 3 || len(os.Args) > 4 {
		logger.Fatal("usage: snip12 encoded-type <document.json> [type]")
	}

	var typeName string
	if len(os.Args) > 3 {
		typeName = os.Args[3]
	}

	doc, err := loadDocument(os.Args[2])
	if err != nil {
		logger.Fatal("failed to load document", "path", os.Args[2], "error", err)
	}

	encoded, err := NewDocumentHasher(config.DigestFormat).EncodedType(doc, typeName)
	if err != nil {
		logger.Fatal("failed to encode type", "type", typeName, "error", err)
	}

	fmt.Println(encoded)
}
