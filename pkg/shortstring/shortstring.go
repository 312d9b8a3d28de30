// Package shortstring packs text payloads into Starknet field elements.
//
// A Cairo short string is an ASCII string of at most 31 characters stored
// big-endian in a single felt. Longer text is carried as a byte array: a
// sequence of full 31-byte words plus a pending word holding the remainder.
package shortstring

import (
	"fmt"

	"github.com/NethermindEth/juno/core/felt"
)

// MaxLength is the maximum number of characters a single felt can hold.
const MaxLength = 31

// Encode packs an ASCII string of at most MaxLength characters into a felt.
func Encode(s string) (*felt.Felt, error) {
	if !isASCII(s) {
		return nil, fmt.Errorf("%q is not an ASCII string", s)
	}
	if len(s) > MaxLength {
		return nil, fmt.Errorf("%q is too long for a short string (%d > %d chars)", s, len(s), MaxLength)
	}
	return new(felt.Felt).SetBytes([]byte(s)), nil
}

// MustEncode is like Encode but panics on invalid input.
// It is intended for protocol constants known at compile time.
func MustEncode(s string) *felt.Felt {
	f, err := Encode(s)
	if err != nil {
		panic(fmt.Sprintf("shortstring: %v", err))
	}
	return f
}

// Decode unpacks a felt back into its short-string form.
// Leading zero bytes are stripped, so Decode(Encode(s)) == s for any valid s.
func Decode(f *felt.Felt) string {
	b := f.Bytes()
	i := 0
	for i < len(b) && b[i] == 0 {
		i++
	}
	return string(b[i:])
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7F {
			return false
		}
	}
	return true
}
