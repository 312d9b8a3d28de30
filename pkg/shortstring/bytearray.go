package shortstring

import (
	"fmt"

	"github.com/NethermindEth/juno/core/felt"
)

// ByteArray is the Cairo core::byte_array::ByteArray layout: full 31-byte
// words followed by a pending word carrying the remainder of the text.
type ByteArray struct {
	// Data holds the fully packed words, each exactly MaxLength bytes.
	Data []*felt.Felt
	// PendingWord holds the trailing bytes that do not fill a word.
	// It is zero when the text length is a multiple of MaxLength.
	PendingWord *felt.Felt
	// PendingWordLen is the number of bytes packed into PendingWord.
	PendingWordLen int
}

// FromString splits an ASCII string into the ByteArray word layout.
func FromString(s string) (ByteArray, error) {
	if !isASCII(s) {
		return ByteArray{}, fmt.Errorf("%q is not an ASCII string", s)
	}

	var words []*felt.Felt
	for len(s) >= MaxLength {
		words = append(words, new(felt.Felt).SetBytes([]byte(s[:MaxLength])))
		s = s[MaxLength:]
	}
	return ByteArray{
		Data:           words,
		PendingWord:    new(felt.Felt).SetBytes([]byte(s)),
		PendingWordLen: len(s),
	}, nil
}
