package typeddata

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/NethermindEth/juno/core/felt"
	ethmath "github.com/ethereum/go-ethereum/common/math"

	"github.com/erc7824/snip12/pkg/shortstring"
)

var bigZero = new(big.Int)

// toBigStrict converts a scalar document value to a big integer. Strings
// must parse as an integer literal (0x, 0b or 0o prefixed, or decimal,
// surrounding whitespace allowed); any other text is rejected.
func toBigStrict(value any) (*big.Int, error) {
	switch v := value.(type) {
	case bool:
		if v {
			return big.NewInt(1), nil
		}
		return new(big.Int), nil
	case string:
		if n, ok := ethmath.ParseBig256(v); ok {
			return n, nil
		}
		if n, ok := bigFromLiteral(v); ok {
			return n, nil
		}
		return nil, fmt.Errorf("%w: %q is not an integer literal", ErrNotConvertible, v)
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
			return nil, fmt.Errorf("%w: %v is not an integer", ErrNotConvertible, v)
		}
		n, _ := new(big.Float).SetFloat64(v).Int(nil)
		return n, nil
	case json.Number:
		n, ok := new(big.Int).SetString(v.String(), 10)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrNotConvertible, v)
		}
		return n, nil
	case int:
		return big.NewInt(int64(v)), nil
	case int8:
		return big.NewInt(int64(v)), nil
	case int16:
		return big.NewInt(int64(v)), nil
	case int32:
		return big.NewInt(int64(v)), nil
	case int64:
		return big.NewInt(v), nil
	case uint:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint8:
		return big.NewInt(int64(v)), nil
	case uint16:
		return big.NewInt(int64(v)), nil
	case uint32:
		return big.NewInt(int64(v)), nil
	case uint64:
		return new(big.Int).SetUint64(v), nil
	case *big.Int:
		return new(big.Int).Set(v), nil
	case big.Int:
		return new(big.Int).Set(&v), nil
	case *felt.Felt:
		return v.BigInt(new(big.Int)), nil
	case nil:
		return nil, fmt.Errorf("%w: nil value", ErrNotConvertible)
	}
	return nil, fmt.Errorf("%w: unsupported value type %T", ErrNotConvertible, value)
}

// bigFromLiteral parses the integer-literal forms ParseBig256 does not
// cover: 0b/0o prefixed numbers and literals wrapped in whitespace.
// Underscore separators and signed prefixed forms are rejected even
// though base-0 SetString accepts them.
func bigFromLiteral(s string) (*big.Int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return new(big.Int), true
	}
	if strings.ContainsRune(s, '_') {
		return nil, false
	}
	digits := s
	if digits[0] == '+' || digits[0] == '-' {
		digits = digits[1:]
	}
	if len(digits) >= 2 && digits[0] == '0' {
		switch digits[1] {
		case 'b', 'B', 'o', 'O', 'x', 'X':
			if len(digits) != len(s) {
				return nil, false
			}
		}
	}
	return new(big.Int).SetString(s, 0)
}

// toBigLenient is toBigStrict plus the short-string fallback: a string
// that does not parse numerically packs as ASCII text when it fits.
func toBigLenient(value any) (*big.Int, error) {
	n, err := toBigStrict(value)
	if err == nil {
		return n, nil
	}
	s, ok := value.(string)
	if !ok {
		return nil, err
	}
	packed, packErr := shortstring.Encode(s)
	if packErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotConvertible, packErr)
	}
	return packed.BigInt(new(big.Int)), nil
}

// bigToFelt converts a checked big integer into a field element. Values
// outside [0, prime) are not representable.
func bigToFelt(n *big.Int) (*felt.Felt, error) {
	if n.Sign() < 0 || n.Cmp(fieldPrime) >= 0 {
		return nil, fmt.Errorf("%w: %s is not a field element", ErrOutOfRange, n)
	}
	buf := make([]byte, 32)
	n.FillBytes(buf)
	return new(felt.Felt).SetBytes(buf), nil
}

func assertRange(n *big.Int, typeName string, min, max *big.Int) error {
	if n.Cmp(min) < 0 || n.Cmp(max) > 0 {
		return fmt.Errorf("%w: %s value %s outside [%s, %s]", ErrOutOfRange, typeName, n, min, max)
	}
	return nil
}
