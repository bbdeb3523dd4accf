package ratkey

import (
	"math/big"

	"golang.org/x/exp/constraints"
)

// EncodeInt is like Encode but accepts any integer type, including unsigned
// values that do not fit in an int64.
func EncodeInt[T constraints.Integer](n, d T) (Path, error) {
	return EncodeBig(bigInt(n), bigInt(d))
}

// LexicalEncodeInt is like LexicalEncode but accepts any integer type.
func LexicalEncodeInt[T constraints.Integer](n, d T) (Lexical, error) {
	return LexicalEncodeBig(bigInt(n), bigInt(d))
}

func bigInt[T constraints.Integer](x T) *big.Int {
	if x < 0 {
		return big.NewInt(int64(x))
	}
	return new(big.Int).SetUint64(uint64(x))
}
