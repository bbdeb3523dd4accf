// Package ratkey encodes rational numbers as sequences whose plain
// lexicographic order matches the numeric order of the values they encode.
//
// Two encodings are provided. A Stern-Brocot Path is a sequence of bits
// addressing a node of the Stern-Brocot tree; see Encode and Decode. A
// Lexical sequence is a continued-fraction expansion with the sign of every
// odd-indexed term inverted; see LexicalEncode and LexicalDecode. Both can be
// turned into byte keys suitable for sorted storage with PathKey and
// LexicalKey.
//
// All arithmetic is exact. Values of any size are accepted through the *Big
// and *Rat variants of each function; int64 inputs take a fixed-precision
// path that does not allocate intermediate big integers.
package ratkey

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// Common errors returned by functions in this package.
var (
	ErrDenZero       = errors.New("denominator is zero")
	ErrPathMalformed = errors.New("malformed Stern-Brocot path")
	ErrDivByZero     = errors.New("division by zero")
	ErrDigitInvalid  = errors.New("digit is not binary")
	ErrZero          = errors.New("zero has no Stern-Brocot walk")
	ErrTermInvalid   = errors.New("continued fraction term out of range")
	ErrFmtInvalid    = errors.New("invalid number format")
	ErrKeyInvalid    = errors.New("invalid key encoding")
)

// SignedMagnitude is a rational number split into its sign and its reduced
// magnitude Num/Den, with Num >= 0 and Den > 0. Zero is 0/1 and not negative.
//
// Values returned by this package own their integers; callers should treat
// them as immutable.
type SignedMagnitude struct {
	Neg bool
	Num *big.Int
	Den *big.Int
}

// Normalize reduces n/d to lowest terms and splits off its sign.
// Normalize returns ErrDenZero if d is zero. A negative d is allowed and
// contributes to the sign.
func Normalize(n, d int64) (SignedMagnitude, error) {
	if d == 0 {
		return SignedMagnitude{}, ErrDenZero
	}
	neg, m, k := reduce64(n, d)
	return SignedMagnitude{
		Neg: neg,
		Num: new(big.Int).SetUint64(m),
		Den: new(big.Int).SetUint64(k),
	}, nil
}

// NormalizeBig is like Normalize but for integers of any size.
// The arguments are not modified.
func NormalizeBig(n, d *big.Int) (SignedMagnitude, error) {
	if d.Sign() == 0 {
		return SignedMagnitude{}, ErrDenZero
	}
	return NormalizeRat(new(big.Rat).SetFrac(n, d)), nil
}

// NormalizeRat splits r, which big.Rat always keeps in lowest terms, into
// its sign and magnitude.
func NormalizeRat(r *big.Rat) SignedMagnitude {
	num := new(big.Int).Set(r.Num())
	neg := num.Sign() < 0
	if neg {
		num.Neg(num)
	}
	return SignedMagnitude{
		Neg: neg,
		Num: num,
		Den: new(big.Int).Set(r.Denom()),
	}
}

// IsZero returns true if x is equal to 0.
func (x SignedMagnitude) IsZero() bool {
	return x.Num.Sign() == 0
}

// Fraction returns x as a signed numerator and a positive denominator.
func (x SignedMagnitude) Fraction() (n, d *big.Int) {
	n = new(big.Int).Set(x.Num)
	if x.Neg {
		n.Neg(n)
	}
	return n, new(big.Int).Set(x.Den)
}

// Rat converts x to a new big.Rat.
func (x SignedMagnitude) Rat() *big.Rat {
	n, d := x.Fraction()
	return new(big.Rat).SetFrac(n, d)
}

// String returns a string representation of x, as m/n.
func (x SignedMagnitude) String() string {
	n, d := x.Fraction()
	return fmt.Sprintf("%s/%s", n, d)
}

// ParseRationalString parses a string representation of a rational number.
// The string must be in the form "m/n", where m and n are integers in base 10
// and n is not zero. Either may be negative (indicated with leading hyphen).
// It is not necessary for m/n to be in lowest terms, but the result will be.
// Unlike the int64 entry points, m and n may be of any size.
func ParseRationalString(s string) (SignedMagnitude, error) {
	parts := strings.SplitN(s, "/", 3)
	if len(parts) != 2 {
		return SignedMagnitude{}, ErrFmtInvalid
	}
	num, ok := new(big.Int).SetString(parts[0], 10)
	if !ok {
		return SignedMagnitude{}, fmt.Errorf("parsing numerator: %w", ErrFmtInvalid)
	}
	den, ok := new(big.Int).SetString(parts[1], 10)
	if !ok {
		return SignedMagnitude{}, fmt.Errorf("parsing denominator: %w", ErrFmtInvalid)
	}
	return NormalizeBig(num, den)
}
