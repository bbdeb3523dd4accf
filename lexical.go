package ratkey

import (
	"fmt"
	"math/big"
	"slices"
)

// Lexical is a continued fraction with the sign of every odd-indexed term
// inverted.
//
// A larger term at an odd depth of a continued fraction means a smaller
// value, so raw terms do not sort in numeric order. Inverting those terms
// fixes that: the Lexical values produced by LexicalEncode, compared with
// CompareLexical, sort exactly as the rationals they encode.
type Lexical []*big.Int

// ToLexical inverts the sign of every odd-indexed term of cf. The result has
// the same length as cf and does not share integers with it.
func ToLexical(cf ContinuedFraction) Lexical {
	return Lexical(alternate(cf))
}

// FromLexical undoes ToLexical. The transform is its own inverse.
func FromLexical(lx Lexical) ContinuedFraction {
	return ContinuedFraction(alternate(lx))
}

func alternate(terms []*big.Int) []*big.Int {
	if terms == nil {
		return nil
	}
	out := make([]*big.Int, len(terms))
	for i, a := range terms {
		out[i] = new(big.Int).Set(a)
		if i%2 == 1 {
			out[i].Neg(out[i])
		}
	}
	return out
}

// LexicalEncode returns the order-preserving lexical encoding of n/d.
// LexicalEncode returns ErrDenZero if d is zero.
//
// The result is ToLexical of the odd-length representation returned by Even,
// not of the canonical one returned by Canonical, so 1/2 encodes as
// [0, -1, 1] rather than [0, -2]. Equal values still encode identically, and
// an encoding that is a prefix of a longer one denotes the smaller value.
// The canonical form is ToLexical applied to the result of Expand.
func LexicalEncode(n, d int64) (Lexical, error) {
	return LexicalEncodeBig(big.NewInt(n), big.NewInt(d))
}

// LexicalEncodeBig is like LexicalEncode but for integers of any size.
func LexicalEncodeBig(n, d *big.Int) (Lexical, error) {
	cf, err := ExpandBig(n, d)
	if err != nil {
		return nil, err
	}
	return ToLexical(Even(cf)), nil
}

// LexicalEncodeRat returns the lexical encoding of r.
func LexicalEncodeRat(r *big.Rat) Lexical {
	return ToLexical(Even(ExpandRat(r)))
}

// LexicalDecode returns the reduced fraction n/d, with d > 0, encoded by lx.
//
// Any standard-form continued fraction is accepted, canonical or not, so
// both [a0; ..., ak] and [a0; ..., ak-1, 1] decode to the same value.
// LexicalDecode returns an error wrapping ErrDivByZero if Evaluate does, that
// is, if lx is empty, a term after the first decodes to zero, or the sequence
// divides by zero. A sequence that evaluates but has a later term decoding to
// a negative number is not in standard form and fails with ErrTermInvalid.
func LexicalDecode(lx Lexical) (n, d *big.Int, err error) {
	cf := FromLexical(lx)
	r, err := Evaluate(cf)
	if err != nil {
		return nil, nil, err
	}
	for i := 1; i < len(cf); i++ {
		if cf[i].Sign() < 0 {
			return nil, nil, fmt.Errorf("term %d is %s: %w", i, cf[i], ErrTermInvalid)
		}
	}
	return new(big.Int).Set(r.Num()), new(big.Int).Set(r.Denom()), nil
}

// CompareLexical compares a and b term by term, a shorter sequence sorting
// first when it is a prefix of the other. It returns -1 if a < b, 0 if
// a == b, and 1 if a > b.
func CompareLexical(a, b Lexical) int {
	return slices.CompareFunc(a, b, (*big.Int).Cmp)
}
