package ratkey

import (
	"fmt"
	"math/big"
	"strings"
)

// ContinuedFraction is a finite simple continued fraction [a0; a1, ..., ak].
// In standard form a0 may be any integer and every later term is at least 1.
type ContinuedFraction []*big.Int

// Expand returns the continued fraction of n/d computed by the Euclidean
// algorithm. Expand returns ErrDenZero if d is zero.
//
// The result is in standard form and never ends in a 1 unless it has a
// single term, so it is already canonical as defined by Canonical.
func Expand(n, d int64) (ContinuedFraction, error) {
	return ExpandBig(big.NewInt(n), big.NewInt(d))
}

// ExpandBig is like Expand but for integers of any size.
// The arguments are not modified.
func ExpandBig(n, d *big.Int) (ContinuedFraction, error) {
	if d.Sign() == 0 {
		return nil, ErrDenZero
	}
	x, y := new(big.Int).Set(n), new(big.Int).Set(d)
	if y.Sign() < 0 {
		x.Neg(x)
		y.Neg(y)
	}
	var cf ContinuedFraction
	for {
		// with y > 0, DivMod is floor division and r is in [0, y)
		a, r := new(big.Int).DivMod(x, y, new(big.Int))
		cf = append(cf, a)
		if r.Sign() == 0 {
			return cf, nil
		}
		x, y = y, r
	}
}

// ExpandRat returns the continued fraction of r.
func ExpandRat(r *big.Rat) ContinuedFraction {
	cf, err := ExpandBig(r.Num(), r.Denom())
	if err != nil {
		// big.Rat denominators are never zero
		panic(err)
	}
	return cf
}

// Evaluate returns the value of cf, folding terms from the last to the
// first as a(i) + 1/value.
//
// Evaluate returns an error wrapping ErrDivByZero if cf is empty, if any term
// after the first is zero, or if a partial value is zero and would have to be
// inverted. Negative terms are otherwise evaluated as written.
func Evaluate(cf ContinuedFraction) (*big.Rat, error) {
	if len(cf) == 0 {
		return nil, fmt.Errorf("empty continued fraction: %w", ErrDivByZero)
	}
	// the tail value is kept as x/y; 1/(a + x/y) == y/(a*y + x)
	x, y := big.NewInt(0), big.NewInt(1)
	for i := len(cf) - 1; i > 0; i-- {
		a := cf[i]
		if a.Sign() == 0 {
			return nil, fmt.Errorf("term %d is zero: %w", i, ErrDivByZero)
		}
		t := new(big.Int).Mul(a, y)
		t.Add(t, x)
		if t.Sign() == 0 {
			return nil, fmt.Errorf("inverting at term %d: %w", i, ErrDivByZero)
		}
		x, y = y, t
	}
	n := new(big.Int).Mul(cf[0], y)
	n.Add(n, x)
	return new(big.Rat).SetFrac(n, y), nil
}

// Canonical returns cf with a trailing 1 folded into the term before it, so
// [a0; ..., ak, 1] becomes [a0; ..., ak+1]. Both denote the same value; the
// canonical form is the one that does not end in 1 unless it has a single
// term. The result does not share integers with cf.
func Canonical(cf ContinuedFraction) ContinuedFraction {
	out := cf.clone()
	if k := len(out) - 1; k > 0 && out[k].Cmp(bigOne) == 0 {
		out[k-1].Add(out[k-1], bigOne)
		out = out[:k]
	}
	return out
}

// Even returns the representation of cf whose last term has an even index,
// that is, whose length is odd. A canonical sequence of even length
// [a0; ..., ak] is rewritten as [a0; ..., ak-1, 1].
//
// Sequences of this shape compare lexicographically, once passed through
// ToLexical, in the same order as their values, with a shorter sequence
// sorting before any sequence it is a prefix of. cf must be in standard form.
func Even(cf ContinuedFraction) ContinuedFraction {
	out := Canonical(cf)
	if k := len(out) - 1; k%2 == 1 {
		out[k].Sub(out[k], bigOne)
		out = append(out, big.NewInt(1))
	}
	return out
}

// String returns a string representation of cf, as [a0; a1, ..., ak].
func (cf ContinuedFraction) String() string {
	var buf strings.Builder
	buf.WriteByte('[')
	for i, a := range cf {
		switch i {
		case 0:
		case 1:
			buf.WriteString("; ")
		default:
			buf.WriteString(", ")
		}
		buf.WriteString(a.String())
	}
	buf.WriteByte(']')
	return buf.String()
}

func (cf ContinuedFraction) clone() ContinuedFraction {
	if cf == nil {
		return nil
	}
	out := make(ContinuedFraction, len(cf))
	for i, a := range cf {
		out[i] = new(big.Int).Set(a)
	}
	return out
}

var bigOne = big.NewInt(1)
