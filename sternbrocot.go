package ratkey

import (
	"bytes"
	"fmt"
	"math/big"
	"strings"
)

// Path is a sequence of bits, each 0 or 1, addressing a rational number in
// the Stern-Brocot tree. The first bit is the sign: 1 for non-negative
// values, 0 for negative ones. Each following bit is a step from the root
// 1/1 towards the value, 0 for left (smaller) and 1 for right (larger).
// The steps of a negative value are stored inverted.
//
// Paths come in two forms. A walk, from Walk and WalkBig, is the sign bit
// and the steps alone; it exists for every non-zero rational and the number
// of its bits equals the sum of the terms of the continued fraction of the
// magnitude. A code, from Encode and its variants, is a walk followed by a
// single 1 bit that is never inverted, and zero has the code [1]. Codes
// compare with ComparePaths in the same order as the values they encode.
type Path []byte

// Walk returns the Stern-Brocot walk of n/d.
// Walk returns ErrDenZero if d is zero and ErrZero if n is zero.
func Walk(n, d int64) (Path, error) {
	if d == 0 {
		return nil, ErrDenZero
	}
	neg, m, k := reduce64(n, d)
	if m == 0 {
		return nil, ErrZero
	}
	return signed(walk64(Path{1}, m, k), neg), nil
}

// WalkBig is like Walk but for integers of any size.
// The arguments are not modified.
func WalkBig(n, d *big.Int) (Path, error) {
	x, err := NormalizeBig(n, d)
	if err != nil {
		return nil, err
	}
	return walkMagnitude(Path{1}, x)
}

// WalkRat returns the Stern-Brocot walk of r.
// WalkRat returns ErrZero if r is zero.
func WalkRat(r *big.Rat) (Path, error) {
	return walkMagnitude(Path{1}, NormalizeRat(r))
}

func walkMagnitude(dst Path, x SignedMagnitude) (Path, error) {
	if x.IsZero() {
		return nil, ErrZero
	}
	if x.Num.IsUint64() && x.Den.IsUint64() {
		dst = walk64(dst, x.Num.Uint64(), x.Den.Uint64())
	} else {
		dst = walkBig(dst, x.Num, x.Den)
	}
	return signed(dst, x.Neg), nil
}

// signed inverts the steps of a walk, which starts with a 1 sign bit, when
// the value is negative.
func signed(p Path, neg bool) Path {
	if neg {
		p[0] = 0
		flipInPlace(p[1:])
	}
	return p
}

// Replay returns the reduced fraction n/d, with d > 0, reached by the walk
// p. Replay does not modify p.
// Replay returns an error wrapping ErrPathMalformed if p is empty or
// contains anything other than 0 and 1.
func Replay(p Path) (n, d *big.Int, err error) {
	if len(p) == 0 {
		return nil, nil, fmt.Errorf("no sign bit: %w", ErrPathMalformed)
	}
	if err := checkBits(p); err != nil {
		return nil, nil, err
	}
	sign, steps := p[0], []byte(p[1:])
	if sign == 0 {
		steps, err = Flip(steps)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrPathMalformed, err)
		}
	}
	w := newWindowBig()
	for _, b := range steps {
		if b == 0 {
			w.left()
		} else {
			w.right()
		}
	}
	if sign == 0 {
		w.p.Neg(w.p)
	}
	return w.p, w.q, nil
}

// Encode returns the Stern-Brocot code of n/d: the walk returned by Walk
// followed by a single 1 bit, so 1/3 encodes as 1001 where its walk is 100.
// Zero, which has no walk, encodes as 1. With the extra bit ComparePaths
// orders codes like the values they encode, which walks alone do not when
// one is a prefix of another.
// Encode returns ErrDenZero if d is zero.
func Encode(n, d int64) (Path, error) {
	if d == 0 {
		return nil, ErrDenZero
	}
	neg, m, k := reduce64(n, d)
	if m == 0 {
		return Path{1}, nil
	}
	return append(signed(walk64(Path{1}, m, k), neg), 1), nil
}

// EncodeBig is like Encode but for integers of any size.
// The arguments are not modified.
func EncodeBig(n, d *big.Int) (Path, error) {
	x, err := NormalizeBig(n, d)
	if err != nil {
		return nil, err
	}
	return encodeMagnitude(x), nil
}

// EncodeRat returns the Stern-Brocot code of r.
func EncodeRat(r *big.Rat) Path {
	return encodeMagnitude(NormalizeRat(r))
}

func encodeMagnitude(x SignedMagnitude) Path {
	if x.IsZero() {
		return Path{1}
	}
	p, err := walkMagnitude(Path{1}, x)
	if err != nil {
		// only zero has no walk
		panic(err)
	}
	return append(p, 1)
}

// Decode returns the reduced fraction n/d, with d > 0, encoded by the code
// p. Decode does not modify p.
// Decode returns an error wrapping ErrPathMalformed if p is empty, contains
// anything other than 0 and 1, or does not end in the 1 bit that terminates
// every code other than zero's.
func Decode(p Path) (n, d *big.Int, err error) {
	if len(p) == 0 {
		return nil, nil, fmt.Errorf("no sign bit: %w", ErrPathMalformed)
	}
	if err := checkBits(p); err != nil {
		return nil, nil, err
	}
	if len(p) == 1 {
		if p[0] == 1 {
			return big.NewInt(0), big.NewInt(1), nil
		}
		return nil, nil, fmt.Errorf("negative code has no steps: %w", ErrPathMalformed)
	}
	if p[len(p)-1] != 1 {
		return nil, nil, fmt.Errorf("code does not end in 1: %w", ErrPathMalformed)
	}
	return Replay(p[:len(p)-1])
}

// ComparePaths compares a and b bit by bit, a shorter path sorting first
// when it is a prefix of the other. It returns -1 if a < b, 0 if a == b, and
// 1 if a > b. For codes this is the numeric order of the encoded values.
func ComparePaths(a, b Path) int {
	return bytes.Compare(a, b)
}

// String returns the bits of p as a string of '0' and '1' characters.
// Invalid bits are shown as '?'.
func (p Path) String() string {
	var buf strings.Builder
	buf.Grow(len(p))
	for _, b := range p {
		switch b {
		case 0:
			buf.WriteByte('0')
		case 1:
			buf.WriteByte('1')
		default:
			buf.WriteByte('?')
		}
	}
	return buf.String()
}

func checkBits(p Path) error {
	for i, b := range p {
		if b > 1 {
			return fmt.Errorf("bit at index %d is %d: %w", i, b, ErrPathMalformed)
		}
	}
	return nil
}

// windowBig is the Stern-Brocot search state for magnitudes of any size.
// It mirrors window64.
type windowBig struct {
	p, q   *big.Int
	pl, ql *big.Int
	pr, qr *big.Int
}

func newWindowBig() *windowBig {
	return &windowBig{
		p: big.NewInt(1), q: big.NewInt(1),
		pl: big.NewInt(0), ql: big.NewInt(1),
		pr: big.NewInt(1), qr: big.NewInt(0),
	}
}

// left moves to the mediant of the left bound and the current node, which
// becomes the right bound. The integers of the old right bound are reused.
func (w *windowBig) left() {
	p, q := w.pr, w.qr
	p.Add(w.pl, w.p)
	q.Add(w.ql, w.q)
	w.pr, w.qr = w.p, w.q
	w.p, w.q = p, q
}

func (w *windowBig) right() {
	p, q := w.pl, w.ql
	p.Add(w.pr, w.p)
	q.Add(w.qr, w.q)
	w.pl, w.ql = w.p, w.q
	w.p, w.q = p, q
}

// walkBig appends to dst the directions from the root to m/k, which must be
// positive and in lowest terms.
func walkBig(dst Path, m, k *big.Int) Path {
	w := newWindowBig()
	var lhs, rhs big.Int
	for {
		lhs.Mul(w.p, k)
		rhs.Mul(m, w.q)
		switch lhs.Cmp(&rhs) {
		case 1:
			w.left()
			dst = append(dst, 0)
		case -1:
			w.right()
			dst = append(dst, 1)
		default:
			return dst
		}
	}
}
