package ratkey

import "math/bits"

// reduce64 returns n/d in lowest terms as a sign and an unsigned magnitude
// m/k. d must not be zero.
func reduce64(n, d int64) (neg bool, m, k uint64) {
	neg = (n < 0) != (d < 0)
	m, k = uabs64(n), uabs64(d)
	if m == 0 {
		return false, 0, 1
	}
	g := GCD(m, k)
	return neg, m / g, k / g
}

// uabs64 returns the absolute value of x. Unlike the signed negation, this
// is exact for math.MinInt64: -x wraps back to MinInt64, whose bit pattern
// read as uint64 is 1<<63.
func uabs64(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}

// cmpFrac64 returns -1 if p/q < n/d, 0 if p/q == n/d, and 1 if p/q > n/d.
// Either denominator may be zero, in which case that fraction is treated as
// infinite; at most one of them may be.
func cmpFrac64(p, q, n, d uint64) int {
	// p/q <=> n/d  is the same as  p*d <=> n*q  for non-negative operands,
	// and the products need up to 128 bits
	h1, l1 := bits.Mul64(p, d)
	h2, l2 := bits.Mul64(n, q)
	switch {
	case h1 < h2 || (h1 == h2 && l1 < l2):
		return -1
	case h1 > h2 || (h1 == h2 && l1 > l2):
		return 1
	}
	return 0
}

// window64 is the Stern-Brocot search state for magnitudes that fit in 64
// bits: the current node p/q and its bounds pl/ql and pr/qr.
//
// Every node on the way to a target m/k has p <= m and q <= k, so the search
// can never overflow.
type window64 struct {
	p, q   uint64
	pl, ql uint64
	pr, qr uint64
}

func newWindow64() window64 {
	return window64{p: 1, q: 1, pl: 0, ql: 1, pr: 1, qr: 0}
}

func (w *window64) left() {
	w.pr, w.qr = w.p, w.q
	w.p, w.q = w.pl+w.p, w.ql+w.q
}

func (w *window64) right() {
	w.pl, w.ql = w.p, w.q
	w.p, w.q = w.pr+w.p, w.qr+w.q
}

// walk64 appends to dst the directions from the root to m/k, which must be
// positive and in lowest terms.
func walk64(dst []byte, m, k uint64) []byte {
	w := newWindow64()
	for {
		switch cmpFrac64(w.p, w.q, m, k) {
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
