package ratkey

import (
	"encoding/binary"
	"fmt"
	"math/big"
)

// Byte keys are built so that bytes.Compare orders them like the values they
// hold. An integer key starts with a header byte:
//
//	0x80            zero, no further bytes
//	0x81..0xFE      positive, magnitude of 1 to 126 big-endian bytes follows
//	0xFF            positive, 8-byte big-endian length and magnitude follow
//
// A negative integer is the bitwise complement of the key of its magnitude,
// so its header is below 0x80. Magnitudes never have a leading zero byte,
// which makes every key the only key for its integer.
const (
	keyZero     = 0x80
	keyLong     = 0xFF
	keyMaxShort = keyLong - keyZero - 1
)

// AppendInt appends the order-preserving byte key of z to dst and returns
// the extended buffer. Keys are self-delimiting, so concatenated keys compare
// like the sequences of integers they hold.
func AppendInt(dst []byte, z *big.Int) []byte {
	if z.Sign() == 0 {
		return append(dst, keyZero)
	}
	start := len(dst)
	mag := z.Bytes()
	if k := len(mag); k <= keyMaxShort {
		dst = append(dst, byte(keyZero+k))
	} else {
		dst = append(dst, keyLong)
		dst = binary.BigEndian.AppendUint64(dst, uint64(k))
	}
	dst = append(dst, mag...)
	if z.Sign() < 0 {
		complement(dst[start:])
	}
	return dst
}

// ReadInt reads one integer key from the start of src and returns the
// integer and the number of bytes consumed.
// ReadInt returns an error wrapping ErrKeyInvalid if src does not start with
// a complete key in the form written by AppendInt.
func ReadInt(src []byte) (*big.Int, int, error) {
	if len(src) == 0 {
		return nil, 0, fmt.Errorf("no header: %w", ErrKeyInvalid)
	}
	h := src[0]
	neg := h < keyZero
	if neg {
		h = ^h
	}
	var k uint64
	off := 1
	switch {
	case h == keyZero:
		if neg {
			return nil, 0, fmt.Errorf("header %#02x: %w", src[0], ErrKeyInvalid)
		}
		return new(big.Int), 1, nil
	case h == keyLong:
		if len(src) < 9 {
			return nil, 0, fmt.Errorf("truncated length: %w", ErrKeyInvalid)
		}
		var buf [8]byte
		copy(buf[:], src[1:9])
		if neg {
			complement(buf[:])
		}
		k = binary.BigEndian.Uint64(buf[:])
		if k <= keyMaxShort {
			return nil, 0, fmt.Errorf("long form for %d bytes: %w", k, ErrKeyInvalid)
		}
		off = 9
	default:
		k = uint64(h - keyZero)
	}
	if k > uint64(len(src)-off) {
		return nil, 0, fmt.Errorf("truncated magnitude of %d bytes: %w", k, ErrKeyInvalid)
	}
	end := off + int(k)
	mag := append([]byte(nil), src[off:end]...)
	if neg {
		complement(mag)
	}
	if mag[0] == 0 {
		return nil, 0, fmt.Errorf("leading zero byte: %w", ErrKeyInvalid)
	}
	z := new(big.Int).SetBytes(mag)
	if neg {
		z.Neg(z)
	}
	return z, end, nil
}

// LexicalKey returns the byte key of lx: the keys of its terms, in order.
// For sequences from LexicalEncode, bytes.Compare orders keys as the encoded
// values.
func LexicalKey(lx Lexical) []byte {
	var dst []byte
	for _, a := range lx {
		dst = AppendInt(dst, a)
	}
	return dst
}

// ParseLexicalKey splits a key written by LexicalKey back into its terms.
// ParseLexicalKey returns an error wrapping ErrKeyInvalid if key is empty or
// is not a sequence of complete integer keys.
func ParseLexicalKey(key []byte) (Lexical, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("empty key: %w", ErrKeyInvalid)
	}
	var lx Lexical
	for off := 0; off < len(key); {
		z, n, err := ReadInt(key[off:])
		if err != nil {
			return nil, fmt.Errorf("term %d at offset %d: %w", len(lx), off, err)
		}
		lx = append(lx, z)
		off += n
	}
	return lx, nil
}

// PathKey packs the bits of the code p into bytes, eight to a byte with the
// first bit in the high-order position, padding the last byte with zeros.
// Every code ends in a 1 bit, so the padding can be removed again, and
// bytes.Compare orders keys as the encoded values.
// PathKey returns an error wrapping ErrPathMalformed if p contains anything
// other than 0 and 1 or does not end in 1.
func PathKey(p Path) ([]byte, error) {
	if err := checkBits(p); err != nil {
		return nil, err
	}
	if len(p) == 0 || p[len(p)-1] != 1 {
		return nil, fmt.Errorf("code does not end in 1: %w", ErrPathMalformed)
	}
	key := make([]byte, (len(p)+7)/8)
	for i, b := range p {
		key[i/8] |= b << (7 - i%8)
	}
	return key, nil
}

// ParsePathKey unpacks a key written by PathKey.
// ParsePathKey returns an error wrapping ErrKeyInvalid if key is empty or
// its last byte is zero.
func ParsePathKey(key []byte) (Path, error) {
	if len(key) == 0 || key[len(key)-1] == 0 {
		return nil, fmt.Errorf("no terminal bit: %w", ErrKeyInvalid)
	}
	p := make(Path, 0, len(key)*8)
	for _, c := range key {
		for i := 7; i >= 0; i-- {
			p = append(p, (c>>i)&1)
		}
	}
	for p[len(p)-1] == 0 {
		p = p[:len(p)-1]
	}
	return p, nil
}

func complement(b []byte) {
	for i := range b {
		b[i] = ^b[i]
	}
}
