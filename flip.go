package ratkey

import "fmt"

// Flip returns a new slice with every 0 in bits replaced by 1 and every 1 by
// 0. Flip returns ErrDigitInvalid if any element is neither 0 nor 1.
func Flip(bits []byte) ([]byte, error) {
	out := make([]byte, len(bits))
	for i, b := range bits {
		switch b {
		case 0:
			out[i] = 1
		case 1:
			out[i] = 0
		default:
			return nil, fmt.Errorf("bit at index %d: %w", i, ErrDigitInvalid)
		}
	}
	return out, nil
}

// flipInPlace inverts bits known to be binary.
func flipInPlace(bits []byte) {
	for i := range bits {
		bits[i] ^= 1
	}
}
