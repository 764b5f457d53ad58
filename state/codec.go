package state

import "fmt"

// Codec converts between States of one fixed width and their Keys.
// A Codec is a small value; copy it freely across goroutines.
type Codec struct {
	n int
}

// NewCodec returns a Codec for width n.
func NewCodec(n int) (Codec, error) {
	if n <= 0 {
		return Codec{}, ErrEmptyWidth
	}

	return Codec{n: n}, nil
}

// Width reports the codec's N.
func (c Codec) Width() int { return c.n }

// Encode returns the Key of s, rejecting states of another width.
func (c Codec) Encode(s State) (Key, error) {
	if s.n != c.n {
		return "", fmt.Errorf("%w: state width %d, codec width %d", ErrKeyWidth, s.n, c.n)
	}

	return s.Key(), nil
}

// Decode is the inverse of Encode. Keys of the wrong length, or with
// non-zero padding bits, are rejected so that Decode∘Encode is a bijection.
func (c Codec) Decode(k Key) (State, error) {
	if len(k) != byteLen(c.n) {
		return State{}, fmt.Errorf("%w: key length %d, want %d", ErrKeyWidth, len(k), byteLen(c.n))
	}
	if pad := c.n & 7; pad != 0 {
		mask := byte(0xFF >> uint(pad))
		if k[len(k)-1]&mask != 0 {
			return State{}, fmt.Errorf("%w: non-zero padding", ErrKeyWidth)
		}
	}

	return State{n: c.n, packed: string(k)}, nil
}
