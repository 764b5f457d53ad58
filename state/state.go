package state

import (
	"errors"
	"fmt"
	"strings"
)

// MaxIndexBits is the widest network whose states fit the integer encoding.
const MaxIndexBits = 64

// Sentinel errors for state construction and decoding.
var (
	// ErrEmptyWidth indicates a State of width ≤ 0 was requested.
	ErrEmptyWidth = errors.New("state: width must be positive")

	// ErrTooWide indicates the integer encoding was requested for N > MaxIndexBits.
	ErrTooWide = errors.New("state: width exceeds integer encoding")

	// ErrBadSymbol indicates a rendering contained a rune other than '0' or '1'.
	ErrBadSymbol = errors.New("state: bad symbol in rendering")

	// ErrKeyWidth indicates a Key does not belong to the codec's width.
	ErrKeyWidth = errors.New("state: key does not match width")
)

// Key is the canonical packed encoding of a State.
// Keys of equal width compare (as strings) in the same order as the states' indices.
type Key string

// State is an immutable vector of N booleans.
// The zero State has width 0 and is never produced by the constructors.
type State struct {
	n      int
	packed string // ceil(n/8) bytes, node i at bit 7-(i%8) of byte i/8, zero padding
}

// New packs bits into a State. bits is copied; later changes do not leak in.
func New(bits []bool) (State, error) {
	if len(bits) == 0 {
		return State{}, ErrEmptyWidth
	}
	buf := make([]byte, byteLen(len(bits)))
	for i, b := range bits {
		if b {
			buf[i>>3] |= 0x80 >> uint(i&7)
		}
	}

	return State{n: len(bits), packed: string(buf)}, nil
}

// Parse builds a State from its "0101" rendering (node 0 first).
func Parse(s string) (State, error) {
	if s == "" {
		return State{}, ErrEmptyWidth
	}
	bits := make([]bool, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
		case '1':
			bits[i] = true
		default:
			return State{}, fmt.Errorf("%w: %q at position %d", ErrBadSymbol, s[i], i)
		}
	}

	return New(bits)
}

// MustParse is Parse for fixtures and examples; it panics on malformed input.
func MustParse(s string) State {
	st, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return st
}

// FromIndex returns the State whose integer encoding is idx.
// Node 0 is the most significant of the n bits, so index order matches
// lexicographic order of the renderings.
func FromIndex(n int, idx uint64) (State, error) {
	if n <= 0 {
		return State{}, ErrEmptyWidth
	}
	if n > MaxIndexBits {
		return State{}, fmt.Errorf("%w: %d > %d", ErrTooWide, n, MaxIndexBits)
	}
	buf := make([]byte, byteLen(n))
	for i := 0; i < n; i++ {
		if idx&(1<<uint(n-1-i)) != 0 {
			buf[i>>3] |= 0x80 >> uint(i&7)
		}
	}

	return State{n: n, packed: string(buf)}, nil
}

// Len reports the width N.
func (s State) Len() int { return s.n }

// IsZero reports whether s is the zero value (no width).
func (s State) IsZero() bool { return s.n == 0 }

// Bit returns the value of node i. Out-of-range indices read as false;
// callers validate indices up front (see network.New).
func (s State) Bit(i int) bool {
	if i < 0 || i >= s.n {
		return false
	}

	return s.packed[i>>3]&(0x80>>uint(i&7)) != 0
}

// Bools unpacks s into a fresh slice.
func (s State) Bools() []bool {
	out := make([]bool, s.n)
	for i := range out {
		out[i] = s.Bit(i)
	}

	return out
}

// Ones counts active nodes.
func (s State) Ones() int {
	c := 0
	for i := 0; i < s.n; i++ {
		if s.Bit(i) {
			c++
		}
	}

	return c
}

// Key returns the packed encoding of s.
func (s State) Key() Key { return Key(s.packed) }

// Index returns the integer encoding of s; see FromIndex.
func (s State) Index() (uint64, error) {
	if s.n > MaxIndexBits {
		return 0, fmt.Errorf("%w: %d > %d", ErrTooWide, s.n, MaxIndexBits)
	}
	var idx uint64
	for i := 0; i < s.n; i++ {
		idx <<= 1
		if s.Bit(i) {
			idx |= 1
		}
	}

	return idx, nil
}

// Equal reports whether s and o have the same width and the same bits.
func (s State) Equal(o State) bool { return s == o }

// String renders s as "0101", node 0 first.
func (s State) String() string {
	var sb strings.Builder
	sb.Grow(s.n)
	for i := 0; i < s.n; i++ {
		if s.Bit(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}

// MarshalText renders s for encoding/json and yaml.
func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText parses the "0101" rendering.
func (s *State) UnmarshalText(b []byte) error {
	st, err := Parse(string(b))
	if err != nil {
		return err
	}
	*s = st

	return nil
}

func byteLen(n int) int { return (n + 7) >> 3 }
