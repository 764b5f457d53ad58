package initstate

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/boolnet/state"
)

const (
	// DefaultThresholdBits is the widest network enumerated exhaustively by default.
	DefaultThresholdBits = 14

	// MaxThresholdBits bounds the exhaustive threshold so 2^N fits an int64.
	MaxThresholdBits = 62

	// DefaultSampleSize is the number of states drawn when sampling.
	DefaultSampleSize = 10000
)

var (
	// ErrTooWide indicates exhaustive enumeration was requested above the threshold.
	ErrTooWide = errors.New("initstate: network too wide for exhaustive enumeration")

	// ErrSampleSize is the sentinel behind every *SampleSizeError.
	ErrSampleSize = errors.New("initstate: invalid sample size")

	// ErrBadWidth indicates a non-positive node count.
	ErrBadWidth = errors.New("initstate: node count must be positive")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("initstate: invalid option supplied")
)

// SampleSizeError reports a sample that the 2^N space cannot satisfy.
type SampleSizeError struct {
	Requested int
	Width     int
}

func (e *SampleSizeError) Error() string {
	if e.Requested <= 0 {
		return fmt.Sprintf("initstate: sample size %d must be positive", e.Requested)
	}

	return fmt.Sprintf("initstate: sample size %d exceeds the 2^%d state space", e.Requested, e.Width)
}

// Unwrap lets errors.Is match ErrSampleSize.
func (e *SampleSizeError) Unwrap() error { return ErrSampleSize }

// Strategy selects how initial states are produced.
type Strategy int

const (
	Auto       Strategy = iota // exhaustive up to the threshold, sampling beyond
	Exhaustive                 // all 2^N states
	Sampling                   // SampleSize distinct random states
)

// String returns "auto", "exhaustive" or "sampling".
func (s Strategy) String() string {
	switch s {
	case Auto:
		return "auto"
	case Exhaustive:
		return "exhaustive"
	case Sampling:
		return "sampling"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Generator is a lazy, finite, non-restartable source of initial states.
type Generator interface {
	// Next returns the next state, or false once the sequence is exhausted.
	Next() (state.State, bool)

	// Len is the total number of states the generator produces.
	Len() int

	// Width is N.
	Width() int

	// Exhaustive reports whether the sequence is a full enumeration of 2^N.
	Exhaustive() bool
}

// Option configures generator construction.
type Option func(*Options)

// Options holds generator parameters.
type Options struct {
	ThresholdBits int
	SampleSize    int
	Seed          int64

	err error
}

// DefaultOptions returns threshold DefaultThresholdBits, sample DefaultSampleSize, seed 0.
func DefaultOptions() Options {
	return Options{
		ThresholdBits: DefaultThresholdBits,
		SampleSize:    DefaultSampleSize,
	}
}

// WithThreshold sets the exhaustive ceiling in bits, 1..MaxThresholdBits.
func WithThreshold(bits int) Option {
	return func(o *Options) {
		if bits < 1 || bits > MaxThresholdBits {
			o.err = fmt.Errorf("%w: threshold %d outside [1,%d]", ErrOptionViolation, bits, MaxThresholdBits)
			return
		}
		o.ThresholdBits = bits
	}
}

// WithSampleSize sets the number of distinct states to draw.
// Validation happens against 2^N in NewSample.
func WithSampleSize(n int) Option {
	return func(o *Options) { o.SampleSize = n }
}

// WithSeed sets the sampling seed; 0 selects the fixed default.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// Generate builds a generator for an n-node network using strategy.
func Generate(n int, strategy Strategy, opts ...Option) (Generator, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	switch strategy {
	case Auto:
		if n <= o.ThresholdBits {
			return newExhaustive(n, o)
		}
		return newSample(n, o)
	case Exhaustive:
		return newExhaustive(n, o)
	case Sampling:
		return newSample(n, o)
	default:
		return nil, fmt.Errorf("%w: unknown strategy %v", ErrOptionViolation, strategy)
	}
}

// NewExhaustive enumerates all 2^n states in index order.
func NewExhaustive(n int, opts ...Option) (Generator, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return newExhaustive(n, o)
}

// NewSample draws o.SampleSize distinct states uniformly at random.
func NewSample(n int, opts ...Option) (Generator, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return newSample(n, o)
}

// SpaceSize returns 2^n, or false when it does not fit an int64.
func SpaceSize(n int) (int64, bool) {
	if n < 0 || n > MaxThresholdBits {
		return 0, false
	}

	return int64(1) << uint(n), true
}

type exhaustive struct {
	n    int
	next uint64
	end  uint64
}

func newExhaustive(n int, o Options) (*exhaustive, error) {
	if n <= 0 {
		return nil, ErrBadWidth
	}
	if n > o.ThresholdBits {
		return nil, fmt.Errorf("%w: %d nodes, threshold %d", ErrTooWide, n, o.ThresholdBits)
	}

	return &exhaustive{n: n, end: uint64(1) << uint(n)}, nil
}

func (g *exhaustive) Next() (state.State, bool) {
	if g.next >= g.end {
		return state.State{}, false
	}
	s, err := state.FromIndex(g.n, g.next)
	if err != nil {
		return state.State{}, false // unreachable: n ≤ MaxThresholdBits
	}
	g.next++

	return s, true
}

func (g *exhaustive) Len() int         { return int(g.end) }
func (g *exhaustive) Width() int       { return g.n }
func (g *exhaustive) Exhaustive() bool { return true }

type sample struct {
	n     int
	size  int
	drawn int
	rng   *rand.Rand

	// sparse Fisher–Yates over [0, space) for n ≤ MaxThresholdBits
	space uint64
	swaps map[uint64]uint64

	// rejection set for wider networks
	seen map[state.Key]struct{}
}

func newSample(n int, o Options) (*sample, error) {
	if n <= 0 {
		return nil, ErrBadWidth
	}
	if o.SampleSize <= 0 {
		return nil, &SampleSizeError{Requested: o.SampleSize, Width: n}
	}
	g := &sample{n: n, size: o.SampleSize, rng: rngFromSeed(o.Seed)}
	if space, ok := SpaceSize(n); ok {
		if int64(o.SampleSize) > space {
			return nil, &SampleSizeError{Requested: o.SampleSize, Width: n}
		}
		g.space = uint64(space)
		g.swaps = make(map[uint64]uint64, o.SampleSize)
	} else {
		g.seen = make(map[state.Key]struct{}, o.SampleSize)
	}

	return g, nil
}

func (g *sample) Next() (state.State, bool) {
	if g.drawn >= g.size {
		return state.State{}, false
	}
	if g.swaps != nil {
		return g.nextIndexed(), true
	}

	return g.nextRejected(), true
}

// nextIndexed performs one step of a Fisher–Yates shuffle of [0, space)
// whose displaced entries live in a map instead of a 2^N array.
func (g *sample) nextIndexed() state.State {
	i := uint64(g.drawn)
	j := i + uint64(g.rng.Int63n(int64(g.space-i)))
	vi, vj := g.valueAt(i), g.valueAt(j)
	g.swaps[j] = vi
	delete(g.swaps, i) // position i is final and never read again
	g.drawn++
	s, _ := state.FromIndex(g.n, vj) // n ≤ MaxThresholdBits

	return s
}

func (g *sample) valueAt(i uint64) uint64 {
	if v, ok := g.swaps[i]; ok {
		return v
	}

	return i
}

func (g *sample) nextRejected() state.State {
	for {
		s, _ := state.New(randomBits(g.rng, g.n))
		if _, dup := g.seen[s.Key()]; dup {
			continue
		}
		g.seen[s.Key()] = struct{}{}
		g.drawn++

		return s
	}
}

func (g *sample) Len() int         { return g.size }
func (g *sample) Width() int       { return g.n }
func (g *sample) Exhaustive() bool { return false }
