package rng

import "unicode/utf16"

const (
	fnvOffset uint32 = 2166136261
	fnvPrime  uint32 = 16777619

	increment uint32 = 0x6D2B79F5

	// normalizer maps a uint32 onto [0, 1).
	normalizer = 4294967296.0
)

// Float64er is any source of float64 values in [0, 1).
type Float64er interface {
	Float64() float64
}

// Stream is a seeded deterministic generator.
type Stream struct {
	state uint32
}

// New creates a stream whose initial state is the hash of seed.
// Any string, including the empty one, is a valid seed.
func New(seed string) *Stream {
	return &Stream{state: Hash(seed)}
}

// Hash folds s into a 32-bit value. Characters are taken as UTF-16 code
// units so seeds outside the BMP hash the same way as in browser runtimes.
func Hash(s string) uint32 {
	h := fnvOffset
	for _, unit := range utf16.Encode([]rune(s)) {
		h = (h ^ uint32(unit)) * fnvPrime
	}
	return h
}

// Next advances the state and returns a value in [0, 1).
func (s *Stream) Next() float64 {
	s.state += increment
	t := (s.state ^ s.state>>15) * (1 | s.state)
	t = (t + (t^t>>7)*(61|t)) ^ t
	return float64(t^t>>14) / normalizer
}

// Float64 is an alias of Next so a Stream can be used wherever a Float64er
// is accepted.
func (s *Stream) Float64() float64 {
	return s.Next()
}

// Pick returns items[floor(next*len(items))], consuming exactly one value.
// It panics when items is empty.
func Pick[T any](src Float64er, items []T) T {
	return items[Index(src, len(items))]
}

// Index returns a value in [0, n) drawn from src, consuming exactly one value.
func Index(src Float64er, n int) int {
	i := int(src.Float64() * float64(n))
	// guards against a custom source returning exactly 1
	if i >= n {
		i = n - 1
	}
	return i
}
