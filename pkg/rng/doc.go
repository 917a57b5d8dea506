// Package rng provides a tiny deterministic pseudo-random stream that turns an
// arbitrary seed into a repeatable sequence of float64 values in [0, 1).
//
// The stream does not depend on math/rand or any platform facility, so the
// same seed produces the same sequence on every platform and every Go
// version. It is used by the avatar package to make avatars reproducible from
// a seed, and it satisfies the Float64 source interface accepted by the
// nickname package.
//
// # Algorithm
//
// The seed string is folded into a 32-bit state with an FNV-1a style hash over
// its UTF-16 code units. Each call to Next adds a fixed odd increment to the
// state and runs two rounds of xor-shift/multiply mixing where the multiplier
// is derived from the state itself. All arithmetic is uint32 with wraparound.
//
// # Usage
//
//	s := rng.New("alice")
//	v := s.Next()                      // 0 <= v < 1
//	c := rng.Pick(s, []string{"a", "b"}) // deterministic pick
//
// A Stream is not safe for concurrent use. Create one per generation call.
package rng
