package avatar

import (
	"fmt"
	"math"
	"slices"

	"github.com/dmitrymomot/cutegen/pkg/rng"
)

// DefaultSize is the edge length used when WithSize is not given.
const DefaultSize = 64

// Option configures avatar generation.
type Option func(*config)

type config struct {
	size        float64
	seed        string
	seeded      bool
	background  bool
	accessories bool
	expressions bool
	palette     []string
	format      Format
}

func defaultConfig() *config {
	return &config{
		size:        DefaultSize,
		background:  true,
		accessories: true,
		expressions: true,
		palette:     defaultPalette,
		format:      FormatRaw,
	}
}

func newConfig(opts ...Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

func validSize(size float64) bool {
	return size > 0 && !math.IsInf(size, 1)
}

// WithSize sets the width and height of the document.
// Panics when size is not a positive finite number.
func WithSize(size float64) Option {
	if !validSize(size) {
		panic(fmt.Errorf("%w: %v", ErrInvalidSize, size))
	}
	return func(c *config) { c.size = size }
}

// WithSeed makes the avatar reproducible. The value is converted with
// rng.SeedString, so 42 and "42" produce the same avatar. A nil seed counts
// as absent and leaves the avatar random.
func WithSeed(seed any) Option {
	if seed == nil {
		return func(c *config) {
			c.seed = ""
			c.seeded = false
		}
	}
	s := rng.SeedString(seed)
	return func(c *config) {
		c.seed = s
		c.seeded = true
	}
}

func WithBackground(enabled bool) Option {
	return func(c *config) { c.background = enabled }
}

func WithAccessories(enabled bool) Option {
	return func(c *config) { c.accessories = enabled }
}

// WithExpressions enables the random expression. When disabled every avatar
// smiles.
func WithExpressions(enabled bool) Option {
	return func(c *config) { c.expressions = enabled }
}

// WithPalette replaces the colours used for background, face and accessories.
// The slice is copied. Panics when no colours are given.
func WithPalette(colors ...string) Option {
	if len(colors) == 0 {
		panic(ErrEmptyPalette)
	}
	p := slices.Clone(colors)
	return func(c *config) { c.palette = p }
}

// WithFormat selects raw markup or a data URI.
// Panics for unknown formats.
func WithFormat(f Format) Option {
	if !f.valid() {
		panic(fmt.Errorf("%w: %q", ErrInvalidFormat, f))
	}
	return func(c *config) { c.format = f }
}
