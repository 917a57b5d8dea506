package avatar

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Config holds avatar defaults loaded from the environment with config.Load.
type Config struct {
	// Size is the edge length of the document.
	Size float64 `env:"AVATAR_SIZE" envDefault:"64"`
	// Background enables the random solid/gradient background.
	Background bool `env:"AVATAR_BACKGROUND" envDefault:"true"`
	// Accessories enables hats, glasses, hair and bows.
	Accessories bool `env:"AVATAR_ACCESSORIES" envDefault:"true"`
	// Expressions enables random expressions.
	Expressions bool `env:"AVATAR_EXPRESSIONS" envDefault:"true"`
	// Palette is a comma separated colour list. Empty means the default palette.
	Palette []string `env:"AVATAR_PALETTE" envSeparator:","`
	// Format is "raw" or "data_uri".
	Format string `env:"AVATAR_FORMAT" envDefault:"raw"`
}

// Options validates the config and converts it to generation options.
// Blank palette entries are ignored.
func (c Config) Options() ([]Option, error) {
	if !validSize(c.Size) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, c.Size)
	}
	format := Format(strings.ToLower(strings.TrimSpace(c.Format)))
	if format == "" {
		format = FormatRaw
	}
	if !format.valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, c.Format)
	}

	opts := []Option{
		WithSize(c.Size),
		WithBackground(c.Background),
		WithAccessories(c.Accessories),
		WithExpressions(c.Expressions),
		WithFormat(format),
	}

	palette := lo.Compact(lo.Map(c.Palette, func(s string, _ int) string {
		return strings.TrimSpace(s)
	}))
	if len(palette) > 0 {
		opts = append(opts, WithPalette(palette...))
	}

	return opts, nil
}
