package nickname

import "github.com/dmitrymomot/cutegen/pkg/rng"

const (
	// reduplicationChance is the share of names that repeat the suffix when
	// reduplication is allowed.
	reduplicationChance = 0.05

	// bareChance is the share of names without a prefix unless ForcePrefix
	// is set.
	bareChance = 0.25
)

// Generate returns a random nickname. nil options use the defaults.
// The only error is an invalid custom word list.
func Generate(opts *Options) (string, error) {
	o := opts.merge()

	words, err := o.words()
	if err != nil {
		return "", err
	}

	src := o.Source
	suffix := rng.Pick(src, words.Suffixes)

	if o.AllowReduplication && src.Float64() < reduplicationChance {
		return decorate(suffix+suffix, o.WithEmoji, src), nil
	}

	name := suffix
	if o.ForcePrefix || src.Float64() > bareChance {
		name = rng.Pick(src, words.Prefixes) + suffix
	}

	return decorate(name, o.WithEmoji, src), nil
}

// MustGenerate is like Generate but panics on an invalid word list.
func MustGenerate(opts *Options) string {
	name, err := Generate(opts)
	if err != nil {
		panic(err)
	}
	return name
}

func decorate(name string, withEmoji bool, src Source) string {
	if !withEmoji {
		return name
	}
	return name + " " + rng.Pick(src, emojis)
}
