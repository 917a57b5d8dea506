package nickname

import (
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/unicode/norm"
)

// Source provides random values in [0, 1).
// *rand.Rand from math/rand/v2 and *rng.Stream both satisfy it.
type Source interface {
	Float64() float64
}

// WordList is the vocabulary names are built from.
type WordList struct {
	Prefixes []string `json:"prefixes"`
	Suffixes []string `json:"suffixes"`
}

// Options configures nickname generation. The zero value and nil are valid
// and mean "defaults".
type Options struct {
	// WithEmoji appends a space and a random emoji.
	WithEmoji bool

	// AllowReduplication lets about 5% of names repeat the suffix.
	AllowReduplication bool

	// ForcePrefix always prepends a prefix instead of 75% of the time.
	ForcePrefix bool

	// WordList replaces the built-in vocabulary.
	// Default: DefaultWordList()
	WordList *WordList

	// Source overrides the random source.
	// Default: process-wide math/rand/v2
	Source Source
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// merge combines user options with defaults.
func (o *Options) merge() Options {
	var result Options
	if o != nil {
		result = *o
	}
	if result.Source == nil {
		result.Source = globalSource{}
	}
	return result
}

// words returns the vocabulary to use, validated.
func (o Options) words() (WordList, error) {
	if o.WordList == nil {
		return defaultWords, nil
	}

	wl := WordList{
		Prefixes: clean(o.WordList.Prefixes),
		Suffixes: clean(o.WordList.Suffixes),
	}
	if len(wl.Prefixes) == 0 {
		return WordList{}, ErrEmptyPrefixes
	}
	if len(wl.Suffixes) == 0 {
		return WordList{}, ErrEmptySuffixes
	}
	return wl, nil
}

// clean normalises words to NFC and drops blank ones. The input is not
// modified.
func clean(words []string) []string {
	return lo.Compact(lo.Map(words, func(w string, _ int) string {
		return norm.NFC.String(strings.TrimSpace(w))
	}))
}

// Clone returns a deep copy of the word list.
func (w WordList) Clone() WordList {
	return WordList{
		Prefixes: slices.Clone(w.Prefixes),
		Suffixes: slices.Clone(w.Suffixes),
	}
}
