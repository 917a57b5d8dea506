package nickname_test

import (
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cutegen/pkg/nickname"
	"github.com/dmitrymomot/cutegen/pkg/rng"
)

// script replays fixed values and repeats the last one when exhausted.
type script struct {
	values []float64
	calls  int
}

func (s *script) Float64() float64 {
	i := min(s.calls, len(s.values)-1)
	s.calls++
	return s.values[i]
}

func constant(v float64) *script { return &script{values: []float64{v}} }

func matchesWordList(t *testing.T, name string, wl nickname.WordList) {
	t.Helper()

	var suffix string
	for _, s := range wl.Suffixes {
		if strings.HasSuffix(name, s) && len(s) > len(suffix) {
			suffix = s
		}
	}
	require.NotEmpty(t, suffix, "%q does not end with a known suffix", name)

	if name == suffix {
		return
	}
	head := strings.TrimSuffix(name, suffix)
	assert.True(t, slices.Contains(wl.Prefixes, head), "%q: %q is not a known prefix", name, head)
}

func TestGenerate_Defaults(t *testing.T) {
	t.Parallel()

	wl := nickname.DefaultWordList()
	for range 200 {
		name, err := nickname.Generate(nil)
		require.NoError(t, err)
		require.NotEmpty(t, name)
		assert.NotContains(t, name, " ")
		matchesWordList(t, name, wl)
	}
}

func TestGenerate_ZeroOptionsEqualNil(t *testing.T) {
	t.Parallel()

	a, err := nickname.Generate(&nickname.Options{Source: rng.New("same")})
	require.NoError(t, err)
	b, err := nickname.Generate(&nickname.Options{Source: rng.New("same")})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerate_WithEmoji(t *testing.T) {
	t.Parallel()

	emojis := nickname.Emojis()
	for range 200 {
		name, err := nickname.Generate(&nickname.Options{WithEmoji: true})
		require.NoError(t, err)

		parts := strings.Split(name, " ")
		require.Len(t, parts, 2, name)
		assert.NotEmpty(t, parts[0])
		assert.Contains(t, emojis, parts[1])
	}
}

func TestGenerate_Reduplication(t *testing.T) {
	t.Parallel()

	wl := nickname.DefaultWordList()

	t.Run("forced below threshold doubles the suffix", func(t *testing.T) {
		t.Parallel()
		name, err := nickname.Generate(&nickname.Options{
			AllowReduplication: true,
			Source:             &script{values: []float64{0, 0.01}},
		})
		require.NoError(t, err)
		assert.Equal(t, wl.Suffixes[0]+wl.Suffixes[0], name)

		half := len(name) / 2
		assert.Zero(t, len(name)%2)
		assert.Equal(t, name[:half], name[half:])
	})

	t.Run("doubled name still gets an emoji", func(t *testing.T) {
		t.Parallel()
		name, err := nickname.Generate(&nickname.Options{
			AllowReduplication: true,
			WithEmoji:          true,
			Source:             &script{values: []float64{0, 0.01, 0}},
		})
		require.NoError(t, err)
		assert.Equal(t, wl.Suffixes[0]+wl.Suffixes[0]+" "+nickname.Emojis()[0], name)
	})

	t.Run("at threshold does not double", func(t *testing.T) {
		t.Parallel()
		name, err := nickname.Generate(&nickname.Options{
			AllowReduplication: true,
			Source:             &script{values: []float64{0, 0.05, 0.5, 0}},
		})
		require.NoError(t, err)
		assert.Equal(t, wl.Prefixes[0]+wl.Suffixes[0], name)
	})

	t.Run("disallowed never doubles", func(t *testing.T) {
		t.Parallel()
		name, err := nickname.Generate(&nickname.Options{
			AllowReduplication: false,
			Source:             constant(0.01),
		})
		require.NoError(t, err)
		// 0.01 is below the prefix roll too, so the bare suffix comes back
		assert.Equal(t, wl.Suffixes[0], name)
	})

	t.Run("disallowed never doubles with real randomness", func(t *testing.T) {
		t.Parallel()
		src := rand.New(rand.NewPCG(1, 2))
		for range 500 {
			name, err := nickname.Generate(&nickname.Options{Source: src})
			require.NoError(t, err)
			if n := len(name); n%2 == 0 {
				assert.NotEqual(t, name[:n/2], name[n/2:], name)
			}
		}
	})
}

func TestGenerate_Prefix(t *testing.T) {
	t.Parallel()

	wl := nickname.DefaultWordList()

	t.Run("force prefix with zero randomness", func(t *testing.T) {
		t.Parallel()
		name, err := nickname.Generate(&nickname.Options{ForcePrefix: true, Source: constant(0)})
		require.NoError(t, err)
		assert.Equal(t, wl.Prefixes[0]+wl.Suffixes[0], name)
	})

	t.Run("force prefix skips the prefix roll", func(t *testing.T) {
		t.Parallel()
		src := &script{values: []float64{0, 0.99}}
		name, err := nickname.Generate(&nickname.Options{ForcePrefix: true, Source: src})
		require.NoError(t, err)
		assert.Equal(t, wl.Prefixes[len(wl.Prefixes)-1]+wl.Suffixes[0], name)
		assert.Equal(t, 2, src.calls)
	})

	t.Run("roll above threshold adds a prefix", func(t *testing.T) {
		t.Parallel()
		name, err := nickname.Generate(&nickname.Options{Source: &script{values: []float64{0, 0.26, 0}}})
		require.NoError(t, err)
		assert.Equal(t, wl.Prefixes[0]+wl.Suffixes[0], name)
	})

	t.Run("roll at threshold stays bare", func(t *testing.T) {
		t.Parallel()
		name, err := nickname.Generate(&nickname.Options{Source: &script{values: []float64{0, 0.25}}})
		require.NoError(t, err)
		assert.Equal(t, wl.Suffixes[0], name)
	})

	t.Run("about three quarters are prefixed", func(t *testing.T) {
		t.Parallel()
		src := rand.New(rand.NewPCG(7, 7))
		prefixed := 0
		const n = 4000
		for range n {
			name, err := nickname.Generate(&nickname.Options{Source: src})
			require.NoError(t, err)
			if !slices.Contains(wl.Suffixes, name) {
				prefixed++
			}
		}
		assert.InDelta(t, 0.75, float64(prefixed)/n, 0.05)
	})
}

func TestGenerate_CustomWordList(t *testing.T) {
	t.Parallel()

	t.Run("single prefix and suffix", func(t *testing.T) {
		t.Parallel()
		for range 50 {
			name, err := nickname.Generate(&nickname.Options{
				ForcePrefix: true,
				WordList:    &nickname.WordList{Prefixes: []string{"喵"}, Suffixes: []string{"爪爪"}},
			})
			require.NoError(t, err)
			assert.Equal(t, "喵爪爪", name)
		}
	})

	t.Run("membership", func(t *testing.T) {
		t.Parallel()
		wl := nickname.WordList{Prefixes: []string{"big", "tiny"}, Suffixes: []string{"cat", "dog"}}
		for range 100 {
			name, err := nickname.Generate(&nickname.Options{WordList: &wl})
			require.NoError(t, err)
			matchesWordList(t, name, wl)
		}
	})

	t.Run("entries are normalised and blanks dropped", func(t *testing.T) {
		t.Parallel()
		wl := &nickname.WordList{
			Prefixes: []string{"  ", "cafe\u0301 "},
			Suffixes: []string{"", "\tcat"},
		}
		name, err := nickname.Generate(&nickname.Options{ForcePrefix: true, WordList: wl})
		require.NoError(t, err)
		assert.Equal(t, "caf\u00e9cat", name)
		assert.Equal(t, "cafe\u0301 ", wl.Prefixes[1], "input must not be modified")
	})
}

func TestGenerate_InvalidWordList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		wl   nickname.WordList
		err  error
	}{
		{"empty prefixes", nickname.WordList{Prefixes: []string{}, Suffixes: []string{"a"}}, nickname.ErrEmptyPrefixes},
		{"nil prefixes", nickname.WordList{Suffixes: []string{"a"}}, nickname.ErrEmptyPrefixes},
		{"blank prefixes", nickname.WordList{Prefixes: []string{" "}, Suffixes: []string{"a"}}, nickname.ErrEmptyPrefixes},
		{"empty suffixes", nickname.WordList{Prefixes: []string{"a"}, Suffixes: []string{}}, nickname.ErrEmptySuffixes},
		{"both empty reports prefixes first", nickname.WordList{}, nickname.ErrEmptyPrefixes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			name, err := nickname.Generate(&nickname.Options{WordList: &tt.wl})
			require.ErrorIs(t, err, tt.err)
			assert.ErrorIs(t, err, nickname.ErrInvalidWordList)
			assert.Empty(t, name)
		})
	}

	assert.EqualError(t, nickname.ErrEmptyPrefixes, "invalid word list: prefixes must not be empty")
	assert.EqualError(t, nickname.ErrEmptySuffixes, "invalid word list: suffixes must not be empty")
	assert.Panics(t, func() {
		nickname.MustGenerate(&nickname.Options{WordList: &nickname.WordList{}})
	})
}

func TestGenerate_SeededSource(t *testing.T) {
	t.Parallel()

	opts := func() *nickname.Options {
		return &nickname.Options{WithEmoji: true, AllowReduplication: true, Source: rng.New("alice")}
	}
	first := nickname.MustGenerate(opts())
	for range 10 {
		assert.Equal(t, first, nickname.MustGenerate(opts()))
	}
}

func TestGenerate_Variety(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	for range 20 {
		seen[nickname.MustGenerate(nil)] = struct{}{}
	}
	assert.GreaterOrEqual(t, len(seen), 2)
}

func TestGenerate_Concurrent(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				_, err := nickname.Generate(&nickname.Options{WithEmoji: true})
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()
}

func TestDefaults_AreCopies(t *testing.T) {
	t.Parallel()

	wl := nickname.DefaultWordList()
	wl.Prefixes[0] = "changed"
	wl.Suffixes[0] = "changed"
	assert.NotEqual(t, "changed", nickname.DefaultWordList().Prefixes[0])
	assert.NotEqual(t, "changed", nickname.DefaultWordList().Suffixes[0])

	e := nickname.Emojis()
	e[0] = "x"
	assert.NotEqual(t, "x", nickname.Emojis()[0])
}

func TestDefaults_WellFormed(t *testing.T) {
	t.Parallel()

	wl := nickname.DefaultWordList()
	assert.NotEmpty(t, wl.Prefixes)
	assert.NotEmpty(t, wl.Suffixes)
	for _, w := range slices.Concat(wl.Prefixes, wl.Suffixes, nickname.Emojis()) {
		assert.NotEmpty(t, w)
		assert.NotContains(t, w, " ")
	}
}

func TestDefaults_SuffixesAreNotDoubled(t *testing.T) {
	t.Parallel()

	for _, s := range nickname.DefaultWordList().Suffixes {
		n := len(s)
		assert.False(t, n%2 == 0 && s[:n/2] == s[n/2:], "suffix %q repeats its first half", s)
	}
}

func TestGenerate_NoDoublingWithoutReduplication(t *testing.T) {
	t.Parallel()

	wl := nickname.DefaultWordList()
	for i := range wl.Suffixes {
		// pick suffix i, then fail the prefix roll
		pick := (float64(i) + 0.5) / float64(len(wl.Suffixes))
		name, err := nickname.Generate(&nickname.Options{Source: &script{values: []float64{pick, 0.1}}})
		require.NoError(t, err)
		require.Equal(t, wl.Suffixes[i], name)

		n := len(name)
		assert.False(t, n%2 == 0 && name[:n/2] == name[n/2:], "%q looks reduplicated", name)
	}
}
