// Package nickname generates short, cute display names such as "小土豆" or
// "软布丁 🍮" from a list of prefixes and suffixes.
//
// A name is a random suffix, optionally preceded by a random prefix and
// optionally followed by a space and a random emoji. With reduplication
// enabled a small share of names repeat the suffix instead ("土豆土豆").
// Names are meant for placeholder identities: anonymous accounts, seeded test
// users, demo data.
//
// # Usage
//
//	import "github.com/dmitrymomot/cutegen/pkg/nickname"
//
//	name, err := nickname.Generate(nil) // defaults: no emoji, 75% prefixed
//
//	name, err = nickname.Generate(&nickname.Options{
//		WithEmoji:   true,
//		ForcePrefix: true,
//		WordList: &nickname.WordList{
//			Prefixes: []string{"喵"},
//			Suffixes: []string{"爪爪"},
//		},
//	})
//
// # Randomness
//
// By default the process-wide math/rand/v2 source is used, so names are not
// reproducible. Set Options.Source to any value with a Float64 method, for
// example an rng.Stream, to get the same name for the same seed:
//
//	name, _ := nickname.Generate(&nickname.Options{Source: rng.New(user.ID)})
//
// The number and order of draws is fixed: suffix, reduplication roll (only
// when allowed), prefix roll (skipped when ForcePrefix), prefix, emoji.
//
// # Word lists
//
// Custom word lists are NFC-normalised and blank entries are dropped before
// use. An empty prefix or suffix list is rejected with ErrEmptyPrefixes or
// ErrEmptySuffixes; both wrap ErrInvalidWordList. The built-in lists are
// exposed through DefaultWordList and Emojis as copies.
package nickname
