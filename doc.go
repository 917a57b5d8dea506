// Package cutegen generates placeholder identities: deterministic cartoon
// avatars rendered as SVG and cute random display names.
//
// The root package re-exports the two entry points. The building blocks live
// under pkg/:
//
//   - pkg/rng       seeded, platform-independent random stream
//   - pkg/avatar    SVG avatar composer
//   - pkg/nickname  word-list nickname generator
//   - pkg/identity  nickname + avatar pairs reproducible from an ID
//   - pkg/config    environment loader for the AVATAR_* and NICKNAME_* settings
//   - pkg/logger    slog factory and context carrier
//
// Basic usage:
//
//	svg := cutegen.GenerateAvatar(avatar.WithSeed(user.ID), avatar.WithSize(96))
//
//	name, err := cutegen.GenerateNickname(&nickname.Options{WithEmoji: true})
//	if err != nil {
//		// only an invalid custom word list fails
//	}
//
// Nothing is persisted, cached or fetched: every call returns a string built
// in memory, and calls are safe to run concurrently.
package cutegen
