// Package identity combines a nickname and an avatar into a placeholder
// identity for anonymous accounts, demo data and seeded test users.
//
// Every identity has an ID (a random UUID unless one is supplied). Both the
// avatar and the nickname are derived from that ID with seeded streams, so
// FromSeed(ctx, id) rebuilds exactly the same identity later without storing
// anything but the ID.
//
//	gen := identity.New(identity.WithLogger(log))
//	id, err := gen.Generate(ctx)
//	// id.ID, id.Nickname, id.Avatar (SVG or data URI)
//
// Generation is logged at DEBUG through the configured logger, or through
// the logger carried by ctx (see logger.NewContext) when none is configured.
package identity
