// Package avatar renders deterministic cartoon avatars as SVG documents.
//
// An avatar is a round face on a square background with an expression
// (smile, surprised or closed eyes), blushing cheeks and an optional
// accessory (hat, glasses, hair or a bow). Every choice is drawn from a
// seeded rng.Stream, so the same seed and options always produce the same
// document, byte for byte, on every platform.
//
// # Usage
//
//	import "github.com/dmitrymomot/cutegen/pkg/avatar"
//
//	// Raw SVG markup, 128x128, reproducible from the user ID.
//	svg := avatar.Generate(
//		avatar.WithSeed(user.ID),
//		avatar.WithSize(128),
//	)
//
//	// Data URI for an <img src="..."> attribute.
//	uri := avatar.GenerateDataURI(avatar.WithSeed(user.ID))
//
// Without WithSeed a random UUID is used as the seed and the result is not
// reproducible.
//
// # Options
//
//   - WithSize        edge length in user units (default 64).
//   - WithSeed        any value; converted with rng.SeedString.
//   - WithBackground  random solid or gradient background (default true).
//   - WithAccessories random accessory (default true).
//   - WithExpressions random expression (default true, otherwise smile).
//   - WithPalette     colours used for background, face and accessories.
//   - WithFormat      FormatRaw (default) or FormatDataURI.
//
// # Preconditions
//
// A non-positive size, an empty palette or an unknown format are programming
// errors: the corresponding options panic instead of producing a broken
// image. Config.Options validates the same rules and returns errors instead,
// for values that come from the environment.
//
// # Draw order
//
// Each generation consumes values from the stream in a fixed order: gradient
// id, two background colours, face colour, accent colour, expression,
// accessory kind, background style, accessory variant. Disabled features skip
// their draw. Changing this order changes every seeded avatar.
package avatar
