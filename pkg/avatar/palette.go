package avatar

import "slices"

var defaultPalette = []string{
	"#FFD6E0",
	"#FFE6A3",
	"#A3E4FF",
	"#B8FFB0",
	"#F0C0FF",
	"#FFD9B3",
	"#DDE7FF",
}

// Fixed colours that are never drawn from the palette.
const (
	eyeColor   = "#222"
	mouthColor = "#222"
	blushColor = "#FFB6C1"
	hairColor  = "#422"
	lensColor  = "#000"
	borderInk  = "rgba(0,0,0,0.03)"
)

// DefaultPalette returns a copy of the built-in palette.
func DefaultPalette() []string {
	return slices.Clone(defaultPalette)
}
