package avatar

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"math"
	"slices"

	"github.com/google/uuid"

	"github.com/dmitrymomot/cutegen/pkg/rng"
)

// DataURIPrefix is prepended to the Base64 markup in FormatDataURI.
const DataURIPrefix = "data:image/svg+xml;base64,"

// traits holds every random choice of one avatar, in draw order.
type traits struct {
	gradientID  string
	background1 string
	background2 string
	face        string
	accent      string
	expression  Expression
	accessory   AccessoryKind
	gradient    bool
	variant     int
}

// Generate renders an avatar and returns it in the configured format.
// See the package documentation for the options and their defaults.
func Generate(opts ...Option) string {
	cfg := newConfig(opts...)
	svg := render(cfg.size, draw(cfg.stream(), cfg))
	if cfg.format == FormatDataURI {
		return DataURI(svg)
	}
	return svg
}

// GenerateDataURI renders an avatar as a data URI regardless of WithFormat.
//
// Usage:
//
//	<img src="{{ .AvatarURI }}" alt="avatar">
func GenerateDataURI(opts ...Option) string {
	return Generate(append(slices.Clip(opts), WithFormat(FormatDataURI))...)
}

// DataURI wraps SVG markup into a Base64 data URI.
func DataURI(svg string) string {
	return DataURIPrefix + base64.StdEncoding.EncodeToString([]byte(svg))
}

// stream returns a fresh stream for one generation. Unseeded configurations
// get a random UUID seed.
func (c *config) stream() *rng.Stream {
	if !c.seeded {
		return rng.New(uuid.NewString())
	}
	return rng.New(c.seed)
}

func draw(s *rng.Stream, cfg *config) traits {
	t := traits{
		expression: Smile,
		accessory:  NoAccessory,
	}

	t.gradientID = fmt.Sprintf("g%d", int64(math.Floor(s.Next()*1e9)))

	t.background1 = rng.Pick(s, cfg.palette)
	t.background2 = rng.Pick(s, cfg.palette)
	t.face = rng.Pick(s, cfg.palette)
	t.accent = rng.Pick(s, cfg.palette)

	if cfg.expressions {
		t.expression = rng.Pick(s, expressions)
	}
	if cfg.accessories {
		t.accessory = rng.Pick(s, accessoryKinds)
	}
	if cfg.background {
		t.gradient = s.Next() >= 0.5
	}
	if n := variantCount(t.accessory); n > 1 {
		t.variant = rng.Index(s, n)
	}

	return t
}

func render(size float64, t traits) string {
	c := canvas{size: size}
	var buf bytes.Buffer

	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s" role="img" aria-label="avatar">`+"\n",
		num(size), num(size), num(size), num(size))

	renderBackground(&buf, c, t)
	fmt.Fprintf(&buf, `<circle cx="%s" cy="%s" r="%s" fill="%s"/>`+"\n",
		num(c.mid()), num(c.mid()), num(c.at(0.36)), t.face)
	renderAccessory(&buf, c, t)
	renderEyes(&buf, c, t.expression)
	renderBlush(&buf, c)
	renderMouth(&buf, c, t.expression)

	buf.WriteString("<!-- soft border -->\n")
	fmt.Fprintf(&buf, `<rect x="0" y="0" width="%s" height="%s" rx="%s" fill="none" stroke="%s"/>`+"\n",
		num(size), num(size), num(c.at(0.12)), borderInk)
	buf.WriteString("</svg>")

	return buf.String()
}

func renderBackground(buf *bytes.Buffer, c canvas, t traits) {
	if !t.gradient {
		fmt.Fprintf(buf, `<rect width="%s" height="%s" fill="%s"/>`+"\n", num(c.size), num(c.size), t.background1)
		return
	}
	fmt.Fprintf(buf, `<defs><linearGradient id="%s" x1="0%%" y1="0%%" x2="100%%" y2="100%%">`, t.gradientID)
	fmt.Fprintf(buf, `<stop offset="0%%" stop-color="%s" stop-opacity="1"/>`, t.background1)
	fmt.Fprintf(buf, `<stop offset="100%%" stop-color="%s" stop-opacity="1"/>`, t.background2)
	buf.WriteString("</linearGradient></defs>\n")
	fmt.Fprintf(buf, `<rect width="%s" height="%s" fill="url(#%s)"/>`+"\n", num(c.size), num(c.size), t.gradientID)
}

// renderAccessory sits between the face and the eyes so hats, hair and
// glasses never cover the expression.
func renderAccessory(buf *bytes.Buffer, c canvas, t traits) {
	variants := accessories[t.accessory]
	if len(variants) == 0 {
		return
	}
	fmt.Fprintf(buf, `<g class="accessory" data-kind="%s">`, t.accessory)
	variants[t.variant](buf, c, t.accent)
	buf.WriteString("</g>\n")
}

func renderEyes(buf *bytes.Buffer, c canvas, e Expression) {
	offsetX, eyeY, r := c.at(0.2), c.at(0.3), c.at(0.07)
	left, right := c.mid()-offsetX, c.mid()+offsetX

	if e == Closed {
		w := num(c.stroke(0.03))
		for _, cx := range []float64{left, right} {
			fmt.Fprintf(buf, `<path d="M%s,%s Q %s, %s %s,%s" stroke="%s" stroke-width="%s" stroke-linecap="round" fill="none"/>`+"\n",
				num(cx-r), num(eyeY), num(cx), num(eyeY+r), num(cx+r), num(eyeY), eyeColor, w)
		}
		return
	}

	for _, cx := range []float64{left, right} {
		fmt.Fprintf(buf, `<circle cx="%s" cy="%s" r="%s" fill="%s"/>`+"\n", num(cx), num(eyeY), num(r), eyeColor)
	}
	if e == Surprised {
		fmt.Fprintf(buf, `<circle cx="%s" cy="%s" r="%s" fill="#fff" opacity="0.9"/>`+"\n",
			num(left+r*0.4), num(eyeY-r*0.4), num(c.stroke(0.01)))
	}
}

func renderBlush(buf *bytes.Buffer, c canvas) {
	rx := c.at(0.055)
	cy := c.mid() + c.at(0.06)
	for _, cx := range []float64{c.mid() - c.at(0.18), c.mid() + c.at(0.18)} {
		fmt.Fprintf(buf, `<ellipse cx="%s" cy="%s" rx="%s" ry="%s" fill="%s" opacity="0.45"/>`+"\n",
			num(cx), num(cy), num(rx), num(rx*0.6), blushColor)
	}
}

func renderMouth(buf *bytes.Buffer, c canvas, e Expression) {
	y := c.mid() + c.at(0.14)
	if e == Surprised {
		fmt.Fprintf(buf, `<circle cx="%s" cy="%s" r="%s" fill="%s"/>`+"\n", num(c.mid()), num(y), num(c.at(0.05)), mouthColor)
		return
	}
	fmt.Fprintf(buf, `<path d="M%s,%s Q %s, %s %s,%s" stroke="%s" stroke-width="%s" stroke-linecap="round" fill="none"/>`+"\n",
		num(c.mid()-c.at(0.15)), num(y),
		num(c.mid()), num(c.mid()+c.at(0.18)),
		num(c.mid()+c.at(0.15)), num(y),
		mouthColor, num(c.stroke(0.03)))
}
