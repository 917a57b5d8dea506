package avatar

import (
	"bytes"
	"fmt"
)

// layout writes one accessory variant. accent is the palette-drawn accent
// colour; variants with a fixed colour ignore it.
type layout func(buf *bytes.Buffer, c canvas, accent string)

// accessories maps each kind to its ordered variants. A variant draw happens
// only for kinds with more than one layout, so None and Bow consume nothing.
var accessories = map[AccessoryKind][]layout{
	NoAccessory: nil,
	Hat:         {capHat, beanie, wideBrimHat},
	Glasses:     {roundGlasses, rectGlasses, monobrowGlasses},
	Hair:        {shortFringe, longSideHair, topBun},
	Bow:         {bow},
}

func variantCount(k AccessoryKind) int {
	return len(accessories[k])
}

func hatFrame(c canvas) (x, w, baseY float64) {
	w = c.size * 0.9
	x = (c.size - w) / 2
	baseY = c.at(0.22)
	return x, w, baseY
}

func capHat(buf *bytes.Buffer, c canvas, accent string) {
	x, w, baseY := hatFrame(c)
	fmt.Fprintf(buf, `<g><rect x="%s" y="%s" width="%s" height="%s" rx="%s" fill="%s"/>`,
		num(x), num(baseY-c.at(0.06)), num(w), num(c.at(0.12)), num(c.at(0.03)), accent)
	fmt.Fprintf(buf, `<ellipse cx="%s" cy="%s" rx="%s" ry="%s" fill="%s" opacity="0.95"/></g>`,
		num(c.mid()), num(baseY+c.at(0.02)), num(w*0.55), num(c.at(0.06)), accent)
}

func beanie(buf *bytes.Buffer, c canvas, accent string) {
	x, w, baseY := hatFrame(c)
	fmt.Fprintf(buf, `<g><path d="M%s %s Q %s %s %s %s Z" fill="%s"/>`,
		num(x), num(baseY), num(c.mid()), num(baseY-c.at(0.2)), num(x+w), num(baseY), accent)
	fmt.Fprintf(buf, `<rect x="%s" y="%s" width="%s" height="%s" rx="%s" fill="%s"/></g>`,
		num(x+w*0.12), num(baseY), num(w*0.76), num(c.at(0.06)), num(c.at(0.03)), accent)
}

func wideBrimHat(buf *bytes.Buffer, c canvas, accent string) {
	_, w, baseY := hatFrame(c)
	fmt.Fprintf(buf, `<g><ellipse cx="%s" cy="%s" rx="%s" ry="%s" fill="%s"/>`,
		num(c.mid()), num(baseY-c.at(0.05)), num(w*0.6), num(c.at(0.06)), accent)
	fmt.Fprintf(buf, `<rect x="%s" y="%s" width="%s" height="%s" rx="%s" fill="%s"/></g>`,
		num(c.at(0.18)), num(baseY-c.at(0.07)), num(w*0.64), num(c.at(0.08)), num(c.at(0.02)), accent)
}

func shortFringe(buf *bytes.Buffer, c canvas, _ string) {
	top := c.at(0.18)
	fmt.Fprintf(buf, `<path d="M%s,%s Q%s,%s %s,%s Q%s,%s %s,%s Q%s,%s %s,%s Z" fill="%s"/>`,
		num(c.at(0.12)), num(top),
		num(c.at(0.25)), num(top-c.at(0.05)), num(c.at(0.4)), num(top),
		num(c.at(0.5)), num(top-c.at(0.06)), num(c.at(0.6)), num(top),
		num(c.at(0.75)), num(top-c.at(0.05)), num(c.at(0.88)), num(top),
		hairColor)
}

func longSideHair(buf *bytes.Buffer, c canvas, _ string) {
	fmt.Fprintf(buf, `<path d="M%s,%s Q%s,%s %s,%s Q%s,%s %s,%s Q%s,%s %s,%s L%s,%s Q%s,%s %s,%s" fill="%s"/>`,
		num(c.at(0.08)), num(c.at(0.28)),
		num(c.at(0.18)), num(c.at(0.45)), num(c.at(0.12)), num(c.at(0.7)),
		num(c.at(0.18)), num(c.at(0.68)), num(c.at(0.2)), num(c.at(0.6)),
		num(c.at(0.26)), num(c.at(0.48)), num(c.at(0.3)), num(c.at(0.7)),
		num(c.at(0.38)), num(c.at(0.72)),
		num(c.at(0.28)), num(c.at(0.5)), num(c.at(0.14)), num(c.at(0.34)),
		hairColor)
}

func topBun(buf *bytes.Buffer, c canvas, _ string) {
	fmt.Fprintf(buf, `<g><ellipse cx="%s" cy="%s" rx="%s" ry="%s" fill="%s"/>`,
		num(c.at(0.74)), num(c.at(0.18)), num(c.at(0.08)), num(c.at(0.06)), hairColor)
	fmt.Fprintf(buf, `<path d="M%s,%s Q%s,%s %s,%s L%s,%s Q%s,%s %s,%s Z" fill="%s"/></g>`,
		num(c.at(0.12)), num(c.at(0.28)),
		num(c.mid()), num(c.at(0.05)), num(c.at(0.88)), num(c.at(0.28)),
		num(c.at(0.88)), num(c.at(0.36)),
		num(c.mid()), num(c.at(0.15)), num(c.at(0.12)), num(c.at(0.36)),
		hairColor)
}

// glassesFrame returns the lens centre offset, the lens row and the lens radius.
func glassesFrame(c canvas) (offsetX, eyeY, r float64) {
	return c.at(0.2), c.at(0.3), c.at(0.08)
}

func openGlasses(buf *bytes.Buffer, c canvas, strokeRatio float64) {
	fmt.Fprintf(buf, `<g stroke="%s" stroke-width="%s" fill="transparent">`, lensColor, num(c.stroke(strokeRatio)))
}

func bridge(buf *bytes.Buffer, c canvas) {
	offsetX, eyeY, r := glassesFrame(c)
	fmt.Fprintf(buf, `<line x1="%s" y1="%s" x2="%s" y2="%s"/>`,
		num(c.mid()-offsetX+r), num(eyeY), num(c.mid()+offsetX-r), num(eyeY))
}

func roundGlasses(buf *bytes.Buffer, c canvas, _ string) {
	offsetX, eyeY, r := glassesFrame(c)
	openGlasses(buf, c, 0.03)
	for _, cx := range []float64{c.mid() - offsetX, c.mid() + offsetX} {
		fmt.Fprintf(buf, `<circle cx="%s" cy="%s" r="%s"/>`, num(cx), num(eyeY), num(r))
	}
	bridge(buf, c)
	buf.WriteString(`</g>`)
}

func rectGlasses(buf *bytes.Buffer, c canvas, _ string) {
	offsetX, eyeY, r := glassesFrame(c)
	openGlasses(buf, c, 0.028)
	for _, cx := range []float64{c.mid() - offsetX, c.mid() + offsetX} {
		fmt.Fprintf(buf, `<rect x="%s" y="%s" width="%s" height="%s" rx="%s"/>`,
			num(cx-r), num(eyeY-r), num(r*2), num(r*1.4), num(r*0.3))
	}
	bridge(buf, c)
	buf.WriteString(`</g>`)
}

func monobrowGlasses(buf *bytes.Buffer, c canvas, _ string) {
	_, eyeY, r := glassesFrame(c)
	openGlasses(buf, c, 0.02)
	fmt.Fprintf(buf, `<rect x="%s" y="%s" width="%s" height="%s" rx="%s"/>`,
		num(c.at(0.18)), num(eyeY-r), num(c.at(0.64)), num(r*1.4), num(r*0.4))
	buf.WriteString(`</g>`)
}

// bow sits on the top-left of the head.
func bow(buf *bytes.Buffer, c canvas, accent string) {
	fmt.Fprintf(buf, `<g transform="translate(%s,%s)">`, num(c.at(0.18)), num(c.at(0.18)))
	for _, cx := range []float64{c.at(0.02), c.at(0.06)} {
		fmt.Fprintf(buf, `<ellipse cx="%s" cy="%s" rx="%s" ry="%s" fill="%s"/>`,
			num(cx), num(c.at(0.02)), num(c.at(0.04)), num(c.at(0.025)), accent)
	}
	fmt.Fprintf(buf, `<circle cx="%s" cy="%s" r="%s" fill="#fff" opacity="0.6"/></g>`,
		num(c.at(0.04)), num(c.at(0.02)), num(c.at(0.012)))
}
