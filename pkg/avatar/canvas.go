package avatar

import (
	"math"
	"strconv"
)

// canvas turns proportions into coordinates for one document size.
type canvas struct {
	size float64
}

// at returns k of the edge length.
func (c canvas) at(k float64) float64 { return c.size * k }

func (c canvas) mid() float64 { return c.size / 2 }

// stroke returns a stroke width of k of the edge length, never thinner than
// one unit.
func (c canvas) stroke(k float64) float64 { return math.Max(1, c.size*k) }

// num formats f in the shortest form that round-trips.
func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
