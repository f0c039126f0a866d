package recycle

import "math"

// Vec2 is a 2D vector in the y-up frame described in the package docs.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Along returns the component on the scroll axis.
func (v Vec2) Along(horizontal bool) float64 {
	if horizontal {
		return v.X
	}
	return v.Y
}

// Across returns the component on the cross axis.
func (v Vec2) Across(horizontal bool) float64 {
	if horizontal {
		return v.Y
	}
	return v.X
}

type Padding struct {
	Left, Right, Top, Bottom float64
}

// Size returns the total padding on each axis.
func (p Padding) Size() Vec2 {
	return Vec2{X: p.Left + p.Right, Y: p.Top + p.Bottom}
}

// wrapSteps returns how many whole bands pos is away from the viewport
// centre. Vertical steps are negated: with y-up, content moving up the screen
// has a positive Y while its instances need to travel down.
func wrapSteps(pos Vec2, band float64, horizontal bool) int {
	if band <= 0 {
		return 0
	}
	if horizontal {
		return int(math.RoundToEven(math.Abs(pos.X)/band)) * sign(pos.X)
	}
	return -int(math.RoundToEven(math.Abs(pos.Y)/band)) * sign(pos.Y)
}

func sign(f float64) int {
	if f < 0 {
		return -1
	}
	return 1
}

// ceilDiv divides two non-negative integers rounding up.
func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
