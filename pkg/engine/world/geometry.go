package world

import "math"

// Point is a position in maze space, with the root cell at the origin.
type Point struct {
	X float64
	Y float64
}

// Lerp interpolates between p and q; t=0 gives p and t=1 gives q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Bounds is the annular sector covered by a cell.
type Bounds struct {
	InnerRadius float64
	OuterRadius float64
	StartAngle  float64
	EndAngle    float64
}

// Angle returns the angle in radians of the middle of the cell. The root
// cell has angle 0.
func (g *Grid) Angle(c *Cell) float64 {
	if c == nil || c.IsRoot() {
		return 0
	}
	n := float64(len(g.rows[c.Ring]))
	return 2 * math.Pi * (float64(c.Col) + 0.5) / n
}

// Center returns the middle of the cell. The root cell sits at the origin.
func (g *Grid) Center(c *Cell) Point {
	if c == nil || c.IsRoot() {
		return Point{}
	}
	r := (float64(c.Ring) + 0.5) * g.ringHeight
	theta := g.Angle(c)
	return Point{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
}

// Bounds returns the sector a renderer should draw for the cell.
func (g *Grid) Bounds(c *Cell) Bounds {
	if c.IsRoot() {
		return Bounds{OuterRadius: g.ringHeight, EndAngle: 2 * math.Pi}
	}
	n := float64(len(g.rows[c.Ring]))
	step := 2 * math.Pi / n
	return Bounds{
		InnerRadius: float64(c.Ring) * g.ringHeight,
		OuterRadius: float64(c.Ring+1) * g.ringHeight,
		StartAngle:  float64(c.Col) * step,
		EndAngle:    float64(c.Col+1) * step,
	}
}
