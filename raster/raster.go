// seehuhn.de/go/maskedit - an interactive region-mask editor
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package raster converts mask geometry into per-sample coverage.
//
// Paths are given in image space, with one unit per image sample and the
// y axis pointing down. Coverage is the fraction of a sample's area inside
// the painted shape, from 0 to 1, and is reported one row at a time
// through an [EmitFunc].
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of row y, starting at column xMin.
// The slice is only valid for the duration of the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a non-horizontal line segment in image space.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // inverse slope, used to find x at a given y
}

func (e *edge) top() float64    { return min(e.y0, e.y1) }
func (e *edge) bottom() float64 { return max(e.y0, e.y1) }

// Rasterizer turns paths into coverage values.
//
// One Rasterizer can be reused for any number of paths; its scratch
// buffers grow to the largest path seen and are then recycled.
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// Clip limits output to this rectangle. Coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in samples, between a curve or
	// arc and the polygon approximating it.
	Flatness float64

	// Width is the stroke width.
	Width float64

	// Cap is the shape used at the ends of open stroked subpaths.
	Cap graphics.LineCapStyle

	// Join is the shape used where two stroked segments meet.
	Join graphics.LineJoinStyle

	// MiterLimit bounds the length of miter joins, relative to Width.
	MiterLimit float64

	// smallPathThreshold selects the dense 2-D accumulation buffers for
	// paths whose bounding box has fewer samples than this.
	smallPathThreshold int

	cover       []float32
	area        []float32
	edges       []edge
	active      []int
	rowHasEdges []bool

	// bounding box of the collected edges
	bboxEmpty          bool
	bboxXMin, bboxXMax float64
	bboxYMin, bboxYMax float64

	// stroke construction
	polys         []vec.Vec2 // stroke polygons, stored back to back
	polyStart     []int
	segs          []segment
	subpathStart  []int
	subpathClosed []bool
	dots          []vec.Vec2 // subpaths without any extent
}

// NewRasterizer returns a Rasterizer for the given clip rectangle.
// Strokes default to one sample wide with butt caps and miter joins.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		Clip:       clip,
		Flatness:   defaultFlatness,
		Width:      1,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: defaultMiterLimit,

		smallPathThreshold: smallPathThreshold,
	}
}

// Reset changes the clip rectangle and keeps the scratch buffers.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.Clip = clip
}

// FillNonZero fills p using the nonzero winding rule.
func (r *Rasterizer) FillNonZero(p *path.Data, emit EmitFunc) {
	r.beginEdges()
	r.pathEdges(p)
	r.scan(fillNonZero, emit)
}

// FillEvenOdd fills p using the even-odd rule.
func (r *Rasterizer) FillEvenOdd(p *path.Data, emit EmitFunc) {
	r.beginEdges()
	r.pathEdges(p)
	r.scan(fillEvenOdd, emit)
}

type fillRule int

const (
	fillNonZero fillRule = iota
	fillEvenOdd
)

// pathEdges walks p and appends an edge for every straight piece of it.
// Every subpath is treated as closed.
func (r *Rasterizer) pathEdges(p *path.Data) {
	var current, start vec.Vec2
	open := false

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open && current != start {
				r.addEdge(current, start)
			}
			current = p.Coords[k]
			start = current
			open = true
			k++
		case path.CmdLineTo:
			r.addEdge(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1], r.addEdge)
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addEdge)
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
			open = false
		}
	}
	if open && current != start {
		r.addEdge(current, start)
	}
}

// flattenQuadratic approximates a quadratic Bézier curve by line segments.
func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(a, b vec.Vec2)) {
	// deviation from the chord is at most |p0 - 2p1 + p2| / 4
	dev := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25).Length()
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(min(math.Sqrt(dev/r.Flatness), maxCurveSegments)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, q)
		prev = q
	}
}

// flattenCubic approximates a cubic Bézier curve by line segments.
// The segment count follows Wang's formula.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(a, b vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2).Length()
	d2 := p1.Sub(p2.Mul(2)).Add(p3).Length()
	n := 1
	if m := max(d1, d2); m > 0 {
		if nf := math.Sqrt(3 * m / (4 * r.Flatness)); nf > 1 {
			n = int(math.Ceil(min(nf, maxCurveSegments)))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, q)
		prev = q
	}
}

// beginEdges discards the edges of the previous path.
func (r *Rasterizer) beginEdges() {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
}

// addEdge records the segment from a to b.
func (r *Rasterizer) addEdge(a, b vec.Vec2) {
	dy := b.Y - a.Y
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{
		x0: a.X, y0: a.Y,
		x1: b.X, y1: b.Y,
		dxdy: (b.X - a.X) / dy,
	})

	xLo, xHi := min(a.X, b.X), max(a.X, b.X)
	yLo, yHi := min(a.Y, b.Y), max(a.Y, b.Y)
	if r.bboxEmpty {
		r.bboxXMin, r.bboxXMax = xLo, xHi
		r.bboxYMin, r.bboxYMax = yLo, yHi
		r.bboxEmpty = false
		return
	}
	r.bboxXMin = min(r.bboxXMin, xLo)
	r.bboxXMax = max(r.bboxXMax, xHi)
	r.bboxYMin = min(r.bboxYMin, yLo)
	r.bboxYMax = max(r.bboxYMax, yHi)
}

// sampleBounds returns the integer bounding box of the collected edges,
// clipped to r.Clip. The box is half-open: [xMin, xMax) × [yMin, yMax).
func (r *Rasterizer) sampleBounds() (xMin, xMax, yMin, yMax int, ok bool) {
	if r.bboxEmpty {
		return 0, 0, 0, 0, false
	}
	c := r.Clip
	if r.bboxXMax < c.LLx || r.bboxXMin >= c.URx || r.bboxYMax < c.LLy || r.bboxYMin >= c.URy {
		return 0, 0, 0, 0, false
	}
	xMin = clampFloor(r.bboxXMin, c.LLx, c.URx)
	xMax = min(clampFloor(r.bboxXMax, c.LLx, c.URx)+1, int(c.URx))
	yMin = clampFloor(r.bboxYMin, c.LLy, c.URy)
	yMax = min(clampFloor(r.bboxYMax, c.LLy, c.URy)+1, int(c.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// clampFloor returns floor(v) after limiting v to [lo, hi], so that
// coordinates far outside the clip cannot overflow int.
func clampFloor(v, lo, hi float64) int {
	return int(math.Floor(max(lo, min(v, hi))))
}

// scan integrates the collected edges and emits the coverage.
func (r *Rasterizer) scan(rule fillRule, emit EmitFunc) {
	xMin, xMax, yMin, yMax, ok := r.sampleBounds()
	if !ok {
		return
	}
	if (xMax-xMin)*(yMax-yMin) < r.smallPathThreshold {
		r.scanDense(xMin, xMax, yMin, yMax, rule, emit)
	} else {
		r.scanActive(xMin, xMax, yMin, yMax, rule, emit)
	}
}

// Each sample column accumulates two quantities per row:
//
//	cover: the signed height of all edge pieces crossing the column
//	area:  the same, weighted by the fraction of the sample to the right
//	       of the crossing
//
// Walking a row from left to right, the coverage of sample i is the cover
// carried in from the columns to its left plus area[i]. Pieces left of
// the box go into column 0 and count as fully to the left.

// accumulate adds the part of e inside row y to cover and area, which are
// indexed relative to column x0 and have length x1-x0.
func accumulate(e *edge, y int, cover, area []float32, x0, x1 int) {
	yTop := max(float64(y), e.top())
	yBot := min(float64(y+1), e.bottom())
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xa := e.x0 + e.dxdy*(yTop-e.y0)
	xb := e.x0 + e.dxdy*(yBot-e.y0)
	// Columns are limited to [x0-1, x1]: everything left of the box
	// counts as column x0-1, everything right of it is dropped.
	left := clampFloor(min(xa, xb), float64(x0-1), float64(x1))
	right := clampFloor(max(xa, xb), float64(x0-1), float64(x1))

	switch {
	case right < x0:
		c := sign * float32(yBot-yTop)
		cover[0] += c
		area[0] += c
		return
	case left >= x1:
		return
	case left == right:
		deposit(e, yTop, yBot, sign, left, cover, area, x0, x1)
		return
	}

	dydx := 1 / e.dxdy
	if left < x0 {
		// the part of the piece left of the box, in one go
		yc := e.y0 + dydx*(float64(x0)-e.x0)
		lo, hi := yTop, min(yc, yBot)
		if xa > xb {
			lo, hi = max(yc, yTop), yBot
		}
		if hi > lo {
			deposit(e, lo, hi, sign, x0-1, cover, area, x0, x1)
		}
		left = x0
	}
	right = min(right, x1-1)

	// The piece crosses several columns: split it at column boundaries.
	for col := left; col <= right; col++ {
		ya := e.y0 + dydx*(float64(col)-e.x0)
		yb := e.y0 + dydx*(float64(col+1)-e.x0)
		lo := max(min(ya, yb), yTop)
		hi := min(max(ya, yb), yBot)
		if hi <= lo {
			continue
		}
		deposit(e, lo, hi, sign, col, cover, area, x0, x1)
	}
}

// deposit adds the piece of e between heights lo and hi, which lies in
// column col, to the accumulation buffers.
func deposit(e *edge, lo, hi float64, sign float32, col int, cover, area []float32, x0, x1 int) {
	c := sign * float32(hi-lo)
	if col < x0 {
		cover[0] += c
		area[0] += c
		return
	}
	if col >= x1 {
		return
	}
	xMid := e.x0 + e.dxdy*((lo+hi)/2-e.y0)
	frac := xMid - float64(col)
	i := col - x0
	cover[i] += c
	area[i] += c * float32(1-frac)
}

// resolveNonZero turns accumulated cover/area into coverage, in place,
// using the nonzero winding rule.
func resolveNonZero(cover, area []float32) {
	var carry float32
	for i := range cover {
		v := carry + area[i]
		carry += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// resolveEvenOdd turns accumulated cover/area into coverage, in place,
// using the even-odd rule.
func resolveEvenOdd(cover, area []float32) {
	var carry float32
	for i := range cover {
		v := carry + area[i]
		carry += cover[i]
		if v < 0 {
			v = -v
		}
		v -= 2 * float32(int(v/2))
		if v > 1 {
			v = 2 - v
		}
		cover[i] = v
	}
}

func resolve(rule fillRule, cover, area []float32) {
	if rule == fillEvenOdd {
		resolveEvenOdd(cover, area)
	} else {
		resolveNonZero(cover, area)
	}
}

// nonZeroSpan returns the sub-slice between the first and the last
// non-zero entry, together with its offset. It returns nil if every entry
// is zero.
func nonZeroSpan(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

// scanDense accumulates all rows at once into width×height buffers.
func (r *Rasterizer) scanDense(xMin, xMax, yMin, yMax int, rule fillRule, emit EmitFunc) {
	w := xMax - xMin
	h := yMax - yMin

	n := w * h
	r.cover = slices.Grow(r.cover[:0], n)[:n]
	r.area = slices.Grow(r.area[:0], n)[:n]
	clear(r.cover)
	clear(r.area)
	r.rowHasEdges = slices.Grow(r.rowHasEdges[:0], h)[:h]
	clear(r.rowHasEdges)

	for i := range r.edges {
		e := &r.edges[i]
		top := clampFloor(e.top(), float64(yMin), float64(yMax))
		bot := min(clampFloor(e.bottom(), float64(yMin), float64(yMax))+1, yMax)
		for y := top; y < bot; y++ {
			row := y - yMin
			off := row * w
			accumulate(e, y, r.cover[off:off+w], r.area[off:off+w], xMin, xMax)
			r.rowHasEdges[row] = true
		}
	}

	for row := range h {
		if !r.rowHasEdges[row] {
			continue
		}
		off := row * w
		cov := r.cover[off : off+w]
		resolve(rule, cov, r.area[off:off+w])
		if span, dx := nonZeroSpan(cov); span != nil {
			emit(yMin+row, xMin+dx, span)
		}
	}
}

// scanActive processes one row at a time, keeping a list of the edges
// which intersect the current row.
func (r *Rasterizer) scanActive(xMin, xMax, yMin, yMax int, rule fillRule, emit EmitFunc) {
	w := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], w)[:w]
	r.area = slices.Grow(r.area[:0], w)[:w]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.top(), b.top())
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		rowTop := float64(y)
		rowBot := float64(y + 1)

		for next < len(r.edges) && r.edges[next].top() < rowBot {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.bottom() <= rowTop {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			accumulate(e, y, r.cover, r.area, xMin, xMax)
			touched = true
			i++
		}
		if !touched {
			continue
		}

		resolve(rule, r.cover, r.area)
		if span, dx := nonZeroSpan(r.cover); span != nil {
			emit(y, xMin+dx, span)
		}
	}
}

// Default parameter values.
const (
	// defaultFlatness is the curve tolerance in samples; 0.25 is below
	// what is visible on screen.
	defaultFlatness = 0.25

	// defaultMiterLimit matches the PDF default, turning joins sharper
	// than about 11.5 degrees into bevels.
	defaultMiterLimit = 10.0
)

// Numerical tolerances.
const (
	horizontalEdgeThreshold = 1e-10
	zeroLengthThreshold     = 1e-10
	collinearityThreshold   = 1e-6

	// cuspCosineThreshold detects segments which double back on
	// themselves. cos(179.43°) ≈ -0.9999
	cuspCosineThreshold = -0.9999

	smallPathThreshold = 65536

	// maxCurveSegments bounds the work for curves far outside the clip.
	maxCurveSegments = 4096
)
