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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// segment is a straight, non-degenerate piece of a flattened path.
type segment struct {
	A, B vec.Vec2
	T    vec.Vec2 // unit tangent from A to B
	N    vec.Vec2 // T rotated by 90 degrees
}

// Stroke paints the area swept by a pen of diameter Width moving along p,
// using Cap, Join and MiterLimit.
//
// The stroke is built as a set of positively oriented polygons: one
// rectangle per segment plus the cap and join pieces. Filling all of them
// together with the nonzero rule paints their union, so overlapping
// pieces and self-intersecting paths are painted once.
func (r *Rasterizer) Stroke(p *path.Data, emit EmitFunc) {
	r.flatten(p)
	if len(r.subpathStart) == 0 && len(r.dots) == 0 {
		return
	}

	r.polys = r.polys[:0]
	r.polyStart = r.polyStart[:0]
	d := r.Width / 2

	// Subpaths of zero length have no direction; only round caps give
	// them a shape.
	if r.Cap == graphics.LineCapRound {
		for _, c := range r.dots {
			r.disc(c, d)
		}
	}

	for i := range r.subpathStart {
		segs := r.subpath(i)
		for j := range segs {
			r.body(&segs[j], d)
		}
		for j := 1; j < len(segs); j++ {
			r.join(segs[j].A, segs[j-1].T, segs[j].T, d)
		}
		last := &segs[len(segs)-1]
		if r.subpathClosed[i] {
			r.join(segs[0].A, last.T, segs[0].T, d)
		} else {
			r.cap(segs[0].A, segs[0].T.Mul(-1), d)
			r.cap(last.B, last.T, d)
		}
	}

	r.beginEdges()
	for i, start := range r.polyStart {
		end := len(r.polys)
		if i+1 < len(r.polyStart) {
			end = r.polyStart[i+1]
		}
		poly := r.polys[start:end]
		for j := 1; j < len(poly); j++ {
			r.addEdge(poly[j-1], poly[j])
		}
		r.addEdge(poly[len(poly)-1], poly[0])
	}
	r.scan(fillNonZero, emit)
}

// flatten splits p into subpaths of straight segments.
// Results go to r.segs, r.subpathStart, r.subpathClosed and r.dots.
func (r *Rasterizer) flatten(p *path.Data) {
	r.segs = r.segs[:0]
	r.subpathStart = r.subpathStart[:0]
	r.subpathClosed = r.subpathClosed[:0]
	r.dots = r.dots[:0]

	var current, start vec.Vec2
	first := 0     // index in r.segs where the current subpath starts
	open := false  // inside a subpath
	drawn := false // the subpath has seen a drawing command

	finish := func(closed bool) {
		switch {
		case len(r.segs) > first:
			r.subpathStart = append(r.subpathStart, first)
			r.subpathClosed = append(r.subpathClosed, closed)
		case drawn || closed:
			r.dots = append(r.dots, start)
		}
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				finish(false)
			}
			current = p.Coords[k]
			start = current
			first = len(r.segs)
			open = true
			drawn = false
			k++

		case path.CmdLineTo:
			if open {
				drawn = true
				r.addSegment(current, p.Coords[k])
				current = p.Coords[k]
			}
			k++

		case path.CmdQuadTo:
			if open {
				drawn = true
				r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1], r.addSegment)
				current = p.Coords[k+1]
			}
			k += 2

		case path.CmdCubeTo:
			if open {
				drawn = true
				r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addSegment)
				current = p.Coords[k+2]
			}
			k += 3

		case path.CmdClose:
			if open {
				if current != start {
					r.addSegment(current, start)
				}
				finish(true)
				current = start
				first = len(r.segs)
				open = false
				drawn = false
			}
		}
	}
	if open {
		finish(false)
	}
}

// subpath returns the segments of subpath i.
func (r *Rasterizer) subpath(i int) []segment {
	end := len(r.segs)
	if i+1 < len(r.subpathStart) {
		end = r.subpathStart[i+1]
	}
	return r.segs[r.subpathStart[i]:end]
}

// addSegment appends the segment from a to b, unless it is too short to
// have a direction.
func (r *Rasterizer) addSegment(a, b vec.Vec2) {
	v := b.Sub(a)
	l := v.Length()
	if l < zeroLengthThreshold {
		return
	}
	t := v.Mul(1 / l)
	r.segs = append(r.segs, segment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}})
}

// body adds the rectangle swept by the pen along s.
func (r *Rasterizer) body(s *segment, d float64) {
	n := s.N.Mul(d)
	r.polygon(s.A.Sub(n), s.B.Sub(n), s.B.Add(n), s.A.Add(n))
}

// cap adds the end piece at p, where t points away from the stroke.
func (r *Rasterizer) cap(p, t vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.disc(p, d)
	case graphics.LineCapSquare:
		n := vec.Vec2{X: -t.Y, Y: t.X}.Mul(d)
		ext := p.Add(t.Mul(d))
		r.polygon(p.Sub(n), ext.Sub(n), ext.Add(n), p.Add(n))
	}
}

// join adds the corner piece at p, where the direction changes from t1
// to t2.
func (r *Rasterizer) join(p, t1, t2 vec.Vec2, d float64) {
	cos := t1.Dot(t2)
	sin := t1.X*t2.Y - t1.Y*t2.X
	if math.Abs(sin) < collinearityThreshold && cos > 0 {
		return
	}

	if r.Join == graphics.LineJoinRound {
		r.disc(p, d)
		return
	}

	if cos < cuspCosineThreshold {
		// the path doubles back: use caps on both sides
		r.cap(p, t1, d)
		r.cap(p, t2.Mul(-1), d)
		return
	}

	// the outer side of the corner is opposite to the turn direction
	side := 1.0
	if sin > 0 {
		side = -1
	}
	n1 := vec.Vec2{X: -t1.Y, Y: t1.X}.Mul(side * d)
	n2 := vec.Vec2{X: -t2.Y, Y: t2.X}.Mul(side * d)
	a := p.Add(n1)
	b := p.Add(n2)

	if r.Join == graphics.LineJoinMiter {
		// The miter length relative to the line width is 1/sin(φ/2),
		// where φ is the angle between the two stroke edges.
		sinHalf := math.Sqrt((1 + cos) / 2)
		const miterEpsilon = 1e-10
		if sinHalf > 0 && 1/sinHalf <= r.MiterLimit+miterEpsilon {
			bis := n1.Add(n2)
			if l := bis.Length(); l > zeroLengthThreshold {
				tip := p.Add(bis.Mul(d / (sinHalf * l)))
				r.polygon(p, a, tip, b)
				return
			}
		}
	}
	r.polygon(p, a, b)
}

// disc adds a polygon approximating the circle of radius d around c.
func (r *Rasterizer) disc(c vec.Vec2, d float64) {
	if d <= 0 {
		return
	}

	// A chord spanning angle θ deviates from the circle by d(1-cos(θ/2)).
	n := 4
	if d > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/d)
		if step > 0 && !math.IsNaN(step) {
			n = max(n, int(math.Ceil(2*math.Pi/step)))
		}
	}

	start := len(r.polys)
	for i := range n {
		phi := 2 * math.Pi * float64(i) / float64(n)
		r.polys = append(r.polys, vec.Vec2{
			X: c.X + d*math.Cos(phi),
			Y: c.Y + d*math.Sin(phi),
		})
	}
	r.polyStart = append(r.polyStart, start)
}

// polygon adds a closed polygon, reversing it if needed so that all
// stroke pieces wind the same way.
func (r *Rasterizer) polygon(pts ...vec.Vec2) {
	var area float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		area += p.X*q.Y - q.X*p.Y
	}
	if math.Abs(area) < zeroLengthThreshold {
		return
	}

	start := len(r.polys)
	if area > 0 {
		r.polys = append(r.polys, pts...)
	} else {
		for i := len(pts) - 1; i >= 0; i-- {
			r.polys = append(r.polys, pts[i])
		}
	}
	r.polyStart = append(r.polyStart, start)
}
