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

package maskedit

import (
	"image"
	"image/color"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Point is a position in image space, measured in image samples from the
// top-left corner of the image.
type Point struct {
	X, Y float64
}

func (p Point) vec() vec.Vec2 {
	return vec.Vec2{X: p.X, Y: p.Y}
}

// Dimensions gives the native size of an image in samples.
type Dimensions struct {
	Width, Height int
}

// Known reports whether both extents are positive.
func (d Dimensions) Known() bool {
	return d.Width > 0 && d.Height > 0
}

// Rect returns the image rectangle with origin (0,0).
// Unknown dimensions give the empty rectangle.
func (d Dimensions) Rect() image.Rectangle {
	if !d.Known() {
		return image.Rectangle{}
	}
	return image.Rect(0, 0, d.Width, d.Height)
}

// Gesture is the sequence of points recorded during one press, move and
// release interaction, in the order they were received.
type Gesture []Point

// Committable reports whether g has enough points to describe a line.
func (g Gesture) Committable() bool {
	return len(g) >= 2
}

// polyline returns g as an open path.
func (g Gesture) polyline() *path.Data {
	p := &path.Data{}
	if len(g) == 0 {
		return p
	}
	p = p.MoveTo(g[0].vec())
	for _, q := range g[1:] {
		p = p.LineTo(q.vec())
	}
	return p
}

// polygon returns g as a closed path; the last point connects back to
// the first.
func (g Gesture) polygon() *path.Data {
	p := g.polyline()
	if len(g) == 0 {
		return p
	}
	return p.Close()
}

// Brush holds the painting parameters shared by all gestures of an editor.
// Gestures do not store a copy, so changes apply to all of them.
type Brush struct {
	Color color.NRGBA
	Width float64
}
