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
	"image"

	"seehuhn.de/go/geom/rect"
)

// Threshold is the coverage from which on a sample counts as painted
// in a binary mask.
const Threshold = 0.5

// Binary returns an EmitFunc which sets every sample of dst with coverage
// at least [Threshold] to 0xFF. Other samples keep their value, so
// repeated calls accumulate the union of all painted shapes.
//
// Rows and columns are image coordinates; the Rasterizer clip should not
// exceed dst.Bounds().
func Binary(dst *image.Alpha) EmitFunc {
	return func(y, xMin int, coverage []float32) {
		row := dst.Pix[dst.PixOffset(xMin, y):]
		for i, c := range coverage {
			if c >= Threshold {
				row[i] = 0xFF
			}
		}
	}
}

// Coverage returns an EmitFunc which raises every sample of dst to the
// anti-aliased coverage value, keeping the larger of the old and the new
// value.
func Coverage(dst *image.Alpha) EmitFunc {
	return func(y, xMin int, coverage []float32) {
		row := dst.Pix[dst.PixOffset(xMin, y):]
		for i, c := range coverage {
			v := uint8(max(0, min(255, int(c*255+0.5))))
			row[i] = max(row[i], v)
		}
	}
}

// ClipFor returns the clip rectangle covering all of img.
func ClipFor(img *image.Alpha) rect.Rect {
	b := img.Bounds()
	return rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	}
}
