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

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// PlaceholderText is shown on the composite while the image dimensions
// are known but no decoded image is available.
const PlaceholderText = "Upload an image to start"

var (
	placeholderBackground = color.Gray{Y: 0xF0}
	placeholderForeground = color.Gray{Y: 0xAA}
)

// composite renders the visible surface at the native image resolution.
// The caller must hold e.mu.
func (e *Editor) composite() *image.RGBA {
	dst := image.NewRGBA(e.dims.Rect())
	if !e.dims.Known() {
		return dst
	}

	if e.img == nil {
		drawPlaceholder(dst)
	} else {
		drawBase(dst, e.img)
	}

	mask := e.scratchMask()
	e.policy.render(mask, e.brush)
	drawOverlay(dst, mask, e.brush.Color, e.policy.opacity())

	if g := e.capture.live(); g.Committable() {
		clearAlpha(mask)
		e.policy.live(mask, g, e.brush)
		drawOverlay(dst, mask, e.brush.Color, 0xFF)
	}
	return dst
}

// scratchMask returns a mask buffer with the current image dimensions.
// The contents are undefined.
func (e *Editor) scratchMask() *image.Alpha {
	r := e.dims.Rect()
	if e.scratch == nil || e.scratch.Rect != r {
		e.scratch = image.NewAlpha(r)
	}
	return e.scratch
}

// drawBase draws img scaled to fill all of dst.
func drawBase(dst *image.RGBA, img image.Image) {
	sr := img.Bounds()
	if sr.Size() == dst.Rect.Size() {
		draw.Draw(dst, dst.Rect, img, sr.Min, draw.Src)
		return
	}
	draw.ApproxBiLinear.Scale(dst, dst.Rect, img, sr, draw.Src, nil)
}

// drawPlaceholder fills dst with a light grey and centres the prompt
// text on it.
func drawPlaceholder(dst *image.RGBA) {
	draw.Draw(dst, dst.Rect, image.NewUniform(placeholderBackground), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(placeholderForeground),
		Face: face,
	}
	w := d.MeasureString(PlaceholderText).Ceil()
	m := face.Metrics()
	h := (m.Ascent + m.Descent).Ceil()
	x := dst.Rect.Min.X + (dst.Rect.Dx()-w)/2
	y := dst.Rect.Min.Y + (dst.Rect.Dy()-h)/2 + m.Ascent.Ceil()
	d.Dot = fixed.P(x, y)
	d.DrawString(PlaceholderText)
}

// drawOverlay paints col through mask onto dst. The alpha of col is
// further reduced by opacity/0xFF.
func drawOverlay(dst *image.RGBA, mask *image.Alpha, col color.NRGBA, opacity uint8) {
	col.A = uint8((uint32(col.A)*uint32(opacity) + 0x7F) / 0xFF)
	if col.A == 0 {
		return
	}
	draw.DrawMask(dst, dst.Rect, image.NewUniform(col), image.Point{}, mask, mask.Rect.Min, draw.Over)
}
