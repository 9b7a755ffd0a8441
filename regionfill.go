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

import "image"

// regionFill burns every committed gesture, closed into a polygon, into a
// persistent mask. The gesture itself is not kept.
type regionFill struct {
	painter
	mask *image.Alpha
}

func (f *regionFill) commit(g Gesture) bool {
	if !g.Committable() || f.mask == nil {
		return false
	}
	f.fill(f.mask, g)
	return true
}

func (f *regionFill) render(dst *image.Alpha, _ Brush) {
	if f.mask == nil || f.mask.Rect != dst.Rect {
		clearAlpha(dst)
		return
	}
	copy(dst.Pix, f.mask.Pix)
}

func (f *regionFill) live(dst *image.Alpha, g Gesture, _ Brush) {
	f.fill(dst, g)
}

func (f *regionFill) opacity() uint8 {
	return 0x80
}

// isEmpty looks at the mask contents rather than at what was committed,
// so that a mask which was painted and then cleared counts as empty.
func (f *regionFill) isEmpty() bool {
	if f.mask == nil {
		return true
	}
	for _, v := range f.mask.Pix {
		if v != 0 {
			return false
		}
	}
	return true
}

func (f *regionFill) reset(dims Dimensions) {
	if !dims.Known() {
		f.mask = nil
		return
	}
	if f.mask != nil && f.mask.Rect == dims.Rect() {
		clearAlpha(f.mask)
		return
	}
	f.mask = image.NewAlpha(dims.Rect())
}
