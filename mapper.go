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

import "seehuhn.de/go/geom/matrix"

// PointerEvent is a pointer position as reported by the host.
//
// X and Y are relative to the top-left corner of the editing surface, in
// display units. DisplayWidth and DisplayHeight give the size at which the
// surface is currently shown on screen. The host reports the display size
// with every event, so that layout changes take effect immediately.
type PointerEvent struct {
	X, Y          float64
	DisplayWidth  float64
	DisplayHeight float64
}

// MapPoint converts a pointer position into image space.
// The scale factors are the ratio between the native image size and the
// on-screen size of the surface. An axis with non-positive display extent
// is not scaled.
func MapPoint(ev PointerEvent, native Dimensions) Point {
	m := displayToImage(ev, native)
	return Point{
		X: m[0]*ev.X + m[2]*ev.Y + m[4],
		Y: m[1]*ev.X + m[3]*ev.Y + m[5],
	}
}

func displayToImage(ev PointerEvent, native Dimensions) matrix.Matrix {
	return matrix.Scale(
		ratio(native.Width, ev.DisplayWidth),
		ratio(native.Height, ev.DisplayHeight))
}

func ratio(native int, display float64) float64 {
	if native <= 0 || !(display > 0) {
		return 1
	}
	return float64(native) / display
}
