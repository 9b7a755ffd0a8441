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

// swath keeps the list of committed gestures. The mask is recomputed from
// this list on every call to render.
type swath struct {
	painter
	history []Gesture
}

func (s *swath) commit(g Gesture) bool {
	if !g.Committable() {
		return false
	}
	s.history = append(s.history, g)
	return true
}

func (s *swath) render(dst *image.Alpha, b Brush) {
	clearAlpha(dst)
	for _, g := range s.history {
		s.stroke(dst, g, b.Width)
	}
}

func (s *swath) live(dst *image.Alpha, g Gesture, b Brush) {
	s.stroke(dst, g, b.Width)
}

func (s *swath) opacity() uint8 {
	return 0xFF
}

func (s *swath) isEmpty() bool {
	return len(s.history) == 0
}

func (s *swath) reset(Dimensions) {
	s.history = nil
}
