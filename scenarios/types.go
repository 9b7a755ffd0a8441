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

// Package scenarios contains scripted mask editing sessions.
//
// Every scenario describes an image size, a mask policy and a sequence of
// steps, together with samples whose final state is known. The scenarios
// drive the editor tests and the maskref command, which writes reference
// masks and vector PDF renderings of each scenario.
package scenarios

import (
	"image"

	"seehuhn.de/go/geom/vec"
)

// Scenario is a scripted editing session.
type Scenario struct {
	Name   string // lowercase a-z, 0-9 and _ only
	Width  int    // native image width in samples
	Height int    // native image height in samples
	Policy string // "swath" or "region-fill"
	Brush  float64

	// DisplayScale is the ratio between the on-screen size of the editing
	// surface and the native image size. Zero means 1.
	DisplayScale float64

	Steps  []Step
	Expect Expect
}

// Step is one action in a scenario. BrushWidth is applied first, then
// Clear, then the gesture.
type Step struct {
	// BrushWidth changes the brush width, if positive.
	BrushWidth float64

	// Clear discards the mask.
	Clear bool

	// Gesture lists image-space pointer positions. The first point is the
	// press, the remaining points are moves, and the pointer is released
	// after the last point.
	Gesture []vec.Vec2
}

// Expect describes the exported mask at the end of a scenario.
type Expect struct {
	Empty      bool          // no mask is exported
	Painted    []image.Point // samples which must be selected
	Background []image.Point // samples which must not be selected
}

// Scale returns the display scale, with the zero value mapped to 1.
func (s *Scenario) Scale() float64 {
	if s.DisplayScale <= 0 {
		return 1
	}
	return s.DisplayScale
}

// Gestures returns the gestures of all steps after the last clear.
func (s *Scenario) Gestures() [][]vec.Vec2 {
	var res [][]vec.Vec2
	for _, step := range s.Steps {
		if step.Clear {
			res = res[:0]
		}
		if len(step.Gesture) > 0 {
			res = append(res, step.Gesture)
		}
	}
	return res
}

// FinalBrush returns the brush width in effect at the end of the scenario.
func (s *Scenario) FinalBrush() float64 {
	w := s.Brush
	for _, step := range s.Steps {
		if step.BrushWidth > 0 {
			w = step.BrushWidth
		}
	}
	return w
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// line builds a gesture from x, y coordinate pairs.
func line(xy ...float64) []vec.Vec2 {
	pts := make([]vec.Vec2, len(xy)/2)
	for i := range pts {
		pts[i] = pt(xy[2*i], xy[2*i+1])
	}
	return pts
}

// samples builds a list of sample positions from x, y pairs.
func samples(xy ...int) []image.Point {
	res := make([]image.Point, len(xy)/2)
	for i := range res {
		res[i] = image.Pt(xy[2*i], xy[2*i+1])
	}
	return res
}
