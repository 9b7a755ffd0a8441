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

type captureState int

const (
	stateIdle captureState = iota
	stateActive
)

// capture records the points of the gesture in progress.
// Whether a press is allowed is decided by the caller.
type capture struct {
	state  captureState
	points Gesture
}

// begin starts a new gesture at p.
func (c *capture) begin(p Point) {
	c.state = stateActive
	c.points = append(c.points[:0], p)
}

// add appends p to the gesture in progress.
// Points received while idle are ignored.
func (c *capture) add(p Point) {
	if c.state != stateActive {
		return
	}
	c.points = append(c.points, p)
}

// end returns to the idle state and returns a copy of the recorded points.
// The result is nil if no gesture was in progress.
func (c *capture) end() Gesture {
	if c.state != stateActive {
		return nil
	}
	g := make(Gesture, len(c.points))
	copy(g, c.points)
	c.reset()
	return g
}

// reset discards the gesture in progress.
func (c *capture) reset() {
	c.state = stateIdle
	c.points = c.points[:0]
}

// live returns the gesture in progress without copying it.
// The result is only valid until the next call to a capture method.
func (c *capture) live() Gesture {
	if c.state != stateActive {
		return nil
	}
	return c.points
}
