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
	"fmt"
	"image"

	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/maskedit/raster"
)

// Policy selects how committed gestures turn into mask samples.
type Policy int

const (
	// Swath paints every gesture as a wide line with round caps and
	// joins. The whole gesture history is replayed at the current brush
	// width whenever the mask is needed.
	Swath Policy = iota

	// RegionFill closes every gesture into a polygon and fills its
	// interior into a persistent mask.
	RegionFill
)

func (p Policy) String() string {
	switch p {
	case Swath:
		return "swath"
	case RegionFill:
		return "region-fill"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

func (p Policy) valid() bool {
	return p == Swath || p == RegionFill
}

// ParsePolicy converts "swath" or "region-fill" into a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "swath":
		return Swath, nil
	case "region-fill", "lasso":
		return RegionFill, nil
	}
	return 0, fmt.Errorf("%w: unknown policy %q", ErrInvalidConfig, s)
}

// MarshalText implements [encoding.TextMarshaler].
func (p Policy) MarshalText() ([]byte, error) {
	if !p.valid() {
		return nil, fmt.Errorf("%w: unknown policy %d", ErrInvalidConfig, int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (p *Policy) UnmarshalText(text []byte) error {
	q, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = q
	return nil
}

// maskPolicy holds the persisted mask state of an editor.
//
// Brush parameters are passed in on every call and never stored, so that
// changes to the brush apply to earlier gestures as well.
type maskPolicy interface {
	// commit adds a gesture with at least two points to the persisted
	// state. The return value reports whether the state changed.
	commit(g Gesture) bool

	// render writes the persisted mask into dst, replacing its contents.
	// The bounds of dst equal the current image dimensions.
	render(dst *image.Alpha, b Brush)

	// live paints the gesture in progress into dst, without changing the
	// persisted state.
	live(dst *image.Alpha, g Gesture, b Brush)

	// opacity gives the strength, out of 0xFF, with which the persisted
	// mask is shown on the composite.
	opacity() uint8

	// isEmpty reports whether the mask would have no selected samples.
	isEmpty() bool

	// reset discards all persisted state and sizes the mask for dims.
	reset(dims Dimensions)
}

func newPolicy(p Policy, dims Dimensions) maskPolicy {
	var mp maskPolicy
	switch p {
	case RegionFill:
		mp = &regionFill{}
	default:
		mp = &swath{}
	}
	mp.reset(dims)
	return mp
}

// painter turns gestures into binary mask samples.
type painter struct {
	r *raster.Rasterizer
}

func (p *painter) rasterizer(dst *image.Alpha) *raster.Rasterizer {
	clip := raster.ClipFor(dst)
	if p.r == nil {
		p.r = raster.NewRasterizer(clip)
		p.r.Cap = graphics.LineCapRound
		p.r.Join = graphics.LineJoinRound
	} else {
		p.r.Reset(clip)
	}
	return p.r
}

// stroke paints g as a round-capped, round-joined line of the given width.
func (p *painter) stroke(dst *image.Alpha, g Gesture, width float64) {
	if len(g) == 0 || width <= 0 || empty(dst) {
		return
	}
	r := p.rasterizer(dst)
	r.Width = width
	r.Stroke(g.polyline(), raster.Binary(dst))
}

// fill paints the interior of the polygon g, using the nonzero winding
// rule. The last point of g is connected back to the first.
func (p *painter) fill(dst *image.Alpha, g Gesture) {
	if len(g) < 3 || empty(dst) {
		return
	}
	r := p.rasterizer(dst)
	r.FillNonZero(g.polygon(), raster.Binary(dst))
}

func empty(dst *image.Alpha) bool {
	return dst == nil || dst.Rect.Empty()
}

func clearAlpha(dst *image.Alpha) {
	clear(dst.Pix)
}
