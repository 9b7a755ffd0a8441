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
	"image/color"
	"math"
)

// Default settings, used for zero fields of [Config].
const (
	DefaultBrushWidth = 15
)

// DefaultOverlayColor is a translucent green.
var DefaultOverlayColor = color.NRGBA{R: 0, G: 255, B: 0, A: 179}

// Config holds the construction-time settings of an [Editor].
type Config struct {
	// BaseImage holds the encoded reference image (PNG, JPEG, GIF, WebP or
	// BMP). It may be nil, in which case the editor shows a placeholder
	// until [Editor.LoadImage] is called.
	BaseImage []byte

	// OverlayColor is the brush colour used to show the mask on the
	// composite. The zero value selects [DefaultOverlayColor].
	OverlayColor color.NRGBA

	// BrushWidthPx is the swath width in image samples. The zero value
	// selects [DefaultBrushWidth].
	BrushWidthPx float64

	// ImageDimensions gives the native size of BaseImage, as confirmed by
	// the host. If unknown, the size of the decoded image is used.
	ImageDimensions Dimensions

	// Policy selects swath or region-fill semantics.
	Policy Policy
}

// withDefaults returns a copy of c with zero fields filled in.
func (c Config) withDefaults() Config {
	if c.OverlayColor == (color.NRGBA{}) {
		c.OverlayColor = DefaultOverlayColor
	}
	if c.BrushWidthPx == 0 {
		c.BrushWidthPx = DefaultBrushWidth
	}
	return c
}

func (c Config) validate() error {
	if err := checkBrushWidth(c.BrushWidthPx); err != nil {
		return err
	}
	if c.ImageDimensions.Width < 0 || c.ImageDimensions.Height < 0 {
		return fmt.Errorf("%w: negative image size %dx%d", ErrInvalidConfig,
			c.ImageDimensions.Width, c.ImageDimensions.Height)
	}
	if !c.Policy.valid() {
		return fmt.Errorf("%w: unknown policy %d", ErrInvalidConfig, int(c.Policy))
	}
	return nil
}

func checkBrushWidth(w float64) error {
	if !(w > 0) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: brush width %g", ErrInvalidConfig, w)
	}
	return nil
}
