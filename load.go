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
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// decodeImage decodes a base image in any of the registered formats.
func decodeImage(data []byte) (image.Image, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("empty %s image", format)
	}
	return img, nil
}

// LoadImage replaces the base image and the image dimensions.
//
// The mask and any gesture in progress are discarded immediately. The
// image bytes are decoded in the background; the returned channel
// receives the outcome and is then closed. The outcome is nil on
// success, wraps [ErrDecodeFailure] if the data cannot be decoded, and is
// [ErrStaleLoad] if another call to LoadImage was made in the meantime.
// The result of a stale load is discarded.
//
// If dims is not known, the dimensions of the decoded image are used.
// Passing empty data removes the base image.
func (e *Editor) LoadImage(data []byte, dims Dimensions) <-chan error {
	res := make(chan error, 1)

	e.mu.Lock()
	e.gen++
	gen := e.gen
	e.hasImage = len(data) > 0
	e.img = nil
	e.failed = false
	e.setDimensions(dims)
	decode := e.decode
	e.mu.Unlock()

	if len(data) == 0 {
		close(res)
		return res
	}

	go func() {
		defer close(res)
		img, err := decode(data)

		e.mu.Lock()
		defer e.mu.Unlock()
		log := e.logger().With("generation", gen)
		if gen != e.gen {
			log.Debug("discarding superseded image", "current", e.gen)
			res <- ErrStaleLoad
			return
		}
		if err != nil {
			e.failed = true
			log.Warn("cannot decode base image", "error", err)
			res <- fmt.Errorf("%w: %w", ErrDecodeFailure, err)
			return
		}
		e.img = img
		if !e.dims.Known() {
			b := img.Bounds()
			e.setDimensions(Dimensions{Width: b.Dx(), Height: b.Dy()})
		}
		log.Debug("image loaded",
			"width", e.dims.Width, "height", e.dims.Height)
		res <- nil
	}()
	return res
}

// setDimensions installs new image dimensions and resets all mask state.
// The caller must hold e.mu.
func (e *Editor) setDimensions(dims Dimensions) {
	if dims.Width < 0 || dims.Height < 0 {
		dims = Dimensions{}
	}
	e.dims = dims
	e.capture.reset()
	e.policy.reset(dims)
}
