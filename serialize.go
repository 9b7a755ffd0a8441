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
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"
	"sync"
)

// bufferPool shares the compression state between encoders.
type bufferPool struct {
	pool sync.Pool
}

func (p *bufferPool) Get() *png.EncoderBuffer {
	b, _ := p.pool.Get().(*png.EncoderBuffer)
	return b
}

func (p *bufferPool) Put(b *png.EncoderBuffer) {
	p.pool.Put(b)
}

var maskEncoder = &png.Encoder{
	CompressionLevel: png.BestCompression,
	BufferPool:       &bufferPool{},
}

// EncodeMask encodes mask as an 8-bit grayscale PNG. Samples are copied
// unchanged, so a binary mask gives 0 for background and 255 for
// selected samples.
func EncodeMask(mask *image.Alpha) ([]byte, error) {
	if mask == nil || mask.Rect.Empty() {
		return nil, fmt.Errorf("maskedit: cannot encode empty %v mask", maskBounds(mask))
	}
	gray := &image.Gray{
		Pix:    mask.Pix,
		Stride: mask.Stride,
		Rect:   mask.Rect,
	}
	buf := &bytes.Buffer{}
	if err := maskEncoder.Encode(buf, gray); err != nil {
		return nil, fmt.Errorf("maskedit: encode mask: %w", err)
	}
	return buf.Bytes(), nil
}

func maskBounds(mask *image.Alpha) image.Rectangle {
	if mask == nil {
		return image.Rectangle{}
	}
	return mask.Rect
}

// DecodeMask reverses the export: it decodes a base64 PNG into a binary
// mask. Any sample with a non-zero gray value counts as selected and is
// set to 0xFF. An optional "data:image/png;base64," prefix is accepted.
func DecodeMask(b64 string) (*image.Alpha, error) {
	if i := strings.Index(b64, ","); i >= 0 && strings.HasPrefix(b64, "data:") {
		b64 = b64[i+1:]
	}
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, fmt.Errorf("maskedit: decode mask: %w", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("maskedit: decode mask: %w", err)
	}

	b := img.Bounds()
	mask := image.NewAlpha(image.Rect(0, 0, b.Dx(), b.Dy()))
	if gray, ok := img.(*image.Gray); ok {
		for y := 0; y < b.Dy(); y++ {
			src := gray.Pix[gray.PixOffset(b.Min.X, b.Min.Y+y):][:b.Dx()]
			dst := mask.Pix[mask.PixOffset(0, y):][:b.Dx()]
			for x, v := range src {
				if v != 0 {
					dst[x] = 0xFF
				}
			}
		}
		return mask, nil
	}
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			if c.Y != 0 {
				mask.Pix[mask.PixOffset(x, y)] = 0xFF
			}
		}
	}
	return mask, nil
}

// exportPNG returns the encoded mask, or false if nothing is selected.
// The caller must hold e.mu.
func (e *Editor) exportPNG() ([]byte, bool) {
	if !e.dims.Known() || e.policy.isEmpty() {
		return nil, false
	}
	mask := e.scratchMask()
	e.policy.render(mask, e.brush)
	data, err := EncodeMask(mask)
	if err != nil {
		e.logger().Warn("mask export failed", "error", err)
		return nil, false
	}
	return data, true
}
