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
	"encoding/base64"
	"image"
	"image/color"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Editor is one mask editing panel.
//
// The host forwards pointer events to OnPress, OnMove, OnRelease and
// OnLeave, redraws the panel from Composite, and collects the result with
// ExportMask. All methods are safe for concurrent use, but events are
// expected to arrive from a single goroutine.
type Editor struct {
	id   uuid.UUID
	kind Policy

	mu       sync.Mutex
	policy   maskPolicy
	capture  capture
	brush    Brush
	dims     Dimensions
	hasImage bool        // image bytes have been assigned
	img      image.Image // nil until decoded
	failed   bool        // the last decode failed
	gen      uint64
	scratch  *image.Alpha

	decode func([]byte) (image.Image, error)
	loaded <-chan error
}

// New creates an editor. If cfg.BaseImage is set, decoding starts in the
// background; use [Editor.Loaded] to wait for it.
func New(cfg Config) (*Editor, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return newEditor(cfg, decodeImage), nil
}

func newEditor(cfg Config, decode func([]byte) (image.Image, error)) *Editor {
	e := &Editor{
		id:   uuid.New(),
		kind: cfg.Policy,
		brush: Brush{
			Color: cfg.OverlayColor,
			Width: cfg.BrushWidthPx,
		},
		decode: decode,
	}
	e.policy = newPolicy(cfg.Policy, Dimensions{})
	e.loaded = e.LoadImage(cfg.BaseImage, cfg.ImageDimensions)
	e.logger().Debug("editor created",
		"policy", cfg.Policy,
		"width", cfg.ImageDimensions.Width,
		"height", cfg.ImageDimensions.Height)
	return e
}

// Loaded returns the outcome channel of the image load started by [New].
// See [Editor.LoadImage] for the values sent.
func (e *Editor) Loaded() <-chan error {
	return e.loaded
}

// ID returns a unique identifier for the editor. It is included in all
// log records.
func (e *Editor) ID() uuid.UUID {
	return e.id
}

// Policy returns the mask policy chosen at construction.
func (e *Editor) Policy() Policy {
	return e.kind
}

// Dimensions returns the current native image size.
func (e *Editor) Dimensions() Dimensions {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dims
}

func (e *Editor) logger() *slog.Logger {
	return Logger().With("editor", e.id.String())
}

// OnPress starts a new gesture at the pointer position.
//
// The press is refused with [ErrMissingDimensions] while the image size
// is unknown, and with [ErrNoImage] while no image is assigned or the last
// image failed to decode. A press during a gesture first ends the previous
// gesture as if the pointer had been released.
func (e *Editor) OnPress(ev PointerEvent) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.dims.Known() {
		return ErrMissingDimensions
	}
	if !e.hasImage || e.failed {
		return ErrNoImage
	}
	if e.capture.state == stateActive {
		e.finish()
	}
	e.capture.begin(MapPoint(ev, e.dims))
	return nil
}

// OnMove adds the pointer position to the gesture in progress.
// Moves without a gesture in progress are ignored.
func (e *Editor) OnMove(ev PointerEvent) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.capture.add(MapPoint(ev, e.dims))
}

// OnRelease ends the gesture in progress and adds it to the mask.
// Gestures with fewer than two points are dropped and reported as
// [ErrInvalidGesture]; the mask is unchanged in this case.
// Without a gesture in progress, OnRelease does nothing.
func (e *Editor) OnRelease() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.finish()
}

// OnLeave handles the pointer leaving the editing surface. This ends the
// gesture in progress in the same way as [Editor.OnRelease].
func (e *Editor) OnLeave() error {
	return e.OnRelease()
}

// Cancel discards the gesture in progress without changing the mask.
func (e *Editor) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.capture.reset()
}

// finish ends the current gesture and commits it.
// The caller must hold e.mu.
func (e *Editor) finish() error {
	if e.capture.state != stateActive {
		return nil
	}
	g := e.capture.end()
	if !g.Committable() {
		e.logger().Debug("dropping gesture", "points", len(g))
		return ErrInvalidGesture
	}
	e.policy.commit(g)
	e.logger().Debug("gesture committed", "policy", e.kind, "points", len(g))
	return nil
}

// Composite renders the image, the mask and the gesture in progress at
// the native image resolution. If the dimensions are unknown, the result
// is an empty image.
func (e *Editor) Composite() *image.RGBA {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.composite()
}

// ExportMask returns the mask as a base64-encoded grayscale PNG, with 0
// for background and 255 for selected samples. The second return value
// is false if no region has been selected; the first is then empty.
func (e *Editor) ExportMask() (string, bool) {
	data, ok := e.ExportMaskPNG()
	if !ok {
		return "", false
	}
	return base64.StdEncoding.EncodeToString(data), true
}

// ExportMaskPNG is like [Editor.ExportMask] but returns the PNG bytes
// without base64 encoding.
func (e *Editor) ExportMaskPNG() ([]byte, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.exportPNG()
}

// Clear discards the gesture in progress and all of the mask.
func (e *Editor) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.capture.reset()
	e.policy.reset(e.dims)
}

// SetBrushWidth changes the swath width. For the swath policy, the new
// width also applies to gestures committed earlier.
func (e *Editor) SetBrushWidth(w float64) error {
	if err := checkBrushWidth(w); err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.brush.Width = w
	return nil
}

// SetOverlayColor changes the colour used to show the mask.
func (e *Editor) SetOverlayColor(c color.NRGBA) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.brush.Color = c
}

// Brush returns the current brush settings.
func (e *Editor) Brush() Brush {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.brush
}
